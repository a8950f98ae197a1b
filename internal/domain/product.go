package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Product описывает товар внешнего каталога
type Product struct {
	ID                 int64
	Title              string
	Description        string
	Price              decimal.Decimal
	DiscountPercentage decimal.Decimal // 0–100
	Rating             *decimal.Decimal
	Stock              *int64
	Brand              string
	Category           string
	Images             []string
	Thumbnail          string
}

// DiscountedPrice возвращает цену со скидкой, округлённую до копеек.
// Цена со скидкой всегда вычисляется и нигде не хранится.
func (p *Product) DiscountedPrice() decimal.Decimal {
	if p.DiscountPercentage.IsZero() {
		return p.Price
	}

	factor := decimal.NewFromInt(1).Sub(p.DiscountPercentage.Div(hundred))
	return p.Price.Mul(factor).Round(2)
}

// HasValidDiscount проверяет, что скидка лежит в диапазоне 0–100.
func (p *Product) HasValidDiscount() bool {
	return !p.DiscountPercentage.IsNegative() && p.DiscountPercentage.LessThanOrEqual(hundred)
}
