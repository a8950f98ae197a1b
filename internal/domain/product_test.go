package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProduct_DiscountedPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		discount string
		want     string
	}{
		{name: "twenty percent", price: "100", discount: "20", want: "80.00"},
		{name: "no discount", price: "549.99", discount: "0", want: "549.99"},
		{name: "fractional discount", price: "549", discount: "12.96", want: "477.85"},
		{name: "full discount", price: "10", discount: "100", want: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{
				Price:              decimal.RequireFromString(tt.price),
				DiscountPercentage: decimal.RequireFromString(tt.discount),
			}
			assert.Equal(t, tt.want, p.DiscountedPrice().StringFixed(2))
		})
	}
}

func TestProduct_DiscountedPriceKeepsOriginal(t *testing.T) {
	p := Product{Price: decimal.NewFromInt(100), DiscountPercentage: decimal.Zero}
	assert.True(t, p.DiscountedPrice().Equal(p.Price))

	p.DiscountPercentage = decimal.NewFromInt(20)
	assert.True(t, p.DiscountedPrice().Equal(decimal.NewFromInt(80)))
	assert.True(t, p.Price.Equal(decimal.NewFromInt(100)), "price must not change")
}

func TestProduct_HasValidDiscount(t *testing.T) {
	assert.True(t, (&Product{DiscountPercentage: decimal.Zero}).HasValidDiscount())
	assert.True(t, (&Product{DiscountPercentage: decimal.NewFromInt(100)}).HasValidDiscount())
	assert.False(t, (&Product{DiscountPercentage: decimal.NewFromInt(101)}).HasValidDiscount())
	assert.False(t, (&Product{DiscountPercentage: decimal.NewFromInt(-1)}).HasValidDiscount())
}

func TestCategories(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 6)
	assert.Equal(t, CategorySmartphones, cats[0].Slug)

	cats[0].Slug = "mutated"
	assert.Equal(t, CategorySmartphones, Categories()[0].Slug)

	assert.True(t, IsKnownCategory(CategoryAll))
	assert.True(t, IsKnownCategory(CategoryHomeDecoration))
	assert.False(t, IsKnownCategory("furniture"))
}
