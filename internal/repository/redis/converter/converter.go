package converter

import (
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// ProductConverter переводит товары между доменом и моделью кэша.
type ProductConverter interface {
	ToRedisModel(entity *domain.Product) *ProductRedisModel
	ToDomain(model *ProductRedisModel) (*domain.Product, error)
	ToArrRedisModel(entities []domain.Product) []ProductRedisModel
	ToArrDomain(models []ProductRedisModel) ([]domain.Product, error)
}

type ProductConverterImpl struct{}

func (c *ProductConverterImpl) ToRedisModel(entity *domain.Product) *ProductRedisModel {
	if entity == nil {
		return nil
	}

	var rating *string
	if entity.Rating != nil {
		s := entity.Rating.String()
		rating = &s
	}

	var stock *int64
	if entity.Stock != nil {
		v := *entity.Stock
		stock = &v
	}

	var images []string
	if entity.Images != nil {
		images = make([]string, len(entity.Images))
		copy(images, entity.Images)
	}

	return &ProductRedisModel{
		ID:                 entity.ID,
		Title:              entity.Title,
		Description:        entity.Description,
		Price:              entity.Price.String(),
		DiscountPercentage: entity.DiscountPercentage.String(),
		Rating:             rating,
		Stock:              stock,
		Brand:              entity.Brand,
		Category:           entity.Category,
		Images:             images,
		Thumbnail:          entity.Thumbnail,
	}
}

func (c *ProductConverterImpl) ToDomain(model *ProductRedisModel) (*domain.Product, error) {
	if model == nil {
		return nil, nil
	}

	price, err := decimal.NewFromString(model.Price)
	if err != nil {
		return nil, err
	}

	discount, err := decimal.NewFromString(model.DiscountPercentage)
	if err != nil {
		return nil, err
	}

	var rating *decimal.Decimal
	if model.Rating != nil {
		r, err := decimal.NewFromString(*model.Rating)
		if err != nil {
			return nil, err
		}
		rating = &r
	}

	var stock *int64
	if model.Stock != nil {
		v := *model.Stock
		stock = &v
	}

	return &domain.Product{
		ID:                 model.ID,
		Title:              model.Title,
		Description:        model.Description,
		Price:              price,
		DiscountPercentage: discount,
		Rating:             rating,
		Stock:              stock,
		Brand:              model.Brand,
		Category:           model.Category,
		Images:             model.Images,
		Thumbnail:          model.Thumbnail,
	}, nil
}

func (c *ProductConverterImpl) ToArrRedisModel(entities []domain.Product) []ProductRedisModel {
	if entities == nil {
		return nil
	}

	res := make([]ProductRedisModel, len(entities))
	for i := range entities {
		res[i] = *c.ToRedisModel(&entities[i])
	}

	return res
}

func (c *ProductConverterImpl) ToArrDomain(models []ProductRedisModel) ([]domain.Product, error) {
	if models == nil {
		return nil, nil
	}

	res := make([]domain.Product, len(models))
	for i := range models {
		p, err := c.ToDomain(&models[i])
		if err != nil {
			return nil, err
		}
		res[i] = *p
	}

	return res, nil
}
