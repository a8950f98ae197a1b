package converter

// ProductRedisModel — товар в кэше. Денежные поля хранятся строками без потери точности.
type ProductRedisModel struct {
	ID                 int64    `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description,omitempty"`
	Price              string   `json:"price"`
	DiscountPercentage string   `json:"discount_percentage"`
	Rating             *string  `json:"rating,omitempty"`
	Stock              *int64   `json:"stock,omitempty"`
	Brand              string   `json:"brand,omitempty"`
	Category           string   `json:"category"`
	Images             []string `json:"images,omitempty"`
	Thumbnail          string   `json:"thumbnail,omitempty"`
}

// CatalogRedisModel — полный каталог в кэше
type CatalogRedisModel struct {
	Products []ProductRedisModel `json:"products"`
	CachedAt int64               `json:"cached_at"`
}
