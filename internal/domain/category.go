package domain

// CategoryAll — пустой селектор, фильтрация по категории не применяется
const CategoryAll = ""

// Категории меню витрины. Словарь внешнего каталога шире; витрина предлагает фиксированный набор.
const (
	CategorySmartphones    = "smartphones"
	CategoryFragrances     = "fragrances"
	CategoryLaptops        = "laptops"
	CategorySkincare       = "skincare"
	CategoryGroceries      = "groceries"
	CategoryHomeDecoration = "home-decoration"
)

// Category описывает пункт меню категорий
type Category struct {
	Slug  string
	Label string
}

var categories = []Category{
	{Slug: CategorySmartphones, Label: "Smartphones"},
	{Slug: CategoryFragrances, Label: "Fragrances"},
	{Slug: CategoryLaptops, Label: "Laptops"},
	{Slug: CategorySkincare, Label: "Skincare"},
	{Slug: CategoryGroceries, Label: "Groceries"},
	{Slug: CategoryHomeDecoration, Label: "Home decoration"},
}

// Categories возвращает непустые категории в порядке меню.
func Categories() []Category {
	res := make([]Category, len(categories))
	copy(res, categories)
	return res
}

// IsKnownCategory сообщает, входит ли slug в фиксированный набор (пустой slug — «все»).
func IsKnownCategory(slug string) bool {
	if slug == CategoryAll {
		return true
	}
	for _, c := range categories {
		if c.Slug == slug {
			return true
		}
	}
	return false
}
