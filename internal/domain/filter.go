package domain

// PageSize — размер страницы списка товаров по умолчанию
const PageSize = 6

// FilterState описывает ввод пользователя в списке товаров
type FilterState struct {
	Category string
	Search   string
	Page     int // с 1
}

func NewFilterState() FilterState {
	return FilterState{Page: 1}
}
