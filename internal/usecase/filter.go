package usecase

import (
	"strings"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// FilterProducts возвращает товары в исходном порядке, у которых категория содержит category
// (если она задана) и название без учёта регистра содержит search (если он задан).
// Пустые селекторы пропускают всё. Результат — новый срез, вход не меняется.
func FilterProducts(all []domain.Product, category string, search string) []domain.Product {
	term := strings.ToLower(search)

	res := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if category != "" && !strings.Contains(p.Category, category) {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Title), term) {
			continue
		}
		res = append(res, p)
	}

	return res
}

// PageCount возвращает ceil(n/size).
func PageCount(n int, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Paginate возвращает элементы [(page-1)*size, page*size), обрезанные по длине items.
func Paginate(items []domain.Product, page int, size int) []domain.Product {
	if page < 1 || size <= 0 {
		return []domain.Product{}
	}

	start := (page - 1) * size
	if start >= len(items) {
		return []domain.Product{}
	}

	end := min(start+size, len(items))
	res := make([]domain.Product, end-start)
	copy(res, items[start:end])

	return res
}

// ClampPage приводит номер страницы к диапазону [1, max(1, PageCount(n, size))].
func ClampPage(page int, n int, size int) int {
	last := max(1, PageCount(n, size))
	switch {
	case page < 1:
		return 1
	case page > last:
		return last
	default:
		return page
	}
}
