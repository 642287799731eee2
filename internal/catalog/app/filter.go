package app

import (
	"strings"

	"github.com/stonique/storefront/internal/catalog/domain"
)

// Bracket is a price tier used by the shop filters.
type Bracket string

const (
	BracketAll    Bracket = "all"
	BracketLow    Bracket = "low"    // <= 50
	BracketMedium Bracket = "medium" // > 50 and <= 200
	BracketHigh   Bracket = "high"   // > 200
)

// ParseBracket maps a query-string value to a Bracket. Unknown or empty
// values fall back to BracketAll.
func ParseBracket(s string) Bracket {
	switch Bracket(s) {
	case BracketLow, BracketMedium, BracketHigh:
		return Bracket(s)
	default:
		return BracketAll
	}
}

func (b Bracket) matches(price float64) bool {
	switch b {
	case BracketLow:
		return price <= 50
	case BracketMedium:
		return price > 50 && price <= 200
	case BracketHigh:
		return price > 200
	default:
		return true
	}
}

// FilterSpec describes one evaluation of the shop filters. The zero value
// matches every product.
type FilterSpec struct {
	Category string
	Price    Bracket
	Search   string
}

func (spec FilterSpec) matches(p domain.Product) bool {
	if spec.Category != "" && spec.Category != CategoryAll && p.Category != spec.Category {
		return false
	}
	if !spec.Price.matches(p.Price) {
		return false
	}
	if spec.Search != "" {
		q := strings.ToLower(spec.Search)
		if !strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	return true
}

// CategoryAll is the sentinel matching every category.
const CategoryAll = "all"

// ApplyFilters returns the products matching every field of spec, in their
// original order. The input is never mutated.
func ApplyFilters(products []domain.Product, spec FilterSpec) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if spec.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// DeriveCategories returns the distinct categories present in products,
// prefixed with the "all" sentinel. Categories keep their first-seen order.
func DeriveCategories(products []domain.Product) []string {
	out := []string{CategoryAll}
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
