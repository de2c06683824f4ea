// Package listview derives what a list shows from what was fetched:
// search, category filter and ordering for the menu, and the review
// summaries. Inputs are never mutated.
package listview

import (
	"fmt"
	"sort"
	"strings"

	"delivery-console/internal/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortOrder string

const (
	SortName      SortOrder = "name"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
)

func ParseSortOrder(raw string) (SortOrder, error) {
	switch SortOrder(raw) {
	case "":
		return SortName, nil
	case SortName, SortPriceAsc, SortPriceDesc:
		return SortOrder(raw), nil
	}
	return "", fmt.Errorf("unknown sort order %q", raw)
}

// Query is the full set of menu list controls.
type Query struct {
	Search     string
	CategoryID *int
	Sort       SortOrder
}

// SearchMenu keeps items whose name or description contains query,
// ignoring case. A blank query keeps everything.
func SearchMenu(items []domain.MenuItem, query string) []domain.MenuItem {
	if strings.TrimSpace(query) == "" {
		return clone(items)
	}
	fold := cases.Fold()
	needle := fold.String(query)
	out := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(fold.String(item.Name), needle) ||
			strings.Contains(fold.String(item.DescriptionText()), needle) {
			out = append(out, item)
		}
	}
	return out
}

func FilterByCategory(items []domain.MenuItem, categoryID *int) []domain.MenuItem {
	if categoryID == nil {
		return clone(items)
	}
	out := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if item.CategoryID != nil && *item.CategoryID == *categoryID {
			out = append(out, item)
		}
	}
	return out
}

// SortMenu returns a sorted copy. Names are compared with Ukrainian
// collation; an unknown order falls back to name.
func SortMenu(items []domain.MenuItem, order SortOrder) []domain.MenuItem {
	out := clone(items)
	switch order {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	default:
		collator := collate.New(language.Ukrainian)
		sort.SliceStable(out, func(i, j int) bool {
			return collator.CompareString(out[i].Name, out[j].Name) < 0
		})
	}
	return out
}

// Project applies search, then category, then ordering.
func Project(items []domain.MenuItem, q Query) []domain.MenuItem {
	return SortMenu(FilterByCategory(SearchMenu(items, q.Search), q.CategoryID), q.Sort)
}

// CountByCategory maps category id to the number of menu items in it.
func CountByCategory(items []domain.MenuItem) map[int]int {
	counts := make(map[int]int)
	for _, item := range items {
		if item.CategoryID != nil {
			counts[*item.CategoryID]++
		}
	}
	return counts
}

func clone(items []domain.MenuItem) []domain.MenuItem {
	out := make([]domain.MenuItem, len(items))
	copy(out, items)
	return out
}
