package views

import (
	"sort"
	"strings"

	"printshop-service/internal/domain/portfolio"
	"printshop-service/internal/domain/quote"
)

// FilterQuotes applies an industry filter (exact match, "" or "all" means
// no filter) and a case-insensitive substring search over name, company
// and email. The source slice is never mutated.
func FilterQuotes(quotes []*quote.Quote, industry, search string) []*quote.Quote {
	search = strings.ToLower(strings.TrimSpace(search))

	filtered := make([]*quote.Quote, 0, len(quotes))
	for _, q := range quotes {
		if !industryMatches(q.Industry, industry) {
			continue
		}
		if search != "" && !anyContains(search, q.FirstName+" "+q.LastName, q.Company, q.Email) {
			continue
		}
		filtered = append(filtered, q)
	}

	return filtered
}

// FilterPortfolio applies the same filter contract over client name,
// description and project type.
func FilterPortfolio(items []*portfolio.Item, industry, search string) []*portfolio.Item {
	search = strings.ToLower(strings.TrimSpace(search))

	filtered := make([]*portfolio.Item, 0, len(items))
	for _, item := range items {
		if !industryMatches(item.Industry, industry) {
			continue
		}
		if search != "" && !anyContains(search, item.ClientName, item.Description, item.ProjectType) {
			continue
		}
		filtered = append(filtered, item)
	}

	return filtered
}

// SortPortfolio returns a new slice in display order: featured first, then
// ascending sort order.
func SortPortfolio(items []*portfolio.Item) []*portfolio.Item {
	sorted := make([]*portfolio.Item, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Featured != sorted[j].Featured {
			return sorted[i].Featured
		}
		return sorted[i].SortOrder < sorted[j].SortOrder
	})

	return sorted
}

func industryMatches(value, filter string) bool {
	if filter == "" || filter == TabAll {
		return true
	}
	return value == filter
}

func anyContains(search string, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}
