// Package views computes derived read models from collection snapshots.
// Every function is pure: it never mutates its input and is safe to
// recompute on each snapshot, in any cross-collection arrival order.
package views

import (
	"strings"
	"time"

	"printshop-service/internal/domain/quote"
)

// ClientSummary aggregates quote history for one company name.
type ClientSummary struct {
	Company       string    `json:"company"`
	TotalOrders   int       `json:"totalOrders"`
	TotalRevenue  float64   `json:"totalRevenue"`
	LastOrderDate time.Time `json:"lastOrderDate"`
}

// ClientSummaries folds quotes into per-company totals. Company names are
// trimmed before grouping and blank companies are skipped. Revenue sums
// finalPrice wherever it is present.
func ClientSummaries(quotes []*quote.Quote) map[string]ClientSummary {
	summaries := make(map[string]ClientSummary)

	for _, q := range quotes {
		company := strings.TrimSpace(q.Company)
		if company == "" {
			continue
		}

		summary := summaries[company]
		summary.Company = company
		summary.TotalOrders++
		if q.FinalPrice != nil {
			summary.TotalRevenue += *q.FinalPrice
		}
		if q.CreatedAt.After(summary.LastOrderDate) {
			summary.LastOrderDate = q.CreatedAt
		}

		summaries[company] = summary
	}

	return summaries
}

// SummaryFor returns the aggregate for a single company name.
func SummaryFor(quotes []*quote.Quote, company string) ClientSummary {
	company = strings.TrimSpace(company)
	if summary, ok := ClientSummaries(quotes)[company]; ok {
		return summary
	}
	return ClientSummary{Company: company}
}
