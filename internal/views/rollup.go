package views

import "printshop-service/internal/domain/quote"

// StatusRollup summarizes the quote pipeline for dashboard tiles.
// Revenue counts finalPrice on completed quotes only; a final price on a
// quote in any other status is not yet realized.
type StatusRollup struct {
	Counts           map[quote.Status]int `json:"counts"`
	Total            int                  `json:"total"`
	CompletedRevenue float64              `json:"completedRevenue"`
}

func Rollup(quotes []*quote.Quote) StatusRollup {
	rollup := StatusRollup{Counts: make(map[quote.Status]int)}

	for _, q := range quotes {
		rollup.Counts[q.Status]++
		rollup.Total++
		if q.Status == quote.StatusCompleted && q.FinalPrice != nil {
			rollup.CompletedRevenue += *q.FinalPrice
		}
	}

	return rollup
}
