package views

import (
	"testing"
	"time"

	"printshop-service/internal/domain/quote"

	"github.com/stretchr/testify/assert"
)

func price(v float64) *float64 {
	return &v
}

func quoteFor(company string, finalPrice *float64, createdAt time.Time) *quote.Quote {
	return &quote.Quote{
		Company:    company,
		Status:     quote.StatusCompleted,
		FinalPrice: finalPrice,
		CreatedAt:  createdAt,
	}
}

func TestClientSummaries_RevenueMatchesFinalPrices(t *testing.T) {
	now := time.Now()
	quotes := []*quote.Quote{
		quoteFor("Acme Corp", price(100), now.Add(-48*time.Hour)),
		quoteFor("Acme Corp", price(250), now.Add(-24*time.Hour)),
		quoteFor("Acme Corp", nil, now),
		quoteFor("Bright Ideas", price(75), now),
	}

	summaries := ClientSummaries(quotes)

	acme := summaries["Acme Corp"]
	assert.Equal(t, 3, acme.TotalOrders)
	assert.Equal(t, 350.0, acme.TotalRevenue)
	assert.Equal(t, now, acme.LastOrderDate)

	assert.Equal(t, 75.0, summaries["Bright Ideas"].TotalRevenue)
}

func TestClientSummaries_TrimsAndSkipsBlankCompanies(t *testing.T) {
	quotes := []*quote.Quote{
		quoteFor("  Acme Corp  ", price(50), time.Now()),
		quoteFor("", price(999), time.Now()),
		quoteFor("   ", price(999), time.Now()),
	}

	summaries := ClientSummaries(quotes)

	assert.Len(t, summaries, 1)
	assert.Equal(t, 50.0, summaries["Acme Corp"].TotalRevenue)
}

func TestClientSummaries_FinalPriceAffectsOnlyThatCompany(t *testing.T) {
	now := time.Now()
	quotes := []*quote.Quote{
		quoteFor("Acme Corp", price(100), now),
		quoteFor("Bright Ideas", price(200), now),
	}

	before := ClientSummaries(quotes)

	quotes[0] = quoteFor("Acme Corp", price(550), now)
	after := ClientSummaries(quotes)

	assert.Equal(t, before["Acme Corp"].TotalRevenue+450, after["Acme Corp"].TotalRevenue)
	assert.Equal(t, before["Bright Ideas"], after["Bright Ideas"])
}

func TestSummaryFor_UnknownCompany(t *testing.T) {
	summary := SummaryFor(nil, "Nobody LLC")

	assert.Equal(t, "Nobody LLC", summary.Company)
	assert.Zero(t, summary.TotalOrders)
	assert.Zero(t, summary.TotalRevenue)
}
