package handler

import (
	"net/http"

	"printshop-service/internal/domain/quote"
	"printshop-service/internal/views"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	quoteRepo     QuoteRepository
	clientRepo    ClientRepository
	portfolioRepo PortfolioRepository
	recentLimit   int
}

func NewDashboardHandler(quoteRepo QuoteRepository, clientRepo ClientRepository, portfolioRepo PortfolioRepository, recentLimit int) *DashboardHandler {
	return &DashboardHandler{
		quoteRepo:     quoteRepo,
		clientRepo:    clientRepo,
		portfolioRepo: portfolioRepo,
		recentLimit:   recentLimit,
	}
}

type DashboardResponse struct {
	Rollup         views.StatusRollup `json:"rollup"`
	RecentQuotes   []*quote.Quote     `json:"recentQuotes"`
	ClientCount    int                `json:"clientCount"`
	PortfolioCount int                `json:"portfolioCount"`
}

// Dashboard aggregates the admin landing view: quote pipeline rollup,
// most recent submissions, and directory sizes. Revenue in the rollup
// counts completed quotes only.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	quotes, err := h.quoteRepo.List(ctx, 0)
	if err != nil {
		c.Logger().Errorf("Failed to list quotes for dashboard: %v", err)
		return respondError(c, http.StatusInternalServerError, msgDashboardFail)
	}

	recent := quotes
	if h.recentLimit > 0 && len(recent) > h.recentLimit {
		recent = recent[:h.recentLimit]
	}

	clients, err := h.clientRepo.List(ctx)
	if err != nil {
		c.Logger().Errorf("Failed to list clients for dashboard: %v", err)
		return respondError(c, http.StatusInternalServerError, msgDashboardFail)
	}

	items, err := h.portfolioRepo.List(ctx)
	if err != nil {
		c.Logger().Errorf("Failed to list portfolio for dashboard: %v", err)
		return respondError(c, http.StatusInternalServerError, msgDashboardFail)
	}

	return c.JSON(http.StatusOK, DashboardResponse{
		Rollup:         views.Rollup(quotes),
		RecentQuotes:   recent,
		ClientCount:    len(clients),
		PortfolioCount: len(items),
	})
}
