package handler

import (
	"net/http"
	"strings"

	"printshop-service/internal/domain/client"
	"printshop-service/internal/live"
	"printshop-service/internal/views"
	"printshop-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ClientHandler struct {
	clientRepo ClientRepository
	quoteRepo  QuoteRepository
	notifier   SnapshotNotifier
}

func NewClientHandler(clientRepo ClientRepository, quoteRepo QuoteRepository, notifier SnapshotNotifier) *ClientHandler {
	return &ClientHandler{
		clientRepo: clientRepo,
		quoteRepo:  quoteRepo,
		notifier:   notifier,
	}
}

// ClientWithSummary joins a directory entry with its quote history
// aggregate. The join is by exact trimmed name match; a client whose name
// matches no quotes carries zero totals.
type ClientWithSummary struct {
	*client.Client
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	LastOrderDate string  `json:"lastOrderDate,omitempty"`
}

func (h *ClientHandler) ListClients(c echo.Context) error {
	clients, err := h.clientRepo.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Failed to list clients: %v", err)
		return respondError(c, http.StatusInternalServerError, msgListClientsFail)
	}

	quotes, err := h.quoteRepo.List(c.Request().Context(), 0)
	if err != nil {
		c.Logger().Errorf("Failed to list quotes for client summaries: %v", err)
		return respondError(c, http.StatusInternalServerError, msgListClientsFail)
	}

	summaries := views.ClientSummaries(quotes)

	result := make([]ClientWithSummary, 0, len(clients))
	for _, cl := range clients {
		entry := ClientWithSummary{Client: cl}
		if summary, ok := summaries[strings.TrimSpace(cl.Name)]; ok {
			entry.TotalOrders = summary.TotalOrders
			entry.TotalRevenue = summary.TotalRevenue
			if !summary.LastOrderDate.IsZero() {
				entry.LastOrderDate = summary.LastOrderDate.Format("2006-01-02")
			}
		}
		result = append(result, entry)
	}

	return c.JSON(http.StatusOK, result)
}

// ListProspects returns companies seen on quotes that have no directory
// entry yet, each with its aggregated quote history.
func (h *ClientHandler) ListProspects(c echo.Context) error {
	companies, err := h.quoteRepo.DistinctCompanies(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Failed to list prospect companies: %v", err)
		return respondError(c, http.StatusInternalServerError, msgListProspectFail)
	}

	quotes, err := h.quoteRepo.List(c.Request().Context(), 0)
	if err != nil {
		c.Logger().Errorf("Failed to list quotes for prospects: %v", err)
		return respondError(c, http.StatusInternalServerError, msgListProspectFail)
	}

	prospects := make([]views.ClientSummary, 0, len(companies))
	for _, company := range companies {
		prospects = append(prospects, views.SummaryFor(quotes, company))
	}

	return c.JSON(http.StatusOK, prospects)
}

type CreateClientRequest struct {
	Name         string `json:"name"`
	Industry     string `json:"industry"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Notes        string `json:"notes"`
}

func (h *ClientHandler) CreateClient(c echo.Context) error {
	var req CreateClientRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := validator.RequiredName("name", req.Name); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if req.ContactEmail != "" {
		if err := validator.Email(req.ContactEmail); err != nil {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
	}
	if err := validator.OptionalText("notes", req.Notes, 0); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	created, err := h.clientRepo.Create(c.Request().Context(), client.CreateClientInput{
		Name:         req.Name,
		Industry:     strings.TrimSpace(req.Industry),
		ContactEmail: strings.TrimSpace(req.ContactEmail),
		ContactPhone: strings.TrimSpace(req.ContactPhone),
		Notes:        req.Notes,
	})
	if err != nil {
		return RespondWithMappedError(c, err)
	}

	h.notifier.Notify(live.CollectionClients)

	return c.JSON(http.StatusCreated, created)
}

type UpdateClientRequest struct {
	Name         *string `json:"name"`
	Industry     *string `json:"industry"`
	ContactEmail *string `json:"contactEmail"`
	ContactPhone *string `json:"contactPhone"`
	Notes        *string `json:"notes"`
}

func (h *ClientHandler) UpdateClient(c echo.Context) error {
	id, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidClientID)
	}

	var req UpdateClientRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	input := client.UpdateClientInput{
		Industry:     req.Industry,
		ContactPhone: req.ContactPhone,
		Notes:        req.Notes,
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := validator.RequiredName("name", name); err != nil {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
		input.Name = &name
	}
	if req.ContactEmail != nil && *req.ContactEmail != "" {
		if err := validator.Email(*req.ContactEmail); err != nil {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
		input.ContactEmail = req.ContactEmail
	} else if req.ContactEmail != nil {
		input.ContactEmail = req.ContactEmail
	}

	if err := h.clientRepo.Update(c.Request().Context(), id, input); err != nil {
		return RespondWithMappedError(c, err)
	}

	h.notifier.Notify(live.CollectionClients)

	updated, err := h.clientRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, msgUpdateClientFail)
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *ClientHandler) DeleteClient(c echo.Context) error {
	id, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidClientID)
	}

	if err := h.clientRepo.Delete(c.Request().Context(), id); err != nil {
		return RespondWithMappedError(c, err)
	}

	h.notifier.Notify(live.CollectionClients)

	return respondMessage(c, http.StatusOK, msgClientDeleted)
}
