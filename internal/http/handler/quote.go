package handler

import (
	"net/http"
	"strings"

	"printshop-service/internal/domain/quote"
	"printshop-service/internal/live"
	"printshop-service/internal/views"
	"printshop-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type QuoteHandler struct {
	quoteRepo QuoteRepository
	notifier  SnapshotNotifier
}

func NewQuoteHandler(quoteRepo QuoteRepository, notifier SnapshotNotifier) *QuoteHandler {
	return &QuoteHandler{
		quoteRepo: quoteRepo,
		notifier:  notifier,
	}
}

type SubmitQuoteRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Industry  string `json:"industry"`
	Service   string `json:"service"`
	Quantity  string `json:"quantity"`
	Urgency   string `json:"urgency"`
	Message   string `json:"message"`
}

// SubmitQuote handles the public quote request form. Every submission
// starts in status "new"; the client cannot influence status or pricing.
func (h *QuoteHandler) SubmitQuote(c echo.Context) error {
	var req SubmitQuoteRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validator.RequiredName("firstName", req.FirstName); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if err := validator.RequiredName("lastName", req.LastName); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if err := validator.Email(req.Email); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}
	if err := validator.OptionalText("message", req.Message, 0); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	q, err := h.quoteRepo.Create(c.Request().Context(), quote.CreateQuoteInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   strings.TrimSpace(req.Company),
		Email:     req.Email,
		Phone:     strings.TrimSpace(req.Phone),
		Industry:  strings.TrimSpace(req.Industry),
		Service:   req.Service,
		Quantity:  req.Quantity,
		Urgency:   req.Urgency,
		Message:   req.Message,
	})
	if err != nil {
		c.Logger().Errorf("Failed to create quote: %v", err)
		return respondError(c, http.StatusInternalServerError, msgSubmitQuoteFail)
	}

	h.notifier.Notify(live.CollectionQuotes)

	return c.JSON(http.StatusCreated, q)
}

type ListQuotesResponse struct {
	Quotes []*quote.Quote `json:"quotes"`
	Tabs   []views.Tab    `json:"tabs"`
}

// ListQuotes returns all quotes newest first, filtered by the optional
// industry and search query params. Industry tabs are always computed over
// the unfiltered set so counts stay stable while filtering.
func (h *QuoteHandler) ListQuotes(c echo.Context) error {
	quotes, err := h.quoteRepo.List(c.Request().Context(), 0)
	if err != nil {
		c.Logger().Errorf("Failed to list quotes: %v", err)
		return respondError(c, http.StatusInternalServerError, msgListQuotesFail)
	}

	industries := make([]string, 0, len(quotes))
	for _, q := range quotes {
		industries = append(industries, q.Industry)
	}

	filtered := views.FilterQuotes(quotes, c.QueryParam(queryIndustry), c.QueryParam(querySearch))

	return c.JSON(http.StatusOK, ListQuotesResponse{
		Quotes: filtered,
		Tabs:   views.IndustryTabs(industries),
	})
}

func (h *QuoteHandler) GetQuote(c echo.Context) error {
	id, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidQuoteID)
	}

	q, err := h.quoteRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, http.StatusNotFound, msgQuoteNotFound)
	}

	return c.JSON(http.StatusOK, q)
}

type UpdateQuoteRequest struct {
	FirstName      *string  `json:"firstName"`
	LastName       *string  `json:"lastName"`
	Company        *string  `json:"company"`
	Email          *string  `json:"email"`
	Phone          *string  `json:"phone"`
	Industry       *string  `json:"industry"`
	Service        *string  `json:"service"`
	Quantity       *string  `json:"quantity"`
	Urgency        *string  `json:"urgency"`
	Message        *string  `json:"message"`
	Status         *string  `json:"status"`
	EstimatedPrice *float64 `json:"estimatedPrice"`
	FinalPrice     *float64 `json:"finalPrice"`
}

func (h *QuoteHandler) UpdateQuote(c echo.Context) error {
	id, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidQuoteID)
	}

	var req UpdateQuoteRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	input := quote.UpdateQuoteInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Company:        req.Company,
		Email:          req.Email,
		Phone:          req.Phone,
		Industry:       req.Industry,
		Service:        req.Service,
		Quantity:       req.Quantity,
		Urgency:        req.Urgency,
		Message:        req.Message,
		EstimatedPrice: req.EstimatedPrice,
		FinalPrice:     req.FinalPrice,
	}

	if req.Email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*req.Email))
		if err := validator.Email(normalized); err != nil {
			return respondError(c, http.StatusBadRequest, err.Error())
		}
		input.Email = &normalized
	}

	if req.Status != nil {
		newStatus := quote.Status(*req.Status)
		if !newStatus.Valid() {
			return respondError(c, http.StatusBadRequest, msgInvalidQuoteStatus)
		}

		current, err := h.quoteRepo.GetByID(c.Request().Context(), id)
		if err != nil {
			return respondError(c, http.StatusNotFound, msgQuoteNotFound)
		}
		if current.Status.Terminal() && newStatus != current.Status {
			return respondError(c, http.StatusConflict, msgQuoteDeclinedFinal)
		}

		input.Status = &newStatus
	}

	if err := h.quoteRepo.Update(c.Request().Context(), id, input); err != nil {
		return RespondWithMappedError(c, err)
	}

	h.notifier.Notify(live.CollectionQuotes)

	updated, err := h.quoteRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, msgUpdateQuoteFail)
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *QuoteHandler) DeleteQuote(c echo.Context) error {
	id, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidQuoteID)
	}

	if err := h.quoteRepo.Delete(c.Request().Context(), id); err != nil {
		return RespondWithMappedError(c, err)
	}

	h.notifier.Notify(live.CollectionQuotes)

	return respondMessage(c, http.StatusOK, msgQuoteDeleted)
}
