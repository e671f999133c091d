package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type NotifyHandler struct {
	quoteRepo QuoteRepository
	notifier  QuoteNotifier
}

func NewNotifyHandler(quoteRepo QuoteRepository, notifier QuoteNotifier) *NotifyHandler {
	return &NotifyHandler{
		quoteRepo: quoteRepo,
		notifier:  notifier,
	}
}

type NotifyQuoteRequest struct {
	QuoteID string `json:"quoteId"`
}

type NotifyQuoteResponse struct {
	ID string `json:"id"`
}

// NotifyQuote emails the shop about a quote request and returns the
// provider message ID. Submission and notification are decoupled so a mail
// outage never blocks the public form.
func (h *NotifyHandler) NotifyQuote(c echo.Context) error {
	var req NotifyQuoteRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	id, err := uuid.Parse(req.QuoteID)
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidQuoteID)
	}

	q, err := h.quoteRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, http.StatusNotFound, msgQuoteNotFound)
	}

	messageID, err := h.notifier.SendQuoteNotification(c.Request().Context(), q)
	if err != nil {
		c.Logger().Errorf("Failed to send quote notification for %s: %v", id, err)
		return respondError(c, http.StatusInternalServerError, msgSendNotificationFail)
	}

	return c.JSON(http.StatusOK, NotifyQuoteResponse{ID: messageID})
}
