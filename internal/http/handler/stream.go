package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"printshop-service/internal/live"

	"github.com/labstack/echo/v4"
)

type StreamHandler struct {
	hub SnapshotStreamer
}

func NewStreamHandler(hub SnapshotStreamer) *StreamHandler {
	return &StreamHandler{hub: hub}
}

// Stream delivers collection snapshots over server-sent events. Each event
// carries the complete current result set; clients replace their local
// list wholesale rather than patching it. The latest snapshot is sent
// immediately on connect.
func (h *StreamHandler) Stream(c echo.Context) error {
	collection := live.Collection(c.Param(paramCollection))

	sub, ok := h.hub.Subscribe(collection)
	if !ok {
		return respondError(c, http.StatusNotFound, msgUnknownCollection)
	}
	defer sub.Unsubscribe()

	flusher, ok := c.Response().Writer.(http.Flusher)
	if !ok {
		return respondError(c, http.StatusInternalServerError, msgStreamUnsupported)
	}

	// The server write timeout covers the whole response and flushing does
	// not extend it. A stream stays open until the client goes away, so
	// clear the deadline for this response only.
	rc := http.NewResponseController(c.Response())
	if err := rc.SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		c.Logger().Errorf("Failed to clear write deadline for %s stream: %v", collection, err)
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().Header().Set("Connection", "keep-alive")
	c.Response().WriteHeader(http.StatusOK)
	flusher.Flush()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case snapshot, open := <-sub.C:
			if !open {
				return nil
			}

			payload, err := json.Marshal(snapshot)
			if err != nil {
				c.Logger().Errorf("Failed to marshal snapshot for %s: %v", collection, err)
				continue
			}

			if _, err := fmt.Fprintf(c.Response().Writer, "event: snapshot\ndata: %s\n\n", payload); err != nil {
				return nil
			}
			flusher.Flush()
		}
	}
}
