package client

import (
	"time"

	"github.com/google/uuid"
)

// Client is a directory entry for a company the shop has worked with.
// Quotes are joined against it by exact trimmed name match, not by ID.
type Client struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Industry     string    `json:"industry"`
	ContactEmail string    `json:"contactEmail"`
	ContactPhone string    `json:"contactPhone"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateClientInput struct {
	Name         string
	Industry     string
	ContactEmail string
	ContactPhone string
	Notes        string
}

type UpdateClientInput struct {
	Name         *string
	Industry     *string
	ContactEmail *string
	ContactPhone *string
	Notes        *string
}
