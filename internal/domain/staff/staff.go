package staff

import (
	"time"

	"github.com/google/uuid"
)

// Staff is an admin account that can sign in to the back office.
type Staff struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateStaffInput struct {
	Email        string
	Name         string
	PasswordHash string
}
