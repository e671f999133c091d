package quote

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a quote request.
// new → pending/quoted → approved → in-production → completed,
// with declined as an absorbing terminal state.
type Status string

const (
	StatusNew          Status = "new"
	StatusPending      Status = "pending"
	StatusQuoted       Status = "quoted"
	StatusApproved     Status = "approved"
	StatusInProduction Status = "in-production"
	StatusCompleted    Status = "completed"
	StatusDeclined     Status = "declined"
)

// Statuses lists every valid status in lifecycle order.
var Statuses = []Status{
	StatusNew,
	StatusPending,
	StatusQuoted,
	StatusApproved,
	StatusInProduction,
	StatusCompleted,
	StatusDeclined,
}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Terminal reports whether no further status changes are allowed.
func (s Status) Terminal() bool {
	return s == StatusDeclined
}

type Quote struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Company        string    `json:"company"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Industry       string    `json:"industry"`
	Service        string    `json:"service"`
	Quantity       string    `json:"quantity"`
	Urgency        string    `json:"urgency"`
	Message        string    `json:"message"`
	Status         Status    `json:"status"`
	EstimatedPrice *float64  `json:"estimatedPrice,omitempty"`
	FinalPrice     *float64  `json:"finalPrice,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CreateQuoteInput struct {
	FirstName string
	LastName  string
	Company   string
	Email     string
	Phone     string
	Industry  string
	Service   string
	Quantity  string
	Urgency   string
	Message   string
}

type UpdateQuoteInput struct {
	FirstName      *string
	LastName       *string
	Company        *string
	Email          *string
	Phone          *string
	Industry       *string
	Service        *string
	Quantity       *string
	Urgency        *string
	Message        *string
	Status         *Status
	EstimatedPrice *float64
	FinalPrice     *float64
}
