package portfolio

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSortOrder is assigned when a legacy record has no sort order,
// pushing it after explicitly ordered items.
const DefaultSortOrder = 999

// Item is a public-facing case study. ImagePath is retained solely so the
// backing storage object can be deleted with the record.
type Item struct {
	ID          uuid.UUID `json:"id"`
	ClientName  string    `json:"clientName"`
	Industry    string    `json:"industry"`
	ProjectType string    `json:"projectType"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	ImagePath   string    `json:"imagePath"`
	Featured    bool      `json:"featured"`
	Visible     bool      `json:"visible"`
	SortOrder   int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateItemInput struct {
	ClientName  string
	Industry    string
	ProjectType string
	Description string
	ImageURL    string
	ImagePath   string
	Featured    bool
	Visible     bool
}

type UpdateItemInput struct {
	ClientName  *string
	Industry    *string
	ProjectType *string
	Description *string
	Featured    *bool
	SortOrder   *int
}
