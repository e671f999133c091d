package handler

import (
	"context"
	"io"

	"printshop-service/internal/domain/client"
	"printshop-service/internal/domain/portfolio"
	"printshop-service/internal/domain/quote"
	"printshop-service/internal/domain/siteimage"
	"printshop-service/internal/domain/staff"
	"printshop-service/internal/live"

	"github.com/google/uuid"
)

// Consumer-side interfaces defined by handlers
// Each interface contains only the methods needed by the specific handler

// AuthHandler interfaces
type StaffRepository interface {
	GetByEmail(ctx context.Context, email string) (*staff.Staff, error)
}

type TokenGenerator interface {
	Generate(staffID uuid.UUID, email string) (string, error)
}

// QuoteHandler interfaces
type QuoteRepository interface {
	Create(ctx context.Context, input quote.CreateQuoteInput) (*quote.Quote, error)
	GetByID(ctx context.Context, id uuid.UUID) (*quote.Quote, error)
	List(ctx context.Context, limit int) ([]*quote.Quote, error)
	DistinctCompanies(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id uuid.UUID, input quote.UpdateQuoteInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ClientHandler interfaces
type ClientRepository interface {
	Create(ctx context.Context, input client.CreateClientInput) (*client.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*client.Client, error)
	List(ctx context.Context) ([]*client.Client, error)
	Update(ctx context.Context, id uuid.UUID, input client.UpdateClientInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PortfolioHandler interfaces
type PortfolioRepository interface {
	Create(ctx context.Context, input portfolio.CreateItemInput) (*portfolio.Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*portfolio.Item, error)
	List(ctx context.Context) ([]*portfolio.Item, error)
	ListVisible(ctx context.Context) ([]*portfolio.Item, error)
	Update(ctx context.Context, id uuid.UUID, input portfolio.UpdateItemInput) error
	UpdateImage(ctx context.Context, id uuid.UUID, imageURL, imagePath string) error
	ToggleVisibility(ctx context.Context, id uuid.UUID) (*portfolio.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SiteImageHandler interfaces
type SiteImageRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*siteimage.SiteImage, error)
	List(ctx context.Context) ([]*siteimage.SiteImage, error)
	ListByPage(ctx context.Context, page string) ([]*siteimage.SiteImage, error)
	SetCustom(ctx context.Context, id uuid.UUID, customURL, customPath string) error
	ClearCustom(ctx context.Context, id uuid.UUID) error
}

// Storage interfaces (used by multiple handlers)
type StorageOperations interface {
	Upload(src io.Reader, objectKey, contentType string) (string, error)
	DeleteObject(objectKey string) error
}

// SnapshotNotifier schedules a live feed refresh after a committed mutation.
type SnapshotNotifier interface {
	Notify(collection live.Collection)
}

// SnapshotStreamer attaches stream clients to live feeds.
type SnapshotStreamer interface {
	Subscribe(collection live.Collection) (*live.Subscription, bool)
}

// QuoteNotifier sends the new-quote notification email and returns the
// provider message ID.
type QuoteNotifier interface {
	SendQuoteNotification(ctx context.Context, q *quote.Quote) (string, error)
}
