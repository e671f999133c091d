package handler

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"printshop-service/internal/domain/client"
	"printshop-service/internal/domain/portfolio"
	"printshop-service/internal/domain/quote"
	"printshop-service/internal/domain/staff"
	"printshop-service/internal/live"
	apperrors "printshop-service/pkg/errors"

	"github.com/google/uuid"
)

// In-memory fakes implementing the handler interfaces.

type fakeQuoteRepo struct {
	mu     sync.Mutex
	quotes []*quote.Quote

	createErr error
	listErr   error
	updateErr error
	deleteErr error
}

func (f *fakeQuoteRepo) Create(_ context.Context, input quote.CreateQuoteInput) (*quote.Quote, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now()
	q := &quote.Quote{
		ID:        uuid.New(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Company:   input.Company,
		Email:     input.Email,
		Phone:     input.Phone,
		Industry:  input.Industry,
		Service:   input.Service,
		Quantity:  input.Quantity,
		Urgency:   input.Urgency,
		Message:   input.Message,
		Status:    quote.StatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.quotes = append(f.quotes, q)
	return q, nil
}

func (f *fakeQuoteRepo) GetByID(_ context.Context, id uuid.UUID) (*quote.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, q := range f.quotes {
		if q.ID == id {
			copied := *q
			return &copied, nil
		}
	}
	return nil, apperrors.NotFound("quote not found")
}

func (f *fakeQuoteRepo) List(_ context.Context, limit int) ([]*quote.Quote, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*quote.Quote, len(f.quotes))
	copy(out, f.quotes)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeQuoteRepo) DistinctCompanies(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	seen := make(map[string]bool)
	var companies []string
	for _, q := range f.quotes {
		if q.Company != "" && !seen[q.Company] {
			seen[q.Company] = true
			companies = append(companies, q.Company)
		}
	}
	return companies, nil
}

func (f *fakeQuoteRepo) Update(_ context.Context, id uuid.UUID, input quote.UpdateQuoteInput) error {
	if f.updateErr != nil {
		return f.updateErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, q := range f.quotes {
		if q.ID != id {
			continue
		}
		if input.FirstName != nil {
			q.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			q.LastName = *input.LastName
		}
		if input.Company != nil {
			q.Company = *input.Company
		}
		if input.Email != nil {
			q.Email = *input.Email
		}
		if input.Status != nil {
			q.Status = *input.Status
		}
		if input.EstimatedPrice != nil {
			q.EstimatedPrice = input.EstimatedPrice
		}
		if input.FinalPrice != nil {
			q.FinalPrice = input.FinalPrice
		}
		q.UpdatedAt = time.Now()
		return nil
	}
	return apperrors.NotFound("quote not found")
}

func (f *fakeQuoteRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for i, q := range f.quotes {
		if q.ID == id {
			f.quotes = append(f.quotes[:i], f.quotes[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("quote not found")
}

type fakeClientRepo struct {
	mu      sync.Mutex
	clients []*client.Client

	createErr error
}

func (f *fakeClientRepo) Create(_ context.Context, input client.CreateClientInput) (*client.Client, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, cl := range f.clients {
		if cl.Name == input.Name {
			return nil, apperrors.Conflict("a client with this name already exists")
		}
	}

	cl := &client.Client{
		ID:           uuid.New(),
		Name:         input.Name,
		Industry:     input.Industry,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
		Notes:        input.Notes,
		CreatedAt:    time.Now(),
	}
	f.clients = append(f.clients, cl)
	return cl, nil
}

func (f *fakeClientRepo) GetByID(_ context.Context, id uuid.UUID) (*client.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, cl := range f.clients {
		if cl.ID == id {
			copied := *cl
			return &copied, nil
		}
	}
	return nil, apperrors.NotFound("client not found")
}

func (f *fakeClientRepo) List(_ context.Context) ([]*client.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*client.Client, len(f.clients))
	copy(out, f.clients)
	return out, nil
}

func (f *fakeClientRepo) Update(_ context.Context, id uuid.UUID, input client.UpdateClientInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, cl := range f.clients {
		if cl.ID != id {
			continue
		}
		if input.Name != nil {
			cl.Name = *input.Name
		}
		if input.Industry != nil {
			cl.Industry = *input.Industry
		}
		if input.ContactEmail != nil {
			cl.ContactEmail = *input.ContactEmail
		}
		if input.ContactPhone != nil {
			cl.ContactPhone = *input.ContactPhone
		}
		if input.Notes != nil {
			cl.Notes = *input.Notes
		}
		return nil
	}
	return apperrors.NotFound("client not found")
}

func (f *fakeClientRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, cl := range f.clients {
		if cl.ID == id {
			f.clients = append(f.clients[:i], f.clients[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("client not found")
}

type fakePortfolioRepo struct {
	mu    sync.Mutex
	items []*portfolio.Item

	createErr      error
	updateImageErr error
}

func (f *fakePortfolioRepo) Create(_ context.Context, input portfolio.CreateItemInput) (*portfolio.Item, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now()
	item := &portfolio.Item{
		ID:          uuid.New(),
		ClientName:  input.ClientName,
		Industry:    input.Industry,
		ProjectType: input.ProjectType,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		ImagePath:   input.ImagePath,
		Featured:    input.Featured,
		Visible:     input.Visible,
		SortOrder:   portfolio.DefaultSortOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakePortfolioRepo) GetByID(_ context.Context, id uuid.UUID) (*portfolio.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.items {
		if item.ID == id {
			copied := *item
			return &copied, nil
		}
	}
	return nil, apperrors.NotFound("portfolio item not found")
}

func (f *fakePortfolioRepo) List(_ context.Context) ([]*portfolio.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*portfolio.Item, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakePortfolioRepo) ListVisible(_ context.Context) ([]*portfolio.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*portfolio.Item
	for _, item := range f.items {
		if item.Visible {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakePortfolioRepo) Update(_ context.Context, id uuid.UUID, input portfolio.UpdateItemInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.items {
		if item.ID != id {
			continue
		}
		if input.ClientName != nil {
			item.ClientName = *input.ClientName
		}
		if input.Industry != nil {
			item.Industry = *input.Industry
		}
		if input.ProjectType != nil {
			item.ProjectType = *input.ProjectType
		}
		if input.Description != nil {
			item.Description = *input.Description
		}
		if input.Featured != nil {
			item.Featured = *input.Featured
		}
		if input.SortOrder != nil {
			item.SortOrder = *input.SortOrder
		}
		return nil
	}
	return apperrors.NotFound("portfolio item not found")
}

func (f *fakePortfolioRepo) UpdateImage(_ context.Context, id uuid.UUID, imageURL, imagePath string) error {
	if f.updateImageErr != nil {
		return f.updateImageErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.items {
		if item.ID == id {
			item.ImageURL = imageURL
			item.ImagePath = imagePath
			return nil
		}
	}
	return apperrors.NotFound("portfolio item not found")
}

func (f *fakePortfolioRepo) ToggleVisibility(_ context.Context, id uuid.UUID) (*portfolio.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.items {
		if item.ID == id {
			item.Visible = !item.Visible
			copied := *item
			return &copied, nil
		}
	}
	return nil, apperrors.NotFound("portfolio item not found")
}

func (f *fakePortfolioRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("portfolio item not found")
}

type fakeStorage struct {
	mu       sync.Mutex
	uploaded []string
	deleted  []string

	uploadErr error
	deleteErr error
}

func (f *fakeStorage) Upload(src io.Reader, objectKey, contentType string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	if _, err := io.Copy(io.Discard, src); err != nil {
		return "", err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploaded = append(f.uploaded, objectKey)
	return "https://bucket.s3.test/" + objectKey, nil
}

func (f *fakeStorage) DeleteObject(objectKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, objectKey)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return nil
}

type fakeNotifier struct {
	mu       sync.Mutex
	notified []live.Collection
}

func (f *fakeNotifier) Notify(collection live.Collection) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notified = append(f.notified, collection)
}

func (f *fakeNotifier) count(collection live.Collection) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.notified {
		if c == collection {
			n++
		}
	}
	return n
}

type fakeStaffRepo struct {
	byEmail map[string]*staff.Staff
}

func (f *fakeStaffRepo) GetByEmail(_ context.Context, email string) (*staff.Staff, error) {
	if s, ok := f.byEmail[email]; ok {
		return s, nil
	}
	return nil, apperrors.NotFound("staff not found")
}

type fakeTokenGen struct {
	token string
	err   error
}

func (f *fakeTokenGen) Generate(_ uuid.UUID, _ string) (string, error) {
	return f.token, f.err
}

type fakeQuoteNotifier struct {
	mu        sync.Mutex
	messageID string
	err       error
	sent      []*quote.Quote
}

func (f *fakeQuoteNotifier) SendQuoteNotification(_ context.Context, q *quote.Quote) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, q)
	return f.messageID, nil
}

var errRepoDown = errors.New("connection refused")
