package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"printshop-service/internal/domain/portfolio"
	"printshop-service/internal/live"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMultipartContext(t *testing.T, fields map[string]string, imageContentType string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}

	if imageContentType != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, formFieldImage, "upload.png"))
		header.Set(echo.HeaderContentType, imageContentType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func seedItem(t *testing.T, repo *fakePortfolioRepo, input portfolio.CreateItemInput) *portfolio.Item {
	t.Helper()
	item, err := repo.Create(nil, input)
	require.NoError(t, err)
	return item
}

func TestCreateItem(t *testing.T) {
	repo := &fakePortfolioRepo{}
	storage := &fakeStorage{}
	notifier := &fakeNotifier{}
	h := NewPortfolioHandler(repo, storage, notifier, 10<<20)

	c, rec := newMultipartContext(t, map[string]string{
		"clientName": "Acme Labs",
		"industry":   "biotech",
		"featured":   "true",
	}, "image/png")

	require.NoError(t, h.CreateItem(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created portfolio.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Acme Labs", created.ClientName)
	assert.True(t, created.Featured)
	assert.True(t, created.Visible)
	assert.NotEmpty(t, created.ImageURL)

	require.Len(t, storage.uploaded, 1)
	assert.Empty(t, storage.deleted)
	assert.Equal(t, 1, notifier.count(live.CollectionPortfolio))
}

func TestCreateItemMissingImage(t *testing.T) {
	repo := &fakePortfolioRepo{}
	h := NewPortfolioHandler(repo, &fakeStorage{}, &fakeNotifier{}, 10<<20)

	c, rec := newMultipartContext(t, map[string]string{"clientName": "Acme Labs"}, "")

	require.NoError(t, h.CreateItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.items)
}

func TestCreateItemUnsupportedType(t *testing.T) {
	storage := &fakeStorage{}
	h := NewPortfolioHandler(&fakePortfolioRepo{}, storage, &fakeNotifier{}, 10<<20)

	c, rec := newMultipartContext(t, map[string]string{"clientName": "Acme Labs"}, "application/pdf")

	require.NoError(t, h.CreateItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, storage.uploaded)
}

func TestCreateItemCleansUpOnInsertFailure(t *testing.T) {
	repo := &fakePortfolioRepo{createErr: errRepoDown}
	storage := &fakeStorage{}
	notifier := &fakeNotifier{}
	h := NewPortfolioHandler(repo, storage, notifier, 10<<20)

	c, rec := newMultipartContext(t, map[string]string{"clientName": "Acme Labs"}, "image/png")

	require.NoError(t, h.CreateItem(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// The freshly uploaded object must be removed when the insert fails.
	require.Len(t, storage.uploaded, 1)
	require.Len(t, storage.deleted, 1)
	assert.Equal(t, storage.uploaded[0], storage.deleted[0])
	assert.Equal(t, 0, notifier.count(live.CollectionPortfolio))
}

func TestReplaceImageDeletesOldObjectLast(t *testing.T) {
	repo := &fakePortfolioRepo{}
	item := seedItem(t, repo, portfolio.CreateItemInput{
		ClientName: "Acme Labs",
		ImageURL:   "https://bucket.s3.test/portfolio/old.png",
		ImagePath:  "portfolio/old.png",
		Visible:    true,
	})
	storage := &fakeStorage{}
	h := NewPortfolioHandler(repo, storage, &fakeNotifier{}, 10<<20)

	c, rec := newMultipartContext(t, nil, "image/png")
	c.SetParamNames(paramID)
	c.SetParamValues(item.ID.String())

	require.NoError(t, h.ReplaceImage(c))
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, storage.uploaded, 1)
	require.Len(t, storage.deleted, 1)
	assert.Equal(t, "portfolio/old.png", storage.deleted[0])

	updated, err := repo.GetByID(nil, item.ID)
	require.NoError(t, err)
	assert.Equal(t, storage.uploaded[0], updated.ImagePath)
}

func TestReplaceImageCleansUpOnRepointFailure(t *testing.T) {
	repo := &fakePortfolioRepo{updateImageErr: errRepoDown}
	item := seedItem(t, repo, portfolio.CreateItemInput{
		ClientName: "Acme Labs",
		ImagePath:  "portfolio/old.png",
		Visible:    true,
	})
	storage := &fakeStorage{}
	h := NewPortfolioHandler(repo, storage, &fakeNotifier{}, 10<<20)

	c, rec := newMultipartContext(t, nil, "image/png")
	c.SetParamNames(paramID)
	c.SetParamValues(item.ID.String())

	require.NoError(t, h.ReplaceImage(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// New object is cleaned up; the old one stays referenced and untouched.
	require.Len(t, storage.deleted, 1)
	assert.Equal(t, storage.uploaded[0], storage.deleted[0])

	stored, err := repo.GetByID(nil, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "portfolio/old.png", stored.ImagePath)
}

func TestToggleVisibility(t *testing.T) {
	repo := &fakePortfolioRepo{}
	item := seedItem(t, repo, portfolio.CreateItemInput{ClientName: "Acme Labs", Visible: true})
	notifier := &fakeNotifier{}
	h := NewPortfolioHandler(repo, &fakeStorage{}, notifier, 10<<20)

	c, rec := newJSONContext(t, http.MethodPost, "/", "")
	c.SetParamNames(paramID)
	c.SetParamValues(item.ID.String())

	require.NoError(t, h.ToggleVisibility(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var toggled portfolio.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &toggled))
	assert.False(t, toggled.Visible)
	assert.Equal(t, 1, notifier.count(live.CollectionPortfolio))
}

func TestDeleteItemSurvivesObjectDeleteFailure(t *testing.T) {
	repo := &fakePortfolioRepo{}
	item := seedItem(t, repo, portfolio.CreateItemInput{
		ClientName: "Acme Labs",
		ImagePath:  "portfolio/gone.png",
		Visible:    true,
	})
	storage := &fakeStorage{deleteErr: errRepoDown}
	notifier := &fakeNotifier{}
	h := NewPortfolioHandler(repo, storage, notifier, 10<<20)

	c, rec := newJSONContext(t, http.MethodDelete, "/", "")
	c.SetParamNames(paramID)
	c.SetParamValues(item.ID.String())

	require.NoError(t, h.DeleteItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, repo.items)
	assert.Equal(t, 1, notifier.count(live.CollectionPortfolio))
}

func TestListPublicPortfolioHidesInvisible(t *testing.T) {
	repo := &fakePortfolioRepo{}
	seedItem(t, repo, portfolio.CreateItemInput{ClientName: "Visible Co", Industry: "retail", Visible: true})
	seedItem(t, repo, portfolio.CreateItemInput{ClientName: "Hidden Co", Industry: "retail", Visible: false})
	h := NewPortfolioHandler(repo, &fakeStorage{}, &fakeNotifier{}, 10<<20)

	c, rec := newJSONContext(t, http.MethodGet, "/portfolio", "")

	require.NoError(t, h.ListPublicPortfolio(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PublicPortfolioResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Visible Co", resp.Items[0].ClientName)
}
