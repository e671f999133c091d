package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"printshop-service/internal/domain/siteimage"
	"printshop-service/internal/live"
	apperrors "printshop-service/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSiteImageRepo struct {
	mu     sync.Mutex
	images []*siteimage.SiteImage

	setCustomErr error
}

func (f *fakeSiteImageRepo) add(slot siteimage.Slot, customURL, customPath string) *siteimage.SiteImage {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now()
	img := &siteimage.SiteImage{
		ID:              uuid.New(),
		Page:            slot.Page,
		Section:         slot.Section,
		Name:            slot.Name,
		Location:        slot.Location,
		StockURL:        slot.StockURL,
		CustomURL:       customURL,
		CustomPath:      customPath,
		RecommendedSize: slot.RecommendedSize,
		SortOrder:       slot.SortOrder,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	f.images = append(f.images, img)
	return img
}

func (f *fakeSiteImageRepo) GetByID(_ context.Context, id uuid.UUID) (*siteimage.SiteImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, img := range f.images {
		if img.ID == id {
			copied := *img
			return &copied, nil
		}
	}
	return nil, apperrors.NotFound("site image not found")
}

func (f *fakeSiteImageRepo) List(_ context.Context) ([]*siteimage.SiteImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*siteimage.SiteImage, len(f.images))
	copy(out, f.images)
	return out, nil
}

func (f *fakeSiteImageRepo) ListByPage(_ context.Context, page string) ([]*siteimage.SiteImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*siteimage.SiteImage
	for _, img := range f.images {
		if img.Page == page {
			out = append(out, img)
		}
	}
	return out, nil
}

func (f *fakeSiteImageRepo) SetCustom(_ context.Context, id uuid.UUID, customURL, customPath string) error {
	if f.setCustomErr != nil {
		return f.setCustomErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, img := range f.images {
		if img.ID == id {
			img.CustomURL = customURL
			img.CustomPath = customPath
			return nil
		}
	}
	return apperrors.NotFound("site image not found")
}

func (f *fakeSiteImageRepo) ClearCustom(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, img := range f.images {
		if img.ID == id {
			img.CustomURL = ""
			img.CustomPath = ""
			return nil
		}
	}
	return apperrors.NotFound("site image not found")
}

func TestListPageImagesResolvesCustomOverStock(t *testing.T) {
	repo := &fakeSiteImageRepo{}
	repo.add(siteimage.Slot{Page: "home", Section: "Hero", Name: "home-hero-bg", StockURL: "https://stock.test/hero.jpg", SortOrder: 1}, "", "")
	repo.add(siteimage.Slot{Page: "home", Section: "Services", Name: "home-services-digital", StockURL: "https://stock.test/digital.jpg", SortOrder: 2},
		"https://bucket.s3.test/site-images/custom.png", "site-images/custom.png")

	h := NewSiteImageHandler(repo, &fakeStorage{}, &fakeNotifier{}, 10<<20)

	c, rec := newJSONContext(t, http.MethodGet, "/site-images/home", "")
	c.SetParamNames(paramPage)
	c.SetParamValues("home")

	require.NoError(t, h.ListPageImages(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resolved []ResolvedImage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resolved))
	require.Len(t, resolved, 2)

	byName := make(map[string]ResolvedImage)
	for _, r := range resolved {
		byName[r.Name] = r
	}
	assert.Equal(t, "https://stock.test/hero.jpg", byName["home-hero-bg"].URL)
	assert.Equal(t, "https://bucket.s3.test/site-images/custom.png", byName["home-services-digital"].URL)
}

func TestUploadCustomReplacesPreviousObject(t *testing.T) {
	repo := &fakeSiteImageRepo{}
	img := repo.add(siteimage.Slot{Page: "home", Name: "home-hero-bg", StockURL: "https://stock.test/hero.jpg"},
		"https://bucket.s3.test/site-images/old.png", "site-images/old.png")

	storage := &fakeStorage{}
	notifier := &fakeNotifier{}
	h := NewSiteImageHandler(repo, storage, notifier, 10<<20)

	c, rec := newMultipartContext(t, nil, "image/png")
	c.SetParamNames(paramID)
	c.SetParamValues(img.ID.String())

	require.NoError(t, h.UploadCustom(c))
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, storage.uploaded, 1)
	require.Len(t, storage.deleted, 1)
	assert.Equal(t, "site-images/old.png", storage.deleted[0])
	assert.Equal(t, 1, notifier.count(live.CollectionSiteImages))

	updated, err := repo.GetByID(nil, img.ID)
	require.NoError(t, err)
	assert.Equal(t, storage.uploaded[0], updated.CustomPath)
}

func TestUploadCustomCleansUpOnRepointFailure(t *testing.T) {
	repo := &fakeSiteImageRepo{setCustomErr: errRepoDown}
	img := repo.add(siteimage.Slot{Page: "home", Name: "home-hero-bg", StockURL: "https://stock.test/hero.jpg"}, "", "")

	storage := &fakeStorage{}
	h := NewSiteImageHandler(repo, storage, &fakeNotifier{}, 10<<20)

	c, rec := newMultipartContext(t, nil, "image/png")
	c.SetParamNames(paramID)
	c.SetParamValues(img.ID.String())

	require.NoError(t, h.UploadCustom(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	require.Len(t, storage.uploaded, 1)
	require.Len(t, storage.deleted, 1)
	assert.Equal(t, storage.uploaded[0], storage.deleted[0])
}

func TestRevertClearsOverride(t *testing.T) {
	repo := &fakeSiteImageRepo{}
	img := repo.add(siteimage.Slot{Page: "home", Name: "home-hero-bg", StockURL: "https://stock.test/hero.jpg"},
		"https://bucket.s3.test/site-images/custom.png", "site-images/custom.png")

	storage := &fakeStorage{}
	notifier := &fakeNotifier{}
	h := NewSiteImageHandler(repo, storage, notifier, 10<<20)

	c, rec := newJSONContext(t, http.MethodPost, "/", "")
	c.SetParamNames(paramID)
	c.SetParamValues(img.ID.String())

	require.NoError(t, h.Revert(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, storage.deleted, 1)
	assert.Equal(t, "site-images/custom.png", storage.deleted[0])
	assert.Equal(t, 1, notifier.count(live.CollectionSiteImages))

	cleared, err := repo.GetByID(nil, img.ID)
	require.NoError(t, err)
	assert.Empty(t, cleared.CustomURL)
	assert.Empty(t, cleared.CustomPath)
}

func TestRevertWithoutOverride(t *testing.T) {
	repo := &fakeSiteImageRepo{}
	img := repo.add(siteimage.Slot{Page: "home", Name: "home-hero-bg", StockURL: "https://stock.test/hero.jpg"}, "", "")

	storage := &fakeStorage{}
	h := NewSiteImageHandler(repo, storage, &fakeNotifier{}, 10<<20)

	c, rec := newJSONContext(t, http.MethodPost, "/", "")
	c.SetParamNames(paramID)
	c.SetParamValues(img.ID.String())

	require.NoError(t, h.Revert(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, storage.deleted)
}
