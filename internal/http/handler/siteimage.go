package handler

import (
	"net/http"

	"printshop-service/internal/domain/siteimage"
	"printshop-service/internal/infra/s3"
	"printshop-service/internal/live"
	"printshop-service/internal/siteimages"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type SiteImageHandler struct {
	siteImageRepo SiteImageRepository
	storage       StorageOperations
	notifier      SnapshotNotifier
	maxImageBytes int64
}

func NewSiteImageHandler(siteImageRepo SiteImageRepository, storage StorageOperations, notifier SnapshotNotifier, maxImageBytes int64) *SiteImageHandler {
	return &SiteImageHandler{
		siteImageRepo: siteImageRepo,
		storage:       storage,
		notifier:      notifier,
		maxImageBytes: maxImageBytes,
	}
}

// ListSiteImages returns every slot grouped by page for the admin editor.
func (h *SiteImageHandler) ListSiteImages(c echo.Context) error {
	images, err := h.siteImageRepo.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Failed to list site images: %v", err)
		return respondError(c, http.StatusInternalServerError, msgListSiteImagesFail)
	}

	grouped := make(map[string][]*siteimage.SiteImage)
	for _, img := range images {
		grouped[img.Page] = append(grouped[img.Page], img)
	}

	return c.JSON(http.StatusOK, grouped)
}

// ResolvedImage is the public shape of a slot: one display URL, custom
// over stock, with the record internals hidden.
type ResolvedImage struct {
	Name            string `json:"name"`
	Section         string `json:"section"`
	Location        string `json:"location"`
	URL             string `json:"url"`
	RecommendedSize string `json:"recommendedSize"`
	SortOrder       int    `json:"order"`
}

// ListPageImages resolves one page's slots for the public site.
func (h *SiteImageHandler) ListPageImages(c echo.Context) error {
	page := c.Param(paramPage)

	images, err := h.siteImageRepo.ListByPage(c.Request().Context(), page)
	if err != nil {
		c.Logger().Errorf("Failed to list site images for page %s: %v", page, err)
		return respondError(c, http.StatusInternalServerError, msgListSiteImagesFail)
	}

	resolver := siteimages.NewResolver(images)

	resolved := make([]ResolvedImage, 0, len(images))
	for _, img := range images {
		resolved = append(resolved, ResolvedImage{
			Name:            img.Name,
			Section:         img.Section,
			Location:        img.Location,
			URL:             resolver.Resolve(img.Page, img.Name),
			RecommendedSize: img.RecommendedSize,
			SortOrder:       img.SortOrder,
		})
	}

	return c.JSON(http.StatusOK, resolved)
}

// UploadCustom stores the uploaded image, points the slot at it, then
// deletes the previous custom object best-effort.
func (h *SiteImageHandler) UploadCustom(c echo.Context) error {
	id, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidSiteImageID)
	}

	img, err := h.siteImageRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, http.StatusNotFound, msgSiteImageNotFound)
	}

	fileHeader, err := c.FormFile(formFieldImage)
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgImageFileRequired)
	}

	customURL, customPath, err := storeImage(h.storage, fileHeader, h.maxImageBytes, func(ext string) string {
		return s3.BuildSiteImageKey(img.Name, ext)
	})
	if err != nil {
		return respondAppError(c, err)
	}

	if err := h.siteImageRepo.SetCustom(c.Request().Context(), id, customURL, customPath); err != nil {
		if cleanupErr := h.storage.DeleteObject(customPath); cleanupErr != nil {
			c.Logger().Errorf("Failed to clean up orphaned object %s: %v", customPath, cleanupErr)
		}
		return RespondWithMappedError(c, err)
	}

	if img.CustomPath != "" && img.CustomPath != customPath {
		if err := h.storage.DeleteObject(img.CustomPath); err != nil {
			c.Logger().Errorf("Failed to delete replaced object %s (orphaned): %v", img.CustomPath, err)
		}
	}

	h.notifier.Notify(live.CollectionSiteImages)

	updated, err := h.siteImageRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, msgSetSiteImageFail)
	}

	return c.JSON(http.StatusOK, updated)
}

// Revert clears the custom override so the slot falls back to its stock
// image, then deletes the custom object best-effort.
func (h *SiteImageHandler) Revert(c echo.Context) error {
	id, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidSiteImageID)
	}

	img, err := h.siteImageRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, http.StatusNotFound, msgSiteImageNotFound)
	}

	if err := h.siteImageRepo.ClearCustom(c.Request().Context(), id); err != nil {
		return RespondWithMappedError(c, err)
	}

	if img.CustomPath != "" {
		if err := h.storage.DeleteObject(img.CustomPath); err != nil {
			c.Logger().Errorf("Failed to delete object %s (orphaned): %v", img.CustomPath, err)
		}
	}

	h.notifier.Notify(live.CollectionSiteImages)

	return respondMessage(c, http.StatusOK, msgSiteImageReverted)
}
