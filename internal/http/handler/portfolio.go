package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"printshop-service/internal/domain/portfolio"
	"printshop-service/internal/infra/s3"
	"printshop-service/internal/live"
	"printshop-service/internal/views"
	apperrors "printshop-service/pkg/errors"
	"printshop-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type PortfolioHandler struct {
	portfolioRepo PortfolioRepository
	storage       StorageOperations
	notifier      SnapshotNotifier
	maxImageBytes int64
}

func NewPortfolioHandler(portfolioRepo PortfolioRepository, storage StorageOperations, notifier SnapshotNotifier, maxImageBytes int64) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioRepo: portfolioRepo,
		storage:       storage,
		notifier:      notifier,
		maxImageBytes: maxImageBytes,
	}
}

// ListPortfolio returns every item, hidden ones included, for the admin
// grid.
func (h *PortfolioHandler) ListPortfolio(c echo.Context) error {
	items, err := h.portfolioRepo.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Failed to list portfolio: %v", err)
		return respondError(c, http.StatusInternalServerError, msgListPortfolioFail)
	}

	return c.JSON(http.StatusOK, items)
}

type PublicPortfolioResponse struct {
	Items []*portfolio.Item `json:"items"`
	Tabs  []views.Tab       `json:"tabs"`
}

// ListPublicPortfolio returns visible items in display order with industry
// tabs, filtered by the optional industry and search query params. Tabs are
// computed over the full visible set so counts stay stable while filtering.
func (h *PortfolioHandler) ListPublicPortfolio(c echo.Context) error {
	items, err := h.portfolioRepo.ListVisible(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Failed to list public portfolio: %v", err)
		return respondError(c, http.StatusInternalServerError, msgListPortfolioFail)
	}

	industries := make([]string, 0, len(items))
	for _, item := range items {
		industries = append(industries, item.Industry)
	}

	filtered := views.FilterPortfolio(items, c.QueryParam(queryIndustry), c.QueryParam(querySearch))

	return c.JSON(http.StatusOK, PublicPortfolioResponse{
		Items: views.SortPortfolio(filtered),
		Tabs:  views.IndustryTabs(industries),
	})
}

// CreateItem stores the uploaded image first, then inserts the record. If
// the insert fails the freshly stored object is deleted so no orphan
// remains.
func (h *PortfolioHandler) CreateItem(c echo.Context) error {
	clientName := strings.TrimSpace(c.FormValue("clientName"))
	if clientName == "" {
		return respondError(c, http.StatusBadRequest, msgClientNameRequired)
	}

	fileHeader, err := c.FormFile(formFieldImage)
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgImageFileRequired)
	}

	imageURL, imagePath, err := h.storeImage(fileHeader, s3.BuildPortfolioKey)
	if err != nil {
		return respondAppError(c, err)
	}

	item, err := h.portfolioRepo.Create(c.Request().Context(), portfolio.CreateItemInput{
		ClientName:  clientName,
		Industry:    strings.TrimSpace(c.FormValue("industry")),
		ProjectType: strings.TrimSpace(c.FormValue("projectType")),
		Description: c.FormValue("description"),
		ImageURL:    imageURL,
		ImagePath:   imagePath,
		Featured:    formBool(c, "featured", false),
		Visible:     formBool(c, "visible", true),
	})
	if err != nil {
		c.Logger().Errorf("Failed to create portfolio item: %v", err)
		if cleanupErr := h.storage.DeleteObject(imagePath); cleanupErr != nil {
			c.Logger().Errorf("Failed to clean up orphaned object %s: %v", imagePath, cleanupErr)
		}
		return respondError(c, http.StatusInternalServerError, msgCreateItemFail)
	}

	h.notifier.Notify(live.CollectionPortfolio)

	return c.JSON(http.StatusCreated, item)
}

type UpdateItemRequest struct {
	ClientName  *string `json:"clientName"`
	Industry    *string `json:"industry"`
	ProjectType *string `json:"projectType"`
	Description *string `json:"description"`
	Featured    *bool   `json:"featured"`
	SortOrder   *int    `json:"order"`
}

func (h *PortfolioHandler) UpdateItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidItemID)
	}

	var req UpdateItemRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	input := portfolio.UpdateItemInput{
		Industry:    req.Industry,
		ProjectType: req.ProjectType,
		Description: req.Description,
		Featured:    req.Featured,
		SortOrder:   req.SortOrder,
	}

	if req.ClientName != nil {
		name := strings.TrimSpace(*req.ClientName)
		if name == "" {
			return respondError(c, http.StatusBadRequest, msgClientNameRequired)
		}
		input.ClientName = &name
	}

	if err := h.portfolioRepo.Update(c.Request().Context(), id, input); err != nil {
		return RespondWithMappedError(c, err)
	}

	h.notifier.Notify(live.CollectionPortfolio)

	updated, err := h.portfolioRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, msgUpdateItemFail)
	}

	return c.JSON(http.StatusOK, updated)
}

// ReplaceImage uploads the new object, repoints the record, then deletes
// the old object best-effort. The old object is only removed after the
// record no longer references it; a failed delete leaves an orphan, never
// a broken image.
func (h *PortfolioHandler) ReplaceImage(c echo.Context) error {
	id, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidItemID)
	}

	item, err := h.portfolioRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, http.StatusNotFound, msgItemNotFound)
	}

	fileHeader, err := c.FormFile(formFieldImage)
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgImageFileRequired)
	}

	imageURL, imagePath, err := h.storeImage(fileHeader, s3.BuildPortfolioKey)
	if err != nil {
		return respondAppError(c, err)
	}

	if err := h.portfolioRepo.UpdateImage(c.Request().Context(), id, imageURL, imagePath); err != nil {
		if cleanupErr := h.storage.DeleteObject(imagePath); cleanupErr != nil {
			c.Logger().Errorf("Failed to clean up orphaned object %s: %v", imagePath, cleanupErr)
		}
		return RespondWithMappedError(c, err)
	}

	if item.ImagePath != "" && item.ImagePath != imagePath {
		if err := h.storage.DeleteObject(item.ImagePath); err != nil {
			c.Logger().Errorf("Failed to delete replaced object %s (orphaned): %v", item.ImagePath, err)
		}
	}

	h.notifier.Notify(live.CollectionPortfolio)

	updated, err := h.portfolioRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, msgReplaceImageFail)
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *PortfolioHandler) ToggleVisibility(c echo.Context) error {
	id, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidItemID)
	}

	item, err := h.portfolioRepo.ToggleVisibility(c.Request().Context(), id)
	if err != nil {
		return RespondWithMappedError(c, err)
	}

	h.notifier.Notify(live.CollectionPortfolio)

	return c.JSON(http.StatusOK, item)
}

// DeleteItem removes the record first, then deletes the backing object
// best-effort. A failed object delete logs an orphan but the item is gone.
func (h *PortfolioHandler) DeleteItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidItemID)
	}

	item, err := h.portfolioRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, http.StatusNotFound, msgItemNotFound)
	}

	if err := h.portfolioRepo.Delete(c.Request().Context(), id); err != nil {
		return RespondWithMappedError(c, err)
	}

	if item.ImagePath != "" {
		if err := h.storage.DeleteObject(item.ImagePath); err != nil {
			c.Logger().Errorf("Failed to delete object %s (orphaned): %v", item.ImagePath, err)
		}
	}

	h.notifier.Notify(live.CollectionPortfolio)

	return respondMessage(c, http.StatusOK, msgItemDeleted)
}

// storeImage validates and uploads a multipart image, returning the durable
// URL and storage key.
func (h *PortfolioHandler) storeImage(fileHeader *multipart.FileHeader, buildKey func(ext string) string) (string, string, error) {
	return storeImage(h.storage, fileHeader, h.maxImageBytes, buildKey)
}

// storeImage is shared by the portfolio and site image handlers. Failures
// come back as AppErrors so callers can respond with the specific message.
func storeImage(storage StorageOperations, fileHeader *multipart.FileHeader, maxBytes int64, buildKey func(ext string) string) (string, string, error) {
	ext, err := validator.ImageContentType(fileHeader.Header.Get(echo.HeaderContentType))
	if err != nil {
		return "", "", apperrors.Validation(err.Error())
	}
	if err := validator.ImageSize(fileHeader.Size, maxBytes); err != nil {
		return "", "", apperrors.Validation(err.Error())
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", "", apperrors.InternalServer(msgImageReadFail, err)
	}
	defer src.Close()

	key := buildKey(ext)
	imageURL, err := storage.Upload(src, key, fileHeader.Header.Get(echo.HeaderContentType))
	if err != nil {
		return "", "", apperrors.InternalServer(msgImageUploadFail, err)
	}

	return imageURL, key, nil
}

func formBool(c echo.Context, field string, defaultValue bool) bool {
	raw := strings.TrimSpace(c.FormValue(field))
	if raw == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return parsed
}
