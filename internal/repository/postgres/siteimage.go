package postgres

import (
	"context"

	"printshop-service/internal/domain/siteimage"
	apperrors "printshop-service/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const siteImageColumns = `
	id, COALESCE(page, ''), COALESCE(section, ''), COALESCE(name, ''),
	COALESCE(location, ''), COALESCE(stock_url, ''),
	COALESCE(custom_url, ''), COALESCE(custom_path, ''),
	COALESCE(recommended_size, ''), COALESCE(sort_order, 999),
	created_at, updated_at
`

type SiteImageRepository struct {
	db *DB
}

func NewSiteImageRepository(db *DB) *SiteImageRepository {
	return &SiteImageRepository{db: db}
}

// Seed inserts the default slot catalog, skipping any (page, name) pair
// that already exists. Safe to run on every startup.
func (r *SiteImageRepository) Seed(ctx context.Context, slots []siteimage.Slot) error {
	query := `
		INSERT INTO site_images (page, section, name, location, stock_url, recommended_size, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (page, name) DO NOTHING
	`

	for _, slot := range slots {
		if _, err := r.db.Pool.Exec(ctx, query,
			slot.Page, slot.Section, slot.Name, slot.Location,
			slot.StockURL, slot.RecommendedSize, slot.SortOrder,
		); err != nil {
			return wrapOp("seed site image", err)
		}
	}

	return nil
}

func (r *SiteImageRepository) GetByID(ctx context.Context, id uuid.UUID) (*siteimage.SiteImage, error) {
	query := `SELECT ` + siteImageColumns + ` FROM site_images WHERE id = $1`

	img := &siteimage.SiteImage{}
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(siteImageFields(img)...)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errSiteImageNotFound)
		}
		return nil, wrapOp("get site image", err)
	}

	return img, nil
}

// List returns every slot grouped by page, in slot order.
func (r *SiteImageRepository) List(ctx context.Context) ([]*siteimage.SiteImage, error) {
	return r.list(ctx, `SELECT `+siteImageColumns+` FROM site_images ORDER BY page ASC, sort_order ASC`)
}

// ListByPage returns the slots for one page key, in slot order.
func (r *SiteImageRepository) ListByPage(ctx context.Context, page string) ([]*siteimage.SiteImage, error) {
	query := `SELECT ` + siteImageColumns + ` FROM site_images WHERE page = $1 ORDER BY sort_order ASC`

	rows, err := r.db.Pool.Query(ctx, query, page)
	if err != nil {
		return nil, wrapOp("list site images", err)
	}
	defer rows.Close()

	return scanSiteImages(rows)
}

func (r *SiteImageRepository) list(ctx context.Context, query string) ([]*siteimage.SiteImage, error) {
	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, wrapOp("list site images", err)
	}
	defer rows.Close()

	return scanSiteImages(rows)
}

// SetCustom points the slot at a staff-uploaded object. The caller deletes
// the previous custom object afterwards, never before.
func (r *SiteImageRepository) SetCustom(ctx context.Context, id uuid.UUID, customURL, customPath string) error {
	query := `
		UPDATE site_images
		SET custom_url = $2, custom_path = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Pool.Exec(ctx, query, id, customURL, customPath)
	if err != nil {
		return wrapOp("set custom site image", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errSiteImageNotFound)
	}

	return nil
}

// ClearCustom reverts the slot to its stock image.
func (r *SiteImageRepository) ClearCustom(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE site_images
		SET custom_url = '', custom_path = '', updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return wrapOp("clear custom site image", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errSiteImageNotFound)
	}

	return nil
}

func scanSiteImages(rows pgx.Rows) ([]*siteimage.SiteImage, error) {
	var images []*siteimage.SiteImage
	for rows.Next() {
		img := &siteimage.SiteImage{}
		if err := rows.Scan(siteImageFields(img)...); err != nil {
			return nil, wrapOp("scan site image", err)
		}
		images = append(images, img)
	}

	return images, rows.Err()
}

func siteImageFields(img *siteimage.SiteImage) []interface{} {
	return []interface{}{
		&img.ID, &img.Page, &img.Section, &img.Name,
		&img.Location, &img.StockURL,
		&img.CustomURL, &img.CustomPath,
		&img.RecommendedSize, &img.SortOrder,
		&img.CreatedAt, &img.UpdatedAt,
	}
}
