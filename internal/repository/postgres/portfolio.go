package postgres

import (
	"context"
	"fmt"

	"printshop-service/internal/domain/portfolio"
	apperrors "printshop-service/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const portfolioColumns = `
	id, COALESCE(client_name, ''), COALESCE(industry, ''),
	COALESCE(project_type, ''), COALESCE(description, ''),
	COALESCE(image_url, ''), COALESCE(image_path, ''),
	COALESCE(featured, FALSE), COALESCE(visible, TRUE),
	COALESCE(sort_order, 999), created_at, updated_at
`

// Display ordering: featured items first, then ascending sort order.
const portfolioOrderBy = " ORDER BY featured DESC, sort_order ASC"

type PortfolioRepository struct {
	db *DB
}

func NewPortfolioRepository(db *DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

// Create inserts a new item appended after the current maximum sort order.
// The scalar subquery keeps the max+1 assignment atomic with the insert.
func (r *PortfolioRepository) Create(ctx context.Context, input portfolio.CreateItemInput) (*portfolio.Item, error) {
	query := `
		INSERT INTO portfolio (client_name, industry, project_type, description, image_url, image_path, featured, visible, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8,
			(SELECT COALESCE(MAX(sort_order), 0) + 1 FROM portfolio))
		RETURNING ` + portfolioColumns

	item := &portfolio.Item{}
	err := r.db.Pool.QueryRow(ctx, query,
		input.ClientName, input.Industry, input.ProjectType, input.Description,
		input.ImageURL, input.ImagePath, input.Featured, input.Visible,
	).Scan(portfolioFields(item)...)

	if err != nil {
		return nil, wrapOp("create portfolio item", err)
	}

	return item, nil
}

func (r *PortfolioRepository) GetByID(ctx context.Context, id uuid.UUID) (*portfolio.Item, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolio WHERE id = $1`

	item := &portfolio.Item{}
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(portfolioFields(item)...)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errItemNotFound)
		}
		return nil, wrapOp("get portfolio item", err)
	}

	return item, nil
}

// List returns every item, hidden ones included, in display order.
func (r *PortfolioRepository) List(ctx context.Context) ([]*portfolio.Item, error) {
	return r.list(ctx, `SELECT `+portfolioColumns+` FROM portfolio`+portfolioOrderBy)
}

// ListVisible returns only publicly visible items in display order.
func (r *PortfolioRepository) ListVisible(ctx context.Context) ([]*portfolio.Item, error) {
	return r.list(ctx, `SELECT `+portfolioColumns+` FROM portfolio WHERE visible = TRUE`+portfolioOrderBy)
}

func (r *PortfolioRepository) list(ctx context.Context, query string) ([]*portfolio.Item, error) {
	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, wrapOp("list portfolio items", err)
	}
	defer rows.Close()

	var items []*portfolio.Item
	for rows.Next() {
		item := &portfolio.Item{}
		if err := rows.Scan(portfolioFields(item)...); err != nil {
			return nil, wrapOp("scan portfolio item", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *PortfolioRepository) Update(ctx context.Context, id uuid.UUID, input portfolio.UpdateItemInput) error {
	query := "UPDATE portfolio SET updated_at = NOW()"
	args := []interface{}{id}
	argCount := 1

	appendArg := func(column string, value interface{}) {
		argCount++
		query += fmt.Sprintf(", %s = $%d", column, argCount)
		args = append(args, value)
	}

	if input.ClientName != nil {
		appendArg("client_name", *input.ClientName)
	}
	if input.Industry != nil {
		appendArg("industry", *input.Industry)
	}
	if input.ProjectType != nil {
		appendArg("project_type", *input.ProjectType)
	}
	if input.Description != nil {
		appendArg("description", *input.Description)
	}
	if input.Featured != nil {
		appendArg("featured", *input.Featured)
	}
	if input.SortOrder != nil {
		appendArg("sort_order", *input.SortOrder)
	}

	query += " WHERE id = $1"

	result, err := r.db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return wrapOp("update portfolio item", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errItemNotFound)
	}

	return nil
}

// UpdateImage points the item at a newly stored object. The caller is
// responsible for deleting the previous object afterwards, never before.
func (r *PortfolioRepository) UpdateImage(ctx context.Context, id uuid.UUID, imageURL, imagePath string) error {
	query := `
		UPDATE portfolio
		SET image_url = $2, image_path = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Pool.Exec(ctx, query, id, imageURL, imagePath)
	if err != nil {
		return wrapOp("update portfolio image", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errItemNotFound)
	}

	return nil
}

// ToggleVisibility flips the visible flag and returns the updated item.
func (r *PortfolioRepository) ToggleVisibility(ctx context.Context, id uuid.UUID) (*portfolio.Item, error) {
	query := `
		UPDATE portfolio
		SET visible = NOT COALESCE(visible, TRUE), updated_at = clock_timestamp()
		WHERE id = $1
		RETURNING ` + portfolioColumns

	item := &portfolio.Item{}
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(portfolioFields(item)...)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errItemNotFound)
		}
		return nil, wrapOp("toggle portfolio visibility", err)
	}

	return item, nil
}

func (r *PortfolioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Pool.Exec(ctx, "DELETE FROM portfolio WHERE id = $1", id)
	if err != nil {
		return wrapOp("delete portfolio item", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errItemNotFound)
	}

	return nil
}

func portfolioFields(item *portfolio.Item) []interface{} {
	return []interface{}{
		&item.ID, &item.ClientName, &item.Industry,
		&item.ProjectType, &item.Description,
		&item.ImageURL, &item.ImagePath,
		&item.Featured, &item.Visible,
		&item.SortOrder, &item.CreatedAt, &item.UpdatedAt,
	}
}
