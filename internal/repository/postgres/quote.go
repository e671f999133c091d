package postgres

import (
	"context"
	"fmt"

	"printshop-service/internal/domain/quote"
	apperrors "printshop-service/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// quoteColumns defensively normalizes legacy rows: every nullable text
// field collapses to '' so downstream consumers never see NULLs.
const quoteColumns = `
	id,
	COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(company, ''),
	COALESCE(email, ''), COALESCE(phone, ''), COALESCE(industry, ''),
	COALESCE(service, ''), COALESCE(quantity, ''), COALESCE(urgency, ''),
	COALESCE(message, ''), COALESCE(status, 'new'),
	estimated_price, final_price, created_at, updated_at
`

type QuoteRepository struct {
	db *DB
}

func NewQuoteRepository(db *DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

func (r *QuoteRepository) Create(ctx context.Context, input quote.CreateQuoteInput) (*quote.Quote, error) {
	query := `
		INSERT INTO quotes (first_name, last_name, company, email, phone, industry, service, quantity, urgency, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + quoteColumns

	q := &quote.Quote{}
	err := r.db.Pool.QueryRow(ctx, query,
		input.FirstName, input.LastName, input.Company, input.Email, input.Phone,
		input.Industry, input.Service, input.Quantity, input.Urgency, input.Message,
		quote.StatusNew,
	).Scan(quoteFields(q)...)

	if err != nil {
		return nil, wrapOp("create quote", err)
	}

	return q, nil
}

func (r *QuoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*quote.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`

	q := &quote.Quote{}
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(quoteFields(q)...)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errQuoteNotFound)
		}
		return nil, wrapOp("get quote", err)
	}

	return q, nil
}

// List returns every quote, newest first. A zero limit means no limit.
func (r *QuoteRepository) List(ctx context.Context, limit int) ([]*quote.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes ORDER BY created_at DESC`
	args := []interface{}{}

	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapOp("list quotes", err)
	}
	defer rows.Close()

	var quotes []*quote.Quote
	for rows.Next() {
		q := &quote.Quote{}
		if err := rows.Scan(quoteFields(q)...); err != nil {
			return nil, wrapOp("scan quote", err)
		}
		quotes = append(quotes, q)
	}

	return quotes, rows.Err()
}

// DistinctCompanies returns the distinct trimmed non-blank company values
// seen across quotes, excluding names already present in the client
// directory. Used to pre-fill new client entries.
func (r *QuoteRepository) DistinctCompanies(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT TRIM(company)
		FROM quotes
		WHERE TRIM(COALESCE(company, '')) <> ''
		  AND TRIM(company) NOT IN (SELECT name FROM clients)
		ORDER BY TRIM(company) ASC
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, wrapOp("list distinct companies", err)
	}
	defer rows.Close()

	var companies []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, wrapOp("scan company", err)
		}
		companies = append(companies, name)
	}

	return companies, rows.Err()
}

func (r *QuoteRepository) Update(ctx context.Context, id uuid.UUID, input quote.UpdateQuoteInput) error {
	query := "UPDATE quotes SET updated_at = NOW()"
	args := []interface{}{id}
	argCount := 1

	appendArg := func(column string, value interface{}) {
		argCount++
		query += fmt.Sprintf(", %s = $%d", column, argCount)
		args = append(args, value)
	}

	if input.FirstName != nil {
		appendArg("first_name", *input.FirstName)
	}
	if input.LastName != nil {
		appendArg("last_name", *input.LastName)
	}
	if input.Company != nil {
		appendArg("company", *input.Company)
	}
	if input.Email != nil {
		appendArg("email", *input.Email)
	}
	if input.Phone != nil {
		appendArg("phone", *input.Phone)
	}
	if input.Industry != nil {
		appendArg("industry", *input.Industry)
	}
	if input.Service != nil {
		appendArg("service", *input.Service)
	}
	if input.Quantity != nil {
		appendArg("quantity", *input.Quantity)
	}
	if input.Urgency != nil {
		appendArg("urgency", *input.Urgency)
	}
	if input.Message != nil {
		appendArg("message", *input.Message)
	}
	if input.Status != nil {
		appendArg("status", *input.Status)
	}
	if input.EstimatedPrice != nil {
		appendArg("estimated_price", *input.EstimatedPrice)
	}
	if input.FinalPrice != nil {
		appendArg("final_price", *input.FinalPrice)
	}

	query += " WHERE id = $1"

	result, err := r.db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return wrapOp("update quote", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errQuoteNotFound)
	}

	return nil
}

func (r *QuoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Pool.Exec(ctx, "DELETE FROM quotes WHERE id = $1", id)
	if err != nil {
		return wrapOp("delete quote", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errQuoteNotFound)
	}

	return nil
}

func quoteFields(q *quote.Quote) []interface{} {
	return []interface{}{
		&q.ID,
		&q.FirstName, &q.LastName, &q.Company,
		&q.Email, &q.Phone, &q.Industry,
		&q.Service, &q.Quantity, &q.Urgency,
		&q.Message, &q.Status,
		&q.EstimatedPrice, &q.FinalPrice, &q.CreatedAt, &q.UpdatedAt,
	}
}
