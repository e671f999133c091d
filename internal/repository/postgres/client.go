package postgres

import (
	"context"
	"fmt"

	"printshop-service/internal/domain/client"
	apperrors "printshop-service/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const clientColumns = `
	id, COALESCE(name, ''), COALESCE(industry, ''),
	COALESCE(contact_email, ''), COALESCE(contact_phone, ''),
	COALESCE(notes, ''), created_at
`

type ClientRepository struct {
	db *DB
}

func NewClientRepository(db *DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, input client.CreateClientInput) (*client.Client, error) {
	query := `
		INSERT INTO clients (name, industry, contact_email, contact_phone, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + clientColumns

	c := &client.Client{}
	err := r.db.Pool.QueryRow(ctx, query,
		input.Name, input.Industry, input.ContactEmail, input.ContactPhone, input.Notes,
	).Scan(clientFields(c)...)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict("a client with this name already exists")
		}
		return nil, wrapOp("create client", err)
	}

	return c, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	c := &client.Client{}
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(clientFields(c)...)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errClientNotFound)
		}
		return nil, wrapOp("get client", err)
	}

	return c, nil
}

// List returns the directory ordered by creation time, newest first.
func (r *ClientRepository) List(ctx context.Context) ([]*client.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY created_at DESC`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, wrapOp("list clients", err)
	}
	defer rows.Close()

	var clients []*client.Client
	for rows.Next() {
		c := &client.Client{}
		if err := rows.Scan(clientFields(c)...); err != nil {
			return nil, wrapOp("scan client", err)
		}
		clients = append(clients, c)
	}

	return clients, rows.Err()
}

func (r *ClientRepository) Update(ctx context.Context, id uuid.UUID, input client.UpdateClientInput) error {
	query := "UPDATE clients SET id = id"
	args := []interface{}{id}
	argCount := 1

	appendArg := func(column string, value interface{}) {
		argCount++
		query += fmt.Sprintf(", %s = $%d", column, argCount)
		args = append(args, value)
	}

	if input.Name != nil {
		appendArg("name", *input.Name)
	}
	if input.Industry != nil {
		appendArg("industry", *input.Industry)
	}
	if input.ContactEmail != nil {
		appendArg("contact_email", *input.ContactEmail)
	}
	if input.ContactPhone != nil {
		appendArg("contact_phone", *input.ContactPhone)
	}
	if input.Notes != nil {
		appendArg("notes", *input.Notes)
	}

	query += " WHERE id = $1"

	result, err := r.db.Pool.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.Conflict("a client with this name already exists")
		}
		return wrapOp("update client", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errClientNotFound)
	}

	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Pool.Exec(ctx, "DELETE FROM clients WHERE id = $1", id)
	if err != nil {
		return wrapOp("delete client", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errClientNotFound)
	}

	return nil
}

func clientFields(c *client.Client) []interface{} {
	return []interface{}{
		&c.ID, &c.Name, &c.Industry,
		&c.ContactEmail, &c.ContactPhone,
		&c.Notes, &c.CreatedAt,
	}
}
