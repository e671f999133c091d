package postgres

import (
	"context"

	"printshop-service/internal/domain/staff"
	apperrors "printshop-service/pkg/errors"

	"github.com/jackc/pgx/v5"
)

const staffColumns = `id, email, COALESCE(name, ''), password_hash, created_at`

type StaffRepository struct {
	db *DB
}

func NewStaffRepository(db *DB) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) Create(ctx context.Context, input staff.CreateStaffInput) (*staff.Staff, error) {
	query := `
		INSERT INTO staff (email, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING ` + staffColumns

	s := &staff.Staff{}
	err := r.db.Pool.QueryRow(ctx, query, input.Email, input.Name, input.PasswordHash).Scan(
		&s.ID, &s.Email, &s.Name, &s.PasswordHash, &s.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict("a staff account with this email already exists")
		}
		return nil, wrapOp("create staff account", err)
	}

	return s, nil
}

func (r *StaffRepository) GetByEmail(ctx context.Context, email string) (*staff.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE email = $1`

	s := &staff.Staff{}
	err := r.db.Pool.QueryRow(ctx, query, email).Scan(
		&s.ID, &s.Email, &s.Name, &s.PasswordHash, &s.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errStaffNotFound)
		}
		return nil, wrapOp("get staff account", err)
	}

	return s, nil
}
