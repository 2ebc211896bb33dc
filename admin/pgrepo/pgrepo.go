package pgrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/handlewall/backend/admin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgAdminRepo struct {
	pool *pgxpool.Pool
}

func NewPgAdminRepo(pool *pgxpool.Pool) admin.AdminRepo {
	return &pgAdminRepo{pool: pool}
}

func (r *pgAdminRepo) Insert(ctx context.Context, a admin.Admin) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO admins (uuid, username, bcrypt_pwd, created_at)
		VALUES ($1, $2, $3, $4)
	`,
		a.UUID,
		a.Username,
		a.BcryptPwd,
		a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert admin: %w", err)
	}
	return nil
}

func (r *pgAdminRepo) FirstByUsername(ctx context.Context, username string) (*admin.Admin, error) {
	var a admin.Admin
	err := r.pool.QueryRow(ctx, `
		SELECT uuid, username, bcrypt_pwd, created_at
		FROM admins
		WHERE username = $1
		ORDER BY created_at ASC, uuid ASC
		LIMIT 1
	`, username).Scan(
		&a.UUID,
		&a.Username,
		&a.BcryptPwd,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query admin: %w", err)
	}
	return &a, nil
}
