package pgrepo

import (
	"context"
	"fmt"

	"github.com/handlewall/backend/subm"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgSubmRepo struct {
	pool *pgxpool.Pool
}

func NewPgSubmRepo(pool *pgxpool.Pool) subm.SubmRepo {
	return &pgSubmRepo{pool: pool}
}

func (r *pgSubmRepo) Insert(ctx context.Context, s subm.Subm) error {
	images := s.Images
	if images == nil {
		images = []string{}
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO submissions (uuid, name, social_handle, images, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`,
		s.UUID,
		s.Name,
		s.SocialHandle,
		images,
		s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}

func (r *pgSubmRepo) List(ctx context.Context) ([]subm.Subm, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT uuid, name, social_handle, images, created_at
		FROM submissions
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	subms := []subm.Subm{}
	for rows.Next() {
		var s subm.Subm
		err := rows.Scan(
			&s.UUID,
			&s.Name,
			&s.SocialHandle,
			&s.Images,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		if s.Images == nil {
			s.Images = []string{}
		}
		subms = append(subms, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate submissions: %w", err)
	}
	return subms, nil
}
