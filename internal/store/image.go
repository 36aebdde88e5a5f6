package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/r8r-one/platform/internal/domain"
)

type ImageStore struct {
	db *pgxpool.Pool
}

func NewImageStore(db *pgxpool.Pool) *ImageStore {
	return &ImageStore{db: db}
}

func (s *ImageStore) Put(ctx context.Context, img *domain.Image) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO images (filename, tenant_id, content_type, data)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		img.Filename, img.TenantID, img.ContentType, img.Data,
	).Scan(&img.CreatedAt)
}

func (s *ImageStore) Get(ctx context.Context, filename string) (*domain.Image, error) {
	img := &domain.Image{}
	err := s.db.QueryRow(ctx,
		`SELECT filename, tenant_id, content_type, data, created_at
		 FROM images WHERE filename = $1`,
		filename,
	).Scan(&img.Filename, &img.TenantID, &img.ContentType, &img.Data, &img.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return img, nil
}
