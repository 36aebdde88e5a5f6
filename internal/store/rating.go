package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/r8r-one/platform/internal/domain"
)

type RatingStore struct {
	db *pgxpool.Pool
}

func NewRatingStore(db *pgxpool.Pool) *RatingStore {
	return &RatingStore{db: db}
}

func (s *RatingStore) Create(ctx context.Context, r *domain.Rating) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO ratings (id, tenant_id, item_id, scores, price_paid, ingredients, review, reviewer_info, status)
		 VALUES ('rating_' || nextval('rating_id_seq'), $1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		r.TenantID, r.ItemID, r.Scores, r.PricePaid, r.Ingredients, r.Review, r.Reviewer, r.Status,
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
}

func (s *RatingStore) GetByID(ctx context.Context, id string, tenantID string) (*domain.Rating, *domain.Item, error) {
	r := &domain.Rating{}
	i := &domain.Item{}
	err := s.db.QueryRow(ctx,
		`SELECT r.id, r.tenant_id, r.item_id, r.scores, r.price_paid, r.ingredients,
		        r.review, r.reviewer_info, r.status, r.created_at, r.updated_at,
		        i.id, i.tenant_id, i.name, i.venue_name, i.latitude, i.longitude, i.zipcode, i.created_at
		 FROM ratings r
		 JOIN items i ON r.item_id = i.id
		 WHERE r.tenant_id = $1 AND r.id = $2`,
		tenantID, id,
	).Scan(
		&r.ID, &r.TenantID, &r.ItemID, &r.Scores, &r.PricePaid, &r.Ingredients,
		&r.Review, &r.Reviewer, &r.Status, &r.CreatedAt, &r.UpdatedAt,
		&i.ID, &i.TenantID, &i.Name, &i.VenueName, &i.Latitude, &i.Longitude, &i.Zipcode, &i.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	return r, i, nil
}

func (s *RatingStore) ListConfirmed(ctx context.Context, tenantID string) ([]domain.RatingWithItem, error) {
	rows, err := s.db.Query(ctx,
		`SELECT r.id, r.tenant_id, r.item_id, r.scores, r.price_paid, r.ingredients,
		        r.review, r.reviewer_info, r.status, r.created_at, r.updated_at,
		        i.id, i.tenant_id, i.name, i.venue_name, i.latitude, i.longitude, i.zipcode, i.created_at
		 FROM ratings r
		 JOIN items i ON r.item_id = i.id
		 WHERE r.tenant_id = $1 AND r.status = $2
		 ORDER BY r.created_at DESC`,
		tenantID, domain.RatingStatusConfirmed,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RatingWithItem
	for rows.Next() {
		var rw domain.RatingWithItem
		if err := rows.Scan(
			&rw.ID, &rw.TenantID, &rw.ItemID, &rw.Scores, &rw.PricePaid, &rw.Ingredients,
			&rw.Review, &rw.Reviewer, &rw.Status, &rw.CreatedAt, &rw.UpdatedAt,
			&rw.Item.ID, &rw.Item.TenantID, &rw.Item.Name, &rw.Item.VenueName,
			&rw.Item.Latitude, &rw.Item.Longitude, &rw.Item.Zipcode, &rw.Item.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rw)
	}
	return out, rows.Err()
}

func (s *RatingStore) UpdateStatus(ctx context.Context, id string, tenantID string, status string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE ratings SET status = $1, updated_at = NOW() WHERE tenant_id = $2 AND id = $3`,
		status, tenantID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RatingStore) UpdateStatusBulk(ctx context.Context, ids []string, tenantID string, status string) (int64, error) {
	tag, err := s.db.Exec(ctx,
		`UPDATE ratings SET status = $1, updated_at = NOW() WHERE tenant_id = $2 AND id = ANY($3)`,
		status, tenantID, ids,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (s *RatingStore) Delete(ctx context.Context, id string, tenantID string) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM ratings WHERE tenant_id = $1 AND id = $2`,
		tenantID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
