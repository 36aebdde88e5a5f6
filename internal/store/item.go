package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/r8r-one/platform/internal/domain"
)

type ItemStore struct {
	db *pgxpool.Pool
}

func NewItemStore(db *pgxpool.Pool) *ItemStore {
	return &ItemStore{db: db}
}

// Upsert inserts the item or, when the (tenant, venue, name) triple
// already exists, refreshes its location and returns the existing id.
func (s *ItemStore) Upsert(ctx context.Context, i *domain.Item) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO items (id, tenant_id, name, venue_name, latitude, longitude, zipcode)
		 VALUES ('item_' || nextval('item_id_seq'), $1, $2, $3, $4, $5, $6)
		 ON CONFLICT (tenant_id, venue_name, name) DO UPDATE
		 SET latitude = EXCLUDED.latitude,
		     longitude = EXCLUDED.longitude,
		     zipcode = EXCLUDED.zipcode
		 RETURNING id, created_at`,
		i.TenantID, i.Name, i.VenueName, i.Latitude, i.Longitude, i.Zipcode,
	).Scan(&i.ID, &i.CreatedAt)
}

func (s *ItemStore) GetByID(ctx context.Context, id string, tenantID string) (*domain.Item, error) {
	i := &domain.Item{}
	err := s.db.QueryRow(ctx,
		`SELECT id, tenant_id, name, venue_name, latitude, longitude, zipcode, created_at
		 FROM items WHERE id = $1 AND tenant_id = $2`,
		id, tenantID,
	).Scan(&i.ID, &i.TenantID, &i.Name, &i.VenueName, &i.Latitude, &i.Longitude, &i.Zipcode, &i.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return i, nil
}
