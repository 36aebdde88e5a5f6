package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/r8r-one/platform/internal/domain"
	"github.com/r8r-one/platform/internal/store"
)

type mockItemStore struct {
	items  map[string]*domain.Item // by id
	byKey  map[string]string       // tenant|venue|name -> id
	nextID int
	err    error
}

func newMockItemStore() *mockItemStore {
	return &mockItemStore{
		items: make(map[string]*domain.Item),
		byKey: make(map[string]string),
	}
}

func itemKey(tenantID, venue, name string) string {
	return tenantID + "|" + venue + "|" + name
}

func (m *mockItemStore) Upsert(ctx context.Context, i *domain.Item) error {
	if m.err != nil {
		return m.err
	}
	key := itemKey(i.TenantID, i.VenueName, i.Name)
	if id, ok := m.byKey[key]; ok {
		existing := m.items[id]
		existing.Latitude = i.Latitude
		existing.Longitude = i.Longitude
		existing.Zipcode = i.Zipcode
		*i = *existing
		return nil
	}
	m.nextID++
	i.ID = fmt.Sprintf("item_%d", m.nextID)
	i.CreatedAt = time.Now()
	cp := *i
	m.items[i.ID] = &cp
	m.byKey[key] = i.ID
	return nil
}

func (m *mockItemStore) GetByID(ctx context.Context, id string, tenantID string) (*domain.Item, error) {
	i, ok := m.items[id]
	if !ok || i.TenantID != tenantID {
		return nil, store.ErrNotFound
	}
	return i, nil
}

type mockRatingStore struct {
	ratings map[string]*domain.Rating
	items   *mockItemStore
	nextID  int
	err     error
}

func newMockRatingStore(items *mockItemStore) *mockRatingStore {
	return &mockRatingStore{
		ratings: make(map[string]*domain.Rating),
		items:   items,
	}
}

func (m *mockRatingStore) Create(ctx context.Context, r *domain.Rating) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	r.ID = fmt.Sprintf("rating_%d", m.nextID)
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	cp := *r
	m.ratings[r.ID] = &cp
	return nil
}

func (m *mockRatingStore) GetByID(ctx context.Context, id string, tenantID string) (*domain.Rating, *domain.Item, error) {
	r, ok := m.ratings[id]
	if !ok || r.TenantID != tenantID {
		return nil, nil, store.ErrNotFound
	}
	item, ok := m.items.items[r.ItemID]
	if !ok {
		return nil, nil, store.ErrNotFound
	}
	return r, item, nil
}

func (m *mockRatingStore) ListConfirmed(ctx context.Context, tenantID string) ([]domain.RatingWithItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.RatingWithItem
	for _, r := range m.ratings {
		if r.TenantID != tenantID || r.Status != domain.RatingStatusConfirmed {
			continue
		}
		item := m.items.items[r.ItemID]
		out = append(out, domain.RatingWithItem{Rating: *r, Item: *item})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *mockRatingStore) UpdateStatus(ctx context.Context, id string, tenantID string, status string) error {
	r, ok := m.ratings[id]
	if !ok || r.TenantID != tenantID {
		return store.ErrNotFound
	}
	r.Status = status
	return nil
}

func (m *mockRatingStore) UpdateStatusBulk(ctx context.Context, ids []string, tenantID string, status string) (int64, error) {
	var n int64
	for _, id := range ids {
		if r, ok := m.ratings[id]; ok && r.TenantID == tenantID {
			r.Status = status
			n++
		}
	}
	return n, nil
}

func (m *mockRatingStore) Delete(ctx context.Context, id string, tenantID string) error {
	r, ok := m.ratings[id]
	if !ok || r.TenantID != tenantID {
		return store.ErrNotFound
	}
	delete(m.ratings, id)
	return nil
}

type mockImageStore struct {
	images map[string]*domain.Image
	err    error
}

func newMockImageStore() *mockImageStore {
	return &mockImageStore{images: make(map[string]*domain.Image)}
}

func (m *mockImageStore) Put(ctx context.Context, img *domain.Image) error {
	if m.err != nil {
		return m.err
	}
	img.CreatedAt = time.Now()
	m.images[img.Filename] = img
	return nil
}

func (m *mockImageStore) Get(ctx context.Context, filename string) (*domain.Image, error) {
	img, ok := m.images[filename]
	if !ok {
		return nil, store.ErrNotFound
	}
	return img, nil
}

type mockCaptcha struct {
	err   error
	calls int
}

func (m *mockCaptcha) Verify(ctx context.Context, token, remoteIP string) error {
	m.calls++
	return m.err
}
