package registry

import (
	"context"
	"errors"

	"github.com/r8r-one/platform/internal/domain"
	"github.com/r8r-one/platform/internal/store"
	"github.com/r8r-one/platform/internal/tenant"
)

// StoreClient serves registry lookups from the platform's own tenants
// table. Used when no external registry URL is configured.
type StoreClient struct {
	tenants domain.TenantStore
}

func NewStoreClient(tenants domain.TenantStore) *StoreClient {
	return &StoreClient{tenants: tenants}
}

func (c *StoreClient) GetTenant(ctx context.Context, id string) (*domain.Tenant, error) {
	t, err := c.tenants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, tenant.ErrUnknownTenant
		}
		return nil, err
	}
	return t, nil
}
