// Package registry provides clients for the tenant registry the config
// provider consults before falling back to built-in templates.
package registry

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/r8r-one/platform/internal/domain"
	"github.com/r8r-one/platform/internal/tenant"
)

// HTTPClient looks tenants up from a remote registry service over HTTP.
type HTTPClient struct {
	client *resty.Client
}

// NewHTTPClient builds a registry client for baseURL, e.g.
// "https://registry.r8r.one".
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &HTTPClient{client: c}
}

// GetTenant fetches one tenant record. A 404 maps to
// tenant.ErrUnknownTenant; any other non-2xx status or transport error is
// a lookup failure the provider will degrade around.
func (c *HTTPClient) GetTenant(ctx context.Context, id string) (*domain.Tenant, error) {
	var t domain.Tenant
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&t).
		SetPathParam("id", id).
		Get("/tenants/{id}")
	if err != nil {
		return nil, fmt.Errorf("registry lookup: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, tenant.ErrUnknownTenant
	}
	if resp.IsError() {
		return nil, fmt.Errorf("registry lookup: unexpected status %d", resp.StatusCode())
	}
	return &t, nil
}
