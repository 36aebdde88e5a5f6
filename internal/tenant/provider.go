package tenant

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/r8r-one/platform/internal/domain"
	"go.uber.org/zap"
)

// ErrUnknownTenant is returned by Registry implementations when no tenant
// record exists for an id.
var ErrUnknownTenant = errors.New("tenant not found")

const defaultLookupTimeout = 2 * time.Second

// Registry looks up a tenant record by id. Implementations may hit the
// network; the provider bounds every call with a timeout and treats any
// failure as a miss.
type Registry interface {
	GetTenant(ctx context.Context, id string) (*domain.Tenant, error)
}

// ConfigCache is an optional read-mostly cache in front of the registry.
// The provider never blocks on a miss and swallows every cache error.
type ConfigCache interface {
	Get(ctx context.Context, id string) (*domain.TenantConfig, error)
	Set(ctx context.Context, id string, cfg *domain.TenantConfig) error
}

// Templates is the built-in fallback table, injected at construction so
// tests can swap in alternate sets.
type Templates struct {
	ByID    map[string]*domain.TenantConfig
	Default *domain.TenantConfig
}

// Provider resolves tenant configuration with an always-degrade policy:
// registry first, built-in template on any failure, wildcard default when
// the id is unknown. GetConfig never fails — presentation must render
// something reasonable even when the registry is unreachable.
type Provider struct {
	registry  Registry
	cache     ConfigCache
	templates Templates
	timeout   time.Duration
	logger    *zap.Logger
}

func NewProvider(registry Registry, templates Templates, logger *zap.Logger) *Provider {
	return &Provider{
		registry:  registry,
		templates: templates,
		timeout:   defaultLookupTimeout,
		logger:    logger,
	}
}

// SetCache wires an optional config cache.
func (p *Provider) SetCache(c ConfigCache) {
	p.cache = c
}

// SetLookupTimeout overrides the registry lookup bound.
func (p *Provider) SetLookupTimeout(d time.Duration) {
	if d > 0 {
		p.timeout = d
	}
}

// Get returns the full tenant record, falling back to a synthesized
// record built from the template table. Never returns nil.
func (p *Provider) Get(ctx context.Context, id string) *domain.Tenant {
	if p.cache != nil {
		if cfg, err := p.cache.Get(ctx, id); err == nil && cfg != nil {
			return p.synthesize(id, cfg)
		}
	}

	if p.registry != nil {
		lookupCtx, cancel := context.WithTimeout(ctx, p.timeout)
		t, err := p.registry.GetTenant(lookupCtx, id)
		cancel()
		switch {
		case err == nil && t != nil && t.Config != nil:
			if p.cache != nil {
				if cerr := p.cache.Set(ctx, id, t.Config); cerr != nil {
					p.logger.Debug("tenant config cache set failed", zap.String("tenant_id", id), zap.Error(cerr))
				}
			}
			return t
		case err != nil && !errors.Is(err, ErrUnknownTenant):
			p.logger.Warn("tenant registry lookup failed, using built-in config",
				zap.String("tenant_id", id), zap.Error(err))
		}
	}

	return p.synthesize(id, p.template(id))
}

// GetConfig returns a usable config for id. Never fails.
func (p *Provider) GetConfig(ctx context.Context, id string) *domain.TenantConfig {
	return p.Get(ctx, id).Config
}

func (p *Provider) template(id string) *domain.TenantConfig {
	if cfg, ok := p.templates.ByID[id]; ok {
		return cfg
	}
	return p.templates.Default
}

func (p *Provider) synthesize(id string, cfg *domain.TenantConfig) *domain.Tenant {
	return &domain.Tenant{
		ID:        id,
		Subdomain: id,
		Name:      communityName(id),
		Config:    cfg,
	}
}

func communityName(id string) string {
	if id == "" {
		return "Community"
	}
	return strings.ToUpper(id[:1]) + id[1:] + " Community"
}
