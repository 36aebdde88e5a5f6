package tenant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/r8r-one/platform/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockRegistry struct {
	tenants map[string]*domain.Tenant
	err     error
	delay   time.Duration
	calls   int
}

func (m *mockRegistry) GetTenant(ctx context.Context, id string) (*domain.Tenant, error) {
	m.calls++
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	t, ok := m.tenants[id]
	if !ok {
		return nil, ErrUnknownTenant
	}
	return t, nil
}

type mockCache struct {
	configs map[string]*domain.TenantConfig
	getErr  error
	setErr  error
}

func (m *mockCache) Get(ctx context.Context, id string) (*domain.TenantConfig, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.configs[id], nil
}

func (m *mockCache) Set(ctx context.Context, id string, cfg *domain.TenantConfig) error {
	if m.setErr != nil {
		return m.setErr
	}
	if m.configs == nil {
		m.configs = make(map[string]*domain.TenantConfig)
	}
	m.configs[id] = cfg
	return nil
}

func TestProvider_RegistryHit(t *testing.T) {
	remote := &domain.TenantConfig{Name: "Remote Burritos", LocationRequired: true}
	reg := &mockRegistry{tenants: map[string]*domain.Tenant{
		"burritos": {ID: "burritos", Subdomain: "burritos", Name: "Burrito Raters", Config: remote},
	}}
	p := NewProvider(reg, BuiltinTemplates(), zap.NewNop())

	got := p.Get(context.Background(), "burritos")
	require.NotNil(t, got)
	assert.Equal(t, "Burrito Raters", got.Name)
	assert.Same(t, remote, got.Config)
}

func TestProvider_RegistryErrorFallsBackToTemplate(t *testing.T) {
	reg := &mockRegistry{err: errors.New("registry unreachable")}
	tpl := BuiltinTemplates()
	p := NewProvider(reg, tpl, zap.NewNop())

	cfg := p.GetConfig(context.Background(), "pizza")
	require.NotNil(t, cfg)
	assert.Same(t, tpl.ByID["pizza"], cfg)
}

func TestProvider_UnknownTenantGetsWildcardDefault(t *testing.T) {
	reg := &mockRegistry{err: errors.New("boom")}
	tpl := BuiltinTemplates()
	p := NewProvider(reg, tpl, zap.NewNop())

	cfg := p.GetConfig(context.Background(), "unknown-tenant")
	require.NotNil(t, cfg)
	assert.Same(t, tpl.Default, cfg)
}

func TestProvider_NotFoundGetsTemplateWithoutError(t *testing.T) {
	reg := &mockRegistry{tenants: map[string]*domain.Tenant{}}
	tpl := BuiltinTemplates()
	p := NewProvider(reg, tpl, zap.NewNop())

	got := p.Get(context.Background(), "coffee")
	require.NotNil(t, got)
	assert.Equal(t, "coffee", got.ID)
	assert.Equal(t, "Coffee Community", got.Name)
	assert.Same(t, tpl.ByID["coffee"], got.Config)
}

func TestProvider_NilRegistry(t *testing.T) {
	p := NewProvider(nil, BuiltinTemplates(), zap.NewNop())

	cfg := p.GetConfig(context.Background(), "burritos")
	require.NotNil(t, cfg)
}

func TestProvider_MalformedRecordFallsBack(t *testing.T) {
	// A registry hit without a config payload is treated as a miss.
	reg := &mockRegistry{tenants: map[string]*domain.Tenant{
		"burritos": {ID: "burritos", Name: "No Config"},
	}}
	tpl := BuiltinTemplates()
	p := NewProvider(reg, tpl, zap.NewNop())

	cfg := p.GetConfig(context.Background(), "burritos")
	assert.Same(t, tpl.ByID["burritos"], cfg)
}

func TestProvider_LookupTimeout(t *testing.T) {
	reg := &mockRegistry{
		delay: 200 * time.Millisecond,
		tenants: map[string]*domain.Tenant{
			"burritos": {ID: "burritos", Config: &domain.TenantConfig{Name: "slow"}},
		},
	}
	tpl := BuiltinTemplates()
	p := NewProvider(reg, tpl, zap.NewNop())
	p.SetLookupTimeout(10 * time.Millisecond)

	start := time.Now()
	cfg := p.GetConfig(context.Background(), "burritos")
	assert.Less(t, time.Since(start), 150*time.Millisecond)
	assert.Same(t, tpl.ByID["burritos"], cfg)
}

func TestProvider_CacheHitSkipsRegistry(t *testing.T) {
	reg := &mockRegistry{}
	cached := &domain.TenantConfig{Name: "cached"}
	p := NewProvider(reg, BuiltinTemplates(), zap.NewNop())
	p.SetCache(&mockCache{configs: map[string]*domain.TenantConfig{"burritos": cached}})

	cfg := p.GetConfig(context.Background(), "burritos")
	assert.Same(t, cached, cfg)
	assert.Zero(t, reg.calls)
}

func TestProvider_CacheErrorsIgnored(t *testing.T) {
	remote := &domain.TenantConfig{Name: "remote"}
	reg := &mockRegistry{tenants: map[string]*domain.Tenant{
		"burritos": {ID: "burritos", Config: remote},
	}}
	p := NewProvider(reg, BuiltinTemplates(), zap.NewNop())
	p.SetCache(&mockCache{getErr: errors.New("redis down"), setErr: errors.New("redis down")})

	cfg := p.GetConfig(context.Background(), "burritos")
	assert.Same(t, remote, cfg)
}

func TestProvider_RegistryHitPopulatesCache(t *testing.T) {
	remote := &domain.TenantConfig{Name: "remote"}
	reg := &mockRegistry{tenants: map[string]*domain.Tenant{
		"burritos": {ID: "burritos", Config: remote},
	}}
	cache := &mockCache{}
	p := NewProvider(reg, BuiltinTemplates(), zap.NewNop())
	p.SetCache(cache)

	_ = p.GetConfig(context.Background(), "burritos")
	assert.Same(t, remote, cache.configs["burritos"])
}
