package middleware

import (
	"context"
	"net/http"

	"github.com/r8r-one/platform/internal/tenant"
)

type contextKey string

const tenantContextKey contextKey = "tenant_id"

// Header names the platform uses to carry tenant identity between layers.
const (
	TenantIDHeader     = "X-Tenant-ID"
	OriginalHostHeader = "X-Original-Host"
	tenantQueryParam   = "tenant"
)

// TenantIDFromContext returns the resolved tenant id for the request, or
// the empty string outside a resolved request.
func TenantIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(tenantContextKey).(string)
	return id
}

// ResolveTenant builds a ResolutionContext from the request's transport
// metadata, resolves the tenant once, and attaches the id to the request
// context and the response headers. Every downstream consumer reads the
// id from context instead of re-deriving it.
func ResolveTenant(resolver *tenant.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := resolver.Resolve(tenant.ResolutionContext{
				Host:         r.Host,
				OriginalHost: r.Header.Get(OriginalHostHeader),
				TenantHeader: r.Header.Get(TenantIDHeader),
				TenantQuery:  r.URL.Query().Get(tenantQueryParam),
				Referer:      r.Header.Get("Referer"),
			})

			w.Header().Set(TenantIDHeader, id)
			ctx := context.WithValue(r.Context(), tenantContextKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
