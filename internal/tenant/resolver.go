package tenant

import (
	"net/url"
	"regexp"
	"strings"
)

// ResolutionContext carries the per-request signals used to determine
// tenant identity. It is constructed once at the HTTP boundary and
// discarded after resolution; the resolver has no dependency on any
// framework request type.
type ResolutionContext struct {
	// Host is the literal connection host (Host header).
	Host string
	// OriginalHost is the X-Original-Host value set by the edge router
	// when a request has been relayed. Preferred over Host.
	OriginalHost string
	// TenantHeader is the explicit X-Tenant-ID header value.
	TenantHeader string
	// TenantQuery is the explicit ?tenant= query parameter value.
	TenantQuery string
	// Referer is the raw Referer header value.
	Referer string
}

// Resolver maps a ResolutionContext to a tenant id. It is pure and
// synchronous; unresolvable requests fall back to DefaultTenant, never an
// error.
type Resolver struct {
	// PlatformDomain is the root domain tenant subdomains are minted
	// under, e.g. "r8r.one".
	PlatformDomain string
	// APIHost is the designated API hostname, e.g. "api.r8r.one".
	APIHost string
	// DefaultTenant is returned when no rule matches.
	DefaultTenant string
	// InternalDomain is the deployment platform's own domain (e.g.
	// "pages.dev"); hosts under it resolve to the default tenant.
	InternalDomain string

	subdomain *regexp.Regexp
}

func NewResolver(platformDomain, apiHost, defaultTenant, internalDomain string) *Resolver {
	return &Resolver{
		PlatformDomain: platformDomain,
		APIHost:        apiHost,
		DefaultTenant:  defaultTenant,
		InternalDomain: internalDomain,
		subdomain:      regexp.MustCompile(`^([^.]+)\.` + regexp.QuoteMeta(platformDomain) + `$`),
	}
}

// Resolve applies the precedence chain: explicit header, explicit query
// parameter, subdomain of the (original) host, referrer subdomain when the
// request hit the API host directly, then the default. Empty values count
// as absent. Hostname matching is done on the raw value with no case
// normalization.
func (r *Resolver) Resolve(ctx ResolutionContext) string {
	if ctx.TenantHeader != "" {
		return ctx.TenantHeader
	}
	if ctx.TenantQuery != "" {
		return ctx.TenantQuery
	}

	host := ctx.OriginalHost
	if host == "" {
		host = ctx.Host
	}
	if host != "" && !r.isDevHost(host) {
		if label := r.subdomainLabel(host, "www", "api"); label != "" {
			return label
		}
		if host == r.APIHost && ctx.Referer != "" {
			// Cross-origin browser calls reach the API host without an
			// explicit header; the page that made the call still names
			// the tenant. A Referer that does not parse is treated as
			// absent.
			if u, err := url.Parse(ctx.Referer); err == nil {
				if label := r.subdomainLabel(u.Hostname(), "www"); label != "" {
					return label
				}
			}
		}
	}

	return r.DefaultTenant
}

// subdomainLabel returns the first label of host when host matches
// <label>.<platform-domain> and the label is not one of the excluded
// reserved names.
func (r *Resolver) subdomainLabel(host string, exclude ...string) string {
	m := r.subdomain.FindStringSubmatch(host)
	if m == nil {
		return ""
	}
	for _, ex := range exclude {
		if m[1] == ex {
			return ""
		}
	}
	return m[1]
}

// isDevHost reports whether host is a local or deployment-internal
// hostname that should never go through subdomain matching.
func (r *Resolver) isDevHost(host string) bool {
	if strings.Contains(host, "localhost") || strings.Contains(host, "127.0.0.1") {
		return true
	}
	return r.InternalDomain != "" && strings.Contains(host, "."+r.InternalDomain)
}
