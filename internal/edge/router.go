// Package edge implements the platform's edge routing layer: a stateless
// pass-through that classifies inbound hostnames and forwards each request
// to the static site host or the API host, preserving tenant-identifying
// headers across the hop.
package edge

import "strings"

// RouteKind classifies an inbound hostname.
type RouteKind int

const (
	// RouteMainSite is the bare platform domain or its www variant.
	RouteMainSite RouteKind = iota
	// RouteAPI is the designated API subdomain.
	RouteAPI
	// RouteTenantSite is a tenant subdomain under the platform domain.
	RouteTenantSite
	// RouteRedirect is any unrecognized hostname; the client is
	// redirected to the bare platform domain rather than forwarded.
	RouteRedirect
)

// RouteDecision drives the forwarding target and header rewriting for one
// inbound request.
type RouteDecision struct {
	Kind   RouteKind
	Tenant string
}

// Classify maps a hostname to a route decision. Total function of the
// hostname alone; a port suffix is ignored.
func (rt *Router) Classify(hostname string) RouteDecision {
	host := stripPort(hostname)

	if host == rt.PlatformDomain || host == "www."+rt.PlatformDomain {
		return RouteDecision{Kind: RouteMainSite}
	}
	if host == rt.APIHost {
		return RouteDecision{Kind: RouteAPI}
	}
	if strings.HasSuffix(host, "."+rt.PlatformDomain) {
		label, _, _ := strings.Cut(host, ".")
		if label != "" && label != "www" && label != "api" {
			return RouteDecision{Kind: RouteTenantSite, Tenant: label}
		}
	}
	return RouteDecision{Kind: RouteRedirect}
}

func stripPort(host string) string {
	if i := strings.LastIndexByte(host, ':'); i >= 0 && !strings.Contains(host[i:], "]") {
		return host[:i]
	}
	return host
}
