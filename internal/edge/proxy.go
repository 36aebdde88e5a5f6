package edge

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Headers injected on the tenant-subdomain hop so downstream resolution
// does not have to re-derive the tenant from a possibly-rewritten Host.
const (
	HeaderOriginalHost    = "X-Original-Host"
	HeaderTenantSubdomain = "X-Tenant-Subdomain"
)

// Router forwards inbound requests to one of two upstream origins based
// on hostname classification. One non-retried upstream request per
// inbound request; retries belong to the client or to infrastructure
// health checking, not here.
type Router struct {
	// PlatformDomain is the root domain, e.g. "r8r.one".
	PlatformDomain string
	// APIHost is the public API hostname, e.g. "api.r8r.one".
	APIHost string
	// SiteOrigin is the upstream static site origin, scheme included.
	SiteOrigin string
	// APIOrigin is the upstream API origin, scheme included.
	APIOrigin string

	client *http.Client
	logger *zap.Logger
}

func NewRouter(platformDomain, apiHost, siteOrigin, apiOrigin string, logger *zap.Logger) *Router {
	return &Router{
		PlatformDomain: platformDomain,
		APIHost:        apiHost,
		SiteOrigin:     siteOrigin,
		APIOrigin:      apiOrigin,
		client: &http.Client{
			Timeout: 30 * time.Second,
			// Upstream redirects pass through to the client untouched.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		logger: logger,
	}
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	hostname := stripPort(r.Host)
	decision := rt.Classify(r.Host)

	switch decision.Kind {
	case RouteMainSite:
		rt.forward(w, r, rt.SiteOrigin, "", "")
	case RouteAPI:
		rt.forward(w, r, rt.APIOrigin, "", "")
	case RouteTenantSite:
		rt.forward(w, r, rt.SiteOrigin, hostname, decision.Tenant)
	default:
		rt.logger.Info("redirecting unrecognized host",
			zap.String("host", r.Host))
		http.Redirect(w, r, "https://"+rt.PlatformDomain, http.StatusFound)
	}
}

// forward relays the request to origin. When originalHost is set the
// upstream Host header is overridden to the original inbound hostname and
// the tenant hop headers are added, so tenant resolution behind the hop
// still sees the subdomain.
func (rt *Router) forward(w http.ResponseWriter, r *http.Request, origin, originalHost, tenant string) {
	target, err := url.Parse(origin)
	if err != nil {
		rt.logger.Error("bad upstream origin", zap.String("origin", origin), zap.Error(err))
		http.Error(w, "bad gateway", http.StatusBadGateway)
		return
	}
	u := *r.URL
	u.Scheme = target.Scheme
	u.Host = target.Host

	out, err := http.NewRequestWithContext(r.Context(), r.Method, u.String(), r.Body)
	if err != nil {
		http.Error(w, "bad gateway", http.StatusBadGateway)
		return
	}
	out.Header = r.Header.Clone()
	stripHopHeaders(out.Header)
	if originalHost != "" {
		out.Host = originalHost
		out.Header.Set(HeaderOriginalHost, originalHost)
		out.Header.Set(HeaderTenantSubdomain, tenant)
	}

	resp, err := rt.client.Do(out)
	if err != nil {
		rt.logger.Warn("upstream fetch failed",
			zap.String("origin", origin), zap.Error(err))
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
		return
	}
	defer func() { _ = resp.Body.Close() }()

	stripHopHeaders(resp.Header)
	for k, vs := range resp.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = io.Copy(w, resp.Body)
}

// hopHeaders are connection-scoped (RFC 9110 section 7.6.1) and must not
// cross the proxy hop in either direction.
var hopHeaders = []string{
	"Connection",
	"Proxy-Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

func stripHopHeaders(h http.Header) {
	for _, name := range strings.Split(h.Get("Connection"), ",") {
		if name = strings.TrimSpace(name); name != "" {
			h.Del(name)
		}
	}
	for _, name := range hopHeaders {
		h.Del(name)
	}
}
