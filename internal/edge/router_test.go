package edge

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(siteOrigin, apiOrigin string) *Router {
	return NewRouter("example.com", "api.example.com", siteOrigin, apiOrigin, zap.NewNop())
}

func TestClassify(t *testing.T) {
	rt := newTestRouter("", "")

	cases := []struct {
		host   string
		kind   RouteKind
		tenant string
	}{
		{"example.com", RouteMainSite, ""},
		{"www.example.com", RouteMainSite, ""},
		{"api.example.com", RouteAPI, ""},
		{"tacos.example.com", RouteTenantSite, "tacos"},
		{"pizza-nyc.example.com", RouteTenantSite, "pizza-nyc"},
		{"tacos.example.com:443", RouteTenantSite, "tacos"},
		{"evil.net", RouteRedirect, ""},
		{"example.com.evil.net", RouteRedirect, ""},
		{"tacos.sub.example.com", RouteTenantSite, "tacos"},
		{"", RouteRedirect, ""},
	}
	for _, tc := range cases {
		d := rt.Classify(tc.host)
		assert.Equal(t, tc.kind, d.Kind, "host %q", tc.host)
		assert.Equal(t, tc.tenant, d.Tenant, "host %q", tc.host)
	}
}

func TestServeHTTP_TenantSubdomainForward(t *testing.T) {
	var gotHost, gotOriginal, gotSubdomain string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHost = r.Host
		gotOriginal = r.Header.Get(HeaderOriginalHost)
		gotSubdomain = r.Header.Get(HeaderTenantSubdomain)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("site"))
	}))
	defer upstream.Close()

	rt := newTestRouter(upstream.URL, upstream.URL)

	req := httptest.NewRequest(http.MethodGet, "http://tacos.example.com/list?page=2", nil)
	req.Host = "tacos.example.com"
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tacos.example.com", gotHost)
	assert.Equal(t, "tacos.example.com", gotOriginal)
	assert.Equal(t, "tacos", gotSubdomain)

	body, _ := io.ReadAll(rec.Body)
	assert.Equal(t, "site", string(body))
}

func TestServeHTTP_MainSiteForwardUnmodified(t *testing.T) {
	var gotOriginal string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotOriginal = r.Header.Get(HeaderOriginalHost)
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	rt := newTestRouter(upstream.URL, upstream.URL)

	req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	req.Host = "example.com"
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, gotOriginal)
}

func TestServeHTTP_UnrecognizedHostRedirects(t *testing.T) {
	rt := newTestRouter("http://unused.invalid", "http://unused.invalid")

	req := httptest.NewRequest(http.MethodGet, "http://evil.net/anything", nil)
	req.Host = "evil.net"
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://example.com", rec.Header().Get("Location"))
}

func TestServeHTTP_UpstreamFailureIs502(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // nothing listening

	rt := newTestRouter(upstream.URL, upstream.URL)

	req := httptest.NewRequest(http.MethodGet, "http://tacos.example.com/", nil)
	req.Host = "tacos.example.com"
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestServeHTTP_StripsHopByHopRequestHeaders(t *testing.T) {
	var gotConnection, gotKeepAlive, gotNamed, gotTenant string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotConnection = r.Header.Get("Connection")
		gotKeepAlive = r.Header.Get("Keep-Alive")
		gotNamed = r.Header.Get("X-Internal-Hop")
		gotTenant = r.Header.Get("X-Tenant-ID")
	}))
	defer upstream.Close()

	rt := newTestRouter(upstream.URL, upstream.URL)

	req := httptest.NewRequest(http.MethodGet, "http://api.example.com/ratings", nil)
	req.Host = "api.example.com"
	req.Header.Set("Connection", "keep-alive, X-Internal-Hop")
	req.Header.Set("Keep-Alive", "timeout=5")
	req.Header.Set("X-Internal-Hop", "leak")
	req.Header.Set("X-Tenant-ID", "pizza")
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	assert.Empty(t, gotConnection)
	assert.Empty(t, gotKeepAlive)
	assert.Empty(t, gotNamed, "headers named in Connection must not cross the hop")
	assert.Equal(t, "pizza", gotTenant)
}

func TestServeHTTP_StripsHopByHopResponseHeaders(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Keep-Alive", "timeout=5")
		w.Header().Set("X-Site-Version", "7")
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	rt := newTestRouter(upstream.URL, upstream.URL)

	req := httptest.NewRequest(http.MethodGet, "http://tacos.example.com/", nil)
	req.Host = "tacos.example.com"
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Keep-Alive"))
	assert.Equal(t, "7", rec.Header().Get("X-Site-Version"))
}

func TestServeHTTP_PreservesRequestHeaders(t *testing.T) {
	var gotTenantHeader string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTenantHeader = r.Header.Get("X-Tenant-ID")
	}))
	defer upstream.Close()

	rt := newTestRouter(upstream.URL, upstream.URL)

	req := httptest.NewRequest(http.MethodGet, "http://api.example.com/ratings", nil)
	req.Host = "api.example.com"
	req.Header.Set("X-Tenant-ID", "pizza")
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	assert.Equal(t, "pizza", gotTenantHeader)
}
