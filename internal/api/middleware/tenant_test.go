package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/r8r-one/platform/internal/tenant"
)

func resolveThrough(t *testing.T, req *http.Request) (string, *httptest.ResponseRecorder) {
	t.Helper()
	resolver := tenant.NewResolver("example.com", "api.example.com", "burritos", "pages.dev")

	var got string
	h := ResolveTenant(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = TenantIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return got, rec
}

func TestResolveTenant_FromHost(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://tacos.example.com/ratings", nil)
	req.Host = "tacos.example.com"

	got, rec := resolveThrough(t, req)
	if got != "tacos" {
		t.Fatalf("expected tacos in context, got %q", got)
	}
	if hdr := rec.Header().Get(TenantIDHeader); hdr != "tacos" {
		t.Fatalf("expected response header tacos, got %q", hdr)
	}
}

func TestResolveTenant_HeaderWins(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://tacos.example.com/ratings?tenant=coffee", nil)
	req.Host = "tacos.example.com"
	req.Header.Set(TenantIDHeader, "pizza")

	got, _ := resolveThrough(t, req)
	if got != "pizza" {
		t.Fatalf("expected pizza, got %q", got)
	}
}

func TestResolveTenant_QueryParam(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://api.example.com/ratings?tenant=coffee", nil)
	req.Host = "api.example.com"

	got, _ := resolveThrough(t, req)
	if got != "coffee" {
		t.Fatalf("expected coffee, got %q", got)
	}
}

func TestResolveTenant_RelayedOriginalHost(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://site.pages.dev/ratings", nil)
	req.Host = "site.pages.dev"
	req.Header.Set(OriginalHostHeader, "pizza.example.com")

	got, _ := resolveThrough(t, req)
	if got != "pizza" {
		t.Fatalf("expected pizza from relayed host, got %q", got)
	}
}

func TestResolveTenant_DefaultFallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://localhost:3000/ratings", nil)
	req.Host = "localhost:3000"

	got, _ := resolveThrough(t, req)
	if got != "burritos" {
		t.Fatalf("expected default, got %q", got)
	}
}
