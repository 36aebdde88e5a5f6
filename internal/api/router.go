package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/r8r-one/platform/internal/api/handlers"
	mw "github.com/r8r-one/platform/internal/api/middleware"
	"github.com/r8r-one/platform/internal/buildconfig"
	"github.com/r8r-one/platform/internal/cache"
	"github.com/r8r-one/platform/internal/config"
	"github.com/r8r-one/platform/internal/domain"
	"github.com/r8r-one/platform/internal/registry"
	"github.com/r8r-one/platform/internal/service"
	"github.com/r8r-one/platform/internal/store"
	"github.com/r8r-one/platform/internal/tenant"
	"go.uber.org/zap"
)

// App holds the router and request counters for the metrics endpoint.
type App struct {
	Router       *chi.Mux
	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

func NewApp(db *pgxpool.Pool, logger *zap.Logger) *App {
	// Stores
	tenantStore := store.NewTenantStore(db)
	itemStore := store.NewItemStore(db)
	ratingStore := store.NewRatingStore(db)
	imageStore := store.NewImageStore(db)

	// Tenant resolution is shared by every layer that needs it; this is
	// the only place the precedence chain lives.
	resolver := tenant.NewResolver(
		config.PlatformDomain(),
		config.APIHost(),
		config.DefaultTenant(),
		config.InternalDomain(),
	)

	// Registry: external service when configured, otherwise our own
	// tenants table.
	var reg tenant.Registry
	if url := config.RegistryURL(); url != "" {
		reg = registry.NewHTTPClient(url, config.RegistryTimeout())
		logger.Info("using external tenant registry", zap.String("url", url))
	} else {
		reg = registry.NewStoreClient(tenantStore)
	}

	provider := tenant.NewProvider(reg, tenant.BuiltinTemplates(), logger)
	provider.SetLookupTimeout(config.RegistryTimeout())
	if addr := config.RedisAddr(); addr != "" {
		provider.SetCache(cache.NewTenantConfigCache(addr, config.RedisPassword(), config.RedisDB(), config.ConfigCacheTTL()))
		logger.Info("tenant config cache enabled", zap.String("addr", addr))
	}

	// Services
	captcha := service.NewTurnstileVerifier(config.TurnstileSecretKey())
	ratingSvc := service.NewRatingService(ratingStore, itemStore, captcha, logger)
	imageSvc := service.NewImageService(imageStore)

	// Handlers
	ratingHandler := handlers.NewRatingHandler(ratingSvc)
	tenantHandler := handlers.NewTenantHandler(provider)
	imageHandler := handlers.NewImageHandler(imageSvc, config.ImageCDNBase())

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		startTime: time.Now(),
	}

	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.CORS)
	r.Use(mw.ResolveTenant(resolver)) // before logging so tenant_id is in every log line
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	// Health and metrics (no tenant semantics)
	r.Get("/health", healthHandler(db))
	r.Get("/metrics", app.metricsHandler())

	// Tenant configuration
	r.Get("/tenants/{id}", tenantHandler.Get)

	// Ratings (legacy-shaped API)
	r.Route("/ratings", func(r chi.Router) {
		r.Get("/", ratingHandler.List)
		r.Post("/", ratingHandler.Create)
		r.Post("/confirm-bulk", ratingHandler.ConfirmBulk)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", ratingHandler.GetByID)
			r.Delete("/", ratingHandler.Delete)
			r.Put("/confirm", ratingHandler.Confirm)
		})
	})

	// Images
	r.Route("/images", func(r chi.Router) {
		r.With(mw.TokenAuth(config.ImageAPIToken())).Post("/upload", imageHandler.Upload)
		r.Get("/{filename}", imageHandler.Get)
	})

	return app
}

// NewRouter returns just the chi.Mux.
func NewRouter(db *pgxpool.Pool, logger *zap.Logger) *chi.Mux {
	return NewApp(db, logger).Router
}

func healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"version":        buildconfig.Version(),
			"commit":         buildconfig.Commit(),
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores and clients satisfy interfaces at compile time.
var (
	_ domain.TenantStore = (*store.TenantStore)(nil)
	_ domain.ItemStore   = (*store.ItemStore)(nil)
	_ domain.RatingStore = (*store.RatingStore)(nil)
	_ domain.ImageStore  = (*store.ImageStore)(nil)

	_ tenant.Registry         = (*registry.HTTPClient)(nil)
	_ tenant.Registry         = (*registry.StoreClient)(nil)
	_ tenant.ConfigCache      = (*cache.TenantConfigCache)(nil)
	_ service.CaptchaVerifier = (*service.TurnstileVerifier)(nil)
)
