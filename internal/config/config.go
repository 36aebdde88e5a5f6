package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by R8R_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("R8R_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Load main env file (ignore error if file doesn't exist)
	_ = godotenv.Load(envFile)

	// Load secret sidecar if it exists
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

func EdgePort() int {
	port, err := strconv.Atoi(os.Getenv("EDGE_PORT"))
	if err != nil {
		return 8081
	}
	return port
}

func EdgeAddr() string {
	return fmt.Sprintf(":%d", EdgePort())
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

// PlatformDomain is the root domain tenant subdomains are minted under.
func PlatformDomain() string {
	d := os.Getenv("PLATFORM_DOMAIN")
	if d == "" {
		return "r8r.one"
	}
	return d
}

// APIHost is the public API hostname.
func APIHost() string {
	h := os.Getenv("API_HOST")
	if h == "" {
		return "api." + PlatformDomain()
	}
	return h
}

// SiteOrigin is the upstream static-site origin the edge router forwards
// browser traffic to.
func SiteOrigin() string {
	o := os.Getenv("SITE_ORIGIN")
	if o == "" {
		return "https://r8r-platform.pages.dev"
	}
	return o
}

// APIOrigin is the upstream API origin behind the edge router.
func APIOrigin() string {
	o := os.Getenv("API_ORIGIN")
	if o == "" {
		return "https://r8r-platform-api.workers.dev"
	}
	return o
}

// DefaultTenant is the fallback tenant id when resolution matches nothing.
func DefaultTenant() string {
	t := os.Getenv("DEFAULT_TENANT")
	if t == "" {
		return "burritos"
	}
	return t
}

// InternalDomain is the deployment platform's own domain; hosts under it
// resolve to the default tenant.
func InternalDomain() string {
	d := os.Getenv("INTERNAL_DOMAIN")
	if d == "" {
		return "pages.dev"
	}
	return d
}

// RegistryURL is the external tenant registry base URL. Empty means the
// platform's own tenants table serves lookups.
func RegistryURL() string {
	return os.Getenv("REGISTRY_URL")
}

// RegistryTimeout bounds a single tenant registry lookup.
func RegistryTimeout() time.Duration {
	d, err := time.ParseDuration(os.Getenv("REGISTRY_TIMEOUT"))
	if err != nil || d <= 0 {
		return 2 * time.Second
	}
	return d
}

func RedisAddr() string {
	return os.Getenv("REDIS_ADDR")
}

func RedisPassword() string {
	return os.Getenv("REDIS_PASSWORD")
}

func RedisDB() int {
	db, err := strconv.Atoi(os.Getenv("REDIS_DB"))
	if err != nil {
		return 0
	}
	return db
}

// ConfigCacheTTL is how long a tenant config stays cached in Redis.
func ConfigCacheTTL() time.Duration {
	d, err := time.ParseDuration(os.Getenv("CONFIG_CACHE_TTL"))
	if err != nil || d <= 0 {
		return 5 * time.Minute
	}
	return d
}

func TurnstileSecretKey() string {
	return os.Getenv("TURNSTILE_SECRET_KEY")
}

// ImageAPIToken authorizes image uploads.
func ImageAPIToken() string {
	return os.Getenv("IMAGE_API_TOKEN")
}

// ImageCDNBase, when set, is prepended to uploaded image filenames to
// build the CDN URL returned to clients.
func ImageCDNBase() string {
	return os.Getenv("IMAGE_CDN_BASE")
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

func MigrationsPath() string {
	p := os.Getenv("MIGRATIONS_PATH")
	if p == "" {
		return "migrations"
	}
	return p
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}
