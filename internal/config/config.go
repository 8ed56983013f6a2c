package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/masjidsite/internal/cache"
)

// Config holds environment-based settings
type Config struct {
	Environment    string
	LogLevel       string
	ServerAddress  string
	DatabaseURL    string
	MigrationsPath string
	JWTSecret      string

	// host routing
	RootDomain           string
	ReservedHosts        []string
	ReservedPathPrefixes []string
	TenantPrefix         string
	Location             *time.Location

	// prayer times
	ESolatBaseURL   string
	ESolatTimeout   time.Duration
	PrayerCacheTTL  time.Duration
	PrayerDateCheck bool

	CacheDriver   string
	RedisAddress  string
	RedisUsername string
	RedisPassword string

	MQTTBrokerURL string
	MQTTClientID  string

	UploadDir       string
	UseSpaces       bool
	SpacesEndpoint  string
	SpacesRegion    string
	SpacesBucket    string
	SpacesCDNURL    string
	SpacesAccessKey string
	SpacesSecretKey string
}

// IsDevelopment reports whether APP_ENV is "development".
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// LoadDotEnv merges a .env file into the process environment without
// overriding variables that are already set. A missing file is fine.
func LoadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load .env: %w", err)
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Environment:    getenv("APP_ENV", "production"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		ServerAddress:  getenv("SERVER_ADDRESS", ":8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: getenv("MIGRATIONS_PATH", "./migrations"),
		JWTSecret:      os.Getenv("JWT_SECRET"),

		RootDomain:   strings.ToLower(getenv("ROOT_DOMAIN", "masjidsite.my")),
		TenantPrefix: getenv("TENANT_PREFIX", "/_sites"),

		ESolatBaseURL: os.Getenv("ESOLAT_BASE_URL"),

		CacheDriver:   strings.ToLower(getenv("CACHE_DRIVER", cache.DriverMemory)),
		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		MQTTBrokerURL: os.Getenv("MQTT_BROKER_URL"),
		MQTTClientID:  getenv("MQTT_CLIENT_ID", "masjidsite-server"),

		UploadDir:       getenv("UPLOAD_DIR", "./uploads"),
		UseSpaces:       os.Getenv("USE_SPACES") == "true",
		SpacesEndpoint:  os.Getenv("SPACES_ENDPOINT"),
		SpacesRegion:    os.Getenv("SPACES_REGION"),
		SpacesBucket:    os.Getenv("SPACES_BUCKET"),
		SpacesCDNURL:    os.Getenv("SPACES_CDN_URL"),
		SpacesAccessKey: os.Getenv("SPACES_ACCESS_KEY"),
		SpacesSecretKey: os.Getenv("SPACES_SECRET_KEY"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	// incoming hosts are lowercased before routing
	cfg.ReservedHosts = splitList(strings.ToLower(os.Getenv("RESERVED_HOSTS")))
	if len(cfg.ReservedHosts) == 0 {
		cfg.ReservedHosts = DefaultReservedHosts(cfg.RootDomain)
	}
	cfg.ReservedPathPrefixes = splitList(os.Getenv("RESERVED_PATH_PREFIXES"))
	if len(cfg.ReservedPathPrefixes) == 0 {
		cfg.ReservedPathPrefixes = DefaultReservedPathPrefixes()
	}

	loc, err := time.LoadLocation(getenv("TIMEZONE", "Asia/Kuala_Lumpur"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	cfg.Location = loc

	if cfg.ESolatTimeout, err = durationEnv("ESOLAT_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.PrayerCacheTTL, err = durationEnv("PRAYER_CACHE_TTL", time.Hour); err != nil {
		return nil, err
	}
	if cfg.PrayerDateCheck, err = boolEnv("PRAYER_DATE_CHECK", false); err != nil {
		return nil, err
	}

	switch cfg.CacheDriver {
	case cache.DriverMemory:
	case cache.DriverRedis:
		if cfg.RedisAddress == "" {
			return nil, fmt.Errorf("REDIS_ADDRESS is required when CACHE_DRIVER=redis")
		}
	default:
		return nil, fmt.Errorf("unknown CACHE_DRIVER %q", cfg.CacheDriver)
	}

	if cfg.UseSpaces && (cfg.SpacesBucket == "" || cfg.SpacesEndpoint == "") {
		return nil, fmt.Errorf("SPACES_BUCKET and SPACES_ENDPOINT are required when USE_SPACES=true")
	}

	log.Debug().
		Str("root_domain", cfg.RootDomain).
		Strs("reserved_hosts", cfg.ReservedHosts).
		Str("cache_driver", cfg.CacheDriver).
		Msg("configuration loaded")
	return cfg, nil
}

// DefaultReservedHosts are the platform's own hostnames for root.
func DefaultReservedHosts(root string) []string {
	return []string{
		root,
		"www." + root,
		"app." + root,
		"admin." + root,
		"localhost:8080",
	}
}

// DefaultReservedPathPrefixes are served by the platform on every host.
func DefaultReservedPathPrefixes() []string {
	return []string{"/api/", "/admin", "/auth", "/uploads/", "/static/", "/healthz", "/metrics"}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

// splitList splits a comma list, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
