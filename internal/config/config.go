package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Draft store backends.
const (
	DraftStoreMemory   = "memory"
	DraftStoreRedis    = "redis"
	DraftStorePostgres = "postgres"
)

type Config struct {
	// DesignFoli backend
	APIBaseURL string

	// Supabase
	SupabaseURL            string
	SupabasePublishableKey string
	SupabaseServiceKey     string
	SupabaseStorageBucket  string

	// Bearer tokens
	JWTSecret string

	// Drafts
	DraftStore    string
	DraftTTL      time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DatabaseURL   string

	// Sessions and uploads
	TokenRefreshInterval time.Duration
	MaxUploadMB          int

	// Server
	Port        string
	Environment string
	BaseURL     string
}

// Load reads the environment, after merging a .env file when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	cfg := &Config{
		APIBaseURL: getEnv("API_BASE_URL", ""),

		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabasePublishableKey: getEnv("SUPABASE_PUBLISHABLE_KEY", ""),
		SupabaseServiceKey:     getEnv("SUPABASE_SERVICE_KEY", ""),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", "case-study-uploads"),

		JWTSecret: getEnv("JWT_SECRET", ""),

		DraftStore:    strings.ToLower(getEnv("DRAFT_STORE", DraftStoreMemory)),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		DatabaseURL:   getEnv("DATABASE_URL", ""),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
	}

	var err error
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.MaxUploadMB, err = getEnvInt("MAX_UPLOAD_MB", 5); err != nil {
		return nil, err
	}
	if cfg.DraftTTL, err = getEnvDuration("DRAFT_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.TokenRefreshInterval, err = getEnvDuration("TOKEN_REFRESH_INTERVAL", 55*time.Minute); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	switch c.DraftStore {
	case DraftStoreMemory, DraftStoreRedis:
	case DraftStorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when DRAFT_STORE=postgres")
		}
	default:
		return fmt.Errorf("DRAFT_STORE must be one of memory, redis, postgres; got %q", c.DraftStore)
	}
	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}
	// Without a secret tokens are decoded but not verified.
	if c.Environment == "production" && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when ENVIRONMENT=production")
	}
	return nil
}

// SupabaseEnabled reports whether identity and storage can use Supabase.
func (c *Config) SupabaseEnabled() bool {
	return c.SupabaseURL != "" && c.SupabasePublishableKey != ""
}

// StorageKey is the key used for the staging bucket; the service key when
// set, the publishable key otherwise.
func (c *Config) StorageKey() string {
	if c.SupabaseServiceKey != "" {
		return c.SupabaseServiceKey
	}
	return c.SupabasePublishableKey
}

func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
