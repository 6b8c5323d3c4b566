package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Catalogue sources.
const (
	SourceBuiltin  = "builtin"
	SourceFile     = "file"
	SourceS3       = "s3"
	SourcePostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Logger    LoggerConfig
	Auth      AuthConfig
	S3        S3Config
	Catalog   CatalogConfig
	Checkout  CheckoutConfig
	RateLimit RateLimitConfig
	Contact   ContactConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host          string
	Port          int
	AllowedOrigin string
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds authentication configuration for admin routes.
// An empty APIKey disables the admin routes.
type AuthConfig struct {
	APIKey string
}

// S3Config holds AWS S3 configuration for catalogue files.
type S3Config struct {
	Bucket string
	Region string
	Prefix string // Key prefix within bucket (e.g., "catalog/")
}

// CatalogConfig selects where the product catalogue is loaded from.
type CatalogConfig struct {
	Source string
	// Location is a file path (file), an object key below the S3 prefix (s3)
	// or a catalogue name (postgres). Ignored for builtin.
	Location string
}

// CheckoutConfig holds quick-checkout behaviour.
type CheckoutConfig struct {
	FallbackURL string
	SubmitDelay time.Duration
	CloseDelay  time.Duration
}

// RateLimitConfig holds per-client rate limiting configuration.
type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

// ContactConfig holds the seller contact details used for WhatsApp links.
type ContactConfig struct {
	Number   string
	Name     string
	ShopName string
}

// Load loads configuration from environment variables. A .env file in the
// working directory is read first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:          getEnv("SERVER_HOST", "0.0.0.0"),
			Port:          getEnvAsInt("SERVER_PORT", 8080),
			AllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "islet"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 5),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 1),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			APIKey: getEnv("API_KEY", ""),
		},
		S3: S3Config{
			Bucket: getEnv("S3_BUCKET", ""),
			Region: getEnv("S3_REGION", "ap-southeast-1"),
			Prefix: getEnv("S3_PREFIX", "catalog/"),
		},
		Catalog: CatalogConfig{
			Source:   getEnv("CATALOG_SOURCE", SourceBuiltin),
			Location: getEnv("CATALOG_LOCATION", ""),
		},
		Checkout: CheckoutConfig{
			FallbackURL: getEnv("CHECKOUT_FALLBACK_URL", "https://buy.stripe.com/test_dRm8wR3x48x630g4N00Ba00"),
			SubmitDelay: getEnvAsMillis("CHECKOUT_SUBMIT_DELAY_MS", time.Second),
			CloseDelay:  getEnvAsMillis("CHECKOUT_CLOSE_DELAY_MS", 2*time.Second),
		},
		RateLimit: RateLimitConfig{
			Enabled: getEnvAsBool("RATE_LIMIT_ENABLED", true),
			RPS:     getEnvAsFloat("RATE_LIMIT_RPS", 5),
			Burst:   getEnvAsInt("RATE_LIMIT_BURST", 20),
		},
		Contact: ContactConfig{
			Number:   getEnv("CONTACT_NUMBER", "60165568420"),
			Name:     getEnv("CONTACT_NAME", "Ivan Lee"),
			ShopName: getEnv("SHOP_NAME", "Islet Durians"),
		},
	}

	if cfg.Catalog.Location == "" {
		cfg.Catalog.Location = defaultLocation(cfg.Catalog.Source)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// defaultLocation returns the conventional catalogue location for a source.
func defaultLocation(source string) string {
	switch source {
	case SourceFile:
		return "data/catalog/catalog.json"
	case SourceS3:
		return "catalog.json"
	case SourcePostgres:
		return "islet"
	default:
		return ""
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	switch c.Catalog.Source {
	case SourceBuiltin:
	case SourceFile:
		if c.Catalog.Location == "" {
			return fmt.Errorf("catalogue location is required for file source")
		}
	case SourceS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required when catalogue source is s3")
		}
		if c.S3.Region == "" {
			return fmt.Errorf("S3 region is required when catalogue source is s3")
		}
	case SourcePostgres:
		if err := c.Database.validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid catalogue source: %s (must be builtin, file, s3, or postgres)", c.Catalog.Source)
	}

	if c.Checkout.FallbackURL == "" {
		return fmt.Errorf("checkout fallback URL is required")
	}

	if c.Checkout.SubmitDelay < 0 || c.Checkout.CloseDelay < 0 {
		return fmt.Errorf("checkout delays cannot be negative")
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RPS <= 0 {
			return fmt.Errorf("rate limit RPS must be positive")
		}
		if c.RateLimit.Burst < 1 {
			return fmt.Errorf("rate limit burst must be at least 1")
		}
	}

	if c.Contact.Number == "" {
		return fmt.Errorf("contact number is required")
	}

	return nil
}

func (c *DatabaseConfig) validate() error {
	if c.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Port)
	}

	if c.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.MinConnections > c.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float or returns a default value.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsMillis retrieves an environment variable holding milliseconds as a duration.
func getEnvAsMillis(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if ms, err := strconv.Atoi(value); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return defaultValue
}
