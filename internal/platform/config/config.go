package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers understood by STORE_DRIVER.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
)

// ProviderURLs holds the base URL of every downstream service.
type ProviderURLs struct {
	Customer   string
	Product    string
	Deposit    string
	Withdrawal string
	Payment    string
	Purchase   string
	Signatory  string
}

// Config holds application configuration.
type Config struct {
	Port           string
	IsProduction   bool
	StoreDriver    string
	DatabaseURL    string
	EnableDBCheck  bool
	RunMigrations  bool
	MigrationsPath string
	MongoURI       string
	MongoDatabase  string

	Providers                  ProviderURLs
	ProviderTimeout            time.Duration
	BreakerConsecutiveFailures uint32
	BreakerOpenTimeout         time.Duration
	JoinConcurrency            int

	RateLimit          string // ulule/limiter format, e.g. "100-M"
	RedisURL           string // optional; in-memory limiter store when empty
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		StoreDriver:    strings.ToLower(v.GetString("STORE_DRIVER")),
		DatabaseURL:    v.GetString("PGSQL_URL"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:  v.GetBool("RUN_MIGRATIONS"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		MongoURI:       v.GetString("MONGO_URI"),
		MongoDatabase:  v.GetString("MONGO_DATABASE"),
		Providers: ProviderURLs{
			Customer:   v.GetString("CUSTOMER_SERVICE_URL"),
			Product:    v.GetString("PRODUCT_SERVICE_URL"),
			Deposit:    v.GetString("DEPOSIT_SERVICE_URL"),
			Withdrawal: v.GetString("WITHDRAWAL_SERVICE_URL"),
			Payment:    v.GetString("PAYMENT_SERVICE_URL"),
			Purchase:   v.GetString("PURCHASE_SERVICE_URL"),
			Signatory:  v.GetString("SIGNATORY_SERVICE_URL"),
		},
		BreakerConsecutiveFailures: v.GetUint32("BREAKER_CONSECUTIVE_FAILURES"),
		JoinConcurrency:            v.GetInt("JOIN_CONCURRENCY"),
		RateLimit:                  v.GetString("RATE_LIMIT"),
		RedisURL:                   v.GetString("REDIS_URL"),
		CORSAllowedOrigins:         splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set.")
		}
	case StoreDriverMongo:
		if cfg.MongoURI == "" {
			log.Println("Warning: MONGO_URI environment variable not set.")
		}
	default:
		log.Printf("Warning: Unknown STORE_DRIVER ('%s'). Defaulting to %s.\n", cfg.StoreDriver, StoreDriverPostgres)
		cfg.StoreDriver = StoreDriverPostgres
	}

	cfg.ProviderTimeout = parseDuration(v, "PROVIDER_TIMEOUT", 5*time.Second)
	cfg.BreakerOpenTimeout = parseDuration(v, "BREAKER_OPEN_TIMEOUT", 30*time.Second)

	if cfg.JoinConcurrency < 1 {
		log.Printf("Warning: Invalid value for JOIN_CONCURRENCY (%d). Defaulting to 8.\n", cfg.JoinConcurrency)
		cfg.JoinConcurrency = 8
	}
	if cfg.BreakerConsecutiveFailures == 0 {
		cfg.BreakerConsecutiveFailures = 5
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("MONGO_URI", "")
	v.SetDefault("MONGO_DATABASE", "transactions")
	v.SetDefault("CUSTOMER_SERVICE_URL", "http://localhost:8081")
	v.SetDefault("PRODUCT_SERVICE_URL", "http://localhost:8082")
	v.SetDefault("DEPOSIT_SERVICE_URL", "http://localhost:8083")
	v.SetDefault("WITHDRAWAL_SERVICE_URL", "http://localhost:8084")
	v.SetDefault("PAYMENT_SERVICE_URL", "http://localhost:8085")
	v.SetDefault("PURCHASE_SERVICE_URL", "http://localhost:8086")
	v.SetDefault("SIGNATORY_SERVICE_URL", "http://localhost:8087")
	v.SetDefault("PROVIDER_TIMEOUT", "5s")
	v.SetDefault("BREAKER_CONSECUTIVE_FAILURES", 5)
	v.SetDefault("BREAKER_OPEN_TIMEOUT", "30s")
	v.SetDefault("JOIN_CONCURRENCY", 8)
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
