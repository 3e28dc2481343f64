package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// RedisConfig holds the connection settings of the document lock store.
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// Enabled reports whether a redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	JWTSecret          string
	JWTIssuer          string
	Redis              RedisConfig
	DocumentLockTTL    time.Duration
	RateLimit          string
	CORSAllowedOrigins []string
	BankFieldKey       string
	MigrationsPath     string
	LogLevel           string
	DefaultTimezone    string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom()
}

// LoadConfigFrom loads configuration like LoadConfig but reads the given env files
// instead of .env. Variables already present in the environment win.
func LoadConfigFrom(envFiles ...string) (*Config, error) {
	// Missing files are ignored
	_ = godotenv.Load(envFiles...)

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_ISSUER", "books-ledger")
	viper.SetDefault("REDIS_ADDRESS", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("DOCUMENT_LOCK_TTL", "30s")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("BANK_FIELD_KEY", "")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DEFAULT_TIMEZONE", "Asia/Kolkata")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET environment variable not set. Every authenticated request will be rejected.")
	}

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "books-ledger"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	lockTTLStr := viper.GetString("DOCUMENT_LOCK_TTL")
	lockTTL, err := time.ParseDuration(lockTTLStr)
	if err != nil || lockTTL <= 0 {
		lockTTL = 30 * time.Second
		log.Printf("Warning: Invalid value for DOCUMENT_LOCK_TTL ('%s'). Defaulting to %s.\n", lockTTLStr, lockTTL)
	}
	cfg.DocumentLockTTL = lockTTL

	cfg.Redis = RedisConfig{
		Address:  viper.GetString("REDIS_ADDRESS"),
		Password: viper.GetString("REDIS_PASSWORD"),
		DB:       viper.GetInt("REDIS_DB"),
	}
	if !cfg.Redis.Enabled() {
		log.Println("Warning: REDIS_ADDRESS not set. Document locks are held in-process only.")
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.BankFieldKey = viper.GetString("BANK_FIELD_KEY")
	if cfg.BankFieldKey == "" {
		log.Println("Warning: BANK_FIELD_KEY not set. Account bank details are stored unsealed.")
	}

	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.LogLevel = strings.ToLower(viper.GetString("LOG_LEVEL"))
	cfg.DefaultTimezone = viper.GetString("DEFAULT_TIMEZONE")
	if _, err := time.LoadLocation(cfg.DefaultTimezone); err != nil {
		log.Printf("Warning: DEFAULT_TIMEZONE '%s' is not a known timezone. Defaulting to UTC.\n", cfg.DefaultTimezone)
		cfg.DefaultTimezone = "UTC"
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
