package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Record store backends.
const (
	StoreAirtable = "airtable"
	StorePgsql    = "pgsql"
	StoreMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     string

	// Record store
	RecordStore        string
	AirtableAPIURL     string
	AirtableAPIToken   string
	AirtableBaseID     string
	StoreTimeout       time.Duration
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration

	// PostgreSQL backend
	DatabaseURL    string
	EnableDBCheck  bool
	MigrationsPath string

	// Locking
	RedisURL string
	LockTTL  time.Duration

	// Events
	KafkaBrokers []string
	KafkaTopic   string

	// Ledger
	LedgerActor           string
	LedgerConflictRetries int

	// HTTP
	RateLimit          string
	CORSAllowedOrigins []string

	// Poll CLI
	PollSeenDB string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("RECORD_STORE", StoreAirtable)
	viper.SetDefault("AIRTABLE_API_URL", "https://api.airtable.com")
	viper.SetDefault("AIRTABLE_API_TOKEN", "")
	viper.SetDefault("AIRTABLE_BASE_ID", "")
	viper.SetDefault("STORE_TIMEOUT", "10s")
	viper.SetDefault("BREAKER_MAX_FAILURES", 5)
	viper.SetDefault("BREAKER_OPEN_TIMEOUT", "30s")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("LOCK_TTL", "30s")
	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("KAFKA_TOPIC", "pto-ledger-events")
	viper.SetDefault("LEDGER_ACTOR", "PTO Ledger Automation")
	viper.SetDefault("LEDGER_CONFLICT_RETRIES", 3)
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("POLL_SEEN_DB", "pto_poll_seen.db")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:                  viper.GetString("PORT"),
		IsProduction:          viper.GetBool("IS_PRODUCTION"),
		LogLevel:              strings.ToLower(viper.GetString("LOG_LEVEL")),
		RecordStore:           strings.ToLower(viper.GetString("RECORD_STORE")),
		AirtableAPIURL:        viper.GetString("AIRTABLE_API_URL"),
		AirtableAPIToken:      viper.GetString("AIRTABLE_API_TOKEN"),
		AirtableBaseID:        viper.GetString("AIRTABLE_BASE_ID"),
		BreakerMaxFailures:    viper.GetUint32("BREAKER_MAX_FAILURES"),
		DatabaseURL:           viper.GetString("PGSQL_URL"),
		EnableDBCheck:         viper.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:        viper.GetString("MIGRATIONS_PATH"),
		RedisURL:              viper.GetString("REDIS_URL"),
		KafkaBrokers:          splitList(viper.GetString("KAFKA_BROKERS")),
		KafkaTopic:            viper.GetString("KAFKA_TOPIC"),
		LedgerActor:           viper.GetString("LEDGER_ACTOR"),
		LedgerConflictRetries: viper.GetInt("LEDGER_CONFLICT_RETRIES"),
		RateLimit:             viper.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:    splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		PollSeenDB:            viper.GetString("POLL_SEEN_DB"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.StoreTimeout = durationOrDefault("STORE_TIMEOUT", 10*time.Second)
	cfg.BreakerOpenTimeout = durationOrDefault("BREAKER_OPEN_TIMEOUT", 30*time.Second)
	cfg.LockTTL = durationOrDefault("LOCK_TTL", 30*time.Second)
	if minTTL := MinLockTTL(cfg.StoreTimeout); cfg.LockTTL < minTTL {
		log.Printf("Warning: LOCK_TTL %s cannot cover a balance write with STORE_TIMEOUT %s. Using %s.\n", cfg.LockTTL, cfg.StoreTimeout, minTTL)
		cfg.LockTTL = minTTL
	}

	if cfg.LedgerConflictRetries < 1 {
		log.Printf("Warning: LEDGER_CONFLICT_RETRIES must be at least 1 (got %d). Defaulting to 3.\n", cfg.LedgerConflictRetries)
		cfg.LedgerConflictRetries = 3
	}

	switch cfg.RecordStore {
	case StoreAirtable:
		if cfg.AirtableAPIToken == "" || cfg.AirtableBaseID == "" {
			return nil, fmt.Errorf("RECORD_STORE=airtable requires AIRTABLE_API_TOKEN and AIRTABLE_BASE_ID")
		}
	case StorePgsql:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("RECORD_STORE=pgsql requires PGSQL_URL")
		}
	case StoreMemory:
		log.Println("Warning: RECORD_STORE=memory keeps data in process memory only.")
	default:
		return nil, fmt.Errorf("unknown RECORD_STORE %q (want %s, %s or %s)", cfg.RecordStore, StoreAirtable, StorePgsql, StoreMemory)
	}

	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set. Balance locks only serialise writers inside this process.")
	}
	if len(cfg.KafkaBrokers) == 0 {
		log.Println("Warning: KAFKA_BROKERS not set. Ledger events will only be logged.")
	}

	return cfg, nil
}

// lockedStoreCalls is how many store calls may run between a lock refresh and the end of the
// balance write: the precondition read and the write itself on Airtable, plus one for the
// refresh round trip.
const lockedStoreCalls = 3

// MinLockTTL is the shortest lock TTL that still holds through a balance write when every
// store call takes up to storeTimeout.
func MinLockTTL(storeTimeout time.Duration) time.Duration {
	return time.Duration(lockedStoreCalls) * storeTimeout
}

func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
