package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Schema version constants
const (
	SchemaOptimized = "optimized"
	SchemaLegacy    = "legacy"
)

type Config struct {
	DatabaseURL   string
	SchemaVersion string
}

// ParseFlags validates flags and environment configuration.
// A .env file in the working directory is loaded first if present.
func ParseFlags(args []string) (Config, error) {
	// Missing .env is fine; env vars may come from the environment itself
	_ = godotenv.Load()

	var cfg Config

	fs := flag.NewFlagSet("usr-annotate", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.SchemaVersion, "schema", "", "Schema version (optimized or legacy)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.SchemaVersion == "" {
		cfg.SchemaVersion = os.Getenv("SCHEMA_VERSION")
		if cfg.SchemaVersion == "" {
			cfg.SchemaVersion = SchemaOptimized
		}
	}
	if cfg.SchemaVersion != SchemaOptimized && cfg.SchemaVersion != SchemaLegacy {
		return Config{}, fmt.Errorf("invalid schema version %q (want optimized or legacy)", cfg.SchemaVersion)
	}

	return cfg, nil
}
