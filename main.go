package main

import (
	"database/sql"
	"log/slog"
	"os"

	_ "github.com/lib/pq"

	"github.com/aparna-ranjan/usr-annotate/cliparse"
	"github.com/aparna-ranjan/usr-annotate/db"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	dbConn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	switch cfg.SchemaVersion {
	case cliparse.SchemaLegacy:
		err = db.CreateLegacySchema(dbConn)
	default:
		err = db.CreateSchema(dbConn)
	}
	if err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Database schema ready", "version", cfg.SchemaVersion)
}
