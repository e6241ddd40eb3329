// Copyright (c) 2026 Aparna Ranjan.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"strings"
	"testing"
)

func TestParseFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{"-d", "postgres://localhost/usr_annotate"})
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	if cfg.DatabaseURL != "postgres://localhost/usr_annotate" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.SchemaVersion != SchemaOptimized {
		t.Errorf("SchemaVersion = %q, want default %q", cfg.SchemaVersion, SchemaOptimized)
	}
}

func TestParseFlagsLegacySchema(t *testing.T) {
	cfg, err := ParseFlags([]string{"-d", "postgres://localhost/x", "-schema", "legacy"})
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	if cfg.SchemaVersion != SchemaLegacy {
		t.Errorf("SchemaVersion = %q, want %q", cfg.SchemaVersion, SchemaLegacy)
	}
}

func TestParseFlagsInvalidSchema(t *testing.T) {
	_, err := ParseFlags([]string{"-d", "postgres://localhost/x", "-schema", "v2"})
	if err == nil {
		t.Fatal("ParseFlags() expected error for invalid schema version")
	}
	if !strings.Contains(err.Error(), "invalid schema version") {
		t.Errorf("ParseFlags() error = %v", err)
	}
}

func TestParseFlagsMissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := ParseFlags(nil)
	if err == nil {
		t.Fatal("ParseFlags() expected error when database URL is missing")
	}
}

func TestParseFlagsEnvFallback(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env-host/usr_annotate")
	t.Setenv("SCHEMA_VERSION", "legacy")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	if cfg.DatabaseURL != "postgres://env-host/usr_annotate" {
		t.Errorf("DatabaseURL = %q, want env value", cfg.DatabaseURL)
	}
	if cfg.SchemaVersion != SchemaLegacy {
		t.Errorf("SchemaVersion = %q, want %q from env", cfg.SchemaVersion, SchemaLegacy)
	}
}

func TestParseFlagsFlagBeatsEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env-host/usr_annotate")

	cfg, err := ParseFlags([]string{"-d", "postgres://flag-host/usr_annotate"})
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	if cfg.DatabaseURL != "postgres://flag-host/usr_annotate" {
		t.Errorf("DatabaseURL = %q, flag should win over env", cfg.DatabaseURL)
	}
}
