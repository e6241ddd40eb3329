// Copyright (c) 2026 Aparna Ranjan.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

Configuration comes from CLI flags, falling back to environment variables.
A .env file in the working directory is loaded first if one exists.

Settings:

  - DATABASE_URL (-d): PostgreSQL connection string (required)
  - SCHEMA_VERSION (-schema): "optimized" (default) or "legacy"
*/
package cliparse
