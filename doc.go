// Copyright (c) 2026 Aparna Ranjan.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the schema tool for the USR annotation database.

The database backs a linguistic-annotation platform where annotators,
reviewers and admins annotate segments of Hindi/Sanskrit/English text with
Unified Semantic Representations (USRs): layered lexical, dependency,
discourse-coreference, construction and sentence-type information, plus
concept and tense-aspect-mood (TAM) vocabulary submissions and a feedback
workflow.

# Applying the Schema

	DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -d "postgres://..." -schema optimized

# Configuration

  - DATABASE_URL (-d): PostgreSQL connection string (required)
  - SCHEMA_VERSION (-schema): "optimized" (default) or "legacy"

# Architecture

  - db: DDL for both schema versions
  - models: row types and status domains
  - store: data-access layer (CRUD, workflow status updates, tree loads)
  - auth: password hashing and OTP helpers
  - cliparse: configuration parsing
  - testutil: live-database test fixtures

See package documentation for each component.
*/
package main
