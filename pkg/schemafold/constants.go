package schemafold

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Consolidation completed
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (invalid arguments or flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration
	ExitConnectionError = 11 // Failed to connect to database (verify)
	ExitVerifyFailed    = 13 // Consolidated script failed to execute (verify)
	ExitBaselineMissing = 14 // Baseline migration not found
)

const (
	// DefaultMigrationsDir is the directory scanned when no configuration overrides it.
	DefaultMigrationsDir = "supabase/migrations"

	// DefaultBaselineFile is the migration every other file is consolidated into.
	DefaultBaselineFile = "00000000000000_initial_schema.sql"

	// DefaultOutputPath is where the consolidated script is written.
	DefaultOutputPath = "supabase/setup_from_scratch.sql"

	// MigrationExtension selects additional migration files within the migrations directory.
	MigrationExtension = ".sql"

	// DefaultVerifyTimeout bounds the whole verify run (connect, create, execute, drop).
	DefaultVerifyTimeout = 2 * time.Minute

	// DefaultRetryInitialDelay is the initial delay before the first connection retry.
	DefaultRetryInitialDelay = 100 * time.Millisecond

	// DefaultRetryMaxDelay caps the delay between connection retries.
	DefaultRetryMaxDelay = 5 * time.Second

	// DefaultRetryMaxAttempts is the number of connection retries after the first attempt.
	DefaultRetryMaxAttempts = 3

	// DefaultMaintenanceDB is the database verify connects to for CREATE/DROP DATABASE.
	DefaultMaintenanceDB = "postgres"

	// VerifyDatabasePrefix prefixes the scratch databases created by verify.
	VerifyDatabasePrefix = "schemafold_verify_"
)

// Output banners. The rule is exactly 76 '=' characters.
const (
	BannerRule            = "-- ============================================================================"
	AdditionalTablesTitle = "-- ADDITIONAL TABLES FROM OTHER MIGRATIONS"
	TableCommentPrefix    = "-- Table: "
)

// DefaultHeaderReplacements rewrite the baseline's header so the output
// announces itself as a from-scratch setup script.
var DefaultHeaderReplacements = []HeaderReplacement{
	{
		From: "-- Initial Schema Migration",
		To:   "-- Complete Database Setup From Scratch",
	},
	{
		From: "-- This migration creates the initial database schema",
		To:   "-- Consolidated from all migrations; run once against an empty database",
	},
}

// DefaultKnownTables are the tables the default baseline already defines.
var DefaultKnownTables = []string{
	"companies",
	"company_settings",
	"customers",
	"estimates",
	"invoices",
	"jobs",
	"notifications",
	"payments",
	"properties",
	"team_members",
	"users",
}
