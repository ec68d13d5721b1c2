// Package manager creates, inspects and drops PostgreSQL databases.
//
// All operations use pgx.Identifier.Sanitize() for identifier quoting, so
// database names with spaces, quotes or mixed case are handled safely.
//
// # Example Usage
//
//	mgr := manager.New()
//	err := mgr.Create(ctx, conn, "schemafold_verify_3f2a")
//	exists, err := mgr.Exists(ctx, conn, "schemafold_verify_3f2a")
//	err = mgr.Drop(ctx, conn, "schemafold_verify_3f2a")
//
// Drop uses DROP DATABASE ... WITH (FORCE) and needs PostgreSQL 13 or later.
package manager
