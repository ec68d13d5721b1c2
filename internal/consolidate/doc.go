// Package consolidate folds additional migrations into a baseline schema.
//
// Consolidate is a pure function of its inputs: the baseline text, the
// additional migration files, and the set of table names the baseline already
// defines. It returns the assembled document and a Report; reading inputs and
// writing the result belong to the caller.
//
// Output layout:
//
//	<baseline, header lines substituted>
//
//	-- ============================================================================
//	-- ADDITIONAL TABLES FROM OTHER MIGRATIONS
//	-- ============================================================================
//
//	-- Table: tags
//	CREATE TABLE tags (...);
//
//	-- Table: ...
//
// Files are processed in ascending name order and statements keep their
// source order. A table is appended once per definition found: there is no
// cross-file deduplication and no dependency ordering.
package consolidate
