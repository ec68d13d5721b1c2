// Package sqlscan locates CREATE TABLE statements in free-form migration text.
//
// It is deliberately not a SQL parser. Two pieces cooperate:
//
//   - FindCreateTable: a lightweight keyword search for
//     CREATE TABLE [IF NOT EXISTS] [schema.]name
//   - LocateStatementEnd: a byte-level automaton that finds where the
//     statement's parenthesized body closes and its terminating ';' follows.
//
// The automaton tracks three pieces of state: parenthesis depth, whether it
// is inside a single-quoted literal, and whether the previous byte was a
// backslash. Parentheses and semicolons inside literals are ignored.
//
// # Known Limitations
//
//   - Double-quoted table names (CREATE TABLE "Quoted" ...) are not matched;
//     such statements are neither appended, counted as known, nor dropped.
//     In schema."Quoted" the schema token is taken as the table name.
//   - Dollar-quoted bodies ($$...$$) are not recognised.
//   - Double-quoted identifiers containing parentheses or quotes confuse the depth count.
//   - Comments are scanned like code, so a ')' or '\'' inside a comment counts.
//   - A backslash escapes the next byte everywhere, even under standard_conforming_strings.
package sqlscan
