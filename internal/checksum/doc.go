// Package checksum fingerprints the consolidated output.
//
// Two runs over unchanged migrations must produce byte-identical output; the
// raw checksum printed in verbose mode makes that observable across runs.
package checksum
