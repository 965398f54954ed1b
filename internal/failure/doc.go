// Package failure defines the error markers shared by the parser, file helpers,
// configuration loader, and CLI.
//
// Errors are tagged with one of the exported sentinels via Wrap so callers can
// classify them with errors.Is without string matching. Malformed subtitle
// blocks and structural mismatches are never errors; they surface as parse
// outcomes and validation issues instead.
package failure
