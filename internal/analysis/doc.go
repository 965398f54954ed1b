// Package analysis scans subtitle text for likely speech recognition errors.
//
// A Table is an ordered list of literal or regular expression patterns, each
// paired with a suggested replacement and a short description. Tables are
// data: the built-in one can be disabled, extended from a TOML, JSON, or YAML
// file, or extended inline from the configuration. After the table, one
// built-in heuristic flags the spoken word "underscore" as a likely "_".
package analysis
