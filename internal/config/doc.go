// Package config loads, normalizes, and validates srtcheck configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from an explicit path, the user config
// directory, or the working directory. The Config type centralizes output
// limits, logging, diff presentation, and the analyzer pattern table.
//
// Always obtain settings through this package so commands receive sanitized
// paths, canonical log formats, and clear validation errors.
package config
