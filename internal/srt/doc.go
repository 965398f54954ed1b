// Package srt parses SubRip subtitle files into immutable Record values.
//
// Parsing is tolerant: blocks without an integer index line or a well-formed
// timing line are skipped rather than rejected, and each skip is reported as a
// ParseBlocks outcome so callers can count or log them. Timestamps are kept as
// the exact text found in the file because downstream validation compares
// them byte for byte.
package srt
