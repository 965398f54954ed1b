// Package integrity verifies that a corrected subtitle file keeps the
// structure of its original.
//
// Only cue text may change. Entry count, index values, start and end
// timestamps, and the exact timing line text must be identical; any drift,
// including spacing around the arrow, is reported as an issue. Issues are
// results for the user, not errors.
package integrity
