// Package align computes token-level edit scripts between two texts.
//
// The engine repeatedly takes the longest block of tokens common to both
// sides of a range, preferring the earliest block in the source and then in
// the target when several have the same length, and recurses into the ranges
// before and after it. The resulting blocks become Equal ops and the gaps
// between them become Delete, Insert, or Replace ops. There are no junk or
// popularity heuristics, so the script is a deterministic function of the two
// inputs.
package align
