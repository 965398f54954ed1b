// Package report assembles per-entry text differences between an original
// and a corrected subtitle file.
//
// Entries are paired by index value rather than by position so a diff can
// still be produced for files the structural validator rejects. Each changed
// pair carries a token alignment; alignments are computed by a bounded worker
// pool and slotted back by position so the output never depends on
// scheduling. Document wraps a report with the run metadata used by the JSON
// and HTML renderers.
package report
