package srt

import (
	"strconv"
	"strings"

	"srtcheck/internal/fileutil"
)

// Record is one subtitle cue.
type Record struct {
	Index     int    `json:"index"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Text      string `json:"text"`
	RawHeader string `json:"raw_header"`
}

// Timing renders the canonical "start --> end" range.
func (r Record) Timing() string {
	return r.Start + " --> " + r.End
}

// Block serializes the record as an SRT block without the trailing blank line.
func (r Record) Block(lineEnding string) string {
	if lineEnding == "" {
		lineEnding = "\n"
	}
	var b strings.Builder
	b.WriteString(strconv.Itoa(r.Index))
	b.WriteString(lineEnding)
	b.WriteString(r.RawHeader)
	if r.Text != "" {
		b.WriteString(lineEnding)
		b.WriteString(r.Text)
	}
	return b.String()
}

// SkipReason explains why a block produced no record.
type SkipReason string

const (
	SkipTooShort  SkipReason = "too_short"
	SkipBadIndex  SkipReason = "bad_index"
	SkipBadTiming SkipReason = "bad_timing"
)

// Skipped describes a block that was tolerated but not parsed.
type Skipped struct {
	Ordinal   int        `json:"ordinal"`
	Reason    SkipReason `json:"reason"`
	FirstLine string     `json:"first_line"`
}

// Outcome is the result of parsing one block: exactly one of Record or
// Skipped is set.
type Outcome struct {
	Record  *Record
	Skipped *Skipped
}

// Document is a parsed subtitle file. Source is populated by ParseFile.
type Document struct {
	Records    []Record
	Skipped    []Skipped
	LineEnding string
	Source     fileutil.Input
}

// Format serializes the records back into SRT text using the document's line
// ending and a single blank line between blocks.
func (d Document) Format() string {
	eol := d.LineEnding
	if eol == "" {
		eol = "\n"
	}
	blocks := make([]string, 0, len(d.Records))
	for _, rec := range d.Records {
		blocks = append(blocks, rec.Block(eol))
	}
	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, eol+eol) + eol
}
