package render

import (
	"io"
	"strconv"
	"strings"

	"srtcheck/internal/align"
	"srtcheck/internal/report"
)

const missingText = "<missing>"

// DiffOptions controls diff output.
type DiffOptions struct {
	// Limit caps the listed entries. Zero lists all of them.
	Limit   int
	Inline  bool
	Summary bool
	Style   Style
}

// Diff writes the entries of rep. Reports assembled with unchanged entries
// list those too, marked with "=".
func Diff(w io.Writer, rep report.Report, opts DiffOptions) error {
	pal := newPalette(opts.Style)
	p := &printer{w: w}

	p.line("Found %d text changes:", rep.Changed)
	p.blank()

	shown := rep.Entries
	if opts.Limit > 0 && len(shown) > opts.Limit {
		shown = shown[:opts.Limit]
	}
	for _, entry := range shown {
		p.line("%s", pal.header.Sprintf("[%d] %s", entry.Index, entry.Timing))
		switch {
		case entry.Unmatched == report.SideCorrected:
			p.line("  - %s", entry.Original)
			p.line("  + %s", pal.dim.Sprint(missingText))
		case entry.Unmatched == report.SideOriginal:
			p.line("  - %s", pal.dim.Sprint(missingText))
			p.line("  + %s", entry.Corrected)
		case !entry.Changed:
			p.line("  = %s", entry.Original)
		default:
			p.line("  - %s", entry.Original)
			p.line("  + %s", entry.Corrected)
			if opts.Inline && entry.Segments != nil {
				p.line("  ~ %s", Inline(entry.Segments, opts.Style))
			}
		}
		p.blank()
	}

	if rest := len(rep.Entries) - len(shown); rest > 0 {
		noun := "changes"
		if len(rep.Entries) > rep.Changed {
			noun = "entries"
		}
		p.line("... and %d more %s", rest, noun)
	}

	if opts.Summary {
		if len(rep.Entries) > len(shown) {
			p.blank()
		}
		p.line("%s", DiffTable(rep, opts.Style))
	}
	return p.err
}

// Inline renders segments as one line. Without color, deletions are wrapped
// as [-text-] and insertions as {+text+}; with color they are shown in red
// and green instead.
func Inline(segs []align.Segment, style Style) string {
	pal := newPalette(style)
	var b strings.Builder
	for _, seg := range segs {
		switch seg.Kind {
		case align.SegDelete:
			if pal.enabled {
				b.WriteString(pal.del.Sprint(seg.Text))
			} else {
				b.WriteString("[-" + seg.Text + "-]")
			}
		case align.SegInsert:
			if pal.enabled {
				b.WriteString(pal.ins.Sprint(seg.Text))
			} else {
				b.WriteString("{+" + seg.Text + "+}")
			}
		default:
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// DiffTable summarizes a report; the rows add up to the total entry count.
func DiffTable(rep report.Report, style Style) string {
	rows := [][]string{
		{"Changed", strconv.Itoa(rep.Changed)},
		{"Unchanged", strconv.Itoa(rep.Total - rep.Changed - rep.Unmatched)},
	}
	if rep.Unmatched > 0 {
		rows = append(rows, []string{"Unmatched", strconv.Itoa(rep.Unmatched)})
	}
	return summaryTable{
		title:   "Diff summary",
		headers: []string{"Entries", "Count"},
		aligns:  []columnAlignment{alignLeft, alignRight},
		rows:    rows,
		footer:  []string{"Total", strconv.Itoa(rep.Total)},
	}.render(style)
}
