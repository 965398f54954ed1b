package render

import (
	"io"
	"strconv"
	"strings"

	"srtcheck/internal/analysis"
	"srtcheck/internal/textutil"
)

// AnalysisOptions controls analysis output.
type AnalysisOptions struct {
	// Limit caps the listed entries. Zero lists all of them.
	Limit int
	// PreviewWidth truncates entry text to this many terminal columns.
	PreviewWidth int
	Summary      bool
	Style        Style
}

// Analysis writes the flagged entries of res.
func Analysis(w io.Writer, res analysis.Result, opts AnalysisOptions) error {
	pal := newPalette(opts.Style)
	p := &printer{w: w}

	if len(res.Terms) > 0 {
		p.line("Expected terms: %s", strings.Join(res.Terms, ", "))
	}
	p.line("Found %d entries with potential issues:", len(res.Findings))
	p.blank()

	shown := res.Findings
	if opts.Limit > 0 && len(shown) > opts.Limit {
		shown = shown[:opts.Limit]
	}
	for _, finding := range shown {
		p.line("%s", pal.header.Sprintf("[%d] %s", finding.Index, finding.Timing))
		p.line("  Text: %s", textutil.Preview(finding.Text, opts.PreviewWidth))
		for _, m := range finding.Matches {
			p.line("    → '%s' might be '%s' (%s)", m.Pattern, m.Suggestion, m.Description)
		}
		p.blank()
	}
	if rest := len(res.Findings) - len(shown); rest > 0 {
		p.line("... and %d more entries with potential issues", rest)
	}

	if opts.Summary && len(res.Findings) > 0 {
		if len(res.Findings) > len(shown) {
			p.blank()
		}
		p.line("%s", PatternTable(res, opts.Style))
	}
	return p.err
}

// PatternTable counts flagged entries per pattern in first-seen order.
func PatternTable(res analysis.Result, style Style) string {
	var order []string
	counts := make(map[string]int)
	suggestions := make(map[string]string)
	for _, finding := range res.Findings {
		for _, m := range finding.Matches {
			if _, seen := counts[m.Pattern]; !seen {
				order = append(order, m.Pattern)
				suggestions[m.Pattern] = m.Suggestion
			}
			counts[m.Pattern]++
		}
	}
	rows := make([][]string, 0, len(order))
	for _, pattern := range order {
		rows = append(rows, []string{pattern, suggestions[pattern], strconv.Itoa(counts[pattern])})
	}
	return summaryTable{
		title:   "Pattern hits",
		headers: []string{"Pattern", "Suggestion", "Entries"},
		aligns:  []columnAlignment{alignLeft, alignLeft, alignRight},
		rows:    rows,
	}.render(style)
}
