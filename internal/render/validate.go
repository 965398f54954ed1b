package render

import (
	"io"
	"strconv"

	"srtcheck/internal/integrity"
)

// ValidationOptions controls validation output.
type ValidationOptions struct {
	OriginalPath  string
	CorrectedPath string
	// MaxIssues caps the listed issues. Zero lists all of them.
	MaxIssues int
	Summary   bool
	Style     Style
}

// Validation writes the human readable validation verdict.
func Validation(w io.Writer, res integrity.Result, opts ValidationOptions) error {
	pal := newPalette(opts.Style)
	p := &printer{w: w}

	p.line("Validating: %s", opts.CorrectedPath)
	p.line("Against:    %s", opts.OriginalPath)
	p.blank()

	if res.Passed {
		p.line("%s", pal.ok.Sprint("✅ Validation PASSED"))
		p.line("   - Entry counts match")
		p.line("   - All timestamps preserved")
		p.line("   - All indices preserved")
		return p.err
	}

	p.line("%s", pal.fail.Sprint("❌ Validation FAILED"))
	p.line("   Found %d issue(s):", len(res.Issues))
	p.blank()
	shown := res.Issues
	if opts.MaxIssues > 0 && len(shown) > opts.MaxIssues {
		shown = shown[:opts.MaxIssues]
	}
	for _, issue := range shown {
		p.line("   - %s", issue.Message)
	}
	if rest := len(res.Issues) - len(shown); rest > 0 {
		p.line("   ... and %d more issues", rest)
	}

	if opts.Summary {
		p.blank()
		p.line("%s", IssueTable(res, opts.Style))
	}
	return p.err
}

// IssueTable summarizes issues by kind with a total row.
func IssueTable(res integrity.Result, style Style) string {
	counts := res.Counts()
	kinds := []integrity.IssueKind{
		integrity.IssueCount,
		integrity.IssueIndex,
		integrity.IssueStart,
		integrity.IssueEnd,
		integrity.IssueHeader,
	}
	rows := make([][]string, 0, len(kinds))
	for _, kind := range kinds {
		if counts[kind] == 0 {
			continue
		}
		rows = append(rows, []string{string(kind), strconv.Itoa(counts[kind])})
	}
	return summaryTable{
		title:   "Validation issues",
		headers: []string{"Issue", "Count"},
		aligns:  []columnAlignment{alignLeft, alignRight},
		rows:    rows,
		footer:  []string{"Total", strconv.Itoa(len(res.Issues))},
	}.render(style)
}
