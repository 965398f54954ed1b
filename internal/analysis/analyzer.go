package analysis

import (
	"log/slog"
	"strings"

	"srtcheck/internal/logging"
	"srtcheck/internal/srt"
)

const underscoreWord = "underscore"

// Match is one pattern hit within an entry.
type Match struct {
	Pattern     string `json:"pattern"`
	Suggestion  string `json:"suggestion"`
	Description string `json:"description"`
}

// Finding lists the matches for one entry.
type Finding struct {
	Index   int     `json:"index"`
	Timing  string  `json:"timestamp"`
	Text    string  `json:"text"`
	Matches []Match `json:"issues"`
}

// Result is the outcome of analyzing one file.
type Result struct {
	Entries  int       `json:"entries"`
	Terms    []string  `json:"terms,omitempty"`
	Findings []Finding `json:"findings"`
}

// Analyzer evaluates a pattern table against subtitle entries.
type Analyzer struct {
	table  Table
	logger *slog.Logger
}

// New returns an analyzer for table. A nil logger discards diagnostics.
func New(table Table, logger *slog.Logger) *Analyzer {
	return &Analyzer{table: table, logger: logging.NewComponentLogger(logger, "analysis")}
}

// Analyze reports, per entry, every table pattern found in its text followed
// by the underscore heuristic. Entries without matches are omitted. Terms are
// carried into the result for the presentation layer; they do not influence
// matching.
func (a *Analyzer) Analyze(records []srt.Record, terms []string) Result {
	result := Result{Entries: len(records), Terms: cleanTerms(terms), Findings: []Finding{}}
	for _, rec := range records {
		matches := a.scan(rec.Text)
		if len(matches) == 0 {
			continue
		}
		result.Findings = append(result.Findings, Finding{
			Index:   rec.Index,
			Timing:  rec.Timing(),
			Text:    rec.Text,
			Matches: matches,
		})
	}
	a.logger.Debug("analysis complete",
		logging.Int("entries", len(records)),
		logging.Int("patterns", len(a.table)),
		logging.Int("flagged_entries", len(result.Findings)),
		logging.Any("terms", result.Terms),
		logging.String(logging.FieldEventType, "analysis_complete"),
	)
	return result
}

func (a *Analyzer) scan(text string) []Match {
	var matches []Match
	for _, p := range a.table {
		if p.Matches(text) {
			matches = append(matches, Match{
				Pattern:     p.Spec.Name,
				Suggestion:  p.Spec.Suggestion,
				Description: p.Spec.Description,
			})
		}
	}
	if strings.Contains(strings.ToLower(text), underscoreWord) {
		matches = append(matches, Match{
			Pattern:     underscoreWord,
			Suggestion:  "_",
			Description: "Likely a variable name with underscore",
		})
	}
	return matches
}

// ParseTerms splits a comma separated term list, dropping blanks.
func ParseTerms(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return cleanTerms(strings.Split(raw, ","))
}

func cleanTerms(terms []string) []string {
	var out []string
	for _, term := range terms {
		if term = strings.TrimSpace(term); term != "" {
			out = append(out, term)
		}
	}
	return out
}
