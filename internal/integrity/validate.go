package integrity

import (
	"fmt"
	"log/slog"

	"srtcheck/internal/logging"
	"srtcheck/internal/srt"
)

// IssueKind classifies a structural problem.
type IssueKind string

const (
	IssueCount  IssueKind = "count_mismatch"
	IssueIndex  IssueKind = "index_mismatch"
	IssueStart  IssueKind = "start_changed"
	IssueEnd    IssueKind = "end_changed"
	IssueHeader IssueKind = "header_changed"
)

// Issue is one structural finding. Position is the 1-based entry position,
// zero for file-level issues.
type Issue struct {
	Kind     IssueKind `json:"kind"`
	Position int       `json:"position,omitempty"`
	Message  string    `json:"message"`
}

func (i Issue) String() string {
	return i.Message
}

// Result is the verdict of a validation run.
type Result struct {
	Passed         bool    `json:"passed"`
	OriginalCount  int     `json:"original_count"`
	CorrectedCount int     `json:"corrected_count"`
	Issues         []Issue `json:"issues"`
}

// Messages returns the issue descriptions in order.
func (r Result) Messages() []string {
	out := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		out[i] = issue.Message
	}
	return out
}

// Counts tallies issues by kind.
func (r Result) Counts() map[IssueKind]int {
	counts := make(map[IssueKind]int)
	for _, issue := range r.Issues {
		counts[issue.Kind]++
	}
	return counts
}

// Validator compares record sequences.
type Validator struct {
	logger *slog.Logger
}

// NewValidator returns a validator that logs run summaries to logger. A nil
// logger discards output.
func NewValidator(logger *slog.Logger) *Validator {
	return &Validator{logger: logging.NewComponentLogger(logger, "integrity")}
}

// Validate compares two record sequences position by position.
func Validate(original, corrected []srt.Record) Result {
	return NewValidator(nil).Validate(original, corrected)
}

// Validate compares original and corrected position by position. When the
// sequences differ in length a single count issue is reported and no
// per-entry comparison happens.
func (v *Validator) Validate(original, corrected []srt.Record) Result {
	result := Result{OriginalCount: len(original), CorrectedCount: len(corrected)}

	if len(original) != len(corrected) {
		result.Issues = append(result.Issues, Issue{
			Kind:    IssueCount,
			Message: fmt.Sprintf("Entry count mismatch: original=%d, corrected=%d", len(original), len(corrected)),
		})
		v.logResult(result)
		return result
	}

	for i := range original {
		result.Issues = append(result.Issues, comparePair(i+1, original[i], corrected[i])...)
	}
	result.Passed = len(result.Issues) == 0
	v.logResult(result)
	return result
}

func comparePair(position int, orig, corr srt.Record) []Issue {
	var issues []Issue
	if orig.Index != corr.Index {
		issues = append(issues, Issue{
			Kind:     IssueIndex,
			Position: position,
			Message:  fmt.Sprintf("Entry %d: Index mismatch (orig=%d, corr=%d)", position, orig.Index, corr.Index),
		})
	}
	if orig.Start != corr.Start {
		issues = append(issues, Issue{
			Kind:     IssueStart,
			Position: position,
			Message:  fmt.Sprintf("Entry %d: Start time changed from '%s' to '%s'", orig.Index, orig.Start, corr.Start),
		})
	}
	if orig.End != corr.End {
		issues = append(issues, Issue{
			Kind:     IssueEnd,
			Position: position,
			Message:  fmt.Sprintf("Entry %d: End time changed from '%s' to '%s'", orig.Index, orig.End, corr.End),
		})
	}
	if orig.RawHeader != corr.RawHeader {
		issues = append(issues, Issue{
			Kind:     IssueHeader,
			Position: position,
			Message:  fmt.Sprintf("Entry %d: Timestamp line formatting changed", orig.Index),
		})
	}
	return issues
}

func (v *Validator) logResult(result Result) {
	if result.Passed {
		v.logger.Debug("structural validation passed",
			logging.Int("entries", result.OriginalCount),
			logging.String(logging.FieldEventType, "validation_passed"),
		)
		return
	}
	v.logger.Debug("structural validation failed",
		logging.Int("original_entries", result.OriginalCount),
		logging.Int("corrected_entries", result.CorrectedCount),
		logging.Int("issue_count", len(result.Issues)),
		logging.Bool("count_mismatch", result.OriginalCount != result.CorrectedCount),
		logging.Any("issue_kinds", result.Counts()),
		logging.String(logging.FieldEventType, "validation_failed"),
	)
}
