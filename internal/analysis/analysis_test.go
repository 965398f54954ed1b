package analysis_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"srtcheck/internal/analysis"
	"srtcheck/internal/config"
	"srtcheck/internal/failure"
	"srtcheck/internal/srt"
)

func patternsOf(f analysis.Finding) []string {
	out := make([]string, len(f.Matches))
	for i, m := range f.Matches {
		out[i] = m.Pattern
	}
	return out
}

func TestDefaultTableFindsKnownErrors(t *testing.T) {
	records := []srt.Record{
		{Index: 1, Start: "00:00:01,000", End: "00:00:02,000", Text: "我们用Lantern框架"},
		{Index: 2, Start: "00:00:03,000", End: "00:00:04,000", Text: "nothing to see here"},
		{Index: 3, Start: "00:00:05,000", End: "00:00:06,000", Text: "open EI and the 绘画 history"},
		{Index: 4, Start: "00:00:07,000", End: "00:00:08,000", Text: "user underscore id"},
	}

	result := analysis.New(analysis.DefaultTable(), nil).Analyze(records, []string{" LangChain", "", "OpenAI "})
	if result.Entries != 4 {
		t.Fatalf("entries = %d", result.Entries)
	}
	if !reflect.DeepEqual(result.Terms, []string{"LangChain", "OpenAI"}) {
		t.Fatalf("unexpected terms %q", result.Terms)
	}
	if len(result.Findings) != 3 {
		t.Fatalf("expected 3 findings, got %+v", result.Findings)
	}

	first := result.Findings[0]
	if first.Index != 1 || first.Timing != "00:00:01,000 --> 00:00:02,000" {
		t.Fatalf("unexpected first finding %+v", first)
	}
	if got := patternsOf(first); !reflect.DeepEqual(got, []string{"[Ll]antern"}) {
		t.Fatalf("unexpected patterns %q", got)
	}
	if first.Matches[0].Suggestion != "LangChain" {
		t.Fatalf("unexpected suggestion %q", first.Matches[0].Suggestion)
	}

	// Table order is preserved: the literal entry precedes the regex one.
	if got := patternsOf(result.Findings[1]); !reflect.DeepEqual(got, []string{"绘画", `open\s*EI`}) {
		t.Fatalf("unexpected order %q", got)
	}

	last := result.Findings[2]
	if len(last.Matches) != 1 || last.Matches[0].Pattern != "underscore" || last.Matches[0].Suggestion != "_" {
		t.Fatalf("expected underscore heuristic, got %+v", last.Matches)
	}
}

func TestTermsDoNotAffectMatching(t *testing.T) {
	records := []srt.Record{{Index: 1, Text: "LangChain works"}}
	a := analysis.New(analysis.DefaultTable(), nil)
	without := a.Analyze(records, nil)
	with := a.Analyze(records, []string{"LangChain"})
	if !reflect.DeepEqual(without.Findings, with.Findings) {
		t.Fatalf("terms changed findings: %+v vs %+v", without.Findings, with.Findings)
	}
}

func TestCheckpointNotFollowedBy(t *testing.T) {
	table := analysis.DefaultTable()
	var checkpoint analysis.Pattern
	for _, p := range table {
		if p.Spec.NotFollowedBy != "" {
			checkpoint = p
		}
	}
	if checkpoint.Spec.Name != `check\s*point(?!er)` {
		t.Fatalf("unexpected checkpoint pattern %+v", checkpoint.Spec)
	}
	tests := map[string]bool{
		"add a check point here":        true,
		"checkpoint":                    true,
		"use the checkpointer":          false,
		"checkpointer then checkpoint!": true,
	}
	for text, want := range tests {
		if got := checkpoint.Matches(text); got != want {
			t.Errorf("Matches(%q) = %v, want %v", text, got, want)
		}
	}
}

func TestLiteralNotFollowedBy(t *testing.T) {
	p, err := analysis.Compile(config.PatternSpec{Kind: "literal", Expr: "本科", NotFollowedBy: "生"})
	if err != nil {
		t.Fatal(err)
	}
	if p.Matches("本科生") {
		t.Fatal("expected 本科生 to be excluded")
	}
	if !p.Matches("本科生和本科") {
		t.Fatal("expected trailing 本科 to match")
	}
}

func TestLoadSpecsFormats(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"table.toml": "[[patterns]]\nkind = \"regex\"\nexpr = 'lang\\s*smith'\nsuggestion = \"LangSmith\"\ndescription = \"LangSmith platform\"\n",
		"table.json": `{"patterns": [{"kind": "regex", "expr": "lang\\s*smith", "suggestion": "LangSmith", "description": "LangSmith platform"}]}`,
		"table.yaml": "patterns:\n  - kind: regex\n    expr: 'lang\\s*smith'\n    suggestion: LangSmith\n    description: LangSmith platform\n",
	}
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
			specs, err := analysis.LoadSpecs(path)
			if err != nil {
				t.Fatalf("LoadSpecs: %v", err)
			}
			if len(specs) != 1 {
				t.Fatalf("expected 1 spec, got %d", len(specs))
			}
			if specs[0].Expr != `lang\s*smith` || specs[0].Suggestion != "LangSmith" {
				t.Fatalf("unexpected spec %+v", specs[0])
			}
			table, err := analysis.NewTable(specs)
			if err != nil {
				t.Fatal(err)
			}
			if !table[0].Matches("try lang smith today") {
				t.Fatal("expected loaded pattern to match")
			}
		})
	}
}

func TestLoadSpecsErrors(t *testing.T) {
	dir := t.TempDir()
	unsupported := filepath.Join(dir, "table.ini")
	if err := os.WriteFile(unsupported, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := analysis.LoadSpecs(unsupported); !errors.Is(err, failure.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if _, err := analysis.LoadSpecs(filepath.Join(dir, "missing.yaml")); !errors.Is(err, failure.ErrConfiguration) {
		t.Fatalf("expected configuration error for missing file, got %v", err)
	}
	unknown := filepath.Join(dir, "unknown.yaml")
	if err := os.WriteFile(unknown, []byte("patterns:\n  - exprr: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := analysis.LoadSpecs(unknown); err == nil {
		t.Fatal("expected unknown field to be rejected")
	}
}

func TestTableFromConfigOrdering(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extra.yaml")
	if err := os.WriteFile(path, []byte("patterns:\n  - kind: literal\n    expr: foo\n    suggestion: bar\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Analyze.PatternsFile = path
	cfg.Analyze.Patterns = []config.PatternSpec{{Kind: "literal", Expr: "baz", Suggestion: "qux"}}

	table, err := analysis.TableFromConfig(&cfg)
	if err != nil {
		t.Fatalf("TableFromConfig: %v", err)
	}
	defaults := len(analysis.DefaultSpecs())
	if len(table) != defaults+2 {
		t.Fatalf("expected %d patterns, got %d", defaults+2, len(table))
	}
	if table[defaults].Spec.Expr != "foo" || table[defaults+1].Spec.Expr != "baz" {
		t.Fatalf("unexpected tail order: %+v %+v", table[defaults].Spec, table[defaults+1].Spec)
	}

	cfg.Analyze.DisableDefaultPatterns = true
	table, err = analysis.TableFromConfig(&cfg)
	if err != nil {
		t.Fatalf("TableFromConfig: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("expected only custom patterns, got %d", len(table))
	}
}

func TestNewTableRejectsInvalidPattern(t *testing.T) {
	_, err := analysis.NewTable([]config.PatternSpec{{Kind: "regex", Expr: "("}})
	if !errors.Is(err, failure.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestParseTerms(t *testing.T) {
	if got := analysis.ParseTerms(""); got != nil {
		t.Fatalf("expected nil, got %q", got)
	}
	if got := analysis.ParseTerms("LangChain, OpenAI,,Agent "); !reflect.DeepEqual(got, []string{"LangChain", "OpenAI", "Agent"}) {
		t.Fatalf("unexpected terms %q", got)
	}
}
