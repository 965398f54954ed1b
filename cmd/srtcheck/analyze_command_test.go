package main

import (
	"encoding/json"
	"strings"
	"testing"

	"srtcheck/internal/analysis"
)

func TestAnalyzeDefaultTable(t *testing.T) {
	env := setupCLITestEnv(t)
	input := env.write(t, "orig.srt", originalSRT)

	out, _, err := runCLI(t, "analyze", input, "--terms", "LangChain,OpenAI")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	requireContains(t, out, "Expected terms: LangChain, OpenAI\n")
	requireContains(t, out, "Found 2 entries with potential issues:\n\n")
	requireContains(t, out, "[1] 00:00:01,000 --> 00:00:02,000\n  Text: 我们用Lantern框架\n")
	requireContains(t, out, "    → '[Ll]antern' might be 'LangChain' (LangChain framework)\n")
	requireContains(t, out, "    → 'open\\s*EI' might be 'OpenAI' (OpenAI)\n")
}

func TestAnalyzeCustomPatternsOnly(t *testing.T) {
	env := setupCLITestEnv(t)
	input := env.write(t, "orig.srt", originalSRT)
	patterns := env.write(t, "patterns.yaml", "patterns:\n  - kind: literal\n    expr: change\n    suggestion: edit\n    description: house style\n")

	out, _, err := runCLI(t, "analyze", input, "--patterns", patterns, "--no-defaults", "--json")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	var res analysis.Result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if res.Entries != 3 || len(res.Findings) != 1 || res.Findings[0].Index != 3 {
		t.Fatalf("unexpected result %+v", res)
	}
	if m := res.Findings[0].Matches[0]; m.Pattern != "change" || m.Suggestion != "edit" {
		t.Fatalf("unexpected match %+v", m)
	}
}

func TestAnalyzeInvalidPatternsFile(t *testing.T) {
	env := setupCLITestEnv(t)
	input := env.write(t, "orig.srt", originalSRT)
	patterns := env.write(t, "patterns.json", `{"patterns": [{"kind": "regex", "expr": "("}]}`)

	if _, _, err := runCLI(t, "analyze", input, "--patterns", patterns); err == nil {
		t.Fatal("expected invalid pattern to fail")
	}
}

func TestAnalyzeLogsSkippedBlocks(t *testing.T) {
	env := setupCLITestEnv(t)
	input := env.write(t, "broken.srt", originalSRT+"\nx\n00:00:07,000 --> 00:00:08,000\nbad index\n")

	out, errOut, err := runCLI(t, "--log-format", "json", "--log-level", "debug", "analyze", input)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	requireContains(t, out, "Found 2 entries")

	var sawSkip, sawRunID bool
	for _, line := range strings.Split(strings.TrimSpace(errOut), "\n") {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("log line is not JSON: %q", line)
		}
		if entry["event_type"] == "subtitle_block_skipped" && entry["reason"] == "bad_index" {
			sawSkip = true
		}
		if id, ok := entry["run_id"].(string); ok && id != "" {
			sawRunID = true
		}
	}
	if !sawSkip || !sawRunID {
		t.Fatalf("expected skip warning with run id in logs:\n%s", errOut)
	}
}
