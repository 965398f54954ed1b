package srt_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"srtcheck/internal/failure"
	"srtcheck/internal/srt"
)

const sample = `1
00:05:46,345 --> 00:05:48,514
TACTICAL.

2
00:06:06,282 --> 00:06:07,992
VISUAL.
Second line

3
00:06:13,330 --> 00:06:15,833
Lantern框架
`

func TestParseRecords(t *testing.T) {
	doc := srt.Parse(sample)
	if len(doc.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(doc.Records))
	}
	if len(doc.Skipped) != 0 {
		t.Fatalf("expected no skipped blocks, got %+v", doc.Skipped)
	}

	first := doc.Records[0]
	if first.Index != 1 || first.Start != "00:05:46,345" || first.End != "00:05:48,514" {
		t.Fatalf("unexpected first record: %+v", first)
	}
	if first.RawHeader != "00:05:46,345 --> 00:05:48,514" {
		t.Fatalf("unexpected raw header %q", first.RawHeader)
	}
	if doc.Records[1].Text != "VISUAL.\nSecond line" {
		t.Fatalf("expected multi-line text to be preserved, got %q", doc.Records[1].Text)
	}
	if doc.Records[2].Text != "Lantern框架" {
		t.Fatalf("unexpected text %q", doc.Records[2].Text)
	}
	if got := first.Timing(); got != "00:05:46,345 --> 00:05:48,514" {
		t.Fatalf("Timing() = %q", got)
	}
}

func TestParseSkipsMalformedBlocks(t *testing.T) {
	content := "x\n00:00:01,000 --> 00:00:02,000\nbad index\n\n" +
		"2\n00:00:03,000 -> 00:00:04,000\nbad arrow\n\n" +
		"3\n00:00:05,000 --> 00:00:06,000\nkept\n\n" +
		"stray trailing line\n"

	outcomes := srt.ParseBlocks(content)
	if len(outcomes) != 4 {
		t.Fatalf("expected 4 outcomes, got %d", len(outcomes))
	}
	wantReasons := []srt.SkipReason{srt.SkipBadIndex, srt.SkipBadTiming, "", srt.SkipTooShort}
	for i, want := range wantReasons {
		got := outcomes[i]
		if want == "" {
			if got.Record == nil || got.Skipped != nil {
				t.Fatalf("outcome %d: expected record, got %+v", i, got)
			}
			continue
		}
		if got.Skipped == nil || got.Record != nil {
			t.Fatalf("outcome %d: expected skip, got %+v", i, got)
		}
		if got.Skipped.Reason != want {
			t.Errorf("outcome %d: reason = %s, want %s", i, got.Skipped.Reason, want)
		}
		if got.Skipped.Ordinal != i+1 {
			t.Errorf("outcome %d: ordinal = %d", i, got.Skipped.Ordinal)
		}
	}

	doc := srt.Parse(content)
	if len(doc.Records) != 1 || doc.Records[0].Index != 3 {
		t.Fatalf("unexpected records: %+v", doc.Records)
	}
	if len(doc.Skipped) != 3 {
		t.Fatalf("expected 3 skipped blocks, got %d", len(doc.Skipped))
	}
	if doc.Skipped[2].FirstLine != "stray trailing line" {
		t.Fatalf("unexpected first line %q", doc.Skipped[2].FirstLine)
	}
}

func TestParseKeepsArrowSpacingInRawHeader(t *testing.T) {
	doc := srt.Parse("1\n  00:00:01,000-->00:00:02,000  \nhi\n")
	if len(doc.Records) != 1 {
		t.Fatalf("expected one record, got %d", len(doc.Records))
	}
	rec := doc.Records[0]
	if rec.RawHeader != "00:00:01,000-->00:00:02,000" {
		t.Fatalf("unexpected raw header %q", rec.RawHeader)
	}
	if rec.Start != "00:00:01,000" || rec.End != "00:00:02,000" {
		t.Fatalf("unexpected timestamps %q %q", rec.Start, rec.End)
	}
}

func TestParseHandlesCRLFAndWhitespaceSeparators(t *testing.T) {
	content := "1\r\n00:00:01,000 --> 00:00:02,000\r\nline one\r\nline two\r\n \r\n\r\n2\r\n00:00:03,000 --> 00:00:04,000\r\n\r\n"
	doc := srt.Parse(content)
	if doc.LineEnding != "\r\n" {
		t.Fatalf("expected CRLF line ending, got %q", doc.LineEnding)
	}
	if len(doc.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(doc.Records))
	}
	if doc.Records[0].Text != "line one\r\nline two" {
		t.Fatalf("unexpected text %q", doc.Records[0].Text)
	}
	if doc.Records[1].Text != "" {
		t.Fatalf("expected empty text, got %q", doc.Records[1].Text)
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, content := range []string{"", "   \n\n  ", "\ufeff"} {
		doc := srt.Parse(content)
		if len(doc.Records) != 0 || len(doc.Skipped) != 0 {
			t.Fatalf("expected empty document for %q, got %+v", content, doc)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	doc := srt.Parse(sample)
	formatted := doc.Format()
	if formatted != sample {
		t.Fatalf("round trip mismatch:\n%q\n%q", formatted, sample)
	}
	again := srt.Parse(formatted)
	if len(again.Records) != len(doc.Records) {
		t.Fatalf("record count changed after round trip")
	}
	for i := range doc.Records {
		if again.Records[i] != doc.Records[i] {
			t.Fatalf("record %d changed: %+v vs %+v", i, again.Records[i], doc.Records[i])
		}
	}
}

func TestBlockReconstructsIndexHeaderAndText(t *testing.T) {
	blocks := strings.Split(strings.TrimSpace(sample), "\n\n")
	doc := srt.Parse(sample)
	for i, rec := range doc.Records {
		if got := rec.Block("\n"); got != blocks[i] {
			t.Errorf("block %d: got %q want %q", i, got, blocks[i])
		}
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.srt")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatalf("write test file: %v", err)
	}
	doc, err := srt.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(doc.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(doc.Records))
	}
	if doc.Source.Path != path || doc.Source.Size != int64(len(sample)) || len(doc.Source.BLAKE3) != 64 {
		t.Fatalf("unexpected source %+v", doc.Source)
	}

	_, err = srt.ParseFile(filepath.Join(t.TempDir(), "missing.srt"))
	if !errors.Is(err, failure.ErrInput) {
		t.Fatalf("expected input error for missing file, got %v", err)
	}
}
