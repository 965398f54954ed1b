package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"srtcheck/internal/integrity"
	"srtcheck/internal/report"
	"srtcheck/internal/srt"
)

func writeSRT(t *testing.T, name, content string) srt.Document {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	doc, err := srt.ParseFile(path)
	if err != nil {
		t.Fatalf("parse %s: %v", name, err)
	}
	return doc
}

func TestBuildDocument(t *testing.T) {
	original := writeSRT(t, "orig.srt", "1\n00:00:01,000 --> 00:00:02,000\nLantern框架\n\n2\n00:00:03,000 --> 00:00:04,000\nok\n")
	corrected := writeSRT(t, "corr.srt", "1\n00:00:01,000 --> 00:00:02,500\nLangChain框架\n\n2\n00:00:03,000 --> 00:00:04,000\nok\n")

	doc := report.Build("Review", original, corrected, report.Options{})
	if _, err := uuid.Parse(doc.ID); err != nil {
		t.Fatalf("invalid report id %q: %v", doc.ID, err)
	}
	if doc.Title != "Review" || doc.GeneratedAt.IsZero() {
		t.Fatalf("unexpected metadata %+v", doc)
	}
	if doc.Original.Path != original.Source.Path || doc.Original.Entries != 2 || len(doc.Original.BLAKE3) != 64 {
		t.Fatalf("unexpected original source %+v", doc.Original)
	}
	if doc.Original.BLAKE3 == doc.Corrected.BLAKE3 {
		t.Fatal("different inputs must have different digests")
	}
	if doc.Validation.Passed || len(doc.Validation.Issues) != 2 {
		t.Fatalf("expected end and header issues, got %+v", doc.Validation.Issues)
	}
	if doc.Validation.Issues[0].Kind != integrity.IssueEnd {
		t.Fatalf("unexpected first issue %+v", doc.Validation.Issues[0])
	}
	if doc.Report.Total != 2 || doc.Report.Changed != 1 {
		t.Fatalf("unexpected report counts %+v", doc.Report)
	}

	again := report.Build("Review", original, corrected, report.Options{})
	if again.ID == doc.ID {
		t.Fatal("expected a fresh id per build")
	}
}
