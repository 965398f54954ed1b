package report

import (
	"time"

	"github.com/google/uuid"

	"srtcheck/internal/integrity"
	"srtcheck/internal/srt"
)

// Source describes one input file of a report.
type Source struct {
	Path    string `json:"path"`
	Size    int64  `json:"size"`
	BLAKE3  string `json:"blake3"`
	Entries int    `json:"entries"`
	Skipped int    `json:"skipped"`
}

// SourceOf summarizes a parsed document.
func SourceOf(doc srt.Document) Source {
	return Source{
		Path:    doc.Source.Path,
		Size:    doc.Source.Size,
		BLAKE3:  doc.Source.BLAKE3,
		Entries: len(doc.Records),
		Skipped: len(doc.Skipped),
	}
}

// Document is a report together with the metadata of the run that produced
// it.
type Document struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	GeneratedAt time.Time        `json:"generated_at"`
	Original    Source           `json:"original"`
	Corrected   Source           `json:"corrected"`
	Validation  integrity.Result `json:"validation"`
	Report      Report           `json:"report"`
}

// Build validates and diffs two parsed documents and stamps the result with a
// fresh report ID.
func Build(title string, original, corrected srt.Document, opts Options) Document {
	validator := integrity.NewValidator(opts.Logger)
	return Document{
		ID:          uuid.NewString(),
		Title:       title,
		GeneratedAt: time.Now().UTC(),
		Original:    SourceOf(original),
		Corrected:   SourceOf(corrected),
		Validation:  validator.Validate(original.Records, corrected.Records),
		Report:      Assemble(original.Records, corrected.Records, opts),
	}
}
