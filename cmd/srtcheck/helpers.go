package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"srtcheck/internal/config"
	"srtcheck/internal/failure"
	"srtcheck/internal/fileutil"
	"srtcheck/internal/logging"
	"srtcheck/internal/srt"
)

// loadSubtitle parses path and logs blocks that could not be parsed.
func loadSubtitle(logger *slog.Logger, path string) (srt.Document, error) {
	doc, err := srt.ParseFile(path)
	if err != nil {
		return srt.Document{}, err
	}
	logger.Info("parsed subtitle file",
		logging.String(logging.FieldPath, path),
		logging.Int("entries", len(doc.Records)),
		logging.Int("skipped", len(doc.Skipped)),
		logging.String("blake3", doc.Source.BLAKE3),
		logging.String(logging.FieldEventType, "subtitle_parsed"),
	)
	for _, skipped := range doc.Skipped {
		logging.WarnWithContext(logger, "skipped malformed block", "subtitle_block_skipped",
			logging.String(logging.FieldPath, path),
			logging.Int("block", skipped.Ordinal),
			logging.String("reason", string(skipped.Reason)),
			logging.String("first_line", skipped.FirstLine),
			logging.String(logging.FieldErrorHint, "check the block's index and timing lines"),
		)
	}
	return doc, nil
}

func loadPair(logger *slog.Logger, originalPath, correctedPath string) (srt.Document, srt.Document, error) {
	original, err := loadSubtitle(logger, originalPath)
	if err != nil {
		return srt.Document{}, srt.Document{}, err
	}
	corrected, err := loadSubtitle(logger, correctedPath)
	if err != nil {
		return srt.Document{}, srt.Document{}, err
	}
	return original, corrected, nil
}

// writeReportFile renders into memory and writes the result atomically to the
// resolved report path, announcing the destination on notice.
func writeReportFile(cfg *config.Config, logger *slog.Logger, notice io.Writer, name, kind string, render func(io.Writer) error) error {
	target, err := cfg.ReportPath(name)
	if err != nil {
		return failure.Wrap(failure.ErrOutput, "cli", "resolve report path", name, err)
	}
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return fmt.Errorf("render %s report: %w", kind, err)
	}
	if err := fileutil.WriteFileAtomic(target, buf.Bytes(), 0o644); err != nil {
		return err
	}
	logger.Info("report written",
		logging.String(logging.FieldPath, target),
		logging.String("kind", kind),
		logging.Int("bytes", buf.Len()),
		logging.String(logging.FieldEventType, "report_written"),
	)
	fmt.Fprintf(notice, "Wrote %s report to %s\n", kind, target)
	return nil
}
