package srt

import (
	"regexp"
	"strconv"
	"strings"

	"srtcheck/internal/fileutil"
)

var (
	blockSeparatorRe = regexp.MustCompile(`\r?\n(?:[ \t]*\r?\n)+`)
	timingLineRe     = regexp.MustCompile(`^(\d{2}:\d{2}:\d{2},\d{3})\s*-->\s*(\d{2}:\d{2}:\d{2},\d{3})`)
)

// ParseFile reads and parses an SRT file. Only I/O and decoding problems are
// returned as errors.
func ParseFile(path string) (Document, error) {
	in, err := fileutil.ReadText(path)
	if err != nil {
		return Document{}, err
	}
	doc := Parse(in.Text)
	doc.Source = in
	return doc, nil
}

// Parse converts SRT text into a Document. It never fails: malformed blocks
// are recorded in Document.Skipped.
func Parse(content string) Document {
	doc := Document{LineEnding: detectLineEnding(content)}
	for _, outcome := range ParseBlocks(content) {
		switch {
		case outcome.Record != nil:
			doc.Records = append(doc.Records, *outcome.Record)
		case outcome.Skipped != nil:
			doc.Skipped = append(doc.Skipped, *outcome.Skipped)
		}
	}
	return doc
}

// ParseBlocks splits content into blank-line separated blocks and parses each
// one, returning one outcome per non-empty block in file order.
func ParseBlocks(content string) []Outcome {
	content = strings.TrimPrefix(content, "\ufeff")
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}
	eol := detectLineEnding(content)

	blocks := blockSeparatorRe.Split(content, -1)
	outcomes := make([]Outcome, 0, len(blocks))
	for i, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		outcomes = append(outcomes, parseBlock(i+1, block, eol))
	}
	return outcomes
}

func parseBlock(ordinal int, block, eol string) Outcome {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	skip := func(reason SkipReason) Outcome {
		return Outcome{Skipped: &Skipped{Ordinal: ordinal, Reason: reason, FirstLine: strings.TrimSpace(lines[0])}}
	}

	if len(lines) < 2 {
		return skip(SkipTooShort)
	}

	index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return skip(SkipBadIndex)
	}

	header := strings.TrimSpace(lines[1])
	match := timingLineRe.FindStringSubmatch(header)
	if match == nil {
		return skip(SkipBadTiming)
	}

	return Outcome{Record: &Record{
		Index:     index,
		Start:     match[1],
		End:       match[2],
		Text:      strings.Join(lines[2:], eol),
		RawHeader: header,
	}}
}

func detectLineEnding(content string) string {
	if strings.Contains(content, "\r\n") {
		return "\r\n"
	}
	return "\n"
}
