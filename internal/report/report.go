package report

import (
	"log/slog"
	"sync"
	"time"

	"srtcheck/internal/align"
	"srtcheck/internal/logging"
	"srtcheck/internal/srt"
)

// Side names the input an unmatched entry is missing from.
type Side string

const (
	SideOriginal  Side = "original"
	SideCorrected Side = "corrected"
)

// Options controls report assembly.
type Options struct {
	// IncludeUnchanged lists every entry instead of changed ones only.
	IncludeUnchanged bool
	// Workers bounds concurrent alignment. Values below 1 mean 1.
	Workers int
	Logger  *slog.Logger
}

// Entry is one paired subtitle entry.
type Entry struct {
	Index      int             `json:"index"`
	Timing     string          `json:"timestamp"`
	Original   string          `json:"original"`
	Corrected  string          `json:"corrected"`
	Changed    bool            `json:"changed"`
	Unmatched  Side            `json:"unmatched,omitempty"`
	Similarity float64         `json:"similarity,omitempty"`
	Segments   []align.Segment `json:"segments,omitempty"`

	Alignment *align.Alignment `json:"-"`
}

// Report is the assembled diff.
type Report struct {
	Total     int     `json:"total"`
	Changed   int     `json:"changed"`
	Unmatched int     `json:"unmatched"`
	Entries   []Entry `json:"entries"`
}

type pair struct {
	orig *srt.Record
	corr *srt.Record
}

// Assemble pairs original and corrected records by index and aligns the text
// of every changed pair. Duplicate indices pair in order of appearance.
// Entries missing a counterpart are kept with empty text on the missing side
// and are never counted as changed.
func Assemble(original, corrected []srt.Record, opts Options) Report {
	logger := logging.NewComponentLogger(opts.Logger, "report")
	started := time.Now()
	pairs := pairByIndex(original, corrected)

	entries := make([]Entry, len(pairs))
	var changed []int
	unmatched := 0
	for i, p := range pairs {
		entries[i] = newEntry(p)
		if entries[i].Changed {
			changed = append(changed, i)
		}
		if entries[i].Unmatched != "" {
			unmatched++
		}
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	alignAll(entries, changed, workers)

	rep := Report{Total: len(entries), Changed: len(changed), Unmatched: unmatched, Entries: entries}
	if !opts.IncludeUnchanged {
		rep.Entries = make([]Entry, 0, len(changed))
		for _, i := range changed {
			rep.Entries = append(rep.Entries, entries[i])
		}
	}

	logger.Debug("report assembled",
		logging.Int("total", rep.Total),
		logging.Int("changed", rep.Changed),
		logging.Int("unmatched", rep.Unmatched),
		logging.Int("workers", workers),
		logging.Bool("include_unchanged", opts.IncludeUnchanged),
		logging.Float64("mean_similarity", meanSimilarity(entries, changed)),
		logging.Duration("elapsed", time.Since(started)),
		logging.String(logging.FieldEventType, "report_assembled"),
	)
	return rep
}

func pairByIndex(original, corrected []srt.Record) []pair {
	queues := make(map[int][]int, len(corrected))
	for i, rec := range corrected {
		queues[rec.Index] = append(queues[rec.Index], i)
	}
	used := make([]bool, len(corrected))

	pairs := make([]pair, 0, len(original))
	for i := range original {
		p := pair{orig: &original[i]}
		if q := queues[original[i].Index]; len(q) > 0 {
			p.corr = &corrected[q[0]]
			used[q[0]] = true
			queues[original[i].Index] = q[1:]
		}
		pairs = append(pairs, p)
	}
	for i := range corrected {
		if !used[i] {
			pairs = append(pairs, pair{corr: &corrected[i]})
		}
	}
	return pairs
}

func newEntry(p pair) Entry {
	switch {
	case p.corr == nil:
		return Entry{Index: p.orig.Index, Timing: p.orig.Timing(), Original: p.orig.Text, Unmatched: SideCorrected}
	case p.orig == nil:
		return Entry{Index: p.corr.Index, Timing: p.corr.Timing(), Corrected: p.corr.Text, Unmatched: SideOriginal}
	}
	return Entry{
		Index:     p.orig.Index,
		Timing:    p.orig.Timing(),
		Original:  p.orig.Text,
		Corrected: p.corr.Text,
		Changed:   p.orig.Text != p.corr.Text,
	}
}

// alignAll fills the alignment of entries[i] for each i in changed. Every
// goroutine writes only its own slot.
func alignAll(entries []Entry, changed []int, workers int) {
	if workers == 1 || len(changed) < 2 {
		for _, i := range changed {
			fill(&entries[i])
		}
		return
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for _, i := range changed {
		wg.Add(1)
		go func(e *Entry) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			fill(e)
		}(&entries[i])
	}
	wg.Wait()
}

func fill(e *Entry) {
	a := align.Texts(e.Original, e.Corrected)
	e.Alignment = &a
	e.Similarity = a.Ratio()
	e.Segments = a.Segments()
}

// meanSimilarity averages the similarity of the changed entries. A report
// without changes is fully similar.
func meanSimilarity(entries []Entry, changed []int) float64 {
	if len(changed) == 0 {
		return 1
	}
	var sum float64
	for _, i := range changed {
		sum += entries[i].Similarity
	}
	return sum / float64(len(changed))
}
