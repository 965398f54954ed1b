package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeLogging()
	if err := c.normalizeLogFile(); err != nil {
		return err
	}
	c.normalizeDiff()
	if err := c.normalizeAnalyze(); err != nil {
		return err
	}
	return c.normalizeReport()
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeLogFile() error {
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}

func (c *Config) normalizeDiff() {
	if c.Diff.Workers == 0 {
		c.Diff.Workers = defaultDiffWorkers
	}
}

func (c *Config) normalizeAnalyze() error {
	if c.Analyze.PreviewWidth == 0 {
		c.Analyze.PreviewWidth = defaultPreviewWidth
	}
	var err error
	if c.Analyze.PatternsFile, err = expandPath(strings.TrimSpace(c.Analyze.PatternsFile)); err != nil {
		return fmt.Errorf("analyze.patterns_file: %w", err)
	}
	for i := range c.Analyze.Patterns {
		NormalizePattern(&c.Analyze.Patterns[i])
	}
	return nil
}

func (c *Config) normalizeReport() error {
	c.Report.Title = strings.TrimSpace(c.Report.Title)
	if c.Report.Title == "" {
		c.Report.Title = defaultReportTitle
	}
	var err error
	if c.Report.Dir, err = expandPath(strings.TrimSpace(c.Report.Dir)); err != nil {
		return fmt.Errorf("report.dir: %w", err)
	}
	return nil
}

// NormalizePattern trims a pattern spec, lowercases its kind, and defaults the
// kind to regex and the name to the expression.
func NormalizePattern(p *PatternSpec) {
	p.Kind = strings.ToLower(strings.TrimSpace(p.Kind))
	if p.Kind == "" {
		p.Kind = PatternKindRegex
	}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		p.Name = p.Expr
	}
	p.Suggestion = strings.TrimSpace(p.Suggestion)
	p.Description = strings.TrimSpace(p.Description)
}
