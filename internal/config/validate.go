package config

import (
	"errors"
	"fmt"
	"regexp"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateLimits(); err != nil {
		return err
	}
	if err := c.validateDiff(); err != nil {
		return err
	}
	for i, p := range c.Analyze.Patterns {
		if err := ValidatePattern(p); err != nil {
			return fmt.Errorf("analyze.patterns[%d]: %w", i, err)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateLimits() error {
	if c.Validation.MaxIssues < 0 {
		return errors.New("validate.max_issues must be zero (unlimited) or positive")
	}
	if c.Diff.Limit < 0 {
		return errors.New("diff.limit must be zero (unlimited) or positive")
	}
	if c.Analyze.Limit < 0 {
		return errors.New("analyze.limit must be zero (unlimited) or positive")
	}
	if c.Analyze.PreviewWidth < 0 {
		return errors.New("analyze.preview_width must be zero (unlimited) or positive")
	}
	return nil
}

func (c *Config) validateDiff() error {
	if c.Diff.Workers < 1 || c.Diff.Workers > maxDiffWorkers {
		return fmt.Errorf("diff.workers must be between 1 and %d", maxDiffWorkers)
	}
	return nil
}

// ValidatePattern checks that a normalized pattern spec can be compiled.
func ValidatePattern(p PatternSpec) error {
	if p.Expr == "" {
		return errors.New("expr must be set")
	}
	switch p.Kind {
	case PatternKindLiteral:
	case PatternKindRegex:
		if _, err := regexp.Compile(p.Expr); err != nil {
			return fmt.Errorf("invalid regex %q: %w", p.Expr, err)
		}
	default:
		return fmt.Errorf("kind must be literal or regex, got %q", p.Kind)
	}
	return nil
}
