package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"srtcheck/internal/config"
	"srtcheck/internal/failure"
)

// Pattern is a compiled table entry.
type Pattern struct {
	Spec config.PatternSpec
	re   *regexp.Regexp
}

// Compile normalizes and compiles a pattern spec.
func Compile(spec config.PatternSpec) (Pattern, error) {
	config.NormalizePattern(&spec)
	if err := config.ValidatePattern(spec); err != nil {
		return Pattern{}, err
	}
	p := Pattern{Spec: spec}
	if spec.Kind == config.PatternKindRegex {
		re, err := regexp.Compile(spec.Expr)
		if err != nil {
			return Pattern{}, err
		}
		p.re = re
	}
	return p, nil
}

// Matches reports whether text contains the pattern.
func (p Pattern) Matches(text string) bool {
	if p.re == nil {
		return p.literalMatches(text)
	}
	if p.Spec.NotFollowedBy == "" {
		return p.re.MatchString(text)
	}
	for _, loc := range p.re.FindAllStringIndex(text, -1) {
		if !strings.HasPrefix(text[loc[1]:], p.Spec.NotFollowedBy) {
			return true
		}
	}
	return false
}

func (p Pattern) literalMatches(text string) bool {
	if p.Spec.NotFollowedBy == "" {
		return strings.Contains(text, p.Spec.Expr)
	}
	for offset := 0; offset <= len(text); {
		i := strings.Index(text[offset:], p.Spec.Expr)
		if i < 0 {
			return false
		}
		end := offset + i + len(p.Spec.Expr)
		if !strings.HasPrefix(text[end:], p.Spec.NotFollowedBy) {
			return true
		}
		offset += i + 1
	}
	return false
}

// Table is an ordered pattern list. Patterns are evaluated in order and every
// match is reported.
type Table []Pattern

// NewTable compiles specs in order.
func NewTable(specs []config.PatternSpec) (Table, error) {
	table := make(Table, 0, len(specs))
	for i, spec := range specs {
		p, err := Compile(spec)
		if err != nil {
			return nil, failure.Wrap(failure.ErrConfiguration, "analysis", "compile pattern", fmt.Sprintf("pattern %d (%s)", i+1, spec.Expr), err)
		}
		table = append(table, p)
	}
	return table, nil
}

// DefaultTable returns the compiled built-in table.
func DefaultTable() Table {
	table, err := NewTable(DefaultSpecs())
	if err != nil {
		panic(err)
	}
	return table
}

// TableFromConfig assembles the effective table: the built-in table unless
// disabled, then the patterns file, then inline patterns.
func TableFromConfig(cfg *config.Config) (Table, error) {
	var specs []config.PatternSpec
	if cfg == nil || !cfg.Analyze.DisableDefaultPatterns {
		specs = append(specs, DefaultSpecs()...)
	}
	if cfg != nil && cfg.Analyze.PatternsFile != "" {
		fromFile, err := LoadSpecs(cfg.Analyze.PatternsFile)
		if err != nil {
			return nil, err
		}
		specs = append(specs, fromFile...)
	}
	if cfg != nil {
		specs = append(specs, cfg.Analyze.Patterns...)
	}
	return NewTable(specs)
}

type tableFile struct {
	Patterns []config.PatternSpec `toml:"patterns" json:"patterns" yaml:"patterns"`
}

// LoadSpecs reads a pattern table file. The decoder is chosen by extension:
// .toml, .json, .yaml or .yml. The file holds a top-level "patterns" list.
func LoadSpecs(path string) ([]config.PatternSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, failure.Wrap(failure.ErrConfiguration, "analysis", "read pattern table", path, err)
	}

	var file tableFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&file)
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&file)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&file)
	default:
		return nil, failure.Wrap(failure.ErrConfiguration, "analysis", "read pattern table",
			fmt.Sprintf("unsupported extension %q (want .toml, .json, .yaml)", filepath.Ext(path)), nil)
	}
	if err != nil {
		return nil, failure.Wrap(failure.ErrConfiguration, "analysis", "decode pattern table", path, err)
	}
	return file.Patterns, nil
}
