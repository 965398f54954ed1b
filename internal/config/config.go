package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Logging contains configuration for diagnostic output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	File   string `toml:"file"`
}

// Validate contains configuration for the validate command.
type Validate struct {
	MaxIssues int `toml:"max_issues"`
}

// Diff contains configuration for the diff command.
type Diff struct {
	Limit   int  `toml:"limit"`
	ShowAll bool `toml:"show_all"`
	Inline  bool `toml:"inline"`
	Workers int  `toml:"workers"`
}

// PatternSpec declares one analyzer pattern. Kind is "literal" or "regex";
// NotFollowedBy rejects matches immediately followed by the given text.
type PatternSpec struct {
	Name          string `toml:"name" json:"name" yaml:"name"`
	Kind          string `toml:"kind" json:"kind" yaml:"kind"`
	Expr          string `toml:"expr" json:"expr" yaml:"expr"`
	NotFollowedBy string `toml:"not_followed_by" json:"not_followed_by,omitempty" yaml:"not_followed_by,omitempty"`
	Suggestion    string `toml:"suggestion" json:"suggestion" yaml:"suggestion"`
	Description   string `toml:"description" json:"description" yaml:"description"`
}

// Analyze contains configuration for the analyze command.
type Analyze struct {
	Limit                  int           `toml:"limit"`
	PreviewWidth           int           `toml:"preview_width"`
	PatternsFile           string        `toml:"patterns_file"`
	DisableDefaultPatterns bool          `toml:"disable_default_patterns"`
	Patterns               []PatternSpec `toml:"patterns"`
}

// Report contains configuration for generated report files.
type Report struct {
	Title string `toml:"title"`
	Dir   string `toml:"dir"`
}

// Config encapsulates all configuration values for srtcheck.
type Config struct {
	Logging    Logging  `toml:"logging"`
	Validation Validate `toml:"validate"`
	Diff       Diff     `toml:"diff"`
	Analyze    Analyze  `toml:"analyze"`
	Report     Report   `toml:"report"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/srtcheck/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. A missing file is not an
// error; defaults are used instead.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		info, err := os.Stat(expanded)
		if err != nil {
			if os.IsNotExist(err) {
				return "", false, fmt.Errorf("config file %s not found", expanded)
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		if info.IsDir() {
			return "", false, fmt.Errorf("config path %s is a directory", expanded)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("srtcheck.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// ReportPath resolves a report file name against Report.Dir. Absolute names
// and names with a directory component are returned expanded but otherwise
// unchanged.
func (c *Config) ReportPath(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("report path is empty")
	}
	if c.Report.Dir != "" && !filepath.IsAbs(name) && filepath.Base(name) == name {
		return filepath.Join(c.Report.Dir, name), nil
	}
	return expandPath(name)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Encode renders the effective configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}
