package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"srtcheck/internal/failure"
)

func TestConfigInitShowAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.dir, "conf", "srtcheck.toml")

	out, _, err := runCLI(t, "config", "init", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration to "+target)
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, "config", "init", target); !errors.Is(err, failure.ErrConfiguration) {
		t.Fatalf("expected refusal to overwrite, got %v", err)
	}
	if _, _, err := runCLI(t, "config", "init", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, "--config", target, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "# source: "+target)
	requireContains(t, out, "max_issues = 20")

	out, _, err = runCLI(t, "--config", target, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config path: "+target)
	requireContains(t, out, "Pattern table: 19 patterns")
	requireContains(t, out, "Configuration valid")
}

func TestConfigShowDefaults(t *testing.T) {
	setupCLITestEnv(t)
	out, _, err := runCLI(t, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "# source: built-in defaults")
}

func TestConfigErrors(t *testing.T) {
	env := setupCLITestEnv(t)
	bad := env.write(t, "bad.toml", "[diff]\nworkers = 1000\n")

	if _, _, err := runCLI(t, "--config", bad, "config", "show"); !errors.Is(err, failure.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if _, _, err := runCLI(t, "--config", filepath.Join(env.dir, "missing.toml"), "config", "show"); !errors.Is(err, failure.ErrConfiguration) {
		t.Fatalf("expected configuration error for missing file, got %v", err)
	}
	if _, _, err := runCLI(t, "--log-format", "xml", "config", "show"); !errors.Is(err, failure.ErrConfiguration) {
		t.Fatalf("expected configuration error for bad log format, got %v", err)
	}
}
