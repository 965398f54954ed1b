package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const originalSRT = "1\n00:00:01,000 --> 00:00:02,000\n我们用Lantern框架\n\n2\n00:00:03,000 --> 00:00:04,000\n这是 open EI 的模型\n\n3\n00:00:05,000 --> 00:00:06,000\nno change here\n"

const correctedSRT = "1\n00:00:01,000 --> 00:00:02,000\n我们用LangChain框架\n\n2\n00:00:03,000 --> 00:00:04,000\n这是 OpenAI 的模型\n\n3\n00:00:05,000 --> 00:00:06,000\nno change here\n"

type cliTestEnv struct {
	dir string
}

// setupCLITestEnv isolates config discovery from the developer's machine.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()
	base := t.TempDir()
	home := filepath.Join(base, "home")
	work := filepath.Join(base, "work")
	for _, dir := range []string{home, work} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	t.Setenv("HOME", home)
	t.Chdir(work)
	return &cliTestEnv{dir: work}
}

func (e *cliTestEnv) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
