package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"retime/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	outputDir  string
}

func setupCLITestEnv(t *testing.T, configBody string) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	outputDir := filepath.Join(base, "out")
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		t.Fatalf("mkdir out: %v", err)
	}

	configPath := filepath.Join(base, "retime.toml")
	if configBody != "" {
		if err := os.WriteFile(configPath, []byte(configBody), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}

	return &cliTestEnv{baseDir: base, configPath: configPath, outputDir: outputDir}
}

func (env *cliTestEnv) writeInput(t *testing.T, content string) string {
	t.Helper()
	return testsupport.WriteSubtitle(t, env.baseDir, "input.srt", content)
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
