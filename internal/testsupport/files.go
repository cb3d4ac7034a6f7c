package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// SingleCue is a one-cue SubRip document.
const SingleCue = "1\n00:00:10,000 --> 00:00:12,000\nHello there\n\n"

// WriteSubtitle writes content to dir/name, creating dir, and returns the path.
func WriteSubtitle(t testing.TB, dir, name, content string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// SubtitleFiles lists .srt and temp files in dir.
func SubtitleFiles(t testing.TB, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	var names []string
	for _, entry := range entries {
		switch filepath.Ext(entry.Name()) {
		case ".srt", ".tmp":
			names = append(names, entry.Name())
		}
	}
	return names
}
