package preflight

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckInputFile(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "in.srt")
	if err := os.WriteFile(f, []byte("1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if result := CheckInputFile("input", f); !result.Passed {
		t.Fatalf("expected pass for readable file, got: %s", result.Detail)
	}
	if result := CheckInputFile("input", filepath.Join(dir, "missing.srt")); result.Passed {
		t.Fatal("expected failure for missing file")
	}
	if result := CheckInputFile("input", dir); result.Passed {
		t.Fatal("expected failure for directory")
	}
}

func TestRunAllAndFirstFailure(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "in.srt")
	if err := os.WriteFile(f, []byte("1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if failed, ok := FirstFailure(RunAll(f, dir)); ok {
		t.Fatalf("unexpected failure: %+v", failed)
	}

	failed, ok := FirstFailure(RunAll(f, filepath.Join(dir, "absent")))
	if !ok {
		t.Fatal("expected failure for missing output dir")
	}
	if failed.Name != "Output directory" {
		t.Fatalf("unexpected failed check %q", failed.Name)
	}
	if !errors.Is(failed.Err(), ErrCheckFailed) {
		t.Fatalf("expected ErrCheckFailed, got %v", failed.Err())
	}
}

func TestResultErrNilWhenPassed(t *testing.T) {
	if err := (Result{Name: "ok", Passed: true}).Err(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
