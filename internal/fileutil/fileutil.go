package fileutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

const (
	outputPrefix    = "retimed_"
	outputExtension = ".srt"
	outputLayout    = "2006-01-02-15-04-05"
	outputMode      = 0o644

	// LockFileName is created inside the output directory while a run writes to it.
	LockFileName = ".retime.lock"
	lockRetry    = 50 * time.Millisecond
)

// ErrOutputExists reports a target file that would be replaced without overwrite.
var ErrOutputExists = errors.New("output file already exists")

// NormalizeDir appends a trailing path separator when dir lacks one.
func NormalizeDir(dir string) string {
	if dir == "" || strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir
	}
	return dir + string(os.PathSeparator)
}

// OutputName returns retimed_YYYY-MM-DD-HH-MM-SS.srt for t in local time.
func OutputName(t time.Time) string {
	return outputPrefix + t.Local().Format(outputLayout) + outputExtension
}

// WriteAtomic streams fn's output into dir/name through a temporary file in
// the same directory, then renames it into place. The temporary file is
// removed when fn or any file operation fails, so either the complete output
// exists or nothing does.
func WriteAtomic(dir, name string, overwrite bool, fn func(io.Writer) error) (string, error) {
	target := filepath.Join(dir, name)
	if !overwrite {
		if _, err := os.Lstat(target); err == nil {
			return "", fmt.Errorf("%w: %s", ErrOutputExists, target)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat output: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp output: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := fn(tmp); err != nil {
		return "", err
	}
	if err := tmp.Sync(); err != nil {
		return "", fmt.Errorf("sync temp output: %w", err)
	}
	if err := tmp.Chmod(outputMode); err != nil {
		return "", fmt.Errorf("chmod temp output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp output: %w", err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		return "", fmt.Errorf("rename output: %w", err)
	}
	committed = true
	return target, nil
}

// LockDir takes an exclusive lock on dir/.retime.lock, waiting until ctx is
// done. The returned function releases it.
func LockDir(ctx context.Context, dir string) (func() error, error) {
	lock := flock.New(filepath.Join(dir, LockFileName))
	ok, err := lock.TryLockContext(ctx, lockRetry)
	if err != nil {
		return nil, fmt.Errorf("lock output directory: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("lock output directory %s: not acquired", dir)
	}
	return lock.Unlock, nil
}
