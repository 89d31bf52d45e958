// Package writer exposes filesystem sinks for trace emission.
package writer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileWriter streams trace bytes to a filesystem path.
//
// By default the file is created or truncated in place, so a failure part way
// through leaves a truncated file behind. With Atomic set the bytes go to a
// temp file in the same directory which is renamed over Path only after a
// successful write and sync.
type FileWriter struct {
	Path   string
	Atomic bool
}

// Create opens the destination and hands fn a buffered writer. Errors from
// fn, flushing, syncing or closing are returned.
func (w *FileWriter) Create(fn func(io.Writer) error) error {
	if w.Atomic {
		return w.createAtomic(fn)
	}

	f, err := os.Create(w.Path)
	if err != nil {
		return err
	}
	if err := emit(f, fn); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (w *FileWriter) createAtomic(fn func(io.Writer) error) error {
	// Create temp file in same directory to ensure atomic rename
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".ddcov-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := emit(tmpFile, fn); err != nil {
		return err
	}

	if syncErr := tmpFile.Sync(); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil // Don't clean up in defer

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}

	return nil
}

func emit(f *os.File, fn func(io.Writer) error) error {
	bw := bufio.NewWriter(f)
	if err := fn(bw); err != nil {
		return err
	}
	return bw.Flush()
}
