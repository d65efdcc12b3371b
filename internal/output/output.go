// SPDX-License-Identifier: AGPL-3.0-or-later

// Package output writes report files so that readers never see a partial
// report.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// AtomicWrite streams the report produced by write into a temp file next to
// path and renames it into place once write and close succeed. On any error
// the temp file is removed and path is left untouched.
func AtomicWrite(path string, write func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmpFile.Name())
		}
	}()

	if err := write(tmpFile); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), path); err != nil {
		return fmt.Errorf("moving temp file to %s: %w", path, err)
	}
	return nil
}

// DefaultPath returns the report path for an input file: the input path
// with suffix appended.
func DefaultPath(inputPath, suffix string) string {
	return inputPath + suffix
}
