// SPDX-License-Identifier: MIT

// Package coocodec - file-backed load & save.
//
// SaveFile stages its output in a temporary file and renames it into place,
// so an aborted save never leaves a truncated matrix file behind.

package coocodec

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/katalvlaran/sparsemat/coo"
)

// LoadFile reads and decodes the matrix file at path.
// A missing file yields ErrSourceNotFound naming the path; any other read
// failure is reported as-is; parse failures carry the path as their Source.
func LoadFile(path string) (*coo.Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}

		return nil, fmt.Errorf("coocodec: read %s: %w", path, err)
	}

	return decode(path, string(data))
}

// SaveFile encodes m and writes it to path atomically: the text is staged
// in a temporary file in the destination directory, synced, then renamed
// over path. On any failure the temporary file is removed and path is left
// untouched.
func SaveFile(path string, m *coo.Matrix) error {
	if m == nil {
		return fmt.Errorf("coocodec: save %s: %w", path, coo.ErrNilMatrix)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".coo-*")
	if err != nil {
		return fmt.Errorf("coocodec: save %s: %w", path, err)
	}
	defer func() {
		// No-ops once the rename has succeeded.
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	if err = EncodeTo(tmp, m); err != nil {
		return fmt.Errorf("coocodec: save %s: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("coocodec: save %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("coocodec: save %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("coocodec: save %s: %w", path, err)
	}

	return nil
}
