// Package store persists layouts as JSON documents. Writes are atomic via
// the temp-file, fsync, rename pattern so a destination only ever holds
// the old or the fully new document.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/slotcraft/trackline/pkg/types"
)

// Save writes the layout to path, replacing any previous document
// atomically. Failures touching the filesystem wrap types.ErrStorageIO.
func Save(layout *types.Layout, path string) error {
	doc := encodeLayout(layout)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding layout: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".layout-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", types.ErrStorageIO, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing document: %v", types.ErrStorageIO, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: syncing temp file: %v", types.ErrStorageIO, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file: %v", types.ErrStorageIO, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming temp file: %v", types.ErrStorageIO, err)
	}
	return nil
}

// Load reads the layout document at path. A missing file is not an error:
// it loads as an empty layout with default background scale. A document
// that exists but cannot be decoded fails with types.ErrMalformedSaveData
// (or types.ErrUnknownShapeKind for an unrecognized discriminator); read
// failures wrap types.ErrStorageIO.
func Load(path string) (*types.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return types.NewLayout(), nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", types.ErrStorageIO, path, err)
	}

	var doc layoutJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrMalformedSaveData, err)
	}
	return decodeLayout(doc)
}
