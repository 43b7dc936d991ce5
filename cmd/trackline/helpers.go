// Shared helpers for trackline CLI commands.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/slotcraft/trackline/internal/sqlite"
	"github.com/slotcraft/trackline/internal/store"
	"github.com/slotcraft/trackline/pkg/types"
)

// openCatalog resolves the data directory and opens the catalog store,
// creating and seeding catalog.db on first use. The caller must defer
// catalog.Close().
func openCatalog() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	catalog, err := sqlite.Open(filepath.Join(dataDir, catalogDBName))
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	return catalog, nil
}

// loadLayout reads a layout document, mapping a missing file to an empty
// layout per the persistence contract.
func loadLayout(path string) (*types.Layout, error) {
	layout, err := store.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load layout %s: %w", path, err)
	}
	return layout, nil
}

// shapeSummary is the line format shared by show and check output.
func shapeSummary(s *types.Shape) string {
	color := "plain"
	if s.Red {
		color = "red"
	}
	return fmt.Sprintf("%s (%s, orientation %+d, %s)", s.Code, s.Kind, s.Orientation, color)
}
