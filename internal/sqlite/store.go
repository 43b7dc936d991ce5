// Package sqlite implements the catalog store: shape definitions and the
// combination rule table, kept in a SQLite database and loaded once into
// immutable in-memory maps. After Open the maps never change, so lookups
// are safe from concurrent validation calls without locking.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	_ "modernc.org/sqlite"

	"github.com/slotcraft/trackline/pkg/types"
)

// Compile-time interface checks.
var (
	_ types.Catalog   = (*Store)(nil)
	_ types.RuleTable = (*Store)(nil)
)

// Store holds the loaded catalog and combination table.
type Store struct {
	db    *sql.DB
	defs  map[string]types.Definition
	pairs map[[2]string]bool
}

// Open opens (creating and seeding if necessary) the catalog database at
// path and loads its contents. The parent directory is created if absent.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database handle. The loaded maps stay usable.
func (s *Store) Close() error {
	return s.db.Close()
}

// Lookup returns the definition for code, or false if the code is unknown.
func (s *Store) Lookup(code string) (types.Definition, bool) {
	def, ok := s.defs[code]
	return def, ok
}

// Allowed reports whether the two codes form an allowed adjacent pair.
// The stored relation is unordered; both orderings are checked.
func (s *Store) Allowed(codeA, codeB string) bool {
	return s.pairs[[2]string{codeA, codeB}] || s.pairs[[2]string{codeB, codeA}]
}

// Definitions returns all shape definitions ordered by code.
func (s *Store) Definitions() []types.Definition {
	defs := make([]types.Definition, 0, len(s.defs))
	for _, d := range s.defs {
		defs = append(defs, d)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Code < defs[j].Code })
	return defs
}

// init creates the schema, seeds the standard catalog on first run, and
// loads the definition and combination maps.
func (s *Store) init() error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("initializing schema: %w", err)
		}
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM shapes").Scan(&count); err != nil {
		return fmt.Errorf("counting shapes: %w", err)
	}
	if count == 0 {
		if err := seedCatalog(s.db); err != nil {
			return err
		}
	}

	if err := s.loadDefinitions(); err != nil {
		return err
	}
	return s.loadCombinations()
}

// loadDefinitions hydrates all shape rows into the definitions map.
func (s *Store) loadDefinitions() error {
	rows, err := s.db.Query(
		"SELECT code, kind, external_diameter, angle, width, length, diameter FROM shapes")
	if err != nil {
		return fmt.Errorf("querying shapes: %w", err)
	}
	defer rows.Close()

	s.defs = make(map[string]types.Definition)
	for rows.Next() {
		var (
			code, kind                string
			extDiameter, angle, width sql.NullFloat64
			length, diameter          sql.NullFloat64
		)
		if err := rows.Scan(&code, &kind, &extDiameter, &angle, &width, &length, &diameter); err != nil {
			return fmt.Errorf("scanning shape row: %w", err)
		}

		def := types.Definition{Code: code, Kind: kind}
		switch kind {
		case types.KindSector:
			def.Sector = &types.SectorGeometry{
				ExternalDiameter: extDiameter.Float64,
				Angle:            angle.Float64,
				Width:            width.Float64,
			}
		case types.KindRect:
			def.Rect = &types.RectGeometry{Length: length.Float64, Width: width.Float64}
		case types.KindHalfCircle:
			def.HalfCircle = &types.HalfCircleGeometry{Diameter: diameter.Float64}
		default:
			return fmt.Errorf("shape %s: %w %q", code, types.ErrUnknownShapeKind, kind)
		}
		s.defs[code] = def
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating shape rows: %w", err)
	}
	return nil
}

// loadCombinations hydrates the allowed-pair rows into the pair map.
func (s *Store) loadCombinations() error {
	rows, err := s.db.Query("SELECT code_a, code_b FROM combinations")
	if err != nil {
		return fmt.Errorf("querying combinations: %w", err)
	}
	defer rows.Close()

	s.pairs = make(map[[2]string]bool)
	for rows.Next() {
		var a, b string
		if err := rows.Scan(&a, &b); err != nil {
			return fmt.Errorf("scanning combination row: %w", err)
		}
		s.pairs[[2]string{a, b}] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating combination rows: %w", err)
	}
	return nil
}
