// First-run seeding of the standard piece catalog.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/slotcraft/trackline/pkg/types"
)

// seedShape describes one catalog entry to insert when the shapes table is
// empty. Geometry columns not used by the kind stay NULL.
type seedShape struct {
	code             string
	kind             string
	externalDiameter sql.NullFloat64
	angle            sql.NullFloat64
	width            sql.NullFloat64
	length           sql.NullFloat64
	diameter         sql.NullFloat64
}

func f(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: true}
}

// standardShapes is the built-in piece catalog seeded on first startup.
var standardShapes = []seedShape{
	{code: "025", kind: types.KindSector, externalDiameter: f(25.0), angle: f(90.0), width: f(6.0)},
	{code: "030", kind: types.KindSector, externalDiameter: f(30.0), angle: f(60.0), width: f(6.0)},
	{code: "045", kind: types.KindSector, externalDiameter: f(45.0), angle: f(45.0), width: f(6.0)},
	{code: "L", kind: types.KindRect, length: f(20.0), width: f(6.0)},
	{code: "S", kind: types.KindRect, length: f(10.0), width: f(6.0)},
	{code: "E", kind: types.KindHalfCircle, diameter: f(12.0)},
}

// standardCombinations lists the allowed adjacent code pairs seeded on
// first startup. Pairs are unordered; one row per pair.
var standardCombinations = [][2]string{
	{"025", "025"},
	{"025", "030"},
	{"030", "045"},
	{"025", "L"},
	{"030", "L"},
	{"045", "L"},
	{"025", "S"},
	{"030", "S"},
	{"045", "S"},
	{"L", "S"},
	{"025", "E"},
	{"L", "E"},
	{"S", "E"},
}

// seedCatalog inserts the standard catalog and combination table. Called
// only when the shapes table is empty; runs in a single transaction.
func seedCatalog(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, s := range standardShapes {
		_, err := tx.Exec(
			`INSERT INTO shapes (code, kind, external_diameter, angle, width, length, diameter)
             VALUES (?, ?, ?, ?, ?, ?, ?)`,
			s.code, s.kind, s.externalDiameter, s.angle, s.width, s.length, s.diameter,
		)
		if err != nil {
			return fmt.Errorf("seeding shape %s: %w", s.code, err)
		}
	}
	for _, pair := range standardCombinations {
		if _, err := tx.Exec(
			"INSERT INTO combinations (code_a, code_b) VALUES (?, ?)",
			pair[0], pair[1],
		); err != nil {
			return fmt.Errorf("seeding combination (%s, %s): %w", pair[0], pair[1], err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}
	return nil
}
