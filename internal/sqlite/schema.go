// Schema DDL for the catalog database.
package sqlite

const (
	createShapes = `CREATE TABLE IF NOT EXISTS shapes (
    code TEXT PRIMARY KEY,
    kind TEXT NOT NULL,
    external_diameter REAL,
    angle REAL,
    width REAL,
    length REAL,
    diameter REAL
);`

	createCombinations = `CREATE TABLE IF NOT EXISTS combinations (
    code_a TEXT NOT NULL,
    code_b TEXT NOT NULL,
    PRIMARY KEY (code_a, code_b),
    FOREIGN KEY (code_a) REFERENCES shapes(code),
    FOREIGN KEY (code_b) REFERENCES shapes(code)
);`
)

// schemaStatements lists the DDL in creation order.
var schemaStatements = []string{
	createShapes,
	createCombinations,
}
