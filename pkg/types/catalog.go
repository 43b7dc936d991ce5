package types

import (
	"fmt"

	"github.com/google/uuid"
)

// Definition is an immutable catalog entry for a shape template. Exactly
// one geometry field is set, matching Kind.
type Definition struct {
	Code string
	Kind string

	Sector     *SectorGeometry
	Rect       *RectGeometry
	HalfCircle *HalfCircleGeometry
}

// Place creates a new Shape from the definition: the geometry is copied,
// a fresh UUID v7 is assigned, and the shape starts right-handed and
// uncolored. Returns ErrUnknownShapeKind if the definition's kind is not
// recognized.
func (d Definition) Place() (*Shape, error) {
	if !ValidKind(d.Kind) {
		return nil, fmt.Errorf("placing shape %q: %w %q", d.Code, ErrUnknownShapeKind, d.Kind)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating shape ID: %w", err)
	}

	s := &Shape{
		ShapeID:     id.String(),
		Code:        d.Code,
		Kind:        d.Kind,
		Orientation: OrientationRight,
	}
	switch d.Kind {
	case KindSector:
		g := *d.Sector
		s.Sector = &g
	case KindRect:
		g := *d.Rect
		s.Rect = &g
	case KindHalfCircle:
		g := *d.HalfCircle
		s.HalfCircle = &g
	}
	return s, nil
}

// Catalog supplies shape definitions keyed by code. Implementations are
// read-only after initialization and safe for concurrent lookups.
type Catalog interface {
	// Lookup returns the definition for code, or false if the code is
	// unknown.
	Lookup(code string) (Definition, bool)
}

// RuleTable answers whether two shape codes may be placed adjacently.
// The relation is unordered; implementations may store a single ordering,
// callers check both. Read-only after initialization.
type RuleTable interface {
	Allowed(codeA, codeB string) bool
}
