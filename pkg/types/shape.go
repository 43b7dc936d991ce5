package types

import "fmt"

// Shape kinds. Each kind carries its own geometry payload on Shape.
const (
	KindSector     = "sector"
	KindRect       = "rect"
	KindHalfCircle = "halfcircle"
)

// validKinds is the set of recognized shape kind values.
var validKinds = map[string]bool{
	KindSector:     true,
	KindRect:       true,
	KindHalfCircle: true,
}

// ValidKind reports whether kind is a recognized shape kind.
func ValidKind(kind string) bool {
	return validKinds[kind]
}

// FixedHanded reports whether pieces of the kind exist in a single
// handedness. Fixed-handed pieces always carry orientation +1 and are
// exempt from orientation comparison when linking.
func FixedHanded(kind string) bool {
	switch kind {
	case KindRect:
		return true
	case KindSector, KindHalfCircle:
		return false
	}
	panic(fmt.Sprintf("types: unknown shape kind %q", kind))
}

// Terminal reports whether pieces of the kind must sit at the end of a
// sequence, with no shapes following them.
func Terminal(kind string) bool {
	switch kind {
	case KindHalfCircle:
		return true
	case KindSector, KindRect:
		return false
	}
	panic(fmt.Sprintf("types: unknown shape kind %q", kind))
}

// Orientation values. A shape is placed either right-handed (+1) or
// mirrored (-1).
const (
	OrientationRight = 1
	OrientationLeft  = -1
)

// SectorGeometry holds the parameters of an annular sector piece.
// Lengths in millimeters, angles in degrees.
type SectorGeometry struct {
	ExternalDiameter float64
	Angle            float64
	Width            float64
}

// RectGeometry holds the parameters of a rectangular piece.
type RectGeometry struct {
	Length float64
	Width  float64
}

// HalfCircleGeometry holds the parameters of a half-circle end piece.
type HalfCircleGeometry struct {
	Diameter float64
}

// Shape is a placed track piece inside a sequence: a copy of a catalog
// definition's geometry plus placement state. Exactly one geometry
// pointer is set, matching Kind. Geometry is immutable after placement;
// only Orientation and Red change over the shape's lifetime.
type Shape struct {
	ShapeID     string // UUID v7, assigned on placement.
	Code        string // Catalog code, never reassigned.
	Kind        string // One of the Kind constants, fixed for the lifetime.
	Orientation int    // OrientationRight or OrientationLeft.
	Red         bool   // Color classification used by linking rules.

	Sector     *SectorGeometry
	Rect       *RectGeometry
	HalfCircle *HalfCircleGeometry
}

// SetOrientation sets the shape orientation.
// Returns ErrInvalidOrientation for values other than +1 and -1, and
// ErrFixedHandedness when mirroring a fixed-handed kind.
func (s *Shape) SetOrientation(orientation int) error {
	if orientation != OrientationRight && orientation != OrientationLeft {
		return ErrInvalidOrientation
	}
	if orientation == OrientationLeft && FixedHanded(s.Kind) {
		return ErrFixedHandedness
	}
	s.Orientation = orientation
	return nil
}

// Flip mirrors the shape. Returns ErrFixedHandedness for fixed-handed kinds.
func (s *Shape) Flip() error {
	return s.SetOrientation(-s.Orientation)
}
