package types

import "fmt"

// DefaultBackgroundScale is the background image scale applied when a
// saved document omits the field.
const DefaultBackgroundScale = 1.0

// Layout is the persisted root: named sequences plus background-image
// metadata. The layout owns everything beneath it top-down; cross-sequence
// alignment references are resolved by name and index, never by pointer.
type Layout struct {
	Sequences       []*Sequence
	BackgroundImage string // empty means no background image
	BackgroundScale float64
}

// NewLayout returns an empty layout with the default background scale.
func NewLayout() *Layout {
	return &Layout{BackgroundScale: DefaultBackgroundScale}
}

// Sequence returns the sequence with the given name, or false if absent.
func (l *Layout) Sequence(name string) (*Sequence, bool) {
	for _, q := range l.Sequences {
		if q.Name == name {
			return q, true
		}
	}
	return nil, false
}

// ResolveShapeRef resolves a cross-sequence shape reference.
// Returns ErrSequenceNotFound or ErrShapeIndexRange when the reference is
// dangling.
func (l *Layout) ResolveShapeRef(ref ShapeRef) (*Shape, error) {
	q, ok := l.Sequence(ref.Sequence)
	if !ok {
		return nil, fmt.Errorf("resolving reference to %q: %w", ref.Sequence, ErrSequenceNotFound)
	}
	return q.ShapeAt(ref.Index)
}
