package types

// AlignPosition is an explicit placement anchor: an absolute position and
// heading for the first shape of a sequence. Immutable value type.
type AlignPosition struct {
	X     float64
	Y     float64
	Angle float64 // degrees
}

// ShapeRef identifies a shape in another sequence by name and index. It is
// a non-owning lookup key, resolved on demand against a Layout.
type ShapeRef struct {
	Sequence string
	Index    int
}
