package types

// Sequence is an ordered run of placed shapes. Shape order is the draw and
// link order and survives save/load unchanged. A sequence owns its shapes
// exclusively; shapes are never shared between sequences.
//
// At most one of AlignPosition and AlignShapeRef is set: a sequence either
// anchors to an absolute position, anchors to a shape in another sequence,
// or has no explicit anchor.
type Sequence struct {
	Name            string
	Active          bool
	InvertAlignment bool
	Shapes          []*Shape

	AlignPosition *AlignPosition
	AlignShapeRef *ShapeRef
}

// InsertShape inserts a shape at index at, shifting later shapes right.
// Valid indices are 0 through len(Shapes). Insertion does not run linking
// rules; callers validate first.
func (q *Sequence) InsertShape(at int, s *Shape) error {
	if at < 0 || at > len(q.Shapes) {
		return ErrShapeIndexRange
	}
	q.Shapes = append(q.Shapes, nil)
	copy(q.Shapes[at+1:], q.Shapes[at:])
	q.Shapes[at] = s
	return nil
}

// AppendShape adds a shape at the end of the sequence.
func (q *Sequence) AppendShape(s *Shape) {
	q.Shapes = append(q.Shapes, s)
}

// RemoveShape removes and returns the shape at index at.
func (q *Sequence) RemoveShape(at int) (*Shape, error) {
	if at < 0 || at >= len(q.Shapes) {
		return nil, ErrShapeIndexRange
	}
	s := q.Shapes[at]
	q.Shapes = append(q.Shapes[:at], q.Shapes[at+1:]...)
	return s, nil
}

// ShapeAt returns the shape at index at.
func (q *Sequence) ShapeAt(at int) (*Shape, error) {
	if at < 0 || at >= len(q.Shapes) {
		return nil, ErrShapeIndexRange
	}
	return q.Shapes[at], nil
}

// First returns the first shape, or nil for an empty sequence.
func (q *Sequence) First() *Shape {
	if len(q.Shapes) == 0 {
		return nil
	}
	return q.Shapes[0]
}

// SetAlignPosition anchors the sequence to an absolute position, clearing
// any shape-reference anchor.
func (q *Sequence) SetAlignPosition(p AlignPosition) {
	q.AlignPosition = &p
	q.AlignShapeRef = nil
}

// SetAlignShapeRef anchors the sequence to a shape in another sequence,
// clearing any absolute-position anchor.
func (q *Sequence) SetAlignShapeRef(r ShapeRef) {
	q.AlignShapeRef = &r
	q.AlignPosition = nil
}

// ClearAlignment removes any explicit anchor.
func (q *Sequence) ClearAlignment() {
	q.AlignPosition = nil
	q.AlignShapeRef = nil
}
