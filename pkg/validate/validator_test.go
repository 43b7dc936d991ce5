package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slotcraft/trackline/pkg/types"
)

// ruleTable is a test double storing one ordering per allowed pair.
type ruleTable map[[2]string]bool

func (r ruleTable) Allowed(a, b string) bool {
	return r[[2]string{a, b}]
}

func allow(pairs ...[2]string) ruleTable {
	r := make(ruleTable, len(pairs))
	for _, p := range pairs {
		r[p] = true
	}
	return r
}

func sector(code string, orientation int, red bool) *types.Shape {
	return &types.Shape{
		ShapeID:     "id-" + code,
		Code:        code,
		Kind:        types.KindSector,
		Orientation: orientation,
		Red:         red,
		Sector:      &types.SectorGeometry{ExternalDiameter: 25.0, Angle: 90.0, Width: 6.0},
	}
}

func rect(code string, red bool) *types.Shape {
	return &types.Shape{
		ShapeID:     "id-" + code,
		Code:        code,
		Kind:        types.KindRect,
		Orientation: types.OrientationRight,
		Red:         red,
		Rect:        &types.RectGeometry{Length: 20.0, Width: 6.0},
	}
}

func halfCircle(code string) *types.Shape {
	return &types.Shape{
		ShapeID:     "id-" + code,
		Code:        code,
		Kind:        types.KindHalfCircle,
		Orientation: types.OrientationRight,
		HalfCircle:  &types.HalfCircleGeometry{Diameter: 12.0},
	}
}

func seqOf(invert bool, shapes ...*types.Shape) *types.Sequence {
	return &types.Sequence{Name: "seq", Active: true, InvertAlignment: invert, Shapes: shapes}
}

func TestValidateAddShape(t *testing.T) {
	v := New(allow())

	tests := []struct {
		name    string
		shapes  []*types.Shape
		at      int
		valid   bool
		message string
	}{
		{
			name:   "empty sequence",
			shapes: nil,
			at:     0,
			valid:  true,
		},
		{
			name:   "insert at front",
			shapes: []*types.Shape{halfCircle("E")},
			at:     0,
			valid:  true,
		},
		{
			name:   "after a sector",
			shapes: []*types.Shape{sector("025", types.OrientationRight, false)},
			at:     1,
			valid:  true,
		},
		{
			name:    "after a terminal half circle",
			shapes:  []*types.Shape{halfCircle("E")},
			at:      1,
			valid:   false,
			message: "shape E must be at the end of sequence, no shapes may follow it",
		},
		{
			name: "between sector and terminal",
			shapes: []*types.Shape{
				sector("025", types.OrientationRight, false),
				halfCircle("E"),
			},
			at:    1,
			valid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := seqOf(false, tt.shapes...)
			before := len(q.Shapes)

			res := v.ValidateAddShape(q, sector("030", types.OrientationLeft, false), tt.at)

			assert.Equal(t, tt.valid, res.Valid)
			if tt.message != "" {
				assert.Equal(t, tt.message, res.Message)
			}
			assert.Len(t, q.Shapes, before, "validation must not mutate the sequence")
		})
	}
}

func TestValidateLinkedSequenceCombinationGate(t *testing.T) {
	v := New(allow())

	prev := sector("025", types.OrientationRight, false)
	next := seqOf(false, sector("030", types.OrientationRight, false))

	res := v.ValidateLinkedSequence(prev, next)
	require.False(t, res.Valid)
	assert.Contains(t, res.Message, "not an allowed combination")
	// The combination failure is reported even though the orientations
	// would fail the next check too.
	assert.NotContains(t, res.Message, "orientations")
}

func TestValidateLinkedSequenceReversedPair(t *testing.T) {
	// Table stores ("025", "030") only; lookup must match both orderings.
	v := New(allow([2]string{"025", "030"}))

	prev := sector("030", types.OrientationRight, false)
	next := seqOf(false, sector("025", types.OrientationLeft, false))

	res := v.ValidateLinkedSequence(prev, next)
	assert.True(t, res.Valid)
}

func TestValidateLinkedSequenceOrientations(t *testing.T) {
	v := New(allow([2]string{"025", "025"}))

	tests := []struct {
		name             string
		prevOrientation  int
		firstOrientation int
		valid            bool
	}{
		{"same orientation rejected", types.OrientationRight, types.OrientationRight, false},
		{"both mirrored rejected", types.OrientationLeft, types.OrientationLeft, false},
		{"opposite orientations", types.OrientationRight, types.OrientationLeft, true},
		{"opposite orientations reversed", types.OrientationLeft, types.OrientationRight, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := sector("025", tt.prevOrientation, false)
			next := seqOf(false, sector("025", tt.firstOrientation, false))

			res := v.ValidateLinkedSequence(prev, next)

			assert.Equal(t, tt.valid, res.Valid)
			if !tt.valid {
				assert.Contains(t, res.Message, "different orientations")
			}
		})
	}
}

func TestValidateLinkedSequenceFixedHandedExempt(t *testing.T) {
	v := New(allow([2]string{"025", "L"}))

	// Both right-handed, but the rect is fixed-handed, so orientation is
	// not compared.
	prev := sector("025", types.OrientationRight, false)
	next := seqOf(false, rect("L", false))

	res := v.ValidateLinkedSequence(prev, next)
	assert.True(t, res.Valid)

	// Same in the other direction.
	res = v.ValidateLinkedSequence(rect("L", false), seqOf(false, sector("025", types.OrientationRight, false)))
	assert.True(t, res.Valid)
}

func TestValidateLinkedSequenceColors(t *testing.T) {
	v := New(allow([2]string{"025", "030"}))

	tests := []struct {
		name     string
		prevRed  bool
		firstRed bool
		valid    bool
	}{
		{"both plain rejected", false, false, false},
		{"both red rejected", true, true, false},
		{"red then plain", true, false, true},
		{"plain then red", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := sector("025", types.OrientationRight, tt.prevRed)
			// Same orientation on both shapes: invert-alignment mode must
			// not apply the orientation rule.
			next := seqOf(true, sector("030", types.OrientationRight, tt.firstRed))

			res := v.ValidateLinkedSequence(prev, next)

			assert.Equal(t, tt.valid, res.Valid)
			if !tt.valid {
				assert.Contains(t, res.Message, "different colors")
			}
		})
	}
}

func TestValidateLinkedSequenceEmptyFollower(t *testing.T) {
	v := New(allow())

	res := v.ValidateLinkedSequence(sector("025", types.OrientationRight, false), seqOf(false))
	assert.True(t, res.Valid, "an empty follower has nothing to link yet")
}

func TestValidateLinkedSequenceCatalogScenario(t *testing.T) {
	// Catalog: "025" annular sector (not fixed-handed), "L" rectangle
	// (fixed-handed). Table allows ("025", "L"). Both placed right-handed.
	v := New(allow([2]string{"025", "L"}))

	seqA := seqOf(false, sector("025", types.OrientationRight, false))
	seqB := seqOf(false, rect("L", false))

	res := v.ValidateLinkedSequence(seqA.Shapes[0], seqB)
	assert.True(t, res.Valid)
}
