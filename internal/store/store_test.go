package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slotcraft/trackline/pkg/types"
)

// fullLayout builds a layout exercising every persisted field: all three
// shape kinds, both alignment forms, flags, and background metadata.
func fullLayout() *types.Layout {
	main := &types.Sequence{
		Name:   "main",
		Active: true,
		Shapes: []*types.Shape{
			{
				ShapeID:     "s-1",
				Code:        "025",
				Kind:        types.KindSector,
				Orientation: types.OrientationRight,
				Red:         true,
				Sector:      &types.SectorGeometry{ExternalDiameter: 25.0, Angle: 90.0, Width: 6.0},
			},
			{
				ShapeID:     "s-2",
				Code:        "L",
				Kind:        types.KindRect,
				Orientation: types.OrientationRight,
				Rect:        &types.RectGeometry{Length: 20.0, Width: 6.0},
			},
			{
				ShapeID:     "s-3",
				Code:        "E",
				Kind:        types.KindHalfCircle,
				Orientation: types.OrientationLeft,
				HalfCircle:  &types.HalfCircleGeometry{Diameter: 12.0},
			},
		},
	}
	main.SetAlignPosition(types.AlignPosition{X: 10.5, Y: -3.25, Angle: 45.0})

	spur := &types.Sequence{
		Name:            "spur",
		InvertAlignment: true,
		Shapes: []*types.Shape{
			{
				ShapeID:     "s-4",
				Code:        "030",
				Kind:        types.KindSector,
				Orientation: types.OrientationLeft,
				Sector:      &types.SectorGeometry{ExternalDiameter: 30.0, Angle: 60.0, Width: 6.0},
			},
		},
	}
	spur.SetAlignShapeRef(types.ShapeRef{Sequence: "main", Index: 0})

	bare := &types.Sequence{Name: "bare"}

	return &types.Layout{
		Sequences:       []*types.Sequence{main, spur, bare},
		BackgroundImage: "plans/table.png",
		BackgroundScale: 2.5,
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	want := fullLayout()

	require.NoError(t, Save(want, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRoundTripEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	want := types.NewLayout()

	require.NoError(t, Save(want, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMissingFile(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err)

	assert.Empty(t, got.Sequences)
	assert.Empty(t, got.BackgroundImage)
	assert.Equal(t, types.DefaultBackgroundScale, got.BackgroundScale)
}

func TestLoadMalformedDocument(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "not JSON",
			doc:     "not a layout {",
			wantErr: types.ErrMalformedSaveData,
		},
		{
			name:    "wrong document shape",
			doc:     `{"sequences": 42}`,
			wantErr: types.ErrMalformedSaveData,
		},
		{
			name: "both alignment forms",
			doc: `{"sequences": [{"name": "a", "shapes": [],
				"initialAlignmentPosition": {"x": 0, "y": 0, "angle": 0},
				"initialAlignmentShapeRef": {"sequence": "b", "index": 0}}]}`,
			wantErr: types.ErrMalformedSaveData,
		},
		{
			name: "orientation out of range",
			doc: `{"sequences": [{"name": "a", "shapes": [
				{"key": "025", "type": "sector", "orientation": 2, "red": false,
				 "externalDiameter": 25.0, "angle": 90.0, "width": 6.0}]}]}`,
			wantErr: types.ErrMalformedSaveData,
		},
		{
			name: "incomplete sector geometry",
			doc: `{"sequences": [{"name": "a", "shapes": [
				{"key": "025", "type": "sector", "orientation": 1, "red": false}]}]}`,
			wantErr: types.ErrMalformedSaveData,
		},
		{
			name: "unknown shape discriminator",
			doc: `{"sequences": [{"name": "a", "shapes": [
				{"key": "T", "type": "triangle", "orientation": 1, "red": false}]}]}`,
			wantErr: types.ErrUnknownShapeKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "layout.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.doc), 0o644))

			got, err := Load(path)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got, "no partially populated result on failure")
		})
	}
}

func TestLoadDefaultsForOmittedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	doc := `{"sequences": [{"name": "a", "active": true, "invertAlignment": false, "shapes": []}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, types.DefaultBackgroundScale, got.BackgroundScale)
	assert.Empty(t, got.BackgroundImage, "omitted path loads as unset, not as a value")
	require.Len(t, got.Sequences, 1)
	assert.Nil(t, got.Sequences[0].AlignPosition)
	assert.Nil(t, got.Sequences[0].AlignShapeRef)
}

func TestSaveOmitsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	require.NoError(t, Save(types.NewLayout(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "backgroundImagePath")
	assert.NotContains(t, string(data), "backgroundImageScale")
}

func TestSaveReplacesExistingDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")

	require.NoError(t, Save(fullLayout(), path))
	require.NoError(t, Save(types.NewLayout(), path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, got.Sequences, "destination reflects the new document only")
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Save(fullLayout(), filepath.Join(dir, "layout.json")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "layout.json", entries[0].Name())
}

func TestShapeOrderStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	want := fullLayout()

	require.NoError(t, Save(want, path))
	got, err := Load(path)
	require.NoError(t, err)

	require.Len(t, got.Sequences, 3)
	var gotCodes []string
	for _, s := range got.Sequences[0].Shapes {
		gotCodes = append(gotCodes, s.Code)
	}
	assert.Equal(t, []string{"025", "L", "E"}, gotCodes)
}
