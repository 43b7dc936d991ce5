// Conversion between the layout model and the JSON document records.
package store

import (
	"fmt"

	"github.com/slotcraft/trackline/pkg/types"
)

func encodeLayout(layout *types.Layout) layoutJSON {
	doc := layoutJSON{Sequences: make([]sequenceJSON, 0, len(layout.Sequences))}
	for _, q := range layout.Sequences {
		doc.Sequences = append(doc.Sequences, encodeSequence(q))
	}
	if layout.BackgroundImage != "" {
		path := layout.BackgroundImage
		doc.BackgroundImagePath = &path
	}
	if layout.BackgroundScale != types.DefaultBackgroundScale {
		scale := layout.BackgroundScale
		doc.BackgroundImageScale = &scale
	}
	return doc
}

func encodeSequence(q *types.Sequence) sequenceJSON {
	rec := sequenceJSON{
		Name:            q.Name,
		Active:          q.Active,
		InvertAlignment: q.InvertAlignment,
		Shapes:          make([]shapeJSON, 0, len(q.Shapes)),
	}
	if q.AlignPosition != nil {
		rec.InitialAlignmentPosition = &alignPositionJSON{
			X:     q.AlignPosition.X,
			Y:     q.AlignPosition.Y,
			Angle: q.AlignPosition.Angle,
		}
	}
	if q.AlignShapeRef != nil {
		rec.InitialAlignmentShapeRef = &shapeRefJSON{
			Sequence: q.AlignShapeRef.Sequence,
			Index:    q.AlignShapeRef.Index,
		}
	}
	for _, s := range q.Shapes {
		rec.Shapes = append(rec.Shapes, encodeShape(s))
	}
	return rec
}

func encodeShape(s *types.Shape) shapeJSON {
	rec := shapeJSON{
		ID:          s.ShapeID,
		Key:         s.Code,
		Type:        s.Kind,
		Orientation: s.Orientation,
		Red:         s.Red,
	}
	switch s.Kind {
	case types.KindSector:
		rec.ExternalDiameter = ptr(s.Sector.ExternalDiameter)
		rec.Angle = ptr(s.Sector.Angle)
		rec.Width = ptr(s.Sector.Width)
	case types.KindRect:
		rec.Length = ptr(s.Rect.Length)
		rec.Width = ptr(s.Rect.Width)
	case types.KindHalfCircle:
		rec.Diameter = ptr(s.HalfCircle.Diameter)
	default:
		panic(fmt.Sprintf("store: unknown shape kind %q", s.Kind))
	}
	return rec
}

func decodeLayout(doc layoutJSON) (*types.Layout, error) {
	layout := types.NewLayout()
	for _, rec := range doc.Sequences {
		q, err := decodeSequence(rec)
		if err != nil {
			return nil, err
		}
		layout.Sequences = append(layout.Sequences, q)
	}
	if doc.BackgroundImagePath != nil {
		layout.BackgroundImage = *doc.BackgroundImagePath
	}
	if doc.BackgroundImageScale != nil {
		layout.BackgroundScale = *doc.BackgroundImageScale
	}
	return layout, nil
}

func decodeSequence(rec sequenceJSON) (*types.Sequence, error) {
	if rec.InitialAlignmentPosition != nil && rec.InitialAlignmentShapeRef != nil {
		return nil, fmt.Errorf("sequence %q: %w: both alignment forms present",
			rec.Name, types.ErrMalformedSaveData)
	}

	q := &types.Sequence{
		Name:            rec.Name,
		Active:          rec.Active,
		InvertAlignment: rec.InvertAlignment,
	}
	if p := rec.InitialAlignmentPosition; p != nil {
		q.AlignPosition = &types.AlignPosition{X: p.X, Y: p.Y, Angle: p.Angle}
	}
	if r := rec.InitialAlignmentShapeRef; r != nil {
		q.AlignShapeRef = &types.ShapeRef{Sequence: r.Sequence, Index: r.Index}
	}
	for i, sr := range rec.Shapes {
		s, err := decodeShape(sr)
		if err != nil {
			return nil, fmt.Errorf("sequence %q shape %d: %w", rec.Name, i, err)
		}
		q.Shapes = append(q.Shapes, s)
	}
	return q, nil
}

func decodeShape(rec shapeJSON) (*types.Shape, error) {
	if rec.Orientation != types.OrientationRight && rec.Orientation != types.OrientationLeft {
		return nil, fmt.Errorf("%w: orientation %d", types.ErrMalformedSaveData, rec.Orientation)
	}

	s := &types.Shape{
		ShapeID:     rec.ID,
		Code:        rec.Key,
		Kind:        rec.Type,
		Orientation: rec.Orientation,
		Red:         rec.Red,
	}
	switch rec.Type {
	case types.KindSector:
		if rec.ExternalDiameter == nil || rec.Angle == nil || rec.Width == nil {
			return nil, fmt.Errorf("%w: incomplete sector geometry", types.ErrMalformedSaveData)
		}
		s.Sector = &types.SectorGeometry{
			ExternalDiameter: *rec.ExternalDiameter,
			Angle:            *rec.Angle,
			Width:            *rec.Width,
		}
	case types.KindRect:
		if rec.Length == nil || rec.Width == nil {
			return nil, fmt.Errorf("%w: incomplete rect geometry", types.ErrMalformedSaveData)
		}
		s.Rect = &types.RectGeometry{Length: *rec.Length, Width: *rec.Width}
	case types.KindHalfCircle:
		if rec.Diameter == nil {
			return nil, fmt.Errorf("%w: incomplete halfcircle geometry", types.ErrMalformedSaveData)
		}
		s.HalfCircle = &types.HalfCircleGeometry{Diameter: *rec.Diameter}
	default:
		return nil, fmt.Errorf("%w %q", types.ErrUnknownShapeKind, rec.Type)
	}
	return s, nil
}

func ptr(f float64) *float64 { return &f }
