// JSON record structures for the layout document format. These mirror the
// on-disk shape of a saved layout; conversion to and from the model types
// lives in codec.go.
package store

// layoutJSON is the document root.
type layoutJSON struct {
	Sequences            []sequenceJSON `json:"sequences"`
	BackgroundImagePath  *string        `json:"backgroundImagePath,omitempty"`
	BackgroundImageScale *float64       `json:"backgroundImageScale,omitempty"`
}

// sequenceJSON represents one shape sequence. At most one of the two
// alignment fields is present.
type sequenceJSON struct {
	Name                     string             `json:"name"`
	Active                   bool               `json:"active"`
	InvertAlignment          bool               `json:"invertAlignment"`
	InitialAlignmentPosition *alignPositionJSON `json:"initialAlignmentPosition,omitempty"`
	InitialAlignmentShapeRef *shapeRefJSON      `json:"initialAlignmentShapeRef,omitempty"`
	Shapes                   []shapeJSON        `json:"shapes"`
}

// alignPositionJSON is an absolute placement anchor.
type alignPositionJSON struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle"`
}

// shapeRefJSON is a cross-sequence anchor by sequence name and shape index.
type shapeRefJSON struct {
	Sequence string `json:"sequence"`
	Index    int    `json:"index"`
}

// shapeJSON represents one placed shape. Type discriminates the geometry
// variant; only the fields of that variant are present.
type shapeJSON struct {
	ID          string `json:"id,omitempty"`
	Key         string `json:"key"`
	Type        string `json:"type"`
	Orientation int    `json:"orientation"`
	Red         bool   `json:"red"`

	// sector
	ExternalDiameter *float64 `json:"externalDiameter,omitempty"`
	Angle            *float64 `json:"angle,omitempty"`
	Width            *float64 `json:"width,omitempty"`

	// rect
	Length *float64 `json:"length,omitempty"`

	// halfcircle
	Diameter *float64 `json:"diameter,omitempty"`
}
