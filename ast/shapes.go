package ast

// FillStyleKind distinguishes the five fill-style flavors.
type FillStyleKind int

const (
	FillSolid FillStyleKind = iota
	FillLinearGradient
	FillRadialGradient
	FillFocalGradient
	FillBitmap
)

// FillStyle is the tagged union over a shape's fill styles.
type FillStyle struct {
	Kind FillStyleKind

	Color Color // Solid

	GradientMatrix Matrix        // *Gradient
	Gradient       Gradient      // *Gradient
	FocalPoint     float64       // FillFocalGradient, 8.8 fixed-point focal position

	BitmapID       uint16 // FillBitmap
	BitmapMatrix   Matrix // FillBitmap
	BitmapRepeat   bool   // FillBitmap
	BitmapSmoothed bool   // FillBitmap
}

// Color is Solid's RGB or RGBA payload, normalized to RGBA (alpha 255 when
// the source style carries no alpha channel).
type Color = StraightSRgba8

// CapStyle is a LineStyle2 end/start cap shape.
type CapStyle int

const (
	CapRound CapStyle = iota
	CapNone
	CapSquare
)

// JoinStyle is a LineStyle2 join shape.
type JoinStyle int

const (
	JoinRound JoinStyle = iota
	JoinBevel
	JoinMiter
)

// LineStyle is a stroke style: version < 4 uses the simple {width, color}
// form; version >= 4 (LineStyle2) adds hinting flags, caps, joins, and an
// optional fill style in place of a flat color.
type LineStyle struct {
	Width uint16
	Color StraightSRgba8

	// LineStyle2 fields; zero-valued when Wide is false.
	Wide          bool
	PixelHinting  bool
	NoVScale      bool
	NoHScale      bool
	NoClose       bool
	StartCap      CapStyle
	EndCap        CapStyle
	Join          JoinStyle
	MiterLimit    uint16
	HasFill       bool
	Fill          FillStyle
}

// ShapeRecordKind distinguishes edges from style changes.
type ShapeRecordKind int

const (
	RecordStraightEdge ShapeRecordKind = iota
	RecordCurvedEdge
	RecordStyleChange
)

// Vec2 is an (x, y) pair in twips.
type Vec2 struct{ X, Y int32 }

// ShapeRecord is one edge or style-change record in a shape record string.
type ShapeRecord struct {
	Kind ShapeRecordKind

	// Edges (straight or curved).
	Delta        Vec2 // endpoint delta; for curves, control+anchor summed
	ControlDelta Vec2 // curves only

	// Style changes.
	HasNewStyles   bool
	ChangeLineStyle bool
	ChangeRightFill bool
	ChangeLeftFill  bool
	HasMoveTo       bool
	MoveTo          Vec2
	LeftFill        uint32
	RightFill       uint32
	LineStyleIndex  uint32
	NewStyles       *ShapeStyles
}

// ShapeStyles is a fill/line style list plus the index widths that follow
// it, both at the top of a shape and whenever a style-change record
// introduces a "new styles" block mid-stream.
type ShapeStyles struct {
	FillStyles []FillStyle
	LineStyles []LineStyle
	FillBits   uint8
	LineBits   uint8
}

// ShapeVersion selects field widths/behavior that vary across
// DefineShape's four tag generations.
type ShapeVersion int

const (
	ShapeVersion1 ShapeVersion = iota + 1
	ShapeVersion2
	ShapeVersion3
	ShapeVersion4
)

// Shape is a fully parsed shape: its initial styles plus its record string.
type Shape struct {
	Styles  ShapeStyles
	Records []ShapeRecord
}

// Glyph is a shape with no fill/line styles of its own (glyph outlines are
// always filled by the surrounding text record's color).
type Glyph struct {
	Records []ShapeRecord
}

// MorphShapeRecord is the zipped start/end counterpart of ShapeRecord.
type MorphShapeRecord struct {
	Kind ShapeRecordKind

	Delta             Vec2
	MorphDelta        Vec2
	ControlDelta      Vec2
	MorphControlDelta Vec2

	HasNewStyles    bool
	ChangeLineStyle bool
	ChangeRightFill bool
	ChangeLeftFill  bool
	HasMoveTo       bool
	MoveTo          Vec2
	HasMorphMoveTo  bool
	MorphMoveTo     Vec2
	LeftFill        uint32
	RightFill       uint32
	LineStyleIndex  uint32
	NewStyles       *MorphShapeStyles
}

// MorphShapeVersion selects DefineMorphShape's v1/v2 field layout.
type MorphShapeVersion int

const (
	MorphShapeVersion1 MorphShapeVersion = iota + 1
	MorphShapeVersion2
)

// MorphFillStyle is a fill style carrying both its start and end keyframe
// values.
type MorphFillStyle struct {
	Kind FillStyleKind

	Color      StraightSRgba8
	MorphColor StraightSRgba8

	Matrix      Matrix
	MorphMatrix Matrix
	Gradient    MorphGradient

	FocalPoint      float64
	MorphFocalPoint float64

	BitmapID       uint16
	BitmapMatrix   Matrix
	MorphBitmapMatrix Matrix
	BitmapRepeat   bool
	BitmapSmoothed bool
}

// MorphLineStyle is a line style carrying both its start and end keyframe
// values.
type MorphLineStyle struct {
	Width      uint16
	MorphWidth uint16
	Color      StraightSRgba8
	MorphColor StraightSRgba8

	Wide         bool
	PixelHinting bool
	NoVScale     bool
	NoHScale     bool
	NoClose      bool
	StartCap     CapStyle
	EndCap       CapStyle
	Join         JoinStyle
	MiterLimit   uint16
	HasFill      bool
	Fill         MorphFillStyle
}

// MorphShapeStyles is the morph-shape counterpart of ShapeStyles: the same
// index-width bookkeeping, but each style carries both keyframes' values.
type MorphShapeStyles struct {
	FillStyles []MorphFillStyle
	LineStyles []MorphLineStyle
	FillBits   uint8
	LineBits   uint8
}

// MorphShape is the merged start/end shape produced by the morph-shape
// decoder.
type MorphShape struct {
	Styles  MorphShapeStyles
	Records []MorphShapeRecord
}
