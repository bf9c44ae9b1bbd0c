package ast

// GlyphEntry is one glyph reference inside a TextRecord: an index into the
// referenced font's glyph table plus an advance width.
type GlyphEntry struct {
	Index   uint32
	Advance int32
}

// TextRecord is one run of glyphs sharing a font/color/offset within a
// DefineText body.
type TextRecord struct {
	FontID   *uint16
	Color    *StraightSRgba8
	OffsetX  int16
	OffsetY  int16
	FontSize *uint16
	Entries  []GlyphEntry
}

// GridFitting selects CsmTextSettings' grid-fitting (hinting) behavior.
type GridFitting int

const (
	GridFittingNone GridFitting = iota
	GridFittingPixel
	GridFittingSubPixel
)

// CsmTableHint is the CSM table hint carried by a DefineFontAlignZones tag.
type CsmTableHint int

const (
	CsmTableHintThin CsmTableHint = iota
	CsmTableHintMedium
	CsmTableHintThick
)

// TextRenderer distinguishes CsmTextSettings' rendering engine choice.
type TextRenderer int

const (
	TextRendererNormal TextRenderer = iota
	TextRendererAdvanced
)

// FontAlignmentZoneData is one coordinate pair (origin, size) within a
// font-alignment zone.
type FontAlignmentZoneData struct {
	Origin float32
	Size   float32
}

// FontAlignmentZone is one glyph's alignment-zone record: a count-prefixed
// list of coordinate pairs plus which axes they apply to.
type FontAlignmentZone struct {
	Data []FontAlignmentZoneData
	HasX bool
	HasY bool
}

// KerningRecord is one glyph-pair kerning adjustment in a font layout.
type KerningRecord struct {
	Left       uint16
	Right      uint16
	Adjustment int16
}

// FontLayout is DefineFont2/3's optional metrics block: ascent/descent/
// leading, per-glyph advances and bounds, and a kerning table.
type FontLayout struct {
	Ascent  uint16
	Descent uint16
	Leading int16
	Advances []int16
	Bounds   []Rect
	Kerning  []KerningRecord
}

// TextAlignment is DefineEditText's paragraph alignment.
type TextAlignment int

const (
	TextAlignLeft TextAlignment = iota
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)
