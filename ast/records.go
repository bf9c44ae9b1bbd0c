package ast

import "github.com/archframe/moviefmt/bitstream"

// ClipEventFlags is the bitfield of display-list clip events a ClipAction
// reacts to.
type ClipEventFlags struct {
	Load, EnterFrame, Unload, MouseMove, MouseDown, MouseUp,
	KeyDown, KeyUp, Data, Initialize, Press, Release, ReleaseOutside,
	RollOver, RollOut, DragOver, DragOut, KeyPress, Construct bool
}

// ClipAction is one action handler attached to a placed character.
type ClipAction struct {
	Events  ClipEventFlags
	KeyCode *uint8
	Actions Action
}

// SpreadMode is the gradient spread behavior past its last color stop.
type SpreadMode int

const (
	SpreadPad SpreadMode = iota
	SpreadReflect
	SpreadRepeat
)

// ColorSpace selects the interpolation space used between gradient stops.
type ColorSpace int

const (
	ColorSpaceSRgb ColorSpace = iota
	ColorSpaceLinearRgb
)

// ColorStop is one ratio/color pair in a gradient.
type ColorStop struct {
	Ratio uint8
	Color StraightSRgba8
}

// Gradient is a simple linear/radial gradient.
type Gradient struct {
	Spread SpreadMode
	Space  ColorSpace
	Colors []ColorStop
}

// MorphColorStop pairs a start and end ratio/color for morph gradients.
type MorphColorStop struct {
	Ratio      uint8
	Color      StraightSRgba8
	MorphRatio uint8
	MorphColor StraightSRgba8
}

// MorphGradient is the morph-shape analog of Gradient, carrying both
// keyframes' stops together.
type MorphGradient struct {
	Spread SpreadMode
	Space  ColorSpace
	Colors []MorphColorStop
}

// FilterID distinguishes the eight filter variants.
type FilterID int

const (
	FilterDropShadow FilterID = iota
	FilterBlur
	FilterGlow
	FilterBevel
	FilterGradientGlow
	FilterConvolution
	FilterColorMatrix
	FilterGradientBevel
)

// Filter is the tagged union over the eight bitmap-filter variants.
type Filter struct {
	ID FilterID

	// DropShadow, Glow, Bevel, GradientGlow, GradientBevel
	ShadowColor  StraightSRgba8
	GlowColor    StraightSRgba8
	HighlightColor StraightSRgba8
	GradientColors []ColorStop
	BlurX, BlurY   bitstream.Fixed16
	Angle          bitstream.Fixed16
	Distance       bitstream.Fixed16
	Strength       bitstream.Fixed8
	Inner          bool
	Knockout       bool
	CompositeSource bool
	OnTop          bool
	Passes         uint8

	// Convolution
	MatrixX, MatrixY uint8
	Divisor          float32
	Bias             float32
	Matrix           []float32
	DefaultColor     StraightSRgba8
	Clamp            bool
	PreserveAlpha    bool

	// ColorMatrix
	ColorMatrix [20]float32
}

// SoundInfo describes envelope/loop/trim parameters attached to a sound
// reference (StartSound, button sounds).
type SoundInfo struct {
	HasInPoint, HasOutPoint, HasLoopCount, HasEnvelope bool
	SyncNoMultiple, SyncStop                           bool
	InPoint                                            uint32
	OutPoint                                            uint32
	LoopCount                                            uint16
	Envelope                                             []SoundEnvelopePoint
}

// SoundEnvelopePoint is one entry in a sound's volume envelope.
type SoundEnvelopePoint struct {
	Pos44      uint32
	LeftLevel  uint16
	RightLevel uint16
}

// NamedID pairs a character id with a name, used by ExportAssets,
// ImportAssets, and SymbolClass.
type NamedID struct {
	ID   uint16
	Name string
}

// Action is an opaque, undisassembled blob of bytecode. Executing or
// disassembling it is out of scope here; it is kept as a named type rather
// than a bare []byte so a downstream disassembler has a stable seam to hang
// off of.
type Action []byte
