// Package ast defines the plain data vocabulary produced by this module's
// decoders: the movie envelope, its header, and the tagged union of body
// records a movie's tag stream can contain. It holds no decoding logic of
// its own.
package ast

import "github.com/archframe/moviefmt/bitstream"

// Compression identifies how a movie's tag stream is stored after its
// signature.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionDeflate
	CompressionLzma
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionDeflate:
		return "deflate"
	case CompressionLzma:
		return "lzma"
	default:
		return "unknown"
	}
}

// Signature is the 8-byte preamble every movie starts with.
type Signature struct {
	Compression           Compression
	Version                uint8
	UncompressedFileLength uint32
}

// Rect is an axis-aligned bounding box in twips (1/20 of a pixel).
type Rect struct {
	XMin, XMax, YMin, YMax int32
}

// Matrix is a 2D affine transform: scale, skew/rotate, and translate.
type Matrix struct {
	ScaleX, ScaleY bitstream.Fixed16
	RotateSkew0    bitstream.Fixed16
	RotateSkew1    bitstream.Fixed16
	TranslateX, TranslateY int32
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{ScaleX: 1 << 16, ScaleY: 1 << 16}
}

// ColorTransform is an additive/multiplicative transform over RGBA channels.
type ColorTransform struct {
	RedMult, GreenMult, BlueMult, AlphaMult     bitstream.Fixed8
	RedAdd, GreenAdd, BlueAdd, AlphaAdd int16
}

// SRgb8 is an opaque 24-bit color.
type SRgb8 struct{ R, G, B uint8 }

// StraightSRgba8 is a non-premultiplied 32-bit color.
type StraightSRgba8 struct{ R, G, B, A uint8 }

// MovieHeader is the decoded {rect, frame rate, frame count} triple that
// follows a movie's signature.
type MovieHeader struct {
	FrameSize  Rect
	FrameRate  bitstream.UFixed8
	FrameCount uint16
}

// Movie is the fully decoded top-level AST.
type Movie struct {
	Signature  Signature
	FrameSize  Rect
	FrameRate  bitstream.UFixed8
	FrameCount uint16
	Tags       []Tag
}

// Tag is the tagged union of every known record that may appear in a tag
// stream, plus the Raw catch-all for unknown or malformed bodies.
type Tag interface {
	tagCode() int
}

// TagHeader is the decoded {code, length} pair read from a tag's 2- or
// 6-byte header.
type TagHeader struct {
	Code   uint16
	Length uint32
}
