// Package shape implements the shape and glyph decoders: fill/line style
// lists, the bit-aligned shape record string (edges and style changes with
// dynamically-sized fill/line index fields), and offset-indexed glyph
// tables.
package shape

import (
	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/bitstream"
	"github.com/archframe/moviefmt/record"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "shape: " + string(e) }

func withAlpha(v ast.ShapeVersion) bool { return v >= ast.ShapeVersion3 }

// FillStyle reads one 1-byte-coded fill style.
func FillStyle(r *bitstream.Reader, version ast.ShapeVersion) (ast.FillStyle, error) {
	code, err := r.U8()
	if err != nil {
		return ast.FillStyle{}, err
	}
	switch {
	case code == 0x00:
		c, err := record.Color(r, withAlpha(version))
		if err != nil {
			return ast.FillStyle{}, err
		}
		return ast.FillStyle{Kind: ast.FillSolid, Color: c}, nil

	case code == 0x10 || code == 0x12 || code == 0x13:
		m, err := record.Matrix(r)
		if err != nil {
			return ast.FillStyle{}, err
		}
		g, err := record.Gradient(r, withAlpha(version))
		if err != nil {
			return ast.FillStyle{}, err
		}
		fs := ast.FillStyle{GradientMatrix: m, Gradient: g}
		switch code {
		case 0x10:
			fs.Kind = ast.FillLinearGradient
		case 0x12:
			fs.Kind = ast.FillRadialGradient
		case 0x13:
			fs.Kind = ast.FillFocalGradient
			fp, err := r.Fixed8LE()
			if err != nil {
				return ast.FillStyle{}, err
			}
			fs.FocalPoint = fp.Float64()
		}
		return fs, nil

	case code >= 0x40 && code <= 0x43:
		id, err := r.U16LE()
		if err != nil {
			return ast.FillStyle{}, err
		}
		m, err := record.Matrix(r)
		if err != nil {
			return ast.FillStyle{}, err
		}
		repeating := code&0x1 == 0
		smoothed := code&0x2 != 0
		return ast.FillStyle{
			Kind: ast.FillBitmap, BitmapID: id, BitmapMatrix: m,
			BitmapRepeat: repeating, BitmapSmoothed: smoothed,
		}, nil

	default:
		return ast.FillStyle{}, bitstream.ErrInvalid
	}
}

func fillStyleListLength(r *bitstream.Reader, version ast.ShapeVersion) (int, error) {
	n, err := r.U8()
	if err != nil {
		return 0, err
	}
	if n == 0xFF && version >= ast.ShapeVersion2 {
		wide, err := r.U16LE()
		if err != nil {
			return 0, err
		}
		return int(wide), nil
	}
	return int(n), nil
}

// FillStyleList reads a length-prefixed fill style list.
func FillStyleList(r *bitstream.Reader, version ast.ShapeVersion) ([]ast.FillStyle, error) {
	n, err := fillStyleListLength(r, version)
	if err != nil {
		return nil, err
	}
	styles := make([]ast.FillStyle, 0, n)
	for i := 0; i < n; i++ {
		fs, err := FillStyle(r, version)
		if err != nil {
			return nil, err
		}
		styles = append(styles, fs)
	}
	return styles, nil
}

func capStyleFromCode(code uint32) ast.CapStyle {
	switch code {
	case 1:
		return ast.CapNone
	case 2:
		return ast.CapSquare
	default:
		return ast.CapRound
	}
}

func joinStyleFromCode(code uint32) ast.JoinStyle {
	switch code {
	case 1:
		return ast.JoinBevel
	case 2:
		return ast.JoinMiter
	default:
		return ast.JoinRound
	}
}

// LineStyle reads one line style; version selects the pre-LineStyle2 simple
// form or the flag-driven LineStyle2 form (version >= ShapeVersion4).
func LineStyle(r *bitstream.Reader, version ast.ShapeVersion) (ast.LineStyle, error) {
	width, err := r.U16LE()
	if err != nil {
		return ast.LineStyle{}, err
	}
	if version < ast.ShapeVersion4 {
		c, err := record.Color(r, withAlpha(version))
		if err != nil {
			return ast.LineStyle{}, err
		}
		return ast.LineStyle{Width: width, Color: c}, nil
	}

	flags, err := r.Bits(16)
	if err != nil {
		return ast.LineStyle{}, err
	}
	pixelHinting := flags&(1<<0) != 0
	noVScale := flags&(1<<1) != 0
	noHScale := flags&(1<<2) != 0
	hasFill := flags&(1<<3) != 0
	joinCode := (flags >> 4) & 0x3
	startCapCode := (flags >> 6) & 0x3
	endCapCode := (flags >> 8) & 0x3
	noClose := flags&(1<<10) != 0

	ls := ast.LineStyle{
		Width: width, Wide: true, PixelHinting: pixelHinting, NoVScale: noVScale,
		NoHScale: noHScale, NoClose: noClose, StartCap: capStyleFromCode(startCapCode),
		EndCap: capStyleFromCode(endCapCode), Join: joinStyleFromCode(joinCode), HasFill: hasFill,
	}
	if joinStyleFromCode(joinCode) == ast.JoinMiter {
		limit, err := r.U16LE()
		if err != nil {
			return ast.LineStyle{}, err
		}
		ls.MiterLimit = limit
	}
	if hasFill {
		fs, err := FillStyle(r, version)
		if err != nil {
			return ast.LineStyle{}, err
		}
		ls.Fill = fs
	} else {
		c, err := record.StraightSRgba8(r)
		if err != nil {
			return ast.LineStyle{}, err
		}
		ls.Color = c
	}
	return ls, nil
}

func lineStyleListLength(r *bitstream.Reader, version ast.ShapeVersion) (int, error) {
	n, err := r.U8()
	if err != nil {
		return 0, err
	}
	if n == 0xFF && version >= ast.ShapeVersion2 {
		wide, err := r.U16LE()
		if err != nil {
			return 0, err
		}
		return int(wide), nil
	}
	return int(n), nil
}

// LineStyleList reads a length-prefixed line style list.
func LineStyleList(r *bitstream.Reader, version ast.ShapeVersion) ([]ast.LineStyle, error) {
	n, err := lineStyleListLength(r, version)
	if err != nil {
		return nil, err
	}
	styles := make([]ast.LineStyle, 0, n)
	for i := 0; i < n; i++ {
		ls, err := LineStyle(r, version)
		if err != nil {
			return nil, err
		}
		styles = append(styles, ls)
	}
	return styles, nil
}

// Styles reads a fill style list, a line style list, and the fill_bits/
// line_bits widths that introduce the shape record string following them.
// The reader must be byte-aligned on entry; it is bit-aligned on return.
func Styles(r *bitstream.Reader, version ast.ShapeVersion) (ast.ShapeStyles, error) {
	fills, err := FillStyleList(r, version)
	if err != nil {
		return ast.ShapeStyles{}, err
	}
	lines, err := LineStyleList(r, version)
	if err != nil {
		return ast.ShapeStyles{}, err
	}
	fillBits, err := r.Bits(4)
	if err != nil {
		return ast.ShapeStyles{}, err
	}
	lineBits, err := r.Bits(4)
	if err != nil {
		return ast.ShapeStyles{}, err
	}
	return ast.ShapeStyles{
		FillStyles: fills, LineStyles: lines,
		FillBits: uint8(fillBits), LineBits: uint8(lineBits),
	}, nil
}
