package morphshape

import (
	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/bitstream"
	"github.com/archframe/moviefmt/record"
)

// morph shapes always carry an alpha channel on their colors, regardless of
// the surrounding DefineMorphShape version.
const withAlpha = true

func morphFillStyle(r *bitstream.Reader) (ast.MorphFillStyle, error) {
	code, err := r.U8()
	if err != nil {
		return ast.MorphFillStyle{}, err
	}
	switch {
	case code == 0x00:
		c, err := record.Color(r, withAlpha)
		if err != nil {
			return ast.MorphFillStyle{}, err
		}
		mc, err := record.Color(r, withAlpha)
		if err != nil {
			return ast.MorphFillStyle{}, err
		}
		return ast.MorphFillStyle{Kind: ast.FillSolid, Color: c, MorphColor: mc}, nil

	case code == 0x10 || code == 0x12 || code == 0x13:
		m, err := record.Matrix(r)
		if err != nil {
			return ast.MorphFillStyle{}, err
		}
		mm, err := record.Matrix(r)
		if err != nil {
			return ast.MorphFillStyle{}, err
		}
		g, err := record.MorphGradient(r, withAlpha)
		if err != nil {
			return ast.MorphFillStyle{}, err
		}
		fs := ast.MorphFillStyle{Matrix: m, MorphMatrix: mm, Gradient: g}
		switch code {
		case 0x10:
			fs.Kind = ast.FillLinearGradient
		case 0x12:
			fs.Kind = ast.FillRadialGradient
		case 0x13:
			fs.Kind = ast.FillFocalGradient
			fp, err := r.Fixed8LE()
			if err != nil {
				return ast.MorphFillStyle{}, err
			}
			fs.FocalPoint = fp.Float64()
			mfp, err := r.Fixed8LE()
			if err != nil {
				return ast.MorphFillStyle{}, err
			}
			fs.MorphFocalPoint = mfp.Float64()
		}
		return fs, nil

	case code >= 0x40 && code <= 0x43:
		id, err := r.U16LE()
		if err != nil {
			return ast.MorphFillStyle{}, err
		}
		m, err := record.Matrix(r)
		if err != nil {
			return ast.MorphFillStyle{}, err
		}
		mm, err := record.Matrix(r)
		if err != nil {
			return ast.MorphFillStyle{}, err
		}
		return ast.MorphFillStyle{
			Kind: ast.FillBitmap, BitmapID: id, BitmapMatrix: m, MorphBitmapMatrix: mm,
			BitmapRepeat: code&0x1 == 0, BitmapSmoothed: code&0x2 != 0,
		}, nil

	default:
		return ast.MorphFillStyle{}, bitstream.ErrInvalid
	}
}

func morphFillStyleList(r *bitstream.Reader) ([]ast.MorphFillStyle, error) {
	n, err := r.U8()
	if err != nil {
		return nil, err
	}
	count := int(n)
	if n == 0xFF {
		wide, err := r.U16LE()
		if err != nil {
			return nil, err
		}
		count = int(wide)
	}
	styles := make([]ast.MorphFillStyle, 0, count)
	for i := 0; i < count; i++ {
		fs, err := morphFillStyle(r)
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

func morphLineStyle(r *bitstream.Reader, version ast.MorphShapeVersion) (ast.MorphLineStyle, error) {
	width, err := r.U16LE()
	if err != nil {
		return ast.MorphLineStyle{}, err
	}
	morphWidth, err := r.U16LE()
	if err != nil {
		return ast.MorphLineStyle{}, err
	}
	if version < ast.MorphShapeVersion2 {
		c, err := record.Color(r, withAlpha)
		if err != nil {
			return ast.MorphLineStyle{}, err
		}
		mc, err := record.Color(r, withAlpha)
		if err != nil {
			return ast.MorphLineStyle{}, err
		}
		return ast.MorphLineStyle{Width: width, MorphWidth: morphWidth, Color: c, MorphColor: mc}, nil
	}

	flags, err := r.Bits(16)
	if err != nil {
		return ast.MorphLineStyle{}, err
	}
	pixelHinting := flags&(1<<0) != 0
	noVScale := flags&(1<<1) != 0
	noHScale := flags&(1<<2) != 0
	hasFill := flags&(1<<3) != 0
	joinCode := (flags >> 4) & 0x3
	startCapCode := (flags >> 6) & 0x3
	endCapCode := (flags >> 8) & 0x3
	noClose := flags&(1<<10) != 0

	ls := ast.MorphLineStyle{
		Width: width, MorphWidth: morphWidth, Wide: true, PixelHinting: pixelHinting,
		NoVScale: noVScale, NoHScale: noHScale, NoClose: noClose,
		StartCap: capStyleFromCode(startCapCode), EndCap: capStyleFromCode(endCapCode),
		Join: joinStyleFromCode(joinCode), HasFill: hasFill,
	}
	if joinStyleFromCode(joinCode) == ast.JoinMiter {
		limit, err := r.U16LE()
		if err != nil {
			return ast.MorphLineStyle{}, err
		}
		ls.MiterLimit = limit
	}
	if hasFill {
		fs, err := morphFillStyle(r)
		if err != nil {
			return ast.MorphLineStyle{}, err
		}
		ls.Fill = fs
	} else {
		c, err := record.StraightSRgba8(r)
		if err != nil {
			return ast.MorphLineStyle{}, err
		}
		mc, err := record.StraightSRgba8(r)
		if err != nil {
			return ast.MorphLineStyle{}, err
		}
		ls.Color, ls.MorphColor = c, mc
	}
	return ls, nil
}

func morphLineStyleList(r *bitstream.Reader, version ast.MorphShapeVersion) ([]ast.MorphLineStyle, error) {
	n, err := r.U8()
	if err != nil {
		return nil, err
	}
	count := int(n)
	if n == 0xFF {
		wide, err := r.U16LE()
		if err != nil {
			return nil, err
		}
		count = int(wide)
	}
	styles := make([]ast.MorphLineStyle, 0, count)
	for i := 0; i < count; i++ {
		ls, err := morphLineStyle(r, version)
		if err != nil {
			return nil, err
		}
		styles = append(styles, ls)
	}
	return styles, nil
}

// Styles reads the top-level fill/line style list of a morph shape, in the
// same form later records within Parse expect to inherit as fill_bits/
// line_bits.
func Styles(r *bitstream.Reader, version ast.MorphShapeVersion) (ast.MorphShapeStyles, error) {
	return morphStyles(r, version)
}

// morphStyles reads a morph fill/line style list pair. It is used both at
// the top of a morph shape body and whenever a style-change record
// introduces a new-styles block mid-stream.
func morphStyles(r *bitstream.Reader, version ast.MorphShapeVersion) (ast.MorphShapeStyles, error) {
	fills, err := morphFillStyleList(r)
	if err != nil {
		return ast.MorphShapeStyles{}, err
	}
	lines, err := morphLineStyleList(r, version)
	if err != nil {
		return ast.MorphShapeStyles{}, err
	}
	fillBits, err := r.Bits(4)
	if err != nil {
		return ast.MorphShapeStyles{}, err
	}
	lineBits, err := r.Bits(4)
	if err != nil {
		return ast.MorphShapeStyles{}, err
	}
	return ast.MorphShapeStyles{
		FillStyles: fills, LineStyles: lines,
		FillBits: uint8(fillBits), LineBits: uint8(lineBits),
	}, nil
}
