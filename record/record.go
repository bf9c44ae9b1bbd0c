// Package record implements the structural decoders shared across tag
// bodies: rectangles, matrices, color transforms, colors, gradients,
// filters, sound info, and clip-event/clip-action strings. Every decoder
// here is a small, pure function over a *bitstream.Reader; none retain
// state between calls.
package record

import (
	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/bitstream"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "record: " + string(e) }

// Rect reads a packed rectangle: a 5-bit width n, then four signed n-bit
// bounds in order xMin, xMax, yMin, yMax.
func Rect(r *bitstream.Reader) (ast.Rect, error) {
	n, err := r.Bits(5)
	if err != nil {
		return ast.Rect{}, err
	}
	xMin, err := r.SignedBits(uint(n))
	if err != nil {
		return ast.Rect{}, err
	}
	xMax, err := r.SignedBits(uint(n))
	if err != nil {
		return ast.Rect{}, err
	}
	yMin, err := r.SignedBits(uint(n))
	if err != nil {
		return ast.Rect{}, err
	}
	yMax, err := r.SignedBits(uint(n))
	if err != nil {
		return ast.Rect{}, err
	}
	return ast.Rect{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}, nil
}

// Matrix reads a packed 2D affine transform: an optional scale pair, an
// optional skew/rotate pair, then a mandatory translate pair.
func Matrix(r *bitstream.Reader) (ast.Matrix, error) {
	m := ast.Identity()

	hasScale, err := r.Bool()
	if err != nil {
		return m, err
	}
	if hasScale {
		n, err := r.Bits(5)
		if err != nil {
			return m, err
		}
		sx, err := r.SignedFixed16Bits(uint(n))
		if err != nil {
			return m, err
		}
		sy, err := r.SignedFixed16Bits(uint(n))
		if err != nil {
			return m, err
		}
		m.ScaleX, m.ScaleY = sx, sy
	}

	hasSkew, err := r.Bool()
	if err != nil {
		return m, err
	}
	if hasSkew {
		n, err := r.Bits(5)
		if err != nil {
			return m, err
		}
		s0, err := r.SignedFixed16Bits(uint(n))
		if err != nil {
			return m, err
		}
		s1, err := r.SignedFixed16Bits(uint(n))
		if err != nil {
			return m, err
		}
		m.RotateSkew0, m.RotateSkew1 = s0, s1
	}

	n, err := r.Bits(5)
	if err != nil {
		return m, err
	}
	tx, err := r.SignedBits(uint(n))
	if err != nil {
		return m, err
	}
	ty, err := r.SignedBits(uint(n))
	if err != nil {
		return m, err
	}
	m.TranslateX, m.TranslateY = tx, ty
	return m, nil
}

// ColorTransform reads a packed additive/multiplicative color transform.
// withAlpha selects whether a fourth (alpha) channel is present.
func ColorTransform(r *bitstream.Reader, withAlpha bool) (ast.ColorTransform, error) {
	ct := ast.ColorTransform{RedMult: 256, GreenMult: 256, BlueMult: 256, AlphaMult: 256}

	hasAdd, err := r.Bool()
	if err != nil {
		return ct, err
	}
	hasMult, err := r.Bool()
	if err != nil {
		return ct, err
	}
	n, err := r.Bits(4)
	if err != nil {
		return ct, err
	}

	if hasMult {
		rm, err := r.SignedFixed8Bits(uint(n))
		if err != nil {
			return ct, err
		}
		gm, err := r.SignedFixed8Bits(uint(n))
		if err != nil {
			return ct, err
		}
		bm, err := r.SignedFixed8Bits(uint(n))
		if err != nil {
			return ct, err
		}
		ct.RedMult, ct.GreenMult, ct.BlueMult = rm, gm, bm
		if withAlpha {
			am, err := r.SignedFixed8Bits(uint(n))
			if err != nil {
				return ct, err
			}
			ct.AlphaMult = am
		}
	}
	if hasAdd {
		ra, err := r.SignedBits(uint(n))
		if err != nil {
			return ct, err
		}
		ga, err := r.SignedBits(uint(n))
		if err != nil {
			return ct, err
		}
		ba, err := r.SignedBits(uint(n))
		if err != nil {
			return ct, err
		}
		ct.RedAdd, ct.GreenAdd, ct.BlueAdd = int16(ra), int16(ga), int16(ba)
		if withAlpha {
			aa, err := r.SignedBits(uint(n))
			if err != nil {
				return ct, err
			}
			ct.AlphaAdd = int16(aa)
		}
	}
	return ct, nil
}

// SRgb8 reads a byte-aligned opaque 24-bit color.
func SRgb8(r *bitstream.Reader) (ast.SRgb8, error) {
	red, err := r.U8()
	if err != nil {
		return ast.SRgb8{}, err
	}
	g, err := r.U8()
	if err != nil {
		return ast.SRgb8{}, err
	}
	b, err := r.U8()
	if err != nil {
		return ast.SRgb8{}, err
	}
	return ast.SRgb8{R: red, G: g, B: b}, nil
}

// StraightSRgba8 reads a byte-aligned non-premultiplied 32-bit color in
// R,G,B,A channel order.
func StraightSRgba8(r *bitstream.Reader) (ast.StraightSRgba8, error) {
	red, err := r.U8()
	if err != nil {
		return ast.StraightSRgba8{}, err
	}
	g, err := r.U8()
	if err != nil {
		return ast.StraightSRgba8{}, err
	}
	b, err := r.U8()
	if err != nil {
		return ast.StraightSRgba8{}, err
	}
	a, err := r.U8()
	if err != nil {
		return ast.StraightSRgba8{}, err
	}
	return ast.StraightSRgba8{R: red, G: g, B: b, A: a}, nil
}

// Color reads either an RGB or RGBA color depending on withAlpha, returning
// it normalized to StraightSRgba8 (alpha forced to 255 for the RGB case).
func Color(r *bitstream.Reader, withAlpha bool) (ast.StraightSRgba8, error) {
	if withAlpha {
		return StraightSRgba8(r)
	}
	c, err := SRgb8(r)
	if err != nil {
		return ast.StraightSRgba8{}, err
	}
	return ast.StraightSRgba8{R: c.R, G: c.G, B: c.B, A: 255}, nil
}
