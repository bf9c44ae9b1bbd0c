package record

import (
	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/bitstream"
)

func spreadModeFromCode(code uint32) (ast.SpreadMode, error) {
	switch code {
	case 0:
		return ast.SpreadPad, nil
	case 1:
		return ast.SpreadReflect, nil
	case 2:
		return ast.SpreadRepeat, nil
	default:
		return 0, bitstream.ErrInvalid
	}
}

func colorSpaceFromCode(code uint32) (ast.ColorSpace, error) {
	switch code {
	case 0:
		return ast.ColorSpaceSRgb, nil
	case 1:
		return ast.ColorSpaceLinearRgb, nil
	default:
		return 0, bitstream.ErrInvalid
	}
}

// Gradient reads a byte-aligned simple gradient: a flags byte (spread mode,
// color space, stop count) followed by that many color stops.
func Gradient(r *bitstream.Reader, withAlpha bool) (ast.Gradient, error) {
	r.Align()
	spreadCode, err := r.Bits(2)
	if err != nil {
		return ast.Gradient{}, err
	}
	spaceCode, err := r.Bits(2)
	if err != nil {
		return ast.Gradient{}, err
	}
	count, err := r.Bits(4)
	if err != nil {
		return ast.Gradient{}, err
	}
	spread, err := spreadModeFromCode(spreadCode)
	if err != nil {
		return ast.Gradient{}, err
	}
	space, err := colorSpaceFromCode(spaceCode)
	if err != nil {
		return ast.Gradient{}, err
	}
	r.Align()

	stops := make([]ast.ColorStop, 0, count)
	for i := uint32(0); i < count; i++ {
		ratio, err := r.U8()
		if err != nil {
			return ast.Gradient{}, err
		}
		color, err := Color(r, withAlpha)
		if err != nil {
			return ast.Gradient{}, err
		}
		stops = append(stops, ast.ColorStop{Ratio: ratio, Color: color})
	}
	return ast.Gradient{Spread: spread, Space: space, Colors: stops}, nil
}

// MorphGradient reads the morph-shape counterpart of Gradient: the same
// flags/count header, but each stop carries a start and an end ratio/color
// pair.
func MorphGradient(r *bitstream.Reader, withAlpha bool) (ast.MorphGradient, error) {
	r.Align()
	spreadCode, err := r.Bits(2)
	if err != nil {
		return ast.MorphGradient{}, err
	}
	spaceCode, err := r.Bits(2)
	if err != nil {
		return ast.MorphGradient{}, err
	}
	count, err := r.Bits(4)
	if err != nil {
		return ast.MorphGradient{}, err
	}
	spread, err := spreadModeFromCode(spreadCode)
	if err != nil {
		return ast.MorphGradient{}, err
	}
	space, err := colorSpaceFromCode(spaceCode)
	if err != nil {
		return ast.MorphGradient{}, err
	}
	r.Align()

	stops := make([]ast.MorphColorStop, 0, count)
	for i := uint32(0); i < count; i++ {
		ratio, err := r.U8()
		if err != nil {
			return ast.MorphGradient{}, err
		}
		color, err := Color(r, withAlpha)
		if err != nil {
			return ast.MorphGradient{}, err
		}
		morphRatio, err := r.U8()
		if err != nil {
			return ast.MorphGradient{}, err
		}
		morphColor, err := Color(r, withAlpha)
		if err != nil {
			return ast.MorphGradient{}, err
		}
		stops = append(stops, ast.MorphColorStop{
			Ratio: ratio, Color: color,
			MorphRatio: morphRatio, MorphColor: morphColor,
		})
	}
	return ast.MorphGradient{Spread: spread, Space: space, Colors: stops}, nil
}
