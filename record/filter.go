package record

import (
	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/bitstream"
)

// FilterList reads a byte-aligned filter count followed by that many
// filters.
func FilterList(r *bitstream.Reader) ([]ast.Filter, error) {
	count, err := r.U8()
	if err != nil {
		return nil, err
	}
	filters := make([]ast.Filter, 0, count)
	for i := uint8(0); i < count; i++ {
		f, err := Filter(r)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return filters, nil
}

func readGradientColors(r *bitstream.Reader, n int) ([]ast.ColorStop, error) {
	colors := make([]ast.StraightSRgba8, n)
	for i := range colors {
		c, err := StraightSRgba8(r)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	stops := make([]ast.ColorStop, n)
	for i := range stops {
		ratio, err := r.U8()
		if err != nil {
			return nil, err
		}
		stops[i] = ast.ColorStop{Ratio: ratio, Color: colors[i]}
	}
	return stops, nil
}

// Filter reads one filter record: a 1-byte code selecting its variant,
// followed by that variant's fixed field schedule.
func Filter(r *bitstream.Reader) (ast.Filter, error) {
	code, err := r.U8()
	if err != nil {
		return ast.Filter{}, err
	}

	switch code {
	case 0: // DropShadow
		color, err := StraightSRgba8(r)
		if err != nil {
			return ast.Filter{}, err
		}
		blurX, err := r.Fixed16LE()
		if err != nil {
			return ast.Filter{}, err
		}
		blurY, err := r.Fixed16LE()
		if err != nil {
			return ast.Filter{}, err
		}
		angle, err := r.Fixed16LE()
		if err != nil {
			return ast.Filter{}, err
		}
		distance, err := r.Fixed16LE()
		if err != nil {
			return ast.Filter{}, err
		}
		strength, err := r.Fixed8LE()
		if err != nil {
			return ast.Filter{}, err
		}
		inner, err := r.Bool()
		if err != nil {
			return ast.Filter{}, err
		}
		knockout, err := r.Bool()
		if err != nil {
			return ast.Filter{}, err
		}
		compositeSource, err := r.Bool()
		if err != nil {
			return ast.Filter{}, err
		}
		passes, err := r.Bits(5)
		if err != nil {
			return ast.Filter{}, err
		}
		return ast.Filter{
			ID: ast.FilterDropShadow, ShadowColor: color,
			BlurX: blurX, BlurY: blurY, Angle: angle, Distance: distance,
			Strength: strength, Inner: inner, Knockout: knockout,
			CompositeSource: compositeSource, Passes: uint8(passes),
		}, nil

	case 1: // Blur
		blurX, err := r.Fixed16LE()
		if err != nil {
			return ast.Filter{}, err
		}
		blurY, err := r.Fixed16LE()
		if err != nil {
			return ast.Filter{}, err
		}
		passes, err := r.Bits(5)
		if err != nil {
			return ast.Filter{}, err
		}
		if _, err := r.Bits(3); err != nil { // reserved
			return ast.Filter{}, err
		}
		return ast.Filter{ID: ast.FilterBlur, BlurX: blurX, BlurY: blurY, Passes: uint8(passes)}, nil

	case 2: // Glow
		color, err := StraightSRgba8(r)
		if err != nil {
			return ast.Filter{}, err
		}
		blurX, err := r.Fixed16LE()
		if err != nil {
			return ast.Filter{}, err
		}
		blurY, err := r.Fixed16LE()
		if err != nil {
			return ast.Filter{}, err
		}
		strength, err := r.Fixed8LE()
		if err != nil {
			return ast.Filter{}, err
		}
		inner, err := r.Bool()
		if err != nil {
			return ast.Filter{}, err
		}
		knockout, err := r.Bool()
		if err != nil {
			return ast.Filter{}, err
		}
		compositeSource, err := r.Bool()
		if err != nil {
			return ast.Filter{}, err
		}
		passes, err := r.Bits(5)
		if err != nil {
			return ast.Filter{}, err
		}
		return ast.Filter{
			ID: ast.FilterGlow, GlowColor: color, BlurX: blurX, BlurY: blurY,
			Strength: strength, Inner: inner, Knockout: knockout,
			CompositeSource: compositeSource, Passes: uint8(passes),
		}, nil

	case 3, 7: // Bevel, GradientBevel
		var shadowColor, highlightColor ast.StraightSRgba8
		var gradColors []ast.ColorStop
		if code == 3 {
			shadowColor, err = StraightSRgba8(r)
			if err != nil {
				return ast.Filter{}, err
			}
			highlightColor, err = StraightSRgba8(r)
			if err != nil {
				return ast.Filter{}, err
			}
		} else {
			n, err := r.U8()
			if err != nil {
				return ast.Filter{}, err
			}
			gradColors, err = readGradientColors(r, int(n))
			if err != nil {
				return ast.Filter{}, err
			}
		}
		blurX, err := r.Fixed16LE()
		if err != nil {
			return ast.Filter{}, err
		}
		blurY, err := r.Fixed16LE()
		if err != nil {
			return ast.Filter{}, err
		}
		angle, err := r.Fixed16LE()
		if err != nil {
			return ast.Filter{}, err
		}
		distance, err := r.Fixed16LE()
		if err != nil {
			return ast.Filter{}, err
		}
		strength, err := r.Fixed8LE()
		if err != nil {
			return ast.Filter{}, err
		}
		inner, err := r.Bool()
		if err != nil {
			return ast.Filter{}, err
		}
		knockout, err := r.Bool()
		if err != nil {
			return ast.Filter{}, err
		}
		compositeSource, err := r.Bool()
		if err != nil {
			return ast.Filter{}, err
		}
		onTop, err := r.Bool()
		if err != nil {
			return ast.Filter{}, err
		}
		passes, err := r.Bits(4)
		if err != nil {
			return ast.Filter{}, err
		}
		id := ast.FilterBevel
		if code == 7 {
			id = ast.FilterGradientBevel
		}
		return ast.Filter{
			ID: id, ShadowColor: shadowColor, HighlightColor: highlightColor,
			GradientColors: gradColors, BlurX: blurX, BlurY: blurY, Angle: angle,
			Distance: distance, Strength: strength, Inner: inner, Knockout: knockout,
			CompositeSource: compositeSource, OnTop: onTop, Passes: uint8(passes),
		}, nil

	case 4: // GradientGlow
		n, err := r.U8()
		if err != nil {
			return ast.Filter{}, err
		}
		gradColors, err := readGradientColors(r, int(n))
		if err != nil {
			return ast.Filter{}, err
		}
		blurX, err := r.Fixed16LE()
		if err != nil {
			return ast.Filter{}, err
		}
		blurY, err := r.Fixed16LE()
		if err != nil {
			return ast.Filter{}, err
		}
		angle, err := r.Fixed16LE()
		if err != nil {
			return ast.Filter{}, err
		}
		distance, err := r.Fixed16LE()
		if err != nil {
			return ast.Filter{}, err
		}
		strength, err := r.Fixed8LE()
		if err != nil {
			return ast.Filter{}, err
		}
		inner, err := r.Bool()
		if err != nil {
			return ast.Filter{}, err
		}
		knockout, err := r.Bool()
		if err != nil {
			return ast.Filter{}, err
		}
		compositeSource, err := r.Bool()
		if err != nil {
			return ast.Filter{}, err
		}
		onTop, err := r.Bool()
		if err != nil {
			return ast.Filter{}, err
		}
		passes, err := r.Bits(4)
		if err != nil {
			return ast.Filter{}, err
		}
		return ast.Filter{
			ID: ast.FilterGradientGlow, GradientColors: gradColors,
			BlurX: blurX, BlurY: blurY, Angle: angle, Distance: distance,
			Strength: strength, Inner: inner, Knockout: knockout,
			CompositeSource: compositeSource, OnTop: onTop, Passes: uint8(passes),
		}, nil

	case 5: // Convolution
		matrixX, err := r.U8()
		if err != nil {
			return ast.Filter{}, err
		}
		matrixY, err := r.U8()
		if err != nil {
			return ast.Filter{}, err
		}
		divisor, err := r.Float32LE()
		if err != nil {
			return ast.Filter{}, err
		}
		bias, err := r.Float32LE()
		if err != nil {
			return ast.Filter{}, err
		}
		n := int(matrixX) * int(matrixY)
		matrix := make([]float32, n)
		for i := range matrix {
			v, err := r.Float32LE()
			if err != nil {
				return ast.Filter{}, err
			}
			matrix[i] = v
		}
		defaultColor, err := StraightSRgba8(r)
		if err != nil {
			return ast.Filter{}, err
		}
		if _, err := r.Bits(6); err != nil { // reserved
			return ast.Filter{}, err
		}
		clamp, err := r.Bool()
		if err != nil {
			return ast.Filter{}, err
		}
		preserveAlpha, err := r.Bool()
		if err != nil {
			return ast.Filter{}, err
		}
		return ast.Filter{
			ID: ast.FilterConvolution, MatrixX: matrixX, MatrixY: matrixY,
			Divisor: divisor, Bias: bias, Matrix: matrix, DefaultColor: defaultColor,
			Clamp: clamp, PreserveAlpha: preserveAlpha,
		}, nil

	case 6: // ColorMatrix
		var m [20]float32
		for i := range m {
			v, err := r.Float32LE()
			if err != nil {
				return ast.Filter{}, err
			}
			m[i] = v
		}
		return ast.Filter{ID: ast.FilterColorMatrix, ColorMatrix: m}, nil

	default:
		return ast.Filter{}, bitstream.ErrInvalid
	}
}
