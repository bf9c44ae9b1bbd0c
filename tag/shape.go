package tag

import (
	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/bitstream"
	"github.com/archframe/moviefmt/morphshape"
	"github.com/archframe/moviefmt/record"
	"github.com/archframe/moviefmt/shape"
)

func defineShape(r *bitstream.Reader, version ast.ShapeVersion) (ast.Tag, error) {
	id, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	bounds, err := record.Rect(r)
	if err != nil {
		return nil, err
	}

	var edgeBounds *ast.Rect
	var hasFillWinding, hasNonScalingStrokes, hasScalingStrokes bool
	if version >= ast.ShapeVersion4 {
		eb, err := record.Rect(r)
		if err != nil {
			return nil, err
		}
		edgeBounds = &eb
		if _, err := r.Bits(5); err != nil { // reserved
			return nil, err
		}
		hasFillWinding, err = r.Bool()
		if err != nil {
			return nil, err
		}
		hasNonScalingStrokes, err = r.Bool()
		if err != nil {
			return nil, err
		}
		hasScalingStrokes, err = r.Bool()
		if err != nil {
			return nil, err
		}
	}
	r.Align()

	sh, err := shape.Shape(r, version)
	if err != nil {
		return nil, err
	}
	return ast.DefineShape{
		Version: version, ID: id, Bounds: bounds, Shape: sh,
		EdgeBounds: edgeBounds, HasFillWinding: hasFillWinding,
		HasNonScalingStrokes: hasNonScalingStrokes, HasScalingStrokes: hasScalingStrokes,
	}, nil
}

func defineMorphShape(r *bitstream.Reader, version ast.MorphShapeVersion) (ast.Tag, error) {
	id, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	bounds, err := record.Rect(r)
	if err != nil {
		return nil, err
	}
	morphBounds, err := record.Rect(r)
	if err != nil {
		return nil, err
	}

	var edgeBounds, morphEdgeBounds *ast.Rect
	var hasNonScalingStrokes, hasScalingStrokes bool
	if version >= ast.MorphShapeVersion2 {
		eb, err := record.Rect(r)
		if err != nil {
			return nil, err
		}
		edgeBounds = &eb
		meb, err := record.Rect(r)
		if err != nil {
			return nil, err
		}
		morphEdgeBounds = &meb
		if _, err := r.Bits(6); err != nil { // reserved
			return nil, err
		}
		hasNonScalingStrokes, err = r.Bool()
		if err != nil {
			return nil, err
		}
		hasScalingStrokes, err = r.Bool()
		if err != nil {
			return nil, err
		}
	}
	r.Align()

	ms, err := morphshape.Parse(r, version)
	if err != nil {
		return nil, err
	}
	return ast.DefineMorphShape{
		Version: version, ID: id, Bounds: bounds, MorphBounds: morphBounds,
		EdgeBounds: edgeBounds, MorphEdgeBounds: morphEdgeBounds,
		HasNonScalingStrokes: hasNonScalingStrokes, HasScalingStrokes: hasScalingStrokes,
		MorphShape: ms,
	}, nil
}
