package tag

import (
	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/bitstream"
	"github.com/archframe/moviefmt/record"
)

func placeObject(r *bitstream.Reader) (ast.Tag, error) {
	id, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	depth, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	matrix, err := record.Matrix(r)
	if err != nil {
		return nil, err
	}
	var ct *ast.ColorTransform
	if r.Len() > 0 {
		c, err := record.ColorTransform(r, false)
		if err != nil {
			return nil, err
		}
		c.AlphaMult = 256
		ct = &c
	}
	return ast.PlaceObject{CharacterID: id, Depth: depth, Matrix: matrix, ColorTransform: ct}, nil
}

func placeObject2(r *bitstream.Reader, formatVersion uint8) (ast.Tag, error) {
	hasClipActions, err := r.Bool()
	if err != nil {
		return nil, err
	}
	hasClipDepth, err := r.Bool()
	if err != nil {
		return nil, err
	}
	hasName, err := r.Bool()
	if err != nil {
		return nil, err
	}
	hasRatio, err := r.Bool()
	if err != nil {
		return nil, err
	}
	hasColorTransform, err := r.Bool()
	if err != nil {
		return nil, err
	}
	hasMatrix, err := r.Bool()
	if err != nil {
		return nil, err
	}
	hasCharacter, err := r.Bool()
	if err != nil {
		return nil, err
	}
	move, err := r.Bool()
	if err != nil {
		return nil, err
	}

	depth, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	p := ast.PlaceObject2{Move: move, Depth: depth}

	if hasCharacter {
		v, err := r.U16LE()
		if err != nil {
			return ast.PlaceObject2{}, err
		}
		p.CharacterID = &v
	}
	if hasMatrix {
		m, err := record.Matrix(r)
		if err != nil {
			return ast.PlaceObject2{}, err
		}
		p.Matrix = &m
	}
	if hasColorTransform {
		c, err := record.ColorTransform(r, true)
		if err != nil {
			return ast.PlaceObject2{}, err
		}
		p.ColorTransform = &c
	}
	if hasRatio {
		v, err := r.U16LE()
		if err != nil {
			return ast.PlaceObject2{}, err
		}
		p.Ratio = &v
	}
	if hasName {
		s, err := r.NulString()
		if err != nil {
			return ast.PlaceObject2{}, err
		}
		p.Name = &s
	}
	if hasClipDepth {
		v, err := r.U16LE()
		if err != nil {
			return ast.PlaceObject2{}, err
		}
		p.ClipDepth = &v
	}
	if hasClipActions {
		actions, err := record.ClipActionString(r, formatVersion >= 6)
		if err != nil {
			return ast.PlaceObject2{}, err
		}
		p.ClipActions = actions
	}
	return p, nil
}

func placeObject3(r *bitstream.Reader, formatVersion uint8) (ast.Tag, error) {
	hasClipActions, err := r.Bool()
	if err != nil {
		return nil, err
	}
	hasClipDepth, err := r.Bool()
	if err != nil {
		return nil, err
	}
	hasName, err := r.Bool()
	if err != nil {
		return nil, err
	}
	hasRatio, err := r.Bool()
	if err != nil {
		return nil, err
	}
	hasColorTransform, err := r.Bool()
	if err != nil {
		return nil, err
	}
	hasMatrix, err := r.Bool()
	if err != nil {
		return nil, err
	}
	hasCharacter, err := r.Bool()
	if err != nil {
		return nil, err
	}
	move, err := r.Bool()
	if err != nil {
		return nil, err
	}
	if _, err := r.Bool(); err != nil { // reserved
		return nil, err
	}
	hasBackgroundColor, err := r.Bool()
	if err != nil {
		return nil, err
	}
	hasVisible, err := r.Bool()
	if err != nil {
		return nil, err
	}
	hasImage, err := r.Bool()
	if err != nil {
		return nil, err
	}
	hasClassName, err := r.Bool()
	if err != nil {
		return nil, err
	}
	hasCacheAsBitmap, err := r.Bool()
	if err != nil {
		return nil, err
	}
	hasBlendMode, err := r.Bool()
	if err != nil {
		return nil, err
	}
	hasFilterList, err := r.Bool()
	if err != nil {
		return nil, err
	}

	depth, err := r.U16LE()
	if err != nil {
		return nil, err
	}

	p3 := ast.PlaceObject3{}
	p3.Move = move
	p3.Depth = depth

	if hasClassName || (hasImage && hasCharacter) {
		s, err := r.NulString()
		if err != nil {
			return nil, err
		}
		p3.ClassName = &s
	}
	if hasCharacter {
		v, err := r.U16LE()
		if err != nil {
			return nil, err
		}
		p3.CharacterID = &v
	}
	if hasMatrix {
		m, err := record.Matrix(r)
		if err != nil {
			return nil, err
		}
		p3.Matrix = &m
	}
	if hasColorTransform {
		c, err := record.ColorTransform(r, true)
		if err != nil {
			return nil, err
		}
		p3.ColorTransform = &c
	}
	if hasRatio {
		v, err := r.U16LE()
		if err != nil {
			return nil, err
		}
		p3.Ratio = &v
	}
	if hasName {
		s, err := r.NulString()
		if err != nil {
			return nil, err
		}
		p3.Name = &s
	}
	if hasClipDepth {
		v, err := r.U16LE()
		if err != nil {
			return nil, err
		}
		p3.ClipDepth = &v
	}
	if hasFilterList {
		filters, err := record.FilterList(r)
		if err != nil {
			return nil, err
		}
		p3.Filters = filters
	}
	if hasBlendMode {
		v, err := r.U8()
		if err != nil {
			return nil, err
		}
		p3.BlendMode = v
	}
	if hasCacheAsBitmap {
		v, err := r.U8()
		if err != nil {
			return nil, err
		}
		p3.BitmapCache = v
	}
	if hasVisible {
		v, err := r.U8()
		if err != nil {
			return nil, err
		}
		vis := v != 0
		p3.Visible = &vis
	}
	if hasBackgroundColor {
		bg, err := record.StraightSRgba8(r)
		if err != nil {
			return nil, err
		}
		p3.BackgroundColor = &bg
	}
	if hasClipActions {
		actions, err := record.ClipActionString(r, formatVersion >= 6)
		if err != nil {
			return nil, err
		}
		p3.ClipActions = actions
	}
	return p3, nil
}

func removeObject(r *bitstream.Reader) (ast.Tag, error) {
	id, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	depth, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	return ast.RemoveObject{CharacterID: id, Depth: depth}, nil
}

func removeObject2(r *bitstream.Reader) (ast.Tag, error) {
	depth, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	return ast.RemoveObject2{Depth: depth}, nil
}
