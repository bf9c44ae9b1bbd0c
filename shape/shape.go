package shape

import (
	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/bitstream"
)

// recordString is the shared bit-aligned loop used by both top-level shapes
// and glyphs. fillBits/lineBits are mutated in place whenever a style
// change record carries a "new styles" block.
func recordString(r *bitstream.Reader, version ast.ShapeVersion, fillBits, lineBits *uint8) ([]ast.ShapeRecord, error) {
	var records []ast.ShapeRecord
	for {
		isEdge, err := r.Bool()
		if err != nil {
			return nil, err
		}
		if isEdge {
			rec, err := parseEdge(r)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
			continue
		}

		hasNewStyles, err := r.Bool()
		if err != nil {
			return nil, err
		}
		changeLineStyle, err := r.Bool()
		if err != nil {
			return nil, err
		}
		changeRightFill, err := r.Bool()
		if err != nil {
			return nil, err
		}
		changeLeftFill, err := r.Bool()
		if err != nil {
			return nil, err
		}
		hasMoveTo, err := r.Bool()
		if err != nil {
			return nil, err
		}
		if !hasNewStyles && !changeLineStyle && !changeRightFill && !changeLeftFill && !hasMoveTo {
			return records, nil
		}

		rec := ast.ShapeRecord{
			Kind: ast.RecordStyleChange, HasNewStyles: hasNewStyles,
			ChangeLineStyle: changeLineStyle, ChangeRightFill: changeRightFill,
			ChangeLeftFill: changeLeftFill, HasMoveTo: hasMoveTo,
		}
		if hasMoveTo {
			n, err := r.Bits(5)
			if err != nil {
				return nil, err
			}
			x, err := r.SignedBits(uint(n))
			if err != nil {
				return nil, err
			}
			y, err := r.SignedBits(uint(n))
			if err != nil {
				return nil, err
			}
			rec.MoveTo = ast.Vec2{X: x, Y: y}
		}
		if changeLeftFill {
			v, err := r.Bits(uint(*fillBits))
			if err != nil {
				return nil, err
			}
			rec.LeftFill = v
		}
		if changeRightFill {
			v, err := r.Bits(uint(*fillBits))
			if err != nil {
				return nil, err
			}
			rec.RightFill = v
		}
		if changeLineStyle {
			v, err := r.Bits(uint(*lineBits))
			if err != nil {
				return nil, err
			}
			rec.LineStyleIndex = v
		}
		if hasNewStyles {
			styles, err := Styles(r, version)
			if err != nil {
				return nil, err
			}
			rec.NewStyles = &styles
			*fillBits = styles.FillBits
			*lineBits = styles.LineBits
		}
		records = append(records, rec)
	}
}

func parseEdge(r *bitstream.Reader) (ast.ShapeRecord, error) {
	isStraight, err := r.Bool()
	if err != nil {
		return ast.ShapeRecord{}, err
	}
	nBits, err := r.Bits(4)
	if err != nil {
		return ast.ShapeRecord{}, err
	}
	n := uint(nBits) + 2

	if !isStraight {
		cx, err := r.SignedBits(n)
		if err != nil {
			return ast.ShapeRecord{}, err
		}
		cy, err := r.SignedBits(n)
		if err != nil {
			return ast.ShapeRecord{}, err
		}
		ax, err := r.SignedBits(n)
		if err != nil {
			return ast.ShapeRecord{}, err
		}
		ay, err := r.SignedBits(n)
		if err != nil {
			return ast.ShapeRecord{}, err
		}
		return ast.ShapeRecord{
			Kind:         ast.RecordCurvedEdge,
			Delta:        ast.Vec2{X: cx + ax, Y: cy + ay},
			ControlDelta: ast.Vec2{X: cx, Y: cy},
		}, nil
	}

	isDiagonal, err := r.Bool()
	if err != nil {
		return ast.ShapeRecord{}, err
	}
	isVertical := false
	if !isDiagonal {
		isVertical, err = r.Bool()
		if err != nil {
			return ast.ShapeRecord{}, err
		}
	}
	var dx, dy int32
	if isDiagonal || !isVertical {
		dx, err = r.SignedBits(n)
		if err != nil {
			return ast.ShapeRecord{}, err
		}
	}
	if isDiagonal || isVertical {
		dy, err = r.SignedBits(n)
		if err != nil {
			return ast.ShapeRecord{}, err
		}
	}
	return ast.ShapeRecord{Kind: ast.RecordStraightEdge, Delta: ast.Vec2{X: dx, Y: dy}}, nil
}

// Shape reads a full top-level shape: its styles followed by its bit-aligned
// record string. The reader must be byte-aligned on entry.
func Shape(r *bitstream.Reader, version ast.ShapeVersion) (ast.Shape, error) {
	styles, err := Styles(r, version)
	if err != nil {
		return ast.Shape{}, err
	}
	fillBits, lineBits := styles.FillBits, styles.LineBits
	records, err := recordString(r, version, &fillBits, &lineBits)
	if err != nil {
		return ast.Shape{}, err
	}
	return ast.Shape{Styles: styles, Records: records}, nil
}

// Glyph reads a glyph: an implicit, empty style environment with its own
// 4-bit fill_bits/line_bits pair, followed by a record string.
func Glyph(r *bitstream.Reader) (ast.Glyph, error) {
	fillBitsRaw, err := r.Bits(4)
	if err != nil {
		return ast.Glyph{}, err
	}
	lineBitsRaw, err := r.Bits(4)
	if err != nil {
		return ast.Glyph{}, err
	}
	fillBits, lineBits := uint8(fillBitsRaw), uint8(lineBitsRaw)
	records, err := recordString(r, ast.ShapeVersion1, &fillBits, &lineBits)
	if err != nil {
		return ast.Glyph{}, err
	}
	return ast.Glyph{Records: records}, nil
}

// GlyphTable reads glyphCount glyphs from an offset-indexed table: an array
// of glyphCount offsets (16- or 32-bit, selected by wideOffsets) followed by
// an end offset, all measured from the start of data. Each glyph is parsed
// from its own [offsets[i], offsets[i+1]) slice. It returns the glyphs and
// the end offset, so the caller can advance its own cursor past the whole
// table (the glyph data between the last glyph's end and the stored end
// offset, if any, is not otherwise accounted for).
func GlyphTable(data []byte, glyphCount int, wideOffsets bool) ([]ast.Glyph, int, error) {
	r := bitstream.NewReader(data)
	offsets := make([]int, glyphCount+1)
	for i := range offsets {
		if wideOffsets {
			v, err := r.U32LE()
			if err != nil {
				return nil, 0, err
			}
			offsets[i] = int(v)
		} else {
			v, err := r.U16LE()
			if err != nil {
				return nil, 0, err
			}
			offsets[i] = int(v)
		}
	}

	glyphs := make([]ast.Glyph, 0, glyphCount)
	for i := 0; i < glyphCount; i++ {
		start, end := offsets[i], offsets[i+1]
		if end < start || end > len(data) {
			return nil, 0, bitstream.ErrInvalid
		}
		gr := bitstream.NewReader(data[start:end])
		g, err := Glyph(gr)
		if err != nil {
			return nil, 0, err
		}
		glyphs = append(glyphs, g)
	}

	return glyphs, offsets[glyphCount], nil
}

// GlyphFontV1 reads a DefineFont (version 1) glyph table, whose glyph count
// is not stored explicitly: the first (16-bit) offset divides by 2 to give
// the number of glyphs directly, since the offset table holds exactly one
// entry per glyph and nothing else. There is no trailing end-offset entry;
// the last glyph's data simply runs to the end of the buffer.
func GlyphFontV1(data []byte) ([]ast.Glyph, error) {
	r := bitstream.NewReader(data)
	firstOffset, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	glyphCount := int(firstOffset) / 2
	if glyphCount <= 0 {
		return nil, bitstream.ErrInvalid
	}
	offsets := make([]int, glyphCount)
	offsets[0] = int(firstOffset)
	for i := 1; i < glyphCount; i++ {
		v, err := r.U16LE()
		if err != nil {
			return nil, err
		}
		offsets[i] = int(v)
	}
	glyphs := make([]ast.Glyph, 0, glyphCount)
	for i := 0; i < glyphCount; i++ {
		start := offsets[i]
		end := len(data)
		if i+1 < glyphCount {
			end = offsets[i+1]
		}
		if end < start || end > len(data) {
			return nil, bitstream.ErrInvalid
		}
		gr := bitstream.NewReader(data[start:end])
		g, err := Glyph(gr)
		if err != nil {
			return nil, err
		}
		glyphs = append(glyphs, g)
	}
	return glyphs, nil
}
