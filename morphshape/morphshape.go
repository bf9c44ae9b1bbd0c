// Package morphshape implements the morph-shape decoder: two synchronized
// shape record strings, a start and an end, zipped into a single merged
// record sequence.
package morphshape

import (
	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/bitstream"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "morphshape: " + string(e) }

// startRecord mirrors ast.ShapeRecord but is produced by this package's own
// bit-level loop rather than shared with the shape package, since morph
// style changes carry no line-style-index defaulting quirks the plain
// shape decoder has no reason to expose.
type startRecord struct {
	kind ast.ShapeRecordKind

	delta        ast.Vec2
	controlDelta ast.Vec2

	hasNewStyles    bool
	changeLineStyle bool
	changeRightFill bool
	changeLeftFill  bool
	hasMoveTo       bool
	moveTo          ast.Vec2
	leftFill        uint32
	rightFill       uint32
	lineStyleIndex  uint32
	newStyles       *ast.MorphShapeStyles
}

func parseRecords(r *bitstream.Reader, fillBits, lineBits *uint8, version ast.MorphShapeVersion) ([]startRecord, error) {
	var records []startRecord
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

		rec := startRecord{
			kind: ast.RecordStyleChange, hasNewStyles: hasNewStyles,
			changeLineStyle: changeLineStyle, changeRightFill: changeRightFill,
			changeLeftFill: changeLeftFill, hasMoveTo: hasMoveTo,
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
			rec.moveTo = ast.Vec2{X: x, Y: y}
		}
		if changeLeftFill {
			v, err := r.Bits(uint(*fillBits))
			if err != nil {
				return nil, err
			}
			rec.leftFill = v
		}
		if changeRightFill {
			v, err := r.Bits(uint(*fillBits))
			if err != nil {
				return nil, err
			}
			rec.rightFill = v
		}
		if changeLineStyle {
			v, err := r.Bits(uint(*lineBits))
			if err != nil {
				return nil, err
			}
			rec.lineStyleIndex = v
		}
		if hasNewStyles {
			styles, err := morphStyles(r, version)
			if err != nil {
				return nil, err
			}
			rec.newStyles = &styles
			*fillBits = styles.FillBits
			*lineBits = styles.LineBits
		}
		records = append(records, rec)
	}
}

func parseEdge(r *bitstream.Reader) (startRecord, error) {
	isStraight, err := r.Bool()
	if err != nil {
		return startRecord{}, err
	}
	nBits, err := r.Bits(4)
	if err != nil {
		return startRecord{}, err
	}
	n := uint(nBits) + 2

	if !isStraight {
		cx, err := r.SignedBits(n)
		if err != nil {
			return startRecord{}, err
		}
		cy, err := r.SignedBits(n)
		if err != nil {
			return startRecord{}, err
		}
		ax, err := r.SignedBits(n)
		if err != nil {
			return startRecord{}, err
		}
		ay, err := r.SignedBits(n)
		if err != nil {
			return startRecord{}, err
		}
		return startRecord{
			kind:         ast.RecordCurvedEdge,
			delta:        ast.Vec2{X: cx + ax, Y: cy + ay},
			controlDelta: ast.Vec2{X: cx, Y: cy},
		}, nil
	}

	isDiagonal, err := r.Bool()
	if err != nil {
		return startRecord{}, err
	}
	isVertical := false
	if !isDiagonal {
		isVertical, err = r.Bool()
		if err != nil {
			return startRecord{}, err
		}
	}
	var dx, dy int32
	if isDiagonal || !isVertical {
		dx, err = r.SignedBits(n)
		if err != nil {
			return startRecord{}, err
		}
	}
	if isDiagonal || isVertical {
		dy, err = r.SignedBits(n)
		if err != nil {
			return startRecord{}, err
		}
	}
	return startRecord{kind: ast.RecordStraightEdge, delta: ast.Vec2{X: dx, Y: dy}}, nil
}

// endEdge is identical in shape to parseEdge's return but kept distinct to
// read end-record deltas without attaching start-only fields.
func endEdge(r *bitstream.Reader) (ast.Vec2, ast.Vec2, ast.ShapeRecordKind, error) {
	rec, err := parseEdge(r)
	if err != nil {
		return ast.Vec2{}, ast.Vec2{}, 0, err
	}
	return rec.delta, rec.controlDelta, rec.kind, nil
}

// Parse reads a full morph shape body: the skipped end-offset, the top-level
// style arrays, the start record string, the end styles' fill_bits/
// line_bits, the end record string, and the zip merging both into
// MorphShapeRecords. The reader must be byte-aligned on entry (the caller
// has already consumed the tag's leading id/bounds fields).
func Parse(r *bitstream.Reader, version ast.MorphShapeVersion) (ast.MorphShape, error) {
	if err := r.Skip(4); err != nil { // offset to end records; not validated
		return ast.MorphShape{}, err
	}

	startStyles, err := morphStyles(r, version)
	if err != nil {
		return ast.MorphShape{}, err
	}

	fillBits, lineBits := startStyles.FillBits, startStyles.LineBits
	startRecs, err := parseRecords(r, &fillBits, &lineBits, version)
	if err != nil {
		return ast.MorphShape{}, err
	}

	endFillBitsRaw, err := r.Bits(4)
	if err != nil {
		return ast.MorphShape{}, err
	}
	endLineBitsRaw, err := r.Bits(4)
	if err != nil {
		return ast.MorphShape{}, err
	}
	endFillBits, endLineBits := uint8(endFillBitsRaw), uint8(endLineBitsRaw)

	merged := make([]ast.MorphShapeRecord, 0, len(startRecs))
	for _, sr := range startRecs {
		if sr.kind == ast.RecordStyleChange && !sr.hasMoveTo {
			merged = append(merged, ast.MorphShapeRecord{
				Kind: ast.RecordStyleChange, HasNewStyles: sr.hasNewStyles,
				ChangeLineStyle: sr.changeLineStyle, ChangeRightFill: sr.changeRightFill,
				ChangeLeftFill: sr.changeLeftFill, LeftFill: sr.leftFill,
				RightFill: sr.rightFill, LineStyleIndex: sr.lineStyleIndex,
				NewStyles: sr.newStyles,
			})
			continue
		}

		isEdge, err := r.Bool()
		if err != nil {
			return ast.MorphShape{}, err
		}
		if isEdge != (sr.kind != ast.RecordStyleChange) {
			return ast.MorphShape{}, bitstream.ErrInvalid
		}
		if isEdge {
			delta, controlDelta, kind, err := endEdge(r)
			if err != nil {
				return ast.MorphShape{}, err
			}
			if kind != sr.kind {
				return ast.MorphShape{}, bitstream.ErrInvalid
			}
			merged = append(merged, ast.MorphShapeRecord{
				Kind: sr.kind, Delta: sr.delta, MorphDelta: delta,
				ControlDelta: sr.controlDelta, MorphControlDelta: controlDelta,
			})
			continue
		}

		// End style-change record: must match start's flags exactly, except
		// move_to, which belongs to the end keyframe alone.
		hasNewStyles, err := r.Bool()
		if err != nil {
			return ast.MorphShape{}, err
		}
		changeLineStyle, err := r.Bool()
		if err != nil {
			return ast.MorphShape{}, err
		}
		changeRightFill, err := r.Bool()
		if err != nil {
			return ast.MorphShape{}, err
		}
		changeLeftFill, err := r.Bool()
		if err != nil {
			return ast.MorphShape{}, err
		}
		hasMoveTo, err := r.Bool()
		if err != nil {
			return ast.MorphShape{}, err
		}
		if !hasNewStyles && !changeLineStyle && !changeRightFill && !changeLeftFill && !hasMoveTo {
			// A zero record head ends the end stream while start records remain.
			return ast.MorphShape{}, bitstream.ErrInvalid
		}
		if hasNewStyles != sr.hasNewStyles || changeLineStyle != sr.changeLineStyle ||
			changeRightFill != sr.changeRightFill || changeLeftFill != sr.changeLeftFill {
			return ast.MorphShape{}, bitstream.ErrInvalid
		}
		var morphMoveTo ast.Vec2
		if hasMoveTo {
			n, err := r.Bits(5)
			if err != nil {
				return ast.MorphShape{}, err
			}
			x, err := r.SignedBits(uint(n))
			if err != nil {
				return ast.MorphShape{}, err
			}
			y, err := r.SignedBits(uint(n))
			if err != nil {
				return ast.MorphShape{}, err
			}
			morphMoveTo = ast.Vec2{X: x, Y: y}
		}
		if changeLeftFill {
			if _, err := r.Bits(uint(endFillBits)); err != nil {
				return ast.MorphShape{}, err
			}
		}
		if changeRightFill {
			if _, err := r.Bits(uint(endFillBits)); err != nil {
				return ast.MorphShape{}, err
			}
		}
		if changeLineStyle {
			if _, err := r.Bits(uint(endLineBits)); err != nil {
				return ast.MorphShape{}, err
			}
		}
		if hasNewStyles {
			styles, err := morphStyles(r, version)
			if err != nil {
				return ast.MorphShape{}, err
			}
			endFillBits, endLineBits = styles.FillBits, styles.LineBits
		}
		merged = append(merged, ast.MorphShapeRecord{
			Kind: ast.RecordStyleChange, HasNewStyles: sr.hasNewStyles,
			ChangeLineStyle: sr.changeLineStyle, ChangeRightFill: sr.changeRightFill,
			ChangeLeftFill: sr.changeLeftFill, HasMoveTo: sr.hasMoveTo, MoveTo: sr.moveTo,
			HasMorphMoveTo: hasMoveTo, MorphMoveTo: morphMoveTo,
			LeftFill: sr.leftFill, RightFill: sr.rightFill, LineStyleIndex: sr.lineStyleIndex,
			NewStyles: sr.newStyles,
		})
	}

	return ast.MorphShape{Styles: startStyles, Records: merged}, nil
}
