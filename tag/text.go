package tag

import (
	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/bitstream"
	"github.com/archframe/moviefmt/record"
)

func glyphEntry(r *bitstream.Reader, indexBits, advanceBits uint) (ast.GlyphEntry, error) {
	idx, err := r.Bits(indexBits)
	if err != nil {
		return ast.GlyphEntry{}, err
	}
	adv, err := r.SignedBits(advanceBits)
	if err != nil {
		return ast.GlyphEntry{}, err
	}
	return ast.GlyphEntry{Index: idx, Advance: adv}, nil
}

func textRecord(r *bitstream.Reader, hasAlpha bool) (ast.TextRecord, bool, error) {
	flags, err := r.U8()
	if err != nil {
		return ast.TextRecord{}, false, err
	}
	if flags == 0 {
		return ast.TextRecord{}, false, nil
	}
	hasOffsetX := flags&0x01 != 0
	hasOffsetY := flags&0x02 != 0
	hasColor := flags&0x04 != 0
	hasFont := flags&0x08 != 0

	rec := ast.TextRecord{}
	if hasFont {
		v, err := r.U16LE()
		if err != nil {
			return ast.TextRecord{}, false, err
		}
		rec.FontID = &v
	}
	if hasColor {
		var c ast.StraightSRgba8
		if hasAlpha {
			c, err = record.StraightSRgba8(r)
		} else {
			var rgb ast.SRgb8
			rgb, err = record.SRgb8(r)
			c = ast.StraightSRgba8{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
		}
		if err != nil {
			return ast.TextRecord{}, false, err
		}
		rec.Color = &c
	}
	if hasOffsetX {
		v, err := r.I16LE()
		if err != nil {
			return ast.TextRecord{}, false, err
		}
		rec.OffsetX = v
	}
	if hasOffsetY {
		v, err := r.I16LE()
		if err != nil {
			return ast.TextRecord{}, false, err
		}
		rec.OffsetY = v
	}
	if hasFont {
		v, err := r.U16LE()
		if err != nil {
			return ast.TextRecord{}, false, err
		}
		rec.FontSize = &v
	}
	return rec, true, nil
}

// textRecordString parses the bit-packed glyph entries embedded in each text
// record; indexBits/advanceBits are read once at the start of the tag and
// apply to every record in the string.
func textRecordString(r *bitstream.Reader, hasAlpha bool, indexBits, advanceBits uint) ([]ast.TextRecord, error) {
	var records []ast.TextRecord
	for {
		rec, ok, err := textRecord(r, hasAlpha)
		if err != nil {
			return nil, err
		}
		if !ok {
			return records, nil
		}
		entryCount, err := r.U8()
		if err != nil {
			return nil, err
		}
		entries := make([]ast.GlyphEntry, entryCount)
		for i := range entries {
			e, err := glyphEntry(r, indexBits, advanceBits)
			if err != nil {
				return nil, err
			}
			entries[i] = e
		}
		rec.Entries = entries
		r.Align()
		records = append(records, rec)
	}
}

func defineText(r *bitstream.Reader, version ast.TextVersion) (ast.Tag, error) {
	id, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	bounds, err := record.Rect(r)
	if err != nil {
		return nil, err
	}
	matrix, err := record.Matrix(r)
	if err != nil {
		return nil, err
	}
	indexBits, err := r.U8()
	if err != nil {
		return nil, err
	}
	advanceBits, err := r.U8()
	if err != nil {
		return nil, err
	}
	r.Align()
	records, err := textRecordString(r, version >= ast.TextVersion2, uint(indexBits), uint(advanceBits))
	if err != nil {
		return nil, err
	}
	return ast.DefineText{Version: version, ID: id, Bounds: bounds, Matrix: matrix, Records: records}, nil
}

func defineEditText(r *bitstream.Reader) (ast.Tag, error) {
	id, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	bounds, err := record.Rect(r)
	if err != nil {
		return nil, err
	}
	flags, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	d := ast.DefineEditText{
		ID: id, Bounds: bounds,
		HasFont: flags&0x0001 != 0, HasMaxLength: flags&0x0002 != 0, HasColor: flags&0x0004 != 0,
		ReadOnly: flags&0x0008 != 0, Password: flags&0x0010 != 0, Multiline: flags&0x0020 != 0,
		WordWrap: flags&0x0040 != 0, HasText: flags&0x0080 != 0,
		UseOutlines: flags&0x0100 != 0, HTML: flags&0x0200 != 0, WasStatic: flags&0x0400 != 0,
		Border: flags&0x0800 != 0, NoSelect: flags&0x1000 != 0, HasLayout: flags&0x2000 != 0,
		AutoSize: flags&0x4000 != 0, HasFontClass: flags&0x8000 != 0,
	}

	if d.HasFont {
		v, err := r.U16LE()
		if err != nil {
			return nil, err
		}
		d.FontID = &v
	}
	if d.HasFontClass {
		s, err := r.NulString()
		if err != nil {
			return nil, err
		}
		d.FontClass = &s
	}
	if d.HasFont {
		v, err := r.U16LE()
		if err != nil {
			return nil, err
		}
		d.FontHeight = &v
	}
	if d.HasColor {
		c, err := record.StraightSRgba8(r)
		if err != nil {
			return nil, err
		}
		d.Color = &c
	}
	if d.HasMaxLength {
		v, err := r.U16LE()
		if err != nil {
			return nil, err
		}
		d.MaxLength = &v
	}
	if d.HasLayout {
		a, err := r.U8()
		if err != nil {
			return nil, err
		}
		if a > 3 {
			return nil, bitstream.ErrInvalid
		}
		align := ast.TextAlignment(a)
		d.Alignment = &align
		lm, err := r.U16LE()
		if err != nil {
			return nil, err
		}
		d.LeftMargin = lm
		rm, err := r.U16LE()
		if err != nil {
			return nil, err
		}
		d.RightMargin = rm
		indent, err := r.I16LE()
		if err != nil {
			return nil, err
		}
		d.Indent = indent
		leading, err := r.I16LE()
		if err != nil {
			return nil, err
		}
		d.Leading = leading
	}
	variableName, err := r.NulString()
	if err != nil {
		return nil, err
	}
	d.VariableName = variableName
	if d.HasText {
		s, err := r.NulString()
		if err != nil {
			return nil, err
		}
		d.InitialText = &s
	}
	return d, nil
}
