package tag

import (
	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/bitstream"
	"github.com/archframe/moviefmt/record"
	"github.com/archframe/moviefmt/shape"
)

func defineGlyphFont(r *bitstream.Reader) (ast.Tag, error) {
	id, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	data := r.Bytes()
	if len(data) == 0 {
		return ast.DefineGlyphFont{ID: id}, nil
	}
	glyphs, err := shape.GlyphFontV1(data)
	if err != nil {
		return nil, err
	}
	return ast.DefineGlyphFont{ID: id, Glyphs: glyphs}, nil
}

func fontNameBlock(r *bitstream.Reader) (string, error) {
	n, err := r.U8()
	if err != nil {
		return "", err
	}
	return r.BlockString(int(n))
}

func defineFont(r *bitstream.Reader, version ast.FontVersion) (ast.Tag, error) {
	id, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	flags, err := r.U8()
	if err != nil {
		return nil, err
	}
	fontFlags := ast.DefineFontFlags{
		Bold: flags&0x01 != 0, Italic: flags&0x02 != 0,
		WideCodes: flags&0x04 != 0, WideOffsets: flags&0x08 != 0,
		ANSI: flags&0x10 != 0, SmallText: flags&0x20 != 0,
		ShiftJIS: flags&0x40 != 0, HasLayout: flags&0x80 != 0,
	}

	language, err := r.U8()
	if err != nil {
		return nil, err
	}
	fontName, err := fontNameBlock(r)
	if err != nil {
		return nil, err
	}
	glyphCount, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	d := ast.DefineFont{
		Version: version, ID: id, FontFlags: fontFlags,
		Language: language, FontName: fontName,
	}
	// Device fonts carry no glyph table: DefineFont2/3 ends right here.
	if glyphCount == 0 {
		return d, nil
	}

	glyphs, consumed, err := shape.GlyphTable(r.Bytes(), int(glyphCount), fontFlags.WideOffsets)
	if err != nil {
		return nil, err
	}
	if err := r.Advance(consumed); err != nil {
		return nil, err
	}
	d.Glyphs = glyphs

	codeUnits := make([]uint16, glyphCount)
	if fontFlags.WideCodes {
		for i := range codeUnits {
			v, err := r.U16LE()
			if err != nil {
				return nil, err
			}
			codeUnits[i] = v
		}
	} else {
		for i := range codeUnits {
			v, err := r.U8()
			if err != nil {
				return nil, err
			}
			codeUnits[i] = uint16(v)
		}
	}
	d.CodeUnits = codeUnits

	if fontFlags.HasLayout {
		layout, err := fontLayout(r, int(glyphCount))
		if err != nil {
			return nil, err
		}
		d.Layout = &layout
	}
	return d, nil
}

func fontLayout(r *bitstream.Reader, glyphCount int) (ast.FontLayout, error) {
	ascent, err := r.U16LE()
	if err != nil {
		return ast.FontLayout{}, err
	}
	descent, err := r.U16LE()
	if err != nil {
		return ast.FontLayout{}, err
	}
	leading, err := r.I16LE()
	if err != nil {
		return ast.FontLayout{}, err
	}
	advances := make([]int16, glyphCount)
	for i := range advances {
		v, err := r.I16LE()
		if err != nil {
			return ast.FontLayout{}, err
		}
		advances[i] = v
	}
	bounds := make([]ast.Rect, glyphCount)
	for i := range bounds {
		b, err := record.Rect(r)
		if err != nil {
			return ast.FontLayout{}, err
		}
		bounds[i] = b
	}
	kerningCount, err := r.U16LE()
	if err != nil {
		return ast.FontLayout{}, err
	}
	kerning := make([]ast.KerningRecord, kerningCount)
	for i := range kerning {
		left, err := r.U16LE()
		if err != nil {
			return ast.FontLayout{}, err
		}
		right, err := r.U16LE()
		if err != nil {
			return ast.FontLayout{}, err
		}
		adj, err := r.I16LE()
		if err != nil {
			return ast.FontLayout{}, err
		}
		kerning[i] = ast.KerningRecord{Left: left, Right: right, Adjustment: adj}
	}
	return ast.FontLayout{Ascent: ascent, Descent: descent, Leading: leading, Advances: advances, Bounds: bounds, Kerning: kerning}, nil
}

func defineCffFont(r *bitstream.Reader) (ast.Tag, error) {
	id, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	italic, err := r.Bool()
	if err != nil {
		return nil, err
	}
	bold, err := r.Bool()
	if err != nil {
		return nil, err
	}
	r.Align()
	return ast.DefineCffFont{ID: id, Italic: italic, Bold: bold, FontData: r.Bytes()}, nil
}

func codeUnitsFromBytes(r *bitstream.Reader, wideCodes bool) ([]uint16, error) {
	data := r.Bytes()
	if wideCodes {
		count := len(data) / 2
		units := make([]uint16, count)
		for i := 0; i < count; i++ {
			v, err := r.U16LE()
			if err != nil {
				return nil, err
			}
			units[i] = v
		}
		return units, nil
	}
	units := make([]uint16, len(data))
	for i, b := range data {
		units[i] = uint16(b)
	}
	if err := r.Advance(len(data)); err != nil {
		return nil, err
	}
	return units, nil
}

func defineFontInfo(r *bitstream.Reader, version ast.FontInfoVersion) (ast.Tag, error) {
	fontID, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	fontName, err := fontNameBlock(r)
	if err != nil {
		return nil, err
	}
	flags, err := r.U8()
	if err != nil {
		return nil, err
	}
	wideCodes := flags&0x01 != 0
	d := ast.DefineFontInfo{
		Version: version, FontID: fontID, FontName: fontName,
		Bold: flags&0x02 != 0, Italic: flags&0x04 != 0,
		ANSI: flags&0x08 != 0, ShiftJIS: flags&0x10 != 0, SmallText: flags&0x20 != 0,
	}
	if version >= ast.FontInfoVersion2 {
		lang, err := r.U8()
		if err != nil {
			return nil, err
		}
		d.Language = lang
	}
	codeUnits, err := codeUnitsFromBytes(r, wideCodes)
	if err != nil {
		return nil, err
	}
	d.CodeUnits = codeUnits
	return d, nil
}

func defineFontAlignZones(r *bitstream.Reader) (ast.Tag, error) {
	fontID, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	hintRaw, err := r.Bits(2)
	if err != nil {
		return nil, err
	}
	if hintRaw > 2 {
		return nil, bitstream.ErrInvalid
	}
	if _, err := r.Bits(6); err != nil { // reserved
		return nil, err
	}
	var zones []ast.FontAlignmentZone
	for r.Len() > 0 {
		zone, err := fontAlignmentZone(r)
		if err != nil {
			return nil, err
		}
		zones = append(zones, zone)
	}
	return ast.DefineFontAlignZones{FontID: fontID, CsmTableHint: ast.CsmTableHint(hintRaw), Zones: zones}, nil
}

// FontAlignmentZone decodes a single alignment-zone record: a count-prefixed
// list of (origin, size) half-float pairs plus the has-x/has-y flags byte.
// The streaming driver itself calls DefineFontAlignZonesCounted, which
// sizes a font-align-zones body by a remembered per-font glyph count instead
// of scanning the body to exhaustion the way defineFontAlignZones does.
func FontAlignmentZone(r *bitstream.Reader) (ast.FontAlignmentZone, error) {
	return fontAlignmentZone(r)
}

// DefineFontAlignZonesCounted decodes a font-alignment-zones body by reading
// exactly glyphCount zone records, rather than scanning until the body is
// exhausted. The streaming parser uses this form because it sizes the field
// from glyph counts observed on earlier DefineFont tags in the same movie;
// the complete parser always has the whole body in hand and prefers the
// exhaustion-scan in defineFontAlignZones instead.
func DefineFontAlignZonesCounted(r *bitstream.Reader, glyphCount int) (ast.Tag, error) {
	fontID, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	hintRaw, err := r.Bits(2)
	if err != nil {
		return nil, err
	}
	if hintRaw > 2 {
		return nil, bitstream.ErrInvalid
	}
	if _, err := r.Bits(6); err != nil { // reserved
		return nil, err
	}
	zones := make([]ast.FontAlignmentZone, glyphCount)
	for i := range zones {
		zone, err := fontAlignmentZone(r)
		if err != nil {
			return nil, err
		}
		zones[i] = zone
	}
	return ast.DefineFontAlignZones{FontID: fontID, CsmTableHint: ast.CsmTableHint(hintRaw), Zones: zones}, nil
}

func fontAlignmentZone(r *bitstream.Reader) (ast.FontAlignmentZone, error) {
	count, err := r.U8()
	if err != nil {
		return ast.FontAlignmentZone{}, err
	}
	data := make([]ast.FontAlignmentZoneData, count)
	for i := range data {
		origin, err := r.HalfLE()
		if err != nil {
			return ast.FontAlignmentZone{}, err
		}
		size, err := r.HalfLE()
		if err != nil {
			return ast.FontAlignmentZone{}, err
		}
		data[i] = ast.FontAlignmentZoneData{Origin: origin, Size: size}
	}
	flags, err := r.U8()
	if err != nil {
		return ast.FontAlignmentZone{}, err
	}
	return ast.FontAlignmentZone{Data: data, HasX: flags&0x01 != 0, HasY: flags&0x02 != 0}, nil
}

func defineFontName(r *bitstream.Reader) (ast.Tag, error) {
	fontID, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	name, err := r.NulString()
	if err != nil {
		return nil, err
	}
	copyright, err := r.NulString()
	if err != nil {
		return nil, err
	}
	return ast.DefineFontName{FontID: fontID, Name: name, Copyright: copyright}, nil
}

func csmTextSettings(r *bitstream.Reader) (ast.Tag, error) {
	textID, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	rendererRaw, err := r.Bits(2)
	if err != nil {
		return nil, err
	}
	if rendererRaw > 1 {
		return nil, bitstream.ErrInvalid
	}
	fittingRaw, err := r.Bits(3)
	if err != nil {
		return nil, err
	}
	if fittingRaw > 2 {
		return nil, bitstream.ErrInvalid
	}
	if _, err := r.Bits(3); err != nil { // reserved
		return nil, err
	}
	thickness, err := r.Float32LE()
	if err != nil {
		return nil, err
	}
	sharpness, err := r.Float32LE()
	if err != nil {
		return nil, err
	}
	return ast.CsmTextSettings{
		TextID: textID, Renderer: ast.TextRenderer(rendererRaw),
		GridFitting: ast.GridFitting(fittingRaw), Thickness: thickness, Sharpness: sharpness,
	}, nil
}
