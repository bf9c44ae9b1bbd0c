package shape

import (
	"testing"

	"github.com/archframe/moviefmt/bitstream"
)

func TestGlyphEmptyRecordString(t *testing.T) {
	// fill_bits=0, line_bits=0, then the all-zero style-change record that
	// the record string's loop treats as its end-of-records terminator.
	r := bitstream.NewReader([]byte{0x00, 0x00})
	got, err := Glyph(r)
	if err != nil {
		t.Fatalf("Glyph: unexpected error: %v", err)
	}
	if len(got.Records) != 0 {
		t.Errorf("Glyph.Records has %d entries, want 0", len(got.Records))
	}
}

func TestGlyphTableSingleEmptyGlyph(t *testing.T) {
	data := []byte{
		0x04, 0x00, // offsets[0] = 4 (start of glyph 0, right after the offset table)
		0x06, 0x00, // offsets[1] = 6 (end offset)
		0x00, 0x00, // glyph 0's body: an empty record string
	}
	glyphs, end, err := GlyphTable(data, 1, false)
	if err != nil {
		t.Fatalf("GlyphTable: unexpected error: %v", err)
	}
	if len(glyphs) != 1 {
		t.Fatalf("GlyphTable returned %d glyphs, want 1", len(glyphs))
	}
	if len(glyphs[0].Records) != 0 {
		t.Errorf("glyphs[0].Records has %d entries, want 0", len(glyphs[0].Records))
	}
	if end != 6 {
		t.Errorf("end offset = %d, want 6", end)
	}
}

func TestGlyphTableOffsetOutOfRange(t *testing.T) {
	data := []byte{0x04, 0x00, 0xFF, 0xFF} // offsets[1] points past the buffer
	if _, _, err := GlyphTable(data, 1, false); err != bitstream.ErrInvalid {
		t.Errorf("GlyphTable: err = %v, want %v", err, bitstream.ErrInvalid)
	}
}

func TestGlyphFontV1(t *testing.T) {
	data := []byte{
		0x02, 0x00, // firstOffset = 2 -> glyphCount = 1
		0x00, 0x00, // glyph 0's body: an empty record string
	}
	glyphs, err := GlyphFontV1(data)
	if err != nil {
		t.Fatalf("GlyphFontV1: unexpected error: %v", err)
	}
	if len(glyphs) != 1 {
		t.Fatalf("GlyphFontV1 returned %d glyphs, want 1", len(glyphs))
	}
	if len(glyphs[0].Records) != 0 {
		t.Errorf("glyphs[0].Records has %d entries, want 0", len(glyphs[0].Records))
	}
}

func TestGlyphFontV1ZeroGlyphsRejected(t *testing.T) {
	data := []byte{0x00, 0x00}
	if _, err := GlyphFontV1(data); err != bitstream.ErrInvalid {
		t.Errorf("GlyphFontV1: err = %v, want %v", err, bitstream.ErrInvalid)
	}
}
