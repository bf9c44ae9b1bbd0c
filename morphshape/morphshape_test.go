package morphshape

import (
	"testing"

	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/bitstream"
)

// TestParseEmptyShape covers the degenerate morph shape: no fill or line
// styles on either keyframe, and an empty record string on both. Every
// field this body carries is zero, so a buffer of zero bytes of the right
// length decodes cleanly with no records.
func TestParseEmptyShape(t *testing.T) {
	data := make([]byte, 9) // 4 (skipped end-offset) + 3 (styles) + 2 (record terminator + end bits)
	r := bitstream.NewReader(data)
	got, err := Parse(r, ast.MorphShapeVersion1)
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	if len(got.Styles.FillStyles) != 0 || len(got.Styles.LineStyles) != 0 {
		t.Errorf("Styles = %+v, want no fill/line styles", got.Styles)
	}
	if len(got.Records) != 0 {
		t.Errorf("Records has %d entries, want 0", len(got.Records))
	}
}

func TestParseTruncatedOffset(t *testing.T) {
	r := bitstream.NewReader([]byte{0x00, 0x00})
	if _, err := Parse(r, ast.MorphShapeVersion1); err != bitstream.ErrIncomplete {
		t.Errorf("Parse: err = %v, want %v", err, bitstream.ErrIncomplete)
	}
}

// TestParseTwoEndStyleChangesPropagatesFillBits covers a morph shape whose
// end record string carries two style-change records: the first introduces
// new end-side fill/line styles (fill_bits=2), the second changes its left
// fill at that new width. If the merge loop failed to carry the updated
// fill_bits forward, the second record's left-fill field would be read at
// the stale initial width (4 bits here) instead of 2, leaving the cursor
// two bits past where the rest of the end records begin, so the records
// that follow no longer decode as the ones this data encodes.
func TestParseTwoEndStyleChangesPropagatesFillBits(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x00, 0x00, // skipped end-offset
		0x00,       // start styles: fill count 0
		0x00,       // start styles: line count 0
		0x50,       // start styles: fill_bits=5, line_bits=0
		0x4C, 0x00, // record 1 (start): new-styles + move-to + left-fill flags
		0x00, 0x00, 0x05, // record 1's new start styles: fill_bits=0, line_bits=5
		0x6C, 0x00, // record 2 (start): new-styles + move-to + left-fill + line-style flags
		0x00, 0x00, 0x00, // record 2's new start styles (unused further)
		0x01,       // record-string terminator + end_fill_bits high bits
		0x01,       // end_fill_bits=4, end_line_bits=0, record 1 (end) flags start
		0x20,       // record 1 (end) flags tail + 4-bit left-fill at stale width
		0x00, 0x00, 0x20, // record 1's new end styles: fill_bits=2, line_bits=0
		0x68,       // record 2 (end) flags + 2-bit left-fill at the new width
		0x00, 0x00, 0x00, // record 2's new end styles
	}
	r := bitstream.NewReader(data)
	got, err := Parse(r, ast.MorphShapeVersion1)
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	if len(got.Records) != 2 {
		t.Fatalf("Records has %d entries, want 2", len(got.Records))
	}
	if !got.Records[0].HasNewStyles || !got.Records[0].ChangeLeftFill {
		t.Errorf("Records[0] = %+v, want HasNewStyles and ChangeLeftFill set", got.Records[0])
	}
	if !got.Records[1].HasNewStyles || !got.Records[1].ChangeLeftFill || !got.Records[1].ChangeLineStyle {
		t.Errorf("Records[1] = %+v, want HasNewStyles, ChangeLeftFill and ChangeLineStyle set", got.Records[1])
	}
}
