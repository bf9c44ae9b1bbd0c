package tag

import (
	"testing"

	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/bitstream"
)

func TestHeaderShortForm(t *testing.T) {
	// code=1 (ShowFrame), length=0: packed word = 1<<6 | 0 = 0x0040.
	r := bitstream.NewReader([]byte{0x40, 0x00})
	got, err := Header(r)
	if err != nil {
		t.Fatalf("Header: unexpected error: %v", err)
	}
	want := ast.TagHeader{Code: ast.CodeShowFrame, Length: 0}
	if got != want {
		t.Errorf("Header = %+v, want %+v", got, want)
	}
}

func TestHeaderLongForm(t *testing.T) {
	// code=9 (SetBackgroundColor), packed length field = 0x3F (escape),
	// followed by a 4-byte little-endian long length of 300.
	word := uint16(ast.CodeSetBackgroundColor)<<6 | 0x3F
	r := bitstream.NewReader([]byte{
		byte(word), byte(word >> 8),
		0x2C, 0x01, 0x00, 0x00,
	})
	got, err := Header(r)
	if err != nil {
		t.Fatalf("Header: unexpected error: %v", err)
	}
	want := ast.TagHeader{Code: ast.CodeSetBackgroundColor, Length: 300}
	if got != want {
		t.Errorf("Header = %+v, want %+v", got, want)
	}
}

func TestParseTagEndSentinel(t *testing.T) {
	rest, tg, ok := ParseTag([]byte{0x00, 0x00}, 6)
	if ok {
		t.Fatalf("ParseTag: ok = true at the End sentinel, want false")
	}
	if tg != nil {
		t.Errorf("ParseTag: tag = %#v at End, want nil", tg)
	}
	if len(rest) != 0 {
		t.Errorf("ParseTag: rest = %v at End, want empty", rest)
	}
}

func TestParseTagShowFrame(t *testing.T) {
	data := []byte{0x40, 0x00, 0x00, 0x00} // ShowFrame, then End
	rest, tg, ok := ParseTag(data, 6)
	if !ok {
		t.Fatalf("ParseTag: ok = false, want true")
	}
	if _, isShowFrame := tg.(ast.ShowFrame); !isShowFrame {
		t.Errorf("ParseTag: tag = %#v, want ast.ShowFrame", tg)
	}
	if len(rest) != 2 {
		t.Errorf("ParseTag: rest has %d bytes left, want 2 (the End sentinel)", len(rest))
	}
}

// TestParseTagUnknownCodeDowngradesToRaw covers the complete parser's
// blanket downgrade policy: a code with no registry entry still frames
// cleanly off its declared length, just as ast.Raw with a non-nil Code.
func TestParseTagUnknownCodeDowngradesToRaw(t *testing.T) {
	const unknownCode = 999
	word := uint16(unknownCode)<<6 | 2
	data := []byte{byte(word), byte(word >> 8), 0xAA, 0xBB}
	rest, tg, ok := ParseTag(data, 6)
	if !ok {
		t.Fatalf("ParseTag: ok = false, want true")
	}
	raw, isRaw := tg.(ast.Raw)
	if !isRaw {
		t.Fatalf("ParseTag: tag = %#v, want ast.Raw", tg)
	}
	if raw.Code == nil || *raw.Code != unknownCode {
		t.Errorf("ParseTag: raw.Code = %v, want %d", raw.Code, unknownCode)
	}
	if string(raw.Data) != "\xAA\xBB" {
		t.Errorf("ParseTag: raw.Data = %v, want [AA BB]", raw.Data)
	}
	if len(rest) != 0 {
		t.Errorf("ParseTag: rest = %v, want empty", rest)
	}
}

// TestParseTagMalformedBodyDowngradesToRaw covers a recognized code whose
// body fails its own semantic checks: the complete parser downgrades it to
// Raw rather than aborting the tag stream, unlike the streaming driver.
func TestParseTagMalformedBodyDowngradesToRaw(t *testing.T) {
	// CsmTextSettings (74) with an out-of-domain renderer value of 3.
	word := uint16(ast.CodeCsmTextSettings)<<6 | 11
	data := []byte{
		byte(word), byte(word >> 8),
		0x00, 0x00,
		0xC0,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	_, tg, ok := ParseTag(data, 6)
	if !ok {
		t.Fatalf("ParseTag: ok = false, want true")
	}
	raw, isRaw := tg.(ast.Raw)
	if !isRaw {
		t.Fatalf("ParseTag: tag = %#v, want ast.Raw", tg)
	}
	if raw.Code == nil || *raw.Code != ast.CodeCsmTextSettings {
		t.Errorf("ParseTag: raw.Code = %v, want %d", raw.Code, ast.CodeCsmTextSettings)
	}
}

func TestKnownCode(t *testing.T) {
	if !KnownCode(ast.CodeShowFrame) {
		t.Errorf("KnownCode(CodeShowFrame) = false, want true")
	}
	if KnownCode(999) {
		t.Errorf("KnownCode(999) = true, want false")
	}
}

func TestBodyUnknownCode(t *testing.T) {
	if _, err := Body(999, nil, 6); err != bitstream.ErrInvalid {
		t.Errorf("Body(999): err = %v, want %v", err, bitstream.ErrInvalid)
	}
}
