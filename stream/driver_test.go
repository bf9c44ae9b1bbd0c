package stream

import (
	"reflect"
	"testing"

	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/movie"
)

// tinyMovie is a minimal, uncompressed, well-formed movie: an empty frame
// rect, a 12.0 frame rate, one frame, a single ShowFrame tag, and the End
// sentinel.
func tinyMovie() []byte {
	return []byte{
		'F', 'W', 'S', 0x0A, 0x11, 0x00, 0x00, 0x00, // signature
		0x00,       // rect: nBits=0, all four bounds 0
		0x00, 0x0C, // frame rate 12.0 (UFixed8LE)
		0x01, 0x00, // frame count 1
		0x40, 0x00, // ShowFrame (code 1, length 0)
		0x00, 0x00, // End
	}
}

func TestHeaderParserByteAtATime(t *testing.T) {
	data := tinyMovie()
	want, err := movie.ParseMovie(data)
	if err != nil {
		t.Fatalf("movie.ParseMovie: unexpected error: %v", err)
	}

	hp := NewHeaderParser()
	var hdr ast.MovieHeader
	var tp *TagParser
	i := 0
	for ; i < len(data); i++ {
		var perr error
		hdr, tp, perr = hp.Header(data[i : i+1])
		if perr != nil {
			t.Fatalf("Header: unexpected error at byte %d: %v", i, perr)
		}
		if tp != nil {
			i++
			break
		}
	}
	if tp == nil {
		t.Fatalf("Header: never completed")
	}
	if hdr != (ast.MovieHeader{FrameSize: want.FrameSize, FrameRate: want.FrameRate, FrameCount: want.FrameCount}) {
		t.Errorf("Header = %+v, want {%v %v %v}", hdr, want.FrameSize, want.FrameRate, want.FrameCount)
	}

	var got []ast.Tag
	for ; i < len(data) && !tp.Finished(); i++ {
		tags, err := tp.Tags(data[i : i+1])
		if err != nil {
			t.Fatalf("Tags: unexpected error at byte %d: %v", i, err)
		}
		got = append(got, tags...)
	}
	if !tp.Finished() {
		t.Fatalf("TagParser never reached the End sentinel")
	}
	if !reflect.DeepEqual(got, want.Tags) {
		t.Errorf("streamed tags = %#v, want %#v", got, want.Tags)
	}
}

func TestHeaderParserNeedsMoreBytes(t *testing.T) {
	hp := NewHeaderParser()
	hdr, tp, err := hp.Header([]byte{'F', 'W'})
	if err != nil {
		t.Fatalf("Header: unexpected error: %v", err)
	}
	if tp != nil || hdr != (ast.MovieHeader{}) {
		t.Errorf("Header with 2 bytes = (%+v, %v), want (zero, nil)", hdr, tp)
	}
}

func TestHeaderParserInvalidSignature(t *testing.T) {
	hp := NewHeaderParser()
	_, _, err := hp.Header([]byte{'X', 'Y', 'Z', 0, 0, 0, 0, 0})
	if err != ErrInvalidSignature {
		t.Errorf("Header with bad signature: err = %v, want %v", err, ErrInvalidSignature)
	}
}

func TestTagParserIncompleteBodyWaits(t *testing.T) {
	hp := NewHeaderParser()
	data := tinyMovie()
	_, tp, err := hp.Header(data[:13])
	if err != nil || tp == nil {
		t.Fatalf("Header: got (tp=%v, err=%v), want a ready TagParser", tp, err)
	}

	// SetBackgroundColor (code 9) declares a 3-byte RGB body but only 1 byte
	// is supplied: the tag cannot yet be framed, so Tags must wait rather
	// than error.
	word := uint16(9)<<6 | 3
	partial := []byte{byte(word), byte(word >> 8), 0xFF}
	tags, err := tp.Tags(partial)
	if err != nil {
		t.Fatalf("Tags: unexpected error for a merely-incomplete body: %v", err)
	}
	if len(tags) != 0 {
		t.Fatalf("Tags: got %d tags, want 0 while body is still incomplete", len(tags))
	}
}

func TestTagParserMalformedBodyPropagates(t *testing.T) {
	hp := NewHeaderParser()
	data := tinyMovie()
	_, tp, err := hp.Header(data[:13])
	if err != nil || tp == nil {
		t.Fatalf("Header: got (tp=%v, err=%v), want a ready TagParser", tp, err)
	}

	// CsmTextSettings (code 74) with renderer=3, an out-of-domain value (must
	// be 0 or 1): the body is fully present but semantically invalid, which
	// streaming mode propagates as an error rather than downgrading to Raw
	// the way the complete parser's ParseTag does.
	word := uint16(74)<<6 | 11
	full := []byte{
		byte(word), byte(word >> 8),
		0x00, 0x00, // text id
		0xC0,                   // renderer=3 (invalid), fitting=0, reserved=0
		0, 0, 0, 0, 0, 0, 0, 0, // thickness, sharpness
	}
	_, err = tp.Tags(full)
	if err == nil {
		t.Fatalf("Tags: got nil error for an out-of-domain CsmTextSettings renderer, want a propagated error")
	}
}
