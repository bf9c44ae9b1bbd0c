package movie

import (
	"testing"

	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/bitstream"
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

func TestParseMovieUncompressed(t *testing.T) {
	got, err := ParseMovie(tinyMovie())
	if err != nil {
		t.Fatalf("ParseMovie: unexpected error: %v", err)
	}
	if got.Signature.Compression != ast.CompressionNone {
		t.Errorf("Compression = %v, want None", got.Signature.Compression)
	}
	if got.Signature.Version != 0x0A {
		t.Errorf("Version = %d, want 10", got.Signature.Version)
	}
	if got.FrameCount != 1 {
		t.Errorf("FrameCount = %d, want 1", got.FrameCount)
	}
	if len(got.Tags) != 1 {
		t.Fatalf("Tags has %d entries, want 1", len(got.Tags))
	}
	if _, ok := got.Tags[0].(ast.ShowFrame); !ok {
		t.Errorf("Tags[0] = %#v, want ast.ShowFrame", got.Tags[0])
	}
}

func TestParseMovieInvalidSignature(t *testing.T) {
	data := append([]byte{'X', 'Y', 'Z'}, tinyMovie()[3:]...)
	_, err := ParseMovie(data)
	if err != ErrInvalidSignature {
		t.Errorf("ParseMovie: err = %v, want %v", err, ErrInvalidSignature)
	}
}

func TestParseMovieTruncatedHeader(t *testing.T) {
	data := tinyMovie()[:10] // signature plus a partial rect/rate, no tags
	_, err := ParseMovie(data)
	if err != ErrInvalidMovie {
		t.Errorf("ParseMovie: err = %v, want %v", err, ErrInvalidMovie)
	}
}

func TestSignatureMarkers(t *testing.T) {
	vectors := []struct {
		marker string
		want   ast.Compression
	}{
		{"FWS", ast.CompressionNone},
		{"CWS", ast.CompressionDeflate},
		{"ZWS", ast.CompressionLzma},
	}
	for _, v := range vectors {
		data := append([]byte(v.marker), 0x06, 0x00, 0x00, 0x00, 0x00)
		r := bitstream.NewReader(data)
		sig, err := Signature(r)
		if err != nil {
			t.Fatalf("Signature(%q): unexpected error: %v", v.marker, err)
		}
		if sig.Compression != v.want {
			t.Errorf("Signature(%q).Compression = %v, want %v", v.marker, sig.Compression, v.want)
		}
	}
}
