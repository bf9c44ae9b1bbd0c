package record

import (
	"testing"

	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/bitstream"
)

func TestRectAllZero(t *testing.T) {
	r := bitstream.NewReader([]byte{0x00})
	got, err := Rect(r)
	if err != nil {
		t.Fatalf("Rect: unexpected error: %v", err)
	}
	want := ast.Rect{}
	if got != want {
		t.Errorf("Rect = %+v, want %+v", got, want)
	}
}

// TestRect8Bit covers an 8-bit-per-field rect with both positive and
// negative bounds, exercising the sign-extension path of SignedBits.
func TestRect8Bit(t *testing.T) {
	data := []byte{0x47, 0xf8, 0x00, 0x2f, 0xd8}
	r := bitstream.NewReader(data)
	got, err := Rect(r)
	if err != nil {
		t.Fatalf("Rect: unexpected error: %v", err)
	}
	want := ast.Rect{XMin: -1, XMax: 0, YMin: 5, YMax: -5}
	if got != want {
		t.Errorf("Rect = %+v, want %+v", got, want)
	}
}

func TestRectIncomplete(t *testing.T) {
	r := bitstream.NewReader([]byte{0x47}) // nBits=8 but no field bytes follow
	if _, err := Rect(r); err != bitstream.ErrIncomplete {
		t.Errorf("Rect: err = %v, want %v", err, bitstream.ErrIncomplete)
	}
}

func TestMatrixIdentityWhenNoOptionalFields(t *testing.T) {
	// hasScale=0, hasSkew=0, then a 5-bit translate nBits=0 field: all
	// packed into the top 7 bits of one byte, remainder padding.
	r := bitstream.NewReader([]byte{0x00})
	got, err := Matrix(r)
	if err != nil {
		t.Fatalf("Matrix: unexpected error: %v", err)
	}
	if got != ast.Identity() {
		t.Errorf("Matrix = %+v, want identity %+v", got, ast.Identity())
	}
}

func TestColorTransformDefaultMultipliers(t *testing.T) {
	// hasAdd=0, hasMult=0, nbits=0: transform is a pure identity, so the
	// multiplicative channels default to 256 (1.0 in 8.8 fixed point) and
	// the additive channels default to zero.
	r := bitstream.NewReader([]byte{0x00})
	got, err := ColorTransform(r, true)
	if err != nil {
		t.Fatalf("ColorTransform: unexpected error: %v", err)
	}
	want := ast.ColorTransform{RedMult: 256, GreenMult: 256, BlueMult: 256, AlphaMult: 256}
	if got != want {
		t.Errorf("ColorTransform = %+v, want %+v", got, want)
	}
}

func TestSRgb8(t *testing.T) {
	r := bitstream.NewReader([]byte{0x10, 0x20, 0x30})
	got, err := SRgb8(r)
	if err != nil {
		t.Fatalf("SRgb8: unexpected error: %v", err)
	}
	want := ast.SRgb8{R: 0x10, G: 0x20, B: 0x30}
	if got != want {
		t.Errorf("SRgb8 = %+v, want %+v", got, want)
	}
}

func TestColorWithoutAlphaForcesOpaque(t *testing.T) {
	r := bitstream.NewReader([]byte{0x01, 0x02, 0x03})
	got, err := Color(r, false)
	if err != nil {
		t.Fatalf("Color: unexpected error: %v", err)
	}
	want := ast.StraightSRgba8{R: 1, G: 2, B: 3, A: 255}
	if got != want {
		t.Errorf("Color = %+v, want %+v", got, want)
	}
}

func TestColorWithAlpha(t *testing.T) {
	r := bitstream.NewReader([]byte{0x01, 0x02, 0x03, 0x80})
	got, err := Color(r, true)
	if err != nil {
		t.Fatalf("Color: unexpected error: %v", err)
	}
	want := ast.StraightSRgba8{R: 1, G: 2, B: 3, A: 0x80}
	if got != want {
		t.Errorf("Color = %+v, want %+v", got, want)
	}
}
