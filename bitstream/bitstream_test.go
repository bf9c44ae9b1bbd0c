package bitstream

import (
	"math"
	"testing"
)

func TestVarU32(t *testing.T) {
	vectors := []struct {
		in   []byte
		want uint32
		n    int
	}{
		{[]byte{0x00}, 0, 1},
		{[]byte{0x7F}, 127, 1},
		{[]byte{0x80, 0x01}, 128, 2},
		{[]byte{0x80, 0x80, 0x01}, 16384, 3},
		{[]byte{0x80, 0x80, 0x80, 0x80, 0x80}, 0, 5},
	}
	for _, v := range vectors {
		r := NewReader(v.in)
		got, err := r.VarU32()
		if err != nil {
			t.Fatalf("VarU32(%v): unexpected error: %v", v.in, err)
		}
		if got != v.want {
			t.Errorf("VarU32(%v) = %d, want %d", v.in, got, v.want)
		}
		if off, _ := r.BitPos(); off != v.n {
			t.Errorf("VarU32(%v) consumed %d bytes, want %d", v.in, off, v.n)
		}
	}
}

func TestBitsAllZero(t *testing.T) {
	data := make([]byte, 8)
	for n := uint(0); n <= 32; n++ {
		r := NewReader(data)
		v, err := r.Bits(n)
		if err != nil {
			t.Fatalf("Bits(%d): unexpected error: %v", n, err)
		}
		if v != 0 {
			t.Errorf("Bits(%d) = %d, want 0", n, v)
		}
		if r.pos != uint64(n) {
			t.Errorf("Bits(%d) advanced to bit %d, want %d", n, r.pos, n)
		}
	}
}

func TestSignedBitsSign(t *testing.T) {
	for n := uint(1); n <= 32; n++ {
		data := make([]byte, 8)
		data[0] = 0xFF
		data[1] = 0xFF
		data[2] = 0xFF
		data[3] = 0xFF
		r := NewReader(data)
		v, err := r.SignedBits(n)
		if err != nil {
			t.Fatalf("SignedBits(%d): %v", n, err)
		}
		if v >= 0 {
			t.Errorf("SignedBits(%d) on all-ones input = %d, want negative", n, v)
		}
	}
}

func TestSignedBitsExample(t *testing.T) {
	// From bytes 0b11000000, 0b00000000 reading 2 bits: value -1, cursor at
	// (byte 0, bit 2).
	r := NewReader([]byte{0b11000000, 0b00000000})
	v, err := r.SignedBits(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != -1 {
		t.Errorf("SignedBits(2) = %d, want -1", v)
	}
	byteOff, bitOff := r.BitPos()
	if byteOff != 0 || bitOff != 2 {
		t.Errorf("BitPos() = (%d,%d), want (0,2)", byteOff, bitOff)
	}
}

func TestRectangleExample(t *testing.T) {
	data := []byte{0b01011000, 0b01111111, 0b00100000, 0b10000000, 0b00111101, 0b00000001, 0b00000000}
	r := NewReader(data)
	n, err := r.Bits(5)
	if err != nil {
		t.Fatalf("width: %v", err)
	}
	xMin, err := r.SignedBits(uint(n))
	if err != nil {
		t.Fatalf("xMin: %v", err)
	}
	xMax, err := r.SignedBits(uint(n))
	if err != nil {
		t.Fatalf("xMax: %v", err)
	}
	yMin, err := r.SignedBits(uint(n))
	if err != nil {
		t.Fatalf("yMin: %v", err)
	}
	yMax, err := r.SignedBits(uint(n))
	if err != nil {
		t.Fatalf("yMax: %v", err)
	}
	if xMin != 127 || xMax != 260 || yMin != 15 || yMax != 514 {
		t.Errorf("rect = {%d,%d,%d,%d}, want {127,260,15,514}", xMin, xMax, yMin, yMax)
	}
}

func TestAlign(t *testing.T) {
	r := NewReader([]byte{0xFF, 0x00})
	if _, err := r.Bits(3); err != nil {
		t.Fatal(err)
	}
	r.Align()
	byteOff, bitOff := r.BitPos()
	if byteOff != 1 || bitOff != 0 {
		t.Errorf("Align() landed at (%d,%d), want (1,0)", byteOff, bitOff)
	}
}

func TestHalfToFloat32(t *testing.T) {
	vectors := []struct {
		in   uint16
		want float32
	}{
		{0x3C00, 1.0},
		{0xC000, -2.0},
		{0x0000, 0.0},
		{0x8000, float32(math.Copysign(0, -1))},
	}
	for _, v := range vectors {
		got := HalfToFloat32(v.in)
		if got != v.want {
			t.Errorf("HalfToFloat32(%#x) = %v, want %v", v.in, got, v.want)
		}
	}
}
