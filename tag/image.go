package tag

import (
	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/bitstream"
)

var (
	pngSignature  = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	gifSignature  = []byte{0x47, 0x49, 0x46, 0x38, 0x39, 0x61}
	jpegSignature = []byte{0xff, 0xd8}
	// erroneousJpegSignature is a double start-of-image marker some very old
	// encoders emit; tolerated only for format versions below 8.
	erroneousJpegSignature = []byte{0xff, 0xd9, 0xff, 0xd8, 0xff, 0xd8}
)

func hasPrefix(data, prefix []byte) bool {
	return len(data) >= len(prefix) && string(data[:len(prefix)]) == string(prefix)
}

func isJpeg(data []byte, formatVersion uint8) bool {
	return hasPrefix(data, jpegSignature) || (formatVersion < 8 && hasPrefix(data, erroneousJpegSignature))
}

// imageDimensions sniffs the embedded raster's own header for its pixel
// size. It returns nil, not an error, when the format isn't recognized or
// the header is too short — dimension extraction is best-effort.
func imageDimensions(data []byte, formatVersion uint8) *ast.ImageDimensions {
	switch {
	case isJpeg(data, formatVersion):
		return jpegDimensions(data)
	case hasPrefix(data, pngSignature):
		return pngDimensions(data)
	case hasPrefix(data, gifSignature):
		return gifDimensions(data)
	}
	return nil
}

func pngDimensions(data []byte) *ast.ImageDimensions {
	if len(data) < 24 {
		return nil
	}
	const ihdrChunkType = 0x49484452 // "IHDR"
	chunkType := uint32(data[12])<<24 | uint32(data[13])<<16 | uint32(data[14])<<8 | uint32(data[15])
	if chunkType != ihdrChunkType {
		return nil
	}
	width := uint32(data[16])<<24 | uint32(data[17])<<16 | uint32(data[18])<<8 | uint32(data[19])
	height := uint32(data[20])<<24 | uint32(data[21])<<16 | uint32(data[22])<<8 | uint32(data[23])
	return &ast.ImageDimensions{Width: uint16(width), Height: uint16(height)}
}

func gifDimensions(data []byte) *ast.ImageDimensions {
	if len(data) < 14 {
		return nil
	}
	width := uint16(data[10]) | uint16(data[11])<<8
	height := uint16(data[12]) | uint16(data[13])<<8
	return &ast.ImageDimensions{Width: width, Height: height}
}

// jpegDimensions scans for a Start-of-Frame marker and reads its
// big-endian height/width fields.
func jpegDimensions(data []byte) *ast.ImageDimensions {
	i := 0
	for i+1 < len(data) {
		if data[i] != 0xff || data[i+1] == 0x00 || data[i+1] == 0xff {
			i++
			continue
		}
		marker := data[i+1]
		segmentStart := i + 2
		isSOF := (marker >= 0xc0 && marker <= 0xc7) || (marker >= 0xc9 && marker <= 0xcf)
		// Markers with no length/payload: standalone byte markers.
		noLength := marker == 0x01 || (marker >= 0xd0 && marker <= 0xd9)
		if noLength {
			i += 2
			continue
		}
		if segmentStart+1 >= len(data) {
			break
		}
		segmentLen := int(data[segmentStart])<<8 | int(data[segmentStart+1])
		if isSOF {
			if segmentStart+6 >= len(data) {
				return nil
			}
			height := uint16(data[segmentStart+3])<<8 | uint16(data[segmentStart+4])
			width := uint16(data[segmentStart+5])<<8 | uint16(data[segmentStart+6])
			return &ast.ImageDimensions{Width: width, Height: height}
		}
		i = segmentStart + segmentLen
	}
	return nil
}

func defineBits(r *bitstream.Reader, formatVersion uint8) (ast.Tag, error) {
	id, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	data := r.Bytes()
	if err := r.Advance(len(data)); err != nil {
		return nil, err
	}
	return ast.DefineBits{ID: id, Dimensions: imageDimensions(data, formatVersion), ImageData: data}, nil
}

func defineBitsJpeg2(r *bitstream.Reader, formatVersion uint8) (ast.Tag, error) {
	id, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	data := r.Bytes()
	if err := r.Advance(len(data)); err != nil {
		return nil, err
	}
	return ast.DefineBitsJpeg2{ID: id, Dimensions: imageDimensions(data, formatVersion), ImageData: data}, nil
}

func defineBitsJpeg34(r *bitstream.Reader, formatVersion uint8, hasDeblock bool) (ast.Tag, error) {
	id, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	dataLen, err := r.U32LE()
	if err != nil {
		return nil, err
	}
	var deblock float64
	if hasDeblock {
		v, err := r.Fixed8LE()
		if err != nil {
			return nil, err
		}
		deblock = v.Float64()
	}
	rest := r.Bytes()
	if uint32(len(rest)) < dataLen {
		return nil, bitstream.ErrIncomplete
	}
	imageData := rest[:dataLen]
	alphaData := rest[dataLen:]
	if err := r.Advance(len(rest)); err != nil {
		return nil, err
	}

	jpeg3 := ast.DefineBitsJpeg3{ID: id, Dimensions: imageDimensions(imageData, formatVersion), ImageData: imageData, AlphaData: alphaData}
	if hasDeblock {
		return ast.DefineBitsJpeg4{DefineBitsJpeg3: jpeg3, DeblockParam: deblock}, nil
	}
	return jpeg3, nil
}

func defineBitsLossless(r *bitstream.Reader, version int) (ast.Tag, error) {
	id, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	format, err := r.U8()
	if err != nil {
		return nil, err
	}
	width, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	height, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	d := ast.DefineBitsLossless{Version: version, ID: id, BitmapFormat: format, Width: width, Height: height}
	// Format 3 is palette-indexed: an extra byte holds (color table size - 1).
	if format == 3 {
		n, err := r.U8()
		if err != nil {
			return nil, err
		}
		v := n + 1
		d.ColorTableSize = &v
	}
	d.Data = r.Bytes()
	if err := r.Advance(len(d.Data)); err != nil {
		return nil, err
	}
	return d, nil
}
