// Package movie implements the movie envelope: signature sniffing,
// transparent zlib/LZMA decompression, header extraction, and tag-block
// iteration that together turn a complete in-memory movie file into an
// ast.Movie.
package movie

import (
	"bytes"
	"compress/zlib"
	"io"
	"io/ioutil"

	"github.com/ulikunitz/xz/lzma"

	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/bitstream"
	"github.com/archframe/moviefmt/record"
	"github.com/archframe/moviefmt/tag"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "movie: " + string(e) }

var (
	// ErrInvalidSignature reports an unrecognized 3-byte container marker.
	ErrInvalidSignature error = Error("invalid signature")
	// ErrInvalidPayload reports that the decompressor rejected the bytes
	// following the signature.
	ErrInvalidPayload error = Error("invalid compressed payload")
	// ErrInvalidMovie reports that the header or tag-block string could
	// not be parsed from the decompressed payload.
	ErrInvalidMovie error = Error("invalid movie body")
)

// Signature reads the 8-byte preamble: a 3-byte compression marker, a
// 1-byte version, and a 4-byte little-endian uncompressed length.
func Signature(r *bitstream.Reader) (ast.Signature, error) {
	marker, err := r.ReadBytes(3)
	if err != nil {
		return ast.Signature{}, err
	}
	var comp ast.Compression
	switch string(marker) {
	case "FWS":
		comp = ast.CompressionNone
	case "CWS":
		comp = ast.CompressionDeflate
	case "ZWS":
		comp = ast.CompressionLzma
	default:
		return ast.Signature{}, ErrInvalidSignature
	}
	version, err := r.U8()
	if err != nil {
		return ast.Signature{}, err
	}
	length, err := r.U32LE()
	if err != nil {
		return ast.Signature{}, err
	}
	return ast.Signature{Compression: comp, Version: version, UncompressedFileLength: length}, nil
}

// Header reads the {rect, frame rate, frame count} triple that follows a
// movie's signature in the decompressed payload.
func Header(r *bitstream.Reader) (ast.MovieHeader, error) {
	frameSize, err := record.Rect(r)
	if err != nil {
		return ast.MovieHeader{}, err
	}
	r.Align()
	frameRate, err := r.UFixed8LE()
	if err != nil {
		return ast.MovieHeader{}, err
	}
	frameCount, err := r.U16LE()
	if err != nil {
		return ast.MovieHeader{}, err
	}
	return ast.MovieHeader{FrameSize: frameSize, FrameRate: frameRate, FrameCount: frameCount}, nil
}

// decompress materializes the movie's tag-stream payload according to its
// signature's compression variant. The None case returns the remainder of
// data unchanged; Deflate and LZMA each feed the remainder to their
// decompressor in full, since the complete parser holds the whole
// uncompressed payload in memory.
func decompress(sig ast.Signature, rest []byte) ([]byte, error) {
	switch sig.Compression {
	case ast.CompressionNone:
		return rest, nil
	case ast.CompressionDeflate:
		zr, err := zlib.NewReader(bytes.NewReader(rest))
		if err != nil {
			return nil, ErrInvalidPayload
		}
		defer zr.Close()
		out, err := ioutil.ReadAll(zr)
		if err != nil {
			return nil, ErrInvalidPayload
		}
		return out, nil
	case ast.CompressionLzma:
		lr, err := lzma.NewReader(bytes.NewReader(rest))
		if err != nil {
			return nil, ErrInvalidPayload
		}
		out, err := ioutil.ReadAll(lr)
		if err != nil && err != io.EOF {
			return nil, ErrInvalidPayload
		}
		return out, nil
	default:
		return nil, ErrInvalidPayload
	}
}

// ParseMovie decodes a complete, in-memory movie file into its AST: the
// signature, the (possibly decompressed) header, and the ordered tag
// sequence up to the End sentinel.
func ParseMovie(data []byte) (ast.Movie, error) {
	r := bitstream.NewReader(data)
	sig, err := Signature(r)
	if err != nil {
		return ast.Movie{}, ErrInvalidSignature
	}

	payload, err := decompress(sig, r.Bytes())
	if err != nil {
		return ast.Movie{}, err
	}

	hr := bitstream.NewReader(payload)
	hdr, err := Header(hr)
	if err != nil {
		return ast.Movie{}, ErrInvalidMovie
	}
	hr.Align()

	tags, err := parseTagBlock(hr.Bytes(), sig.Version)
	if err != nil {
		return ast.Movie{}, ErrInvalidMovie
	}

	return ast.Movie{
		Signature:  sig,
		FrameSize:  hdr.FrameSize,
		FrameRate:  hdr.FrameRate,
		FrameCount: hdr.FrameCount,
		Tags:       tags,
	}, nil
}

// parseTagBlock iterates a tag-block string (the movie's own, or a nested
// DefineSprite's) to the End sentinel, collecting decoded tags in order.
// Used for the top-level block only; tag.defineSprite iterates nested blocks
// with its own copy of this loop, tag.tagBlockString.
func parseTagBlock(data []byte, formatVersion uint8) ([]ast.Tag, error) {
	var tags []ast.Tag
	for {
		rest, t, ok := tag.ParseTag(data, formatVersion)
		if !ok {
			return tags, nil
		}
		tags = append(tags, t)
		if rest == nil {
			return tags, ErrInvalidMovie
		}
		data = rest
	}
}
