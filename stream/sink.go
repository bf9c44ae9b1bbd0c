package stream

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/klauspost/compress/zlib"
	"github.com/ulikunitz/xz/lzma"

	"github.com/archframe/moviefmt/ast"
)

// sink is the streaming driver's narrow "decompress a stream into a byte
// sink" collaborator: bytes are pushed in as they arrive, and the
// driver can ask at any time for every decompressed byte produced so far.
// None of the three concrete sinks below can resume a partially read
// decompressor, so output re-drains a fresh decompressor over everything
// buffered whenever it is called; this keeps each sink a few lines long at
// the cost of doing (bounded, linear in the compressed size already seen)
// redundant work across calls, which is the right trade for a movie file's
// size rather than hand-rolling a resumable inflate/LZMA state machine.
type sink interface {
	write(p []byte)
	output() []byte
}

// noneSink passes bytes through unchanged, for the None compression variant.
type noneSink struct{ buf []byte }

func (s *noneSink) write(p []byte) { s.buf = append(s.buf, p...) }
func (s *noneSink) output() []byte { return s.buf }

// deflateSink decompresses a zlib-wrapped (RFC 1950) DEFLATE stream, the
// payload format following a CWS signature.
type deflateSink struct{ buf []byte }

func (s *deflateSink) write(p []byte) { s.buf = append(s.buf, p...) }

func (s *deflateSink) output() []byte {
	zr, err := zlib.NewReader(bytes.NewReader(s.buf))
	if err != nil {
		return nil // header not fully buffered yet
	}
	defer zr.Close()
	out, _ := ioutil.ReadAll(zr) // ignore truncation errors: more bytes may still arrive
	return out
}

// lzmaSink decompresses the raw (headerless alone-format) LZMA stream
// following a ZWS signature.
type lzmaSink struct{ buf []byte }

func (s *lzmaSink) write(p []byte) { s.buf = append(s.buf, p...) }

func (s *lzmaSink) output() []byte {
	lr, err := lzma.NewReader(bytes.NewReader(s.buf))
	if err != nil {
		return nil
	}
	out, err := ioutil.ReadAll(lr)
	if err != nil && err != io.EOF {
		// Keep whatever prefix decoded; a genuinely corrupt stream surfaces
		// once the caller tries to frame a tag from malformed bytes.
	}
	return out
}

// newSink selects the decompression backend for a signature's compression
// variant. ast.CompressionLzma always resolves to a working sink in this
// build since github.com/ulikunitz/xz/lzma is unconditionally linked; a
// build without an LZMA backend linked would report ErrLzmaUnavailable here
// instead, for a build that omits an LZMA backend.
func newSink(c ast.Compression) (sink, error) {
	switch c {
	case ast.CompressionNone:
		return &noneSink{}, nil
	case ast.CompressionDeflate:
		return &deflateSink{}, nil
	case ast.CompressionLzma:
		return &lzmaSink{}, nil
	default:
		return nil, ErrInvalidSignature
	}
}
