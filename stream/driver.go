package stream

import (
	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/bitstream"
	"github.com/archframe/moviefmt/movie"
	"github.com/archframe/moviefmt/tag"
)

// HeaderParser buffers raw input until the signature and, once decompressed,
// the movie header can be parsed, then hands off to a TagParser.
type HeaderParser struct {
	buf []byte // every raw byte seen so far, signature included
}

// NewHeaderParser returns a driver positioned at AwaitingSignature.
func NewHeaderParser() *HeaderParser {
	return &HeaderParser{}
}

// Header appends newly-arrived bytes and attempts to parse the signature and
// header. It returns (zero, nil, nil) while more input is still needed — a
// safe state to retry once more bytes arrive — a non-nil error for a
// malformed signature or an unsupported/unavailable compression backend, or
// the decoded header plus a TagParser ready to consume the remaining,
// still-compressed tag stream.
func (p *HeaderParser) Header(data []byte) (ast.MovieHeader, *TagParser, error) {
	p.buf = append(p.buf, data...)
	if len(p.buf) < 8 {
		return ast.MovieHeader{}, nil, nil
	}

	sr := bitstream.NewReader(p.buf)
	sig, err := movie.Signature(sr)
	if err != nil {
		return ast.MovieHeader{}, nil, ErrInvalidSignature
	}

	snk, err := newSink(sig.Compression)
	if err != nil {
		return ast.MovieHeader{}, nil, err
	}
	snk.write(sr.Bytes())

	out := snk.output()
	hr := bitstream.NewReader(out)
	hdr, err := movie.Header(hr)
	if err != nil {
		// bitstream distinguishes "ran out of bytes" (ErrIncomplete) from "the
		// bytes present don't decode" (everything else): the former recovers
		// by waiting for more input, the latter never will, however many more
		// bytes eventually arrive. movie.Header itself only fails with
		// ErrIncomplete, so the second branch is defensive.
		if err == bitstream.ErrIncomplete {
			return ast.MovieHeader{}, nil, nil
		}
		return ast.MovieHeader{}, nil, ErrInvalidMovie
	}
	consumed, bitOff := hr.BitPos()
	if bitOff != 0 {
		consumed++ // movie.Header always leaves the cursor byte-aligned; defensive only.
	}

	return hdr, &TagParser{
		sink:            snk,
		formatVersion:   sig.Version,
		consumed:        consumed,
		fontGlyphCounts: make(map[uint16]int),
	}, nil
}

// TagParser keeps feeding raw bytes into the sink selected by HeaderParser
// and decodes as many complete tags as the sink's cumulative output
// currently supports.
type TagParser struct {
	sink            sink
	formatVersion   uint8
	consumed        int // decompressed bytes already turned into header + tags
	finished        bool
	fontGlyphCounts map[uint16]int // per-font glyph counts seen on DefineFont* tags
}

// Tags appends newly-arrived, still-compressed bytes and decodes every
// complete tag the sink's output now supports. It returns (nil, nil) when no
// new tag is available yet — whether because more input is needed or
// because the End sentinel was already observed in an earlier call — and a
// non-nil error when a recognized tag's body failed to decode (propagated,
// not downgraded to Raw) or the sink's output has become shorter than the
// bytes already consumed (ErrNoProgress).
func (tp *TagParser) Tags(data []byte) ([]ast.Tag, error) {
	if tp.finished {
		return nil, nil
	}
	tp.sink.write(data)
	out := tp.sink.output()
	if tp.consumed > len(out) {
		return nil, ErrNoProgress
	}
	pending := out[tp.consumed:]

	var tags []ast.Tag
	for {
		n, t, end, err := parseOneTagStreaming(pending, tp.formatVersion, tp.fontGlyphCounts)
		if _, incomplete := err.(Incomplete); incomplete {
			break
		}
		if err != nil {
			return tags, err
		}
		tp.consumed += n
		pending = pending[n:]
		if end {
			tp.finished = true
			break
		}
		tags = append(tags, t)
	}
	return tags, nil
}

// Finished reports whether the End sentinel has been observed: a convenient
// way for a caller to distinguish the two causes folded into a (nil, nil)
// return from Tags.
func (tp *TagParser) Finished() bool { return tp.finished }

// parseOneTagStreaming frames and decodes exactly one tag from data. It
// never consumes a partial tag: if the header or the declared body is not
// yet fully present, it returns Incomplete and n == 0.
func parseOneTagStreaming(data []byte, formatVersion uint8, fontGlyphCounts map[uint16]int) (n int, t ast.Tag, end bool, err error) {
	r := bitstream.NewReader(data)
	hdr, err := tag.Header(r)
	if err != nil {
		return 0, nil, false, Incomplete{}
	}
	headerSize, _ := r.BitPos()

	if hdr.Code == ast.CodeEnd {
		return headerSize, nil, true, nil
	}

	total := headerSize + int(hdr.Length)
	if len(data) < total {
		return 0, nil, false, Incomplete{Need: total}
	}
	body := data[headerSize:total]

	var decoded ast.Tag
	switch {
	case hdr.Code == ast.CodeDefineFontAlignZones:
		decoded, err = decodeFontAlignZonesStreaming(body, fontGlyphCounts)
	case tag.KnownCode(hdr.Code):
		decoded, err = tag.Body(hdr.Code, body, formatVersion)
	default:
		code := hdr.Code
		decoded, err = ast.Raw{Code: &code, Data: body}, nil
	}
	if err != nil {
		return total, nil, false, err
	}
	recordFontGlyphCount(fontGlyphCounts, decoded)
	return total, decoded, false, nil
}

// decodeFontAlignZonesStreaming reads the font id that opens a
// DefineFontAlignZones body, looks up its previously-recorded glyph count,
// and decodes exactly that many zone records instead of scanning the body
// to exhaustion.
func decodeFontAlignZonesStreaming(body []byte, fontGlyphCounts map[uint16]int) (ast.Tag, error) {
	if len(body) < 2 {
		return nil, bitstream.ErrIncomplete
	}
	fontID := uint16(body[0]) | uint16(body[1])<<8
	r := bitstream.NewReader(body)
	return tag.DefineFontAlignZonesCounted(r, fontGlyphCounts[fontID])
}

// recordFontGlyphCount updates the per-font glyph-count side table after a
// DefineFont-family tag is decoded, so a later DefineFontAlignZones for the
// same font id can size its zone list.
func recordFontGlyphCount(fontGlyphCounts map[uint16]int, t ast.Tag) {
	switch v := t.(type) {
	case ast.DefineGlyphFont:
		fontGlyphCounts[v.ID] = len(v.Glyphs)
	case ast.DefineFont:
		fontGlyphCounts[v.ID] = len(v.Glyphs)
	}
}
