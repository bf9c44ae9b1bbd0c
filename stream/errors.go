// Package stream implements the streaming driver: a push-style state
// machine that emits tags as soon as their bytes are available. Its sinks
// keep every compressed byte written so far and re-decompress all of it on
// each call, so memory use grows with the input seen, not with one tag.
package stream

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "stream: " + string(e) }

var (
	// ErrInvalidSignature reports an unrecognized 3-byte container marker.
	ErrInvalidSignature error = Error("invalid signature")

	// ErrInvalidMovie reports that the header could not be parsed from the
	// decompressed payload once enough of it was available.
	ErrInvalidMovie error = Error("invalid movie body")

	// ErrLzmaUnavailable reports a ZWS signature with no linked LZMA
	// backend. Unused by this build (github.com/ulikunitz/xz/lzma is always
	// linked) but kept as a named failure mode for builds that lack one.
	ErrLzmaUnavailable error = Error("lzma backend not linked")

	// ErrNoProgress reports that the sink's decompressed output is now
	// shorter than the bytes already consumed as header and tags, so the
	// driver cannot continue from where it left off. Buffered bytes that do
	// not yet frame a tag are not an error: Tags returns (nil, nil) for them.
	ErrNoProgress error = Error("buffered bytes cannot be framed into a tag")
)

// Incomplete reports that a tag could not yet be framed from the bytes
// available. Need, when nonzero, is the total number of decompressed body
// bytes (header included) the caller's next write should bring the buffer
// up to; zero means even the 2-byte header is not yet available.
type Incomplete struct{ Need int }

func (Incomplete) Error() string { return "stream: incomplete tag" }
