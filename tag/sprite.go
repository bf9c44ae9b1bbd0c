package tag

import (
	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/bitstream"
)

// tagBlockString iterates a tag-block string to the End sentinel, collecting
// decoded tags in order. It mirrors movie.parseTagBlock; duplicated here
// (rather than imported) since movie already imports tag and a sprite's
// nested tag stream must be parsed from within this package.
func tagBlockString(data []byte, formatVersion uint8) ([]ast.Tag, error) {
	var tags []ast.Tag
	for {
		rest, t, ok := ParseTag(data, formatVersion)
		if !ok {
			return tags, nil
		}
		tags = append(tags, t)
		if rest == nil {
			return tags, bitstream.ErrInvalid
		}
		data = rest
	}
}

func defineSprite(r *bitstream.Reader, formatVersion uint8) (ast.Tag, error) {
	id, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	frameCount, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	tags, err := tagBlockString(r.Bytes(), formatVersion)
	if err != nil {
		return nil, err
	}
	if err := r.Advance(r.Len()); err != nil {
		return nil, err
	}
	return ast.DefineSprite{ID: id, FrameCount: frameCount, Tags: tags}, nil
}
