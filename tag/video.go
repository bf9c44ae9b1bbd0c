package tag

import (
	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/bitstream"
)

func videoCodecFromCode(code uint8) (ast.VideoCodec, error) {
	if code > uint8(ast.VideoCodecAvc) {
		return 0, bitstream.ErrInvalid
	}
	return ast.VideoCodec(code), nil
}

func defineVideoStream(r *bitstream.Reader) (ast.Tag, error) {
	id, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	frameCount, err := r.U16LE()
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
	flags, err := r.U8()
	if err != nil {
		return nil, err
	}
	codecID, err := r.U8()
	if err != nil {
		return nil, err
	}
	codec, err := videoCodecFromCode(codecID)
	if err != nil {
		return nil, err
	}
	return ast.DefineVideoStream{
		ID: id, FrameCount: frameCount, Width: width, Height: height,
		Smoothing:  flags&0x01 != 0,
		Deblocking: ast.VideoDeblocking((flags >> 1) & 0b111),
		Codec:      codec,
	}, nil
}

func videoFrame(r *bitstream.Reader) (ast.Tag, error) {
	id, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	frame, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	return ast.VideoFrame{StreamID: id, FrameNum: frame, VideoData: r.Bytes()}, nil
}
