package tag

import (
	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/bitstream"
	"github.com/archframe/moviefmt/record"
)

// isUncompressedAudioFormat reports whether a sound format code leaves PCM
// samples at their declared size; every other format's decoder always
// stores 16-bit samples regardless of the size bit in the header.
func isUncompressedAudioFormat(format uint8) bool {
	return format == 0 || format == 3 // UncompressedNativeEndian, UncompressedLittleEndian
}

func defineSound(r *bitstream.Reader) (ast.Tag, error) {
	id, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	flags, err := r.U8()
	if err != nil {
		return nil, err
	}
	format := (flags >> 4) & 0b1111
	rate := (flags >> 2) & 0b11
	size := (flags >> 1) & 1
	soundType := flags & 1
	if !isUncompressedAudioFormat(format) {
		size = 1
	}
	sampleCount, err := r.U32LE()
	if err != nil {
		return nil, err
	}
	return ast.DefineSound{
		ID: id, SoundFormat: format, SoundRate: rate, SoundSize: size, SoundType: soundType,
		SoundSampleCount: sampleCount, Data: r.Bytes(),
	}, nil
}

func startSound(r *bitstream.Reader, version int) (ast.Tag, error) {
	s := ast.StartSound{Version: version}
	if version == 1 {
		id, err := r.U16LE()
		if err != nil {
			return nil, err
		}
		s.SoundID = id
	} else {
		name, err := r.NulString()
		if err != nil {
			return nil, err
		}
		s.SoundClassName = name
	}
	info, err := record.SoundInfo(r)
	if err != nil {
		return nil, err
	}
	s.SoundInfo = info
	return s, nil
}

func soundStreamHead(r *bitstream.Reader, version int) (ast.Tag, error) {
	flags, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	playbackType := uint8(flags & 1)
	playbackSize := uint8((flags >> 1) & 1)
	playbackRate := uint8((flags >> 2) & 0b11)
	streamType := uint8((flags >> 8) & 1)
	streamSize := uint8((flags >> 9) & 1)
	streamRate := uint8((flags >> 10) & 0b11)
	streamFormat := uint8((flags >> 12) & 0b1111)
	if !isUncompressedAudioFormat(streamFormat) {
		streamSize = 1
	}

	sampleCount, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	h := ast.SoundStreamHead{
		Version:                version,
		PlaybackSoundType:      playbackType,
		PlaybackSoundSize:      playbackSize,
		PlaybackSoundRate:      playbackRate,
		StreamSoundCompression: streamFormat,
		StreamSoundType:        streamType,
		StreamSoundSize:        streamSize,
		StreamSoundRate:        streamRate,
		StreamSoundSampleCount: sampleCount,
	}
	const mp3Format = 2
	if streamFormat == mp3Format {
		v, err := r.I16LE()
		if err != nil {
			return nil, err
		}
		h.LatencySeek = v
	}
	return h, nil
}
