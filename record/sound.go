package record

import (
	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/bitstream"
)

// SoundInfo reads a byte-aligned sound-info record: a flags byte followed
// by whichever of in-point/out-point/loop-count/envelope fields the flags
// select.
func SoundInfo(r *bitstream.Reader) (ast.SoundInfo, error) {
	if _, err := r.Bits(2); err != nil { // reserved
		return ast.SoundInfo{}, err
	}
	syncStop, err := r.Bool()
	if err != nil {
		return ast.SoundInfo{}, err
	}
	syncNoMultiple, err := r.Bool()
	if err != nil {
		return ast.SoundInfo{}, err
	}
	hasEnvelope, err := r.Bool()
	if err != nil {
		return ast.SoundInfo{}, err
	}
	hasLoopCount, err := r.Bool()
	if err != nil {
		return ast.SoundInfo{}, err
	}
	hasOutPoint, err := r.Bool()
	if err != nil {
		return ast.SoundInfo{}, err
	}
	hasInPoint, err := r.Bool()
	if err != nil {
		return ast.SoundInfo{}, err
	}

	info := ast.SoundInfo{
		HasInPoint: hasInPoint, HasOutPoint: hasOutPoint,
		HasLoopCount: hasLoopCount, HasEnvelope: hasEnvelope,
		SyncNoMultiple: syncNoMultiple, SyncStop: syncStop,
	}
	if hasInPoint {
		v, err := r.U32LE()
		if err != nil {
			return ast.SoundInfo{}, err
		}
		info.InPoint = v
	}
	if hasOutPoint {
		v, err := r.U32LE()
		if err != nil {
			return ast.SoundInfo{}, err
		}
		info.OutPoint = v
	}
	if hasLoopCount {
		v, err := r.U16LE()
		if err != nil {
			return ast.SoundInfo{}, err
		}
		info.LoopCount = v
	}
	if hasEnvelope {
		count, err := r.U8()
		if err != nil {
			return ast.SoundInfo{}, err
		}
		env := make([]ast.SoundEnvelopePoint, 0, count)
		for i := uint8(0); i < count; i++ {
			pos, err := r.U32LE()
			if err != nil {
				return ast.SoundInfo{}, err
			}
			left, err := r.U16LE()
			if err != nil {
				return ast.SoundInfo{}, err
			}
			right, err := r.U16LE()
			if err != nil {
				return ast.SoundInfo{}, err
			}
			env = append(env, ast.SoundEnvelopePoint{Pos44: pos, LeftLevel: left, RightLevel: right})
		}
		info.Envelope = env
	}
	return info, nil
}
