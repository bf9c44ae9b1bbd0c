package tag

import (
	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/bitstream"
	"github.com/archframe/moviefmt/record"
)

func buttonRecordString(r *bitstream.Reader, version ast.ButtonVersion) ([]ast.ButtonRecord, error) {
	var records []ast.ButtonRecord
	for {
		flags, err := r.U8()
		if err != nil {
			return nil, err
		}
		if flags == 0 {
			return records, nil
		}
		state := ast.ButtonState{
			StateUp: flags&0x01 != 0, StateOver: flags&0x02 != 0,
			StateDown: flags&0x04 != 0, StateHitTest: flags&0x08 != 0,
		}
		hasFilterList := flags&0x10 != 0
		hasBlendMode := flags&0x20 != 0

		id, err := r.U16LE()
		if err != nil {
			return nil, err
		}
		depth, err := r.U16LE()
		if err != nil {
			return nil, err
		}
		matrix, err := record.Matrix(r)
		if err != nil {
			return nil, err
		}
		rec := ast.ButtonRecord{State: state, CharacterID: id, Depth: depth, Matrix: matrix}
		if version >= ast.ButtonVersion2 {
			ct, err := record.ColorTransform(r, true)
			if err != nil {
				return nil, err
			}
			rec.ColorTransform = &ct
			if hasFilterList {
				filters, err := record.FilterList(r)
				if err != nil {
					return nil, err
				}
				rec.Filters = filters
			}
			if hasBlendMode {
				bm, err := r.U8()
				if err != nil {
					return nil, err
				}
				rec.BlendMode = bm
			}
		}
		records = append(records, rec)
	}
}

func keyPressFromFlags(flags uint16) *uint8 {
	code := uint8((flags >> 9) & 0x7f)
	if code == 0 {
		return nil
	}
	return &code
}

func buttonCondFromFlags(flags uint16) ast.ButtonCondition {
	return ast.ButtonCondition{
		IdleToOverUp:      flags&(1<<0) != 0,
		OverUpToIdle:      flags&(1<<1) != 0,
		OverUpToOverDown:  flags&(1<<2) != 0,
		OverDownToOverUp:  flags&(1<<3) != 0,
		OverDownToOutDown: flags&(1<<4) != 0,
		OutDownToOverDown: flags&(1<<5) != 0,
		OutDownToIdle:     flags&(1<<6) != 0,
		IdleToOverDown:    flags&(1<<7) != 0,
		OverDownToIdle:    flags&(1<<8) != 0,
		KeyPress:          keyPressFromFlags(flags),
	}
}

// buttonCondActions parses DefineButton2's condition-action table directly
// from raw bytes: each entry is a 2-byte offset to the next entry (0 for the
// last), a 2-byte condition-flags word, and an action blob. The action blob
// runs to the end of the data offered to this entry, not just to the next
// entry's offset — entries overlap in the same way the reference decoder's
// own cursor does, since next_action_offset is only ever used to relocate
// the cursor for the next entry's header, never to bound the current one.
func buttonCondActions(data []byte) ([]ast.ButtonCondAction, error) {
	var actions []ast.ButtonCondAction
	for {
		if len(data) < 4 {
			return nil, bitstream.ErrIncomplete
		}
		offset := uint16(data[0]) | uint16(data[1])<<8
		flags := uint16(data[2]) | uint16(data[3])<<8
		cond := buttonCondFromFlags(flags)
		actions = append(actions, ast.ButtonCondAction{Condition: cond, Actions: ast.Action(data[4:])})
		if offset == 0 {
			return actions, nil
		}
		if int(offset) > len(data) {
			return nil, bitstream.ErrInvalid
		}
		data = data[offset:]
	}
}

func defineButton(r *bitstream.Reader, version ast.ButtonVersion) (ast.Tag, error) {
	id, err := r.U16LE()
	if err != nil {
		return nil, err
	}

	if version == ast.ButtonVersion1 {
		records, err := buttonRecordString(r, version)
		if err != nil {
			return nil, err
		}
		return ast.DefineButton{Version: version, ID: id, Records: records, Actions: ast.Action(r.Bytes())}, nil
	}

	if _, err := r.Bits(7); err != nil { // reserved
		return nil, err
	}
	trackAsMenu, err := r.Bool()
	if err != nil {
		return nil, err
	}
	actionOffset, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	records, err := buttonRecordString(r, version)
	if err != nil {
		return nil, err
	}
	d := ast.DefineButton{Version: version, ID: id, TrackAsMenu: trackAsMenu, Records: records}
	if actionOffset != 0 {
		actions, err := buttonCondActions(r.Bytes())
		if err != nil {
			return nil, err
		}
		d.CondActions = actions
	}
	return d, nil
}

func defineButtonColorTransform(r *bitstream.Reader) (ast.Tag, error) {
	id, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	var cts []ast.ColorTransform
	for r.Len() > 0 {
		ct, err := record.ColorTransform(r, false)
		if err != nil {
			return nil, err
		}
		cts = append(cts, ct)
	}
	return ast.DefineButtonColorTransform{ButtonID: id, ColorTransforms: cts}, nil
}

func buttonSound(r *bitstream.Reader) (ast.ButtonSoundEntry, error) {
	id, err := r.U16LE()
	if err != nil {
		return ast.ButtonSoundEntry{}, err
	}
	if id == 0 {
		return ast.ButtonSoundEntry{ID: 0}, nil
	}
	info, err := record.SoundInfo(r)
	if err != nil {
		return ast.ButtonSoundEntry{}, err
	}
	return ast.ButtonSoundEntry{ID: id, Info: info}, nil
}

func defineButtonSound(r *bitstream.Reader) (ast.Tag, error) {
	id, err := r.U16LE()
	if err != nil {
		return nil, err
	}
	var sounds [4]ast.ButtonSoundEntry
	for i := range sounds {
		s, err := buttonSound(r)
		if err != nil {
			return nil, err
		}
		sounds[i] = s
	}
	return ast.DefineButtonSound{ButtonID: id, Sounds: sounds}, nil
}
