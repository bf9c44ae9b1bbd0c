package record

import (
	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/bitstream"
)

// clipEventFlagsFromBits maps the named events from in the bit order they occupy
// within the flags word (bit 0 first / least significant), common to both
// the 16-bit and extended 32-bit encodings.
func clipEventFlagsFromBits(bits uint32) ast.ClipEventFlags {
	has := func(i uint) bool { return bits&(1<<i) != 0 }
	return ast.ClipEventFlags{
		Load: has(0), EnterFrame: has(1), Unload: has(2), MouseMove: has(3),
		MouseDown: has(4), MouseUp: has(5), KeyDown: has(6), KeyUp: has(7),
		Data: has(8), Initialize: has(9), Press: has(10), Release: has(11),
		ReleaseOutside: has(12), RollOver: has(13), RollOut: has(14), DragOver: has(15),
		DragOut: has(16), KeyPress: has(17), Construct: has(18),
	}
}

// ClipEventFlags reads a 16- or 32-bit clip-event bitfield, selected by
// extended (true once the movie's format version allows the wider form).
func ClipEventFlags(r *bitstream.Reader, extended bool) (ast.ClipEventFlags, error) {
	width := uint(16)
	if extended {
		width = 32
	}
	v, err := r.Bits(width)
	if err != nil {
		return ast.ClipEventFlags{}, err
	}
	return clipEventFlagsFromBits(v), nil
}

// ClipActionString reads a clip-actions string: two reserved bytes, an
// "all events" flags word, then a sequence of per-event clip actions
// terminated by a zero flags word.
func ClipActionString(r *bitstream.Reader, extended bool) ([]ast.ClipAction, error) {
	if err := r.Skip(2); err != nil {
		return nil, err
	}
	allEventsWidth := 2
	if extended {
		allEventsWidth = 4
	}
	if err := r.Skip(allEventsWidth); err != nil {
		return nil, err
	}

	var actions []ast.ClipAction
	for {
		width := uint(16)
		if extended {
			width = 32
		}
		flags, err := r.Bits(width)
		if err != nil {
			return nil, err
		}
		if flags == 0 {
			break
		}
		events := clipEventFlagsFromBits(flags)

		actionsSize, err := r.U32LE()
		if err != nil {
			return nil, err
		}
		var keyCode *uint8
		if events.KeyPress {
			kc, err := r.U8()
			if err != nil {
				return nil, err
			}
			keyCode = &kc
			actionsSize--
		}
		body, err := r.ReadBytes(int(actionsSize))
		if err != nil {
			return nil, err
		}
		actions = append(actions, ast.ClipAction{Events: events, KeyCode: keyCode, Actions: ast.Action(body)})
	}
	return actions, nil
}
