// Package tag implements the tag framer and the body registry: the ~60-code
// dispatch table that decodes a tag's body bytes into its strongly-typed
// ast.Tag variant, reusing the record, shape, and morphshape packages for
// the structures they already know how to read.
package tag

import (
	"github.com/archframe/moviefmt/ast"
	"github.com/archframe/moviefmt/bitstream"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "tag: " + string(e) }

// Header reads a tag's 2- or 6-byte header: a packed code/length word, with
// a 32-bit long-length escape when the packed length field reads all ones.
func Header(r *bitstream.Reader) (ast.TagHeader, error) {
	raw, err := r.U16LE()
	if err != nil {
		return ast.TagHeader{}, err
	}
	code := raw >> 6
	length := uint32(raw & 0x3F)
	if length == 0x3F {
		length, err = r.U32LE()
		if err != nil {
			return ast.TagHeader{}, err
		}
	}
	return ast.TagHeader{Code: code, Length: length}, nil
}

// ParseTag reads one framed tag from data: its header, then exactly
// Length body bytes. It returns the bytes following the consumed tag, the
// decoded tag, and ok. ok is false at a clean end of input (code 0, or an
// empty buffer); it is never false merely because a body failed to parse —
// a malformed but well-framed body downgrades to Raw rather than aborting
// the tag stream.
//
// A tag whose own header or length cannot be framed from the bytes
// available also downgrades to a nil-Code Raw, with remaining returned as
// nil. That Raw is not usable recovered output: both tag-block callers
// (movie.parseTagBlock and this package's own tagBlockString) treat a nil
// remaining as a hard error and discard the tags they have collected so
// far, the appended Raw included. A truncated trailing tag genuinely
// invalidates the whole block; the nil-Code Raw exists so ParseTag itself
// always returns a concrete tag value, not to hand callers a partial
// result.
func ParseTag(data []byte, formatVersion uint8) (remaining []byte, t ast.Tag, ok bool) {
	if len(data) == 0 {
		return data, nil, false
	}
	r := bitstream.NewReader(data)
	hdr, err := Header(r)
	if err != nil {
		return nil, ast.Raw{Data: data}, true
	}
	if hdr.Code == ast.CodeEnd {
		return r.Bytes(), nil, false
	}
	body, err := r.ReadBytes(int(hdr.Length))
	if err != nil {
		return nil, ast.Raw{Data: data}, true
	}
	remaining = r.Bytes()

	code := hdr.Code
	decoded, err := Body(code, body, formatVersion)
	if err != nil {
		return remaining, ast.Raw{Code: &code, Data: body}, true
	}
	return remaining, decoded, true
}

// Body dispatches on a tag's wire code and decodes its already-framed body
// bytes into the matching ast.Tag variant. Unknown codes and codes whose
// decoder fails both return an error; callers in the complete parser
// downgrade that to Raw.
func Body(code uint16, body []byte, formatVersion uint8) (ast.Tag, error) {
	r := bitstream.NewReader(body)
	switch code {
	case ast.CodeShowFrame:
		return ast.ShowFrame{}, nil
	case ast.CodeEnablePostscript:
		return ast.EnablePostscript{}, nil

	case ast.CodeDefineShape:
		return defineShape(r, ast.ShapeVersion1)
	case ast.CodeDefineShape2:
		return defineShape(r, ast.ShapeVersion2)
	case ast.CodeDefineShape3:
		return defineShape(r, ast.ShapeVersion3)
	case ast.CodeDefineShape4:
		return defineShape(r, ast.ShapeVersion4)

	case ast.CodeDefineMorphShape:
		return defineMorphShape(r, ast.MorphShapeVersion1)
	case ast.CodeDefineMorphShape2:
		return defineMorphShape(r, ast.MorphShapeVersion2)

	case ast.CodeDefineSprite:
		return defineSprite(r, formatVersion)

	case ast.CodePlaceObject:
		return placeObject(r)
	case ast.CodePlaceObject2:
		return placeObject2(r, formatVersion)
	case ast.CodePlaceObject3:
		return placeObject3(r, formatVersion)
	case ast.CodeRemoveObject:
		return removeObject(r)
	case ast.CodeRemoveObject2:
		return removeObject2(r)

	case ast.CodeDefineButton:
		return defineButton(r, ast.ButtonVersion1)
	case ast.CodeDefineButton2:
		return defineButton(r, ast.ButtonVersion2)
	case ast.CodeDefineButtonColorTransform:
		return defineButtonColorTransform(r)
	case ast.CodeDefineButtonSound:
		return defineButtonSound(r)

	case ast.CodeDefineGlyphFont:
		return defineGlyphFont(r)
	case ast.CodeDefineFont2:
		return defineFont(r, ast.FontVersion2)
	case ast.CodeDefineFont3:
		return defineFont(r, ast.FontVersion3)
	case ast.CodeDefineCffFont:
		return defineCffFont(r)
	case ast.CodeDefineFontInfo:
		return defineFontInfo(r, ast.FontInfoVersion1)
	case ast.CodeDefineFontInfo2:
		return defineFontInfo(r, ast.FontInfoVersion2)
	case ast.CodeDefineFontAlignZones:
		return defineFontAlignZones(r)
	case ast.CodeDefineFontName:
		return defineFontName(r)
	case ast.CodeCsmTextSettings:
		return csmTextSettings(r)

	case ast.CodeDefineText:
		return defineText(r, ast.TextVersion1)
	case ast.CodeDefineText2:
		return defineText(r, ast.TextVersion2)
	case ast.CodeDefineEditText:
		return defineEditText(r)

	case ast.CodeDefineJpegTables:
		return ast.DefineJpegTables{Data: r.Bytes()}, nil
	case ast.CodeDefineBits:
		return defineBits(r, formatVersion)
	case ast.CodeDefineBitsJpeg2:
		return defineBitsJpeg2(r, formatVersion)
	case ast.CodeDefineBitsJpeg3:
		return defineBitsJpeg34(r, formatVersion, false)
	case ast.CodeDefineBitsJpeg4:
		return defineBitsJpeg34(r, formatVersion, true)
	case ast.CodeDefineBitsLossless:
		return defineBitsLossless(r, 1)
	case ast.CodeDefineBitsLossless2:
		return defineBitsLossless(r, 2)

	case ast.CodeDefineVideoStream:
		return defineVideoStream(r)
	case ast.CodeVideoFrame:
		return videoFrame(r)

	case ast.CodeDefineSound:
		return defineSound(r)
	case ast.CodeStartSound:
		return startSound(r, 1)
	case ast.CodeStartSound2:
		return startSound(r, 2)
	case ast.CodeSoundStreamHead:
		return soundStreamHead(r, 1)
	case ast.CodeSoundStreamHead2:
		return soundStreamHead(r, 2)
	case ast.CodeSoundStreamBlock:
		return ast.SoundStreamBlock{Data: r.Bytes()}, nil

	case ast.CodeSetBackgroundColor:
		return setBackgroundColor(r)
	case ast.CodeProtect:
		return protect(r)
	case ast.CodeFrameLabel:
		return frameLabel(r)
	case ast.CodeExportAssets:
		return exportAssets(r)
	case ast.CodeImportAssets:
		return importAssets(r, 1)
	case ast.CodeImportAssets2:
		return importAssets(r, 2)
	case ast.CodeEnableDebugger:
		return enableDebugger(r, 1)
	case ast.CodeEnableDebugger2:
		return enableDebugger(r, 2)
	case ast.CodeDoAction:
		return ast.DoAction{Actions: ast.Action(r.Bytes())}, nil
	case ast.CodeDoInitAction:
		return doInitAction(r)
	case ast.CodeDoAbc:
		return doAbc(r)
	case ast.CodeScriptLimits:
		return scriptLimits(r)
	case ast.CodeSetTabIndex:
		return setTabIndex(r)
	case ast.CodeFileAttributes:
		return fileAttributes(r)
	case ast.CodeSymbolClass:
		return symbolClass(r)
	case ast.CodeMetadata:
		return metadata(r)
	case ast.CodeDefineScalingGrid:
		return defineScalingGrid(r)
	case ast.CodeDefineSceneAndFrameLabelData:
		return defineSceneAndFrameLabelData(r)
	case ast.CodeDefineBinaryData:
		return defineBinaryData(r)
	case ast.CodeEnableTelemetry:
		return enableTelemetry(r)

	default:
		return nil, bitstream.ErrInvalid
	}
}

// KnownCode reports whether code has a body decoder in the registry. The
// complete parser downgrades both unknown codes and decode failures to Raw
// uniformly, so it has no need of this distinction; the streaming driver
// uses it to tell "unknown code, fall back to Raw" apart from "recognized
// code, body decode failed" (the latter propagates as an error).
func KnownCode(code uint16) bool {
	switch code {
	case ast.CodeShowFrame, ast.CodeEnablePostscript,
		ast.CodeDefineShape, ast.CodeDefineShape2, ast.CodeDefineShape3, ast.CodeDefineShape4,
		ast.CodeDefineMorphShape, ast.CodeDefineMorphShape2,
		ast.CodeDefineSprite,
		ast.CodePlaceObject, ast.CodePlaceObject2, ast.CodePlaceObject3,
		ast.CodeRemoveObject, ast.CodeRemoveObject2,
		ast.CodeDefineButton, ast.CodeDefineButton2,
		ast.CodeDefineButtonColorTransform, ast.CodeDefineButtonSound,
		ast.CodeDefineGlyphFont, ast.CodeDefineFont2, ast.CodeDefineFont3, ast.CodeDefineCffFont,
		ast.CodeDefineFontInfo, ast.CodeDefineFontInfo2, ast.CodeDefineFontAlignZones,
		ast.CodeDefineFontName, ast.CodeCsmTextSettings,
		ast.CodeDefineText, ast.CodeDefineText2, ast.CodeDefineEditText,
		ast.CodeDefineJpegTables, ast.CodeDefineBits, ast.CodeDefineBitsJpeg2,
		ast.CodeDefineBitsJpeg3, ast.CodeDefineBitsJpeg4,
		ast.CodeDefineBitsLossless, ast.CodeDefineBitsLossless2,
		ast.CodeDefineVideoStream, ast.CodeVideoFrame,
		ast.CodeDefineSound, ast.CodeStartSound, ast.CodeStartSound2,
		ast.CodeSoundStreamHead, ast.CodeSoundStreamHead2, ast.CodeSoundStreamBlock,
		ast.CodeSetBackgroundColor, ast.CodeProtect, ast.CodeFrameLabel,
		ast.CodeExportAssets, ast.CodeImportAssets, ast.CodeImportAssets2,
		ast.CodeEnableDebugger, ast.CodeEnableDebugger2,
		ast.CodeDoAction, ast.CodeDoInitAction, ast.CodeDoAbc,
		ast.CodeScriptLimits, ast.CodeSetTabIndex, ast.CodeFileAttributes,
		ast.CodeSymbolClass, ast.CodeMetadata, ast.CodeDefineScalingGrid,
		ast.CodeDefineSceneAndFrameLabelData, ast.CodeDefineBinaryData,
		ast.CodeEnableTelemetry:
		return true
	default:
		return false
	}
}
