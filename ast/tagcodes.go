package ast

// Tag codes, as assigned by the container format. Unlisted codes are
// unknown and always decode to Raw.
const (
	CodeShowFrame                   = 1
	CodeDefineShape                 = 2
	CodePlaceObject                 = 4
	CodeRemoveObject                = 5
	CodeDefineBits                  = 6
	CodeDefineButton                = 7
	CodeDefineJpegTables             = 8
	CodeSetBackgroundColor          = 9
	CodeDefineGlyphFont             = 10
	CodeDefineText                  = 11
	CodeDoAction                    = 12
	CodeDefineFontInfo              = 13
	CodeDefineSound                 = 14
	CodeStartSound                  = 15
	CodeDefineButtonSound           = 17
	CodeSoundStreamHead             = 18
	CodeSoundStreamBlock            = 19
	CodeDefineBitsLossless          = 20
	CodeDefineBitsJpeg2             = 21
	CodeDefineShape2                = 22
	CodeDefineButtonColorTransform  = 23
	CodeProtect                     = 24
	CodeEnablePostscript            = 25
	CodePlaceObject2                = 26
	CodeRemoveObject2               = 28
	CodeDefineShape3                = 32
	CodeDefineText2                 = 33
	CodeDefineButton2               = 34
	CodeDefineBitsJpeg3             = 35
	CodeDefineBitsLossless2         = 36
	CodeDefineEditText              = 37
	CodeDefineSprite                = 39
	CodeFrameLabel                  = 43
	CodeSoundStreamHead2            = 45
	CodeDefineMorphShape            = 46
	CodeDefineFont2                 = 48
	CodeExportAssets                = 56
	CodeImportAssets                = 57
	CodeEnableDebugger              = 58
	CodeDoInitAction                = 59
	CodeDefineVideoStream           = 60
	CodeVideoFrame                  = 61
	CodeDefineFontInfo2             = 62
	CodeEnableDebugger2             = 64
	CodeScriptLimits                = 65
	CodeSetTabIndex                 = 66
	CodeFileAttributes              = 69
	CodePlaceObject3                = 70
	CodeImportAssets2               = 71
	CodeDefineFontAlignZones        = 73
	CodeCsmTextSettings             = 74
	CodeDefineFont3                 = 75
	CodeSymbolClass                 = 76
	CodeMetadata                    = 77
	CodeDefineScalingGrid           = 78
	CodeDoAbc                       = 82
	CodeDefineShape4                = 83
	CodeDefineMorphShape2           = 84
	CodeDefineSceneAndFrameLabelData = 86
	CodeDefineBinaryData            = 87
	CodeDefineFontName              = 88
	CodeStartSound2                 = 89
	CodeDefineBitsJpeg4             = 90
	CodeDefineCffFont               = 91
	CodeEnableTelemetry             = 93

	CodeEnd = 0
	CodeRaw = -1 // not a real wire code, used by Raw.tagCode
)
