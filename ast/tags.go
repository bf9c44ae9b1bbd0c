package ast

// Raw is the catch-all tag variant: a body the registry either does not
// recognize, or recognized but failed to parse. Code is nil only when even
// the tag's own header could not be framed (tag.ParseTag's whole-input
// fallback); otherwise it carries the known wire code and Data
// holds exactly the framed body bytes.
type Raw struct {
	Code *uint16
	Data []byte
}

func (Raw) tagCode() int { return CodeRaw }

// ShowFrame has no body.
type ShowFrame struct{}

func (ShowFrame) tagCode() int { return CodeShowFrame }

// DefineShape is the version-parameterized shape-definition tag (codes 2,
// 22, 32, 83).
type DefineShape struct {
	Version ShapeVersion
	ID      uint16
	Bounds  Rect
	Shape   Shape

	// DefineShape4 (version 4) only.
	EdgeBounds          *Rect
	HasFillWinding      bool
	HasNonScalingStrokes bool
	HasScalingStrokes   bool
}

func (DefineShape) tagCode() int { return CodeDefineShape }

// DefineMorphShape is the version-parameterized morph-shape tag (codes 46,
// 84).
type DefineMorphShape struct {
	Version     MorphShapeVersion
	ID          uint16
	Bounds      Rect
	MorphBounds Rect

	// DefineMorphShape2 (version 2) only.
	EdgeBounds          *Rect
	MorphEdgeBounds      *Rect
	HasNonScalingStrokes bool
	HasScalingStrokes    bool

	MorphShape MorphShape
}

func (DefineMorphShape) tagCode() int { return CodeDefineMorphShape }

// PlaceObject is the version-1 display-list placement tag (code 4).
type PlaceObject struct {
	CharacterID    uint16
	Depth          uint16
	Matrix         Matrix
	ColorTransform *ColorTransform // alpha fixed at 1.0 when present
}

func (PlaceObject) tagCode() int { return CodePlaceObject }

// PlaceObject2 is the flag-driven v2 placement tag (code 26).
type PlaceObject2 struct {
	Move           bool
	Depth          uint16
	CharacterID    *uint16
	Matrix         *Matrix
	ColorTransform *ColorTransform
	Ratio          *uint16
	Name           *string
	ClipDepth      *uint16
	ClipActions    []ClipAction
}

func (PlaceObject2) tagCode() int { return CodePlaceObject2 }

// PlaceObject3 extends PlaceObject2 with filters, blend mode, bitmap
// caching, a linked class name, and visibility/background overrides (code
// 70).
type PlaceObject3 struct {
	PlaceObject2
	ClassName       *string
	Filters         []Filter
	BlendMode       uint8
	BitmapCache     uint8
	Visible         *bool
	BackgroundColor *StraightSRgba8
}

func (PlaceObject3) tagCode() int { return CodePlaceObject3 }

// RemoveObject removes a placed character by id and depth (code 5).
type RemoveObject struct {
	CharacterID uint16
	Depth       uint16
}

func (RemoveObject) tagCode() int { return CodeRemoveObject }

// RemoveObject2 removes a placed character by depth only (code 28).
type RemoveObject2 struct {
	Depth uint16
}

func (RemoveObject2) tagCode() int { return CodeRemoveObject2 }

// SetBackgroundColor sets the movie's background color (code 9).
type SetBackgroundColor struct {
	Color SRgb8
}

func (SetBackgroundColor) tagCode() int { return CodeSetBackgroundColor }

// Protect marks a movie non-editable, with an optional MD5 password digest
// (code 24).
type Protect struct {
	Password []byte
}

func (Protect) tagCode() int { return CodeProtect }

// EnablePostscript has no body (code 25).
type EnablePostscript struct{}

func (EnablePostscript) tagCode() int { return CodeEnablePostscript }

// FrameLabel names the current frame, optionally as an anchor (code 43).
type FrameLabel struct {
	Name         string
	NamedAnchor  bool
}

func (FrameLabel) tagCode() int { return CodeFrameLabel }

// DefineSprite defines a nested, independently-timed tag stream (code 39).
type DefineSprite struct {
	ID         uint16
	FrameCount uint16
	Tags       []Tag
}

func (DefineSprite) tagCode() int { return CodeDefineSprite }

// ExportAssets exposes character ids under names for cross-movie linking
// (code 56).
type ExportAssets struct {
	Assets []NamedID
}

func (ExportAssets) tagCode() int { return CodeExportAssets }

// ImportAssets imports named characters from another movie by URL (codes
// 57, 71).
type ImportAssets struct {
	Version int // 1 or 2
	URL     string
	Assets  []NamedID
}

func (ImportAssets) tagCode() int { return CodeImportAssets }

// EnableDebugger carries a debugger password digest (codes 58, 64).
type EnableDebugger struct {
	Version  int // 1 or 2
	Password string
}

func (EnableDebugger) tagCode() int { return CodeEnableDebugger }

// DoAction carries an opaque AVM1 action blob executed on the current frame
// (code 12).
type DoAction struct {
	Actions Action
}

func (DoAction) tagCode() int { return CodeDoAction }

// DoInitAction carries an opaque AVM1 action blob for a sprite's
// initialization (code 59).
type DoInitAction struct {
	SpriteID uint16
	Actions  Action
}

func (DoInitAction) tagCode() int { return CodeDoInitAction }

// DoAbc carries an opaque AVM2 ABC bytecode blob (code 82).
type DoAbc struct {
	Flags uint32
	Name  string
	Data  []byte
}

func (DoAbc) tagCode() int { return CodeDoAbc }

// ScriptLimits overrides the player's recursion depth and script timeout
// (code 65).
type ScriptLimits struct {
	MaxRecursionDepth    uint16
	ScriptTimeoutSeconds uint16
}

func (ScriptLimits) tagCode() int { return CodeScriptLimits }

// SetTabIndex sets a placed character's keyboard tab order (code 66).
type SetTabIndex struct {
	Depth    uint16
	TabIndex uint16
}

func (SetTabIndex) tagCode() int { return CodeSetTabIndex }

// FileAttributes declares top-level movie capabilities (code 69).
type FileAttributes struct {
	UseNetwork           bool
	UseRelativeUrls      bool
	NoCrossDomainCaching bool
	UseAS3               bool
	HasMetadata          bool
	UseGpu               bool
	UseDirectBlit        bool
}

func (FileAttributes) tagCode() int { return CodeFileAttributes }

// SymbolClass links character ids to class names for AVM2 (code 76).
type SymbolClass struct {
	Symbols []NamedID
}

func (SymbolClass) tagCode() int { return CodeSymbolClass }

// Metadata carries an opaque RDF/XMP metadata string (code 77).
type Metadata struct {
	Metadata string
}

func (Metadata) tagCode() int { return CodeMetadata }

// DefineScalingGrid attaches 9-slice scaling bounds to a character (code
// 78).
type DefineScalingGrid struct {
	CharacterID uint16
	Splitter    Rect
}

func (DefineScalingGrid) tagCode() int { return CodeDefineScalingGrid }

// SceneEntry is one (offset, name) pair inside
// DefineSceneAndFrameLabelData's scene or frame-label tables.
type SceneEntry struct {
	Offset uint32
	Name   string
}

// DefineSceneAndFrameLabelData carries the scene and frame-label tables for
// AVM2 movies (code 86).
type DefineSceneAndFrameLabelData struct {
	Scenes      []SceneEntry
	FrameLabels []SceneEntry
}

func (DefineSceneAndFrameLabelData) tagCode() int { return CodeDefineSceneAndFrameLabelData }

// DefineBinaryData embeds an opaque asset blob (code 87).
type DefineBinaryData struct {
	ID   uint16
	Data []byte
}

func (DefineBinaryData) tagCode() int { return CodeDefineBinaryData }

// EnableTelemetry carries an optional SHA-256 policy digest (code 93).
type EnableTelemetry struct {
	Password []byte
}

func (EnableTelemetry) tagCode() int { return CodeEnableTelemetry }

// DefineButtonColorTransform attaches a per-character color transform to a
// DefineButton's records (code 23).
type DefineButtonColorTransform struct {
	ButtonID        uint16
	ColorTransforms []ColorTransform
}

func (DefineButtonColorTransform) tagCode() int { return CodeDefineButtonColorTransform }

// DefineJpegTables supplies a shared JPEG encoding table used by sibling
// DefineBits tags (code 8).
type DefineJpegTables struct {
	Data []byte
}

func (DefineJpegTables) tagCode() int { return CodeDefineJpegTables }

// ImageDimensions is the {width, height} pair extracted by sniffing an
// embedded raster's own format, when recoverable.
type ImageDimensions struct {
	Width, Height uint16
}

// DefineBits is the JPEG-family tag needing DefineJpegTables' shared
// encoding table (code 6).
type DefineBits struct {
	ID        uint16
	Dimensions *ImageDimensions
	ImageData []byte
}

func (DefineBits) tagCode() int { return CodeDefineBits }

// DefineBitsJpeg2 is a self-contained JPEG/PNG/GIF image tag (code 21).
type DefineBitsJpeg2 struct {
	ID         uint16
	Dimensions *ImageDimensions
	ImageData  []byte
}

func (DefineBitsJpeg2) tagCode() int { return CodeDefineBitsJpeg2 }

// DefineBitsJpeg3 adds a separate alpha-channel data block (code 35).
type DefineBitsJpeg3 struct {
	ID         uint16
	Dimensions *ImageDimensions
	ImageData  []byte
	AlphaData  []byte
}

func (DefineBitsJpeg3) tagCode() int { return CodeDefineBitsJpeg3 }

// DefineBitsJpeg4 adds a deblocking parameter on top of DefineBitsJpeg3
// (code 90).
type DefineBitsJpeg4 struct {
	DefineBitsJpeg3
	DeblockParam float64 // 8.8 fixed-point
}

func (DefineBitsJpeg4) tagCode() int { return CodeDefineBitsJpeg4 }

// DefineBitsLossless is the uncompressed/zlib-indexed bitmap tag (codes 20,
// 36).
type DefineBitsLossless struct {
	Version        int // 1 or 2
	ID             uint16
	BitmapFormat   uint8
	Width, Height  uint16
	ColorTableSize *uint8
	Data           []byte // zlib-compressed pixel/palette data, opaque
}

func (DefineBitsLossless) tagCode() int { return CodeDefineBitsLossless }

// VideoDeblocking selects a video stream's deblocking filter strength.
type VideoDeblocking int

const (
	VideoDeblockingPacketValue VideoDeblocking = iota
	VideoDeblockingOff
	VideoDeblockingLevel1
	VideoDeblockingLevel2
	VideoDeblockingLevel3
	VideoDeblockingLevel4
)

// VideoCodec identifies a video stream's codec.
type VideoCodec int

const (
	VideoCodecNone VideoCodec = iota
	VideoCodecJpeg
	VideoCodecSorenson
	VideoCodecScreen
	VideoCodecVp6
	VideoCodecVp6Alpha
	VideoCodecScreen2
	VideoCodecAvc
)

// DefineVideoStream declares a video character (code 60).
type DefineVideoStream struct {
	ID            uint16
	FrameCount    uint16
	Width, Height uint16
	Deblocking    VideoDeblocking
	Smoothing     bool
	Codec         VideoCodec
}

func (DefineVideoStream) tagCode() int { return CodeDefineVideoStream }

// VideoFrame carries one encoded frame of a video stream (code 61).
type VideoFrame struct {
	StreamID  uint16
	FrameNum  uint16
	VideoData []byte
}

func (VideoFrame) tagCode() int { return CodeVideoFrame }

// DefineSound declares an embedded sound sample (code 14).
type DefineSound struct {
	ID              uint16
	SoundFormat     uint8
	SoundRate       uint8
	SoundSize       uint8
	SoundType       uint8
	SoundSampleCount uint32
	Data            []byte
}

func (DefineSound) tagCode() int { return CodeDefineSound }

// StartSound triggers playback of a previously defined sound (codes 15,
// 89).
type StartSound struct {
	Version         int // 1 or 2
	SoundID         uint16 // version 1
	SoundClassName  string // version 2
	SoundInfo       SoundInfo
}

func (StartSound) tagCode() int { return CodeStartSound }

// ButtonSoundEntry is one of DefineButtonSound's four per-state sound
// references; ID 0 means no sound is attached for that state.
type ButtonSoundEntry struct {
	ID   uint16
	Info SoundInfo
}

// DefineButtonSound attaches up to four sounds to a button's transition
// states (code 17).
type DefineButtonSound struct {
	ButtonID uint16
	Sounds   [4]ButtonSoundEntry
}

func (DefineButtonSound) tagCode() int { return CodeDefineButtonSound }

// SoundStreamHead declares a streaming-sound format for the following
// SoundStreamBlock tags (codes 18, 45).
type SoundStreamHead struct {
	Version                int // 1 or 2
	PlaybackSoundRate       uint8
	PlaybackSoundSize       uint8
	PlaybackSoundType       uint8
	StreamSoundCompression  uint8
	StreamSoundRate         uint8
	StreamSoundSize         uint8
	StreamSoundType         uint8
	StreamSoundSampleCount  uint16
	LatencySeek             int16 // only present for MP3 compression
}

func (SoundStreamHead) tagCode() int { return CodeSoundStreamHead }

// SoundStreamBlock carries one block of streaming-sound samples (code 19).
type SoundStreamBlock struct {
	Data []byte
}

func (SoundStreamBlock) tagCode() int { return CodeSoundStreamBlock }

// DefineGlyphFont is a DefineFont version 1 tag: glyph outlines only, no
// metrics (code 10).
type DefineGlyphFont struct {
	ID     uint16
	Glyphs []Glyph
}

func (DefineGlyphFont) tagCode() int { return CodeDefineGlyphFont }

// DefineFont is the version-parameterized glyph+metrics font tag (codes 48,
// 75). Version 3 differs from version 2 only in using EM-square units
// scaled by 20 and always carrying wide glyph offsets.
type DefineFont struct {
	Version     FontVersion
	ID          uint16
	FontFlags   DefineFontFlags
	Language    uint8
	FontName    string
	Glyphs      []Glyph
	CodeUnits   []uint16
	Layout      *FontLayout
}

func (DefineFont) tagCode() int { return CodeDefineFont2 }

// FontVersion distinguishes DefineFont2 from DefineFont3.
type FontVersion int

const (
	FontVersion2 FontVersion = iota + 1
	FontVersion3
)

// DefineFontFlags is DefineFont2/3's leading flags byte.
type DefineFontFlags struct {
	HasLayout  bool
	ShiftJIS   bool
	SmallText  bool
	ANSI       bool
	WideOffsets bool
	WideCodes  bool
	Italic     bool
	Bold       bool
}

// DefineCffFont is DefineFont4: an embedded CFF/OpenType font program with
// no glyph-table parsing of its own (code 91).
type DefineCffFont struct {
	ID       uint16
	Italic   bool
	Bold     bool
	FontData []byte
}

func (DefineCffFont) tagCode() int { return CodeDefineCffFont }

// FontInfoVersion distinguishes DefineFontInfo from DefineFontInfo2.
type FontInfoVersion int

const (
	FontInfoVersion1 FontInfoVersion = iota + 1
	FontInfoVersion2
)

// DefineFontInfo maps a DefineFont's glyph indices to character codes
// (codes 13, 62).
type DefineFontInfo struct {
	Version   FontInfoVersion
	FontID    uint16
	FontName  string
	SmallText bool
	ShiftJIS  bool
	ANSI      bool
	Italic    bool
	Bold      bool
	Language  uint8 // version 2 only
	CodeUnits []uint16
}

func (DefineFontInfo) tagCode() int { return CodeDefineFontInfo }

// DefineFontAlignZones attaches hinting alignment zones to each glyph of a
// referenced font (code 73).
type DefineFontAlignZones struct {
	FontID       uint16
	CsmTableHint CsmTableHint
	Zones        []FontAlignmentZone
}

func (DefineFontAlignZones) tagCode() int { return CodeDefineFontAlignZones }

// DefineFontName attaches copyright/name metadata to a font (code 88).
type DefineFontName struct {
	FontID    uint16
	Name      string
	Copyright string
}

func (DefineFontName) tagCode() int { return CodeDefineFontName }

// CsmTextSettings overrides advanced-renderer hinting for a text/edit-text
// character (code 74).
type CsmTextSettings struct {
	TextID       uint16
	Renderer     TextRenderer
	GridFitting  GridFitting
	Thickness    float32
	Sharpness    float32
}

func (CsmTextSettings) tagCode() int { return CodeCsmTextSettings }

// TextVersion distinguishes DefineText from DefineText2.
type TextVersion int

const (
	TextVersion1 TextVersion = iota + 1
	TextVersion2
)

// DefineText is the version-parameterized static-text tag (codes 11, 33).
type DefineText struct {
	Version TextVersion
	ID      uint16
	Bounds  Rect
	Matrix  Matrix
	Records []TextRecord
}

func (DefineText) tagCode() int { return CodeDefineText }

// DefineEditText declares a dynamic/input text field (code 37).
type DefineEditText struct {
	ID                                                        uint16
	Bounds                                                    Rect
	HasText, WordWrap, Multiline, Password, ReadOnly           bool
	HasColor, HasMaxLength, HasFont, HasFontClass, AutoSize    bool
	HasLayout, NoSelect, Border, WasStatic, HTML, UseOutlines  bool
	FontID                                                    *uint16
	FontClass                                                 *string
	FontHeight                                                *uint16
	Color                                                     *StraightSRgba8
	MaxLength                                                 *uint16
	Alignment                                                 *TextAlignment
	LeftMargin, RightMargin                                   uint16
	Indent                                                    int16
	Leading                                                   int16
	VariableName                                              string
	InitialText                                               *string
}

func (DefineEditText) tagCode() int { return CodeDefineEditText }

// ButtonRecords is a DefineButton/DefineButton2 character list shared by
// both versions.
type ButtonRecords = []ButtonRecord

// DefineButton is the version-parameterized button tag (codes 7, 34).
type DefineButton struct {
	Version     ButtonVersion
	ID          uint16
	TrackAsMenu bool // version 2 only
	Records     []ButtonRecord
	Actions     Action             // version 1: single action blob
	CondActions []ButtonCondAction // version 2: per-condition action blocks
}

func (DefineButton) tagCode() int { return CodeDefineButton }
