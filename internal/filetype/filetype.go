// Package filetype identifies audio container/codec types and their labels.
package filetype

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// Type is a codec/container code. The numeric values are persisted in the
// library and must not change.
type Type int

const (
	Unknown   Type = 0
	ASF       Type = 1
	FLAC      Type = 2
	MP4       Type = 3
	MPC       Type = 4
	MPEG      Type = 5
	OggFLAC   Type = 6
	OggSpeex  Type = 7
	OggVorbis Type = 8
	AIFF      Type = 9
	WAV       Type = 10
	TrueAudio Type = 11
	Stream    Type = 99
)

// UnknownLabel is shown for unknown or undecodable types.
const UnknownLabel = "Unknown"

var labels = map[Type]string{
	Unknown:   UnknownLabel,
	ASF:       "ASF",
	FLAC:      "FLAC",
	MP4:       "MP4",
	MPC:       "MPC",
	MPEG:      "MP3", // MPEG covers more than layer 3, but users know it as MP3
	OggFLAC:   "Ogg FLAC",
	OggSpeex:  "Ogg Speex",
	OggVorbis: "Ogg Vorbis",
	AIFF:      "AIFF",
	WAV:       "WAV",
	TrueAudio: "TrueAudio",
	Stream:    "Stream",
}

// All returns every defined type in code order.
func All() []Type {
	return []Type{
		Unknown, ASF, FLAC, MP4, MPC, MPEG, OggFLAC, OggSpeex,
		OggVorbis, AIFF, WAV, TrueAudio, Stream,
	}
}

// Label returns the human-readable label, "Unknown" for undefined codes.
func (t Type) Label() string {
	if l, ok := labels[t]; ok {
		return l
	}
	return UnknownLabel
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return t.Label()
}

// Valid reports whether t is one of the defined codes.
func (t Type) Valid() bool {
	_, ok := labels[t]
	return ok
}

// Decode converts a stored integer into a Type.
// ok is false when the code is not defined.
func Decode(code int64) (Type, bool) {
	t := Type(code)
	if int64(t) != code || !t.Valid() {
		return Unknown, false
	}
	return t, true
}

// FromTag maps a file type reported by dhowden/tag.
func FromTag(ft tag.FileType) Type {
	switch ft {
	case tag.MP3:
		return MPEG
	case tag.M4A, tag.M4B, tag.M4P, tag.ALAC:
		return MP4
	case tag.FLAC:
		return FLAC
	case tag.OGG:
		return OggVorbis
	default:
		return Unknown
	}
}

var extensions = map[string]Type{
	".mp3":  MPEG,
	".mp2":  MPEG,
	".flac": FLAC,
	".m4a":  MP4,
	".m4b":  MP4,
	".mp4":  MP4,
	".aac":  MP4,
	".wma":  ASF,
	".asf":  ASF,
	".mpc":  MPC,
	".ogg":  OggVorbis,
	".oga":  OggFLAC,
	".spx":  OggSpeex,
	".aif":  AIFF,
	".aiff": AIFF,
	".wav":  WAV,
	".tta":  TrueAudio,
}

// FromExtension guesses the type from a file name.
func FromExtension(path string) Type {
	if t, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return t
	}
	return Unknown
}

// Detect identifies the type of the file at path by sniffing its content,
// falling back to the extension when the content is not recognised.
func Detect(path string) Type {
	f, err := os.Open(path)
	if err != nil {
		return FromExtension(path)
	}
	defer f.Close()

	_, ft, err := tag.Identify(f)
	if err != nil {
		return FromExtension(path)
	}
	if t := FromTag(ft); t != Unknown {
		return t
	}
	return FromExtension(path)
}
