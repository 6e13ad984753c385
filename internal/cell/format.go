package cell

import (
	"strconv"
	"time"

	"github.com/llehouerou/tracklist/internal/filetype"
)

// Kind selects how a column's values are interpreted.
type Kind int

const (
	// KindGeneric renders positive numbers and any other value's natural form.
	KindGeneric Kind = iota
	// KindDuration renders seconds as a clock duration.
	KindDuration
	// KindSize renders byte counts.
	KindSize
	// KindDate renders epoch seconds with the locale's short date-time.
	KindDate
	// KindFileType renders file type codes.
	KindFileType
)

var kindNames = map[Kind]string{
	KindGeneric:  "generic",
	KindDuration: "duration",
	KindSize:     "size",
	KindDate:     "date",
	KindFileType: "filetype",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "generic"
}

// Format renders v for a column of the given kind. It never fails: values
// that cannot be interpreted yield "" (or "Unknown" for file types).
// A non-empty suffix is appended after a space to non-empty results only.
func Format(v Value, kind Kind, loc Locale, suffix string) string {
	f, ok := formatters[kind]
	if !ok {
		f = formatGeneric
	}
	text := f(v, loc)
	if text != "" && suffix != "" {
		text += " " + suffix
	}
	return text
}

type formatter func(Value, Locale) string

var formatters = map[Kind]formatter{
	KindGeneric:  formatGeneric,
	KindDuration: formatDuration,
	KindSize:     formatSize,
	KindDate:     formatDate,
	KindFileType: formatFileType,
}

func formatGeneric(v Value, _ Locale) string {
	switch v.Type() {
	case TypeInt:
		if n, _ := v.ToInt(); n > 0 {
			return strconv.FormatInt(n, 10)
		}
		return ""
	case TypeFloat:
		if f, _ := v.ToFloat(); f > 0 {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
		return ""
	case TypeFileType:
		return formatFileType(v, Locale{})
	default:
		return v.String()
	}
}

func formatDuration(v Value, _ Locale) string {
	seconds, ok := v.ToInt()
	if !ok || seconds < 1 {
		return ""
	}
	return PrettyDuration(seconds)
}

// formatSize always renders: unreadable and negative sizes show as 0 B.
func formatSize(v Value, _ Locale) string {
	bytes, _ := v.ToInt()
	return PrettySize(uint64(max(bytes, 0)))
}

func formatDate(v Value, loc Locale) string {
	epoch, ok := v.ToInt()
	if !ok || epoch == -1 {
		return ""
	}
	return loc.ShortDateTime(time.Unix(epoch, 0))
}

func formatFileType(v Value, _ Locale) string {
	code, ok := v.ToInt()
	if !ok {
		return filetype.UnknownLabel
	}
	ft, ok := filetype.Decode(code)
	if !ok {
		return filetype.UnknownLabel
	}
	return ft.Label()
}
