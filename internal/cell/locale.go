package cell

import (
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Locale selects culture-specific formatting.
type Locale struct {
	Tag      language.Tag
	Location *time.Location
}

const isoDateTime = "2006-01-02 15:04"

// supportedLocales is the matcher's candidate list. The first entry is the
// fallback and maps to the ISO layout.
var supportedLocales = []language.Tag{
	language.Und,
	language.AmericanEnglish,
	language.BritishEnglish,
	language.German,
	language.French,
	language.Spanish,
	language.Italian,
	language.Dutch,
	language.Japanese,
	language.Chinese,
	language.Russian,
	language.BrazilianPortuguese,
}

var shortDateTimeLayouts = []string{
	isoDateTime,
	"1/2/06 3:04 PM",
	"02/01/2006 15:04",
	"02.01.06 15:04",
	"02/01/2006 15:04",
	"2/1/06 15:04",
	"02/01/06 15:04",
	"02-01-2006 15:04",
	"2006/01/02 15:04",
	"2006/1/2 15:04",
	"02.01.2006 15:04",
	"02/01/2006 15:04",
}

var localeMatcher = language.NewMatcher(supportedLocales)

// DefaultLocale is used when nothing else is configured.
func DefaultLocale() Locale {
	return Locale{Tag: language.AmericanEnglish, Location: time.Local}
}

// ParseLocale accepts BCP 47 ("de-DE") and POSIX ("de_DE.UTF-8") names.
func ParseLocale(name string) (Locale, error) {
	tag, err := language.Parse(normalizePOSIX(name))
	if err != nil {
		return Locale{}, err
	}
	return Locale{Tag: tag, Location: time.Local}, nil
}

// LocaleFromEnv reads LC_ALL, LC_TIME and LANG in that order.
func LocaleFromEnv() Locale {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		v := os.Getenv(key)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if loc, err := ParseLocale(v); err == nil {
			return loc
		}
	}
	return DefaultLocale()
}

func normalizePOSIX(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	return strings.ReplaceAll(name, "_", "-")
}

// ShortDateTimeLayout returns the Go time layout for short date-times.
// Languages without a layout of their own get the ISO layout rather than
// the matcher's nearest guess.
func (l Locale) ShortDateTimeLayout() string {
	_, idx, conf := localeMatcher.Match(l.Tag)
	if conf == language.No || idx == 0 || idx >= len(shortDateTimeLayouts) {
		return isoDateTime
	}
	want, _ := l.Tag.Base()
	got, _ := supportedLocales[idx].Base()
	if want != got {
		return isoDateTime
	}
	return shortDateTimeLayouts[idx]
}

// ShortDateTime formats t with the short date-time layout in the locale's
// time zone.
func (l Locale) ShortDateTime(t time.Time) string {
	loc := l.Location
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(l.ShortDateTimeLayout())
}
