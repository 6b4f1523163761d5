package presentation

import (
	"time"

	"golang.org/x/text/language"
)

// supportedLocales pairs each supported tag with the date-time layout users
// of that locale expect. The first entry is the fallback.
var supportedLocales = []struct {
	tag    language.Tag
	layout string
}{
	{language.AmericanEnglish, "1/2/2006, 3:04:05 PM"},
	{language.BritishEnglish, "02/01/2006, 15:04:05"},
	{language.German, "2.1.2006, 15:04:05"},
	{language.French, "02/01/2006 15:04:05"},
	{language.Spanish, "2/1/2006, 15:04:05"},
	{language.Japanese, "2006/1/2 15:04:05"},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(supportedLocales))
	for i, l := range supportedLocales {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// matchLocale returns the index of the supported locale closest to locale.
// Unparseable or unmatched locales resolve to the fallback.
func matchLocale(locale string) int {
	tag, err := language.Parse(locale)
	if err != nil {
		return 0
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return 0
	}
	return idx
}

// formatTime renders t in loc using the layout of the locale at idx.
func formatTime(t time.Time, loc *time.Location, idx int) string {
	return t.In(loc).Format(supportedLocales[idx].layout)
}
