package formatter

import "strings"

// CalendarSystem selects how a date is rendered.
type CalendarSystem int

const (
	Gregorian CalendarSystem = iota
	Persian
)

// persianLocalePrefix marks locale tags rendered in the Jalali calendar.
const persianLocalePrefix = "fa"

func (c CalendarSystem) String() string {
	if c == Persian {
		return "persian"
	}
	return "gregorian"
}

// CalendarFor resolves the calendar system for a locale tag. Only the tag
// prefix is inspected; the tag is not validated.
func CalendarFor(locale string) CalendarSystem {
	if strings.HasPrefix(locale, persianLocalePrefix) {
		return Persian
	}
	return Gregorian
}
