package formatter

import (
	"fmt"
	"strings"
	"time"

	"metargb/dateformat-service/pkg/helpers"
	"metargb/dateformat-service/pkg/jalali"
)

// Style is a predefined date or time length, as in Intl.DateTimeFormat.
type Style int

const (
	StyleNone Style = iota
	StyleShort
	StyleMedium
	StyleLong
	StyleFull
)

// Width selects the long or abbreviated name of a weekday or month.
type Width int

const (
	WidthNone Width = iota
	WidthShort
	WidthLong
)

// FieldOptions selects what the Persian primitive renders. Styles take
// precedence over individual fields.
type FieldOptions struct {
	DateStyle Style
	TimeStyle Style

	Weekday Width
	Month   Width
	Day     bool
	Year    bool

	Hour   bool
	Minute bool
	Second bool
}

// persianDay is an instant together with its Jalali calendar day.
type persianDay struct {
	t    time.Time
	date jalali.Date
}

func newPersianDay(t time.Time) persianDay {
	return persianDay{t: t, date: jalali.FromTime(t)}
}

// Separators used by fa-IR date/time compositions.
const (
	persianComma       = "،"
	persianAtTime      = "، ساعت "
	persianDateTimeSep = persianComma + " "
)

// renderPersian is the calendar-aware formatting primitive. Its output locale
// identity is fixed to Persian script and the Persian calendar.
func renderPersian(p persianDay, opts FieldOptions) string {
	if opts.DateStyle != StyleNone || opts.TimeStyle != StyleNone {
		return renderPersianStyles(p, opts.DateStyle, opts.TimeStyle)
	}

	var parts []string
	switch opts.Weekday {
	case WidthLong:
		parts = append(parts, jalali.WeekdayNames[jalali.WeekdayIndex(p.t.Weekday())])
	case WidthShort:
		parts = append(parts, jalali.WeekdayNamesShort[jalali.WeekdayIndex(p.t.Weekday())])
	}
	if opts.Day {
		parts = append(parts, helpers.ToPersianDigits(p.date.Day))
	}
	switch opts.Month {
	case WidthLong:
		parts = append(parts, jalali.MonthName(p.date.Month))
	case WidthShort:
		parts = append(parts, jalali.MonthNameShort(p.date.Month))
	}
	if opts.Year {
		parts = append(parts, helpers.ToPersianDigits(p.date.Year))
	}
	if opts.Hour || opts.Minute || opts.Second {
		parts = append(parts, persianClock(p.t, opts.Second))
	}
	return strings.Join(parts, " ")
}

func renderPersianStyles(p persianDay, dateStyle, timeStyle Style) string {
	datePart := persianDateStyle(p, dateStyle)
	if timeStyle == StyleNone {
		return datePart
	}

	timePart := persianClock(p.t, timeStyle >= StyleMedium)
	switch {
	case dateStyle == StyleNone:
		return timePart
	case dateStyle >= StyleLong:
		return datePart + persianAtTime + timePart
	default:
		return datePart + persianDateTimeSep + timePart
	}
}

func persianDateStyle(p persianDay, style Style) string {
	d := p.date
	switch style {
	case StyleShort:
		return helpers.ToPersianDigits(fmt.Sprintf("%d/%d/%d", d.Year, d.Month, d.Day))
	case StyleMedium, StyleLong:
		return helpers.ToPersianDigits(fmt.Sprintf("%d %s %d", d.Day, jalali.MonthName(d.Month), d.Year))
	case StyleFull:
		weekday := jalali.WeekdayNames[jalali.WeekdayIndex(p.t.Weekday())]
		return helpers.ToPersianDigits(fmt.Sprintf("%s %d %s %d", weekday, d.Day, jalali.MonthName(d.Month), d.Year))
	}
	return ""
}

// persianClock renders a 24-hour clock without a leading zero on the hour.
func persianClock(t time.Time, seconds bool) string {
	if seconds {
		return helpers.ToPersianDigits(fmt.Sprintf("%d:%02d:%02d", t.Hour(), t.Minute(), t.Second()))
	}
	return helpers.ToPersianDigits(fmt.Sprintf("%d:%02d", t.Hour(), t.Minute()))
}
