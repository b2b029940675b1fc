package formatter

import (
	"math"
	"strings"
	"time"

	"metargb/dateformat-service/pkg/helpers"
)

// defaultLayout is used when no format is requested (ISO 8601 with offset).
const defaultLayout = "2006-01-02T15:04:05-07:00"

// Options adjust how FormatDate builds its instant.
type Options struct {
	// TimezoneOffset is an offset from UTC in minutes. Values strictly
	// between -16 and 16 are taken as hours.
	TimezoneOffset *int
	// Location is the zone for inputs that carry none (date arrays, naive
	// strings, Unix milliseconds). Instants are also moved into it. nil
	// means UTC for zone-less inputs and no conversion otherwise.
	Location *time.Location
}

// FormatDate renders value in locale. Invalid values yield "". Locales whose
// tag starts with "fa" are rendered in the Jalali calendar.
func FormatDate(value interface{}, format, locale string, opts Options) string {
	t, ok := ToInstant(value, opts)
	if !ok {
		return ""
	}
	return FormatInstant(t, format, locale)
}

// FormatInstant renders an already valid instant. An empty format gives the
// ISO 8601 layout regardless of locale.
func FormatInstant(t time.Time, format, locale string) string {
	if format == "" {
		return t.Format(defaultLayout)
	}
	return FormatIn(t, format, locale, CalendarFor(locale))
}

// FormatIn renders an already built instant with an explicit calendar system.
func FormatIn(t time.Time, format, locale string, calendar CalendarSystem) string {
	if calendar != Persian {
		return FormatGregorian(t, format, ResolveLocale(locale))
	}

	formatted := FormatPersianDate(t, format)
	// Week tokens are the only ones whose output is not already in Persian script.
	if strings.ContainsAny(format, "wW") {
		return helpers.ToPersianDigits(formatted)
	}
	return formatted
}

// ToInstant builds a time.Time from the supported inputs: time.Time,
// *time.Time, RFC 3339 or ISO date strings, Unix milliseconds and date arrays
// [year, month0, day, hour, minute, second, millisecond].
func ToInstant(value interface{}, opts Options) (time.Time, bool) {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	var t time.Time
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return time.Time{}, false
		}
		t = v
		if opts.Location != nil {
			t = t.In(loc)
		}
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return ToInstant(*v, opts)
	case string:
		parsed, ok := parseInstant(v, loc)
		if !ok {
			return time.Time{}, false
		}
		t = parsed
		if opts.Location != nil {
			t = t.In(loc)
		}
	case int:
		t = time.UnixMilli(int64(v)).In(loc)
	case int64:
		t = time.UnixMilli(v).In(loc)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return time.Time{}, false
		}
		t = time.UnixMilli(int64(v)).In(loc)
	case []int:
		parsed, ok := FromArray(v, loc)
		if !ok {
			return time.Time{}, false
		}
		t = parsed
	default:
		return time.Time{}, false
	}

	if opts.TimezoneOffset != nil {
		t = t.In(fixedOffset(*opts.TimezoneOffset))
	}
	return t, true
}

var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseInstant(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FromArray builds an instant from a date array whose month is zero-based.
// Missing trailing fields default to their minimum; out-of-range fields make
// the array invalid instead of rolling over.
func FromArray(parts []int, loc *time.Location) (time.Time, bool) {
	if len(parts) == 0 || len(parts) > 7 {
		return time.Time{}, false
	}
	fields := [7]int{0, 0, 1, 0, 0, 0, 0}
	copy(fields[:], parts)

	year, month, day := fields[0], fields[1]+1, fields[2]
	hour, minute, second, ms := fields[3], fields[4], fields[5], fields[6]
	if month < 1 || month > 12 || hour < 0 || hour > 23 || minute < 0 || minute > 59 ||
		second < 0 || second > 59 || ms < 0 || ms > 999 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, ms*int(time.Millisecond), loc)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func fixedOffset(offset int) *time.Location {
	if offset > -16 && offset < 16 {
		offset *= 60
	}
	return time.FixedZone("", offset*60)
}
