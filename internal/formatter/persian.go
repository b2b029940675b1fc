package formatter

import (
	"strings"
	"time"
)

type persianRule func(p persianDay) string

func styled(opts FieldOptions) persianRule {
	return func(p persianDay) string { return renderPersian(p, opts) }
}

var (
	shortDate      = styled(FieldOptions{DateStyle: StyleShort})
	longDate       = styled(FieldOptions{DateStyle: StyleLong})
	shortTime      = styled(FieldOptions{Hour: true, Minute: true})
	weekdayLong    = styled(FieldOptions{Weekday: WidthLong})
	weekdayShort   = styled(FieldOptions{Weekday: WidthShort})
	monthDay       = styled(FieldOptions{Month: WidthLong, Day: true})
	yearOnly       = styled(FieldOptions{Year: true})
	genericDate    = styled(FieldOptions{DateStyle: StyleMedium})
	genericDayTime = styled(FieldOptions{DateStyle: StyleMedium, TimeStyle: StyleShort})
)

// joined builds a composite rule. The separator is part of the output.
func joined(sep string, rules ...persianRule) persianRule {
	return func(p persianDay) string {
		parts := make([]string, len(rules))
		for i, rule := range rules {
			parts[i] = rule(p)
		}
		return strings.Join(parts, sep)
	}
}

var weekdayMonthDay = joined(persianDateTimeSep, weekdayLong, monthDay)

// persianTokens maps the moment-style tokens used by the calendar UI onto
// Persian renderings.
var persianTokens = map[string]persianRule{
	"L":    shortDate,
	"l":    shortDate,
	"LL":   longDate,
	"ll":   styled(FieldOptions{DateStyle: StyleMedium}),
	"LLL":  styled(FieldOptions{DateStyle: StyleLong, TimeStyle: StyleShort}),
	"lll":  styled(FieldOptions{DateStyle: StyleMedium, TimeStyle: StyleShort}),
	"LLLL": styled(FieldOptions{DateStyle: StyleFull, TimeStyle: StyleShort}),
	"LT":   shortTime,
	"LTS":  styled(FieldOptions{Hour: true, Minute: true, Second: true}),
	"dddd": weekdayLong,
	"ddd":  weekdayShort,
	"MMMM": styled(FieldOptions{Month: WidthLong}),
	"MMM":  styled(FieldOptions{Month: WidthShort}),
	"D":    styled(FieldOptions{Day: true}),
	"YYYY": yearOnly,

	"LLLL_date":        styled(FieldOptions{DateStyle: StyleFull}),
	"MMMM D":           monthDay,
	"MMMM YYYY":        styled(FieldOptions{Month: WidthLong, Year: true}),
	"MMMM D, YYYY":     joined(persianDateTimeSep, monthDay, yearOnly),
	"dddd, MMMM D":     weekdayMonthDay,
	"dddd, MMMM Do":    weekdayMonthDay,
	"dddd, MMMM D, LT": joined(persianDateTimeSep, weekdayMonthDay, shortTime),
	"LL, dddd":         joined(persianDateTimeSep, longDate, weekdayLong),
	"ddd l":            joined(" ", weekdayShort, shortDate),
	"L LT":             joined(" ", shortDate, shortTime),
}

// FormatPersianDate renders t in the Jalali calendar according to a
// moment-style format token. Unknown tokens are split on spaces and rendered
// piecewise; a single unknown token falls back to a medium date, with a short
// time when the token mentions "T".
func FormatPersianDate(t time.Time, format string) string {
	return formatPersian(newPersianDay(t), format)
}

func formatPersian(p persianDay, format string) string {
	if rule, ok := persianTokens[format]; ok {
		return rule(p)
	}

	if strings.Contains(format, " ") {
		tokens := strings.Split(format, " ")
		for i, token := range tokens {
			tokens[i] = formatPersian(p, token)
		}
		return strings.Join(tokens, " ")
	}

	if strings.Contains(format, "T") {
		return genericDayTime(p)
	}
	return genericDate(p)
}
