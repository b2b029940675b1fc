package formatter

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// longDateFormats holds the localized expansions of the L* tokens.
type longDateFormats struct {
	LT, LTS, L, LL, LLL, LLLL string
}

// weekRule configures locale weeks: Dow is the first day of the week
// (0 = Sunday) and Doy decides which January day is always in week one
// (7 + Dow - Doy).
type weekRule struct {
	Dow, Doy int
}

// Locale is the resolved locale data used by the Gregorian path.
type Locale struct {
	Tag     language.Tag
	Key     string
	names   monday.Locale
	formats longDateFormats
	week    weekRule
	ordinal func(day int) string
}

var (
	iso8601Week = weekRule{Dow: 1, Doy: 4}
	usWeek      = weekRule{Dow: 0, Doy: 6}
)

func englishOrdinal(day int) string {
	suffix := "th"
	if day%100 < 11 || day%100 > 13 {
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(day) + suffix
}

func dottedOrdinal(day int) string { return strconv.Itoa(day) + "." }

func masculineOrdinal(day int) string { return strconv.Itoa(day) + "º" }

func plainOrdinal(day int) string { return strconv.Itoa(day) }

var locales = map[string]Locale{
	"en": {
		Key:   "en",
		names: monday.Locale("en_US"),
		formats: longDateFormats{
			LT: "h:mm A", LTS: "h:mm:ss A", L: "MM/DD/YYYY",
			LL: "MMMM D, YYYY", LLL: "MMMM D, YYYY h:mm A", LLLL: "dddd, MMMM D, YYYY h:mm A",
		},
		week:    usWeek,
		ordinal: englishOrdinal,
	},
	"en-gb": {
		Key:   "en-gb",
		names: monday.Locale("en_GB"),
		formats: longDateFormats{
			LT: "HH:mm", LTS: "HH:mm:ss", L: "DD/MM/YYYY",
			LL: "D MMMM YYYY", LLL: "D MMMM YYYY HH:mm", LLLL: "dddd, D MMMM YYYY HH:mm",
		},
		week:    iso8601Week,
		ordinal: englishOrdinal,
	},
	"de": {
		Key:   "de",
		names: monday.Locale("de_DE"),
		formats: longDateFormats{
			LT: "HH:mm", LTS: "HH:mm:ss", L: "DD.MM.YYYY",
			LL: "D. MMMM YYYY", LLL: "D. MMMM YYYY HH:mm", LLLL: "dddd, D. MMMM YYYY HH:mm",
		},
		week:    iso8601Week,
		ordinal: dottedOrdinal,
	},
	"fr": {
		Key:   "fr",
		names: monday.Locale("fr_FR"),
		formats: longDateFormats{
			LT: "HH:mm", LTS: "HH:mm:ss", L: "DD/MM/YYYY",
			LL: "D MMMM YYYY", LLL: "D MMMM YYYY HH:mm", LLLL: "dddd D MMMM YYYY HH:mm",
		},
		week:    iso8601Week,
		ordinal: plainOrdinal,
	},
	"es": {
		Key:   "es",
		names: monday.Locale("es_ES"),
		formats: longDateFormats{
			LT: "H:mm", LTS: "H:mm:ss", L: "DD/MM/YYYY",
			LL: "D [de] MMMM [de] YYYY", LLL: "D [de] MMMM [de] YYYY H:mm",
			LLLL: "dddd, D [de] MMMM [de] YYYY H:mm",
		},
		week:    iso8601Week,
		ordinal: masculineOrdinal,
	},
	"it": {
		Key:   "it",
		names: monday.Locale("it_IT"),
		formats: longDateFormats{
			LT: "HH:mm", LTS: "HH:mm:ss", L: "DD/MM/YYYY",
			LL: "D MMMM YYYY", LLL: "D MMMM YYYY HH:mm", LLLL: "dddd D MMMM YYYY HH:mm",
		},
		week:    iso8601Week,
		ordinal: masculineOrdinal,
	},
	"nl": {
		Key:   "nl",
		names: monday.Locale("nl_NL"),
		formats: longDateFormats{
			LT: "HH:mm", LTS: "HH:mm:ss", L: "DD-MM-YYYY",
			LL: "D MMMM YYYY", LLL: "D MMMM YYYY HH:mm", LLLL: "dddd D MMMM YYYY HH:mm",
		},
		week:    iso8601Week,
		ordinal: plainOrdinal,
	},
	"pt": {
		Key:   "pt",
		names: monday.Locale("pt_PT"),
		formats: longDateFormats{
			LT: "HH:mm", LTS: "HH:mm:ss", L: "DD/MM/YYYY",
			LL: "D [de] MMMM [de] YYYY", LLL: "D [de] MMMM [de] YYYY HH:mm",
			LLLL: "dddd, D [de] MMMM [de] YYYY HH:mm",
		},
		week:    iso8601Week,
		ordinal: masculineOrdinal,
	},
	"pt-br": {
		Key:   "pt-br",
		names: monday.Locale("pt_BR"),
		formats: longDateFormats{
			LT: "HH:mm", LTS: "HH:mm:ss", L: "DD/MM/YYYY",
			LL: "D [de] MMMM [de] YYYY", LLL: "D [de] MMMM [de] YYYY [às] HH:mm",
			LLLL: "dddd, D [de] MMMM [de] YYYY [às] HH:mm",
		},
		week:    usWeek,
		ordinal: masculineOrdinal,
	},
	// Persian weeks start on Saturday. Only week numbering is used for fa;
	// its dates go through the Jalali formatter.
	"fa": {
		Key:   "fa",
		names: monday.Locale("en_US"),
		formats: longDateFormats{
			LT: "HH:mm", LTS: "HH:mm:ss", L: "DD/MM/YYYY",
			LL: "D MMMM YYYY", LLL: "D MMMM YYYY HH:mm", LLLL: "dddd, D MMMM YYYY HH:mm",
		},
		week:    weekRule{Dow: 6, Doy: 12},
		ordinal: plainOrdinal,
	},
}

const fallbackLocale = "en"

// ResolveLocale maps a BCP-47 (or moment-style, e.g. "en_GB") tag onto the
// nearest supported locale, falling back to English.
func ResolveLocale(tag string) Locale {
	parsed, err := language.Parse(strings.ReplaceAll(tag, "_", "-"))
	if err != nil {
		loc := locales[fallbackLocale]
		loc.Tag = language.English
		return loc
	}

	base, _ := parsed.Base()
	key := base.String()
	if region, conf := parsed.Region(); conf == language.Exact {
		if loc, ok := locales[key+"-"+strings.ToLower(region.String())]; ok {
			loc.Tag = parsed
			return loc
		}
	}
	loc, ok := locales[key]
	if !ok {
		loc = locales[fallbackLocale]
	}
	loc.Tag = parsed
	return loc
}

// Week returns the locale week number of t and the year that week belongs to.
func (l Locale) Week(t time.Time) (week, year int) {
	return weekOfYear(t.Year(), t.YearDay(), l.week)
}

var shortenable = regexp.MustCompile(`MMMM|MM|DD|dddd`)

// longDateFormat expands L-family tokens; the lowercase variants use
// abbreviated names and unpadded numbers.
func (l Locale) longDateFormat(token string) (string, bool) {
	f := l.formats
	switch token {
	case "LT":
		return f.LT, true
	case "LTS":
		return f.LTS, true
	case "L":
		return f.L, true
	case "LL":
		return f.LL, true
	case "LLL":
		return f.LLL, true
	case "LLLL":
		return f.LLLL, true
	case "l", "ll", "lll", "llll":
		upper, _ := l.longDateFormat(strings.ToUpper(token))
		return shortenable.ReplaceAllStringFunc(upper, func(s string) string { return s[1:] }), true
	}
	return "", false
}

// FirstDayOfWeek is the locale's first weekday (0 = Sunday).
func (l Locale) FirstDayOfWeek() int { return l.week.Dow }

// FirstWeekContainsDate is moment's doy: January (7 + dow - doy) is always in
// week one.
func (l Locale) FirstWeekContainsDate() int { return l.week.Doy }

// MonthBeforeYear reports whether the short date pattern puts the month
// ahead of the year.
func (l Locale) MonthBeforeYear() bool {
	pattern := strings.ToUpper(l.formats.L)
	return strings.Index(pattern, "M") < strings.Index(pattern, "Y")
}

// MonthNames returns the localized month names, January first.
func (l Locale) MonthNames(abbreviated bool) [12]string {
	layout := "January"
	if abbreviated {
		layout = "Jan"
	}
	var names [12]string
	for i := range names {
		t := time.Date(2001, time.Month(i+1), 1, 12, 0, 0, 0, time.UTC)
		names[i] = monday.Format(t, layout, l.names)
	}
	return names
}

// WeekdayNames returns the localized weekday names, Sunday first. width
// selects long, short or two-letter names.
func (l Locale) WeekdayNames(width string) [7]string {
	var names [7]string
	for i := range names {
		// 2001-01-07 was a Sunday.
		t := time.Date(2001, time.January, 7+i, 12, 0, 0, 0, time.UTC)
		switch width {
		case "short":
			names[i] = monday.Format(t, "Mon", l.names)
		case "min":
			names[i] = firstRunes(monday.Format(t, "Mon", l.names), 2)
		default:
			names[i] = monday.Format(t, "Monday", l.names)
		}
	}
	return names
}
