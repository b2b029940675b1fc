package formatter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goodsign/monday"
)

// gregorianTokens splits a moment-style format string. Alternatives are
// tried left to right, so longer tokens come first.
var gregorianTokens = regexp.MustCompile(`(?s)\[[^\]]*\]|LTS|LT|LL?L?L?|l{1,4}|Mo|MM?M?M?|Do|DDDD|DDD|DD?|dddd|ddd|dd|d|Qo|Q|YYYY|YY|Y|Wo|WW?|wo|ww?|E|e|a|A|HH?|hh?|kk?|mm?|ss?|SSS|x|X|ZZ?|.`)

// FormatGregorian renders t with a moment-style format string in the given
// locale. Unrecognized characters are copied through.
func FormatGregorian(t time.Time, format string, loc Locale) string {
	var b strings.Builder
	for _, token := range gregorianTokens.FindAllString(format, -1) {
		b.WriteString(loc.renderToken(t, token))
	}
	return b.String()
}

func (l Locale) renderToken(t time.Time, token string) string {
	if strings.HasPrefix(token, "[") && strings.HasSuffix(token, "]") {
		return token[1 : len(token)-1]
	}
	if expanded, ok := l.longDateFormat(token); ok {
		return FormatGregorian(t, expanded, l)
	}

	switch token {
	case "YYYY":
		return fmt.Sprintf("%04d", t.Year())
	case "YY":
		return fmt.Sprintf("%02d", ((t.Year()%100)+100)%100)
	case "Y":
		return strconv.Itoa(t.Year())
	case "Q":
		return strconv.Itoa(quarter(t))
	case "Qo":
		return l.ordinal(quarter(t))
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "MM":
		return fmt.Sprintf("%02d", int(t.Month()))
	case "Mo":
		return l.ordinal(int(t.Month()))
	case "MMM":
		return monday.Format(t, "Jan", l.names)
	case "MMMM":
		return monday.Format(t, "January", l.names)
	case "D":
		return strconv.Itoa(t.Day())
	case "DD":
		return fmt.Sprintf("%02d", t.Day())
	case "Do":
		return l.ordinal(t.Day())
	case "DDD":
		return strconv.Itoa(t.YearDay())
	case "DDDD":
		return fmt.Sprintf("%03d", t.YearDay())
	case "d":
		return strconv.Itoa(int(t.Weekday()))
	case "dd":
		return firstRunes(monday.Format(t, "Mon", l.names), 2)
	case "ddd":
		return monday.Format(t, "Mon", l.names)
	case "dddd":
		return monday.Format(t, "Monday", l.names)
	case "E":
		return strconv.Itoa(isoWeekday(t))
	case "e":
		return strconv.Itoa((int(t.Weekday()) - l.week.Dow + 7) % 7)
	case "w", "ww", "wo":
		week, _ := l.Week(t)
		return padWeek(token, week, l.ordinal)
	case "W", "WW", "Wo":
		_, week := t.ISOWeek()
		return padWeek(strings.ToLower(token), week, l.ordinal)
	case "H":
		return strconv.Itoa(t.Hour())
	case "HH":
		return fmt.Sprintf("%02d", t.Hour())
	case "h":
		return strconv.Itoa(hour12(t))
	case "hh":
		return fmt.Sprintf("%02d", hour12(t))
	case "k":
		return strconv.Itoa(hour24(t))
	case "kk":
		return fmt.Sprintf("%02d", hour24(t))
	case "m":
		return strconv.Itoa(t.Minute())
	case "mm":
		return fmt.Sprintf("%02d", t.Minute())
	case "s":
		return strconv.Itoa(t.Second())
	case "ss":
		return fmt.Sprintf("%02d", t.Second())
	case "SSS":
		return fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond))
	case "A":
		return meridiem(t)
	case "a":
		return strings.ToLower(meridiem(t))
	case "Z":
		return t.Format("-07:00")
	case "ZZ":
		return t.Format("-0700")
	case "X":
		return strconv.FormatInt(t.Unix(), 10)
	case "x":
		return strconv.FormatInt(t.UnixMilli(), 10)
	}
	return token
}

func padWeek(token string, week int, ordinal func(int) string) string {
	switch token {
	case "ww":
		return fmt.Sprintf("%02d", week)
	case "wo":
		return ordinal(week)
	}
	return strconv.Itoa(week)
}

func quarter(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

func isoWeekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}

func hour24(t time.Time) int {
	if t.Hour() == 0 {
		return 24
	}
	return t.Hour()
}

func meridiem(t time.Time) string {
	if t.Hour() < 12 {
		return "AM"
	}
	return "PM"
}

func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// weekOfYear numbers locale weeks: week one is
// the week containing January (7 + Dow - Doy).
func weekOfYear(year, yearDay int, r weekRule) (week, weekYear int) {
	offset := firstWeekOffset(year, r)
	week = floorDiv(yearDay-offset-1, 7) + 1

	if week < 1 {
		return week + weeksInYear(year-1, r), year - 1
	}
	if n := weeksInYear(year, r); week > n {
		return week - n, year + 1
	}
	return week, year
}

func firstWeekOffset(year int, r weekRule) int {
	fwd := 7 + r.Dow - r.Doy
	weekday := int(time.Date(year, time.January, fwd, 0, 0, 0, 0, time.UTC).Weekday())
	fwdlw := (7 + weekday - r.Dow) % 7
	return -fwdlw + fwd - 1
}

func weeksInYear(year int, r weekRule) int {
	return (daysInYear(year) - firstWeekOffset(year, r) + firstWeekOffset(year+1, r)) / 7
}

func daysInYear(year int) int {
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 366
	}
	return 365
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
