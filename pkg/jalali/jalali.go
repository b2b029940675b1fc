package jalali

import (
	"fmt"
	"time"
)

// Julian day anchors of the two calendars, expressed at midnight.
const (
	GregorianEpoch = 1721425.5
	PersianEpoch   = 1948320.5
)

const (
	gregorianEpochDay = JDN(GregorianEpoch + 0.5)
	persianEpochDay   = JDN(PersianEpoch + 0.5)

	// The arithmetic Persian calendar repeats every 2820 years.
	grandCycleYears = 2820
	grandCycleDays  = 1029983
)

// JDN is a Julian Day Number: a continuous day count used to move a date
// from one calendar to another.
type JDN int

// Date is a plain year/month/day triple. Whether the day exists depends on
// the calendar the date is read in and is not checked here.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// String formats the date as Y/m/d (e.g. "1403/08/09").
// Weekday returns the day of the week. JDN 0 was a Monday.
func (j JDN) Weekday() time.Weekday {
	return time.Weekday(mod(int(j)+1, 7))
}

func (d Date) String() string {
	return fmt.Sprintf("%d/%02d/%02d", d.Year, d.Month, d.Day)
}

// FromTime converts the calendar day of t, in t's own location, to Jalali.
func FromTime(t time.Time) Date {
	return GregorianToJalali(Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()})
}

// ToTime returns midnight of the Jalali date d in loc.
func ToTime(d Date, loc *time.Location) time.Time {
	g := JalaliToGregorian(d)
	return time.Date(g.Year, time.Month(g.Month), g.Day, 0, 0, 0, 0, loc)
}

// GregorianToJalali converts a proleptic Gregorian date to the Jalali calendar.
func GregorianToJalali(g Date) Date {
	return JDNToPersian(GregorianToJDN(g.Year, g.Month, g.Day))
}

// JalaliToGregorian converts a Jalali date to the proleptic Gregorian calendar.
func JalaliToGregorian(j Date) Date {
	return JDNToGregorian(PersianToJDN(j.Year, j.Month, j.Day))
}

// GregorianToJDN returns the Julian Day Number of a proleptic Gregorian date.
func GregorianToJDN(year, month, day int) JDN {
	a := floorDiv(14-month, 12)
	y := year + 4800 - a
	m := month + 12*a - 3
	return JDN(day + floorDiv(153*m+2, 5) + 365*y +
		floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045)
}

// JDNToGregorian converts a Julian Day Number back to a proleptic Gregorian date.
func JDNToGregorian(jdn JDN) Date {
	depoch := int(jdn - gregorianEpochDay)
	quadricent := floorDiv(depoch, 146097)
	dqc := mod(depoch, 146097)
	cent := floorDiv(dqc, 36524)
	dcent := mod(dqc, 36524)
	quad := floorDiv(dcent, 1461)
	dquad := mod(dcent, 1461)
	yindex := floorDiv(dquad, 365)

	year := quadricent*400 + cent*100 + quad*4 + yindex
	// The last day of a leap cycle stays in the year the counters point at.
	if !(cent == 4 || yindex == 4) {
		year++
	}

	yearday := int(jdn - GregorianToJDN(year, 1, 1))
	leap := isGregorianLeap(year)

	var correction int
	switch {
	case yearday < 59 || (leap && yearday < 60):
		correction = 0
	case leap:
		correction = 1
	default:
		correction = 2
	}

	month := floorDiv((yearday+correction)*12+373, 367)
	day := int(jdn-GregorianToJDN(year, month, 1)) + 1

	return Date{Year: year, Month: month, Day: day}
}

// PersianToJDN returns the Julian Day Number of a Jalali date using the
// 2820-year grand cycle.
func PersianToJDN(year, month, day int) JDN {
	epBase := year - 473
	if year >= 0 {
		epBase = year - 474
	}
	epYear := 474 + mod(epBase, grandCycleYears)

	var monthDays int
	if month <= 7 {
		monthDays = (month - 1) * 31
	} else {
		monthDays = (month-1)*30 + 6
	}

	return JDN(day+monthDays+
		floorDiv(epYear*682-110, 2816)+
		(epYear-1)*365+
		floorDiv(epBase, grandCycleYears)*grandCycleDays) + persianEpochDay - 1
}

// JDNToPersian converts a Julian Day Number to a Jalali date.
func JDNToPersian(jdn JDN) Date {
	depoch := int(jdn - PersianToJDN(475, 1, 1))
	cycle := floorDiv(depoch, grandCycleDays)
	cyear := mod(depoch, grandCycleDays)

	var ycycle int
	if cyear == grandCycleDays-1 {
		ycycle = grandCycleYears
	} else {
		aux1 := floorDiv(cyear, 366)
		aux2 := mod(cyear, 366)
		ycycle = floorDiv(2134*aux1+2816*aux2+2815, 1028522) + aux1 + 1
	}

	year := ycycle + grandCycleYears*cycle + 474
	if year <= 0 {
		year--
	}

	dayOfYear := int(jdn-PersianToJDN(year, 1, 1)) + 1

	var month, day int
	if dayOfYear <= 186 {
		month = ceilDiv(dayOfYear, 31)
		day = dayOfYear - (month-1)*31
	} else {
		month = ceilDiv(dayOfYear-186, 30) + 6
		day = dayOfYear - 186 - (month-7)*30
	}

	return Date{Year: year, Month: month, Day: day}
}

// MonthLength returns the number of days in a Jalali month. Esfand (month 12)
// has 30 days in leap years, derived from the grand-cycle arithmetic.
func MonthLength(year, month int) int {
	if month <= 6 {
		return 31
	}
	if month <= 11 {
		return 30
	}
	if YearLength(year) == 365 {
		return 29
	}
	return 30
}

// YearLength returns 365 or 366, the distance between two consecutive Nowruz.
func YearLength(year int) int {
	next := year + 1
	if next == 0 {
		next = 1
	}
	return int(PersianToJDN(next, 1, 1) - PersianToJDN(year, 1, 1))
}

// IsLeap reports whether the Jalali year has 366 days.
func IsLeap(year int) bool {
	return MonthLength(year, 12) == 30
}

func isGregorianLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func mod(a, b int) int {
	return a - b*floorDiv(a, b)
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
