package service

import (
	"fmt"

	"metargb/dateformat-service/pkg/helpers"
	"metargb/dateformat-service/pkg/jalali"
)

// Conversion describes one day in both calendars.
type Conversion struct {
	Gregorian         jalali.Date `json:"gregorian"`
	Jalali            jalali.Date `json:"jalali"`
	JDN               jalali.JDN  `json:"jdn"`
	Weekday           string      `json:"weekday"`
	JalaliMonthLength int         `json:"jalali_month_length"`
	JalaliLeapYear    bool        `json:"jalali_leap_year"`
}

// Convert maps a date given in calendar ("gregorian" or "jalali") onto both
// calendars.
func (s *FormatService) Convert(calendar string, date jalali.Date) (*Conversion, error) {
	if calendar != "gregorian" && calendar != "jalali" {
		return nil, fmt.Errorf("convert %q: %w", calendar, ErrUnknownCalendar)
	}
	if !helpers.ValidCalendarDate(calendar, date.Year, date.Month, date.Day) {
		return nil, fmt.Errorf("convert %s %s: %w", calendar, date, ErrInvalidDate)
	}

	var jdn jalali.JDN
	if calendar == "gregorian" {
		jdn = jalali.GregorianToJDN(date.Year, date.Month, date.Day)
	} else {
		jdn = jalali.PersianToJDN(date.Year, date.Month, date.Day)
	}

	persian := jalali.JDNToPersian(jdn)

	s.metrics.RecordFormat("convert", calendar)
	return &Conversion{
		Gregorian:         jalali.JDNToGregorian(jdn),
		Jalali:            persian,
		JDN:               jdn,
		Weekday:           jalali.WeekdayNames[jalali.WeekdayIndex(jdn.Weekday())],
		JalaliMonthLength: jalali.MonthLength(persian.Year, persian.Month),
		JalaliLeapYear:    jalali.IsLeap(persian.Year),
	}, nil
}

// Clamp pulls a Jalali selection into the allowed range.
func (s *FormatService) Clamp(selection jalali.Date, r jalali.Range) jalali.Date {
	return jalali.Clamp(selection, r)
}
