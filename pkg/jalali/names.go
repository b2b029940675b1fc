package jalali

import (
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// MonthNames are the Jalali month names, Farvardin first.
var MonthNames = func() [12]string {
	var names [12]string
	for i := range names {
		names[i] = ptime.Month(i + 1).String()
	}
	return names
}()

var MonthNamesShort = [12]string{
	"فرو", "ارد", "خرد", "تیر", "مرد", "شهر",
	"مهر", "آبا", "آذر", "دی", "بهم", "اسف",
}

// Weekday tables start on Saturday, the first day of the Persian week.
var WeekdayNames = func() [7]string {
	var names [7]string
	for i := range names {
		names[i] = ptime.Weekday(i).String()
	}
	return names
}()

var WeekdayNamesShort = [7]string{"شن", "یک", "دو", "سه", "چه", "پن", "جم"}

var WeekdayNamesMin = [7]string{"ش", "ی", "د", "س", "چ", "پ", "ج"}

// WeekdayIndex maps a time.Weekday onto the Saturday-first tables.
func WeekdayIndex(wd time.Weekday) int {
	return (int(wd) + 1) % 7
}

// MonthName returns the long name of a Jalali month, or "" when out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return MonthNames[month-1]
}

// MonthNameShort returns the abbreviated name of a Jalali month.
func MonthNameShort(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return MonthNamesShort[month-1]
}
