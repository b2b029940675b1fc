package service

import (
	"metargb/dateformat-service/internal/formatter"
	"metargb/dateformat-service/pkg/jalali"
)

// PickerLocale is the localization block consumed by the date picker.
type PickerLocale struct {
	Months                []string `json:"months"`
	MonthsShort           []string `json:"months_short"`
	Weekdays              []string `json:"weekdays"`
	WeekdaysShort         []string `json:"weekdays_short"`
	WeekdaysMin           []string `json:"weekdays_min"`
	FirstDayOfWeek        int      `json:"first_day_of_week"`
	FirstWeekContainsDate int      `json:"first_week_contains_date"`
	YearFormat            string   `json:"year_format"`
	MonthFormat           string   `json:"month_format"`
	MonthBeforeYear       bool     `json:"month_before_year"`
	Calendar              string   `json:"calendar"`
}

// PickerLocale builds the date-picker localization for locale. Persian
// locales get the Jalali name tables.
func (s *FormatService) PickerLocale(locale string) PickerLocale {
	locale = s.locale(locale)
	loc := formatter.ResolveLocale(locale)
	calendar := formatter.CalendarFor(locale)

	picker := PickerLocale{
		FirstDayOfWeek:        loc.FirstDayOfWeek(),
		FirstWeekContainsDate: loc.FirstWeekContainsDate(),
		YearFormat:            "YYYY",
		MonthFormat:           "MMM",
		MonthBeforeYear:       loc.MonthBeforeYear(),
		Calendar:              calendar.String(),
	}

	if calendar == formatter.Persian {
		picker.Months = append([]string(nil), jalali.MonthNames[:]...)
		picker.MonthsShort = append([]string(nil), jalali.MonthNamesShort[:]...)
		picker.Weekdays = append([]string(nil), jalali.WeekdayNames[:]...)
		picker.WeekdaysShort = append([]string(nil), jalali.WeekdayNamesShort[:]...)
		picker.WeekdaysMin = append([]string(nil), jalali.WeekdayNamesMin[:]...)
		return picker
	}

	months, monthsShort := loc.MonthNames(false), loc.MonthNames(true)
	long, short, narrow := loc.WeekdayNames("long"), loc.WeekdayNames("short"), loc.WeekdayNames("min")
	picker.Months = months[:]
	picker.MonthsShort = monthsShort[:]
	picker.Weekdays = long[:]
	picker.WeekdaysShort = short[:]
	picker.WeekdaysMin = narrow[:]
	return picker
}
