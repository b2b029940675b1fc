package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metargb/dateformat-service/pkg/jalali"
)

func TestFormatService_Convert(t *testing.T) {
	s, _ := newTestService(t)

	got, err := s.Convert("gregorian", jalali.Date{Year: 2024, Month: 3, Day: 20})
	require.NoError(t, err)
	assert.Equal(t, jalali.Date{Year: 1403, Month: 1, Day: 1}, got.Jalali)
	assert.Equal(t, jalali.Date{Year: 2024, Month: 3, Day: 20}, got.Gregorian)
	assert.Equal(t, jalali.JDN(2460390), got.JDN)
	assert.Equal(t, "چهارشنبه", got.Weekday)
	assert.Equal(t, 31, got.JalaliMonthLength)
	assert.False(t, got.JalaliLeapYear)

	got, err = s.Convert("jalali", jalali.Date{Year: 1399, Month: 12, Day: 30})
	require.NoError(t, err)
	assert.Equal(t, jalali.Date{Year: 2021, Month: 3, Day: 20}, got.Gregorian)
	assert.Equal(t, 30, got.JalaliMonthLength)
	assert.True(t, got.JalaliLeapYear)
}

func TestFormatService_ConvertBeforeJDNZero(t *testing.T) {
	s, _ := newTestService(t)

	seen := map[string]bool{}
	for day := 1; day <= 7; day++ {
		date := jalali.Date{Year: -5000, Month: 3, Day: day}
		var got *Conversion
		require.NotPanics(t, func() {
			var err error
			got, err = s.Convert("gregorian", date)
			require.NoError(t, err)
		})
		assert.Less(t, int(got.JDN), 0)
		assert.Contains(t, jalali.WeekdayNames, got.Weekday)
		seen[got.Weekday] = true
	}
	assert.Len(t, seen, 7)
}

func TestFormatService_ConvertErrors(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.Convert("jalali", jalali.Date{Year: 1403, Month: 12, Day: 30})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = s.Convert("gregorian", jalali.Date{Year: 2023, Month: 2, Day: 29})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = s.Convert("gregorian", jalali.Date{Year: 0, Month: 3, Day: 1})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = s.Convert("hijri", jalali.Date{Year: 1445, Month: 9, Day: 1})
	assert.ErrorIs(t, err, ErrUnknownCalendar)
}

func TestFormatService_Clamp(t *testing.T) {
	s, _ := newTestService(t)
	lo := jalali.Date{Year: 1403, Month: 1, Day: 10}
	hi := jalali.Date{Year: 1403, Month: 6, Day: 31}

	assert.Equal(t, lo, s.Clamp(jalali.Date{Year: 1402, Month: 12, Day: 29}, jalali.Range{Min: &lo, Max: &hi}))
	assert.Equal(t, hi, s.Clamp(jalali.Date{Year: 1403, Month: 7, Day: 1}, jalali.Range{Min: &lo, Max: &hi}))

	inside := jalali.Date{Year: 1403, Month: 3, Day: 15}
	assert.Equal(t, inside, s.Clamp(inside, jalali.Range{Min: &lo, Max: &hi}))
}

func TestFormatService_PickerLocale(t *testing.T) {
	s, _ := newTestService(t)

	fa := s.PickerLocale("fa-IR")
	assert.Equal(t, "persian", fa.Calendar)
	assert.Equal(t, "فروردین", fa.Months[0])
	assert.Equal(t, "شنبه", fa.Weekdays[0])
	assert.Len(t, fa.WeekdaysMin, 7)
	assert.Equal(t, 6, fa.FirstDayOfWeek)
	assert.Equal(t, 12, fa.FirstWeekContainsDate)
	assert.Equal(t, "YYYY", fa.YearFormat)
	assert.Equal(t, "MMM", fa.MonthFormat)

	fa.Months[0] = "changed"
	assert.Equal(t, "فروردین", jalali.MonthNames[0])

	en := s.PickerLocale("en")
	assert.Equal(t, "gregorian", en.Calendar)
	assert.Equal(t, "January", en.Months[0])
	assert.Equal(t, "Sunday", en.Weekdays[0])
	assert.Equal(t, 0, en.FirstDayOfWeek)
	assert.True(t, en.MonthBeforeYear)
}
