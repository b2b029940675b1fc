package jalali

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ptime "github.com/yaa110/go-persian-calendar"
)

func TestGregorianToJDN(t *testing.T) {
	tests := []struct {
		name            string
		year, month, dd int
		want            JDN
	}{
		{"unix epoch", 1970, 1, 1, 2440588},
		{"j2000", 2000, 1, 1, 2451545},
		{"nowruz 1403", 2024, 3, 20, 2460390},
		{"first gregorian day", 1, 1, 1, 1721426},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GregorianToJDN(tt.year, tt.month, tt.dd))
		})
	}
}

func TestJDNToGregorian_CenturyBoundaries(t *testing.T) {
	dates := []Date{
		{1600, 2, 29}, {1700, 2, 28}, {1700, 3, 1}, {1900, 12, 31},
		{2000, 2, 29}, {2000, 12, 31}, {2100, 1, 1}, {2400, 12, 31},
	}
	for _, d := range dates {
		t.Run(d.String(), func(t *testing.T) {
			assert.Equal(t, d, JDNToGregorian(GregorianToJDN(d.Year, d.Month, d.Day)))
		})
	}
}

func TestGregorianToJalali_KnownDates(t *testing.T) {
	tests := []struct {
		gregorian Date
		want      Date
	}{
		{Date{2024, 3, 20}, Date{1403, 1, 1}},
		{Date{2024, 3, 19}, Date{1402, 12, 29}},
		{Date{2000, 1, 1}, Date{1378, 10, 11}},
		{Date{1970, 1, 1}, Date{1348, 10, 11}},
		{Date{2024, 9, 22}, Date{1403, 7, 1}},
		{Date{2024, 9, 21}, Date{1403, 6, 31}},
	}

	for _, tt := range tests {
		t.Run(tt.gregorian.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, GregorianToJalali(tt.gregorian))
			assert.Equal(t, tt.gregorian, JalaliToGregorian(tt.want))
		})
	}
}

func TestGregorianToJalali_MatchesPersianCalendarLibrary(t *testing.T) {
	for _, g := range []Date{{2024, 3, 20}, {2000, 1, 1}, {2010, 6, 15}, {1990, 11, 2}} {
		pt := ptime.New(time.Date(g.Year, time.Month(g.Month), g.Day, 12, 0, 0, 0, time.UTC))
		want := Date{Year: pt.Year(), Month: int(pt.Month()), Day: pt.Day()}
		assert.Equal(t, want, GregorianToJalali(g), "gregorian %s", g)
	}
}

func TestRoundTrip_Gregorian(t *testing.T) {
	start := GregorianToJDN(1, 1, 1)
	end := GregorianToJDN(3000, 12, 31)
	for jdn := start; jdn <= end; jdn++ {
		g := JDNToGregorian(jdn)
		require.Equal(t, jdn, GregorianToJDN(g.Year, g.Month, g.Day))
		got := JalaliToGregorian(GregorianToJalali(g))
		if got != g {
			t.Fatalf("round trip of %s gave %s", g, got)
		}
	}
}

func TestRoundTrip_Jalali(t *testing.T) {
	for year := 1; year <= 2400; year++ {
		for month := 1; month <= 12; month++ {
			for day := 1; day <= MonthLength(year, month); day++ {
				d := Date{year, month, day}
				got := GregorianToJalali(JalaliToGregorian(d))
				if got != d {
					t.Fatalf("round trip of %s gave %s", d, got)
				}
			}
		}
	}
}

func TestJDNToPersian_EndOfGrandCycle(t *testing.T) {
	// Grand cycles start at 475, so Esfand 30 of 474 and 3294 close one.
	for _, year := range []int{474, 3294} {
		last := Date{year, 12, 30}
		require.Equal(t, 30, MonthLength(year, 12))
		jdn := PersianToJDN(last.Year, last.Month, last.Day)
		assert.Equal(t, last, JDNToPersian(jdn))
		assert.Equal(t, Date{year + 1, 1, 1}, JDNToPersian(jdn+1))
	}
}

func TestMonthLength(t *testing.T) {
	for year := 1300; year <= 1500; year++ {
		for month := 1; month <= 6; month++ {
			assert.Equal(t, 31, MonthLength(year, month))
		}
		for month := 7; month <= 11; month++ {
			assert.Equal(t, 30, MonthLength(year, month))
		}

		esfand := MonthLength(year, 12)
		assert.Contains(t, []int{29, 30}, esfand)

		gap := PersianToJDN(year+1, 1, 1) - PersianToJDN(year, 1, 1)
		assert.Equal(t, gap == 366, esfand == 30, "year %d", year)
		assert.Equal(t, esfand == 30, IsLeap(year))
	}
}

func TestIsLeap(t *testing.T) {
	var leaps []int
	for year := 1390; year <= 1410; year++ {
		if IsLeap(year) {
			leaps = append(leaps, year)
		}
	}
	assert.Equal(t, []int{1391, 1395, 1399, 1404, 1408}, leaps)
}

func TestYearLength_AcrossYearZero(t *testing.T) {
	assert.Equal(t, 366, YearLength(-1))
}

func TestFromTime(t *testing.T) {
	tehran := time.FixedZone("IRST", 3*3600+1800)
	instant := time.Date(2024, 3, 19, 21, 0, 0, 0, time.UTC)

	assert.Equal(t, Date{1402, 12, 29}, FromTime(instant))
	assert.Equal(t, Date{1403, 1, 1}, FromTime(instant.In(tehran)))
}

func TestToTime(t *testing.T) {
	got := ToTime(Date{1403, 1, 1}, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), got)
}

func TestDate_String(t *testing.T) {
	assert.Equal(t, "1403/08/09", Date{1403, 8, 9}.String())
}

func TestJDN_Weekday(t *testing.T) {
	tests := []struct {
		name string
		jdn  JDN
		want time.Weekday
	}{
		{"epoch", 0, time.Monday},
		{"day before epoch", -1, time.Sunday},
		{"week before epoch", -7, time.Monday},
		{"far before epoch", GregorianToJDN(-5000, 3, 3), time.Date(-5000, 3, 3, 0, 0, 0, 0, time.UTC).Weekday()},
		{"nowruz 1403", 2460390, time.Wednesday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.jdn.Weekday())
		})
	}
}
