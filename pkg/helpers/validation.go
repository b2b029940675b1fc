package helpers

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"metargb/dateformat-service/pkg/jalali"
)

// maxOffsetMinutes bounds UTC offsets accepted from clients.
const maxOffsetMinutes = 16 * 60

// CustomValidator wraps go-playground validator with calendar rules
type CustomValidator struct {
	validate *validator.Validate
}

// NewCustomValidator creates a new custom validator with calendar rules
func NewCustomValidator() *CustomValidator {
	v := validator.New()

	// Report JSON field names so error keys match the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validators
	v.RegisterValidation("locale_tag", validateLocaleTag)
	v.RegisterValidation("utc_offset", validateUTCOffset)
	v.RegisterStructValidation(validateJalaliDate, jalali.Date{})

	return &CustomValidator{validate: v}
}

// Validate validates a struct
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validate.Struct(i)
}

// validateLocaleTag accepts well-formed BCP-47 tags and moment-style "en_GB"
func validateLocaleTag(fl validator.FieldLevel) bool {
	tag := strings.ReplaceAll(fl.Field().String(), "_", "-")
	_, err := language.Parse(tag)
	return err == nil
}

// validateUTCOffset validates an offset in minutes (or hours below 16)
func validateUTCOffset(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return true
		}
		field = field.Elem()
	}
	offset := field.Int()
	return offset >= -maxOffsetMinutes && offset <= maxOffsetMinutes
}

// validateJalaliDate checks month and day against the Jalali calendar
func validateJalaliDate(sl validator.StructLevel) {
	d := sl.Current().Interface().(jalali.Date)
	if d.Year == 0 {
		sl.ReportError(d.Year, "year", "Year", "jalali_date", "")
	}
	if d.Month < 1 || d.Month > 12 {
		sl.ReportError(d.Month, "month", "Month", "jalali_date", "")
		return
	}
	if d.Day < 1 || d.Day > jalali.MonthLength(d.Year, d.Month) {
		sl.ReportError(d.Day, "day", "Day", "jalali_date", "")
	}
}

// ValidCalendarDate reports whether year/month/day exists in the named
// calendar ("gregorian" or "jalali").
func ValidCalendarDate(calendar string, year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	switch calendar {
	case "jalali":
		return year != 0 && day <= jalali.MonthLength(year, month)
	case "gregorian":
		if year == 0 {
			return false
		}
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		return t.Year() == year && int(t.Month()) == month && t.Day() == day
	}
	return false
}
