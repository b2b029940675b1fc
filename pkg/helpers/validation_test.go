package helpers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metargb/dateformat-service/pkg/jalali"
)

type formatRequest struct {
	Locale         string `json:"locale" validate:"required,locale_tag"`
	TimezoneOffset *int   `json:"timezone_offset" validate:"omitempty,utc_offset"`
}

type clampRequest struct {
	Selection jalali.Date  `json:"selection"`
	Min       *jalali.Date `json:"min"`
}

func TestCustomValidator_LocaleAndOffset(t *testing.T) {
	cv := NewCustomValidator()
	offset := 210
	tooFar := 2000

	tests := []struct {
		name    string
		req     formatRequest
		wantErr bool
	}{
		{"valid", formatRequest{Locale: "fa-IR", TimezoneOffset: &offset}, false},
		{"moment style locale", formatRequest{Locale: "en_GB"}, false},
		{"missing locale", formatRequest{}, true},
		{"malformed locale", formatRequest{Locale: "!!"}, true},
		{"offset out of range", formatRequest{Locale: "fa", TimezoneOffset: &tooFar}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCustomValidator_JalaliDate(t *testing.T) {
	cv := NewCustomValidator()

	assert.NoError(t, cv.Validate(clampRequest{Selection: jalali.Date{Year: 1403, Month: 12, Day: 29}}))
	assert.NoError(t, cv.Validate(clampRequest{Selection: jalali.Date{Year: 1404, Month: 12, Day: 30}}))

	err := cv.Validate(clampRequest{Selection: jalali.Date{Year: 1403, Month: 12, Day: 30}})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "jalali_date", verrs[0].Tag())
	assert.Equal(t, "day", verrs[0].Field())

	err = cv.Validate(clampRequest{
		Selection: jalali.Date{Year: 1403, Month: 1, Day: 1},
		Min:       &jalali.Date{Year: 1403, Month: 13, Day: 1},
	})
	assert.Error(t, err)
}

func TestValidCalendarDate(t *testing.T) {
	assert.True(t, ValidCalendarDate("gregorian", 2024, 2, 29))
	assert.False(t, ValidCalendarDate("gregorian", 2023, 2, 29))
	assert.False(t, ValidCalendarDate("gregorian", 0, 3, 1))
	assert.True(t, ValidCalendarDate("gregorian", -5000, 3, 3))
	assert.True(t, ValidCalendarDate("jalali", 1404, 12, 30))
	assert.False(t, ValidCalendarDate("jalali", 1403, 12, 30))
	assert.False(t, ValidCalendarDate("jalali", 1403, 0, 1))
	assert.False(t, ValidCalendarDate("hijri", 1445, 1, 1))
}

func TestWriteValidationErrorResponse(t *testing.T) {
	cv := NewCustomValidator()
	err := cv.Validate(formatRequest{Locale: "!!"})
	require.Error(t, err)

	rec := httptest.NewRecorder()
	WriteValidationError(rec, err, "fa-IR")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body ValidationErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "فیلد locale باید یک برچسب زبان معتبر باشد", body.Message)
	assert.Contains(t, body.Errors, "locale")
}

func TestWriteValidationError_PlainError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteValidationError(rec, errors.New("bad body"), "en")

	var body ValidationErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "bad body", body.Message)
	assert.Empty(t, body.Errors)
}

func TestGetLocaleTranslations(t *testing.T) {
	assert.Equal(t, translations["fa"], GetLocaleTranslations("fa_IR"))
	assert.Equal(t, translations["en"], GetLocaleTranslations("de"))
}

func TestRequestIDOrNew(t *testing.T) {
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "abc", RequestIDOrNew(" abc ", now))
	id := RequestIDOrNew("", now)
	assert.Regexp(t, `^REQ-20240320-[0-9a-f-]{36}$`, id)
	assert.NotEqual(t, "x\ny", RequestIDOrNew("x\ny", now))
}
