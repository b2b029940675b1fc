package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorResponse represents the validation error response format
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// LocaleTranslations holds error message translations for different locales
type LocaleTranslations struct {
	Required   string
	Min        string
	Max        string
	OneOf      string
	LocaleTag  string
	UTCOffset  string
	JalaliDate string
	Date       string
	Invalid    string
}

// translations holds locale-specific translations
var translations = map[string]LocaleTranslations{
	"en": {
		Required:   "The %s field is required",
		Min:        "The %s field must be at least %s",
		Max:        "The %s field must not exceed %s",
		OneOf:      "The %s field must be one of: %s",
		LocaleTag:  "The %s field must be a valid language tag",
		UTCOffset:  "The %s field must be a UTC offset in minutes",
		JalaliDate: "The %s field is not a valid Jalali date",
		Date:       "The %s field is not a valid date",
		Invalid:    "The %s field is invalid",
	},
	"fa": {
		Required:   "فیلد %s الزامی است",
		Min:        "فیلد %s باید حداقل %s باشد",
		Max:        "فیلد %s نباید بیشتر از %s باشد",
		OneOf:      "فیلد %s باید یکی از موارد زیر باشد: %s",
		LocaleTag:  "فیلد %s باید یک برچسب زبان معتبر باشد",
		UTCOffset:  "فیلد %s باید اختلاف زمانی با UTC بر حسب دقیقه باشد",
		JalaliDate: "فیلد %s یک تاریخ شمسی معتبر نیست",
		Date:       "فیلد %s یک تاریخ معتبر نیست",
		Invalid:    "فیلد %s نامعتبر است",
	},
}

// GetDefaultLocale returns the default locale
func GetDefaultLocale() string {
	return "en"
}

// GetLocaleTranslations returns translations for a given locale, or default locale if not found.
// Regional tags such as "fa-IR" use their base language.
func GetLocaleTranslations(locale string) LocaleTranslations {
	if t, ok := translations[locale]; ok {
		return t
	}
	base := strings.SplitN(strings.ReplaceAll(locale, "_", "-"), "-", 2)[0]
	if t, ok := translations[strings.ToLower(base)]; ok {
		return t
	}
	return translations[GetDefaultLocale()]
}

// FormatValidationError formats a validator.FieldError into a localized error message
func FormatValidationError(fe validator.FieldError, locale string) string {
	t := GetLocaleTranslations(locale)
	fieldName := getFieldName(fe)

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf(t.Required, fieldName)
	case "min", "gte":
		return fmt.Sprintf(t.Min, fieldName, fe.Param())
	case "max", "lte":
		return fmt.Sprintf(t.Max, fieldName, fe.Param())
	case "oneof":
		return fmt.Sprintf(t.OneOf, fieldName, fe.Param())
	case "locale_tag":
		return fmt.Sprintf(t.LocaleTag, fieldName)
	case "utc_offset":
		return fmt.Sprintf(t.UTCOffset, fieldName)
	case "jalali_date":
		return fmt.Sprintf(t.JalaliDate, fieldName)
	default:
		return fmt.Sprintf(t.Invalid, fieldName)
	}
}

// getFieldName extracts a human-readable field name from the FieldError
func getFieldName(fe validator.FieldError) string {
	fieldName := strings.ToLower(fe.Field())
	return strings.ReplaceAll(fieldName, "_", " ")
}

// WriteValidationError writes err as a validation response when it comes from
// the validator, and as a generic invalid-request response otherwise.
func WriteValidationError(w http.ResponseWriter, err error, locale string) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		WriteValidationErrorResponse(w, validationErrors, locale)
		return
	}
	WriteValidationErrorResponseFromString(w, err.Error(), locale)
}

// WriteValidationErrorResponse writes a validation error response in the specified format
// It accepts validator.ValidationErrors and formats them according to the locale
func WriteValidationErrorResponse(w http.ResponseWriter, validationErrors validator.ValidationErrors, locale string) {
	errs := make(map[string]string)
	var firstMessage string

	for i, err := range validationErrors {
		errorMessage := FormatValidationError(err, locale)
		errs[fieldKey(err)] = errorMessage

		// First error message becomes the main message
		if i == 0 {
			firstMessage = errorMessage
		}
	}

	writeValidationResponse(w, ValidationErrorResponse{Message: firstMessage, Errors: errs})
}

// WriteInvalidDateResponse reports a date that does not exist in its calendar
func WriteInvalidDateResponse(w http.ResponseWriter, field, locale string) {
	t := GetLocaleTranslations(locale)
	message := fmt.Sprintf(t.Date, field)
	writeValidationResponse(w, ValidationErrorResponse{
		Message: message,
		Errors:  map[string]string{field: message},
	})
}

// WriteValidationErrorResponseFromString writes a validation error response from a single error message
// This creates a generic error response when you don't have field-specific errors
func WriteValidationErrorResponseFromString(w http.ResponseWriter, message string, locale string) {
	if message == "" {
		message = fmt.Sprintf(GetLocaleTranslations(locale).Invalid, "request")
	}

	writeValidationResponse(w, ValidationErrorResponse{
		Message: message,
		Errors:  make(map[string]string),
	})
}

// fieldKey uses the namespace without the top-level struct name, e.g. "min.day"
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func writeValidationResponse(w http.ResponseWriter, response ValidationErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(response)
}
