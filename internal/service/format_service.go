package service

import (
	"errors"
	"fmt"
	"time"

	"metargb/dateformat-service/internal/formatter"
	"metargb/dateformat-service/pkg/helpers"
	"metargb/dateformat-service/pkg/metrics"
)

var (
	// ErrInvalidDate is returned when a value cannot be turned into an instant
	// or a calendar date does not exist.
	ErrInvalidDate = errors.New("invalid date")
	// ErrUnknownCalendar is returned by Convert for calendars other than
	// gregorian and jalali.
	ErrUnknownCalendar = errors.New("unknown calendar")
)

// Calendar views that pick their own title format.
const (
	ViewDay       = "timeGridDay"
	ViewWeek      = "timeGridWeek"
	ViewYear      = "multiMonthYear"
	ViewMonth     = "dayGridMonth"
	ViewListMonth = "listMonth"
)

const weekTitle = "Week {number} of {year}"

// Settings are the service-wide defaults.
type Settings struct {
	// Location is the display zone for instants and zone-less inputs.
	Location       *time.Location
	RangeSeparator string
	DefaultLocale  string
}

type FormatService struct {
	settings   Settings
	translator Translator
	metrics    *metrics.Metrics
}

// NewFormatService creates the service. A nil translator uses the built-in
// catalog; nil metrics disables counting.
func NewFormatService(settings Settings, translator Translator, m *metrics.Metrics) *FormatService {
	if translator == nil {
		translator = DefaultTranslator()
	}
	if settings.DefaultLocale == "" {
		settings.DefaultLocale = "en"
	}
	return &FormatService{settings: settings, translator: translator, metrics: m}
}

func (s *FormatService) locale(locale string) string {
	if locale == "" {
		return s.settings.DefaultLocale
	}
	return locale
}

func (s *FormatService) options(offset *int) formatter.Options {
	return formatter.Options{TimezoneOffset: offset, Location: s.settings.Location}
}

func (s *FormatService) format(operation string, value interface{}, format, locale string, opts formatter.Options) (string, error) {
	t, ok := formatter.ToInstant(value, opts)
	if !ok {
		s.metrics.RecordFormat(operation, "invalid")
		return "", fmt.Errorf("%s: %w", operation, ErrInvalidDate)
	}
	s.metrics.RecordFormat(operation, formatter.CalendarFor(locale).String())
	return formatter.FormatInstant(t, format, locale), nil
}

// FormatDate formats value with a moment-style format in locale. offset is an
// optional UTC offset in minutes (or hours when below 16 in magnitude).
func (s *FormatService) FormatDate(value interface{}, format, locale string, offset *int) (string, error) {
	return s.format("format", value, format, s.locale(locale), s.options(offset))
}

// FormatRange formats a start and optional end date array with the same
// command. Ranges whose ends render identically collapse to one string.
func (s *FormatService) FormatRange(cmd string, start, end []int, separator, locale string) (string, error) {
	locale = s.locale(locale)
	opts := s.options(nil)

	from, err := s.format("range", start, cmd, locale, opts)
	if err != nil {
		return "", fmt.Errorf("range start: %w", err)
	}
	if len(end) == 0 {
		return from, nil
	}

	to, err := s.format("range", end, cmd, locale, opts)
	if err != nil {
		return "", fmt.Errorf("range end: %w", err)
	}
	if from == to {
		return from, nil
	}

	if separator == "" {
		separator = s.settings.RangeSeparator
	}
	return from + separator + to, nil
}

// FormatEventDate renders an event's date, with the time unless it is all-day.
func (s *FormatService) FormatEventDate(value interface{}, allDay bool, locale string) (string, error) {
	format := "lll"
	if allDay {
		format = "ll"
	}
	return s.format("event", value, format, s.locale(locale), s.options(nil))
}

// FormatViewTitle renders the title shown above a calendar view.
func (s *FormatService) FormatViewTitle(value interface{}, view, locale string) (string, error) {
	locale = s.locale(locale)
	opts := s.options(nil)

	switch view {
	case ViewDay:
		return s.format("title", value, "ll", locale, opts)
	case ViewWeek:
		return s.weekTitle(value, locale, opts)
	case ViewYear:
		return s.format("title", value, "YYYY", locale, opts)
	default:
		return s.format("title", value, "MMMM YYYY", locale, opts)
	}
}

func (s *FormatService) weekTitle(value interface{}, locale string, opts formatter.Options) (string, error) {
	t, ok := formatter.ToInstant(value, opts)
	if !ok {
		s.metrics.RecordFormat("title", "invalid")
		return "", fmt.Errorf("title: %w", ErrInvalidDate)
	}

	week, year := formatter.ResolveLocale(locale).Week(t)
	title := s.translator.Translate(locale, weekTitle, map[string]string{
		"number": fmt.Sprint(week),
		"year":   fmt.Sprint(year),
	})

	calendar := formatter.CalendarFor(locale)
	s.metrics.RecordFormat("title", calendar.String())
	if calendar == formatter.Persian {
		return helpers.ToPersianDigits(title), nil
	}
	return title, nil
}
