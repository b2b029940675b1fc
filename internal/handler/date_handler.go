package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"metargb/dateformat-service/internal/service"
	"metargb/dateformat-service/pkg/helpers"
	"metargb/dateformat-service/pkg/jalali"
	"metargb/dateformat-service/pkg/logger"
)

type DateHandler struct {
	service   *service.FormatService
	validator *helpers.CustomValidator
	logger    *logger.Logger
}

func NewDateHandler(svc *service.FormatService, log *logger.Logger) *DateHandler {
	return &DateHandler{
		service:   svc,
		validator: helpers.NewCustomValidator(),
		logger:    log,
	}
}

// Register mounts the date API on mux
func (h *DateHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/date/format", h.Format)
	mux.HandleFunc("/api/date/range", h.FormatRange)
	mux.HandleFunc("/api/date/event", h.FormatEvent)
	mux.HandleFunc("/api/date/title", h.FormatTitle)
	mux.HandleFunc("/api/date/convert", h.Convert)
	mux.HandleFunc("/api/date/clamp", h.Clamp)
	mux.HandleFunc("/api/date/picker-locale", h.PickerLocale)
}

type formatRequest struct {
	Value          json.RawMessage `json:"value" validate:"required"`
	Format         string          `json:"format"`
	Locale         string          `json:"locale" validate:"omitempty,locale_tag"`
	TimezoneOffset *int            `json:"timezone_offset" validate:"omitempty,utc_offset"`
}

type rangeRequest struct {
	Cmd       string `json:"cmd" validate:"required"`
	Start     []int  `json:"start" validate:"required,min=1,max=7"`
	End       []int  `json:"end" validate:"omitempty,min=1,max=7"`
	Separator string `json:"separator"`
	Locale    string `json:"locale" validate:"omitempty,locale_tag"`
}

type eventRequest struct {
	Value  json.RawMessage `json:"value" validate:"required"`
	AllDay bool            `json:"all_day"`
	Locale string          `json:"locale" validate:"omitempty,locale_tag"`
}

type titleRequest struct {
	Value  json.RawMessage `json:"value" validate:"required"`
	View   string          `json:"view" validate:"required"`
	Locale string          `json:"locale" validate:"omitempty,locale_tag"`
}

type convertRequest struct {
	Calendar string `json:"calendar" validate:"required,oneof=gregorian jalali"`
	Year     int    `json:"year" validate:"required"`
	Month    int    `json:"month" validate:"required,min=1,max=12"`
	Day      int    `json:"day" validate:"required,min=1,max=31"`
}

type pickerRequest struct {
	Locale string `json:"locale" validate:"omitempty,locale_tag"`
}

type clampRequest struct {
	Selection jalali.Date  `json:"selection"`
	Min       *jalali.Date `json:"min"`
	Max       *jalali.Date `json:"max"`
}

// Format handles POST /api/date/format
func (h *DateHandler) Format(w http.ResponseWriter, r *http.Request) {
	var req formatRequest
	if !h.decode(w, r, &req, func() string { return req.Locale }) {
		return
	}

	result, err := h.service.FormatDate(decodeValue(req.Value), req.Format, req.Locale, req.TimezoneOffset)
	if err != nil {
		h.writeServiceError(w, r, err, "value", messageLocale(r, req.Locale))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": result})
}

// FormatRange handles POST /api/date/range
// start and end are date arrays with a zero-based month
func (h *DateHandler) FormatRange(w http.ResponseWriter, r *http.Request) {
	var req rangeRequest
	if !h.decode(w, r, &req, func() string { return req.Locale }) {
		return
	}

	result, err := h.service.FormatRange(req.Cmd, req.Start, req.End, req.Separator, req.Locale)
	if err != nil {
		h.writeServiceError(w, r, err, "start", messageLocale(r, req.Locale))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": result})
}

// FormatEvent handles POST /api/date/event
func (h *DateHandler) FormatEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if !h.decode(w, r, &req, func() string { return req.Locale }) {
		return
	}

	result, err := h.service.FormatEventDate(decodeValue(req.Value), req.AllDay, req.Locale)
	if err != nil {
		h.writeServiceError(w, r, err, "value", messageLocale(r, req.Locale))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": result})
}

// FormatTitle handles POST /api/date/title
func (h *DateHandler) FormatTitle(w http.ResponseWriter, r *http.Request) {
	var req titleRequest
	if !h.decode(w, r, &req, func() string { return req.Locale }) {
		return
	}

	result, err := h.service.FormatViewTitle(decodeValue(req.Value), req.View, req.Locale)
	if err != nil {
		h.writeServiceError(w, r, err, "value", messageLocale(r, req.Locale))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": result})
}

// Convert handles POST /api/date/convert
func (h *DateHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if !h.decode(w, r, &req, func() string { return "" }) {
		return
	}

	date := jalali.Date{Year: req.Year, Month: req.Month, Day: req.Day}
	result, err := h.service.Convert(req.Calendar, date)
	if err != nil {
		h.writeServiceError(w, r, err, "date", messageLocale(r, ""))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": result})
}

// Clamp handles POST /api/date/clamp
func (h *DateHandler) Clamp(w http.ResponseWriter, r *http.Request) {
	var req clampRequest
	if !h.decode(w, r, &req, func() string { return "" }) {
		return
	}

	result := h.service.Clamp(req.Selection, jalali.Range{Min: req.Min, Max: req.Max})
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": result})
}

// PickerLocale handles GET /api/date/picker-locale?locale=
func (h *DateHandler) PickerLocale(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req := pickerRequest{Locale: r.URL.Query().Get("locale")}
	if err := h.validator.Validate(&req); err != nil {
		helpers.WriteValidationError(w, err, messageLocale(r, ""))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": h.service.PickerLocale(req.Locale)})
}

// decode reads a POST JSON body into req and validates it. It writes the
// error response itself and reports whether the handler should continue.
func (h *DateHandler) decode(w http.ResponseWriter, r *http.Request, req interface{}, locale func() string) bool {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := h.validator.Validate(req); err != nil {
		helpers.WriteValidationError(w, err, messageLocale(r, locale()))
		return false
	}
	return true
}

func (h *DateHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, field, locale string) {
	switch {
	case errors.Is(err, service.ErrInvalidDate):
		helpers.WriteInvalidDateResponse(w, field, locale)
	case errors.Is(err, service.ErrUnknownCalendar):
		helpers.WriteValidationErrorResponseFromString(w, err.Error(), locale)
	default:
		h.logger.FromContext(r.Context()).WithFields(logrus.Fields{
			"path":  r.URL.Path,
			"error": err.Error(),
		}).Error("date operation failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeValue turns the JSON value field into something the formatter
// accepts: date strings, Unix milliseconds or date arrays. Numeric strings,
// including Persian digits, are read as Unix milliseconds.
func decodeValue(raw json.RawMessage) interface{} {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}

	switch raw[0] {
	case 'n':
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		if ms, err := helpers.ParseInt(s); err == nil {
			return ms
		}
		return s
	case '[':
		var parts []int
		if err := json.Unmarshal(raw, &parts); err != nil {
			return nil
		}
		return parts
	default:
		var ms float64
		if err := json.Unmarshal(raw, &ms); err != nil {
			return nil
		}
		return ms
	}
}

// messageLocale picks the locale for error messages: the request's own locale,
// then Accept-Language, then the default.
func messageLocale(r *http.Request, locale string) string {
	if locale != "" {
		return locale
	}
	if tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language")); err == nil && len(tags) > 0 {
		return tags[0].String()
	}
	return helpers.GetDefaultLocale()
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
