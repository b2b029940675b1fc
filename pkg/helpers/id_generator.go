package helpers

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader carries the request id between clients and the service
const RequestIDHeader = "X-Request-ID"

// GenerateUUID generates a UUID v4
func GenerateUUID() string {
	return uuid.New().String()
}

// GenerateRequestID generates a request ID
// Format: REQ-YYYYMMDD-<uuid> (e.g., REQ-20240320-9b2c...)
func GenerateRequestID(now time.Time) string {
	return fmt.Sprintf("REQ-%s-%s", now.UTC().Format("20060102"), GenerateUUID())
}

// RequestIDOrNew keeps a client supplied request ID when it looks sane
func RequestIDOrNew(existing string, now time.Time) string {
	existing = strings.TrimSpace(existing)
	if existing != "" && len(existing) <= 128 && !strings.ContainsAny(existing, "\r\n") {
		return existing
	}
	return GenerateRequestID(now)
}
