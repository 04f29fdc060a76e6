package validator

import (
	"slices"
	"strings"
	"time"
)

// ValidationError describes one rejected request field.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors collects every field problem of a request so clients can fix
// them in one round trip. The HTTP layer renders it as 422.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

// ToMap indexes the messages by field. A repeated field keeps its last message.
func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v))
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty reports whether s is blank once surrounding whitespace is removed.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidDate parses a "YYYY-MM-DD" calendar date.
func IsValidDate(s string) (time.Time, bool) {
	return parse("2006-01-02", s)
}

// IsValidMonth parses a "YYYY-MM" month, returning its first day.
func IsValidMonth(s string) (time.Time, bool) {
	return parse("2006-01", s)
}

// IsInSlice reports whether value is one of allowed.
func IsInSlice(value string, allowed []string) bool {
	return slices.Contains(allowed, value)
}

// IsValidDateTime parses an RFC 3339 timestamp with an explicit offset, fractional
// seconds optional, e.g. "2024-01-15T10:30:00Z" or "2024-01-15T10:30:00.5+07:00".
func IsValidDateTime(s string) (time.Time, bool) {
	return parse(time.RFC3339Nano, s)
}

func parse(layout, s string) (time.Time, bool) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
