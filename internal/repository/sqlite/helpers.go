package sqlite

import (
	"database/sql"
	"time"
)

// timestampLayout is fixed width so lexical order in SQLite matches time order.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

const dateLayout = "2006-01-02"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(timestampLayout, s)
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func nullableStringToValue(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func nowUTC() string {
	return formatTimestamp(time.Now())
}
