package employee

import (
	"strings"
	"time"
)

// ParseWorkStart parses a schedule time in "15:04:05" or "15:04" form.
func ParseWorkStart(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidWorkStart
}
