package validator

import (
	"errors"
	"strings"
	"time"
)

// ValidateDate parses a calendar date in YYYY-MM-DD form.
func ValidateDate(dateStr string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, errors.New("invalid date")
	}
	return t, nil
}

// AsIATA reports whether s looks like a bare IATA airport code and returns
// it uppercased. Anything else is treated as an airport name to be resolved
// against the registry.
func AsIATA(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) != 3 {
		return "", false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return "", false
		}
	}
	return strings.ToUpper(s), true
}
