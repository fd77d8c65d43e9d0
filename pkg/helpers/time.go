package helpers

import (
	"errors"
	"time"
)

// ErrBadDate is returned when a due-date string matches none of the
// accepted layouts.
var ErrBadDate = errors.New("invalid date format, use YYYY-MM-DD")

// dueDateLayouts are tried in order: full RFC3339 (Z or explicit offset),
// an offset-less date-time, and a plain calendar date.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDueDate parses a task due date in any of the accepted layouts.
func ParseDueDate(s string) (time.Time, error) {
	for _, l := range dueDateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrBadDate
}
