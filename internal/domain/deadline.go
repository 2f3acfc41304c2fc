package domain

import (
	"fmt"
	"strings"
	"time"
)

// deadlineLayouts are the accepted deadline input layouts, tried in order.
// The first one matches the value of an HTML datetime-local input.
var deadlineLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDeadline parses deadline text in the given location.
// Blank text means no deadline and returns nil.
func ParseDeadline(text string, loc *time.Location) (*time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, text, loc); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (expected YYYY-MM-DDTHH:MM)", ErrInvalidDeadline, text)
}
