// Package parser turns human-entered date and month arguments into values
// the schedule layer understands.
package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/rostrahealth/shiftbook/internal/errors"
)

// datetimeLayouts are tried in order before falling back to natural
// language parsing.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"01/02/2006 15:04",
}

// ParseDateTime parses a timestamp argument. Fixed layouts are preferred;
// anything else goes through go-dateparser.
func ParseDateTime(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, errors.ErrInvalidTimestamp
	}

	for _, layout := range datetimeLayouts {
		if t, err := time.ParseInLocation(layout, input, time.Local); err == nil {
			return t, nil
		}
	}

	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, errors.Wrap(errors.ErrInvalidTimestamp, input)
	}
	return result.Time, nil
}
