package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/rostrahealth/shiftbook/internal/errors"
)

var monthLayouts = []string{
	"2006-01",
	"January 2006",
	"Jan 2006",
	"01/2006",
}

// ParseMonth parses a month argument like "2025-01" or "January 2025".
// A bare month name ("march") resolves to that month of the current year.
func ParseMonth(input string) (year int, month time.Month, err error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, 0, errors.ErrInvalidMonth
	}

	for _, layout := range monthLayouts {
		if t, perr := time.Parse(layout, input); perr == nil {
			return t.Year(), t.Month(), nil
		}
	}

	if m, ok := monthByName(input); ok {
		return time.Now().Year(), m, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}
	result, perr := dateparser.Parse(cfg, input)
	if perr != nil {
		return 0, 0, errors.Wrap(errors.ErrInvalidMonth, input)
	}
	return result.Time.Year(), result.Time.Month(), nil
}

func monthByName(input string) (time.Month, bool) {
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(input, m.String()) || strings.EqualFold(input, m.String()[:3]) {
			return m, true
		}
	}
	return 0, false
}
