// Package pricing - Event duration calculation
package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"wedding-billing/internal/errors"
)

// timestampLayouts are the formats the surrounding layer is known to
// send. RFC3339 is canonical; the date-time form shows up in older
// booking forms.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// CalculateEventDuration returns the span between two event timestamps
// in hours, rounded to 2 decimal places. Both timestamps must be
// present and parseable, and the end must be strictly after the start.
func CalculateEventDuration(start, end string) (decimal.Decimal, error) {
	if start == "" {
		return decimal.Zero, errors.MissingField("start")
	}
	if end == "" {
		return decimal.Zero, errors.MissingField("end")
	}

	startAt, err := parseTimestamp(start)
	if err != nil {
		return decimal.Zero, errors.InvalidValue("start", "unparseable timestamp").
			WithContext("value", start)
	}
	endAt, err := parseTimestamp(end)
	if err != nil {
		return decimal.Zero, errors.InvalidValue("end", "unparseable timestamp").
			WithContext("value", end)
	}

	if !endAt.After(startAt) {
		return decimal.Zero, errors.InvalidValue("end", "must be after start")
	}

	hours := decimal.NewFromFloat(endAt.Sub(startAt).Hours())
	return hours.Round(2), nil
}

func parseTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
