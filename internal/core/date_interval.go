package core

import (
	"slices"
	"strings"
	"time"
	"unicode"
)

// dateLayouts are tried in order when checking that a temporal component
// is a real ISO 8601 date. Reduced precision (year-month, year), hour-only
// offsets and the basic format without separators are all valid.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04Z07",
	"2006-01-02T15:04",
	"2006-01-02T15Z07:00",
	"2006-01-02T15",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z0700",
	"2006-01-02 15:04:05Z07",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04Z07:00",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
	"2006",
	"20060102T150405Z0700",
	"20060102T150405Z07",
	"20060102T150405",
	"20060102T1504Z0700",
	"20060102T1504",
	"20060102",
}

// ParseInterval converts a "start/end" ISO 8601 interval into the display
// date of its start. When start and end differ it also returns a label of
// the form "(start-end)" that disambiguates resources covering different
// periods. The end may be a duration, the start may not.
func ParseInterval(raw string) (string, string, error) {
	bits := strings.Split(raw, "/")
	switch {
	case len(bits) == 1:
		return "", "", conversionErrorf(`Distribution "temporal" field must have a "/" in it`)
	case len(bits) > 2:
		return "", "", conversionErrorf(`Distribution "temporal" field must only have one "/" in it`)
	}
	start := strings.TrimSpace(bits[0])
	end := strings.TrimSpace(bits[1])
	startDate, err := ParseOneDate(start, false)
	if err != nil {
		return "", "", temporalError(err, start)
	}
	endDate, err := ParseOneDate(end, true)
	if err != nil {
		return "", "", temporalError(err, end)
	}
	if startDate == endDate {
		return startDate, "", nil
	}
	return startDate, "(" + startDate + "-" + endDate + ")", nil
}

// ParseOneDate reorders a valid ISO 8601 date into day/month/year display
// order, keeping the precision of the input ("2016-01" gives "01/2016",
// "20160304T101112Z" gives "04/03/2016").
// Durations ("P1Y") are returned unchanged when allowDuration is set.
func ParseOneDate(value string, allowDuration bool) (string, error) {
	if err := checkDate(value); err != nil {
		if strings.HasPrefix(value, "P") {
			if allowDuration {
				return value, nil
			}
			return "", conversionErrorf("Cannot have a duration here: %q", value)
		}
		return "", err
	}
	runs := strings.FieldsFunc(value, func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	// Basic format packs the whole date into one run.
	if len(runs) > 0 && len(runs[0]) == len("20060102") {
		date := runs[0]
		runs = append([]string{date[:4], date[4:6], date[6:]}, runs[1:]...)
	}
	if len(runs) > 3 {
		runs = runs[:3]
	}
	slices.Reverse(runs)
	return strings.Join(runs, "/"), nil
}

func checkDate(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return conversionErrorf("empty date")
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, trimmed); err == nil {
			return nil
		}
	}
	return conversionErrorf("unknown date format: %q", trimmed)
}

func temporalError(err error, bit string) error {
	return conversionErrorf(`Distribution "temporal" date didn't parse: %s %q. Check it is in ISO8601 format e.g. "YYYY-MM-DD"`, err, bit)
}
