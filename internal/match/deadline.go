package match

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tsmith/scholarship-finder/internal/models"
)

// deadlineFormats are tried in order against the raw string. Padded numeric
// layouts come before unpadded ones so "03/15/2027" keeps its exact form.
var deadlineFormats = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"01/02/2006",
	"1/2/2006",
	"2006-01-02",
	"January 2006",
	"Jan 2006",
}

// rollingKeywords mark deadlines that intentionally never resolve to a date.
var rollingKeywords = []string{
	"rolling",
	"varies",
	"ongoing",
	"multiple deadlines",
}

var yearTokenRegex = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// fallbackMonths are scanned in calendar order when only a month name plus a
// year token can be recovered from the string.
var fallbackMonths = []struct {
	name  string
	month time.Month
}{
	{"january", time.January},
	{"february", time.February},
	{"march", time.March},
	{"april", time.April},
	{"may", time.May},
	{"june", time.June},
	{"july", time.July},
	{"august", time.August},
	{"september", time.September},
	{"october", time.October},
	{"november", time.November},
	{"december", time.December},
}

// ParseDeadline resolves a raw deadline string against a reference date. It
// returns the deadline as a UTC midnight date plus the calendar days
// remaining. Rolling keywords, free text and anything else unparseable yield
// (nil, NoDeadlineDays); malformed input never produces an error.
func ParseDeadline(raw string, today time.Time) (*time.Time, int) {
	raw = strings.TrimSpace(raw)
	if raw == "" || IsRollingDeadline(raw) {
		return nil, models.NoDeadlineDays
	}

	for _, format := range deadlineFormats {
		if t, err := time.Parse(format, raw); err == nil {
			d := dateOnly(t)
			return &d, daysBetween(today, d)
		}
	}

	// Coarse fallback: a 4-digit year token plus a month name anywhere in the
	// string resolves to day 1 of that month ("Early June 2027 (expected)").
	if yearToken := yearTokenRegex.FindString(raw); yearToken != "" {
		year, err := strconv.Atoi(yearToken)
		if err == nil {
			lower := strings.ToLower(raw)
			for _, m := range fallbackMonths {
				if strings.Contains(lower, m.name) {
					d := time.Date(year, m.month, 1, 0, 0, 0, 0, time.UTC)
					return &d, daysBetween(today, d)
				}
			}
		}
	}

	return nil, models.NoDeadlineDays
}

// IsRollingDeadline reports whether the raw deadline text is one of the
// non-date keywords rather than a date ("Rolling (apply early)", "Varies by
// chapter").
func IsRollingDeadline(raw string) bool {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" {
		return false
	}
	for _, keyword := range rollingKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// dateOnly truncates t to midnight UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole calendar days from a to b. Both arguments are
// compared at UTC midnight, so the count is stable over the course of a day.
func daysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}
