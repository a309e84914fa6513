package catalog

import (
	"strings"
	"time"

	"github.com/tsmith/scholarship-finder/internal/match"
	"github.com/tsmith/scholarship-finder/internal/models"
)

// Change records one field rewrite made by a rollover run.
type Change struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Field string `json:"field"`
	Old   string `json:"old"`
	New   string `json:"new"`
}

// rolloverLayouts are the deadline forms a rollover may rewrite. Month-only
// and free-text deadlines never roll.
var rolloverLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"01/02/2006",
	"1/2/2006",
}

// RollDeadlines advances the year of every dated deadline that lies strictly
// in the past, preserving the layout it was written in ("March 15, 2026"
// becomes "March 15, 2027", "03/15/2026" stays slash-formatted). Rolling
// keyword deadlines and unparseable text are skipped. The records are
// updated in place and stamped last_verified; the returned changes describe
// each rewrite.
func RollDeadlines(list []models.Opportunity, today time.Time) []Change {
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	stamp := todayDate.Format("2006-01-02")

	var changes []Change
	for i := range list {
		o := &list[i]
		raw := strings.TrimSpace(o.Deadline)
		if raw == "" || match.IsRollingDeadline(raw) {
			continue
		}
		deadline, layout, ok := matchLayout(raw)
		if !ok {
			continue
		}
		if !todayDate.After(deadline) {
			continue
		}

		next := deadline.AddDate(1, 0, 0).Format(layout)
		changes = append(changes, Change{
			ID:    o.ID,
			Name:  o.Name,
			Field: "deadline",
			Old:   raw,
			New:   next,
		})
		o.Deadline = next
		o.LastVerified = stamp
	}
	return changes
}

// matchLayout finds the layout the raw deadline was written in. Go's parser
// accepts unpadded digits against padded layouts, so a candidate only counts
// when formatting the parsed time reproduces the input exactly; that is what
// keeps "3/5/2026" from coming back as "03/05/2027".
func matchLayout(raw string) (time.Time, string, bool) {
	for _, layout := range rolloverLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if t.Format(layout) != raw {
			continue
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), layout, true
	}
	return time.Time{}, "", false
}
