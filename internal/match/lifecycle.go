package match

import (
	"time"

	"github.com/tsmith/scholarship-finder/internal/models"
)

// Expired reports whether the record's deadline has passed. Records without a
// concrete deadline date never expire, and neither do records whose raw
// deadline is a rolling keyword. A record is kept on the deadline day itself;
// only a reference date strictly after the deadline expires it.
func Expired(o models.Opportunity, today time.Time) bool {
	if o.DeadlineAt == nil {
		return false
	}
	if IsRollingDeadline(o.Deadline) {
		return false
	}
	return dateOnly(today).After(*o.DeadlineAt)
}

// Unexpired removes expired records, preserving order.
func Unexpired(list []models.Opportunity, today time.Time) []models.Opportunity {
	out := make([]models.Opportunity, 0, len(list))
	for _, o := range list {
		if Expired(o, today) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// Dedupe removes records sharing an identity key, keeping the first
// occurrence and preserving insertion order. The static rule blocks and the
// JSON catalog can legitimately describe the same named program twice.
func Dedupe(list []models.Opportunity) []models.Opportunity {
	seen := make(map[string]struct{}, len(list))
	out := make([]models.Opportunity, 0, len(list))
	for _, o := range list {
		key := o.Identity()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, o)
	}
	return out
}
