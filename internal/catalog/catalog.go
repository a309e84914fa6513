// Package catalog supplies the candidate record set for a search. Records
// come from two sources: a curated rule table keyed on profile traits
// (embedded YAML, interpolated per profile) and a JSON document store that
// can be edited, reloaded and rolled forward without a rebuild.
package catalog

import (
	"github.com/tsmith/scholarship-finder/internal/models"
	"github.com/tsmith/scholarship-finder/internal/profile"
)

// Candidates merges both catalog sources for one search pass. Rule records
// come first so that when the same program appears in both sources,
// deduplication keeps the curated template.
func Candidates(rs *RuleSet, store *Store, p profile.Profile) []models.Opportunity {
	var out []models.Opportunity
	if rs != nil {
		out = rs.BuildFor(p)
	}
	if store != nil {
		out = append(out, store.Active()...)
	}
	return out
}
