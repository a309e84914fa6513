package match

import (
	"strings"

	"github.com/tsmith/scholarship-finder/internal/models"
	"github.com/tsmith/scholarship-finder/internal/profile"
)

// Matches reports whether the profile satisfies every requirement the record
// carries. Rules are evaluated in a fixed order and short-circuit on the
// first failure; the order is a cost optimization and does not affect the
// result. Unset requirement fields impose no constraint, so a record with an
// empty RequirementSet matches any profile that passes the GPA floor.
func Matches(p profile.Profile, o models.Opportunity) bool {
	req := o.Requirements

	if p.GPA < o.GPAMin {
		return false
	}

	// Exact equality only: "Senior" must not match "High School Senior".
	if len(req.Years) > 0 && !matchYear(p.Year, req.Years) {
		return false
	}

	if len(req.Majors) > 0 && !matchMajor(p, req.Majors) {
		return false
	}

	if len(req.Heritage) > 0 && !matchKeywordField(p.Heritage, req.Heritage) {
		return false
	}
	if len(req.Genders) > 0 && !matchKeywordField(p.Gender, req.Genders) {
		return false
	}
	if len(req.Clubs) > 0 && !matchKeywordField(p.Clubs, req.Clubs) {
		return false
	}

	if len(req.Universities) > 0 && !matchEitherDirection(p.University, req.Universities) {
		return false
	}

	if req.Citizenship && p.IsInternational() {
		return false
	}

	if len(req.States) > 0 && !matchEitherDirection(p.State, req.States) {
		return false
	}

	if len(req.Residency) > 0 && !matchKeywordField(p.Residency, req.Residency) {
		return false
	}

	return true
}

// matchYear requires an exact case-insensitive match against one of the
// allowed education levels.
func matchYear(year string, allowed []string) bool {
	year = strings.TrimSpace(year)
	for _, v := range allowed {
		if strings.EqualFold(year, strings.TrimSpace(v)) {
			return true
		}
	}
	return false
}

// matchMajor checks the allowed values against both the declared major and
// the broader discipline; either satisfies.
func matchMajor(p profile.Profile, allowed []string) bool {
	for _, v := range allowed {
		if profile.Specified(p.Major) && ContainsPhrase(p.Major, v) {
			return true
		}
		if profile.Specified(p.Discipline) && ContainsPhrase(p.Discipline, v) {
			return true
		}
	}
	return false
}

// matchKeywordField looks for any allowed value inside the profile field on
// whole-token boundaries. An unspecified field never matches.
func matchKeywordField(field string, allowed []string) bool {
	if !profile.Specified(field) {
		return false
	}
	return ContainsAny(field, allowed)
}

// matchEitherDirection accepts containment either way: the allowed value
// inside the profile field ("Purdue University" holds "Purdue") or the
// profile field inside the allowed value.
func matchEitherDirection(field string, allowed []string) bool {
	if !profile.Specified(field) {
		return false
	}
	for _, v := range allowed {
		if ContainsPhrase(field, v) || ContainsPhrase(v, field) {
			return true
		}
	}
	return false
}
