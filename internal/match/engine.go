package match

import (
	"time"

	"github.com/tsmith/scholarship-finder/internal/models"
	"github.com/tsmith/scholarship-finder/internal/profile"
)

// Stats summarizes a ranked result set for callers that want headline
// numbers without walking the records themselves.
type Stats struct {
	Total           int     `json:"total_scholarships"`
	GPAEligible     int     `json:"gpa_eligible"`
	UrgentDeadlines int     `json:"urgent_deadlines_30_days"`
	TotalPotential  float64 `json:"total_potential_award"`
	AveragePriority float64 `json:"average_priority"`
}

// Result is the output of a search: a ranked record list plus aggregates.
type Result struct {
	Records []models.Opportunity `json:"scholarships"`
	Stats   Stats                `json:"stats"`
}

// Search runs the full pipeline over a candidate set: eligibility matching,
// deadline normalization, scoring, expiry filtering, deduplication and
// ranking. The reference date is passed in so results are reproducible; the
// candidate slice is never mutated.
func Search(p profile.Profile, candidates []models.Opportunity, today time.Time, order SortOrder) Result {
	p = p.Normalized()
	stamp := dateOnly(today).Format("2006-01-02")

	matched := make([]models.Opportunity, 0, len(candidates))
	for _, o := range candidates {
		if !Matches(p, o) {
			continue
		}
		o.DeadlineAt, o.DaysUntilDeadline = ParseDeadline(o.Deadline, today)
		o.PriorityScore = Score(p, o)
		o.ResearchedOn = stamp
		matched = append(matched, o)
	}

	live := Unexpired(matched, today)
	unique := Dedupe(live)
	Rank(unique, order)

	return Result{Records: unique, Stats: Summarize(unique, p)}
}

// Summarize computes aggregates over an annotated result set.
func Summarize(list []models.Opportunity, p profile.Profile) Stats {
	s := Stats{Total: len(list)}
	var scoreSum float64
	for _, o := range list {
		if p.GPA >= o.GPAMin {
			s.GPAEligible++
		}
		if o.Urgent() {
			s.UrgentDeadlines++
		}
		s.TotalPotential += o.AverageAward()
		scoreSum += o.PriorityScore
	}
	if len(list) > 0 {
		s.AveragePriority = round2(scoreSum / float64(len(list)))
	}
	return s
}
