package match

import (
	"math"

	"github.com/tsmith/scholarship-finder/internal/models"
	"github.com/tsmith/scholarship-finder/internal/profile"
)

// Competitiveness weights are inverse: less competitive awards score higher.
// Unknown values fall back to defaultCompetitivenessWeight.
var scholarshipCompetitivenessWeights = map[models.Competitiveness]float64{
	models.CompetitivenessLow:      10,
	models.CompetitivenessMedium:   7,
	models.CompetitivenessHigh:     5,
	models.CompetitivenessVeryHigh: 3,
}

var researchCompetitivenessWeights = map[models.Competitiveness]float64{
	models.CompetitivenessLow:      10,
	models.CompetitivenessMedium:   7,
	models.CompetitivenessHigh:     4,
	models.CompetitivenessVeryHigh: 2,
}

const defaultCompetitivenessWeight = 5

// Score computes the record's priority from the profile's point of view, in
// [0, 100] rounded to two decimals. The weighting is a fixed linear table
// selected by record kind: award-driven for scholarships, stipend-driven for
// research positions. Identical inputs always produce identical scores.
func Score(p profile.Profile, o models.Opportunity) float64 {
	if o.IsResearch() {
		return round2(researchScore(p, o))
	}
	return round2(scholarshipScore(p, o))
}

// scholarshipScore weights award size 40%, deadline urgency 30%, GPA fit 20%
// and competitiveness 10%.
func scholarshipScore(p profile.Profile, o models.Opportunity) float64 {
	var score float64

	switch avg := o.AverageAward(); {
	case avg >= 10000:
		score += 40
	case avg >= 5000:
		score += 30
	case avg >= 2000:
		score += 20
	default:
		score += 10
	}

	// The sentinel lands in the final band, same as far-out deadlines.
	switch days := o.DaysUntilDeadline; {
	case days <= 30:
		score += 30
	case days <= 60:
		score += 25
	case days <= 90:
		score += 20
	case days <= 180:
		score += 15
	default:
		score += 10
	}

	switch {
	case p.GPA >= o.GPAPreferred:
		score += 20
	case p.GPA >= o.GPAMin:
		score += 15
	default:
		score += 5
	}

	score += competitivenessWeight(scholarshipCompetitivenessWeights, o.Competitiveness)
	return score
}

// researchScore weights stipend 40%, GPA fit 30%, benefits 20% and
// competitiveness 10%. The stipend component saturates at $10,000 so the
// total stays within 100.
func researchScore(p profile.Profile, o models.Opportunity) float64 {
	var score float64

	stipend := float64(o.StipendAmount) / 10000 * 40
	if stipend > 40 {
		stipend = 40
	}
	if stipend > 0 {
		score += stipend
	}

	switch {
	case p.GPA >= o.GPAPreferred:
		score += 30
	case p.GPA >= o.GPAMin:
		score += 15
	}

	if o.HousingProvided {
		score += 10
	}
	if o.TravelCovered {
		score += 10
	}

	score += competitivenessWeight(researchCompetitivenessWeights, o.Competitiveness)
	return score
}

func competitivenessWeight(weights map[models.Competitiveness]float64, c models.Competitiveness) float64 {
	if w, ok := weights[models.ParseCompetitiveness(string(c))]; ok {
		return w
	}
	return defaultCompetitivenessWeight
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
