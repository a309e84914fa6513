package models

import (
	"strings"
	"time"
)

// NoDeadlineDays is the days-until value assigned when a deadline cannot be
// resolved to a concrete date (rolling, varies, unparseable). It sorts after
// every real deadline and never counts as urgent.
const NoDeadlineDays = 999

// Kind discriminates the two record families. Kind selects the scoring
// strategy; an empty value means scholarship.
type Kind string

const (
	KindScholarship Kind = "scholarship"
	KindResearch    Kind = "research"
)

// Competitiveness is ordinal: Low < Medium < High < VeryHigh.
type Competitiveness string

const (
	CompetitivenessLow      Competitiveness = "Low"
	CompetitivenessMedium   Competitiveness = "Medium"
	CompetitivenessHigh     Competitiveness = "High"
	CompetitivenessVeryHigh Competitiveness = "Very High"
)

// ParseCompetitiveness normalizes free-form competitiveness text to one of
// the four canonical levels. Unknown values pass through unchanged so they
// can fall back to the default scoring weight.
func ParseCompetitiveness(s string) Competitiveness {
	switch strings.ToLower(strings.Join(strings.Fields(strings.ReplaceAll(s, "-", " ")), " ")) {
	case "low":
		return CompetitivenessLow
	case "medium":
		return CompetitivenessMedium
	case "high":
		return CompetitivenessHigh
	case "very high", "veryhigh":
		return CompetitivenessVeryHigh
	}
	return Competitiveness(strings.TrimSpace(s))
}

// Order returns the ordinal position 1-4, or 0 for unknown values.
func (c Competitiveness) Order() int {
	switch ParseCompetitiveness(string(c)) {
	case CompetitivenessLow:
		return 1
	case CompetitivenessMedium:
		return 2
	case CompetitivenessHigh:
		return 3
	case CompetitivenessVeryHigh:
		return 4
	}
	return 0
}

// RequirementSet lists the acceptable values per profile field. A missing or
// empty field imposes no constraint on that field.
type RequirementSet struct {
	Majors       []string `json:"major,omitempty" yaml:"major,omitempty"`
	Heritage     []string `json:"heritage,omitempty" yaml:"heritage,omitempty"`
	Universities []string `json:"university,omitempty" yaml:"university,omitempty"`
	Genders      []string `json:"gender,omitempty" yaml:"gender,omitempty"`
	Clubs        []string `json:"clubs,omitempty" yaml:"clubs,omitempty"`
	Years        []string `json:"year,omitempty" yaml:"year,omitempty"`
	States       []string `json:"state,omitempty" yaml:"state,omitempty"`
	Residency    []string `json:"residency,omitempty" yaml:"residency,omitempty"`
	Citizenship  bool     `json:"citizenship,omitempty" yaml:"citizenship,omitempty"` // true = international students not eligible
}

// Empty reports whether the set carries no constraints at all.
func (r RequirementSet) Empty() bool {
	return len(r.Majors) == 0 && len(r.Heritage) == 0 && len(r.Universities) == 0 &&
		len(r.Genders) == 0 && len(r.Clubs) == 0 && len(r.Years) == 0 &&
		len(r.States) == 0 && len(r.Residency) == 0 && !r.Citizenship
}

// Opportunity is one scholarship or research-opportunity record. The deadline
// is kept both raw (as authored in the catalog) and derived: DeadlineAt and
// DaysUntilDeadline are computed per search against the reference date and
// never persisted. PriorityScore is likewise computed once per profile
// evaluation; a scored instance belongs to exactly one result set.
type Opportunity struct {
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name" yaml:"name"`
	Kind Kind   `json:"kind,omitempty" yaml:"kind,omitempty"`

	AmountMin     int    `json:"amount_min" yaml:"amount_min"`
	AmountMax     int    `json:"amount_max" yaml:"amount_max"`
	AmountDisplay string `json:"amount_display,omitempty" yaml:"amount_display,omitempty"`

	Deadline          string     `json:"deadline" yaml:"deadline"`
	DeadlineAt        *time.Time `json:"deadline_at,omitempty" yaml:"-"`
	DaysUntilDeadline int        `json:"days_until_deadline" yaml:"-"`

	GPAMin       float64 `json:"gpa_min" yaml:"gpa_min"`
	GPAPreferred float64 `json:"gpa_preferred" yaml:"gpa_preferred"`

	Eligibility        string          `json:"eligibility,omitempty" yaml:"eligibility,omitempty"`
	EssayRequired      bool            `json:"essay_required,omitempty" yaml:"essay_required,omitempty"`
	EssayWordCount     int             `json:"essay_word_count,omitempty" yaml:"essay_word_count,omitempty"`
	RecLettersRequired int             `json:"rec_letters_required,omitempty" yaml:"rec_letters_required,omitempty"`
	InterviewRequired  bool            `json:"interview_required,omitempty" yaml:"interview_required,omitempty"`
	Competitiveness    Competitiveness `json:"competitiveness,omitempty" yaml:"competitiveness,omitempty"`
	ApplicationURL     string          `json:"application_url,omitempty" yaml:"application_url,omitempty"`
	Notes              string          `json:"notes,omitempty" yaml:"notes,omitempty"`
	Renewable          bool            `json:"renewable,omitempty" yaml:"renewable,omitempty"`
	Category           string          `json:"category,omitempty" yaml:"category,omitempty"`
	EstimatedHours     float64         `json:"estimated_hours,omitempty" yaml:"estimated_hours,omitempty"`

	// Research-kind extras.
	Organization     string `json:"organization,omitempty" yaml:"organization,omitempty"`
	ResearchArea     string `json:"research_area,omitempty" yaml:"research_area,omitempty"`
	Location         string `json:"location,omitempty" yaml:"location,omitempty"`
	Duration         string `json:"duration,omitempty" yaml:"duration,omitempty"`
	CompensationType string `json:"compensation_type,omitempty" yaml:"compensation_type,omitempty"`
	StipendAmount    int    `json:"stipend_amount,omitempty" yaml:"stipend_amount,omitempty"`
	HousingProvided  bool   `json:"housing_provided,omitempty" yaml:"housing_provided,omitempty"`
	TravelCovered    bool   `json:"travel_covered,omitempty" yaml:"travel_covered,omitempty"`
	ApplicationTips  string `json:"application_tips,omitempty" yaml:"application_tips,omitempty"`

	Requirements RequirementSet `json:"requirements,omitempty" yaml:"requirements,omitempty"`

	PriorityScore float64 `json:"priority_score" yaml:"-"`
	ResearchedOn  string  `json:"date_researched,omitempty" yaml:"-"`

	// Catalog bookkeeping.
	Status       string `json:"status,omitempty" yaml:"status,omitempty"`
	LastVerified string `json:"last_verified,omitempty" yaml:"last_verified,omitempty"`
}

// Identity is the deduplication key: the trimmed name, falling back to the
// catalog id for unnamed entries.
func (o Opportunity) Identity() string {
	if name := strings.TrimSpace(o.Name); name != "" {
		return name
	}
	return o.ID
}

// AverageAward is the midpoint of the financial range, used by the award
// scoring band and the potential-award aggregate.
func (o Opportunity) AverageAward() float64 {
	return (float64(o.AmountMin) + float64(o.AmountMax)) / 2
}

// Urgent reports whether the deadline falls within the next 30 days. The
// sentinel and already-passed deadlines are not urgent.
func (o Opportunity) Urgent() bool {
	return o.DaysUntilDeadline > 0 && o.DaysUntilDeadline <= 30
}

// IsResearch reports whether the research scoring strategy applies.
func (o Opportunity) IsResearch() bool {
	return o.Kind == KindResearch
}
