package catalog

import (
	"embed"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tsmith/scholarship-finder/internal/match"
	"github.com/tsmith/scholarship-finder/internal/models"
	"github.com/tsmith/scholarship-finder/internal/profile"
)

//go:embed config/rules.yaml
var rulesYAML embed.FS

// RuleSet holds the static rule table: profile-keyed blocks of curated
// records that complement the JSON catalog.
type RuleSet struct {
	Rules []Rule `yaml:"rules"`
}

// Rule contributes its records to the candidate set whenever its trigger
// fires for a profile. The records themselves may additionally carry a
// requirement set, which the matcher evaluates like any other record.
type Rule struct {
	ID      string               `yaml:"id"`
	When    Trigger              `yaml:"when"`
	Records []models.Opportunity `yaml:"records"`
}

// Trigger describes which profiles a rule applies to. All set conditions
// must hold; an empty trigger fires for every profile. Keyword lists match
// whole tokens or consecutive token phrases, never raw substrings.
type Trigger struct {
	MajorAny        []string `yaml:"major_any,omitempty"`
	HeritageAny     []string `yaml:"heritage_any,omitempty"`
	GenderAny       []string `yaml:"gender_any,omitempty"`
	ClubsAny        []string `yaml:"clubs_any,omitempty"`
	AthleticsAny    []string `yaml:"athletics_any,omitempty"`
	SkillsAny       []string `yaml:"skills_any,omitempty"`
	UniversityAny   []string `yaml:"university_any,omitempty"`
	ResidencyAny    []string `yaml:"residency_any,omitempty"`
	FirstGeneration bool     `yaml:"first_generation,omitempty"`
	Military        bool     `yaml:"military,omitempty"`
	NeedsUniversity bool     `yaml:"needs_university,omitempty"`
	NeedsState      bool     `yaml:"needs_state,omitempty"`
}

// Fires reports whether the trigger applies to the profile. Major keywords
// are checked against both the major and the discipline field.
func (t Trigger) Fires(p profile.Profile) bool {
	if t.NeedsUniversity && !profile.Specified(p.University) {
		return false
	}
	if t.NeedsState && !profile.Specified(p.State) {
		return false
	}
	if t.FirstGeneration && !p.FirstGeneration {
		return false
	}
	if t.Military && !p.Military {
		return false
	}
	if len(t.MajorAny) > 0 {
		majorHit := profile.Specified(p.Major) && match.ContainsAny(p.Major, t.MajorAny)
		disciplineHit := profile.Specified(p.Discipline) && match.ContainsAny(p.Discipline, t.MajorAny)
		if !majorHit && !disciplineHit {
			return false
		}
	}
	if !fieldHasAny(p.Heritage, t.HeritageAny) {
		return false
	}
	if !fieldHasAny(p.Gender, t.GenderAny) {
		return false
	}
	if !fieldHasAny(p.Clubs, t.ClubsAny) {
		return false
	}
	if !fieldHasAny(p.Athletics, t.AthleticsAny) {
		return false
	}
	if !fieldHasAny(p.Skills, t.SkillsAny) {
		return false
	}
	if !fieldHasAny(p.University, t.UniversityAny) {
		return false
	}
	if !fieldHasAny(p.Residency, t.ResidencyAny) {
		return false
	}
	return true
}

func fieldHasAny(value string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	return profile.Specified(value) && match.ContainsAny(value, keywords)
}

// LoadRules reads the embedded rules.yaml and returns the rule table.
// A non-empty path overrides the embedded copy for local development.
func LoadRules(path string) (*RuleSet, error) {
	var data []byte
	var err error
	if path != "" {
		data, err = os.ReadFile(path)
	}
	if path == "" || err != nil {
		data, err = rulesYAML.ReadFile("config/rules.yaml")
		if err != nil {
			return nil, err
		}
	}

	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, err
	}
	return &rs, nil
}

// BuildFor returns the records of every rule that fires for the profile,
// with university and state placeholders expanded. Returned records never
// alias the rule table so callers may annotate them freely.
func (rs *RuleSet) BuildFor(p profile.Profile) []models.Opportunity {
	p = p.Normalized()
	mapper := placeholderMapper(p)

	var out []models.Opportunity
	for _, r := range rs.Rules {
		if !r.When.Fires(p) {
			continue
		}
		for _, o := range r.Records {
			out = append(out, interpolate(o, mapper))
		}
	}
	return out
}

// placeholderMapper resolves ${UNIVERSITY}, ${STATE} and their URL-slug
// variants from the profile. Unknown placeholders expand to the empty string.
func placeholderMapper(p profile.Profile) func(string) string {
	return func(key string) string {
		switch key {
		case "UNIVERSITY":
			return p.University
		case "UNIVERSITY_SLUG":
			return slug(p.University)
		case "STATE":
			return p.State
		case "STATE_SLUG":
			return slug(p.State)
		}
		return ""
	}
}

func slug(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
}

// interpolate expands placeholders in the record's display fields and
// requirement lists, copying every slice so templates stay pristine.
func interpolate(o models.Opportunity, mapper func(string) string) models.Opportunity {
	o.Name = os.Expand(o.Name, mapper)
	o.Eligibility = os.Expand(o.Eligibility, mapper)
	o.ApplicationURL = os.Expand(o.ApplicationURL, mapper)
	o.Notes = os.Expand(o.Notes, mapper)

	r := &o.Requirements
	r.Majors = expandList(r.Majors, mapper)
	r.Heritage = expandList(r.Heritage, mapper)
	r.Universities = expandList(r.Universities, mapper)
	r.Genders = expandList(r.Genders, mapper)
	r.Clubs = expandList(r.Clubs, mapper)
	r.Years = expandList(r.Years, mapper)
	r.States = expandList(r.States, mapper)
	r.Residency = expandList(r.Residency, mapper)
	return o
}

func expandList(list []string, mapper func(string) string) []string {
	if len(list) == 0 {
		return nil
	}
	out := make([]string, len(list))
	for i, v := range list {
		out[i] = os.Expand(v, mapper)
	}
	return out
}
