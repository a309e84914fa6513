package match

import (
	"testing"

	"github.com/tsmith/scholarship-finder/internal/models"
	"github.com/tsmith/scholarship-finder/internal/profile"
)

func baseProfile() profile.Profile {
	return profile.Profile{
		GPA:        3.5,
		University: "Purdue University",
		Major:      "Computer Science",
		Year:       "Sophomore",
		Heritage:   profile.Unspecified,
		Gender:     profile.Unspecified,
		State:      "Indiana",
		Residency:  "Domestic",
		Discipline: "Engineering",
		Skills:     profile.Unspecified,
		Clubs:      profile.Unspecified,
		Athletics:  profile.Unspecified,
	}
}

func TestMatchesGPAOnly(t *testing.T) {
	// With no requirements at all, eligibility reduces to the GPA floor.
	rec := models.Opportunity{Name: "Open Award", GPAMin: 3.0}

	if !Matches(baseProfile(), rec) {
		t.Fatal("expected match when gpa >= gpa_min and no requirements set")
	}

	low := baseProfile()
	low.GPA = 2.0
	if Matches(low, rec) {
		t.Fatal("expected no match when gpa < gpa_min")
	}
}

func TestMatchesYearExactOnly(t *testing.T) {
	rec := models.Opportunity{
		Name:         "Senior Award",
		Requirements: models.RequirementSet{Years: []string{"Senior"}},
	}

	tests := []struct {
		year string
		want bool
	}{
		{"Senior", true},
		{"senior", true},
		{"  Senior ", true},
		{"High School Senior", false}, // superstring must not match
		{"Seniors", false},
		{"Sophomore", false},
	}

	for _, tt := range tests {
		p := baseProfile()
		p.Year = tt.year
		if got := Matches(p, rec); got != tt.want {
			t.Errorf("year %q: got %v, want %v", tt.year, got, tt.want)
		}
	}

	// And the reverse direction: a substring of the allowed value must not match.
	hs := models.Opportunity{Requirements: models.RequirementSet{Years: []string{"High School Senior"}}}
	p := baseProfile()
	p.Year = "Senior"
	if Matches(p, hs) {
		t.Fatal("profile year that is a substring of the allowed value must not match")
	}
}

func TestMatchesMajorOrDiscipline(t *testing.T) {
	rec := models.Opportunity{
		Requirements: models.RequirementSet{Majors: []string{"computer", "engineering"}},
	}

	p := baseProfile()
	p.Major = "Computer Science"
	p.Discipline = "General"
	if !Matches(p, rec) {
		t.Fatal("expected major to satisfy the requirement")
	}

	p.Major = "History"
	p.Discipline = "Engineering"
	if !Matches(p, rec) {
		t.Fatal("expected discipline to satisfy the requirement")
	}

	p.Major = "History"
	p.Discipline = "Humanities"
	if Matches(p, rec) {
		t.Fatal("expected no match when neither major nor discipline holds a keyword")
	}
}

func TestMatchesHeritageWholeToken(t *testing.T) {
	rec := models.Opportunity{
		Requirements: models.RequirementSet{Heritage: []string{"asian", "pacific islander"}},
	}

	p := baseProfile()
	p.Heritage = "Asian American"
	if !Matches(p, rec) {
		t.Fatal("expected whole-token heritage match")
	}

	p.Heritage = "Caucasian"
	if Matches(p, rec) {
		t.Fatal("'asian' must not match inside 'caucasian'")
	}

	p.Heritage = "Pacific Islander"
	if !Matches(p, rec) {
		t.Fatal("expected multi-word heritage phrase to match")
	}
}

func TestMatchesClubsWholeToken(t *testing.T) {
	rec := models.Opportunity{
		Requirements: models.RequirementSet{Clubs: []string{"swe", "society of women engineers"}},
	}

	p := baseProfile()
	p.Clubs = "SWE, Robotics Club"
	if !Matches(p, rec) {
		t.Fatal("expected club token to match")
	}

	p.Clubs = "Awesome Club"
	if Matches(p, rec) {
		t.Fatal("'swe' must not match inside 'awesome'")
	}
}

func TestMatchesUniversityEitherDirection(t *testing.T) {
	rec := models.Opportunity{
		Requirements: models.RequirementSet{Universities: []string{"Purdue University"}},
	}

	p := baseProfile()
	p.University = "Purdue"
	if !Matches(p, rec) {
		t.Fatal("expected profile-inside-allowed university match")
	}

	p.University = "Purdue University West Lafayette"
	if !Matches(p, rec) {
		t.Fatal("expected allowed-inside-profile university match")
	}

	p.University = "Indiana University"
	if Matches(p, rec) {
		t.Fatal("expected no match for a different school")
	}

	// The unspecified sentinel must never satisfy a concrete requirement.
	p.University = profile.Unspecified
	if Matches(p, rec) {
		t.Fatal("unspecified university must not match a university requirement")
	}
}

func TestMatchesCitizenship(t *testing.T) {
	rec := models.Opportunity{Requirements: models.RequirementSet{Citizenship: true}}

	p := baseProfile()
	p.Residency = "International"
	if Matches(p, rec) {
		t.Fatal("international profile must fail a citizenship-restricted record")
	}

	p.Residency = "Domestic"
	if !Matches(p, rec) {
		t.Fatal("domestic profile should pass the citizenship check")
	}

	open := models.Opportunity{}
	p.Residency = "International"
	if !Matches(p, open) {
		t.Fatal("citizenship check only applies when the record sets it")
	}
}

func TestMatchesStateEitherDirection(t *testing.T) {
	rec := models.Opportunity{Requirements: models.RequirementSet{States: []string{"Indiana"}}}

	p := baseProfile()
	p.State = "Indiana"
	if !Matches(p, rec) {
		t.Fatal("expected exact state to match")
	}

	p.State = "Northern Indiana"
	if !Matches(p, rec) {
		t.Fatal("expected allowed-inside-profile state match")
	}

	p.State = "Ohio"
	if Matches(p, rec) {
		t.Fatal("expected no match for a different state")
	}
}

func TestMatchesResidency(t *testing.T) {
	rec := models.Opportunity{Requirements: models.RequirementSet{Residency: []string{"out-of-state"}}}

	p := baseProfile()
	p.Residency = "Out-of-State"
	if !Matches(p, rec) {
		t.Fatal("expected residency keyword to match across punctuation")
	}

	p.Residency = "In-State"
	if Matches(p, rec) {
		t.Fatal("expected no match for in-state residency")
	}
}

func TestMatchesShortCircuitIndependence(t *testing.T) {
	// A record combining several requirements only matches when all hold.
	rec := models.Opportunity{
		GPAMin: 3.0,
		Requirements: models.RequirementSet{
			Majors:      []string{"engineering"},
			Genders:     []string{"female", "woman"},
			Citizenship: true,
		},
	}

	p := baseProfile()
	p.Gender = "Female"
	p.Major = "Mechanical Engineering"
	if !Matches(p, rec) {
		t.Fatal("expected full requirement set to match")
	}

	p.Gender = "Male"
	if Matches(p, rec) {
		t.Fatal("expected gender requirement to fail the match")
	}
}

func TestContainsPhrase(t *testing.T) {
	tests := []struct {
		text   string
		phrase string
		want   bool
	}{
		{"Asian American", "asian", true},
		{"Caucasian", "asian", false},
		{"SWE, Robotics Club", "swe", true},
		{"Awesome Club", "swe", false},
		{"Tau Beta Pi and ACM", "tau beta pi", true},
		{"Beta Pi Tau", "tau beta pi", false},
		{"Out-of-State", "out of state", true},
		{"C++, Python", "c++", true},
		{"", "anything", false},
		{"anything", "", false},
	}

	for _, tt := range tests {
		if got := ContainsPhrase(tt.text, tt.phrase); got != tt.want {
			t.Errorf("ContainsPhrase(%q, %q) = %v, want %v", tt.text, tt.phrase, got, tt.want)
		}
	}
}
