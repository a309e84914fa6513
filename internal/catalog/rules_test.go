package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tsmith/scholarship-finder/internal/models"
	"github.com/tsmith/scholarship-finder/internal/profile"
)

func TestLoadRulesEmbedded(t *testing.T) {
	rs, err := LoadRules("")
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}
	if len(rs.Rules) == 0 {
		t.Fatal("expected embedded rule table to contain rules")
	}

	ids := map[string]bool{}
	for _, r := range rs.Rules {
		if r.ID == "" {
			t.Errorf("rule with %d records has no id", len(r.Records))
		}
		if ids[r.ID] {
			t.Errorf("duplicate rule id %q", r.ID)
		}
		ids[r.ID] = true
		if len(r.Records) == 0 {
			t.Errorf("rule %q carries no records", r.ID)
		}
	}

	for _, want := range []string{
		"universal-merit", "university-general", "major-stem",
		"heritage-latvian-baltic", "club-tau-beta-pi", "athletics-ncaa",
		"skills-coding", "research-nsf-reu", "research-corporate",
	} {
		if !ids[want] {
			t.Errorf("expected rule %q in embedded table", want)
		}
	}
}

func TestLoadRulesPathOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	payload := []byte("rules:\n  - id: only-rule\n    records:\n      - name: Test Award\n        amount_min: 100\n        amount_max: 200\n        deadline: Rolling\n")
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatal(err)
	}

	rs, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}
	if len(rs.Rules) != 1 || rs.Rules[0].ID != "only-rule" {
		t.Fatalf("expected the override file's single rule, got %+v", rs.Rules)
	}
}

func TestLoadRulesBadPathFallsBackToEmbedded(t *testing.T) {
	rs, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}
	if len(rs.Rules) < 10 {
		t.Fatalf("expected fallback to embedded table, got %d rules", len(rs.Rules))
	}
}

func TestTriggerFires(t *testing.T) {
	tests := []struct {
		name    string
		trigger Trigger
		profile profile.Profile
		fires   bool
	}{
		{
			name:    "empty trigger fires for everyone",
			trigger: Trigger{},
			profile: profile.Profile{},
			fires:   true,
		},
		{
			name:    "major keyword matches major",
			trigger: Trigger{MajorAny: []string{"engineering", "computer"}},
			profile: profile.Profile{Major: "Mechanical Engineering"},
			fires:   true,
		},
		{
			name:    "major keyword matches discipline instead",
			trigger: Trigger{MajorAny: []string{"business"}},
			profile: profile.Profile{Major: "Marketing", Discipline: "Business"},
			fires:   true,
		},
		{
			name:    "major keyword misses unrelated major",
			trigger: Trigger{MajorAny: []string{"business"}},
			profile: profile.Profile{Major: "Biology", Discipline: "Science"},
			fires:   false,
		},
		{
			name:    "heritage token does not match inside a larger word",
			trigger: Trigger{HeritageAny: []string{"asian"}},
			profile: profile.Profile{Heritage: "Caucasian"},
			fires:   false,
		},
		{
			name:    "heritage token matches whole word",
			trigger: Trigger{HeritageAny: []string{"asian", "pacific"}},
			profile: profile.Profile{Heritage: "Asian American"},
			fires:   true,
		},
		{
			name:    "multi word club phrase needs consecutive tokens",
			trigger: Trigger{ClubsAny: []string{"tau beta pi"}},
			profile: profile.Profile{Clubs: "ASME, Tau Beta Pi"},
			fires:   true,
		},
		{
			name:    "club trigger ignores unspecified clubs",
			trigger: Trigger{ClubsAny: []string{"ieee"}},
			profile: profile.Profile{Clubs: ""},
			fires:   false,
		},
		{
			name:    "needs_university blocks unspecified university",
			trigger: Trigger{NeedsUniversity: true},
			profile: profile.Profile{},
			fires:   false,
		},
		{
			name:    "needs_university passes with a real university",
			trigger: Trigger{NeedsUniversity: true},
			profile: profile.Profile{University: "Purdue University"},
			fires:   true,
		},
		{
			name:    "needs_state blocks unspecified state",
			trigger: Trigger{NeedsState: true},
			profile: profile.Profile{},
			fires:   false,
		},
		{
			name:    "first_generation gate",
			trigger: Trigger{FirstGeneration: true},
			profile: profile.Profile{FirstGeneration: false},
			fires:   false,
		},
		{
			name:    "military gate passes",
			trigger: Trigger{Military: true},
			profile: profile.Profile{Military: true},
			fires:   true,
		},
		{
			name:    "residency phrase survives hyphenation",
			trigger: Trigger{ResidencyAny: []string{"out of state"}},
			profile: profile.Profile{Residency: "Out-of-State"},
			fires:   true,
		},
		{
			name:    "university keyword matches inside full name",
			trigger: Trigger{UniversityAny: []string{"purdue"}},
			profile: profile.Profile{University: "Purdue University"},
			fires:   true,
		},
		{
			name:    "all set conditions must hold",
			trigger: Trigger{MajorAny: []string{"engineering"}, ClubsAny: []string{"ieee"}},
			profile: profile.Profile{Major: "Electrical Engineering", Clubs: "ACM"},
			fires:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.trigger.Fires(tt.profile.Normalized())
			if got != tt.fires {
				t.Fatalf("Fires() = %v, expected %v", got, tt.fires)
			}
		})
	}
}

func TestBuildForInterpolatesPlaceholders(t *testing.T) {
	rs, err := LoadRules("")
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}

	p := profile.Profile{
		University: "Purdue University",
		State:      "Indiana",
		Major:      "Mechanical Engineering",
		Year:       "Junior",
		GPA:        3.6,
	}
	records := rs.BuildFor(p)
	if len(records) == 0 {
		t.Fatal("expected records for a fully specified profile")
	}

	byName := map[string]models.Opportunity{}
	for _, o := range records {
		byName[o.Name] = o
	}

	foundation, ok := byName["Purdue University Foundation Scholarship"]
	if !ok {
		t.Fatal("expected university foundation record with interpolated name")
	}
	if foundation.ApplicationURL != "https://www.purdueuniversity.edu/scholarships" {
		t.Errorf("unexpected foundation URL %q", foundation.ApplicationURL)
	}

	state, ok := byName["Indiana State Scholar Award"]
	if !ok {
		t.Fatal("expected state scholar record with interpolated name")
	}
	if state.ApplicationURL != "https://www.indiana.gov/education/scholarships" {
		t.Errorf("unexpected state URL %q", state.ApplicationURL)
	}

	surf, ok := byName["Purdue Summer Undergraduate Research Fellowship (SURF)"]
	if !ok {
		t.Fatal("expected Purdue SURF record for a Purdue profile")
	}
	if !surf.IsResearch() {
		t.Errorf("expected SURF to carry the research kind, got %q", surf.Kind)
	}

	if _, ok := byName["MIT UROP (Undergraduate Research Opportunities Program)"]; ok {
		t.Error("MIT UROP must not fire for a Purdue profile")
	}
}

func TestBuildForSkipsUniversityRulesWithoutUniversity(t *testing.T) {
	rs, err := LoadRules("")
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}

	records := rs.BuildFor(profile.Profile{Major: "Computer Science", GPA: 3.4})
	for _, o := range records {
		if o.Name == " Foundation Scholarship" || o.Name == "Not specified Foundation Scholarship" {
			t.Fatalf("university rule fired without a university: %q", o.Name)
		}
	}
}

func TestBuildForLeavesTemplatesPristine(t *testing.T) {
	rs, err := LoadRules("")
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}

	first := rs.BuildFor(profile.Profile{University: "Purdue University", GPA: 3.5})
	firstNames := map[string]bool{}
	for _, o := range first {
		firstNames[o.Name] = true
	}
	if !firstNames["Purdue University Foundation Scholarship"] {
		t.Fatal("first build did not interpolate its university")
	}

	second := rs.BuildFor(profile.Profile{University: "Ohio State", GPA: 3.5})
	names := map[string]bool{}
	for _, o := range second {
		names[o.Name] = true
	}
	if !names["Ohio State Foundation Scholarship"] {
		t.Fatal("second build did not interpolate its own university")
	}
	if names["Purdue University Foundation Scholarship"] {
		t.Fatal("first build leaked into the template")
	}
}
