package catalog

import (
	"testing"

	"github.com/tsmith/scholarship-finder/internal/models"
	"github.com/tsmith/scholarship-finder/internal/profile"
)

func TestCandidatesMergesBothSources(t *testing.T) {
	rs := &RuleSet{Rules: []Rule{{
		ID:      "always",
		Records: []models.Opportunity{{Name: "Curated Award", Category: "General"}},
	}}}
	s := NewStore(writeCatalogFile(t, testDocument()))
	if err := s.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got := Candidates(rs, s, profile.Profile{GPA: 3.5})
	if len(got) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(got))
	}
	// Rule records lead so dedup keeps the curated template.
	if got[0].Name != "Curated Award" {
		t.Fatalf("expected rule record first, got %q", got[0].Name)
	}
	for _, o := range got {
		if o.ID == "old-001" {
			t.Fatal("inactive store record leaked into candidates")
		}
	}
}

func TestCandidatesToleratesNilSources(t *testing.T) {
	rs := &RuleSet{Rules: []Rule{{
		ID:      "always",
		Records: []models.Opportunity{{Name: "Curated Award"}},
	}}}
	s := NewStore(writeCatalogFile(t, testDocument()))
	if err := s.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := Candidates(nil, s, profile.Profile{}); len(got) != 2 {
		t.Fatalf("expected store records only, got %d", len(got))
	}
	if got := Candidates(rs, nil, profile.Profile{}); len(got) != 1 {
		t.Fatalf("expected rule records only, got %d", len(got))
	}
	if got := Candidates(nil, nil, profile.Profile{}); len(got) != 0 {
		t.Fatalf("expected no candidates, got %d", len(got))
	}
}
