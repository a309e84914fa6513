package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tsmith/scholarship-finder/internal/profile"
)

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, sampleReport()); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("expected PDF magic, got %q", out[:min(len(out), 8)])
	}
	if len(out) < 1000 {
		t.Fatalf("expected a non-trivial document, got %d bytes", len(out))
	}
}

func TestWritePDFEmptyResults(t *testing.T) {
	r := sampleReport()
	r.Records = nil
	r.Stats.Total = 0
	r.Stats.TotalPotential = 0

	var buf bytes.Buffer
	if err := WritePDF(&buf, r); err != nil {
		t.Fatalf("WritePDF with no records: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatal("expected PDF magic")
	}
}

func TestReportTitle(t *testing.T) {
	cases := []struct {
		name string
		p    profile.Profile
		want string
	}{
		{
			name: "university leads",
			p:    profile.Profile{University: "Purdue University", Major: "Engineering"},
			want: "Purdue University Engineering Scholarship Research Report",
		},
		{
			name: "no university",
			p:    profile.Profile{Major: "Biology"},
			want: "Biology Scholarship Research Report",
		},
		{
			name: "unspecified sentinel skipped",
			p:    profile.Profile{University: "Not specified", Major: "Physics"},
			want: "Physics Scholarship Research Report",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := reportTitle(tc.p.Normalized()); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestSummaryLinesSkipUnspecified(t *testing.T) {
	r := sampleReport()
	lines := summaryLines(r, r.Profile.Normalized())
	joined := strings.Join(lines, "\n")

	if !strings.Contains(joined, "Heritage: Hispanic") {
		t.Fatalf("expected heritage line, got:\n%s", joined)
	}
	if strings.Contains(joined, "Gender:") {
		t.Fatalf("unspecified gender should be omitted, got:\n%s", joined)
	}
	if !strings.Contains(joined, "Total Potential Award: $23,000") {
		t.Fatalf("expected potential award line, got:\n%s", joined)
	}
	if !strings.Contains(joined, "Research Date: August 25, 2026") {
		t.Fatalf("expected research date, got:\n%s", joined)
	}
}
