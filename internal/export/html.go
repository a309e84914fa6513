package export

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/tsmith/scholarship-finder/internal/models"
	"github.com/tsmith/scholarship-finder/internal/profile"
)

//go:embed templates/dashboard.html.tmpl
var dashboardFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(dashboardFS, "templates/dashboard.html.tmpl"))

// ugcPolicy strips scripts and unsafe markup from catalog text before it is
// inlined in the dashboard. Catalog entries sourced from scraped pages can
// carry markup; benign formatting survives, script does not.
var ugcPolicy = bluemonday.UGCPolicy()

type dashboardRow struct {
	Score       string
	RowClass    string
	Name        template.HTML
	Renewable   bool
	Essay       bool
	RecLetters  int
	EstHours    string
	Amount      template.HTML
	Deadline    string
	Days        string
	UrgentClass string
	GPA         string
	Competition string
	BadgeClass  string
	Category    string
	URL         string
}

type dashboardData struct {
	Title        string
	Heading      string
	Subtitle     string
	ProfileLine  string
	PortalURL    string
	PortalLabel  string
	Total        int
	GPAEligible  int
	Urgent       int
	Potential    string
	Categories   []string
	Rows         []dashboardRow
	ResearchDate string
}

// WriteHTML writes a standalone dashboard page: stat cards, a search box
// with category and competition filters, and the full result table with
// priority and urgency styling.
func WriteHTML(w io.Writer, r Report) error {
	return dashboardTmpl.Execute(w, newDashboardData(r))
}

func newDashboardData(r Report) dashboardData {
	p := r.Profile.Normalized()

	heading := p.Major + " Scholarships"
	if profile.Specified(p.University) {
		heading = p.University + " " + heading
	}

	d := dashboardData{
		Title:        heading + " - Dashboard",
		Heading:      heading,
		Subtitle:     fmt.Sprintf("%s | GPA: %s | %s", p.Year, trimFloat(p.GPA), p.Residency),
		Total:        r.Stats.Total,
		GPAEligible:  r.Stats.GPAEligible,
		Urgent:       r.Stats.UrgentDeadlines,
		Potential:    money(r.Stats.TotalPotential),
		ResearchDate: r.GeneratedAt.Format("January 2, 2006"),
	}

	if profile.Specified(p.Heritage) || profile.Specified(p.Gender) {
		d.ProfileLine = fmt.Sprintf("Heritage: %s | Gender: %s", p.Heritage, p.Gender)
	}
	if profile.Specified(p.University) {
		d.PortalURL = "https://www." + strings.ToLower(strings.ReplaceAll(strings.TrimSpace(p.University), " ", "")) + ".edu/scholarships"
		d.PortalLabel = "Open " + p.University + " Scholarship Portal"
	}

	seen := map[string]bool{}
	for _, o := range r.Records {
		d.Rows = append(d.Rows, newDashboardRow(o))
		if o.Category != "" && !seen[o.Category] {
			seen[o.Category] = true
			d.Categories = append(d.Categories, o.Category)
		}
	}
	sort.Strings(d.Categories)

	return d
}

func newDashboardRow(o models.Opportunity) dashboardRow {
	row := dashboardRow{
		Score:       trimFloat(o.PriorityScore),
		Name:        safeHTML(o.Name),
		Renewable:   o.Renewable,
		Essay:       o.EssayRequired,
		RecLetters:  o.RecLettersRequired,
		EstHours:    trimFloat(o.EstimatedHours),
		Amount:      safeHTML(o.AmountDisplay),
		Deadline:    o.Deadline,
		Days:        daysDisplay(o),
		GPA:         fmt.Sprintf("%s+ / %s", gpaDisplay(o.GPAMin, "None"), gpaDisplay(o.GPAPreferred, "N/A")),
		Competition: string(o.Competitiveness),
		BadgeClass:  badgeClass(o.Competitiveness),
		Category:    o.Category,
		URL:         o.ApplicationURL,
	}
	switch {
	case o.PriorityScore >= 80:
		row.RowClass = "priority-high"
	case o.PriorityScore >= 65:
		row.RowClass = "priority-medium"
	}
	if o.Urgent() {
		row.UrgentClass = "urgent"
	}
	return row
}

// safeHTML sanitizes catalog-sourced text and marks the survivor safe for
// direct inclusion, so formatting entities render instead of double-escaping.
func safeHTML(s string) template.HTML {
	return template.HTML(ugcPolicy.Sanitize(s))
}

func badgeClass(c models.Competitiveness) string {
	switch models.ParseCompetitiveness(string(c)) {
	case models.CompetitivenessLow:
		return "badge-low"
	case models.CompetitivenessHigh:
		return "badge-high"
	case models.CompetitivenessVeryHigh:
		return "badge-very-high"
	}
	return "badge-medium"
}
