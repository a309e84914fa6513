// Command search runs one matching pass from the command line and prints
// the ranked results, with an optional file export in any download format.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/tsmith/scholarship-finder/internal/catalog"
	"github.com/tsmith/scholarship-finder/internal/export"
	"github.com/tsmith/scholarship-finder/internal/match"
	"github.com/tsmith/scholarship-finder/internal/models"
	"github.com/tsmith/scholarship-finder/internal/profile"
)

func main() {
	var p profile.Profile
	flag.Float64Var(&p.GPA, "gpa", 3.5, "grade point average")
	flag.StringVar(&p.University, "university", "", "university name")
	flag.StringVar(&p.Major, "major", "Engineering", "major")
	flag.StringVar(&p.Year, "year", "Sophomore", "education level, e.g. Sophomore")
	flag.StringVar(&p.Heritage, "heritage", "", "heritage")
	flag.StringVar(&p.Gender, "gender", "", "gender")
	flag.StringVar(&p.State, "state", "", "home state")
	flag.StringVar(&p.Residency, "residency", "", "residency status, e.g. In-State, International")
	flag.BoolVar(&p.FirstGeneration, "first-gen", false, "first-generation college student")
	flag.BoolVar(&p.Military, "military", false, "military affiliation")
	flag.StringVar(&p.Discipline, "discipline", "", "discipline within the major")
	flag.StringVar(&p.Skills, "skills", "", "skills, e.g. \"coding, research\"")
	flag.StringVar(&p.Clubs, "clubs", "", "clubs and organizations")
	flag.StringVar(&p.Athletics, "athletics", "", "sports and athletics")

	var (
		catalogPath = flag.String("catalog", defaultCatalogPath(), "path to the JSON catalog")
		rulesPath   = flag.String("rules", os.Getenv("RULES_PATH"), "rule table override (default embedded)")
		sortBy      = flag.String("sort", "priority", "sort order: priority, deadline or amount")
		top         = flag.Int("top", 0, "show only the top N records (0 = all)")
		format      = flag.String("format", "", "also export: csv, excel, pdf, html, calendar or tracker")
		out         = flag.String("out", "", "export file path (default scholarships_<timestamp>.<ext>)")
	)
	flag.Parse()

	rules, err := catalog.LoadRules(*rulesPath)
	if err != nil {
		log.Fatalf("Failed to load rule table: %v", err)
	}
	store := catalog.NewStore(*catalogPath)
	if err := store.Load(); err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	now := time.Now()
	normalized := p.Normalized()
	candidates := catalog.Candidates(rules, store, normalized)
	result := match.Search(normalized, candidates, now, match.ParseSortOrder(*sortBy))

	records := result.Records
	if *top > 0 && len(records) > *top {
		records = records[:*top]
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Score", "Name", "Award", "Deadline", "Days", "Min GPA", "Competition", "Category"})
	for _, o := range records {
		days := fmt.Sprintf("%d", o.DaysUntilDeadline)
		if o.DaysUntilDeadline == models.NoDeadlineDays {
			days = "TBD"
		}
		t.AppendRow(table.Row{o.PriorityScore, o.Name, o.AmountDisplay, o.Deadline, days, o.GPAMin, o.Competitiveness, o.Category})
	}
	t.Render()

	fmt.Printf("\nTotal: %d | GPA eligible: %d | Urgent (30 days): %d | Potential: $%s | Avg priority: %.2f\n",
		result.Stats.Total, result.Stats.GPAEligible, result.Stats.UrgentDeadlines,
		humanize.Comma(int64(math.Round(result.Stats.TotalPotential))), result.Stats.AveragePriority)

	if *format == "" {
		return
	}

	f, err := export.ParseFormat(*format)
	if err != nil {
		log.Fatal(err)
	}
	path := *out
	if path == "" {
		path = export.Filename(f, now)
	}
	file, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", path, err)
	}
	report := export.Report{
		Profile:     normalized,
		Records:     result.Records,
		Stats:       result.Stats,
		GeneratedAt: now,
	}
	if err := export.Write(file, f, report); err != nil {
		file.Close()
		log.Fatalf("Export failed: %v", err)
	}
	if err := file.Close(); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}
	log.Printf("Exported %s", path)
}

func defaultCatalogPath() string {
	if v := os.Getenv("CATALOG_PATH"); v != "" {
		return v
	}
	return "data/scholarship_database.json"
}
