package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/tsmith/scholarship-finder/internal/models"
	"github.com/tsmith/scholarship-finder/internal/profile"
)

// pdfTopN caps the report at the strongest matches; the full table lives in
// the CSV and Excel exports.
const pdfTopN = 20

// WritePDF writes a paginated letter-format report: a title and profile
// summary, then the top twenty records five to a page.
func WritePDF(w io.Writer, r Report) error {
	p := r.Profile.Normalized()
	title := reportTitle(p)

	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 9, title, "", "C", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range summaryLines(r, p) {
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, fmt.Sprintf("Top %d Priority Scholarships", pdfTopN), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	records := r.Records
	if len(records) > pdfTopN {
		records = records[:pdfTopN]
	}
	for i, o := range records {
		if i > 0 && i%5 == 0 {
			pdf.AddPage()
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 5.5, fmt.Sprintf("%d. %s", i+1, o.Name), "", "L", false)
		pdf.SetFont("Helvetica", "", 9)
		for _, line := range entryLines(o) {
			pdf.MultiCell(0, 4.5, line, "", "L", false)
		}
		pdf.Ln(4)
	}

	return pdf.Output(w)
}

// reportTitle leads with the university when the profile names one.
func reportTitle(p profile.Profile) string {
	var parts []string
	if profile.Specified(p.University) {
		parts = append(parts, p.University)
	}
	parts = append(parts, p.Major, "Scholarship Research Report")
	return strings.Join(parts, " ")
}

func summaryLines(r Report, p profile.Profile) []string {
	lines := []string{
		"Research Date: " + r.GeneratedAt.Format("January 2, 2006"),
		"University: " + p.University,
		"Major: " + p.Major,
		"Year: " + p.Year,
		"GPA: " + trimFloat(p.GPA),
	}
	if profile.Specified(p.Residency) {
		lines = append(lines, "Residency: "+p.Residency)
	}
	if profile.Specified(p.Heritage) {
		lines = append(lines, "Heritage: "+p.Heritage)
	}
	if profile.Specified(p.Gender) {
		lines = append(lines, "Gender: "+p.Gender)
	}
	lines = append(lines,
		fmt.Sprintf("Total Scholarships Found: %d", r.Stats.Total),
		"Total Potential Award: "+money(r.Stats.TotalPotential),
	)
	return lines
}

func entryLines(o models.Opportunity) []string {
	due := o.Deadline
	if o.DaysUntilDeadline != models.NoDeadlineDays {
		due = fmt.Sprintf("%s (%d days)", o.Deadline, o.DaysUntilDeadline)
	}
	lines := []string{
		fmt.Sprintf("Award: %s | Priority Score: %s/100", o.AmountDisplay, trimFloat(o.PriorityScore)),
		fmt.Sprintf("Deadline: %s | GPA: %s+ (Rec: %s)", due, gpaDisplay(o.GPAMin, "None"), gpaDisplay(o.GPAPreferred, "N/A")),
		fmt.Sprintf("Category: %s | Competition: %s | Renewable: %s", o.Category, o.Competitiveness, yesNo(o.Renewable)),
		fmt.Sprintf("Requirements: Essay: %s, Rec Letters: %d, Interview: %s",
			yesNo(o.EssayRequired), o.RecLettersRequired, yesNo(o.InterviewRequired)),
		fmt.Sprintf("Est. Time: %s hours", trimFloat(o.EstimatedHours)),
		"URL: " + o.ApplicationURL,
	}
	if o.Notes != "" {
		lines = append(lines, "Notes: "+o.Notes)
	}
	return lines
}
