package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/tsmith/scholarship-finder/internal/models"
	"github.com/tsmith/scholarship-finder/internal/profile"
)

// Headers and widths for the results sheet. Widths are what the workbook
// has always shipped with; adjust here, not per cell.
var (
	excelHeaders = []string{
		"Priority", "Scholarship Name", "Award Amount", "Min $", "Max $",
		"Deadline", "Days Until", "Min GPA", "Rec GPA",
		"Essay?", "Words", "Rec Letters", "Interview?",
		"Competition", "Category", "Renewable?", "Est Hours",
		"Application URL", "Notes",
	}
	excelWidths = []float64{10, 40, 25, 10, 10, 20, 12, 10, 10, 8, 8, 12, 10, 12, 15, 12, 10, 40, 50}
)

// WriteExcel writes a two-sheet workbook: a Summary sheet with the profile
// and headline statistics, then a Scholarships sheet with the full result
// table. Priority cells are banded green at 80+ and yellow at 65+.
func WriteExcel(w io.Writer, r Report) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Scholarships"
	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return err
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"366092"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	highStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"90EE90"}},
	})
	if err != nil {
		return err
	}
	mediumStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFFF99"}},
	})
	if err != nil {
		return err
	}

	for i, h := range excelHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for i, o := range r.Records {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), o.PriorityScore)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), o.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), o.AmountDisplay)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), o.AmountMin)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), o.AmountMax)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), o.Deadline)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), daysCell(o))
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), gpaCell(o.GPAMin, "None"))
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), gpaCell(o.GPAPreferred, "N/A"))
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), yesNo(o.EssayRequired))
		f.SetCellValue(sheet, fmt.Sprintf("K%d", row), wordsCell(o.EssayWordCount))
		f.SetCellValue(sheet, fmt.Sprintf("L%d", row), o.RecLettersRequired)
		f.SetCellValue(sheet, fmt.Sprintf("M%d", row), yesNo(o.InterviewRequired))
		f.SetCellValue(sheet, fmt.Sprintf("N%d", row), string(o.Competitiveness))
		f.SetCellValue(sheet, fmt.Sprintf("O%d", row), o.Category)
		f.SetCellValue(sheet, fmt.Sprintf("P%d", row), yesNo(o.Renewable))
		f.SetCellValue(sheet, fmt.Sprintf("Q%d", row), o.EstimatedHours)
		f.SetCellValue(sheet, fmt.Sprintf("R%d", row), o.ApplicationURL)
		f.SetCellValue(sheet, fmt.Sprintf("S%d", row), o.Notes)

		cell := fmt.Sprintf("A%d", row)
		switch {
		case o.PriorityScore >= 80:
			f.SetCellStyle(sheet, cell, cell, highStyle)
		case o.PriorityScore >= 65:
			f.SetCellStyle(sheet, cell, cell, mediumStyle)
		}
	}

	for i, width := range excelWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, width)
	}

	// Keep the header row visible while scrolling.
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	lastCol, _ := excelize.ColumnNumberToName(len(excelHeaders))
	if err := f.AutoFilter(sheet, fmt.Sprintf("A1:%s%d", lastCol, len(r.Records)+1), nil); err != nil {
		return err
	}

	if err := writeSummarySheet(f, r); err != nil {
		return err
	}

	idx, err := f.GetSheetIndex("Summary")
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)

	return f.Write(w)
}

func writeSummarySheet(f *excelize.File, r Report) error {
	const sheet = "Summary"

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return err
	}
	sectionStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	if err != nil {
		return err
	}

	f.SetCellValue(sheet, "A1", "Scholarship Research Summary")
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	row := 3
	section := func(label string) {
		cell := fmt.Sprintf("A%d", row)
		f.SetCellValue(sheet, cell, label)
		f.SetCellStyle(sheet, cell, cell, sectionStyle)
		row++
	}
	pair := func(label string, value any) {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), value)
		row++
	}

	p := r.Profile.Normalized()
	section("Student Profile:")
	pair("University:", p.University)
	pair("Major:", p.Major)
	pair("Year:", p.Year)
	pair("GPA:", p.GPA)
	if profile.Specified(p.Residency) {
		pair("Residency:", p.Residency)
	}
	if profile.Specified(p.Heritage) {
		pair("Heritage:", p.Heritage)
	}
	if profile.Specified(p.Gender) {
		pair("Gender:", p.Gender)
	}

	row++
	section("Scholarship Statistics:")
	pair("Total Scholarships:", r.Stats.Total)
	pair("Total Potential Award (avg):", money(r.Stats.TotalPotential))
	pair("Urgent Deadlines (30 days):", r.Stats.UrgentDeadlines)

	row++
	pair("Generated:", r.GeneratedAt.Format("2006-01-02 15:04"))

	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "B", 40)
	return nil
}

// daysCell keeps real day counts numeric so the column stays sortable in
// the spreadsheet; only the sentinel degrades to text.
func daysCell(o models.Opportunity) any {
	if o.DaysUntilDeadline == models.NoDeadlineDays {
		return "TBD"
	}
	return o.DaysUntilDeadline
}

func gpaCell(v float64, fallback string) any {
	if v <= 0 {
		return fallback
	}
	return v
}

func wordsCell(n int) any {
	if n <= 0 {
		return "N/A"
	}
	return n
}
