package export

import (
	"encoding/csv"
	"io"
	"strconv"
)

// resultHeader is the column set the result CSV has always shipped with;
// downstream spreadsheets key on these names.
var resultHeader = []string{
	"Priority Score", "Scholarship Name", "Award Amount", "Amount Min",
	"Amount Max", "Deadline", "Days Until", "Min GPA", "Recommended GPA",
	"Eligibility", "Essay Required", "Essay Word Count", "Rec Letters",
	"Interview", "Competitiveness", "Category", "Renewable",
	"Est. Application Hours", "Application URL", "Notes", "Date Researched",
}

// WriteCSV writes the full result table, one row per record, in the order
// the records were ranked.
func WriteCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(resultHeader); err != nil {
		return err
	}

	for _, o := range r.Records {
		words := "N/A"
		if o.EssayWordCount > 0 {
			words = strconv.Itoa(o.EssayWordCount)
		}
		row := []string{
			trimFloat(o.PriorityScore),
			o.Name,
			o.AmountDisplay,
			strconv.Itoa(o.AmountMin),
			strconv.Itoa(o.AmountMax),
			o.Deadline,
			daysDisplay(o),
			gpaDisplay(o.GPAMin, "None"),
			gpaDisplay(o.GPAPreferred, "N/A"),
			o.Eligibility,
			yesNo(o.EssayRequired),
			words,
			strconv.Itoa(o.RecLettersRequired),
			yesNo(o.InterviewRequired),
			string(o.Competitiveness),
			o.Category,
			yesNo(o.Renewable),
			trimFloat(o.EstimatedHours),
			o.ApplicationURL,
			o.Notes,
			o.ResearchedOn,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// trackerHeader is the column set of the application-progress sheet.
var trackerHeader = []string{
	"Scholarship Name", "Award Amount", "Deadline", "Days Until",
	"Priority Score", "Application Status", "Date Started",
	"Date Submitted", "Essay Complete", "Rec Letters Secured",
	"Transcript Sent", "Interview Scheduled", "Result",
	"Amount Awarded", "Notes",
}

// WriteTracker writes a blank application-progress sheet seeded from the
// result set: every row starts Not Started with its checklist columns
// reset. Checklist cells for requirements a record does not have read N/A.
func WriteTracker(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(trackerHeader); err != nil {
		return err
	}

	for _, o := range r.Records {
		essay := "N/A"
		if o.EssayRequired {
			essay = "No"
		}
		interview := "N/A"
		if o.InterviewRequired {
			interview = "No"
		}
		row := []string{
			o.Name,
			o.AmountDisplay,
			o.Deadline,
			daysDisplay(o),
			trimFloat(o.PriorityScore),
			"Not Started",
			"",
			"",
			essay,
			"0/" + strconv.Itoa(o.RecLettersRequired),
			"No",
			interview,
			"Pending",
			"",
			"",
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
