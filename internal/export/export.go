// Package export renders a search result into the downloadable formats the
// service offers: result CSV, Excel workbook, PDF report, HTML dashboard,
// ICS deadline calendar and an application-tracker CSV. Exporters only read
// the ranked records they are given; all matching and scoring happens
// upstream.
package export

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tsmith/scholarship-finder/internal/match"
	"github.com/tsmith/scholarship-finder/internal/models"
	"github.com/tsmith/scholarship-finder/internal/profile"
)

// Report bundles everything an exporter needs: the ranked records, the
// profile they were matched against, the aggregate statistics and the
// generation time used for filenames and date stamps.
type Report struct {
	Profile     profile.Profile
	Records     []models.Opportunity
	Stats       match.Stats
	GeneratedAt time.Time
}

// Format identifies one downloadable rendering.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatExcel    Format = "excel"
	FormatPDF      Format = "pdf"
	FormatHTML     Format = "html"
	FormatCalendar Format = "calendar"
	FormatTracker  Format = "tracker"
)

// ParseFormat maps a request string onto a known format. File extensions
// are accepted as aliases so "xlsx" and "ics" work where clients guess.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "excel", "xlsx":
		return FormatExcel, nil
	case "pdf":
		return FormatPDF, nil
	case "html":
		return FormatHTML, nil
	case "calendar", "ics":
		return FormatCalendar, nil
	case "tracker":
		return FormatTracker, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Extension is the file extension for the format, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatExcel:
		return "xlsx"
	case FormatCalendar:
		return "ics"
	case FormatTracker:
		return "csv"
	}
	return string(f)
}

// ContentType is the MIME type served with a download of this format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV, FormatTracker:
		return "text/csv"
	case FormatExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	case FormatHTML:
		return "text/html"
	case FormatCalendar:
		return "text/calendar"
	}
	return "application/octet-stream"
}

// Filename builds the download name for a generated file, stamped to the
// second so repeated downloads do not collide.
func Filename(f Format, at time.Time) string {
	base := "scholarships"
	if f == FormatTracker {
		base = "scholarship_tracker"
	}
	return fmt.Sprintf("%s_%s.%s", base, at.Format("20060102_150405"), f.Extension())
}

// Write renders the report in the requested format.
func Write(w io.Writer, f Format, r Report) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, r)
	case FormatExcel:
		return WriteExcel(w, r)
	case FormatPDF:
		return WritePDF(w, r)
	case FormatHTML:
		return WriteHTML(w, r)
	case FormatCalendar:
		return WriteCalendar(w, r)
	case FormatTracker:
		return WriteTracker(w, r)
	}
	return fmt.Errorf("unknown export format %q", f)
}

// Display fallbacks shared by every renderer: the deadline sentinel shows
// as TBD, a zero minimum GPA as None, zero optional numbers as N/A.

func daysDisplay(o models.Opportunity) string {
	if o.DaysUntilDeadline == models.NoDeadlineDays {
		return "TBD"
	}
	return strconv.Itoa(o.DaysUntilDeadline)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func gpaDisplay(v float64, fallback string) string {
	if v <= 0 {
		return fallback
	}
	return trimFloat(v)
}

// trimFloat renders a float without trailing zeros: 3.5 stays "3.5", 8
// stays "8".
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// money renders a dollar amount with thousands separators and no cents.
func money(v float64) string {
	return "$" + humanize.Comma(int64(math.Round(v)))
}
