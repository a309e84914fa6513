package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/tsmith/scholarship-finder/internal/models"
)

// WriteCalendar writes one all-day event per dated deadline, each with a
// seven-day display alarm, plus a separate heads-up event thirty days out
// for deadlines far enough away to benefit. Rolling and unparsed deadlines
// contribute no events.
func WriteCalendar(w io.Writer, r Report) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Scholarship Finder//EN")
	cal.SetCalscale("GREGORIAN")
	cal.SetXWRCalName("Scholarship Deadlines")
	cal.SetXWRCalDesc("Scholarship application deadlines")

	for _, o := range r.Records {
		if o.DeadlineAt == nil {
			continue
		}
		due := *o.DeadlineAt

		event := cal.AddEvent(eventUID(o.Name, "deadline", due))
		event.SetDtStampTime(r.GeneratedAt)
		event.SetAllDayStartAt(due)
		event.SetSummary("DEADLINE: " + o.Name)
		event.SetDescription(deadlineDescription(o))
		if o.ApplicationURL != "" {
			event.SetLocation(o.ApplicationURL)
		}
		event.SetStatus(ics.ObjectStatusConfirmed)
		event.SetProperty(ics.ComponentProperty(ics.PropertyPriority), "5")

		alarm := event.AddAlarm()
		alarm.SetAction(ics.ActionDisplay)
		alarm.SetTrigger("-P7D")
		alarm.SetProperty(ics.ComponentPropertyDescription, fmt.Sprintf("Reminder: %s deadline in 7 days", o.Name))

		if o.DaysUntilDeadline > 30 {
			remindAt := due.AddDate(0, 0, -30)
			reminder := cal.AddEvent(eventUID(o.Name, "reminder", remindAt))
			reminder.SetDtStampTime(r.GeneratedAt)
			reminder.SetAllDayStartAt(remindAt)
			reminder.SetSummary(fmt.Sprintf("REMINDER: %s (30 days)", o.Name))
			reminder.SetDescription(reminderDescription(o))
			reminder.SetStatus(ics.ObjectStatusConfirmed)
			reminder.SetProperty(ics.ComponentProperty(ics.PropertyPriority), "3")
		}
	}

	return cal.SerializeTo(w)
}

// eventUID derives a stable name-based UUID so re-importing a regenerated
// calendar updates events in place instead of duplicating them.
func eventUID(name, kind string, day time.Time) string {
	seed := fmt.Sprintf("%s-%s-%s", strings.ReplaceAll(name, " ", "-"), kind, day.Format("20060102"))
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(seed)).String() + "@scholarship-finder"
}

func deadlineDescription(o models.Opportunity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\nAward: %s\nGPA: %s+", o.Name, o.AmountDisplay, gpaDisplay(o.GPAMin, "None"))
	if o.ApplicationURL != "" {
		fmt.Fprintf(&b, "\n\nURL: %s", o.ApplicationURL)
	}
	if o.Notes != "" {
		fmt.Fprintf(&b, "\n\nNotes: %s", o.Notes)
	}
	return b.String()
}

func reminderDescription(o models.Opportunity) string {
	return fmt.Sprintf("Reminder: %s deadline in 30 days\n\nDeadline: %s\nAward: %s\n\nStart preparing application materials.",
		o.Name, o.Deadline, o.AmountDisplay)
}
