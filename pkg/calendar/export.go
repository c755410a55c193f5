package calendar

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"krishi/entities"
)

// ExportCSV writes the event list with the fixed header row
// Date,Event Name,Category,Priority,Details. encoding/csv quotes fields
// as needed, which satisfies the double-quote-escaping contract.
func ExportCSV(w io.Writer, events []entities.CalendarEvent) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Event Name", "Category", "Priority", "Details"}); err != nil {
		return err
	}
	for _, ev := range events {
		if err := cw.Write([]string{ev.Date, ev.Name, string(ev.Category), string(ev.Priority), ev.Details()}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportICS writes an iCalendar 2.0 document, one VEVENT per event.
// Dates are emitted as all-day stamps (T000000Z), priorities map
// HIGH=1 MEDIUM=5 LOW=9.
func ExportICS(w io.Writer, events []entities.CalendarEvent) error {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//Krishi//Farmer Calendar//EN\r\n")
	b.WriteString("CALSCALE:GREGORIAN\r\n")
	b.WriteString("METHOD:PUBLISH\r\n")
	b.WriteString("X-WR-CALNAME:Agricultural Calendar\r\n")
	b.WriteString("X-WR-TIMEZONE:UTC\r\n")
	b.WriteString("X-WR-CALDESC:Farming activities calendar\r\n")
	for _, ev := range events {
		stamp := strings.ReplaceAll(ev.Date, "-", "") + "T000000Z"
		desc := ev.Details()
		if desc == "" {
			desc = ev.Name
		}
		b.WriteString("BEGIN:VEVENT\r\n")
		fmt.Fprintf(&b, "UID:%s-%s@krishi\r\n", strings.ReplaceAll(ev.Name, " ", ""), ev.Date)
		fmt.Fprintf(&b, "DTSTAMP:%s\r\n", stamp)
		fmt.Fprintf(&b, "DTSTART:%s\r\n", stamp)
		fmt.Fprintf(&b, "SUMMARY:%s\r\n", icsEscape(ev.Name))
		fmt.Fprintf(&b, "DESCRIPTION:%s\r\n", icsEscape(desc))
		fmt.Fprintf(&b, "PRIORITY:%s\r\n", icsPriority(ev.Priority))
		b.WriteString("STATUS:CONFIRMED\r\n")
		b.WriteString("END:VEVENT\r\n")
	}
	b.WriteString("END:VCALENDAR\r\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func icsPriority(p entities.Priority) string {
	switch p {
	case entities.PriorityHigh:
		return "1"
	case entities.PriorityMedium:
		return "5"
	default:
		return "9"
	}
}

func icsEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

// ExportJSON dumps the full in-memory state: profile, events and the
// annotation maps split back into notes/reminders/highlights like the
// frontend stored them.
func ExportJSON(w io.Writer, profile *entities.FarmerProfile, events []entities.CalendarEvent, annotations map[string]entities.EventAnnotation) error {
	notes := map[string]string{}
	reminders := map[string]bool{}
	highlights := map[string]bool{}
	for k, a := range annotations {
		if a.Note != "" {
			notes[k] = a.Note
		}
		if a.ReminderSet {
			reminders[k] = true
		}
		if a.Highlighted {
			highlights[k] = true
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"exportDate":    time.Now().UTC().Format(time.RFC3339),
		"farmerProfile": profile,
		"events":        events,
		"notes":         notes,
		"reminders":     reminders,
		"highlights":    highlights,
	})
}

// ExportXLSX writes the same columns as the CSV into a single-sheet
// workbook for farmers who open exports in a spreadsheet.
func ExportXLSX(w io.Writer, events []entities.CalendarEvent) error {
	x := excelize.NewFile()
	defer x.Close()
	const sheet = "Calendar"
	idx, err := x.NewSheet(sheet)
	if err != nil {
		return err
	}
	x.SetActiveSheet(idx)
	if err := x.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	header := []any{"Date", "Event Name", "Category", "Priority", "Details"}
	if err := x.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, ev := range events {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{ev.Date, ev.Name, string(ev.Category), string(ev.Priority), ev.Details()}
		if err := x.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return x.Write(w)
}
