package calendar

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"krishi/entities"
)

func exportFixture() []entities.CalendarEvent {
	return []entities.CalendarEvent{
		{Name: "Wheat Sowing", Date: "2025-10-15", Priority: entities.PriorityHigh, Category: entities.CategoryPlanting, Variety: "HD 2967, PBW 771"},
		{Name: "Soil Health Card - Testing", Date: "2025-06-30", Priority: entities.PriorityMedium, Category: entities.CategorySoil, Parameters: "NPK, pH, EC, OC"},
		{Name: "Green Manuring - Prepare Field", Date: "2025-05-15", Priority: entities.PriorityLow, Category: entities.CategorySoil},
	}
}

func TestExportCSV_HeaderAndQuoting(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, exportFixture()); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	wantHeader := []string{"Date", "Event Name", "Category", "Priority", "Details"}
	for i, h := range wantHeader {
		if rows[0][i] != h {
			t.Fatalf("header: got %v", rows[0])
		}
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	// the comma inside the variety must survive the round trip
	if rows[1][4] != "HD 2967, PBW 771" {
		t.Fatalf("details field mangled: %q", rows[1][4])
	}
}

func TestExportICS_StructureAndPriorities(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportICS(&buf, exportFixture()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n") || !strings.Contains(out, "END:VCALENDAR") {
		t.Fatal("missing calendar envelope")
	}
	if strings.Count(out, "BEGIN:VEVENT") != 3 {
		t.Fatalf("expected 3 VEVENTs:\n%s", out)
	}
	if !strings.Contains(out, "DTSTART:20251015T000000Z") {
		t.Fatal("DTSTART not in YYYYMMDDT000000Z form")
	}
	for _, want := range []string{"PRIORITY:1", "PRIORITY:5", "PRIORITY:9"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s", want)
		}
	}
	if !strings.Contains(out, "UID:WheatSowing-2025-10-15@krishi") {
		t.Error("UID should be the squashed name plus date")
	}
	// commas in text fields must be escaped per RFC 5545
	if !strings.Contains(out, `HD 2967\, PBW 771`) {
		t.Error("DESCRIPTION comma not escaped")
	}
}

func TestExportJSON_Shape(t *testing.T) {
	profile := &entities.FarmerProfile{ID: "p1", Name: "Ravi", State: "Punjab"}
	annotations := map[string]entities.EventAnnotation{
		"2025-10-15-Wheat Sowing": {Key: "2025-10-15-Wheat Sowing", Note: "buy seed", ReminderSet: true},
		"2025-06-30-Soil Health Card - Testing": {Key: "2025-06-30-Soil Health Card - Testing", Highlighted: true},
	}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, profile, exportFixture(), annotations); err != nil {
		t.Fatal(err)
	}

	var out struct {
		ExportDate    string                    `json:"exportDate"`
		FarmerProfile *entities.FarmerProfile   `json:"farmerProfile"`
		Events        []entities.CalendarEvent  `json:"events"`
		Notes         map[string]string         `json:"notes"`
		Reminders     map[string]bool           `json:"reminders"`
		Highlights    map[string]bool           `json:"highlights"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.ExportDate == "" || out.FarmerProfile == nil || out.FarmerProfile.Name != "Ravi" {
		t.Fatalf("envelope: %+v", out)
	}
	if len(out.Events) != 3 {
		t.Fatalf("events: %d", len(out.Events))
	}
	if out.Notes["2025-10-15-Wheat Sowing"] != "buy seed" {
		t.Fatalf("notes: %v", out.Notes)
	}
	if !out.Reminders["2025-10-15-Wheat Sowing"] || !out.Highlights["2025-06-30-Soil Health Card - Testing"] {
		t.Fatalf("flag maps: %v %v", out.Reminders, out.Highlights)
	}
	if _, ok := out.Notes["2025-06-30-Soil Health Card - Testing"]; ok {
		t.Fatal("empty note must not appear in the notes map")
	}
}

func TestExportXLSX_Writes(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportXLSX(&buf, exportFixture()); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty workbook")
	}
	// xlsx files are zip archives
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Fatal("output is not a zip-based workbook")
	}
}
