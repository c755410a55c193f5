package calendar

import (
	"strings"

	"krishi/entities"
)

// Generate tailors the seed catalog to one farmer. For irrigation, soil
// and planting a matching profile attribute replaces the whole category
// list; a merge would leave the generic placeholders next to the tailored
// guidance and the two can contradict each other. Categories with nothing
// to personalize keep their base list, so the output always covers every
// category. Pure: neither the base map nor its slices are mutated.
func Generate(base map[entities.Category][]entities.CalendarEvent, p entities.FarmerProfile) map[entities.Category][]entities.CalendarEvent {
	out := make(map[entities.Category][]entities.CalendarEvent, len(base))
	for cat, events := range base {
		out[cat] = events
	}

	if events, ok := irrigationEvents(p); ok {
		out[entities.CategoryIrrigation] = events
	}
	if events, ok := soilEvents(p); ok {
		out[entities.CategorySoil] = events
	}
	if events, ok := plantingEvents(p); ok {
		out[entities.CategoryPlanting] = events
	}
	return out
}

func cropsLabel(p entities.FarmerProfile) string {
	if len(p.CropsGrowing) == 0 {
		return "crops"
	}
	return strings.Join(p.CropsGrowing, ", ")
}

// irrigationEvents returns the tailored list for a known irrigation type.
// An unknown type is not an error; the generic list simply stands.
func irrigationEvents(p entities.FarmerProfile) ([]entities.CalendarEvent, bool) {
	it := p.IrrigationType
	crops := cropsLabel(p)
	var events []entities.CalendarEvent
	switch it {
	case "Drip Irrigation":
		events = []entities.CalendarEvent{
			{Name: "Drip Irrigation Setup & Maintenance", Date: "2025-01-10", Priority: entities.PriorityHigh, Notes: "Set up " + it + " system for " + crops},
			{Name: it + " - Schedule Review", Date: "2025-03-01", Priority: entities.PriorityMedium, Notes: "Check drip line condition and adjust watering schedule"},
			{Name: it + " - Maintenance Check", Date: "2025-06-15", Priority: entities.PriorityMedium, Notes: "Clean and maintain drip irrigation filters"},
		}
	case "Sprinkler Irrigation":
		events = []entities.CalendarEvent{
			{Name: "Sprinkler System Setup", Date: "2025-01-15", Priority: entities.PriorityHigh, Notes: "Install sprinkler system for " + crops},
			{Name: it + " - Pressure Check", Date: "2025-02-20", Priority: entities.PriorityMedium, Notes: "Check water pressure and nozzle coverage"},
			{Name: it + " - Maintenance", Date: "2025-05-15", Priority: entities.PriorityMedium, Notes: "Service and maintain sprinkler heads"},
		}
	case "Furrow Irrigation":
		events = []entities.CalendarEvent{
			{Name: "Furrow Irrigation - Field Preparation", Date: "2025-01-05", Priority: entities.PriorityHigh, Notes: "Prepare furrows for " + crops},
			{Name: it + " - Water Management", Date: "2025-02-15", Priority: entities.PriorityHigh, Notes: "Monitor water flow and adjust furrow irrigation schedule"},
			{Name: it + " - Field Inspection", Date: "2025-04-10", Priority: entities.PriorityMedium, Notes: "Check furrow condition and water distribution"},
		}
	case "Flood Irrigation":
		events = []entities.CalendarEvent{
			{Name: "Flood Irrigation - Bund Preparation", Date: "2025-01-10", Priority: entities.PriorityHigh, Notes: "Prepare and strengthen bunds for flooding"},
			{Name: it + " - Water Level Check", Date: "2025-02-20", Priority: entities.PriorityHigh, Notes: "Monitor water level and field saturation"},
			{Name: it + " - Maintenance", Date: "2025-05-01", Priority: entities.PriorityMedium, Notes: "Repair bunds and prepare for next irrigation cycle"},
		}
	default:
		return nil, false
	}
	for i := range events {
		events[i].Category = entities.CategoryIrrigation
	}
	return events, true
}

func soilEvents(p entities.FarmerProfile) ([]entities.CalendarEvent, bool) {
	st := p.SoilType
	if st == "" {
		return nil, false
	}
	events := []entities.CalendarEvent{
		{Name: st + " Soil - Health Testing", Date: "2025-06-30", Priority: entities.PriorityMedium, Parameters: "Test NPK, pH, EC for " + st + " soil"},
		{Name: st + " - Organic Matter Addition", Date: "2025-09-01", Priority: entities.PriorityMedium, Quantity: "10 tonnes FYM/ha for improved soil structure"},
		{Name: st + " - Amendment Plan", Date: "2025-04-15", Priority: entities.PriorityLow, Notes: "Plan amendments for " + st + " soil improvement"},
	}
	for i := range events {
		events[i].Category = entities.CategorySoil
	}
	return events, true
}

type cropPlan struct {
	date    string
	variety string
	season  string
}

var cropPlantingDates = map[string]cropPlan{
	"Wheat":     {"2025-10-15", "HD 2967, PBW 771", "Rabi"},
	"Rice":      {"2025-07-01", "Basmati, PR-11, Pusa", "Kharif"},
	"Cotton":    {"2025-06-10", "Bt Cotton, Desi Cotton", "Kharif"},
	"Sugarcane": {"2025-09-15", "CoP 92005, CoM 0238", "Year-round"},
	"Maize":     {"2025-05-20", "Pioneer, Syngenta hybrids", "Kharif"},
	"Pulses":    {"2025-10-20", "Gram, Lentil, Pea", "Rabi"},
	"Sugarbeet": {"2025-09-01", "Local, Imported varieties", "Rabi"},
}

// plantingEvents builds one sowing event per mapped crop. Crops without a
// mapping are skipped; when nothing maps the generic list stands, so the
// planting category is never empty.
func plantingEvents(p entities.FarmerProfile) ([]entities.CalendarEvent, bool) {
	var events []entities.CalendarEvent
	for _, crop := range p.CropsGrowing {
		plan, ok := cropPlantingDates[crop]
		if !ok {
			continue
		}
		events = append(events, entities.CalendarEvent{
			Name:     crop + " Sowing/Planting",
			Date:     plan.date,
			Priority: entities.PriorityHigh,
			Category: entities.CategoryPlanting,
			Variety:  plan.variety,
			Season:   plan.season,
		})
	}
	if len(events) == 0 {
		return nil, false
	}
	return events, true
}
