package calendar

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"krishi/entities"
)

// LoadCatalog returns the seed calendar. A YAML file can replace the
// built-in catalog (same shape: category name to event list); any problem
// with the file is logged and the built-in catalog is used, same contract
// as the geography table.
func LoadCatalog(path string) map[entities.Category][]entities.CalendarEvent {
	if path == "" {
		return DefaultCatalog()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[calendar] %s not readable, using built-in catalog: %v", path, err)
		return DefaultCatalog()
	}
	var raw map[entities.Category][]entities.CalendarEvent
	if err := yaml.Unmarshal(b, &raw); err != nil || len(raw) == 0 {
		log.Printf("[calendar] %s not usable, using built-in catalog", path)
		return DefaultCatalog()
	}
	out := DefaultCatalog()
	for cat, events := range raw {
		for i := range events {
			events[i].Category = cat
		}
		out[cat] = events
	}
	log.Printf("[calendar] loaded %d categories from %s", len(raw), path)
	return out
}

// DefaultCatalog is the generic pan-India seed calendar; personalization
// replaces the irrigation, soil and planting lists per farmer profile.
// Every event carries its category explicitly.
func DefaultCatalog() map[entities.Category][]entities.CalendarEvent {
	c := map[entities.Category][]entities.CalendarEvent{
		entities.CategoryScheme: {
			{Name: "PM Fasal Bima Yojana (PMFBY)", Date: "2025-12-31", Priority: entities.PriorityHigh},
			{Name: "Kisan Credit Card (KCC)", Date: "2025-01-15", Priority: entities.PriorityHigh},
			{Name: "Soil Health Card Scheme", Date: "2025-06-30", Priority: entities.PriorityMedium},
			{Name: "PM-KUSUM (Solar Schemes)", Date: "2025-02-28", Priority: entities.PriorityMedium},
			{Name: "PM-KISAN Supplementary", Date: "2025-03-15", Priority: entities.PriorityMedium},
		},
		entities.CategoryIrrigation: {
			{Name: "Summer Irrigation - Wheat (Winter Crop)", Date: "2025-01-10", Priority: entities.PriorityHigh, Notes: "First winter irrigation for wheat"},
			{Name: "Summer Irrigation - Rice Seedbed", Date: "2025-05-15", Priority: entities.PriorityHigh, Notes: "Prepare rice seedbed"},
			{Name: "Summer Irrigation - Cotton", Date: "2025-06-01", Priority: entities.PriorityHigh, Notes: "Critical irrigation for cotton"},
			{Name: "Monsoon Irrigation - Vegetables", Date: "2025-07-15", Priority: entities.PriorityMedium, Notes: "Vegetable garden irrigation"},
			{Name: "Winter Irrigation - Sugarcane", Date: "2025-11-01", Priority: entities.PriorityHigh, Notes: "Pre-winter sugarcane irrigation"},
		},
		entities.CategoryFertilizer: {
			{Name: "Basal Fertilizer Application - Wheat", Date: "2025-01-05", Priority: entities.PriorityHigh, Required: "NPK 10:26:26 - 500kg/ha"},
			{Name: "Top Dressing - Wheat (Stage 1)", Date: "2025-02-15", Priority: entities.PriorityHigh, Required: "Urea - 150kg/ha"},
			{Name: "Top Dressing - Wheat (Stage 2)", Date: "2025-03-15", Priority: entities.PriorityMedium, Required: "Urea - 100kg/ha"},
			{Name: "Basal Fertilizer - Rice", Date: "2025-05-20", Priority: entities.PriorityHigh, Required: "DAP 16:20:0 - 350kg/ha"},
			{Name: "Top Dressing - Rice (Tillering)", Date: "2025-06-15", Priority: entities.PriorityHigh, Required: "Urea - 200kg/ha"},
			{Name: "Basal Fertilizer - Cotton", Date: "2025-06-05", Priority: entities.PriorityHigh, Required: "NPK 12:32:16 - 600kg/ha"},
			{Name: "Top Dressing - Cotton (Flowering)", Date: "2025-08-01", Priority: entities.PriorityMedium, Required: "Potash - 50kg/ha"},
			{Name: "Basal Fertilizer - Vegetables", Date: "2025-07-01", Priority: entities.PriorityMedium, Required: "FYM - 10 tonnes/ha + NPK 20:10:10"},
		},
		entities.CategorySeason: {
			{Name: "Kharif Season Start (Monsoon Crops)", Date: "2025-06-01", EndDate: "2025-10-31", Priority: entities.PriorityHigh, Crops: "Rice, Cotton, Sugarcane, Maize"},
			{Name: "Rabi Season Start (Winter Crops)", Date: "2025-10-01", EndDate: "2026-03-31", Priority: entities.PriorityHigh, Crops: "Wheat, Pulses, Vegetables"},
			{Name: "Summer Season", Date: "2025-04-01", EndDate: "2025-05-31", Priority: entities.PriorityMedium, Crops: "Summer Vegetables, Groundnut"},
		},
		entities.CategoryPlanting: {
			{Name: "Wheat Sowing", Date: "2025-10-15", Priority: entities.PriorityHigh, Variety: "HD 2967, PBW 771"},
			{Name: "Rice Transplanting (Kharif)", Date: "2025-07-01", Priority: entities.PriorityHigh, Variety: "Basmati, PR-11, Pusa"},
			{Name: "Cotton Sowing", Date: "2025-06-10", Priority: entities.PriorityHigh, Variety: "Bt Cotton, Desi Cotton"},
			{Name: "Sugarcane Planting", Date: "2025-09-15", Priority: entities.PriorityMedium, Variety: "CoP 92005, CoM 0238"},
			{Name: "Pulse Sowing (Rabi)", Date: "2025-10-20", Priority: entities.PriorityMedium, Variety: "Gram, Lentil, Pea"},
		},
		entities.CategoryPestDisease: {
			{Name: "Wheat - Monitor for Aphids", Date: "2025-02-01", Priority: entities.PriorityMedium, Threshold: "ETL: 50 aphids/ear head"},
			{Name: "Rice - Monitor for Stem Borer", Date: "2025-07-15", Priority: entities.PriorityMedium, Threshold: "ETL: 20 larvae per hill"},
			{Name: "Cotton - Spray for Bollworm", Date: "2025-08-15", Priority: entities.PriorityHigh, Threshold: "ETL: 1 larva per 3 plants"},
			{Name: "Vegetable - Monitor for Whitefly", Date: "2025-07-20", Priority: entities.PriorityMedium, Threshold: "Yellow sticky trap monitoring"},
		},
		entities.CategoryHarvest: {
			{Name: "Wheat Harvest", Date: "2025-04-15", Priority: entities.PriorityHigh, Yield: "40-50 q/ha"},
			{Name: "Rice Harvest (Kharif)", Date: "2025-10-01", Priority: entities.PriorityHigh, Yield: "40-60 q/ha"},
			{Name: "Cotton Picking", Date: "2025-12-01", Priority: entities.PriorityHigh, Yield: "18-25 q/ha"},
			{Name: "Sugarcane Harvest", Date: "2025-12-15", Priority: entities.PriorityHigh, Yield: "70-80 tonnes/ha"},
		},
		entities.CategorySoil: {
			{Name: "Soil Health Card - Testing", Date: "2025-06-30", Priority: entities.PriorityMedium, Parameters: "NPK, pH, EC, OC"},
			{Name: "Apply Farm Yard Manure (FYM)", Date: "2025-09-01", Priority: entities.PriorityMedium, Quantity: "10 tonnes/ha"},
			{Name: "Green Manuring - Prepare Field", Date: "2025-05-15", Priority: entities.PriorityLow, Crops: "Dhaincha, Sesbania"},
		},
	}
	for cat, events := range c {
		for i := range events {
			events[i].Category = cat
		}
		c[cat] = events
	}
	return c
}
