package entities

import "time"

type Category string

const (
	CategoryScheme      Category = "schemes"
	CategoryIrrigation  Category = "irrigation"
	CategoryFertilizer  Category = "fertilizer"
	CategorySeason      Category = "seasons"
	CategoryPlanting    Category = "planting"
	CategoryPestDisease Category = "pestDisease"
	CategoryHarvest     Category = "harvest"
	CategorySoil        Category = "soil"
)

// Categories in display order.
var Categories = []Category{
	CategoryScheme, CategoryIrrigation, CategoryFertilizer, CategorySeason,
	CategoryPlanting, CategoryPestDisease, CategoryHarvest, CategorySoil,
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// CalendarEvent is one dated farming activity. Date is a plain YYYY-MM-DD
// string and is compared as a string, never parsed into an instant.
// The optional fields carry category-dependent detail (fertilizer dose,
// pest threshold, expected yield, ...).
type CalendarEvent struct {
	Name     string   `json:"name" yaml:"name"`
	Date     string   `json:"date" yaml:"date"`
	Priority Priority `json:"priority" yaml:"priority"`
	Category Category `json:"category" yaml:"category"`

	Notes      string `json:"notes,omitempty" yaml:"notes,omitempty"`
	Required   string `json:"required,omitempty" yaml:"required,omitempty"`
	Crops      string `json:"crops,omitempty" yaml:"crops,omitempty"`
	Variety    string `json:"variety,omitempty" yaml:"variety,omitempty"`
	Threshold  string `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	Yield      string `json:"yield,omitempty" yaml:"yield,omitempty"`
	Quantity   string `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Parameters string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Season     string `json:"season,omitempty" yaml:"season,omitempty"`
	EndDate    string `json:"end_date,omitempty" yaml:"end_date,omitempty"`
}

// Details returns the first non-empty detail field, the value shown in
// list views and exports.
func (e CalendarEvent) Details() string {
	for _, s := range []string{e.Notes, e.Required, e.Crops, e.Variety, e.Threshold, e.Yield, e.Quantity, e.Parameters} {
		if s != "" {
			return s
		}
	}
	return ""
}

// EventAnnotation is the per-event user state, keyed by date+name.
type EventAnnotation struct {
	Key         string    `gorm:"primaryKey" json:"key"`
	Note        string    `json:"note"`
	ReminderSet bool      `json:"reminder_set"`
	Highlighted bool      `json:"highlighted"`
	UpdatedAt   time.Time `json:"updated_at"`
}
