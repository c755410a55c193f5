package entities

import "time"

// FarmerProfile drives calendar personalization. CropsGrowing is stored
// as JSON text in sqlite via the gorm serializer.
type FarmerProfile struct {
	ID             string   `gorm:"primaryKey" json:"id"`
	Name           string   `json:"name"`
	Phone          string   `json:"phone"`
	State          string   `json:"state"`
	District       string   `json:"district"`
	SoilType       string   `json:"soil_type"`
	IrrigationType string   `json:"irrigation_type"` // Drip|Sprinkler|Furrow|Flood Irrigation
	CropsGrowing   []string `gorm:"serializer:json" json:"crops_growing"`
	LandAreaAcre   *float64 `json:"land_area_acre"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
