package entities

import "time"

// MarketRecord is one commodity price row after normalization.
// Price fields are nil when the upstream source omits them or the value
// does not parse; a real free/zero price stays 0, so nil and 0 are distinct.
type MarketRecord struct {
	Commodity  string   `json:"commodity"`
	State      string   `json:"state"`
	District   string   `json:"district"`
	Market     string   `json:"market"`
	Variety    string   `json:"variety"`
	MinPrice   *float64 `json:"min_price"`
	MaxPrice   *float64 `json:"max_price"`
	ModalPrice *float64 `json:"modal_price"` // ₹ per quintal
}

type SortOrder string

const (
	SortPriceAsc  SortOrder = "avg_price_asc"
	SortPriceDesc SortOrder = "avg_price_desc"
	SortNameAsc   SortOrder = "name_asc"
	SortNameDesc  SortOrder = "name_desc"
)

// AllDistricts is the dropdown sentinel the frontend sends when no
// district is chosen; treated the same as an empty district filter.
const AllDistricts = "All Districts"

// FilterCriteria holds the price search filters. Empty string = no
// constraint. All matches are case-insensitive substring tests.
type FilterCriteria struct {
	Commodity string    `json:"commodity"`
	State     string    `json:"state"`
	District  string    `json:"district"`
	Variety   string    `json:"variety"`
	SortBy    SortOrder `json:"sort_by"`
}

// PriceSnapshot is a cached upstream row as stored in sqlite.
type PriceSnapshot struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Source     string    `gorm:"index" json:"source"`
	Commodity  string    `json:"commodity"`
	State      string    `json:"state"`
	District   string    `json:"district"`
	Market     string    `json:"market"`
	Variety    string    `json:"variety"`
	MinPrice   *float64  `json:"min_price"`
	MaxPrice   *float64  `json:"max_price"`
	ModalPrice *float64  `json:"modal_price"`
	FetchedAt  time.Time `gorm:"index" json:"fetched_at"`
}

func (s PriceSnapshot) Record() MarketRecord {
	return MarketRecord{
		Commodity:  s.Commodity,
		State:      s.State,
		District:   s.District,
		Market:     s.Market,
		Variety:    s.Variety,
		MinPrice:   s.MinPrice,
		MaxPrice:   s.MaxPrice,
		ModalPrice: s.ModalPrice,
	}
}
