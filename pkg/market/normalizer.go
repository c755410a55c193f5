package market

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"krishi/entities"
)

// Upstream sources disagree on key naming and casing (govt API uses
// snake_case, the scraped table uses title case). Each canonical field
// probes an ordered alias list; the first present, non-empty value wins.
var (
	commodityAliases = []string{"commodity", "Commodity"}
	stateAliases     = []string{"state", "State"}
	districtAliases  = []string{"district", "District"}
	marketAliases    = []string{"market", "Market", "market_name", "Market Name"}
	varietyAliases   = []string{"variety", "Variety"}
	minPriceAliases  = []string{"min_price", "Min Price"}
	maxPriceAliases  = []string{"max_price", "Max Price"}
	modalAliases     = []string{"modal_price", "avg_price", "Avg Price", "Modal Price"}
)

// Normalize maps one raw upstream record onto the canonical shape.
// It is total: a record with no usable fields still comes back with
// commodity "" (downstream decides whether to suppress it), and a price
// that does not parse becomes nil rather than 0, so a missing price is
// never mistaken for a free one.
func Normalize(raw map[string]any) entities.MarketRecord {
	return entities.MarketRecord{
		Commodity:  firstString(raw, commodityAliases),
		State:      firstString(raw, stateAliases),
		District:   firstString(raw, districtAliases),
		Market:     firstString(raw, marketAliases),
		Variety:    firstString(raw, varietyAliases),
		MinPrice:   firstPrice(raw, minPriceAliases),
		MaxPrice:   firstPrice(raw, maxPriceAliases),
		ModalPrice: firstPrice(raw, modalAliases),
	}
}

// NormalizeAll maps Normalize over a whole upstream response.
func NormalizeAll(raws []map[string]any) []entities.MarketRecord {
	out := make([]entities.MarketRecord, 0, len(raws))
	for _, r := range raws {
		out = append(out, Normalize(r))
	}
	return out
}

func firstString(raw map[string]any, aliases []string) string {
	for _, k := range aliases {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		if s := strings.TrimSpace(stringify(v)); s != "" {
			return s
		}
	}
	return ""
}

// firstPrice takes the first alias that carries any value and parses it.
// A present-but-unparseable value yields nil; later aliases are not
// consulted once one is present, matching the alias precedence.
func firstPrice(raw map[string]any, aliases []string) *float64 {
	for _, k := range aliases {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		return parsePrice(v)
	}
	return nil
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	default:
		return ""
	}
}

// parsePrice tolerates the shapes the sources actually emit: bare numbers,
// numeric strings, and strings with currency sign, commas or units.
func parsePrice(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return finite(n)
	case int:
		f := float64(n)
		return &f
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return finite(f)
		}
		return nil
	case string:
		s := strings.TrimSpace(n)
		s = strings.TrimPrefix(s, "₹")
		s = strings.ReplaceAll(s, ",", "")
		if i := strings.IndexAny(s, " /"); i >= 0 { // "1800 per quintal", "305/quintal"
			s = s[:i]
		}
		if s == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return finite(f)
		}
		return nil
	default:
		return nil
	}
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
