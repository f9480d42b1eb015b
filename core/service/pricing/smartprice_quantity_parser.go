package pricing

import (
	"regexp"
	"strconv"
	"strings"

	"smartprice_server/core/domain"
)

// =============================================================================
// Quantity Parsing (grocery unit metadata)
// =============================================================================

var (
	// "350g x 2", "500ml X 3" pack combos
	comboPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(kg|g|l|ml)\s*[x×]\s*(\d+)`)
	// "1kg", "500 ml", "1.5l"
	unitPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(kg|g|l|ml)\b`)
)

// ParseQuantity extracts weight/volume metadata from a grocery listing
// title. Grams normalize to kg and millilitres to l so unit prices compare
// directly. Returns a zero Quantity when no unit is present.
func ParseQuantity(text string) domain.Quantity {
	if m := comboPattern.FindStringSubmatch(text); m != nil {
		value, _ := strconv.ParseFloat(m[1], 64)
		count, _ := strconv.Atoi(m[3])
		if count < 1 {
			count = 1
		}
		value, unit := normalizeUnit(value, strings.ToLower(m[2]))
		return domain.Quantity{Value: value, Unit: unit, Count: count}
	}

	if m := unitPattern.FindStringSubmatch(text); m != nil {
		value, _ := strconv.ParseFloat(m[1], 64)
		value, unit := normalizeUnit(value, strings.ToLower(m[2]))
		return domain.Quantity{Value: value, Unit: unit, Count: 1}
	}

	return domain.Quantity{}
}

func normalizeUnit(value float64, unit string) (float64, string) {
	switch unit {
	case "g":
		return value / 1000, "kg"
	case "ml":
		return value / 1000, "l"
	}
	return value, unit
}

// TotalAmount returns value multiplied by the pack count.
func TotalAmount(q domain.Quantity) float64 {
	count := q.Count
	if count < 1 {
		count = 1
	}
	return q.Value * float64(count)
}
