// Package pricing implements the card-benefit resolution core: price
// parsing, benefit calculation, offer ranking, and cart aggregation.
package pricing

import (
	"regexp"
	"strconv"
	"strings"
)

// =============================================================================
// Price Extraction
// =============================================================================

// pricePatterns are tried in order; the first match wins. Every pattern is
// anchored to a currency marker so bare numbers in titles never parse as
// prices.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`₹\s*(\d+(?:,\d+)*(?:\.\d+)?)`),
	regexp.MustCompile(`Rs\.?\s*(\d+(?:,\d+)*(?:\.\d+)?)`),
	regexp.MustCompile(`INR\s*(\d+(?:,\d+)*(?:\.\d+)?)`),
	regexp.MustCompile(`(\d+(?:,\d+)*(?:\.\d+)?)\s*₹`),
}

// ExtractPrice parses a free-form price string into a numeric amount.
// Returns 0 for empty text, missing currency marker, or unparseable input.
func ExtractPrice(text string) float64 {
	if text == "" {
		return 0
	}

	for _, pattern := range pricePatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		raw := strings.ReplaceAll(match[1], ",", "")
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		return value
	}

	return 0
}
