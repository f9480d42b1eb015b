package intent

import (
	"strings"

	"smartprice_server/core/domain"
)

// =============================================================================
// Flight Route Micro-Parser
// =============================================================================

// cityEntry maps one city spelling to its IATA code. Aliases share a code.
type cityEntry struct {
	city string
	code string
}

// cityTable lists supported cities. Multi-word spellings come before their
// substrings so "new delhi" resolves before "delhi".
var cityTable = []cityEntry{
	{"new delhi", "DEL"},
	{"delhi", "DEL"},
	{"mumbai", "BOM"},
	{"bombay", "BOM"},
	{"bangalore", "BLR"},
	{"bengaluru", "BLR"},
	{"chennai", "MAA"},
	{"madras", "MAA"},
	{"hyderabad", "HYD"},
	{"pune", "PNQ"},
	{"kolkata", "CCU"},
	{"calcutta", "CCU"},
	{"goa", "GOI"},
	{"panaji", "GOI"},
	{"kochi", "COK"},
	{"cochin", "COK"},
	{"ahmedabad", "AMD"},
	{"jaipur", "JAI"},
}

// cityNames maps IATA codes back to display names.
var cityNames = map[string]string{
	"DEL": "Delhi", "BOM": "Mumbai", "BLR": "Bangalore", "MAA": "Chennai",
	"HYD": "Hyderabad", "PNQ": "Pune", "CCU": "Kolkata", "GOI": "Goa",
	"COK": "Kochi", "AMD": "Ahmedabad", "JAI": "Jaipur",
}

// CityName returns the display name for an IATA code, or the code itself
// when unknown.
func CityName(code string) string {
	if name, ok := cityNames[code]; ok {
		return name
	}
	return code
}

// ParseRoute scans the query for known city names and assigns the first two
// matches, in appearance order, to departure then arrival. A city matched
// twice counts once at its first position. This is a best-effort heuristic:
// there is no guarantee about "from X to Y" phrasing beyond substring
// positions. Returns false when fewer than two distinct cities appear.
func ParseRoute(query string) (domain.FlightRoute, bool) {
	lower := strings.ToLower(query)

	type match struct {
		pos  int
		code string
	}
	var matches []match
	seen := make(map[string]bool)

	for _, entry := range cityTable {
		pos := strings.Index(lower, entry.city)
		if pos < 0 || seen[entry.code] {
			continue
		}
		seen[entry.code] = true
		matches = append(matches, match{pos: pos, code: entry.code})
	}

	if len(matches) < 2 {
		return domain.FlightRoute{}, false
	}

	// Order by position in the query, keeping table order on equal offsets.
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].pos < matches[j-1].pos; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}

	route := domain.FlightRoute{
		Departure: matches[0].code,
		Arrival:   matches[1].code,
		FromCity:  CityName(matches[0].code),
		ToCity:    CityName(matches[1].code),
	}
	return route, true
}
