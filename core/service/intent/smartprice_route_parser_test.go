package intent

import (
	"testing"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		wantOK        bool
		wantDeparture string
		wantArrival   string
	}{
		{
			name:          "from-to order follows appearance",
			query:         "find flights from delhi to mumbai",
			wantOK:        true,
			wantDeparture: "DEL",
			wantArrival:   "BOM",
		},
		{
			name:          "reversed appearance reverses route",
			query:         "mumbai flights departing out of delhi",
			wantOK:        true,
			wantDeparture: "BOM",
			wantArrival:   "DEL",
		},
		{
			name:          "city aliases resolve",
			query:         "fly bombay to bengaluru",
			wantOK:        true,
			wantDeparture: "BOM",
			wantArrival:   "BLR",
		},
		{
			name:          "multi-word city before substring",
			query:         "new delhi to goa tickets",
			wantOK:        true,
			wantDeparture: "DEL",
			wantArrival:   "GOI",
		},
		{
			name:   "single city is not a route",
			query:  "flights to chennai",
			wantOK: false,
		},
		{
			name:   "no cities",
			query:  "cheap flights please",
			wantOK: false,
		},
		{
			name:          "same city twice counts once",
			query:         "delhi to delhi via jaipur",
			wantOK:        true,
			wantDeparture: "DEL",
			wantArrival:   "JAI",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route, ok := ParseRoute(tt.query)
			if ok != tt.wantOK {
				t.Fatalf("ParseRoute(%q) ok = %v, want %v", tt.query, ok, tt.wantOK)
			}
			if !tt.wantOK {
				return
			}
			if route.Departure != tt.wantDeparture || route.Arrival != tt.wantArrival {
				t.Errorf("ParseRoute(%q) = %s→%s, want %s→%s",
					tt.query, route.Departure, route.Arrival, tt.wantDeparture, tt.wantArrival)
			}
		})
	}
}

func TestCityName(t *testing.T) {
	if got := CityName("DEL"); got != "Delhi" {
		t.Errorf("CityName(DEL) = %q, want Delhi", got)
	}
	if got := CityName("XYZ"); got != "XYZ" {
		t.Errorf("CityName(XYZ) = %q, want the code itself", got)
	}
}
