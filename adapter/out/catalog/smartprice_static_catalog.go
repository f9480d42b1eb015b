// Package catalog provides offer sources. The static adapter serves a
// built-in demo inventory so the pipeline runs without any live platform
// integration.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"smartprice_server/core/domain"
	"smartprice_server/core/port/out"
	"smartprice_server/core/service/pricing"
)

// =============================================================================
// Static Catalog
// =============================================================================

// StaticCatalog serves fixed demo offers keyed by item name. Lookups are
// case-insensitive substring matches so "iphone 15 pro" still finds the
// iPhone inventory.
type StaticCatalog struct{}

var _ out.OfferCatalog = (*StaticCatalog)(nil)

func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{}
}

var productInventory = map[string][]domain.Offer{
	"iphone 15": {
		{Title: "Apple iPhone 15 (128GB, Black)", Platform: "Amazon", PriceText: "₹61,499", URL: "https://www.amazon.in/dp/B0CHX1W1XY"},
		{Title: "Apple iPhone 15 (128GB, Blue)", Platform: "Flipkart", PriceText: "₹62,999", URL: "https://www.flipkart.com/apple-iphone-15"},
		{Title: "Apple iPhone 15 (256GB, Black)", Platform: "Amazon", PriceText: "₹71,999", URL: "https://www.amazon.in/dp/B0CHX2RQJV"},
	},
	"samsung galaxy s24": {
		{Title: "Samsung Galaxy S24 5G (256GB)", Platform: "Amazon", PriceText: "₹74,999", URL: "https://www.amazon.in/dp/B0CS5YX8TY"},
		{Title: "Samsung Galaxy S24 5G (256GB)", Platform: "Flipkart", PriceText: "₹72,499", URL: "https://www.flipkart.com/samsung-galaxy-s24"},
	},
	"macbook air": {
		{Title: "Apple MacBook Air M3 (8GB/256GB)", Platform: "Amazon", PriceText: "₹99,990", URL: "https://www.amazon.in/dp/B0CX23GFMJ"},
		{Title: "Apple MacBook Air M3 (8GB/256GB)", Platform: "Flipkart", PriceText: "₹1,04,900", URL: "https://www.flipkart.com/apple-macbook-air-m3"},
	},
	"laptop": {
		{Title: "HP Pavilion 15 (i5/16GB/512GB)", Platform: "Amazon", PriceText: "₹58,990", URL: "https://www.amazon.in/dp/B0D2XRP5RY"},
		{Title: "Lenovo IdeaPad Slim 5 (Ryzen 7)", Platform: "Flipkart", PriceText: "₹62,490", URL: "https://www.flipkart.com/lenovo-ideapad-slim-5"},
		{Title: "ASUS Vivobook 16 (i5/16GB)", Platform: "Amazon", PriceText: "₹54,990", URL: "https://www.amazon.in/dp/B0CV8KRJQ1"},
	},
	"headphones": {
		{Title: "Sony WH-1000XM5 Wireless", Platform: "Amazon", PriceText: "₹26,990", URL: "https://www.amazon.in/dp/B09XS7JWHH"},
		{Title: "Sony WH-1000XM5 Wireless", Platform: "Flipkart", PriceText: "₹27,999", URL: "https://www.flipkart.com/sony-wh-1000xm5"},
		{Title: "boAt Rockerz 550", Platform: "Amazon", PriceText: "₹1,499", URL: "https://www.amazon.in/dp/B08347319F"},
	},
	"running shoes": {
		{Title: "Nike Revolution 7 Road Running", Platform: "Amazon", PriceText: "₹3,495", URL: "https://www.amazon.in/dp/B0CR1QYKXG"},
		{Title: "ASICS Gel-Contend 8", Platform: "Flipkart", PriceText: "₹3,199", URL: "https://www.flipkart.com/asics-gel-contend-8"},
	},
}

var groceryInventory = map[string][]domain.Offer{
	"milk": {
		{Title: "Amul Taaza Toned Milk 1L", Platform: "Blinkit", PriceText: "₹60"},
		{Title: "Amul Taaza Toned Milk 1L", Platform: "Zepto", PriceText: "₹62"},
	},
	"bread": {
		{Title: "Britannia Brown Bread 400g", Platform: "Blinkit", PriceText: "₹45"},
		{Title: "Harvest Gold White Bread 400g", Platform: "Zepto", PriceText: "₹42"},
	},
	"vegetables": {
		{Title: "Fresh Vegetables Combo 2kg", Platform: "Blinkit", PriceText: "₹180"},
		{Title: "Daily Veggies Pack 2kg", Platform: "Zepto", PriceText: "₹175"},
	},
	"fruits": {
		{Title: "Seasonal Fruits Basket 1.5kg", Platform: "Blinkit", PriceText: "₹240"},
		{Title: "Fruit Combo 1kg x 2", Platform: "Zepto", PriceText: "₹255"},
	},
	"groceries": {
		{Title: "Weekly Essentials Kit", Platform: "Blinkit", PriceText: "₹499"},
		{Title: "Household Staples Box", Platform: "Zepto", PriceText: "₹475"},
	},
}

// productKeys fixes the lookup order so a query matching several inventory
// keys always resolves to the same one.
var productKeys = []string{
	"iphone 15",
	"samsung galaxy s24",
	"macbook air",
	"laptop",
	"headphones",
	"running shoes",
}

// flightFares is base pricing per airline; the final fare varies by route.
var flightFares = []struct {
	airline  string
	flight   string
	platform string
	base     float64
}{
	{"IndiGo", "6E-203", "Google Flights", 4899},
	{"Air India", "AI-887", "MakeMyTrip", 5299},
	{"Vistara", "UK-955", "Cleartrip", 5799},
	{"SpiceJet", "SG-157", "Google Flights", 4599},
}

func (c *StaticCatalog) SearchProducts(ctx context.Context, name string) ([]domain.Offer, error) {
	lower := strings.ToLower(name)
	for _, key := range productKeys {
		if strings.Contains(lower, key) || strings.Contains(key, lower) {
			return withPrices(productInventory[key]), nil
		}
	}
	return nil, nil
}

func (c *StaticCatalog) SearchGroceries(ctx context.Context, items []string) ([]domain.ItemOffers, error) {
	result := make([]domain.ItemOffers, 0, len(items))
	for _, item := range items {
		offers, ok := groceryInventory[strings.ToLower(item)]
		if !ok {
			continue
		}
		priced := withPrices(offers)
		for i := range priced {
			priced[i].Quantity = pricing.ParseQuantity(priced[i].Title)
		}
		result = append(result, domain.ItemOffers{Item: item, Offers: priced, Quantity: 1})
	}
	return result, nil
}

func (c *StaticCatalog) SearchFlights(ctx context.Context, route domain.FlightRoute) ([]domain.Offer, error) {
	offers := make([]domain.Offer, 0, len(flightFares))
	for _, fare := range flightFares {
		price := fare.base + routeSurcharge(route)
		offers = append(offers, domain.Offer{
			Title:     fmt.Sprintf("%s %s %s-%s", fare.airline, fare.flight, route.Departure, route.Arrival),
			Platform:  fare.platform,
			PriceText: fmt.Sprintf("₹%.0f", price),
			Price:     price,
		})
	}
	return offers, nil
}

// routeSurcharge derives a stable per-route price offset so different
// routes show different fares.
func routeSurcharge(route domain.FlightRoute) float64 {
	sum := 0
	for _, r := range route.Departure + route.Arrival {
		sum += int(r)
	}
	return float64(sum % 1500)
}

// withPrices copies the offers with Price resolved from PriceText.
func withPrices(offers []domain.Offer) []domain.Offer {
	out := make([]domain.Offer, len(offers))
	copy(out, offers)
	for i := range out {
		out[i].Price = pricing.ExtractPrice(out[i].PriceText)
	}
	return out
}
