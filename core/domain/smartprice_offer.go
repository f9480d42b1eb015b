package domain

// Offer is one candidate purchase option for a logical item, from one
// platform. Read-only once constructed.
type Offer struct {
	Title     string   `json:"title"`
	Platform  string   `json:"platform"`
	PriceText string   `json:"price_text"`
	Price     float64  `json:"price"` // Resolved from PriceText
	URL       string   `json:"url,omitempty"`
	Quantity  Quantity `json:"quantity,omitempty"` // Groceries only
}

// Quantity is optional unit metadata parsed from a grocery listing title,
// normalized to kg/l where possible.
type Quantity struct {
	Value float64 `json:"value,omitempty"`
	Unit  string  `json:"unit,omitempty"`
	Count int     `json:"count,omitempty"` // Pack multiplier, 1 when absent
}

// AnalyzedOffer is an Offer enriched with the best card's benefit. Derived
// per request, never persisted.
type AnalyzedOffer struct {
	Offer          Offer   `json:"offer"`
	OriginalPrice  float64 `json:"original_price"`
	Card           string  `json:"card"`
	Discount       float64 `json:"discount"`
	EffectivePrice float64 `json:"effective_price"`
	SavingsPercent float64 `json:"savings_percent"`
	Benefit        string  `json:"benefit"`
}

// ItemOffers is one requested item with its candidate offers.
type ItemOffers struct {
	Item     string
	Offers   []Offer
	Quantity int // Requested quantity, defaults to 1
}

// CartItem is the winning offer for one requested grocery item.
type CartItem struct {
	Item     string        `json:"item"`
	Selected AnalyzedOffer `json:"selected"`
	Quantity int           `json:"quantity"`
}

// Cart is an ordered sequence of cart items, in requested-item order.
type Cart struct {
	Items []CartItem `json:"items"`
}

// TotalCost is the sum of effective prices across the cart.
func (c *Cart) TotalCost() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Selected.EffectivePrice
	}
	return total
}

// TotalSavings is the sum of discounts across the cart.
func (c *Cart) TotalSavings() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Selected.Discount
	}
	return total
}

// PriceStats summarizes the price spread of a set of analyzed offers.
type PriceStats struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Average  float64 `json:"average"`
	Currency string  `json:"currency"`
}
