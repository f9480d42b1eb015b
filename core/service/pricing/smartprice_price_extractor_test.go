package pricing

import (
	"testing"
)

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{
			name: "rupee symbol with comma grouping",
			text: "₹61,499",
			want: 61499.0,
		},
		{
			name: "Rs with dot and space",
			text: "Rs. 500",
			want: 500.0,
		},
		{
			name: "Rs without dot",
			text: "Rs 1,299",
			want: 1299.0,
		},
		{
			name: "INR prefix",
			text: "INR 4500.50",
			want: 4500.50,
		},
		{
			name: "rupee symbol after number",
			text: "999 ₹",
			want: 999.0,
		},
		{
			name: "symbol with space before digits",
			text: "₹ 2,34,567",
			want: 234567.0,
		},
		{
			name: "embedded in listing title",
			text: "Apple iPhone 15 (128GB) - ₹61,499 deal",
			want: 61499.0,
		},
		{
			name: "no price marker",
			text: "no price here",
			want: 0.0,
		},
		{
			name: "bare number without currency marker",
			text: "iPhone 15 128GB",
			want: 0.0,
		},
		{
			name: "empty string",
			text: "",
			want: 0.0,
		},
		{
			name: "symbol pattern wins over Rs pattern",
			text: "₹100 or Rs 200",
			want: 100.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPrice(tt.text)
			if got != tt.want {
				t.Errorf("ExtractPrice(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantValue float64
		wantUnit  string
		wantCount int
	}{
		{
			name:      "grams normalize to kg",
			text:      "Aashirvaad Atta 500g",
			wantValue: 0.5,
			wantUnit:  "kg",
			wantCount: 1,
		},
		{
			name:      "millilitres normalize to litres",
			text:      "Amul Taaza 500ml",
			wantValue: 0.5,
			wantUnit:  "l",
			wantCount: 1,
		},
		{
			name:      "plain kilograms",
			text:      "Basmati Rice 5kg",
			wantValue: 5,
			wantUnit:  "kg",
			wantCount: 1,
		},
		{
			name:      "pack combo",
			text:      "Butter 350g x 2",
			wantValue: 0.35,
			wantUnit:  "kg",
			wantCount: 2,
		},
		{
			name:      "no unit present",
			text:      "Fresh Bread",
			wantValue: 0,
			wantUnit:  "",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseQuantity(tt.text)
			if got.Value != tt.wantValue || got.Unit != tt.wantUnit || got.Count != tt.wantCount {
				t.Errorf("ParseQuantity(%q) = %+v, want value=%v unit=%q count=%d",
					tt.text, got, tt.wantValue, tt.wantUnit, tt.wantCount)
			}
		})
	}
}
