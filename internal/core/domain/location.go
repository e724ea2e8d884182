package domain

// Location is a delivery region with its freight and tax adjustments.
type Location struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	State              string  `json:"state,omitempty"`
	City               string  `json:"city,omitempty"`
	Freight            float64 `json:"freight"`
	ExtraTaxPercent    float64 `json:"extra_tax_percent"`
	OtherAdjustPercent float64 `json:"other_adjust_percent"`
}
