package domain

// Product is a priced catalog item. The cost components feed the pricing
// spreadsheet on the client side; the API stores them verbatim.
type Product struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Code              string  `json:"code,omitempty"`
	Unit              string  `json:"unit,omitempty"`
	CostRaw           float64 `json:"cost_raw"`
	CostPackaging     float64 `json:"cost_packaging"`
	CostLabor         float64 `json:"cost_labor"`
	CostLogisticsBase float64 `json:"cost_logistics_base"`
	CostTaxBase       float64 `json:"cost_tax_base"`
	CostOther         float64 `json:"cost_other"`
}
