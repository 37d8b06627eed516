package types

// ItemRequest contains the request for creating a food item
type ItemRequest struct {
	Name           string  `json:"name"`
	Unit           string  `json:"unit"`
	ProteinPerUnit float64 `json:"protein_per_unit"`
}

// ConsumptionRequest contains the request for logging a consumption
type ConsumptionRequest struct {
	Date     string  `json:"date"`
	ItemID   string  `json:"item_id"`
	Quantity float64 `json:"quantity"`
}
