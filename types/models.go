package types

// Item represents a food reference with its protein content per unit.
// Items are immutable once created; there is no update or delete.
type Item struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Unit           string  `json:"unit"`
	ProteinPerUnit float64 `json:"protein_per_unit"`
}

// ConsumptionEntry represents a quantity of an item consumed on a date.
// Item fields are snapshotted at creation time so the record stays a
// faithful historical entry even if the catalog ever changes.
type ConsumptionEntry struct {
	ID             string  `json:"id"`
	Date           string  `json:"date"`
	ItemID         string  `json:"item_id"`
	ItemName       string  `json:"item_name"`
	Unit           string  `json:"unit"`
	Quantity       float64 `json:"quantity"`
	ProteinPerUnit float64 `json:"protein_per_unit"`
	ProteinTotal   float64 `json:"protein_total"`
}
