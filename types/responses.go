package types

// DailyConsumptionResponse aggregates all consumption entries of a day
type DailyConsumptionResponse struct {
	Date         string             `json:"date"`
	Entries      []ConsumptionEntry `json:"entries"`
	TotalProtein float64            `json:"total_protein"`
}

// DatabaseStatus describes storage connectivity for the diagnostic endpoint
type DatabaseStatus struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
