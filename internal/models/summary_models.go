package models

// SummaryRow is one row of the busyness summary loaded at startup.
// It mirrors the join of the result view and the taxi_zones table.
//
// IMPORTANT:
// LocationID is kept as the raw text read from the database. It is only
// converted to an integer when a row is projected into a BusynessRecord,
// so a malformed id never prevents the summary from loading.
type SummaryRow struct {
	Date       string
	Period     string
	LocationID string
	Zone       string
	Ridership  float64
	Category   string
}

// BusynessRecord is the JSON projection of a SummaryRow served by /api/busyness.
type BusynessRecord struct {
	LocationID int     `json:"location_id"`
	Zone       string  `json:"zone"`
	Ridership  float64 `json:"ridership"`
	Category   string  `json:"category"`
}

// NewBusynessRecord builds the projection of row using an already converted location id.
func NewBusynessRecord(row SummaryRow, locationID int) BusynessRecord {
	return BusynessRecord{
		LocationID: locationID,
		Zone:       row.Zone,
		Ridership:  row.Ridership,
		Category:   row.Category,
	}
}
