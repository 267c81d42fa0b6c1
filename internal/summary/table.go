package summary

import (
	"slices"
	"strings"

	"busyness.nyctaxi.org/internal/metrics"
	"busyness.nyctaxi.org/internal/models"
)

// Table is the immutable in-memory busyness summary.
//
// A Table is built once before the HTTP server starts and is never modified
// afterwards, so any number of goroutines may read it without locking.
type Table struct {
	rows []models.SummaryRow
}

// NewTable returns a Table holding a private copy of rows, in the given order.
func NewTable(rows []models.SummaryRow) *Table {
	return &Table{rows: slices.Clone(rows)}
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns a copy of the table rows in load order.
func (t *Table) Rows() []models.SummaryRow {
	return slices.Clone(t.rows)
}

// Busyness returns the records for every row whose date equals date exactly
// and whose period equals period once lowercased. An empty date or period
// matches nothing.
//
// Records keep the table's row order. Rows with a location id that is not an
// integer are left out (see parseLocationID). The result is never nil, so an
// empty match encodes as [].
func (t *Table) Busyness(date, period string) []models.BusynessRecord {
	period = strings.ToLower(period)

	records := []models.BusynessRecord{}
	if date == "" || period == "" {
		metrics.RecordsReturned.Observe(0)
		return records
	}
	for _, row := range t.rows {
		if row.Date != date || row.Period != period {
			continue
		}

		locationID, ok := parseLocationID(row.LocationID)
		if !ok {
			metrics.DroppedRows.Inc()
			continue
		}

		records = append(records, models.NewBusynessRecord(row, locationID))
	}

	metrics.RecordsReturned.Observe(float64(len(records)))
	return records
}

// Dates returns the distinct non-empty dates in the table, sorted ascending.
func (t *Table) Dates() []string {
	seen := make(map[string]struct{}, len(t.rows))
	dates := []string{}
	for _, row := range t.rows {
		if row.Date == "" {
			continue
		}
		if _, ok := seen[row.Date]; ok {
			continue
		}
		seen[row.Date] = struct{}{}
		dates = append(dates, row.Date)
	}
	slices.Sort(dates)
	return dates
}

// Periods returns the distinct periods in order of first appearance.
func (t *Table) Periods() []string {
	seen := make(map[string]struct{})
	periods := []string{}
	for _, row := range t.rows {
		if row.Period == "" {
			continue
		}
		if _, ok := seen[row.Period]; ok {
			continue
		}
		seen[row.Period] = struct{}{}
		periods = append(periods, row.Period)
	}
	return periods
}
