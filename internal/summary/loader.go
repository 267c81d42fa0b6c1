package summary

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"busyness.nyctaxi.org/internal/metrics"
	"busyness.nyctaxi.org/internal/models"
)

// summaryQuery joins the precomputed result view with the zone reference table,
// keeping Manhattan zones only. Dates and location ids are read as text so the
// table holds the database's own representation of them.
const summaryQuery = `
	SELECT
		CAST(r.date AS TEXT) AS date,
		lower(r.bucket) AS period,
		CAST(tz.locationid AS TEXT) AS location_id,
		r.zone AS zone,
		r.people AS ridership,
		r.category AS category
	FROM public.result r
	JOIN public.taxi_zones tz
	  ON r.zone = tz.zone
	WHERE r.zone IS NOT NULL
	  AND tz.borough = 'Manhattan'
`

// Load runs the summary query once and materializes every row into a Table.
//
// The returned Table is a complete snapshot; there are no partial results.
// Any error from the query, a row scan, or the row iteration is returned and
// the caller is expected to abort startup. There is no retry.
func Load(ctx context.Context, db *sql.DB, logger *slog.Logger) (*Table, error) {
	start := time.Now()

	rows, err := db.QueryContext(ctx, summaryQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query busyness summary: %w", err)
	}
	defer rows.Close()

	var loaded []models.SummaryRow
	for rows.Next() {
		row, err := scanSummaryRow(rows)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read busyness summary rows: %w", err)
	}

	elapsed := time.Since(start)
	metrics.SummaryRows.Set(float64(len(loaded)))
	metrics.SummaryLoadDuration.Set(elapsed.Seconds())

	logger.Info("Loaded busyness summary", "rows", len(loaded), "duration", elapsed)

	return NewTable(loaded), nil
}

// scanSummaryRow reads one result row. Nullable columns other than zone are
// read into their zero value; a NULL date is kept as "" and never listed or matched.
func scanSummaryRow(rows *sql.Rows) (models.SummaryRow, error) {
	var (
		date       sql.NullString
		period     sql.NullString
		locationID sql.NullString
		zone       string
		ridership  sql.NullFloat64
		category   sql.NullString
	)

	if err := rows.Scan(&date, &period, &locationID, &zone, &ridership, &category); err != nil {
		return models.SummaryRow{}, fmt.Errorf("failed to scan busyness summary row: %w", err)
	}

	return models.SummaryRow{
		Date:       date.String,
		Period:     period.String,
		LocationID: locationID.String,
		Zone:       zone,
		Ridership:  ridership.Float64,
		Category:   category.String,
	}, nil
}
