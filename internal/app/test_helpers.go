package app

import (
	"io"
	"log/slog"
	"testing"

	"busyness.nyctaxi.org/internal/config"
	"busyness.nyctaxi.org/internal/models"
	"busyness.nyctaxi.org/internal/summary"
)

// testRows is the summary used by the handler tests. The Unknown Zone row has
// a malformed location id and must never appear in responses.
var testRows = []models.SummaryRow{
	{Date: "2024-01-02", Period: "morning", LocationID: "43", Zone: "Central Park", Ridership: 80, Category: "medium"},
	{Date: "2024-01-01", Period: "morning", LocationID: "12", Zone: "Midtown", Ridership: 150.0, Category: "high"},
	{Date: "2024-01-01", Period: "morning", LocationID: "not-a-number", Zone: "Unknown Zone", Ridership: 1, Category: "low"},
	{Date: "2024-01-01", Period: "night", LocationID: "12", Zone: "Midtown", Ridership: 20, Category: "low"},
}

func newTestApplication(t *testing.T) *Application {
	t.Helper()

	cfg := config.Default()
	cfg.Env = "testing"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return New(cfg, summary.NewTable(testRows), logger, "test-version")
}
