package app

import (
	"bytes"
	"net/http"

	"github.com/getsentry/sentry-go"

	"busyness.nyctaxi.org/internal/middleware"
	"busyness.nyctaxi.org/internal/report"
	"busyness.nyctaxi.org/internal/views"
)

// HealthStatus is the JSON body of /v1/healthcheck.
//
// The healthcheck is a liveness check. The server only starts listening after
// the summary has loaded, so a running process always reports Ready true;
// Ready false with a 500 is only produced for an Application built without a
// table. SummaryRows is the number of rows held; an empty summary is still ready.
type HealthStatus struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
	SummaryRows int    `json:"summary_rows"`
	Ready       bool   `json:"ready"`
}

// healthcheckHandler responds with the application's health status, using
// HTTP 500 while it is not ready.
func (app *Application) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	ready := app.Summary != nil

	status := HealthStatus{
		Status:      "available",
		Environment: app.Config.Env,
		Version:     app.Version,
		Ready:       ready,
	}
	if ready {
		status.SummaryRows = app.Summary.Len()
	}

	code := http.StatusOK
	if !ready {
		code = http.StatusInternalServerError
	}
	app.writeJSON(w, code, status)
}

// indexHandler renders the landing page with every distinct date in the summary.
func (app *Application) indexHandler(w http.ResponseWriter, r *http.Request) {
	data := views.IndexData{
		Dates:   app.Summary.Dates(),
		Periods: app.Summary.Periods(),
		Version: app.Version,
	}

	var buf bytes.Buffer
	if err := views.RenderIndex(&buf, data); err != nil {
		app.Logger.Error("Failed to render index page", "error", err,
			"request_id", middleware.RequestIDFromContext(r.Context()))
		report.ReportRequestError(r, err, report.SentryReportOptions{
			Level: sentry.LevelError,
		})
		app.writeError(w, http.StatusInternalServerError, "failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		app.Logger.Error("Failed to write index page", "error", err)
	}
}

// busynessHandler answers GET /api/busyness?date=...&period=...
//
// Both parameters are required; an absent or empty one is a client error.
// A query with no matching rows returns an empty array.
func (app *Application) busynessHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	date := query.Get("date")
	period := query.Get("period")

	if date == "" || period == "" {
		app.writeError(w, http.StatusBadRequest, "Missing date or period")
		return
	}

	records := app.Summary.Busyness(date, period)

	app.Logger.Debug("Served busyness query",
		"date", date,
		"period", period,
		"records", len(records),
		"request_id", middleware.RequestIDFromContext(r.Context()),
	)

	app.writeJSON(w, http.StatusOK, records)
}

// datesHandler returns the distinct sorted dates as a JSON array.
func (app *Application) datesHandler(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, http.StatusOK, app.Summary.Dates())
}
