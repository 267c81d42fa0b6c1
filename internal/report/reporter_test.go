package report

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/getsentry/sentry-go"
)

func TestReportRequestErrorAddsRequestTags(t *testing.T) {
	var captured *sentry.Event
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn: "https://public@sentry.example.com/1",
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			captured = event
			return nil
		},
	})
	if err != nil {
		t.Fatalf("Failed to create sentry client: %v", err)
	}
	hub := sentry.NewHub(client, sentry.NewScope())

	req := httptest.NewRequest("GET", "/api/busyness?date=2024-01-01", nil)
	req = req.WithContext(sentry.SetHubOnContext(req.Context(), hub))

	ReportRequestError(req, errors.New("render failed"), SentryReportOptions{
		Tags:  map[string]string{"route": "/"},
		Level: sentry.LevelError,
	})

	if captured == nil {
		t.Fatal("Expected an event to be captured on the request hub")
	}
	if captured.Tags["path"] != "/api/busyness" {
		t.Errorf("Expected path tag /api/busyness, got %q", captured.Tags["path"])
	}
	if captured.Tags["method"] != "GET" {
		t.Errorf("Expected method tag GET, got %q", captured.Tags["method"])
	}
	if captured.Tags["route"] != "/" {
		t.Errorf("Expected route tag /, got %q", captured.Tags["route"])
	}
	if captured.Level != sentry.LevelError {
		t.Errorf("Expected level error, got %q", captured.Level)
	}
}

func TestReportRequestErrorNil(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	ReportRequestError(req, nil, SentryReportOptions{})
}
