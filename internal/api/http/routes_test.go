package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/voice-weather/internal/automation"
	"github.com/i474232898/voice-weather/internal/poller"
	"github.com/i474232898/voice-weather/internal/speech"
	"github.com/i474232898/voice-weather/internal/store"
)

type stubResponder struct {
	last  speech.Utterance
	reply string
}

func (s *stubResponder) HandleUtterance(_ context.Context, utt speech.Utterance) string {
	s.last = utt
	return s.reply
}

func newTestApp(responder *stubResponder, history *store.MemoryStore) *fiber.App {
	app := fiber.New()
	registry := automation.NewRegistry()
	automation.RegisterBuiltins(registry, history)
	RegisterRoutes(app, responder, history, registry)
	return app
}

func postUtterance(app *fiber.App, body string) (*http.Response, error) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/utterance", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return app.Test(req)
}

func TestUtteranceEndpoint(t *testing.T) {
	responder := &stubResponder{reply: "at this moment, it is rainy and the temperature is 18 degrees"}
	app := newTestApp(responder, store.NewMemoryStore(10))

	body := `{
		"transcript": "what is the weather",
		"language": "en",
		"triggers": [{"id": "weather", "position": 12, "length": 7}],
		"location": {"latitude": 51.92, "longitude": 4.47}
	}`
	resp, err := postUtterance(app, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var out map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out["spoken"] != responder.reply {
		t.Errorf("spoken = %q", out["spoken"])
	}

	if len(responder.last.Triggers) != 1 || responder.last.Triggers[0].ID != "weather" {
		t.Errorf("triggers = %+v", responder.last.Triggers)
	}
	if responder.last.Location.Latitude != 51.92 {
		t.Errorf("location = %+v", responder.last.Location)
	}
}

func TestUtteranceValidation(t *testing.T) {
	app := newTestApp(&stubResponder{}, store.NewMemoryStore(10))

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"transcript": `},
		{"missing transcript", `{"language": "en"}`},
		{"missing language", `{"transcript": "what is the weather"}`},
		{"unknown trigger id", `{"transcript": "x", "language": "en", "triggers": [{"id": "humidity"}]}`},
		{"month out of range", `{"transcript": "x", "language": "en", "times": [{"day": 1, "month": 12, "transcript": "y"}]}`},
	}
	for _, tc := range cases {
		resp, err := postUtterance(app, tc.body)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: expected status %d, got %d", tc.name, http.StatusBadRequest, resp.StatusCode)
		}
	}
}

func TestLatestObservationEndpoint(t *testing.T) {
	history := store.NewMemoryStore(10)
	app := newTestApp(&stubResponder{}, history)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/observation/latest", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("empty store: expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}

	history.Append(poller.Observation{
		Scalars: map[string]string{"temperature": "18", "weather_type": "shower"},
		Groups:  map[string]map[string]string{"wind": {"speed": "23"}},
	})

	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var obs poller.Observation
	if err := json.NewDecoder(resp.Body).Decode(&obs); err != nil {
		t.Fatalf("decode observation: %v", err)
	}
	if obs.Scalars["temperature"] != "18" {
		t.Errorf("observation = %+v", obs)
	}
}

func TestConditionEndpoint(t *testing.T) {
	history := store.NewMemoryStore(10)
	app := newTestApp(&stubResponder{}, history)

	history.Append(poller.Observation{
		Scalars: map[string]string{"temperature": "18", "weather_type": "shower"},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/condition/temperature_above", strings.NewReader(`{"threshold": "15"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	var out map[string]bool
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if !out["result"] {
		t.Error("18 above 15 should hold")
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/condition/barometer_exploding", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}
