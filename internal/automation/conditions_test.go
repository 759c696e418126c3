package automation

import (
	"errors"
	"testing"

	"github.com/i474232898/voice-weather/internal/poller"
	"github.com/i474232898/voice-weather/internal/store"
)

func seededHistory(temps ...string) *store.MemoryStore {
	s := store.NewMemoryStore(10)
	for _, temp := range temps {
		s.Append(poller.Observation{
			Groups: map[string]map[string]string{
				"atmosphere": {"rising": "1"},
			},
			Scalars: map[string]string{
				"temperature":  temp,
				"weather_type": "rain and snow",
			},
		})
	}
	return s
}

func newRegistry(temps ...string) *Registry {
	r := NewRegistry()
	RegisterBuiltins(r, seededHistory(temps...))
	return r
}

func TestUnknownCondition(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Evaluate("nope", nil); !errors.Is(err, ErrUnknownCondition) {
		t.Errorf("err = %v, want ErrUnknownCondition", err)
	}
}

func TestTemperatureAbove(t *testing.T) {
	r := newRegistry("18")

	got, err := r.Evaluate("temperature_above", map[string]string{"threshold": "15"})
	if err != nil || !got {
		t.Errorf("above 15: got=%v err=%v", got, err)
	}
	got, err = r.Evaluate("temperature_above", map[string]string{"threshold": "20"})
	if err != nil || got {
		t.Errorf("above 20: got=%v err=%v", got, err)
	}
	if _, err := r.Evaluate("temperature_above", map[string]string{"threshold": "warm"}); err == nil {
		t.Error("expected an error for a non-numeric threshold")
	}
}

func TestTemperatureTrends(t *testing.T) {
	rising := newRegistry("15", "18")
	got, err := rising.Evaluate("temperature_rising", nil)
	if err != nil || !got {
		t.Errorf("rising: got=%v err=%v", got, err)
	}
	got, err = rising.Evaluate("temperature_falling", nil)
	if err != nil || got {
		t.Errorf("falling on rising data: got=%v err=%v", got, err)
	}

	// One observation is not enough for a trend.
	short := newRegistry("15")
	if _, err := short.Evaluate("temperature_rising", nil); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("trend with one observation: err = %v", err)
	}
}

func TestAtmosphereRising(t *testing.T) {
	r := newRegistry("18")
	got, err := r.Evaluate("atmosphere_rising", nil)
	if err != nil || !got {
		t.Errorf("got=%v err=%v", got, err)
	}
}

func TestWeatherIsMatchesCompoundTypes(t *testing.T) {
	r := newRegistry("18")

	for _, want := range []string{"rain", "snow", "rain and snow"} {
		got, err := r.Evaluate("weather_is", map[string]string{"type": want})
		if err != nil || !got {
			t.Errorf("weather_is %q: got=%v err=%v", want, got, err)
		}
	}
	got, err := r.Evaluate("weather_is", map[string]string{"type": "sun"})
	if err != nil || got {
		t.Errorf("weather_is sun: got=%v err=%v", got, err)
	}
	if _, err := r.Evaluate("weather_is", nil); err == nil {
		t.Error("expected an error without a type argument")
	}
}
