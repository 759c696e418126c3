// Package automation exposes the named flow conditions evaluated against
// the poller's observation history.
package automation

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/i474232898/voice-weather/internal/common"
	"github.com/i474232898/voice-weather/internal/poller"
)

// ErrUnknownCondition is returned for names no handler was registered under.
var ErrUnknownCondition = errors.New("unknown automation condition")

// Handler evaluates one condition against its arguments.
type Handler func(args map[string]string) (bool, error)

// History is the slice of the observation store the built-ins read.
type History interface {
	Latest() (poller.Observation, error)
	LastTwo() (prev, latest poller.Observation, err error)
}

// Registry maps condition names to handlers.
type Registry struct {
	handlers map[string]Handler
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a condition handler; later registrations win.
func (r *Registry) Register(name string, h Handler) {
	r.handlers[name] = h
}

// Evaluate runs the handler registered under name.
func (r *Registry) Evaluate(name string, args map[string]string) (bool, error) {
	h, ok := r.handlers[name]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownCondition, name)
	}
	return h(args)
}

// RegisterBuiltins wires the standard conditions against hist.
func RegisterBuiltins(r *Registry, hist History) {
	r.Register("temperature_above", func(args map[string]string) (bool, error) {
		threshold, err := strconv.ParseFloat(args["threshold"], 64)
		if err != nil {
			return false, fmt.Errorf("temperature_above: bad threshold %q", args["threshold"])
		}
		latest, err := hist.Latest()
		if err != nil {
			return false, err
		}
		temp, err := scalarFloat(latest, "temperature")
		if err != nil {
			return false, err
		}
		return temp > threshold, nil
	})

	r.Register("temperature_rising", trendCondition(hist, func(prev, latest float64) bool {
		return latest > prev
	}))
	r.Register("temperature_falling", trendCondition(hist, func(prev, latest float64) bool {
		return latest < prev
	}))

	r.Register("atmosphere_rising", func(map[string]string) (bool, error) {
		latest, err := hist.Latest()
		if err != nil {
			return false, err
		}
		return latest.Groups["atmosphere"]["rising"] == "1", nil
	})

	r.Register("weather_is", func(args map[string]string) (bool, error) {
		want := args["type"]
		if want == "" {
			return false, errors.New("weather_is: missing type argument")
		}
		latest, err := hist.Latest()
		if err != nil {
			return false, err
		}
		// Compound types like "rain and snow" match their parts.
		return common.HasAny(latest.Scalars["weather_type"], want), nil
	})
}

func trendCondition(hist History, cmp func(prev, latest float64) bool) Handler {
	return func(map[string]string) (bool, error) {
		prev, latest, err := hist.LastTwo()
		if err != nil {
			return false, err
		}
		prevTemp, err := scalarFloat(prev, "temperature")
		if err != nil {
			return false, err
		}
		latestTemp, err := scalarFloat(latest, "temperature")
		if err != nil {
			return false, err
		}
		return cmp(prevTemp, latestTemp), nil
	}
}

func scalarFloat(obs poller.Observation, name string) (float64, error) {
	v, err := strconv.ParseFloat(obs.Scalars[name], 64)
	if err != nil {
		return 0, fmt.Errorf("observation scalar %s is not numeric: %q", name, obs.Scalars[name])
	}
	return v, nil
}
