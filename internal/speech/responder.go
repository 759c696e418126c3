package speech

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/voice-weather/internal/intent"
	"github.com/i474232898/voice-weather/internal/locale"
	"github.com/i474232898/voice-weather/internal/location"
	"github.com/i474232898/voice-weather/internal/weather"
)

// forecastDateLayout matches the provider's forecast entry dates.
const forecastDateLayout = "2 Jan 2006"

// Fetcher is the slice of the weather gateway the responder needs.
type Fetcher interface {
	Fetch(ctx context.Context, place, unit string) (weather.Snapshot, error)
}

// Utterance is one recognized-speech event as delivered by the host
// platform: the transcript, matched triggers, recognized time expressions,
// and the device geolocation if one was available at recognition time.
type Utterance struct {
	Transcript string
	Language   string
	Triggers   []intent.Trigger
	Times      []intent.TimeExpression
	Location   location.Location
}

// Responder runs the per-utterance pipeline: parse, resolve, fetch, render,
// speak. Exactly one utterance is spoken per recognized-speech event, even
// when the pipeline outlives the bounded wait.
type Responder struct {
	parser   *intent.Parser
	resolver *location.Resolver
	defaults *location.DefaultCache
	gateway  Fetcher
	synth    *Synthesizer
	speaker  Speaker
	locales  *locale.Table
	unit     string
	timeout  time.Duration
	now      func() time.Time
}

func NewResponder(
	parser *intent.Parser,
	resolver *location.Resolver,
	defaults *location.DefaultCache,
	gateway Fetcher,
	synth *Synthesizer,
	speaker Speaker,
	locales *locale.Table,
	unit string,
	timeout time.Duration,
) *Responder {
	return &Responder{
		parser:   parser,
		resolver: resolver,
		defaults: defaults,
		gateway:  gateway,
		synth:    synth,
		speaker:  speaker,
		locales:  locales,
		unit:     unit,
		timeout:  timeout,
		now:      time.Now,
	}
}

// HandleUtterance answers one recognized utterance and returns the spoken
// text. The pipeline runs under a bounded wait: past the deadline a timeout
// apology is spoken and a late result is discarded. The result channel is
// buffered so the late sender can never block or double-speak.
func (r *Responder) HandleUtterance(ctx context.Context, utt Utterance) string {
	id := uuid.NewString()

	result := make(chan string, 1)
	go func() {
		result <- r.respond(ctx, utt, id)
	}()

	timer := time.NewTimer(r.timeout)
	defer timer.Stop()

	var text string
	select {
	case text = <-result:
	case <-timer.C:
		log.Printf("responder[%s]: timed out after %s", id, r.timeout)
		text = r.locales.String(utt.Language, "apology_timeout", nil)
	}

	r.speaker.Speak(text)
	return text
}

// respond produces the response text, mapping every failure to its spoken
// apology. It never speaks itself; HandleUtterance owns the single Speak.
func (r *Responder) respond(ctx context.Context, utt Utterance, id string) string {
	lang := utt.Language

	in, err := r.parser.Parse(utt.Triggers, utt.Times, utt.Transcript, lang, r.now())
	if err != nil {
		if errors.Is(err, intent.ErrAmbiguousTime) {
			return r.locales.String(lang, "clarify_time", nil)
		}
		log.Printf("responder[%s]: parse failed: %v", id, err)
		return r.locales.String(lang, "apology_generic", nil)
	}

	loc, ok := r.requestLocation(in, utt)
	if !ok {
		return r.locales.String(lang, "apology_location", nil)
	}

	place, err := r.resolver.Resolve(ctx, loc)
	if err != nil {
		log.Printf("responder[%s]: resolve failed: %v", id, err)
		if errors.Is(err, location.ErrUnresolvable) {
			return r.locales.String(lang, "apology_location", nil)
		}
		return r.locales.String(lang, "apology_generic", nil)
	}

	snap, err := r.gateway.Fetch(ctx, place, r.unit)
	if err != nil {
		log.Printf("responder[%s]: fetch failed for %s: %v", id, place, err)
		if errors.Is(err, weather.ErrNoData) {
			return r.locales.String(lang, "apology_nodata", nil)
		}
		return r.locales.String(lang, "apology_generic", nil)
	}

	reading, ok := r.selectReading(in, snap)
	if !ok {
		return r.locales.String(lang, "no_forecast", nil)
	}

	return r.synth.Render(in, lang, reading)
}

// requestLocation picks the location for this request: the spoken override
// (coordinates discarded), then the device geolocation (which also refreshes
// the process-wide fallback), then the cached fallback.
func (r *Responder) requestLocation(in intent.Intent, utt Utterance) (location.Location, bool) {
	if in.Location != "" {
		return location.Location{Name: in.Location}.Normalize(), true
	}
	if !utt.Location.IsZero() {
		r.defaults.Update(utt.Location)
		return utt.Location, true
	}
	if loc, ok := r.defaults.Get(); ok {
		return loc, true
	}
	return location.Location{}, false
}

// selectReading maps the request's time window onto one reading of the
// snapshot. Forecast index 0 is always today.
func (r *Responder) selectReading(in intent.Intent, snap weather.Snapshot) (weather.Reading, bool) {
	switch in.When.Kind {
	case intent.KindCurrent:
		return snap.Current, true
	case intent.KindToday:
		if len(snap.Forecasts) == 0 {
			return weather.Reading{}, false
		}
		return snap.Forecasts[0], true
	default:
		for _, fc := range snap.Forecasts {
			date, err := time.Parse(forecastDateLayout, fc.Date)
			if err != nil {
				continue
			}
			if date.Year() == in.When.Date.Year() && date.YearDay() == in.When.Date.YearDay() {
				return fc, true
			}
		}
		return weather.Reading{}, false
	}
}
