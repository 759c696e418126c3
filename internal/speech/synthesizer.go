// Package speech renders structured weather requests into spoken sentences
// and drives the per-utterance response pipeline.
package speech

import (
	"math/rand"
	"strconv"

	"github.com/i474232898/voice-weather/internal/intent"
	"github.com/i474232898/voice-weather/internal/locale"
	"github.com/i474232898/voice-weather/internal/weather"
)

// Synthesizer composes the final spoken sentence for a request. The random
// source drives lexical variant selection and is injected so tests can pin
// outcomes.
type Synthesizer struct {
	locales *locale.Table
	rng     *rand.Rand
}

func NewSynthesizer(locales *locale.Table, rng *rand.Rand) *Synthesizer {
	return &Synthesizer{locales: locales, rng: rng}
}

// Render produces the sentence for one request against one decorated
// reading. The reading must already match the request's time window: the
// current reading for "current", the forecast entry otherwise.
func (s *Synthesizer) Render(in intent.Intent, lang string, reading weather.Reading) string {
	if !in.WantsWeather && !in.WantsTemperature {
		return s.locales.String(lang, "no_forecast", nil)
	}

	prefix, suffix := s.locationPlacement(in, lang)

	// Weather takes rendering priority when both flags are set.
	if in.WantsWeather {
		if sentence, ok := s.renderWeather(in, lang, reading, prefix, suffix); ok {
			return sentence
		}
		// Neither noun nor adjective exists for this language; fall through
		// to the plain temperature sentence.
	}

	return s.renderTemperature(in, lang, reading, prefix, suffix)
}

func (s *Synthesizer) renderWeather(in intent.Intent, lang string, reading weather.Reading, prefix, suffix string) (string, bool) {
	noun, plural, hasNoun := reading.Meta.Text.Noun(lang)
	adjective, hasAdjective := reading.Meta.Text.Adjective(lang)

	useAdjective := hasAdjective
	if hasNoun && hasAdjective {
		useAdjective = s.rng.Intn(2) == 0
	}
	if !hasNoun && !hasAdjective {
		return "", false
	}

	params := map[string]string{
		"prefix": prefix,
		"suffix": suffix,
		"temp":   strconv.Itoa(reading.Temperature),
		"low":    strconv.Itoa(reading.Low),
		"high":   strconv.Itoa(reading.High),
	}

	var key string
	if useAdjective {
		params["adjective"] = adjective
		key = "weather_forecast_adjective"
		if in.When.Kind == intent.KindCurrent {
			key = "weather_current_adjective"
		}
	} else {
		params["noun"] = noun
		params["copula"] = s.copula(lang, plural)
		key = "weather_forecast_noun"
		if in.When.Kind == intent.KindCurrent {
			key = "weather_current_noun"
		}
	}

	return s.locales.String(lang, key, params), true
}

func (s *Synthesizer) renderTemperature(in intent.Intent, lang string, reading weather.Reading, prefix, suffix string) string {
	params := map[string]string{
		"prefix": prefix,
		"suffix": suffix,
		"temp":   strconv.Itoa(reading.Temperature),
		"low":    strconv.Itoa(reading.Low),
		"high":   strconv.Itoa(reading.High),
	}

	switch in.When.Kind {
	case intent.KindCurrent:
		return s.locales.String(lang, "temperature_current", params)
	case intent.KindToday:
		// Present tense for today, future tense for a distant date.
		return s.locales.String(lang, "temperature_today", params)
	default:
		return s.locales.String(lang, "temperature_forecast", params)
	}
}

// locationPlacement returns the sentence prefix (normally the date
// transcript) and suffix, folding in the spoken location clause. English
// picks prepend/append pseudorandomly; other languages always append.
func (s *Synthesizer) locationPlacement(in intent.Intent, lang string) (prefix, suffix string) {
	prefix = in.When.Transcript
	if in.Location == "" {
		return prefix, ""
	}

	clause := s.locales.String(lang, "location_clause", map[string]string{"location": in.Location})
	if lang == "en" && s.rng.Intn(2) == 0 {
		return clause + ", " + prefix, ""
	}
	return prefix, " " + clause
}

func (s *Synthesizer) copula(lang string, plural bool) string {
	if plural {
		return s.locales.String(lang, "copula_plural", nil)
	}
	return s.locales.String(lang, "copula_singular", nil)
}
