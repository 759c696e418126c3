// Package intent turns recognized speech triggers and time expressions into
// a structured weather request.
package intent

import (
	"strings"
	"time"

	"github.com/i474232898/voice-weather/internal/locale"
)

// Parser maps recognizer output onto an Intent. It owns no state beyond the
// locale table used for date transcripts.
type Parser struct {
	locales *locale.Table
}

func NewParser(locales *locale.Table) *Parser {
	return &Parser{locales: locales}
}

// Parse builds the Intent for one utterance. now anchors relative date
// resolution and is injected so tests can pin it.
//
// Each trigger sets exactly one field. Time expressions then override the
// date fields: none leaves the default ("current") untouched, exactly one
// resolves to a calendar date (collapsed to the "today" sentinel when it
// lands on now's date), and more than one aborts with ErrAmbiguousTime.
func (p *Parser) Parse(triggers []Trigger, times []TimeExpression, transcript, lang string, now time.Time) (Intent, error) {
	in := Intent{
		When: TargetDate{Kind: KindCurrent, Transcript: p.locales.String(lang, "currently", nil)},
	}

	locationStart := -1
	for _, t := range triggers {
		switch t.ID {
		case TriggerWeather:
			in.WantsWeather = true
		case TriggerTemperature:
			in.WantsTemperature = true
		case TriggerCurrent:
			in.When = TargetDate{Kind: KindCurrent, Transcript: p.locales.String(lang, "currently", nil)}
		case TriggerToday:
			in.When = TargetDate{Kind: KindToday, Transcript: p.locales.String(lang, "today", nil)}
		case TriggerLocation:
			locationStart = t.Position + t.Length
		}
	}

	if locationStart >= 0 && locationStart <= len(transcript) {
		// "in 2 hours" and "in Amsterdam" share the trigger word: when a
		// time expression occupies the span after the trigger, it is time,
		// not a place.
		if !timeOverlapsSpan(times, locationStart) {
			in.Location = strings.TrimSpace(transcript[locationStart:])
		}
	}

	switch len(times) {
	case 0:
		// Keep whatever the triggers decided.
	case 1:
		in.When = p.resolveDate(times[0], lang, now)
	default:
		return Intent{}, ErrAmbiguousTime
	}

	return in, nil
}

// resolveDate turns a spoken day/month(/year) into a target date. A missing
// year means the current one; a date equal to today collapses to the today
// sentinel so forecast index 0 keeps meaning "today" downstream.
func (p *Parser) resolveDate(expr TimeExpression, lang string, now time.Time) TargetDate {
	year := expr.Year
	if year == 0 {
		year = now.Year()
	}

	date := time.Date(year, time.Month(expr.Month+1), expr.Day, 0, 0, 0, 0, now.Location())
	if sameDay(date, now) {
		return TargetDate{Kind: KindToday, Transcript: p.locales.String(lang, "today", nil)}
	}
	return TargetDate{Kind: KindDate, Date: date, Transcript: expr.Transcript}
}

func timeOverlapsSpan(times []TimeExpression, start int) bool {
	for _, expr := range times {
		if expr.Position >= start {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
