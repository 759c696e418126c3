package intent

import (
	"errors"
	"time"
)

// ErrAmbiguousTime is returned when an utterance carries more than one time
// expression; the responder answers with a clarification request instead of
// a forecast.
var ErrAmbiguousTime = errors.New("more than one time expression recognized")

// DateKind distinguishes the three time windows a request can target.
type DateKind int

const (
	// KindCurrent asks about this very moment.
	KindCurrent DateKind = iota
	// KindToday asks about the whole of today; forecast index 0.
	KindToday
	// KindDate asks about a specific future calendar date.
	KindDate
)

// TargetDate is the resolved time window plus the localized phrase spoken
// back when referring to it.
type TargetDate struct {
	Kind       DateKind
	Date       time.Time // set for KindDate only
	Transcript string
}

// Intent is the structured interpretation of a recognized utterance.
// WantsWeather and WantsTemperature are independent; all four combinations
// are legal and the synthesizer renders each one.
type Intent struct {
	WantsWeather     bool
	WantsTemperature bool
	When             TargetDate
	Location         string
}

// Trigger is one recognized speech trigger. Position/Length locate the
// matched text inside the transcript so the parser can lift the words that
// follow it (the spoken location).
type Trigger struct {
	ID       string `json:"id" validate:"required,oneof=weather temperature current today location"`
	Position int    `json:"position" validate:"gte=0"`
	Length   int    `json:"length" validate:"gte=0"`
}

// Trigger IDs the recognizer produces.
const (
	TriggerWeather     = "weather"
	TriggerTemperature = "temperature"
	TriggerCurrent     = "current"
	TriggerToday       = "today"
	TriggerLocation    = "location"
)

// TimeExpression is a recognized spoken time reference. Month is the
// recognizer's 0-based month index; Year is 0 when unspoken.
type TimeExpression struct {
	Day        int    `json:"day" validate:"gte=1,lte=31"`
	Month      int    `json:"month" validate:"gte=0,lte=11"`
	Year       int    `json:"year" validate:"gte=0"`
	Transcript string `json:"transcript"`
	Position   int    `json:"position" validate:"gte=0"`
}
