package intent

import (
	"errors"
	"testing"
	"time"

	"github.com/i474232898/voice-weather/internal/locale"
)

func newParser(t *testing.T) *Parser {
	t.Helper()
	tbl, err := locale.Load()
	if err != nil {
		t.Fatalf("locale.Load: %v", err)
	}
	return NewParser(tbl)
}

var now = time.Date(2016, time.August, 26, 12, 0, 0, 0, time.UTC)

func TestTriggersSetIndependentFlags(t *testing.T) {
	p := newParser(t)

	in, err := p.Parse([]Trigger{{ID: TriggerWeather}, {ID: TriggerTemperature}}, nil, "what is the weather and temperature", "en", now)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !in.WantsWeather || !in.WantsTemperature {
		t.Errorf("flags = %v/%v", in.WantsWeather, in.WantsTemperature)
	}
	if in.When.Kind != KindCurrent {
		t.Errorf("default date kind = %v", in.When.Kind)
	}

	in, err = p.Parse(nil, nil, "", "en", now)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if in.WantsWeather || in.WantsTemperature {
		t.Errorf("no triggers set flags: %+v", in)
	}
}

func TestTodayTrigger(t *testing.T) {
	p := newParser(t)
	in, err := p.Parse([]Trigger{{ID: TriggerWeather}, {ID: TriggerToday, Position: 20, Length: 5}}, nil, "what is the weather today", "en", now)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if in.When.Kind != KindToday || in.When.Transcript != "today" {
		t.Errorf("When = %+v", in.When)
	}
}

func TestTimeExpressionResolvesCalendarDate(t *testing.T) {
	p := newParser(t)

	// Day 15, month index 5 (June), year unspoken, with "now" in August:
	// resolves to 15 June of the current year.
	expr := TimeExpression{Day: 15, Month: 5, Transcript: "June fifteenth", Position: 0}
	in, err := p.Parse([]Trigger{{ID: TriggerWeather}}, []TimeExpression{expr}, "weather June fifteenth", "en", now)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if in.When.Kind != KindDate {
		t.Fatalf("kind = %v", in.When.Kind)
	}
	want := time.Date(2016, time.June, 15, 0, 0, 0, 0, time.UTC)
	if !in.When.Date.Equal(want) {
		t.Errorf("date = %v, want %v", in.When.Date, want)
	}
	if in.When.Transcript != "June fifteenth" {
		t.Errorf("transcript = %q", in.When.Transcript)
	}
}

func TestTimeExpressionCollapsesToToday(t *testing.T) {
	p := newParser(t)

	// The spoken date equals today: collapse to the today sentinel with the
	// localized transcript, not the literal date.
	expr := TimeExpression{Day: 26, Month: 7, Transcript: "August twenty-sixth"}
	in, err := p.Parse([]Trigger{{ID: TriggerWeather}}, []TimeExpression{expr}, "weather August twenty-sixth", "en", now)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if in.When.Kind != KindToday {
		t.Fatalf("kind = %v, want today sentinel", in.When.Kind)
	}
	if in.When.Transcript != "today" {
		t.Errorf("transcript = %q, want localized today", in.When.Transcript)
	}
}

func TestTwoTimeExpressionsAbort(t *testing.T) {
	p := newParser(t)
	times := []TimeExpression{
		{Day: 27, Month: 7, Transcript: "tomorrow"},
		{Day: 28, Month: 7, Transcript: "sunday"},
	}
	_, err := p.Parse([]Trigger{{ID: TriggerWeather}}, times, "weather tomorrow or sunday", "en", now)
	if !errors.Is(err, ErrAmbiguousTime) {
		t.Fatalf("err = %v, want ErrAmbiguousTime", err)
	}
}

func TestLocationOverrideCapturesTrailingText(t *testing.T) {
	p := newParser(t)
	transcript := "what is the weather in Amsterdam"
	triggers := []Trigger{
		{ID: TriggerWeather, Position: 12, Length: 7},
		{ID: TriggerLocation, Position: 20, Length: 2},
	}
	in, err := p.Parse(triggers, nil, transcript, "en", now)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if in.Location != "Amsterdam" {
		t.Errorf("location = %q", in.Location)
	}
}

func TestTimeExpressionBeatsLocationOnOverlap(t *testing.T) {
	p := newParser(t)
	transcript := "what is the weather in 2 days"
	triggers := []Trigger{
		{ID: TriggerWeather, Position: 12, Length: 7},
		{ID: TriggerLocation, Position: 20, Length: 2},
	}
	times := []TimeExpression{{Day: 28, Month: 7, Transcript: "in 2 days", Position: 20}}

	in, err := p.Parse(triggers, times, transcript, "en", now)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if in.Location != "" {
		t.Errorf("overlapping span parsed as location %q, want time", in.Location)
	}
	if in.When.Kind != KindDate {
		t.Errorf("kind = %v", in.When.Kind)
	}
}

func TestDutchTranscripts(t *testing.T) {
	p := newParser(t)
	in, err := p.Parse([]Trigger{{ID: TriggerToday}}, nil, "wat voor weer is het vandaag", "nl", now)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if in.When.Transcript != "vandaag" {
		t.Errorf("transcript = %q", in.When.Transcript)
	}
}
