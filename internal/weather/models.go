package weather

import (
	"errors"
	"strconv"

	"github.com/i474232898/voice-weather/internal/conditions"
)

// ErrNoData is returned when the provider answers with a structurally empty
// result twice in a row for the same query.
var ErrNoData = errors.New("no weather data for location")

// The provider wraps everything in query.results.channel and reports every
// numeric field as a string. The raw shapes below mirror that contract; the
// gateway converts them into decorated Readings.

type envelope struct {
	Query struct {
		Results *results `json:"results"`
	} `json:"query"`
}

type results struct {
	Channel channel `json:"channel"`
}

type channel struct {
	Item       item       `json:"item"`
	Wind       Wind       `json:"wind"`
	Atmosphere Atmosphere `json:"atmosphere"`
	Astronomy  Astronomy  `json:"astronomy"`
}

type item struct {
	Condition currentCondition `json:"condition"`
	Forecast  []forecastEntry  `json:"forecast"`
}

type currentCondition struct {
	Code string `json:"code"`
	Date string `json:"date"`
	Temp string `json:"temp"`
	Text string `json:"text"`
}

type forecastEntry struct {
	Code string `json:"code"`
	Date string `json:"date"`
	Day  string `json:"day"`
	High string `json:"high"`
	Low  string `json:"low"`
	Text string `json:"text"`
}

// Wind is the channel-level wind block.
type Wind struct {
	Chill     string `json:"chill"`
	Direction string `json:"direction"`
	Speed     string `json:"speed"`
}

// Atmosphere is the channel-level atmosphere block. Pressure is only correct
// under the unit system of the current-conditions query; the gateway patches
// it accordingly.
type Atmosphere struct {
	Humidity   string `json:"humidity"`
	Pressure   string `json:"pressure"`
	Rising     string `json:"rising"`
	Visibility string `json:"visibility"`
}

// Astronomy is the channel-level astronomy block.
type Astronomy struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

// Reading is a decorated weather record: raw provider fields merged with the
// condition metadata for its code. Current readings carry Temperature plus
// the wind/atmosphere/astronomy blocks; forecast readings carry Date, Low
// and High.
type Reading struct {
	Date        string              `json:"date,omitempty"`
	Temperature int                 `json:"temperature,omitempty"`
	Low         int                 `json:"low,omitempty"`
	High        int                 `json:"high,omitempty"`
	Code        conditions.Code     `json:"code"`
	Wind        Wind                `json:"wind,omitempty"`
	Atmosphere  Atmosphere          `json:"atmosphere,omitempty"`
	Astronomy   Astronomy           `json:"astronomy,omitempty"`
	Meta        conditions.Metadata `json:"-"`
}

// Snapshot is the full decorated result of one gateway fetch. Forecasts are
// ordered by date; index 0 is always today.
type Snapshot struct {
	Current   Reading   `json:"current"`
	Forecasts []Reading `json:"forecasts"`
}

// parseCode converts the provider's stringly-typed condition code. Anything
// unparsable degrades to the unavailable sentinel rather than failing the
// whole payload.
func parseCode(s string) conditions.Code {
	n, err := strconv.Atoi(s)
	if err != nil {
		return conditions.CodeUnavailable
	}
	return conditions.Code(n)
}

func parseTemp(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
