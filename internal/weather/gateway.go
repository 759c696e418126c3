// Package weather fetches and decorates forecast data from the YQL-style
// weather provider.
package weather

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/i474232898/voice-weather/internal/conditions"
)

// DefaultBaseURL is the provider's public YQL endpoint.
const DefaultBaseURL = "https://query.yahooapis.com/v1/public/yql"

// Gateway issues forecast and current-conditions queries for a place name
// and returns a decorated Snapshot.
type Gateway struct {
	client  *Client
	baseURL string
}

// NewGateway builds a Gateway. baseURL may be empty to use the provider's
// public endpoint.
func NewGateway(client *Client, baseURL string) *Gateway {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Gateway{client: client, baseURL: baseURL}
}

// Queries are place-name based: the place lookup is nested inside the
// weather query itself, so no separate WOEID resolution round-trip is
// needed.
func forecastQuery(place, unit string) string {
	return fmt.Sprintf(`select * from weather.forecast where woeid in (select woeid from geo.places(1) where text=%q) and u=%q`, place, unit)
}

// The current-conditions query always runs in Fahrenheit: the provider only
// reports the atmosphere block correctly under that unit system, and the
// gateway grafts that block onto the forecast payload afterwards.
func currentQuery(place string) string {
	return forecastQuery(place, "f")
}

// Fetch runs the forecast and current-conditions queries concurrently,
// awaits both, applies the atmosphere correction, and decorates every
// reading with its condition metadata.
func (g *Gateway) Fetch(ctx context.Context, place, unit string) (Snapshot, error) {
	var (
		wg            sync.WaitGroup
		fc, cur       *channel
		fcErr, curErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		fc, fcErr = g.queryChannel(ctx, forecastQuery(place, unit))
	}()
	go func() {
		defer wg.Done()
		cur, curErr = g.queryChannel(ctx, currentQuery(place))
	}()
	wg.Wait()

	if fcErr != nil {
		return Snapshot{}, fmt.Errorf("forecast query: %w", fcErr)
	}
	if curErr != nil {
		return Snapshot{}, fmt.Errorf("current-conditions query: %w", curErr)
	}

	// Provider quirk, deliberate: the forecast payload's atmosphere block is
	// only correct under the current query's unit system.
	fc.Atmosphere = cur.Atmosphere

	return decorate(fc), nil
}

// queryChannel runs one YQL query. A structurally empty result (200 with no
// query.results) is retried exactly once with the identical query; a second
// empty result is ErrNoData.
func (g *Gateway) queryChannel(ctx context.Context, query string) (*channel, error) {
	for attempt := 0; attempt < 2; attempt++ {
		var payload envelope
		if err := g.client.GetJSON(ctx, g.queryURL(query), &payload); err != nil {
			return nil, err
		}
		if payload.Query.Results != nil {
			ch := payload.Query.Results.Channel
			return &ch, nil
		}
	}
	return nil, ErrNoData
}

func (g *Gateway) queryURL(query string) string {
	return g.baseURL + "?q=" + url.QueryEscape(query) + "&format=json"
}

// decorate merges condition metadata into every forecast entry and builds
// the synthesized current reading from the channel-level blocks.
func decorate(ch *channel) Snapshot {
	forecasts := make([]Reading, 0, len(ch.Item.Forecast))
	for _, entry := range ch.Item.Forecast {
		code := parseCode(entry.Code)
		forecasts = append(forecasts, Reading{
			Date: entry.Date,
			Low:  parseTemp(entry.Low),
			High: parseTemp(entry.High),
			Code: code,
			Meta: conditions.Lookup(code),
		})
	}

	code := parseCode(ch.Item.Condition.Code)
	current := Reading{
		Temperature: parseTemp(ch.Item.Condition.Temp),
		Code:        code,
		Wind:        ch.Wind,
		Atmosphere:  ch.Atmosphere,
		Astronomy:   ch.Astronomy,
		Meta:        conditions.Lookup(code),
	}

	return Snapshot{Current: current, Forecasts: forecasts}
}
