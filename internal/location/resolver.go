package location

import (
	"context"
	"fmt"

	"github.com/kelvins/geocoder"
)

// Resolver turns a Location into the place name used as the weather query
// key. Coordinates are reverse-geocoded; a spoken name wins unconditionally.
type Resolver struct {
	// reverse is swappable so tests do not hit the geocoding API.
	reverse func(geocoder.Location) ([]geocoder.Address, error)
}

// NewResolver configures the geocoding backend with the given API key.
func NewResolver(apiKey string) *Resolver {
	geocoder.ApiKey = apiKey
	return &Resolver{reverse: geocoder.GeocodingReverse}
}

// NewResolverFunc builds a resolver around a custom reverse-geocoding
// function. Used by tests.
func NewResolverFunc(reverse func(geocoder.Location) ([]geocoder.Address, error)) *Resolver {
	return &Resolver{reverse: reverse}
}

// Resolve returns the place name for a location. Reverse-geocoding runs in a
// goroutine so the caller's context deadline is honored even though the
// geocoder client itself is not context-aware.
func (r *Resolver) Resolve(ctx context.Context, loc Location) (string, error) {
	loc = loc.Normalize()

	if loc.Name != "" {
		return loc.Name, nil
	}
	if !loc.HasCoordinates() {
		return "", ErrUnresolvable
	}

	type result struct {
		name string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		addresses, err := r.reverse(geocoder.Location{
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
		})
		if err != nil {
			ch <- result{err: fmt.Errorf("%w: reverse geocoding failed: %v", ErrUnresolvable, err)}
			return
		}
		name := pickPlaceName(addresses)
		if name == "" {
			ch <- result{err: fmt.Errorf("%w: no locality in geocoder response", ErrUnresolvable)}
			return
		}
		ch <- result{name: name}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		return res.name, res.err
	}
}

// pickPlaceName prefers the locality, then coarser divisions.
func pickPlaceName(addresses []geocoder.Address) string {
	for _, addr := range addresses {
		if addr.City != "" {
			return addr.City
		}
	}
	for _, addr := range addresses {
		if addr.County != "" {
			return addr.County
		}
		if addr.State != "" {
			return addr.State
		}
	}
	return ""
}
