package poller

import (
	"sort"
	"strconv"

	"github.com/i474232898/voice-weather/internal/weather"
)

// Observation is the reduced view of a weather snapshot the poller tracks
// between cycles: the grouped wind/atmosphere/astronomy blocks plus the
// scalar temperature and weather type. All leaves are strings because the
// provider payload is stringly typed.
type Observation struct {
	Groups  map[string]map[string]string `json:"groups"`
	Scalars map[string]string            `json:"scalars"`
}

// Change is one changed leaf attribute: the event name (field path joined
// with underscores) and the new value.
type Change struct {
	Name  string
	Value string
}

// Reduce builds an Observation from a decorated snapshot's current reading.
func Reduce(snap weather.Snapshot) Observation {
	cur := snap.Current
	return Observation{
		Groups: map[string]map[string]string{
			"wind": {
				"chill":     cur.Wind.Chill,
				"direction": cur.Wind.Direction,
				"speed":     cur.Wind.Speed,
			},
			"atmosphere": {
				"humidity":   cur.Atmosphere.Humidity,
				"pressure":   cur.Atmosphere.Pressure,
				"rising":     cur.Atmosphere.Rising,
				"visibility": cur.Atmosphere.Visibility,
			},
			"astronomy": {
				"sunrise": cur.Astronomy.Sunrise,
				"sunset":  cur.Astronomy.Sunset,
			},
		},
		Scalars: map[string]string{
			"temperature":  strconv.Itoa(cur.Temperature),
			"weather_type": cur.Meta.Type,
		},
	}
}

// Diff compares two observations one level deep and returns one Change per
// leaf whose value differs. With an empty prev (the first cycle), every
// present leaf is reported. Output is sorted by name so emission order is
// stable.
func Diff(prev, next Observation) []Change {
	var changes []Change

	for group, fields := range next.Groups {
		prevFields := prev.Groups[group]
		for field, value := range fields {
			if prevFields == nil || prevFields[field] != value {
				changes = append(changes, Change{Name: group + "_" + field, Value: value})
			}
		}
	}

	for name, value := range next.Scalars {
		if prev.Scalars == nil || prev.Scalars[name] != value {
			changes = append(changes, Change{Name: name, Value: value})
		}
	}

	sort.Slice(changes, func(i, j int) bool { return changes[i].Name < changes[j].Name })
	return changes
}
