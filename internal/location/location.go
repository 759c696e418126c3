package location

import "errors"

// ErrUnresolvable is returned when neither coordinates nor a place name can
// be turned into a usable location key.
var ErrUnresolvable = errors.New("location unresolvable")

// Location identifies a place either by coordinates or by a spoken name.
// Exactly one representation is active: a name override always wins, so
// Normalize clears coordinates whenever a name is present.
type Location struct {
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	Name      string  `json:"name,omitempty"`
}

// HasCoordinates reports whether the location carries a usable lat/lon pair.
func (l Location) HasCoordinates() bool {
	return l.Latitude != 0 || l.Longitude != 0
}

// IsZero reports whether the location carries no information at all.
func (l Location) IsZero() bool {
	return l.Name == "" && !l.HasCoordinates()
}

// Normalize enforces the override invariant: when a spoken name is present
// the coordinates are discarded so the downstream query never sees both.
func (l Location) Normalize() Location {
	if l.Name != "" {
		return Location{Name: l.Name}
	}
	return l
}
