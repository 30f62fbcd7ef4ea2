package domain

// Map zoom levels used by the form.
const (
	ZoomWorld   = 1
	ZoomCountry = 5
	ZoomStreet  = 15
)

// MapViewState is the map viewport: center plus zoom.
type MapViewState struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Zoom      float64 `json:"zoom"`
}

// DefaultViewState derives the initial viewport. Priority: an explicitly
// configured center, else the centroid of the single allowed country when
// exactly one is configured, else a world view.
func DefaultViewState(configuredCenter []float64, allowedCountries []string) MapViewState {
	if len(configuredCenter) >= 2 {
		return MapViewState{Longitude: configuredCenter[0], Latitude: configuredCenter[1], Zoom: ZoomCountry}
	}
	if len(allowedCountries) == 1 {
		if c, ok := FindCountry(allowedCountries[0]); ok && len(c.Position) >= 2 {
			return MapViewState{Longitude: c.Position[0], Latitude: c.Position[1], Zoom: ZoomCountry}
		}
	}
	return MapViewState{Longitude: -100, Latitude: 50, Zoom: ZoomWorld}
}

// ViewStateAt centers the viewport on a resolved position at street zoom.
func ViewStateAt(position []float64) MapViewState {
	return MapViewState{Longitude: position[0], Latitude: position[1], Zoom: ZoomStreet}
}
