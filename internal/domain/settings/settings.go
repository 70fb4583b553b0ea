package settings

// Setting keys live in app_settings so every variant of the deployment reads
// configuration the same way instead of each handler loading its own file.
const (
	KeyTravelRate = "travel_rate_per_km"

	DefaultTravelRate = 3.5
)

type Setting struct {
	Key     string  `json:"key"`
	Value   float64 `json:"value"`
	Version int64   `json:"version"`
}
