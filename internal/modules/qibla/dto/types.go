package dto

// DirectionInput takes an explicit observer coordinate when both Latitude
// and Longitude are set; otherwise the current location is used.
type DirectionInput struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Heading   *float64 `json:"heading,omitempty"`
}

type DirectionOutput struct {
	Bearing   float64  `json:"bearing"`
	Compass   string   `json:"compass"`
	Relative  *float64 `json:"relative,omitempty"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	City      string   `json:"city,omitempty"`
	Country   string   `json:"country,omitempty"`
	AtKaaba   bool     `json:"atKaaba"`
}
