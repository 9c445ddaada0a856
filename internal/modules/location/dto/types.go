package dto

const (
	SourceSaved  = "saved"
	SourceDevice = "device"
	SourceManual = "manual"
	SourceSearch = "search"
)

type LocationOutput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Source    string  `json:"source,omitempty"`
}

type SelectInput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
}
