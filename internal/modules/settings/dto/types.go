package dto

type SettingsOutput struct {
	Language             string `json:"language"`
	CalculationMethod    int    `json:"calculationMethod"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	AdhanSoundID         string `json:"adhanSound"`
}

type UpdateInput struct {
	Language             *string `json:"language,omitempty"`
	CalculationMethod    *int    `json:"calculationMethod,omitempty"`
	NotificationsEnabled *bool   `json:"notificationsEnabled,omitempty"`
	AdhanSoundID         *string `json:"adhanSound,omitempty"`
}
