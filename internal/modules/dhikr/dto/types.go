package dto

type ItemOutput struct {
	ID              int    `json:"id"`
	Arabic          string `json:"arabic"`
	Translation     string `json:"translation"`
	Transliteration string `json:"transliteration"`
	Repetitions     int    `json:"repetitions"`
	Completed       bool   `json:"completed"`
}

type ListSummary struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

type StateOutput struct {
	ActiveTab  string       `json:"activeTab"`
	Position   int          `json:"position"`
	Total      int          `json:"total"`
	Repetition int          `json:"repetition"`
	Required   int          `json:"required"`
	Current    ItemOutput   `json:"current"`
	Items      []ItemOutput `json:"items"`
	Morning    ListSummary  `json:"morning"`
	Evening    ListSummary  `json:"evening"`
}
