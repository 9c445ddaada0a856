package dto

type LanguageOutput struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Native string `json:"native"`
	ISO    string `json:"iso"`
}

type MoshafOutput struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Server      string `json:"server"`
	SurahTotal  int    `json:"surahTotal"`
	AudioFormat string `json:"audioFormat"`
}

type ReciterOutput struct {
	ID     int            `json:"id"`
	Name   string         `json:"name"`
	Letter string         `json:"letter"`
	Moshaf []MoshafOutput `json:"moshaf"`
}

type SurahOutput struct {
	ID          int    `json:"id"`
	NameArabic  string `json:"nameArabic"`
	NameSimple  string `json:"nameSimple"`
	DisplayName string `json:"displayName"`
}

type OverviewOutput struct {
	Languages       []LanguageOutput `json:"languages"`
	DefaultLanguage *LanguageOutput  `json:"defaultLanguage,omitempty"`
	Surahs          []SurahOutput    `json:"surahs"`
}

type RecitersInput struct {
	LanguageID int    `json:"language"`
	Query      string `json:"query"`
}

type PlayInput struct {
	LanguageID int `json:"language"`
	ReciterID  int `json:"reciter"`
	MoshafID   int `json:"moshaf"`
	SurahID    int `json:"surah"`
}

type PlaybackOutput struct {
	Playing     bool   `json:"playing"`
	ReciterID   int    `json:"reciterId,omitempty"`
	ReciterName string `json:"reciterName,omitempty"`
	MoshafID    int    `json:"moshafId,omitempty"`
	MoshafName  string `json:"moshafName,omitempty"`
	SurahID     int    `json:"surahId,omitempty"`
	URL         string `json:"url,omitempty"`
}
