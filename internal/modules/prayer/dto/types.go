package dto

type TodayInput struct {
	Latitude  *float64
	Longitude *float64
	Method    *int
}

type PrayerOutput struct {
	Name string `json:"name"`
	Time string `json:"time"`
	Next bool   `json:"next"`
}

type NextOutput struct {
	Name      string `json:"name"`
	Time      string `json:"time"`
	At        string `json:"at"`
	Hours     int    `json:"hours"`
	Minutes   int    `json:"minutes"`
	Remaining string `json:"remaining"`
}

type TodayOutput struct {
	Date      string         `json:"date"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	City      string         `json:"city,omitempty"`
	Country   string         `json:"country,omitempty"`
	Method    int            `json:"method"`
	Prayers   []PrayerOutput `json:"prayers"`
	Next      *NextOutput    `json:"next,omitempty"`
}

type MethodOutput struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
