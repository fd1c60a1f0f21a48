package models

import "time"

// Location is a resolved geocoding result served to clients.
type Location struct {
	Label       string    `json:"label"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	CountryCode string    `json:"country_code"`
	PostalCode  string    `json:"postal_code"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Updated     time.Time `json:"updated_at"`
}

// Locations wraps the result list so it can travel as one cache value.
type Locations struct {
	Query   string     `json:"query"`
	Results []Location `json:"results"`
}
