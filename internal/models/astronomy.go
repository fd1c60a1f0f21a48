package models

import "time"

// Astronomy is the sun/moon view for one day at a location.
type Astronomy struct {
	City          string    `json:"city"`
	Sunrise       string    `json:"sunrise"`
	Sunset        string    `json:"sunset"`
	Moonrise      string    `json:"moonrise"`
	Moonset       string    `json:"moonset"`
	MoonPhase     float64   `json:"moon_phase"`
	MoonPhaseDesc string    `json:"moon_phase_desc"`
	Updated       time.Time `json:"updated_at"`
}
