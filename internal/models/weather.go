package models

import "time"

// Weather is the flattened view of a station observation served to clients.
type Weather struct {
	City              string    `json:"city"`
	Country           string    `json:"country"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	Temperature       float64   `json:"temp_celsius"`
	HighTemperature   float64   `json:"high_celsius"`
	LowTemperature    float64   `json:"low_celsius"`
	Humidity          float64   `json:"humidity"`
	Description       string    `json:"description"`
	WindSpeed         float64   `json:"wind_kph"`
	WindDirection     float64   `json:"wind_direction"`
	BarometerPressure float64   `json:"pressure_mb"`
	Visibility        float64   `json:"visibility_km"`
	Updated           time.Time `json:"updated_at"`
}
