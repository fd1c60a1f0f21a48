package here

import (
	"encoding/json"
	"time"
)

// WeatherProduct identifies the type of report to request from the
// Destination Weather API.
type WeatherProduct string

const (
	ProductObservation         WeatherProduct = "observation"
	ProductForecast7Days       WeatherProduct = "forecast_7days"
	ProductForecast7DaysSimple WeatherProduct = "forecast_7days_simple"
	ProductForecastHourly      WeatherProduct = "forecast_hourly"
	ProductForecastAstronomy   WeatherProduct = "forecast_astronomy"
	ProductAlerts              WeatherProduct = "alerts"
	ProductNWSAlerts           WeatherProduct = "nws_alerts"
)

// ReportRequest carries the parameters of a single weather report call.
// Values are passed through to the API as-is; the remote service does the
// validation.
type ReportRequest struct {
	Latitude       float64
	Longitude      float64
	Product        WeatherProduct
	Language       string // ISO language code, e.g. "en"; empty means API default
	OneObservation bool   // limit the result to the best mapped station
	Metric         bool
}

// Report is the decoded envelope of a Destination Weather response. Only the
// node matching the requested product is populated.
type Report struct {
	Observations    *ObservationReport `json:"observations,omitempty"`
	Forecasts       *ForecastReport    `json:"forecasts,omitempty"`
	DailyForecasts  *ForecastReport    `json:"dailyForecasts,omitempty"`
	HourlyForecasts *ForecastReport    `json:"hourlyForecasts,omitempty"`
	Astronomy       *AstronomyReport   `json:"astronomy,omitempty"`
	Alerts          *AlertReport       `json:"alerts,omitempty"`
	NWSAlerts       json.RawMessage    `json:"nwsAlerts,omitempty"`
	FeedCreation    time.Time          `json:"feedCreation"`
	Metric          bool               `json:"metric"`

	// Error payload fields the API mixes into 200 responses. Message comes
	// back either as a string or as a list of strings.
	ErrorCode        string          `json:"error,omitempty"`
	ErrorDescription string          `json:"error_description,omitempty"`
	Type             string          `json:"Type,omitempty"`
	Message          json.RawMessage `json:"Message,omitempty"`
}

type ObservationReport struct {
	Location []ObservationLocation `json:"location"`
}

type ObservationLocation struct {
	Observation []Observation `json:"observation"`
	Country     string        `json:"country"`
	State       string        `json:"state"`
	City        string        `json:"city"`
	Latitude    float64       `json:"latitude"`
	Longitude   float64       `json:"longitude"`
	Distance    float64       `json:"distance"`
}

// Observation is a single weather station report. Fields are present iff the
// API returned them.
type Observation struct {
	Daylight          string    `json:"daylight"`
	Description       string    `json:"description"`
	SkyDescription    string    `json:"skyDescription"`
	Temperature       float64   `json:"temperature"`
	TemperatureDesc   string    `json:"temperatureDesc"`
	Comfort           float64   `json:"comfort"`
	HighTemperature   float64   `json:"highTemperature"`
	LowTemperature    float64   `json:"lowTemperature"`
	Humidity          float64   `json:"humidity"`
	DewPoint          float64   `json:"dewPoint"`
	Precipitation1H   float64   `json:"precipitation1H"`
	PrecipitationDesc string    `json:"precipitationDesc"`
	WindSpeed         float64   `json:"windSpeed"`
	WindDirection     float64   `json:"windDirection"`
	WindDesc          string    `json:"windDesc"`
	BarometerPressure float64   `json:"barometerPressure"`
	BarometerTrend    string    `json:"barometerTrend"`
	Visibility        float64   `json:"visibility"`
	Icon              int       `json:"icon"`
	IconName          string    `json:"iconName"`
	AgeMinutes        int       `json:"ageMinutes"`
	ActiveAlerts      int       `json:"activeAlerts"`
	Country           string    `json:"country"`
	State             string    `json:"state"`
	City              string    `json:"city"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	Elevation         float64   `json:"elevation"`
	UTCTime           time.Time `json:"utcTime"`
}

type ForecastReport struct {
	ForecastLocation ForecastLocation `json:"forecastLocation"`
}

type ForecastLocation struct {
	Forecast  []Forecast `json:"forecast"`
	Country   string     `json:"country"`
	State     string     `json:"state"`
	City      string     `json:"city"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
}

// Forecast covers the daily, simple-daily and hourly products; the API uses
// the same field vocabulary for all three.
type Forecast struct {
	Daylight                 string    `json:"daylight"`
	Description              string    `json:"description"`
	SkyDescription           string    `json:"skyDescription"`
	Temperature              float64   `json:"temperature"`
	HighTemperature          float64   `json:"highTemperature"`
	LowTemperature           float64   `json:"lowTemperature"`
	Humidity                 float64   `json:"humidity"`
	DewPoint                 float64   `json:"dewPoint"`
	PrecipitationProbability float64   `json:"precipitationProbability"`
	PrecipitationDesc        string    `json:"precipitationDesc"`
	RainFall                 float64   `json:"rainFall"`
	SnowFall                 float64   `json:"snowFall"`
	WindSpeed                float64   `json:"windSpeed"`
	WindDirection            float64   `json:"windDirection"`
	WindDesc                 string    `json:"windDesc"`
	BeaufortScale            float64   `json:"beaufortScale"`
	Visibility               float64   `json:"visibility"`
	IconName                 string    `json:"iconName"`
	DayOfWeek                int       `json:"dayOfWeek"`
	Weekday                  string    `json:"weekday"`
	UTCTime                  time.Time `json:"utcTime"`
}

type AstronomyReport struct {
	Astronomy []Astronomy `json:"astronomy"`
	Country   string      `json:"country"`
	State     string      `json:"state"`
	City      string      `json:"city"`
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
}

// Astronomy holds sunrise/sunset and moon data for one day. Times of day come
// back as clock strings like "6:10AM".
type Astronomy struct {
	Sunrise       string    `json:"sunrise"`
	Sunset        string    `json:"sunset"`
	Moonrise      string    `json:"moonrise"`
	Moonset       string    `json:"moonset"`
	MoonPhase     float64   `json:"moonPhase"`
	MoonPhaseDesc string    `json:"moonPhaseDesc"`
	IconName      string    `json:"iconName"`
	City          string    `json:"city"`
	UTCTime       time.Time `json:"utcTime"`
}

type AlertReport struct {
	Alerts []Alert `json:"alerts"`
}

type Alert struct {
	TimeSegment []AlertTimeSegment `json:"timeSegment"`
	Type        int                `json:"type"`
	Description string             `json:"description"`
}

type AlertTimeSegment struct {
	Segment   string `json:"segment"`
	DayOfWeek int    `json:"day_of_week"`
}

// Place is a single geocoding result from the Geocoding & Search v7 API.
type Place struct {
	Title      string   `json:"title"`
	ID         string   `json:"id"`
	ResultType string   `json:"resultType"`
	Address    Address  `json:"address"`
	Position   Position `json:"position"`
	Distance   float64  `json:"distance"`
}

type Address struct {
	Label       string `json:"label"`
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
	State       string `json:"state"`
	County      string `json:"county"`
	City        string `json:"city"`
	District    string `json:"district"`
	Street      string `json:"street"`
	PostalCode  string `json:"postalCode"`
	HouseNumber string `json:"houseNumber"`
}

type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type geocodeResponse struct {
	Items []Place `json:"items"`
}
