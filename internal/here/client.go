// Package here is a thin client for the HERE Destination Weather and
// Geocoding & Search APIs. It issues one GET per call, attaches the API key,
// and decodes the JSON response into typed results. Caching, retries and
// logging are left to the caller.
package here

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultWeatherURL    = "https://weather.cc.api.here.com/weather/1.0/report.json"
	defaultGeocodeURL    = "https://geocode.search.hereapi.com/v1/geocode"
	defaultRevGeocodeURL = "https://revgeocode.search.hereapi.com/v1/revgeocode"
)

// Client wraps the HERE web APIs. A single instance is safe for concurrent
// use as long as the underlying http.Client is.
type Client struct {
	apiKey     string
	httpClient *http.Client

	// overridable for testing
	weatherURL    string
	geocodeURL    string
	revGeocodeURL string
}

// NewClient creates a Client with the given API key. httpClient is borrowed,
// not owned: the client never closes it and the caller keeps full control of
// timeouts and connection pooling. Passing nil falls back to a client with an
// explicit 10s timeout instead of http.DefaultClient.
func NewClient(apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		apiKey:        apiKey,
		httpClient:    httpClient,
		weatherURL:    defaultWeatherURL,
		geocodeURL:    defaultGeocodeURL,
		revGeocodeURL: defaultRevGeocodeURL,
	}
}

// Report requests a weather report for the given coordinates and product.
// The requested product node is guaranteed to be populated on success.
func (c *Client) Report(ctx context.Context, req ReportRequest) (*Report, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("product", string(req.Product))
	params.Set("latitude", strconv.FormatFloat(req.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(req.Longitude, 'f', -1, 64))
	params.Set("oneobservation", strconv.FormatBool(req.OneObservation))
	params.Set("metric", strconv.FormatBool(req.Metric))
	if req.Language != "" {
		params.Set("language", req.Language)
	}

	body, err := c.get(ctx, c.weatherURL, params)
	if err != nil {
		return nil, err
	}

	var report Report
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, &DecodeError{Err: err}
	}

	// The API reports some failures inside a 200 body, without the
	// requested product node.
	if !report.hasNode(req.Product) {
		return nil, report.errorPayload()
	}

	return &report, nil
}

// Observations requests current conditions, limited to the best mapped
// station, in metric units.
func (c *Client) Observations(ctx context.Context, lat, lng float64, lang string) ([]Observation, error) {
	report, err := c.Report(ctx, ReportRequest{
		Latitude:       lat,
		Longitude:      lng,
		Product:        ProductObservation,
		Language:       lang,
		OneObservation: true,
		Metric:         true,
	})
	if err != nil {
		return nil, err
	}

	var observations []Observation
	for _, loc := range report.Observations.Location {
		observations = append(observations, loc.Observation...)
	}
	return observations, nil
}

// Forecast7Days requests the detailed 7-day forecast.
func (c *Client) Forecast7Days(ctx context.Context, lat, lng float64, lang string) ([]Forecast, error) {
	report, err := c.forecast(ctx, lat, lng, ProductForecast7Days, lang)
	if err != nil {
		return nil, err
	}
	return report.Forecasts.ForecastLocation.Forecast, nil
}

// DailyForecasts requests the simplified 7-day forecast.
func (c *Client) DailyForecasts(ctx context.Context, lat, lng float64, lang string) ([]Forecast, error) {
	report, err := c.forecast(ctx, lat, lng, ProductForecast7DaysSimple, lang)
	if err != nil {
		return nil, err
	}
	return report.DailyForecasts.ForecastLocation.Forecast, nil
}

// HourlyForecasts requests the hourly forecast.
func (c *Client) HourlyForecasts(ctx context.Context, lat, lng float64, lang string) ([]Forecast, error) {
	report, err := c.forecast(ctx, lat, lng, ProductForecastHourly, lang)
	if err != nil {
		return nil, err
	}
	return report.HourlyForecasts.ForecastLocation.Forecast, nil
}

// Astronomy requests sunrise/sunset and moon data.
func (c *Client) Astronomy(ctx context.Context, lat, lng float64, lang string) ([]Astronomy, error) {
	report, err := c.forecast(ctx, lat, lng, ProductForecastAstronomy, lang)
	if err != nil {
		return nil, err
	}
	return report.Astronomy.Astronomy, nil
}

// Alerts requests active weather alerts.
func (c *Client) Alerts(ctx context.Context, lat, lng float64, lang string) ([]Alert, error) {
	report, err := c.forecast(ctx, lat, lng, ProductAlerts, lang)
	if err != nil {
		return nil, err
	}
	return report.Alerts.Alerts, nil
}

func (c *Client) forecast(ctx context.Context, lat, lng float64, product WeatherProduct, lang string) (*Report, error) {
	return c.Report(ctx, ReportRequest{
		Latitude:       lat,
		Longitude:      lng,
		Product:        product,
		Language:       lang,
		OneObservation: true,
		Metric:         true,
	})
}

// Geocode resolves a free-form query ("Invalidenstr 116, Berlin") to places.
func (c *Client) Geocode(ctx context.Context, query, lang string) ([]Place, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("q", query)
	if lang != "" {
		params.Set("lang", lang)
	}
	return c.searchPlaces(ctx, c.geocodeURL, params)
}

// ReverseGeocode resolves coordinates to the nearest known places.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64, lang string) ([]Place, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("at", strconv.FormatFloat(lat, 'f', -1, 64)+","+strconv.FormatFloat(lng, 'f', -1, 64))
	if lang != "" {
		params.Set("lang", lang)
	}
	return c.searchPlaces(ctx, c.revGeocodeURL, params)
}

func (c *Client) searchPlaces(ctx context.Context, endpoint string, params url.Values) ([]Place, error) {
	body, err := c.get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	var resp geocodeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return resp.Items, nil
}

// get performs one GET against endpoint and returns the raw body of a 2xx
// response. Non-2xx responses become an *APIError carrying the status code
// and body.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("here: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("DNT", "1")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("here: execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("here: read response: %w", err)
	}

	if resp.StatusCode/100 != 2 {
		apiErr := errorFromBody(body)
		apiErr.StatusCode = resp.StatusCode
		apiErr.Body = string(body)
		return nil, apiErr
	}

	return body, nil
}

// errorFromBody maps the two error payload shapes the API documents:
// {"error":"Unauthorized","error_description":...} and
// {"Type":"Invalid Request","Message":[...]}.
func errorFromBody(body []byte) *APIError {
	var payload struct {
		Error            string          `json:"error"`
		ErrorDescription string          `json:"error_description"`
		Type             string          `json:"Type"`
		Message          json.RawMessage `json:"Message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return &APIError{}
	}

	apiErr := &APIError{Message: rawMessageText(payload.Message)}
	switch {
	case payload.Error == "Unauthorized":
		apiErr.kind = ErrUnauthorized
		apiErr.Message = payload.ErrorDescription
	case payload.Type == "Invalid Request":
		apiErr.kind = ErrInvalidRequest
	}
	return apiErr
}

// errorPayload builds the error for a 200 response that carried an error
// payload instead of the requested product node.
func (r *Report) errorPayload() *APIError {
	apiErr := &APIError{StatusCode: http.StatusOK, Message: rawMessageText(r.Message)}
	switch {
	case r.ErrorCode == "Unauthorized":
		apiErr.kind = ErrUnauthorized
		apiErr.Message = r.ErrorDescription
	case r.Type == "Invalid Request":
		apiErr.kind = ErrInvalidRequest
	}
	return apiErr
}

// hasNode reports whether the top-level node the API returns for the product
// is populated. This is the single place the product-to-node mapping lives.
func (r *Report) hasNode(p WeatherProduct) bool {
	switch p {
	case ProductObservation:
		return r.Observations != nil
	case ProductForecast7Days:
		return r.Forecasts != nil
	case ProductForecast7DaysSimple:
		return r.DailyForecasts != nil
	case ProductForecastHourly:
		return r.HourlyForecasts != nil
	case ProductForecastAstronomy:
		return r.Astronomy != nil
	case ProductAlerts:
		return r.Alerts != nil
	default:
		return len(r.NWSAlerts) > 0
	}
}

// rawMessageText renders the Message field, which the API returns either as a
// string or as a list of strings.
func rawMessageText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return list[0]
	}
	return string(raw)
}
