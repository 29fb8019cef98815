package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"deepsky/internal/astro"
	"deepsky/internal/ephemeris"
)

// SunClient fetches one day of solar events for a location. date is taken
// as a calendar day in the location's zone.
type SunClient interface {
	FetchSun(ctx context.Context, loc astro.Location, date time.Time) (ephemeris.SunEvents, error)
}

type SunConfig struct {
	BaseURL string
	Timeout time.Duration
}

// sunriseSunsetClient talks to the sunrise-sunset.org JSON API.
type sunriseSunsetClient struct {
	baseURL string
	client  *http.Client
}

func NewSunClient(config SunConfig) SunClient {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &sunriseSunsetClient{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type sunriseSunsetResponse struct {
	// Results is an object on success and an empty string on failure.
	Results json.RawMessage `json:"results"`
	Status  string          `json:"status"`
}

type sunriseSunsetResults struct {
	Sunrise                   string `json:"sunrise"`
	Sunset                    string `json:"sunset"`
	SolarNoon                 string `json:"solar_noon"`
	CivilTwilightBegin        string `json:"civil_twilight_begin"`
	CivilTwilightEnd          string `json:"civil_twilight_end"`
	NauticalTwilightBegin     string `json:"nautical_twilight_begin"`
	NauticalTwilightEnd       string `json:"nautical_twilight_end"`
	AstronomicalTwilightBegin string `json:"astronomical_twilight_begin"`
	AstronomicalTwilightEnd   string `json:"astronomical_twilight_end"`
}

func (c *sunriseSunsetClient) FetchSun(ctx context.Context, loc astro.Location, date time.Time) (ephemeris.SunEvents, error) {
	day := loc.LocalDate(date)
	if err := checkRequest(loc, day, 1900, 2100); err != nil {
		return ephemeris.SunEvents{}, err
	}

	params := url.Values{}
	params.Add("lat", fmt.Sprintf("%f", loc.Latitude))
	params.Add("lng", fmt.Sprintf("%f", loc.Longitude))
	params.Add("date", day.Format("2006-01-02"))
	params.Add("formatted", "0")
	if loc.Timezone != "" {
		params.Add("tzid", loc.Timezone)
	}
	reqURL := c.baseURL + "/json?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return ephemeris.SunEvents{}, fmt.Errorf("%w: create request: %v", ErrUnaddressable, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return ephemeris.SunEvents{}, fmt.Errorf("%w: %v", ErrUnfetchable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return ephemeris.SunEvents{}, fmt.Errorf("%w: sunrise-sunset returned status %d", ErrUnfetchable, resp.StatusCode)
	}

	// Client errors still carry a status field worth reading.
	var data sunriseSunsetResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return ephemeris.SunEvents{}, fmt.Errorf("%w: decode JSON: %v", ErrUndecodable, err)
	}

	switch data.Status {
	case "OK":
	case "INVALID_REQUEST":
		return ephemeris.SunEvents{}, fmt.Errorf("%w: sunrise-sunset rejected request", ErrUnaddressable)
	case "INVALID_DATE":
		return ephemeris.SunEvents{}, fmt.Errorf("%w: sunrise-sunset rejected date %s", ErrOutOfRange, day.Format("2006-01-02"))
	default:
		return ephemeris.SunEvents{}, fmt.Errorf("%w: sunrise-sunset status %q (HTTP %d)", ErrUndecodable, data.Status, resp.StatusCode)
	}

	var results sunriseSunsetResults
	if err := json.Unmarshal(data.Results, &results); err != nil {
		return ephemeris.SunEvents{}, fmt.Errorf("%w: decode results: %v", ErrUndecodable, err)
	}
	return results.toEvents(day)
}

// absentPlaceholder is what the API returns for an event that does not occur.
var absentPlaceholder = time.Date(1970, 1, 1, 0, 0, 1, 0, time.UTC)

func parseEventTime(raw string, zone *time.Location) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	if t.Year() <= absentPlaceholder.Year() {
		return nil, nil
	}
	t = t.In(zone)
	return &t, nil
}

func (r sunriseSunsetResults) toEvents(day time.Time) (ephemeris.SunEvents, error) {
	zone := day.Location()
	events := ephemeris.SunEvents{Date: day.Format("2006-01-02")}

	fields := []struct {
		raw string
		dst **time.Time
	}{
		{r.Sunrise, &events.Sunrise},
		{r.Sunset, &events.Sunset},
		{r.CivilTwilightBegin, &events.CivilTwilightBegin},
		{r.CivilTwilightEnd, &events.CivilTwilightEnd},
		{r.NauticalTwilightBegin, &events.NauticalTwilightBegin},
		{r.NauticalTwilightEnd, &events.NauticalTwilightEnd},
		{r.AstronomicalTwilightBegin, &events.AstroTwilightBegin},
		{r.AstronomicalTwilightEnd, &events.AstroTwilightEnd},
	}
	for _, f := range fields {
		t, err := parseEventTime(f.raw, zone)
		if err != nil {
			return ephemeris.SunEvents{}, fmt.Errorf("%w: %v", ErrUndecodable, err)
		}
		*f.dst = t
	}

	noon, err := parseEventTime(r.SolarNoon, zone)
	if err != nil {
		return ephemeris.SunEvents{}, fmt.Errorf("%w: solar noon: %v", ErrUndecodable, err)
	}
	if noon == nil {
		return ephemeris.SunEvents{}, fmt.Errorf("%w: no solar noon", ErrEmptyResult)
	}
	events.SolarNoon = *noon

	return events, nil
}
