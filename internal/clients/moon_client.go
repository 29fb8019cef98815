package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"deepsky/internal/astro"
	"deepsky/internal/ephemeris"
)

// MoonClient fetches one day of moon events for a location.
type MoonClient interface {
	FetchMoon(ctx context.Context, loc astro.Location, date time.Time) (ephemeris.MoonEvents, error)
}

type MoonConfig struct {
	BaseURL string
	Timeout time.Duration
}

// usnoClient talks to the USNO one-day rise/set/transit API.
type usnoClient struct {
	baseURL string
	client  *http.Client
}

func NewMoonClient(config MoonConfig) MoonClient {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &usnoClient{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type usnoPhenomenon struct {
	Phen string `json:"phen"`
	Time string `json:"time"`
}

type usnoResponse struct {
	Error      string `json:"error"`
	Properties *struct {
		Data *struct {
			CurPhase  string           `json:"curphase"`
			FracIllum string           `json:"fracillum"`
			MoonData  []usnoPhenomenon `json:"moondata"`
		} `json:"data"`
	} `json:"properties"`
}

func (c *usnoClient) FetchMoon(ctx context.Context, loc astro.Location, date time.Time) (ephemeris.MoonEvents, error) {
	day := loc.LocalDate(date)
	if err := checkRequest(loc, day, 1700, 2100); err != nil {
		return ephemeris.MoonEvents{}, err
	}

	// USNO wants a fixed UTC offset; use the one in force at local noon.
	noon := day.Add(12 * time.Hour)
	_, offset := noon.Zone()

	params := url.Values{}
	params.Add("date", day.Format("2006-01-02"))
	params.Add("coords", fmt.Sprintf("%.4f,%.4f", loc.Latitude, loc.Longitude))
	params.Add("tz", strconv.FormatFloat(float64(offset)/3600, 'f', -1, 64))
	reqURL := c.baseURL + "/rstt/oneday?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return ephemeris.MoonEvents{}, fmt.Errorf("%w: create request: %v", ErrUnaddressable, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return ephemeris.MoonEvents{}, fmt.Errorf("%w: %v", ErrUnfetchable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return ephemeris.MoonEvents{}, fmt.Errorf("%w: USNO returned status %d", ErrUnfetchable, resp.StatusCode)
	}

	var data usnoResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return ephemeris.MoonEvents{}, fmt.Errorf("%w: decode JSON: %v", ErrUndecodable, err)
	}
	if data.Error != "" || resp.StatusCode >= 400 {
		if strings.Contains(strings.ToLower(data.Error), "date") {
			return ephemeris.MoonEvents{}, fmt.Errorf("%w: USNO: %s", ErrOutOfRange, data.Error)
		}
		return ephemeris.MoonEvents{}, fmt.Errorf("%w: USNO (HTTP %d): %s", ErrUnaddressable, resp.StatusCode, data.Error)
	}
	if data.Properties == nil || data.Properties.Data == nil {
		return ephemeris.MoonEvents{}, fmt.Errorf("%w: missing properties.data", ErrUndecodable)
	}

	return toMoonEvents(day, noon, offset, data.Properties.Data.CurPhase, data.Properties.Data.FracIllum, data.Properties.Data.MoonData)
}

// toMoonEvents reads USNO clock times in the fixed offset that was sent,
// so events on the far side of a DST switch keep their instant.
func toMoonEvents(day, noon time.Time, offset int, phase, fraction string, phenomena []usnoPhenomenon) (ephemeris.MoonEvents, error) {
	events := ephemeris.MoonEvents{
		Date:         day.Format("2006-01-02"),
		Phase:        phase,
		FractionText: fraction,
		Noon:         noon,
	}
	for _, p := range phenomena {
		var dst **time.Time
		switch strings.ToLower(p.Phen) {
		case "rise":
			dst = &events.Rise
		case "set":
			dst = &events.Set
		default:
			continue
		}
		t, err := parseClock(day, offset, p.Time)
		if err != nil {
			return ephemeris.MoonEvents{}, fmt.Errorf("%w: moon %s time %q: %v", ErrUndecodable, p.Phen, p.Time, err)
		}
		*dst = &t
	}
	if phase == "" && events.Rise == nil && events.Set == nil {
		return ephemeris.MoonEvents{}, fmt.Errorf("%w: no moon phase or events", ErrEmptyResult)
	}
	return events, nil
}

// parseClock resolves "HH:MM" at the given UTC offset (seconds) on day's
// calendar date and returns it in day's zone. Suffixes such as " DT" are ignored.
func parseClock(day time.Time, offset int, clock string) (time.Time, error) {
	clock = strings.TrimSpace(clock)
	if len(clock) > 5 {
		clock = clock[:5]
	}
	hm, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := day.Date()
	fixed := time.FixedZone("", offset)
	return time.Date(y, m, d, hm.Hour(), hm.Minute(), 0, 0, fixed).In(day.Location()), nil
}
