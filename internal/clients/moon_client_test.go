package clients

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const moonOK = `{
  "apiversion": "4.0.1",
  "geometry": {"coordinates": [-87.872, 41.833], "type": "Point"},
  "properties": {
    "data": {
      "closestphase": {"day": 18, "month": 6, "phase": "New Moon", "time": "04:37", "year": 2023},
      "curphase": "Waxing Crescent",
      "fracillum": "13%",
      "moondata": [
        {"phen": "Rise", "time": "07:36"},
        {"phen": "Upper Transit", "time": "14:49"},
        {"phen": "Set", "time": "21:54"}
      ],
      "tz": -5.0
    }
  },
  "type": "Feature"
}`

func TestMoonClientDecodes(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rstt/oneday" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		gotQuery = map[string]string{"date": q.Get("date"), "coords": q.Get("coords"), "tz": q.Get("tz")}
		w.Write([]byte(moonOK))
	}))
	defer srv.Close()

	events, err := NewMoonClient(MoonConfig{BaseURL: srv.URL}).
		FetchMoon(context.Background(), chicago, time.Date(2023, 6, 21, 15, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("FetchMoon() error: %v", err)
	}

	if gotQuery["date"] != "2023-06-21" || gotQuery["coords"] != "41.8330,-87.8720" || gotQuery["tz"] != "-5" {
		t.Errorf("query = %v", gotQuery)
	}
	if events.Phase != "Waxing Crescent" || events.FractionText != "13%" {
		t.Errorf("phase = %q %q", events.Phase, events.FractionText)
	}
	if events.Rise == nil || events.Rise.Hour() != 7 || events.Rise.Minute() != 36 {
		t.Errorf("rise = %v", events.Rise)
	}
	if events.Set == nil || events.Set.Hour() != 21 || events.Set.Minute() != 54 {
		t.Errorf("set = %v", events.Set)
	}
	if name, _ := events.Rise.Zone(); name != "CDT" {
		t.Errorf("rise zone = %s, want CDT", name)
	}
}

func TestMoonClientMissingSetIsValid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"properties":{"data":{"curphase":"Full Moon","fracillum":"99%","moondata":[{"phen":"Rise","time":"23:10"}]}}}`))
	}))
	defer srv.Close()

	events, err := NewMoonClient(MoonConfig{BaseURL: srv.URL}).FetchMoon(context.Background(), chicago, time.Now())
	if err != nil {
		t.Fatalf("FetchMoon() error: %v", err)
	}
	if events.Set != nil {
		t.Error("set should be absent")
	}
	if events.Rise == nil {
		t.Error("rise should be present")
	}
}

func TestMoonClientErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"bad coords", http.StatusBadRequest, `{"error": "Invalid coordinates"}`, ErrUnaddressable},
		{"bad date", http.StatusBadRequest, `{"error": "Date must be between year 1700 and year 2100"}`, ErrOutOfRange},
		{"no data", http.StatusOK, `{"type":"Feature"}`, ErrUndecodable},
		{"empty", http.StatusOK, `{"properties":{"data":{"moondata":[]}}}`, ErrEmptyResult},
		{"bad clock", http.StatusOK, `{"properties":{"data":{"curphase":"New Moon","moondata":[{"phen":"Set","time":"noon"}]}}}`, ErrUndecodable},
		{"server error", http.StatusServiceUnavailable, ``, ErrUnfetchable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewMoonClient(MoonConfig{BaseURL: srv.URL}).FetchMoon(context.Background(), chicago, time.Now())
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMoonClientOutOfRangeYear(t *testing.T) {
	_, err := NewMoonClient(MoonConfig{BaseURL: "http://unused"}).
		FetchMoon(context.Background(), chicago, time.Date(2200, 1, 1, 0, 0, 0, 0, time.UTC))
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("error = %v, want ErrOutOfRange", err)
	}
}

func TestMoonClockOnDSTChangeDay(t *testing.T) {
	zone, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// DST ends at 02:00 local on 2023-11-05; noon is already CST (-6).
	day := time.Date(2023, 11, 5, 0, 0, 0, 0, zone)
	noon := day.Add(12 * time.Hour)
	_, offset := noon.Zone()
	if offset != -6*3600 {
		t.Fatalf("noon offset = %d", offset)
	}

	events, err := toMoonEvents(day, noon, offset, "Waning Crescent", "54%", []usnoPhenomenon{
		{Phen: "Rise", Time: "00:30"},
		{Phen: "Set", Time: "15:10"},
	})
	if err != nil {
		t.Fatal(err)
	}

	wantRise := time.Date(2023, 11, 5, 6, 30, 0, 0, time.UTC)
	if !events.Rise.Equal(wantRise) {
		t.Errorf("rise = %s, want %s", events.Rise.UTC(), wantRise)
	}
	wantSet := time.Date(2023, 11, 5, 21, 10, 0, 0, time.UTC)
	if !events.Set.Equal(wantSet) {
		t.Errorf("set = %s, want %s", events.Set.UTC(), wantSet)
	}
	if events.Rise.Location().String() != "America/Chicago" {
		t.Errorf("rise zone = %s, want America/Chicago", events.Rise.Location())
	}
}
