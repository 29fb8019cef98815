package utils

import (
	"bytes"
	"encoding/csv"
	"slices"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"deepsky/internal/astro"
	"deepsky/internal/catalog"
	"deepsky/internal/ephemeris"
	"deepsky/internal/report"
	"deepsky/internal/scoring"
)

func sampleReport() report.DailyReport {
	mag := 3.4
	m31 := catalog.DeepSkyTarget{
		ID:            "m31",
		Names:         []string{"Andromeda Galaxy"},
		Designations:  []catalog.Designation{{Catalog: catalog.Messier, Number: 31}, {Catalog: catalog.NGC, Number: 224}},
		RA:            10.68,
		Dec:           41.27,
		Size:          catalog.Size{Length: 178, Width: 63},
		Magnitude:     &mag,
		Types:         []catalog.DSOType{catalog.Galaxy},
		Constellation: catalog.Andromeda,
	}
	ic434 := catalog.DeepSkyTarget{
		ID:            "ic434",
		Names:         []string{"Horsehead Nebula"},
		Designations:  []catalog.Designation{{Catalog: catalog.IC, Number: 434}},
		RA:            85.25,
		Dec:           -2.46,
		Size:          catalog.Size{Length: 60, Width: 10},
		Types:         []catalog.DSOType{catalog.EmissionNebula, catalog.DarkNebula},
		Constellation: catalog.Orion,
	}
	start := time.Date(2023, 12, 21, 23, 30, 0, 0, time.UTC)
	galaxy := scoring.Scored{Target: m31, Visibility: 0.9, Meridian: 0.4}
	nebula := scoring.Scored{Target: ic434, Visibility: 0.7, Meridian: 0.95}
	return report.DailyReport{
		Location:           astro.Location{Latitude: 41.833, Longitude: -87.872, Timezone: "America/Chicago"},
		Date:               "2023-12-21",
		Darkness:           ephemeris.Astronomical,
		Interval:           ephemeris.NewInterval(start, start.Add(10*time.Hour)),
		Moon:               ephemeris.MoonData{Phase: "Waxing Crescent", Illuminated: 0.62},
		TopFive:            []scoring.Scored{galaxy, nebula},
		TopTenNebulae:      []scoring.Scored{nebula},
		TopTenGalaxies:     []scoring.Scored{galaxy},
		TopTenStarClusters: []scoring.Scored{},
		GeneratedAt:        start,
	}
}

func TestReportWorkbook(t *testing.T) {
	buf, err := ReportWorkbook(sampleReport())
	if err != nil {
		t.Fatalf("ReportWorkbook() error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("workbook not readable: %v", err)
	}
	defer f.Close()

	wantSheets := []string{"Top 5", "Nebulae", "Galaxies", "Star Clusters", "Info"}
	if got := f.GetSheetList(); !slices.Equal(got, wantSheets) {
		t.Errorf("sheets = %v, want %v", got, wantSheets)
	}

	rows, err := f.GetRows("Top 5")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("Top 5 has %d rows, want header + 2", len(rows))
	}
	if rows[0][2] != "Name" || rows[1][2] != "Andromeda Galaxy" || rows[2][1] != "ic434" {
		t.Errorf("unexpected rows: %v", rows)
	}
	if rows[1][3] != "M31, NGC 224" {
		t.Errorf("designations = %q", rows[1][3])
	}

	clusters, _ := f.GetRows("Star Clusters")
	if len(clusters) != 1 {
		t.Errorf("empty list should leave only the header, got %d rows", len(clusters))
	}

	date, _ := f.GetCellValue("Info", "B1")
	if date != "2023-12-21" {
		t.Errorf("info date = %q", date)
	}
}

func TestWriteReportCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReportCSV(&buf, sampleReport()); err != nil {
		t.Fatalf("WriteReportCSV() error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("csv not readable: %v", err)
	}
	// header + 2 + 1 + 1
	if len(records) != 5 {
		t.Fatalf("got %d records, want 5", len(records))
	}
	if records[0][0] != "List" || records[1][0] != "Top 5" || records[3][0] != "Nebulae" {
		t.Errorf("unexpected list column: %v", records)
	}
	if records[2][10] != "" {
		t.Errorf("unknown magnitude should be blank, got %q", records[2][10])
	}
	if records[1][11] != "0.9000" {
		t.Errorf("visibility = %q", records[1][11])
	}
}
