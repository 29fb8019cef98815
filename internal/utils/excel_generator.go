package utils

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"deepsky/internal/report"
	"deepsky/internal/scoring"
)

const infoSheet = "Info"

// ReportSection - один ранжированный список отчёта
type ReportSection struct {
	Sheet string
	Items []scoring.Scored
}

// Sections возвращает списки отчёта в порядке вывода
func Sections(r report.DailyReport) []ReportSection {
	return []ReportSection{
		{Sheet: "Top 5", Items: r.TopFive},
		{Sheet: "Nebulae", Items: r.TopTenNebulae},
		{Sheet: "Galaxies", Items: r.TopTenGalaxies},
		{Sheet: "Star Clusters", Items: r.TopTenStarClusters},
	}
}

var targetHeaders = []string{
	"Rank", "ID", "Name", "Designations", "Types", "Constellation",
	"RA (°)", "Dec (°)", "Size (')", "Magnitude", "Visibility", "Meridian",
}

// TargetRow - строка таблицы для одной цели
func TargetRow(rank int, s scoring.Scored) []interface{} {
	t := s.Target
	designations := make([]string, len(t.Designations))
	for i, d := range t.Designations {
		designations[i] = d.String()
	}
	types := make([]string, len(t.Types))
	for i, typ := range t.Types {
		types[i] = typ.String()
	}
	var magnitude interface{} = ""
	if t.Magnitude != nil {
		magnitude = *t.Magnitude
	}
	return []interface{}{
		rank,
		t.ID,
		t.Name(),
		strings.Join(designations, ", "),
		strings.Join(types, ", "),
		t.Constellation.String(),
		t.RA,
		t.Dec,
		fmt.Sprintf("%.1f × %.1f", t.Size.Length, t.Size.Width),
		magnitude,
		s.Visibility,
		s.Meridian,
	}
}

// ReportWorkbook строит книгу Excel: лист на каждый список и лист Info
func ReportWorkbook(r report.DailyReport) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sections := Sections(r)
	// Переименовываем лист по умолчанию в первый список
	if err := f.SetSheetName("Sheet1", sections[0].Sheet); err != nil {
		return nil, err
	}

	scoreStyle := getNumberStyle(f, 2) // 0.00
	for i, section := range sections {
		if i > 0 {
			if _, err := f.NewSheet(section.Sheet); err != nil {
				return nil, err
			}
		}
		if err := writeSection(f, section, scoreStyle); err != nil {
			return nil, fmt.Errorf("sheet %s: %w", section.Sheet, err)
		}
	}

	if len(r.TopFive) > 1 {
		if err := createChart(f, sections[0]); err != nil {
			return nil, err
		}
	}

	if err := createInfoSheet(f, r); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	return f.WriteToBuffer()
}

func writeSection(f *excelize.File, section ReportSection, scoreStyle int) error {
	sheet := section.Sheet
	if err := f.SetSheetRow(sheet, "A1", &targetHeaders); err != nil {
		return err
	}

	for i, s := range section.Items {
		row := TargetRow(i+1, s)
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	// Ширина колонок
	for i := 1; i <= len(targetHeaders); i++ {
		colName, _ := excelize.ColumnNumberToName(i)
		width := 14.0
		if i == 3 || i == 4 || i == 5 {
			width = 28
		}
		f.SetColWidth(sheet, colName, colName, width)
	}

	if len(section.Items) == 0 {
		return nil
	}
	last := len(section.Items) + 1
	f.SetCellStyle(sheet, "K2", fmt.Sprintf("L%d", last), scoreStyle)

	// Зелёный для хорошо видимых целей
	goodRule := []excelize.ConditionalFormatOptions{
		{
			Type:     "cell",
			Criteria: ">=",
			Value:    "0.8",
			Format:   getConditionalFormatStyle(f, "#C6EFCE"),
		},
	}
	return f.SetConditionalFormat(sheet, fmt.Sprintf("K2:K%d", last), goodRule)
}

func getNumberStyle(f *excelize.File, numFmt int) int {
	style, err := f.NewStyle(&excelize.Style{
		NumFmt: numFmt,
	})
	if err != nil {
		return 0
	}
	return style
}

func createChart(f *excelize.File, section ReportSection) error {
	last := len(section.Items) + 1
	chart := &excelize.Chart{
		Type: excelize.Bar,
		Series: []excelize.ChartSeries{
			{
				Name:       "Visibility",
				Categories: fmt.Sprintf("'%s'!$C$2:$C$%d", section.Sheet, last),
				Values:     fmt.Sprintf("'%s'!$K$2:$K$%d", section.Sheet, last),
			},
		},
		Title: []excelize.RichTextRun{
			{
				Text: "Visibility tonight",
			},
		},
		XAxis: excelize.ChartAxis{
			MajorGridLines: true,
		},
		Dimension: excelize.ChartDimension{
			Width:  600,
			Height: 320,
		},
	}
	return f.AddChart(section.Sheet, "N2", chart)
}

func createInfoSheet(f *excelize.File, r report.DailyReport) error {
	if _, err := f.NewSheet(infoSheet); err != nil {
		return err
	}

	metadata := [][2]interface{}{
		{"Date", r.Date},
		{"Latitude", r.Location.Latitude},
		{"Longitude", r.Location.Longitude},
		{"Timezone", r.Location.Timezone},
		{"Darkness", r.Darkness.String()},
		{"Window Start", formatInstant(r.Interval.Start, r.Location.Timezone)},
		{"Window End", formatInstant(r.Interval.End, r.Location.Timezone)},
		{"Window Hours", r.Interval.Duration().Hours()},
		{"Moon Phase", r.Moon.Phase},
		{"Moon Illuminated", r.Moon.Illuminated},
		{"Broadband Preferred", r.BroadbandPreferred},
		{"Stale", r.Stale},
		{"Report Generated", r.GeneratedAt.UTC().Format(time.RFC3339)},
	}

	for i, kv := range metadata {
		f.SetCellValue(infoSheet, fmt.Sprintf("A%d", i+1), kv[0])
		f.SetCellValue(infoSheet, fmt.Sprintf("B%d", i+1), kv[1])
	}
	f.SetColWidth(infoSheet, "A", "B", 24)
	return nil
}

func formatInstant(t time.Time, tz string) string {
	if t.IsZero() {
		return ""
	}
	if zone, err := time.LoadLocation(tz); err == nil && tz != "" {
		t = t.In(zone)
	}
	return t.Format("2006-01-02 15:04 MST")
}

// getConditionalFormatStyle создает стиль для условного форматирования
func getConditionalFormatStyle(f *excelize.File, color string) *int {
	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{color},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil
	}
	return &style
}
