package utils

import (
	"encoding/csv"
	"fmt"
	"io"

	"deepsky/internal/report"
)

// WriteReportCSV пишет все списки отчёта одной таблицей с колонкой List
func WriteReportCSV(w io.Writer, r report.DailyReport) error {
	cw := csv.NewWriter(w)

	header := append([]string{"List"}, targetHeaders...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, section := range Sections(r) {
		for i, s := range section.Items {
			row := TargetRow(i+1, s)
			record := make([]string, 0, len(row)+1)
			record = append(record, section.Sheet)
			for _, v := range row {
				switch x := v.(type) {
				case float64:
					record = append(record, fmt.Sprintf("%.4f", x))
				default:
					record = append(record, fmt.Sprint(x))
				}
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
