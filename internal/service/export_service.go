package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"deepsky/internal/report"
	"deepsky/internal/utils"

	log "github.com/sirupsen/logrus"
)

const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

// ObjectStore - хранилище выгрузок (pkg/storage.MinioStore)
type ObjectStore interface {
	Upload(ctx context.Context, name, contentType string, data []byte) (string, error)
}

type Export struct {
	FileName    string
	ContentType string
	Data        []byte
	// ObjectPath заполнен, если выгрузка сохранена в хранилище
	ObjectPath string
}

type ExportService interface {
	Export(ctx context.Context, r report.DailyReport, format string) (*Export, error)
}

type exportService struct {
	store ObjectStore
}

// NewExportService: store может быть nil, тогда выгрузки не сохраняются
func NewExportService(store ObjectStore) ExportService {
	return &exportService{store: store}
}

func (s *exportService) Export(ctx context.Context, r report.DailyReport, format string) (*Export, error) {
	export := &Export{FileName: exportName(r, format)}

	switch format {
	case FormatXLSX:
		buf, err := utils.ReportWorkbook(r)
		if err != nil {
			return nil, fmt.Errorf("failed to build workbook: %w", err)
		}
		export.ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		export.Data = buf.Bytes()
	case FormatCSV:
		var buf bytes.Buffer
		if err := utils.WriteReportCSV(&buf, r); err != nil {
			return nil, fmt.Errorf("failed to write csv: %w", err)
		}
		export.ContentType = "text/csv"
		export.Data = buf.Bytes()
	default:
		return nil, fmt.Errorf("%w: unknown export format %q", ErrInvalidInput, format)
	}

	if s.store != nil {
		path, err := s.store.Upload(ctx, "reports/"+export.FileName, export.ContentType, export.Data)
		if err != nil {
			// Выгрузка всё равно отдаётся клиенту
			log.WithError(err).WithField("file", export.FileName).Warn("Не удалось сохранить выгрузку")
		} else {
			export.ObjectPath = path
		}
	}
	return export, nil
}

func exportName(r report.DailyReport, format string) string {
	loc := strings.NewReplacer(":", "_", "/", "-").Replace(r.Location.Key())
	return fmt.Sprintf("report_%s_%s.%s", r.Date, loc, format)
}
