package worker

import (
	"context"
	"time"

	"deepsky/internal/service"

	log "github.com/sirupsen/logrus"
)

// ReportWorker заранее строит отчёты для сохранённых точек,
// чтобы первый запрос за ночь шёл из кэша
type ReportWorker struct {
	service  service.ReportService
	interval time.Duration
	timeout  time.Duration
	loop     *tickLoop
}

func NewReportWorker(service service.ReportService, interval time.Duration) *ReportWorker {
	w := &ReportWorker{
		service:  service,
		interval: interval,
		timeout:  2 * time.Minute,
	}
	// Первый прогрев сразу при старте
	w.loop = newTickLoop(interval, true, w.warm)
	return w
}

func (w *ReportWorker) Start() {
	log.WithField("interval", w.interval).Info("Report Worker запущен")
	if !w.loop.start() {
		log.Debug("Report Worker уже запущен")
	}
}

func (w *ReportWorker) Stop() {
	if w.loop.stop() {
		log.Info("Report Worker остановлен")
	}
}

func (w *ReportWorker) warm() {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	start := time.Now()
	warmed, err := w.service.WarmSavedLocations(ctx)
	entry := log.WithFields(log.Fields{
		"warmed":   warmed,
		"duration": time.Since(start).String(),
	})
	if err != nil {
		entry.WithError(err).Warn("Report Worker: не все отчёты построены")
		return
	}
	entry.Debug("Report Worker: отчёты обновлены")
}
