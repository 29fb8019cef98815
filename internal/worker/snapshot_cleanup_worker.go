package worker

import (
	"context"
	"time"

	"deepsky/internal/service"

	log "github.com/sirupsen/logrus"
)

// SnapshotCleanupWorker удаляет снимки фидов старше retention
type SnapshotCleanupWorker struct {
	service   service.EphemerisService
	interval  time.Duration
	retention time.Duration
	loop      *tickLoop
}

func NewSnapshotCleanupWorker(service service.EphemerisService, interval, retention time.Duration) *SnapshotCleanupWorker {
	w := &SnapshotCleanupWorker{
		service:   service,
		interval:  interval,
		retention: retention,
	}
	w.loop = newTickLoop(interval, false, w.cleanup)
	return w
}

func (w *SnapshotCleanupWorker) Start() {
	if !w.loop.start() {
		return
	}
	log.WithFields(log.Fields{
		"interval":  w.interval,
		"retention": w.retention,
	}).Info("Snapshot Cleanup Worker запущен")
}

func (w *SnapshotCleanupWorker) Stop() {
	if w.loop.stop() {
		log.Info("Snapshot Cleanup Worker остановлен")
	}
}

func (w *SnapshotCleanupWorker) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deleted, err := w.service.PruneSnapshots(ctx, w.retention)
	if err != nil {
		log.WithError(err).Error("Snapshot Cleanup Worker: ошибка очистки")
		return
	}
	if deleted > 0 {
		log.WithField("deleted", deleted).Info("Snapshot Cleanup Worker: старые снимки удалены")
	}
}
