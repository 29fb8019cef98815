package handlers

import (
	"context"
	"net/http"
	"time"

	"deepsky/internal/repository"
	redisstats "deepsky/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const version = "1.0.0"

type SystemHandler struct {
	db        *gorm.DB
	redis     *redis.Client
	snapshots repository.FeedSnapshotRepository
	locations repository.LocationRepository
}

func NewSystemHandler(
	db *gorm.DB,
	redisClient *redis.Client,
	snapshots repository.FeedSnapshotRepository,
	locations repository.LocationRepository,
) *SystemHandler {
	return &SystemHandler{
		db:        db,
		redis:     redisClient,
		snapshots: snapshots,
		locations: locations,
	}
}

// HealthResponse структура ответа для health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
	Timestamp time.Time         `json:"timestamp"`
}

// HealthCheck проверяет доступность базы и Redis
func (h *SystemHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	health := HealthResponse{
		Status:    "ok",
		Version:   version,
		Services:  map[string]string{"api": "running"},
		Timestamp: time.Now().UTC(),
	}

	health.Services["database"] = "connected"
	if err := h.pingDB(ctx); err != nil {
		log.WithError(err).Warn("База данных недоступна")
		health.Services["database"] = "unavailable"
		health.Status = "degraded"
	}

	health.Services["redis"] = "connected"
	if err := h.redis.Ping(ctx).Err(); err != nil {
		log.WithError(err).Warn("Redis недоступен")
		health.Services["redis"] = "unavailable"
		health.Status = "degraded"
	}

	status := http.StatusOK
	if health.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, health)
}

func (h *SystemHandler) pingDB(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// GetStats - счётчики хранилища и статистика Redis
func (h *SystemHandler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()
	var errors []string

	snapshots, err := h.snapshots.Count(ctx)
	if err != nil {
		errors = append(errors, "snapshots: "+err.Error())
	}
	locations, err := h.locations.Count(ctx)
	if err != nil {
		errors = append(errors, "locations: "+err.Error())
	}
	redisStats, err := redisstats.GetStats(ctx, h.redis)
	if err != nil {
		errors = append(errors, "redis: "+err.Error())
	}

	c.JSON(http.StatusOK, gin.H{
		"success": len(errors) == 0,
		"data": gin.H{
			"feed_snapshots":  snapshots,
			"saved_locations": locations,
			"redis":           redisStats,
		},
		"errors": errors,
	})
}
