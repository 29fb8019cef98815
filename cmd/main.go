package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deepsky/internal/catalog"
	"deepsky/internal/clients"
	"deepsky/internal/config"
	"deepsky/internal/handlers"
	"deepsky/internal/middleware"
	"deepsky/internal/repository"
	"deepsky/internal/service"
	"deepsky/internal/worker"
	"deepsky/pkg/database"
	"deepsky/pkg/redis"
	"deepsky/pkg/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

func main() {
	// Загрузка .env
	if err := godotenv.Load(); err != nil {
		log.Info("Файл .env не найден, используем переменные окружения")
	}

	// Загрузка конфигурации
	cfg := config.Load()
	setupLogging(cfg)

	log.Info("=== DeepSky Planner Backend Starting ===")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Подключение к базе
	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.WithError(err).Fatal("Не удалось подключиться к базе данных")
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	// Подключение к Redis
	redisClient, err := redis.Connect(cfg.Redis)
	if err != nil {
		log.WithError(err).Fatal("Не удалось подключиться к Redis")
	}
	defer redisClient.Close()

	// Миграции
	if err := database.Migrate(ctx, db); err != nil {
		log.WithError(err).Fatal("Не удалось выполнить миграции")
	}

	targets, err := catalog.Default()
	if err != nil {
		log.WithError(err).Fatal("Не удалось загрузить каталог")
	}
	log.WithField("targets", len(targets)).Info("Каталог загружен")

	// Инициализация репозиториев
	snapshotRepo := repository.NewFeedSnapshotRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient)

	// Клиенты фидов
	var sunClient clients.SunClient
	switch cfg.Feeds.SunProvider {
	case config.SunProviderAPI:
		sunClient = clients.NewSunClient(clients.SunConfig{BaseURL: cfg.Feeds.SunURL, Timeout: cfg.Feeds.Timeout})
	default:
		sunClient = clients.NewLocalSunClient()
	}
	moonClient := clients.NewMoonClient(clients.MoonConfig{BaseURL: cfg.Feeds.MoonURL, Timeout: cfg.Feeds.Timeout})
	log.WithField("sun_provider", cfg.Feeds.SunProvider).Info("Клиенты фидов настроены")

	// Хранилище выгрузок (необязательно)
	var store service.ObjectStore
	if cfg.Minio.Enabled {
		minioStore, err := storage.Connect(ctx, storage.Config{
			Endpoint:  cfg.Minio.Endpoint,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			Bucket:    cfg.Minio.Bucket,
			UseSSL:    cfg.Minio.UseSSL,
		})
		if err != nil {
			log.WithError(err).Warn("MinIO недоступен, выгрузки не будут сохраняться")
		} else {
			store = minioStore
		}
	}

	// Инициализация сервисов
	ephemerisService := service.NewEphemerisService(sunClient, moonClient, snapshotRepo, cacheRepo, cfg.Cache.FeedTTL)
	settingsService := service.NewSettingsService(settingsRepo, cacheRepo)
	locationService := service.NewLocationService(locationRepo)
	targetService := service.NewTargetService(ephemerisService, settingsService, targets)
	reportService := service.NewReportService(ephemerisService, settingsService, locationService, cacheRepo, targets, cfg.Cache.ReportTTL)
	exportService := service.NewExportService(store)

	// Инициализация воркеров (фоновые задачи)
	scheduler := worker.NewScheduler()

	if cfg.Workers.ReportEnabled {
		scheduler.AddWorker(worker.NewReportWorker(reportService, cfg.Workers.ReportInterval))
		log.WithField("interval", cfg.Workers.ReportInterval).Info("Report Worker включён")
	}

	if cfg.Workers.CleanupEnabled {
		scheduler.AddWorker(worker.NewSnapshotCleanupWorker(ephemerisService, cfg.Workers.CleanupInterval, cfg.Workers.SnapshotRetention))
		log.WithField("interval", cfg.Workers.CleanupInterval).Info("Snapshot Cleanup Worker включён")
	}

	go scheduler.Start()
	defer scheduler.Stop()

	// Инициализация Gin
	if cfg.App.Debug {
		gin.SetMode(gin.DebugMode)
		log.Info("Режим DEBUG")
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	// CORS для фронтенда
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", cfg.App.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Object-Path"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Rate limiting (только для продакшена)
	if !cfg.App.Debug {
		limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		ipLimiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit.PerIPPerSecond), cfg.RateLimit.PerIPBurst)
		r.Use(middleware.RateLimitMiddleware(limiter), middleware.IPRateLimitMiddleware(ipLimiter))
		log.WithFields(log.Fields{
			"rps":      cfg.RateLimit.RequestsPerSecond,
			"burst":    cfg.RateLimit.Burst,
			"ip_rps":   cfg.RateLimit.PerIPPerSecond,
			"ip_burst": cfg.RateLimit.PerIPBurst,
		}).Info("Rate limiting включён")
	}

	// Группа API v1
	handlers.RegisterRoutes(r.Group("/api/v1"), handlers.Handlers{
		System:    handlers.NewSystemHandler(db, redisClient, snapshotRepo, locationRepo),
		Ephemeris: handlers.NewEphemerisHandler(ephemerisService, locationService),
		Targets:   handlers.NewTargetHandler(targetService, locationService),
		Reports:   handlers.NewReportHandler(reportService, exportService, locationService),
		Settings:  handlers.NewSettingsHandler(settingsService),
		Locations: handlers.NewLocationHandler(locationService),
	})

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.App.Port).Info("Сервер запущен, API на /api/v1")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Сервер не смог запуститься")
		}
	}()

	<-ctx.Done()
	log.Info("Остановка сервера...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Принудительная остановка сервера")
		return
	}

	log.Info("Сервер остановлен")
}

// setupLogging: уровень из LOG_LEVEL, JSON-формат вне debug
func setupLogging(cfg *config.Config) {
	log.SetOutput(os.Stdout)

	level, err := log.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	if cfg.App.Debug {
		level = log.DebugLevel
	}
	log.SetLevel(level)

	if cfg.App.Debug {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&log.JSONFormatter{})
	}
}
