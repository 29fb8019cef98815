package database

import (
	"context"
	"embed"
	"fmt"
	"time"

	"deepsky/internal/models"

	"github.com/pressly/goose/v3"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

//go:embed migrations
var migrations embed.FS

type Config struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	Debug    bool
}

// DSN собирает строку подключения для выбранного драйвера
func (c Config) DSN() (string, error) {
	switch c.Driver {
	case DriverPostgres, "":
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
		), nil
	case DriverMySQL:
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.User, c.Password, c.Host, c.Port, c.DBName,
		), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}

func (c Config) dialector() (gorm.Dialector, error) {
	dsn, err := c.DSN()
	if err != nil {
		return nil, err
	}
	if c.Driver == DriverMySQL {
		return mysql.Open(dsn), nil
	}
	return postgres.Open(dsn), nil
}

func Connect(config Config) (*gorm.DB, error) {
	dialector, err := config.dialector()
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if config.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Настройка пула соединений
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.WithFields(log.Fields{
		"driver": dialector.Name(),
		"host":   config.Host,
		"db":     config.DBName,
	}).Info("База данных подключена")
	return db, nil
}

// Migrate создаёт таблицы моделей, затем применяет SQL-миграции goose
// с индексами под конкретный диалект
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&models.SavedLocation{},
		&models.SettingsRecord{},
		&models.ImagingPresetRecord{},
		&models.FeedSnapshot{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate models: %w", err)
	}

	dialect := db.Dialector.Name()
	dir, err := migrationDir(dialect)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(log.StandardLogger())
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, dir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.WithField("dialect", dialect).Info("Миграция базы данных завершена")
	return nil
}

func migrationDir(dialect string) (string, error) {
	switch dialect {
	case DriverPostgres, DriverMySQL:
		return "migrations/" + dialect, nil
	default:
		return "", fmt.Errorf("no migrations for dialect %q", dialect)
	}
}
