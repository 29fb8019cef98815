package database

import (
	"io/fs"
	"strings"
	"testing"
)

func TestDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: "5432", User: "astro", Password: "secret", DBName: "deepsky", SSLMode: "disable"}

	dsn, err := cfg.DSN()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(dsn, "host=db") || !strings.Contains(dsn, "dbname=deepsky") {
		t.Errorf("postgres dsn = %q", dsn)
	}

	cfg.Driver, cfg.Port = DriverMySQL, "3306"
	dsn, err = cfg.DSN()
	if err != nil {
		t.Fatal(err)
	}
	if dsn != "astro:secret@tcp(db:3306)/deepsky?charset=utf8mb4&parseTime=True&loc=UTC" {
		t.Errorf("mysql dsn = %q", dsn)
	}

	cfg.Driver = "sqlite"
	if _, err := cfg.DSN(); err == nil {
		t.Error("unknown driver should fail")
	}
}

func TestMigrationsEmbeddedPerDialect(t *testing.T) {
	for _, dialect := range []string{DriverPostgres, DriverMySQL} {
		dir, err := migrationDir(dialect)
		if err != nil {
			t.Fatal(err)
		}
		files, err := fs.Glob(migrations, dir+"/*.sql")
		if err != nil {
			t.Fatal(err)
		}
		if len(files) != 2 {
			t.Errorf("%s: %d migrations, want 2", dialect, len(files))
		}
		for _, f := range files {
			data, _ := fs.ReadFile(migrations, f)
			if !strings.Contains(string(data), "-- +goose Up") || !strings.Contains(string(data), "-- +goose Down") {
				t.Errorf("%s lacks goose annotations", f)
			}
		}
	}
	if _, err := migrationDir("sqlite"); err == nil {
		t.Error("sqlite has no migrations")
	}
}
