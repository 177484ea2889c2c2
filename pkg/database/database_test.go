package database_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/JaimeStill/brand-lab/pkg/database"
)

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_DB_NAME", "brand_lab")
	t.Setenv("TEST_DB_USER", "brand")
	t.Setenv("TEST_DB_PORT", "5433")

	cfg := &database.Config{}
	err := cfg.Finalize(&database.Env{
		Name: "TEST_DB_NAME",
		User: "TEST_DB_USER",
		Port: "TEST_DB_PORT",
	})
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Host != "localhost" {
		t.Errorf("Host = %q, want localhost", cfg.Host)
	}
	if cfg.Port != 5433 {
		t.Errorf("Port = %d, want 5433", cfg.Port)
	}
	if cfg.MaxOpenConns != 25 {
		t.Errorf("MaxOpenConns = %d, want 25", cfg.MaxOpenConns)
	}
}

func TestConfig_Finalize_Required(t *testing.T) {
	tests := []struct {
		name string
		cfg  database.Config
	}{
		{"missing name", database.Config{User: "u"}},
		{"missing user", database.Config{Name: "n"}},
		{"bad lifetime", database.Config{Name: "n", User: "u", ConnMaxLifetime: "forever"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(nil); err == nil {
				t.Error("Finalize() error = nil, want error")
			}
		})
	}
}

func TestConfig_URL(t *testing.T) {
	cfg := &database.Config{Host: "db", Port: 5432, Name: "brand", User: "svc", Password: "p@ss"}

	want := "pgx5://svc:p%40ss@db:5432/brand?sslmode=disable"
	if got := cfg.URL(); got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}

func TestConfig_Dsn(t *testing.T) {
	cfg := &database.Config{Host: "db", Port: 5432, Name: "brand", User: "svc", Password: "secret"}

	want := "host=db port=5432 dbname=brand user=svc password=secret sslmode=disable"
	if got := cfg.Dsn(); got != want {
		t.Errorf("Dsn() = %q, want %q", got, want)
	}
}

func TestSystem_PingBeforeStart(t *testing.T) {
	cfg := &database.Config{Name: "brand", User: "svc"}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	sys, err := database.New(cfg, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer sys.Connection().Close()

	if err := sys.Ping(context.Background()); !errors.Is(err, database.ErrNotReady) {
		t.Errorf("Ping() error = %v, want ErrNotReady", err)
	}
	if database.ErrNotReady.Error() != "database not ready" {
		t.Errorf("ErrNotReady = %q", database.ErrNotReady.Error())
	}
}
