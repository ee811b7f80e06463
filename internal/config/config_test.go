package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("KONDATE_JWT_SECRET", "secret")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.Server.Port != 8080 {
			t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
		}
		if cfg.Database.Path != "data/kondate.db" {
			t.Errorf("Expected default database path, got %q", cfg.Database.Path)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("Expected default log level 'info', got %q", cfg.LogLevel)
		}
		if cfg.Redis.TTL != 10*time.Minute {
			t.Errorf("Expected default redis ttl 10m, got %v", cfg.Redis.TTL)
		}
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("KONDATE_JWT_SECRET", "secret")
		t.Setenv("KONDATE_SERVER_PORT", "9090")
		t.Setenv("KONDATE_DATABASE_PATH", "/tmp/test.db")
		t.Setenv("KONDATE_LOG_LEVEL", "debug")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.Server.Port != 9090 {
			t.Errorf("Expected port 9090, got %d", cfg.Server.Port)
		}
		if cfg.Database.Path != "/tmp/test.db" {
			t.Errorf("Expected database path '/tmp/test.db', got %q", cfg.Database.Path)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("Expected log level 'debug', got %q", cfg.LogLevel)
		}
	})

	t.Run("MissingJWTSecret", func(t *testing.T) {
		t.Setenv("KONDATE_JWT_SECRET", "")

		_, err := Load()
		if err == nil {
			t.Fatal("Expected an error for missing jwt secret, got nil")
		}
	})

	t.Run("AllowedChats", func(t *testing.T) {
		t.Setenv("KONDATE_JWT_SECRET", "secret")
		t.Setenv("KONDATE_TELEGRAM_CHATS", "123, -456,789")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		want := []int64{123, -456, 789}
		if len(cfg.Telegram.AllowedChats) != len(want) {
			t.Fatalf("Expected %d chat ids, got %d", len(want), len(cfg.Telegram.AllowedChats))
		}
		for i, id := range want {
			if cfg.Telegram.AllowedChats[i] != id {
				t.Errorf("Chat id %d: expected %d, got %d", i, id, cfg.Telegram.AllowedChats[i])
			}
		}
	})

	t.Run("BadChatID", func(t *testing.T) {
		t.Setenv("KONDATE_JWT_SECRET", "secret")
		t.Setenv("KONDATE_TELEGRAM_CHATS", "abc")

		_, err := Load()
		if err == nil {
			t.Fatal("Expected an error for bad chat id, got nil")
		}
	})
}
