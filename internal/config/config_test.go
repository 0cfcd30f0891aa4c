package config

import (
	"os"
	"testing"
	"time"
)

func clearEnvVars(vars []string) {
	for _, k := range vars {
		os.Unsetenv(k)
	}
}

var configEnvVars = []string{
	"HOST", "PORT", "READ_TIMEOUT", "WRITE_TIMEOUT", "IDLE_TIMEOUT", "ENVIRONMENT", "MAX_PAGE_SIZE",
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL_MODE",
	"JWT_SECRET", "ACCESS_TOKEN_TTL", "BCRYPT_COST",
	"RATE_LIMIT_ENABLED", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "RATE_LIMIT_CLEANUP",
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnvVars(configEnvVars)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected no error with default config, got: %v", err)
	}

	if config.Server.Host != "localhost" {
		t.Errorf("Expected default host 'localhost', got %s", config.Server.Host)
	}

	if config.Server.Port != "8080" {
		t.Errorf("Expected default port '8080', got %s", config.Server.Port)
	}

	if config.Server.Environment != "development" {
		t.Errorf("Expected default environment 'development', got %s", config.Server.Environment)
	}

	if config.Server.MaxPageSize != 100 {
		t.Errorf("Expected default max page size 100, got %d", config.Server.MaxPageSize)
	}

	if config.Database.Port != "5432" {
		t.Errorf("Expected default DB port '5432', got %s", config.Database.Port)
	}

	if config.Auth.AccessTokenTTL != time.Hour {
		t.Errorf("Expected default token TTL 1h, got %v", config.Auth.AccessTokenTTL)
	}

	if !config.RateLimit.Enabled {
		t.Error("Expected rate limiting enabled by default")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnvVars(configEnvVars)
	os.Setenv("PORT", "9090")
	os.Setenv("MAX_PAGE_SIZE", "25")
	os.Setenv("READ_TIMEOUT", "10s")
	os.Setenv("RATE_LIMIT_ENABLED", "false")
	defer clearEnvVars(configEnvVars)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if config.Server.Port != "9090" {
		t.Errorf("Expected port '9090', got %s", config.Server.Port)
	}

	if config.Server.MaxPageSize != 25 {
		t.Errorf("Expected max page size 25, got %d", config.Server.MaxPageSize)
	}

	if config.Server.ReadTimeout != 10*time.Second {
		t.Errorf("Expected read timeout 10s, got %v", config.Server.ReadTimeout)
	}

	if config.RateLimit.Enabled {
		t.Error("Expected rate limiting disabled")
	}
}

func TestLoadConfig_ProductionRequiresSecrets(t *testing.T) {
	clearEnvVars(configEnvVars)
	os.Setenv("ENVIRONMENT", "production")
	defer clearEnvVars(configEnvVars)

	if _, err := LoadConfig(); err == nil {
		t.Error("Expected error for production config without secrets")
	}

	os.Setenv("DB_PASSWORD", "secret")
	if _, err := LoadConfig(); err == nil {
		t.Error("Expected error for production config with default JWT secret")
	}

	os.Setenv("JWT_SECRET", "real-secret")
	if _, err := LoadConfig(); err != nil {
		t.Errorf("Expected no error once secrets are set, got: %v", err)
	}
}

func TestGetDatabaseDSN(t *testing.T) {
	clearEnvVars(configEnvVars)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	expected := "host=localhost port=5432 user=postgres password= dbname=library_services sslmode=disable"
	if dsn := config.GetDatabaseDSN(); dsn != expected {
		t.Errorf("Expected DSN %q, got %q", expected, dsn)
	}
}

func TestGetServerAddr(t *testing.T) {
	clearEnvVars(configEnvVars)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if addr := config.GetServerAddr(); addr != "localhost:8080" {
		t.Errorf("Expected addr 'localhost:8080', got %s", addr)
	}
}
