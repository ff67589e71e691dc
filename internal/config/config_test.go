package config

import (
	"strings"
	"testing"
	"time"
)

func validBaseConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			Env:            "development",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      "8000",
			Namespace: "workhive",
			Database:  "main",
		},
		JWT: JWTConfig{
			AccessSecret:  "access-secret",
			AccessTTL:     15 * time.Minute,
			RefreshSecret: "refresh-secret",
			RefreshTTL:    7 * 24 * time.Hour,
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	if err := validBaseConfig().Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestConfig_Validate_InvalidServerEnv(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Env = "invalid"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid SERVER_ENV")
	}
	if !strings.Contains(err.Error(), "SERVER_ENV") {
		t.Errorf("expected error to mention SERVER_ENV, got: %v", err)
	}
}

func TestConfig_Validate_MissingJWTSecrets(t *testing.T) {
	cfg := validBaseConfig()
	cfg.JWT.AccessSecret = ""
	cfg.JWT.RefreshSecret = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing JWT secrets")
	}
	if !strings.Contains(err.Error(), "JWT_ACCESS_SECRET") {
		t.Errorf("expected error to mention JWT_ACCESS_SECRET, got: %v", err)
	}
}

func TestConfig_Validate_SameJWTSecrets(t *testing.T) {
	cfg := validBaseConfig()
	cfg.JWT.RefreshSecret = cfg.JWT.AccessSecret

	if err := cfg.Validate(); err == nil {
		t.Error("expected error when access and refresh secrets match")
	}
}

func TestConfig_Validate_SeederWithoutPassword(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Seed.ShouldInit = true

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for SHOULD_INIT without INIT_PASSWORD")
	}
	if !strings.Contains(err.Error(), "INIT_PASSWORD") {
		t.Errorf("expected error to mention INIT_PASSWORD, got: %v", err)
	}
}

func TestParseTTL(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"15m", 15 * time.Minute, false},
		{"1h30m", 90 * time.Minute, false},
		{"1d", 24 * time.Hour, false},
		{"7d", 7 * 24 * time.Hour, false},
		{"xd", 0, true},
		{"banana", 0, true},
	}

	for _, tt := range tests {
		got, err := parseTTL(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseTTL(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseTTL(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseTTL(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestConfig_EnvironmentChecks(t *testing.T) {
	cfg := validBaseConfig()

	if !cfg.IsDevelopment() {
		t.Error("expected development mode")
	}

	cfg.Server.Env = "production"
	if !cfg.IsProduction() {
		t.Error("expected production mode")
	}
}
