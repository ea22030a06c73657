package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid config",
			config: Config{
				Host:    "0.0.0.0",
				Port:    "5000",
				DBPath:  "./test.db",
				AppName: "FinTrack",
			},
			wantErr: false,
		},
		{
			name: "invalid port - non-numeric",
			config: Config{
				Port:    "abc",
				DBPath:  "./test.db",
				AppName: "FinTrack",
			},
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name: "invalid port - out of range",
			config: Config{
				Port:    "70000",
				DBPath:  "./test.db",
				AppName: "FinTrack",
			},
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name: "missing database path",
			config: Config{
				Port:    "5000",
				DBPath:  "",
				AppName: "FinTrack",
			},
			wantErr:     true,
			errorString: "database path cannot be empty",
		},
		{
			name: "missing app name",
			config: Config{
				Port:   "5000",
				DBPath: "./test.db",
			},
			wantErr:     true,
			errorString: "app name cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errorString) {
				t.Errorf("Validate() error = %q, want substring %q", err, tt.errorString)
			}
		})
	}
}

func TestConfig_ValidateCreatesDBDirectory(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Port:    "5000",
		DBPath:  filepath.Join(dir, "nested", "fintrack.db"),
		AppName: "FinTrack",
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port == "" || cfg.DBPath == "" || cfg.AppName == "" {
		t.Fatalf("Load() returned incomplete defaults: %+v", cfg)
	}
	if cfg.Addr() != cfg.Host+":"+cfg.Port {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
}
