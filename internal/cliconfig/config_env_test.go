package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"STRINGSAVER_URI":          "mongodb://env:27017",
				"STRINGSAVER_DATABASE":     "envdb",
				"STRINGSAVER_COLLECTION":   "envcoll",
				"STRINGSAVER_TIMEOUT":      "2s",
				"STRINGSAVER_LATEST_FIRST": "false",
				"STRINGSAVER_LOG_LEVEL":    "debug",
			},
			changed: map[string]bool{},
			initial: DefaultConfig(),
			expected: Config{
				URI:         "mongodb://env:27017",
				Database:    "envdb",
				Collection:  "envcoll",
				Timeout:     2 * time.Second,
				LatestFirst: false,
				LogLevel:    "debug",
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"STRINGSAVER_URI":      "mongodb://env:27017",
				"STRINGSAVER_DATABASE": "envdb",
			},
			changed:  map[string]bool{"uri": true},
			initial:  Config{URI: "mongodb://flag:27017"},
			expected: Config{URI: "mongodb://flag:27017", Database: "envdb"},
		},
		{
			name:     "handles bool '1' as true",
			envVars:  map[string]string{"STRINGSAVER_LATEST_FIRST": "1"},
			changed:  map[string]bool{},
			initial:  Config{},
			expected: Config{LatestFirst: true},
		},
		{
			name:    "returns error for invalid duration",
			envVars: map[string]string{"STRINGSAVER_TIMEOUT": "not-a-duration"},
			changed: map[string]bool{},
			initial: Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)
			if tt.wantErr {
				if err == nil {
					t.Error("ApplyEnvConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "STRINGSAVER_DATABASE=dotenvdb\nSTRINGSAVER_COLLECTION=dotenvcoll\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	// Existing variables win over the file.
	t.Setenv("STRINGSAVER_COLLECTION", "preset")
	t.Setenv("STRINGSAVER_DATABASE", "")
	os.Unsetenv("STRINGSAVER_DATABASE")

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile: %v", err)
	}
	if got := os.Getenv("STRINGSAVER_DATABASE"); got != "dotenvdb" {
		t.Errorf("STRINGSAVER_DATABASE = %q, want dotenvdb", got)
	}
	if got := os.Getenv("STRINGSAVER_COLLECTION"); got != "preset" {
		t.Errorf("STRINGSAVER_COLLECTION = %q, want preset", got)
	}
}

func TestLoadEnvFile_Missing(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("LoadEnvFile(missing) = %v, want nil", err)
	}
	if err := LoadEnvFile(""); err != nil {
		t.Errorf("LoadEnvFile(\"\") = %v, want nil", err)
	}
}

// Precedence order: flags > env > file > defaults.
func TestConfigPrecedence(t *testing.T) {
	fileConf := FileConfig{
		URI:        "mongodb://file:27017",
		Database:   "filedb",
		Collection: "filecoll",
	}
	t.Setenv("STRINGSAVER_DATABASE", "envdb")
	t.Setenv("STRINGSAVER_COLLECTION", "envcoll")

	cfg := DefaultConfig()
	cfg.Collection = "flagcoll"
	changed := map[string]bool{"collection": true}

	if err := ApplyFileConfig(&cfg, fileConf, changed); err != nil {
		t.Fatalf("ApplyFileConfig: %v", err)
	}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig: %v", err)
	}

	if cfg.URI != "mongodb://file:27017" {
		t.Errorf("URI = %v, want file value", cfg.URI)
	}
	if cfg.Database != "envdb" {
		t.Errorf("Database = %v, want env value", cfg.Database)
	}
	if cfg.Collection != "flagcoll" {
		t.Errorf("Collection = %v, want flag value", cfg.Collection)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want default", cfg.Timeout)
	}
}
