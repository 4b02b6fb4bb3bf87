package cliconfig

import (
	"os"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded from the working directory when present.
const DefaultEnvFile = ".env"

// LoadEnvFile loads path into the process environment if it exists.
// Variables already set in the environment are left untouched.
func LoadEnvFile(path string) error {
	if path == "" || !FileExists(path) {
		return nil
	}
	return godotenv.Load(path)
}

// ApplyEnvConfig applies configuration from environment variables (STRINGSAVER_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("uri", os.Getenv("STRINGSAVER_URI"), &cfg.URI)
	s.setString("database", os.Getenv("STRINGSAVER_DATABASE"), &cfg.Database)
	s.setString("collection", os.Getenv("STRINGSAVER_COLLECTION"), &cfg.Collection)
	s.setString("log-level", os.Getenv("STRINGSAVER_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("timeout", os.Getenv("STRINGSAVER_TIMEOUT"), &cfg.Timeout); err != nil {
		return err
	}

	s.setBoolFromString("latest-first", os.Getenv("STRINGSAVER_LATEST_FIRST"), &cfg.LatestFirst)

	return nil
}
