package cliconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/stringsaver/internal/adapters/mongodb"
)

// Defaults match the fixed endpoint the tool has always used.
const (
	DefaultURI        = "mongodb://localhost:27017"
	DefaultDatabase   = "mydatabase"
	DefaultCollection = "mycollection"
	DefaultLogLevel   = "warn"
)

// Config holds CLI configuration for stringsaver.
type Config struct {
	URI        string
	Database   string
	Collection string

	Timeout     time.Duration
	LatestFirst bool
	LogLevel    string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		URI:         DefaultURI,
		Database:    DefaultDatabase,
		Collection:  DefaultCollection,
		Timeout:     mongodb.DefaultTimeout,
		LatestFirst: true,
		LogLevel:    DefaultLogLevel,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.URI == "" {
		return fmt.Errorf("uri is required")
	}
	if !strings.HasPrefix(c.URI, "mongodb://") && !strings.HasPrefix(c.URI, "mongodb+srv://") {
		return fmt.Errorf("uri must start with mongodb:// or mongodb+srv://")
	}
	if c.Database == "" {
		return fmt.Errorf("database is required")
	}
	if c.Collection == "" {
		return fmt.Errorf("collection is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.LogLevel == "" {
		return fmt.Errorf("log level is required")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Mongo returns the storage settings for the MongoDB gateway.
func (c Config) Mongo() mongodb.Config {
	return mongodb.Config{
		URI:        c.URI,
		Database:   c.Database,
		Collection: c.Collection,
		Timeout:    c.Timeout,
	}
}

// Redacted returns a copy safe to log, with URI credentials masked.
func (c Config) Redacted() Config {
	out := c
	out.URI = redactURI(c.URI)
	return out
}

// redactURI masks the userinfo part of a connection string.
func redactURI(uri string) string {
	scheme := strings.Index(uri, "://")
	if scheme < 0 {
		return uri
	}
	rest := uri[scheme+3:]
	at := strings.LastIndex(rest, "@")
	if at < 0 {
		return uri
	}
	if slash := strings.Index(rest, "/"); slash >= 0 && slash < at {
		return uri
	}
	return uri[:scheme+3] + "*****@" + rest[at+1:]
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
