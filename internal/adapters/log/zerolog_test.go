package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/stringsaver/internal/ports"
)

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	z := NewZerologAdapterWithLogger(zerolog.New(&buf))

	z.Info("saved",
		ports.String("value", "hello"),
		ports.Bool("latest_first", true),
		ports.Any("timeout", 2*time.Second),
		ports.Err(errors.New("boom")),
		ports.Any("count", 3),
	)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log line %q: %v", buf.String(), err)
	}
	if entry["message"] != "saved" {
		t.Errorf("message = %v, want saved", entry["message"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
	if entry["value"] != "hello" {
		t.Errorf("value = %v, want hello", entry["value"])
	}
	if entry["latest_first"] != true {
		t.Errorf("latest_first = %v, want true", entry["latest_first"])
	}
	if entry["error"] != "boom" {
		t.Errorf("error = %v, want boom", entry["error"])
	}
}

func TestZerologAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	z := NewZerologAdapterWithLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))

	z.Debug("hidden")
	z.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	z.Warn("shown")
	if buf.Len() == 0 {
		t.Fatal("expected warn output")
	}
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	if lvl := l.logger.GetLevel(); lvl != zerolog.Disabled {
		t.Errorf("level = %v, want disabled", lvl)
	}

	var p ports.Logger = l
	p.Debug("x")
	p.Info("x")
	p.Warn("x")
	p.Error("x", ports.Err(errors.New("ignored")))
}
