// Package app sequences a single save against a storage gateway.
package app

import (
	"context"
	"fmt"

	"github.com/bft-labs/stringsaver/internal/domain"
	"github.com/bft-labs/stringsaver/internal/ports"
)

// Saver reports the previously saved string and stores a new one.
type Saver struct {
	gateway ports.Gateway
	opts    options
}

// NewSaver creates a Saver bound to gateway.
func NewSaver(gateway ports.Gateway, opts ...Option) *Saver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Saver{gateway: gateway, opts: o}
}

// Save runs one connect, find, insert, close cycle for value.
// The first failing step aborts the rest; the session is not closed on failure.
func (s *Saver) Save(ctx context.Context, value string) error {
	log := s.opts.logger

	log.Debug("connecting")
	if err := s.gateway.Connect(ctx); err != nil {
		return err
	}

	var sort *domain.Sort
	if s.opts.latestFirst {
		sort = domain.LatestFirst()
	}
	last, err := s.gateway.FindOne(ctx, domain.SavedEntryFilter(), sort)
	if err != nil {
		return err
	}
	log.Debug("looked up last entry", ports.Bool("found", last != nil), ports.Bool("latest_first", sort != nil))

	if _, err := fmt.Fprintf(s.opts.out, "Last saved string: %s\n", domain.DisplayValue(last)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	entry := domain.NewSavedEntry(value, s.opts.now())
	if err := s.gateway.InsertOne(ctx, entry); err != nil {
		return err
	}
	log.Debug("saved entry", ports.Any("timestamp", entry.Timestamp))

	if _, err := fmt.Fprintf(s.opts.out, "String \"%s\" has been saved to the database\n", value); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if err := s.gateway.Close(ctx); err != nil {
		return err
	}
	log.Debug("closed")
	return nil
}
