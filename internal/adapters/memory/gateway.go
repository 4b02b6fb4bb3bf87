// Package memory implements ports.Gateway over an in-process slice of
// documents. Lookups with no sort return the oldest matching document,
// mirroring natural insertion order.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bft-labs/stringsaver/internal/domain"
	"github.com/bft-labs/stringsaver/internal/ports"
)

var _ ports.Gateway = (*Gateway)(nil)

// Gateway is a document store held in memory. Documents survive Close, so a
// single Gateway can serve several connect/close cycles.
type Gateway struct {
	mu        sync.Mutex
	docs      []domain.Document
	connected bool
}

// NewGateway creates an empty store.
func NewGateway() *Gateway {
	return &Gateway{}
}

// Connect opens a session.
func (g *Gateway) Connect(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return domain.NewStorageError(domain.OpConnect, err)
	}
	g.connected = true
	return nil
}

// InsertOne stores a copy of record. Supported records are domain.SavedEntry,
// domain.Document and map[string]any.
func (g *Gateway) InsertOne(ctx context.Context, record any) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.connected {
		return domain.NewStorageError(domain.OpInsert, domain.ErrNotConnected)
	}

	var doc domain.Document
	switch r := record.(type) {
	case domain.SavedEntry:
		doc = r.Document()
	case *domain.SavedEntry:
		doc = r.Document()
	case domain.Document:
		doc = clone(r)
	case map[string]any:
		doc = clone(r)
	default:
		return domain.NewStorageError(domain.OpInsert, fmt.Errorf("unsupported record type %T", record))
	}
	g.docs = append(g.docs, doc)
	return nil
}

// FindOne returns a copy of the first matching document. Sorting supports
// time.Time and string fields; documents missing the field sort last.
func (g *Gateway) FindOne(ctx context.Context, filter domain.Filter, sort *domain.Sort) (domain.Document, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.connected {
		return nil, domain.NewStorageError(domain.OpFind, domain.ErrNotConnected)
	}

	var best domain.Document
	for _, d := range g.docs {
		if !filter.Matches(d) {
			continue
		}
		if best == nil {
			best = d
			if sort == nil {
				break
			}
			continue
		}
		if before(d, best, sort) {
			best = d
		}
	}
	if best == nil {
		return nil, nil
	}
	return clone(best), nil
}

// Close ends the session.
func (g *Gateway) Close(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.connected {
		return domain.NewStorageError(domain.OpClose, domain.ErrNotConnected)
	}
	g.connected = false
	return nil
}

// Documents returns a snapshot of every stored document in insertion order.
func (g *Gateway) Documents() []domain.Document {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]domain.Document, len(g.docs))
	for i, d := range g.docs {
		out[i] = clone(d)
	}
	return out
}

// Connected reports whether a session is open.
func (g *Gateway) Connected() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.connected
}

// before reports whether a orders strictly ahead of b under s. Ties keep
// the earlier-inserted document.
func before(a, b domain.Document, s *domain.Sort) bool {
	c, ok := compare(a[s.Field], b[s.Field])
	if !ok {
		_, aok := a[s.Field]
		_, bok := b[s.Field]
		return aok && !bok
	}
	if s.Descending {
		return c > 0
	}
	return c < 0
}

func compare(a, b any) (int, bool) {
	switch av := a.(type) {
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return 0, false
		}
		return av.Compare(bv), true
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, false
		}
		switch {
		case av < bv:
			return -1, true
		case av > bv:
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func clone(d map[string]any) domain.Document {
	out := make(domain.Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
