package log

import "github.com/rs/zerolog"

// NewNoopLogger returns an adapter over zerolog.Nop, so every level is
// disabled and nothing is written.
func NewNoopLogger() *ZerologAdapter {
	return NewZerologAdapterWithLogger(zerolog.Nop())
}
