package config

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/errors"
)

// MaxPerftDepth bounds the requested search depth.
const MaxPerftDepth = 10

// PerftConfig holds settings for move-tree counting.
type PerftConfig struct {
	// Depth is the search depth; 0 disables counting
	Depth int

	// Divide reports the count below each root move
	Divide bool

	// Workers is the number of goroutines splitting the root moves
	Workers int

	// UseCache shares subtree counts through a Zobrist-keyed cache
	UseCache bool

	// CacheSize caps the cache entries; 0 means unlimited
	CacheSize int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: 1,
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside [0,%d]: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("worker count %d < 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.CacheSize < 0 {
		return fmt.Errorf("cache size %d is negative: %w", p.CacheSize, errors.ErrInvalidConfig)
	}
	return nil
}
