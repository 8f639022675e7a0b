package config

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/errors"
)

// PositionConfig selects the position to work on.
type PositionConfig struct {
	// FEN is the starting position
	FEN string

	// Moves are played from FEN before anything else, in long algebraic or
	// engine notation
	Moves []string
}

// NewPositionConfig creates a PositionConfig for the standard start position.
func NewPositionConfig() *PositionConfig {
	return &PositionConfig{FEN: engine.InitialFEN}
}

// Validate checks that a starting position is set. The FEN itself is checked
// when the game is built.
func (p *PositionConfig) Validate() error {
	if p.FEN == "" {
		return fmt.Errorf("empty FEN: %w", errors.ErrInvalidConfig)
	}
	return nil
}
