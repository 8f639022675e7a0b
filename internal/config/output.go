package config

// MoveFormat selects how moves are printed.
type MoveFormat int

const (
	Notation MoveFormat = iota // Engine notation (Nf3, exd6, 0-0)
	UCI                        // Long algebraic (g1f3)
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the move notation
	Format MoveFormat

	// Color enables ANSI colours in board diagrams
	Color bool

	// ShowBoard prints the board diagram after the moves are played
	ShowBoard bool

	// ShowFEN prints the resulting FEN
	ShowFEN bool

	// ListMoves prints the legal moves of the resulting position
	ListMoves bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:  Notation,
		Color:   true,
		ShowFEN: true,
	}
}
