package config

// PlayConfig holds settings for applying moves from text.
type PlayConfig struct {
	// StrictMoves routes moves through the legal move set before applying
	// them. When false, the candidate built from the board is applied
	// unchecked, which can leave an illegal position.
	StrictMoves bool
}

// NewPlayConfig creates a PlayConfig with default values.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{
		StrictMoves: true,
	}
}
