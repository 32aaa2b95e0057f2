// Package model defines shared data structures.
package model

// Config defines game settings after flags and the config file are merged.
type Config struct {
	Difficulty string
	// Penalty is empty when the penalty should follow the difficulty.
	Penalty  string
	Words    int
	Duration int
	LogLevel string
}

// Word is a single catalog entry.
type Word struct {
	Text string
	Tier int
}

// DifficultyLevel describes a tier of the word catalog.
type DifficultyLevel struct {
	ID          string
	Name        string
	Tier        int
	Description string
	Color       string
}

// PackSummary counts custom words stored for a tier.
type PackSummary struct {
	Tier  string
	Words int
}
