package model

import "strings"

// Difficulty selects the question pool for random picks. Random is a
// wildcard meaning no server-side filter, not a judge difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
	DifficultyRandom Difficulty = "RANDOM"
)

// ParseDifficulty maps free-form user input to a Difficulty, defaulting to
// the wildcard.
func ParseDifficulty(value string) Difficulty {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "EASY":
		return DifficultyEasy
	case "MEDIUM":
		return DifficultyMedium
	case "HARD":
		return DifficultyHard
	default:
		return DifficultyRandom
	}
}
