package bot

import (
	"errors"
	"fmt"
)

var errNotSeated = errors.New("bot is not seated at this table")

// BotLevel selects which strategy a bot agent runs.
type BotLevel int

const (
	BotLevelBasic BotLevel = iota
	BotLevelStandard
)

// NewBrain creates a new AI brain based on the specified level.
func NewBrain(level BotLevel) (Brain, error) {
	switch level {
	case BotLevelBasic:
		return &BasicBot{}, nil
	case BotLevelStandard:
		return &StandardBot{}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}

// levelForDifficulty maps an identity difficulty string to a strategy level.
func levelForDifficulty(difficulty string) BotLevel {
	switch difficulty {
	case "easy":
		return BotLevelBasic
	default:
		return BotLevelStandard
	}
}
