package bot

// NewAgent builds an agent for a provisioned bot identity. The identity's
// difficulty picks the strategy; unknown bots get the standard brain.
func NewAgent(botID string) (*Agent, error) {
	level := BotLevelStandard
	name := botID
	if identity, ok := GetBotConfig(botID); ok {
		level = levelForDifficulty(identity.Difficulty)
		name = identity.DisplayName
	}

	brain, err := NewBrain(level)
	if err != nil {
		return nil, err
	}

	return &Agent{
		ID:       botID,
		Name:     name,
		Strategy: brain,
	}, nil
}
