package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/heroiclabs/nakama-common/runtime"
)

// BotIdentity is one entry of the seated-bot pool from data/bot_identities.json.
// UserID starts empty in the file and is filled in by ProvisionBots once the
// account exists server-side.
type BotIdentity struct {
	DeviceID    string `json:"device_id"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Difficulty  string `json:"difficulty"` // "easy" or "standard"
	AvatarIndex int    `json:"avatar_index"`
}

var (
	botIdentities []BotIdentity
	botsByUserID  map[string]BotIdentity
	loadOnce      sync.Once
	provisionOnce sync.Once
	loadErr       error
)

// LoadIdentities reads the bot pool from path. Subsequent calls are no-ops
// and return the first call's error, so every match handler can call it from
// MatchInit without coordination.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("read bot identities: %w", err)
			return
		}
		if err := json.Unmarshal(data, &botIdentities); err != nil {
			loadErr = fmt.Errorf("parse bot identities: %w", err)
			return
		}

		botsByUserID = make(map[string]BotIdentity, len(botIdentities))
		for _, identity := range botIdentities {
			if identity.UserID != "" {
				botsByUserID[identity.UserID] = identity
			}
		}
	})
	return loadErr
}

// ProvisionBots authenticates each pooled bot by device ID, creating the
// account on first run, and stamps it with is_bot metadata so clients and the
// settlement path can tell bots from humans. A pool entry that fails to
// authenticate is skipped rather than failing startup.
func ProvisionBots(ctx context.Context, nk runtime.NakamaModule, logger runtime.Logger) error {
	provisionOnce.Do(func() {
		if botsByUserID == nil {
			botsByUserID = make(map[string]BotIdentity, len(botIdentities))
		}
		for i := range botIdentities {
			identity := &botIdentities[i]
			if identity.DeviceID == "" {
				continue
			}

			userID, username, _, err := nk.AuthenticateDevice(ctx, identity.DeviceID, identity.Username, true)
			if err != nil {
				logger.Error("ProvisionBots: Could not authenticate bot %s: %v", identity.Username, err)
				continue
			}
			identity.UserID = userID
			identity.Username = username

			metadata := map[string]interface{}{
				"is_bot":       true,
				"difficulty":   identity.Difficulty,
				"avatar_index": identity.AvatarIndex,
			}
			if err := nk.AccountUpdateId(ctx, userID, identity.Username, metadata, identity.DisplayName, "", "", "", ""); err != nil {
				logger.Warn("ProvisionBots: Could not update bot account %s: %v", userID, err)
			}

			botsByUserID[userID] = *identity
			logger.Info("ProvisionBots: Bot %s (%s) is ready. Difficulty: %s", identity.DisplayName, userID, identity.Difficulty)
		}
	})
	return nil
}

// GetBotConfig returns the pool entry for a bot user ID.
func GetBotConfig(userID string) (BotIdentity, bool) {
	config, ok := botsByUserID[userID]
	return config, ok
}

// GetBotUsername returns the username for a bot user ID, or "" for a human.
func GetBotUsername(userID string) string {
	return botsByUserID[userID].Username
}

// GetBotDisplayName returns the display name for a bot user ID, falling back
// to the username, or "" for a human.
func GetBotDisplayName(userID string) string {
	identity := botsByUserID[userID]
	if identity.DisplayName == "" {
		return identity.Username
	}
	return identity.DisplayName
}

// GetBotIdentity picks a pool entry by index, wrapping around the pool. With
// no pool loaded it fabricates a placeholder so a match can still fill seats.
func GetBotIdentity(index int) BotIdentity {
	if len(botIdentities) == 0 {
		return BotIdentity{
			UserID:      fmt.Sprintf("bot-%d", index),
			DisplayName: fmt.Sprintf("AI Player %d", index),
		}
	}
	return botIdentities[index%len(botIdentities)]
}

// IsBot reports whether the user ID belongs to the provisioned bot pool.
func IsBot(userID string) bool {
	_, ok := botsByUserID[userID]
	return ok
}
