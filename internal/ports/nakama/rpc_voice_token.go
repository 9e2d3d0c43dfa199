package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"cinch/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

type voiceTokenRequest struct {
	Action  string `json:"action"` // "login" or "join"
	MatchID string `json:"match_id"`
}

type voiceTokenResponse struct {
	Token   string `json:"token"`
	Channel string `json:"channel,omitempty"`
}

// rpcVoiceToken signs a voice chat access token for the calling user. Join
// tokens are scoped to the table channel of the given match.
func rpcVoiceToken(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userId, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if !ok || userId == "" {
		return "", runtime.NewError("No user session", 16) // UNAUTHENTICATED
	}

	var req voiceTokenRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", 3) // INVALID_ARGUMENT
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	issuer := env["voice_issuer"]
	secret := env["voice_secret"]
	domain := env["voice_domain"]
	if issuer == "" || secret == "" {
		issuer = "test-issuer"
		secret = "test-secret"
		logger.Warn("Voice credentials missing from env, using test defaults.")
	}
	if domain == "" {
		domain = "mtu1xp.vivox.com"
	}

	channel := ""
	if req.Action == app.VoiceTokenActionJoin {
		if req.MatchID == "" {
			return "", runtime.NewError("match_id required for join", 3)
		}
		channel = app.TableChannelName(req.MatchID)
	}

	svc := app.NewVoiceService(secret, issuer, domain)
	token, err := svc.GenerateToken(userId, req.Action, channel)
	if err != nil {
		logger.Error("Failed to generate voice token: %v", err)
		return "", runtime.NewError("Invalid voice token request", 3)
	}

	resp, _ := json.Marshal(voiceTokenResponse{Token: token, Channel: channel})
	return string(resp), nil
}
