package ports

import "context"

// WelcomeBonusPort grants the signup bonus at most once per user.
type WelcomeBonusPort interface {
	// GrantWelcomeBonusOnce grants the one-time signup bonus.
	// granted is false when the user already received it.
	GrantWelcomeBonusOnce(ctx context.Context, userID string, amount int64, metadata map[string]interface{}) (bool, error)
}
