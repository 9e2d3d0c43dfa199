package ports

import "context"

// WalletUpdate is a single gold change for one user.
type WalletUpdate struct {
	UserID   string
	Amount   int64
	Metadata map[string]interface{}
}

// EconomyPort manages the gold currency backing table stakes.
type EconomyPort interface {
	// GetBalance returns the user's current gold balance.
	GetBalance(ctx context.Context, userID string) (int64, error)

	// UpdateBalances applies a batch of wallet changes. Match settlement
	// uses this to pay the winning team and charge the losers in one call.
	UpdateBalances(ctx context.Context, updates []WalletUpdate) error
}
