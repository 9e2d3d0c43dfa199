package ports

import "context"

// AccountPort updates account profile data.
type AccountPort interface {
	// UpdateProfile sets the username and display name on the given account.
	UpdateProfile(ctx context.Context, userID, username, displayName string) error
}
