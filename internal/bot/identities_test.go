package bot

import (
	"os"
	"path/filepath"
	"testing"
)

const testIdentitiesJSON = `[
  {"device_id": "bot-device-1", "user_id": "bot-1", "username": "cinchbot1", "display_name": "Ada", "difficulty": "easy", "avatar_index": 1},
  {"device_id": "bot-device-2", "user_id": "bot-2", "username": "cinchbot2", "display_name": "Sam", "difficulty": "standard", "avatar_index": 2}
]`

func loadTestIdentities(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bot_identities.json")
	if err := os.WriteFile(path, []byte(testIdentitiesJSON), 0o600); err != nil {
		t.Fatalf("write identities: %v", err)
	}
	if err := LoadIdentities(path); err != nil {
		t.Fatalf("load identities: %v", err)
	}
}

func TestLoadIdentitiesMapsBots(t *testing.T) {
	loadTestIdentities(t)

	if !IsBot("bot-1") || !IsBot("bot-2") {
		t.Fatal("loaded bots should be recognized")
	}
	if IsBot("user-1") {
		t.Fatal("human user should not be flagged as bot")
	}
	if got := GetBotUsername("bot-1"); got != "cinchbot1" {
		t.Fatalf("username = %q, want cinchbot1", got)
	}
	if got := GetBotDisplayName("bot-2"); got != "Sam" {
		t.Fatalf("display name = %q, want Sam", got)
	}
}

func TestNewAgentPicksStrategyByDifficulty(t *testing.T) {
	loadTestIdentities(t)

	easy, err := NewAgent("bot-1")
	if err != nil {
		t.Fatalf("new agent error: %v", err)
	}
	if _, ok := easy.Strategy.(*BasicBot); !ok {
		t.Fatalf("easy bot strategy = %T, want *BasicBot", easy.Strategy)
	}

	standard, err := NewAgent("bot-2")
	if err != nil {
		t.Fatalf("new agent error: %v", err)
	}
	if _, ok := standard.Strategy.(*StandardBot); !ok {
		t.Fatalf("standard bot strategy = %T, want *StandardBot", standard.Strategy)
	}

	unknown, err := NewAgent("mystery")
	if err != nil {
		t.Fatalf("new agent error: %v", err)
	}
	if _, ok := unknown.Strategy.(*StandardBot); !ok {
		t.Fatalf("unknown bot strategy = %T, want *StandardBot fallback", unknown.Strategy)
	}
}

func TestGetBotIdentityWrapsPool(t *testing.T) {
	loadTestIdentities(t)

	first := GetBotIdentity(0)
	wrapped := GetBotIdentity(2)
	if first.UserID != wrapped.UserID {
		t.Fatalf("identity pool should wrap: %q vs %q", first.UserID, wrapped.UserID)
	}
}
