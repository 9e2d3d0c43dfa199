package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create an open table.
	RpcQuickMatch = "quick_match"

	// RpcVoiceToken is the Nakama RPC id clients call to sign voice chat tokens.
	RpcVoiceToken = "voice_token"

	// MatchNameCinch is the authoritative match handler name registered with Nakama.
	MatchNameCinch = "cinch_match"

	// MatchLabelKey_OpenSeats is the label key quick-match queries filter on.
	MatchLabelKey_OpenSeats = "open"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame   int64 = 1
	OpPlaceBid    int64 = 2
	OpSelectTrump int64 = 3
	OpDiscard     int64 = 4
	OpPlayCard    int64 = 5

	// Server -> Client events
	OpPlayerJoined   int64 = 101
	OpGameStarted    int64 = 102
	OpHandDealt      int64 = 103 // send privately
	OpBidPlaced      int64 = 104
	OpCinchOffered   int64 = 105
	OpBiddingClosed  int64 = 106
	OpNewHand        int64 = 107
	OpTrumpSelected  int64 = 108
	OpDiscardPrompt  int64 = 109 // send privately
	OpCardsDiscarded int64 = 110
	OpPlayStarted    int64 = 111
	OpCardPlayed     int64 = 112
	OpTrickComplete  int64 = 113
	OpHandScored     int64 = 114
	OpGameEnded      int64 = 115
	OpGameError      int64 = 120
)
