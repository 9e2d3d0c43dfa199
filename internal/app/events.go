package app

import "cinch/internal/domain"

// EventKind identifies emitted domain events for Nakama dispatch.
type EventKind string

const (
	EventGameStarted    EventKind = "game_started"
	EventHandDealt      EventKind = "hand_dealt"
	EventBidPlaced      EventKind = "bid_placed"
	EventCinchOffered   EventKind = "cinch_offered"
	EventBiddingClosed  EventKind = "bidding_closed"
	EventNewHand        EventKind = "new_hand"
	EventTrumpSelected  EventKind = "trump_selected"
	EventDiscardPrompt  EventKind = "discard_prompt"
	EventCardsDiscarded EventKind = "cards_discarded"
	EventPlayStarted    EventKind = "play_started"
	EventCardPlayed     EventKind = "card_played"
	EventTrickComplete  EventKind = "trick_complete"
	EventHandScored     EventKind = "hand_scored"
	EventGameEnded      EventKind = "game_ended"
)

// Event is a domain/app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type GameStartedPayload struct {
	DealerSeat  int `json:"dealerSeat"`
	BiddingSeat int `json:"biddingSeat"`
}

type HandDealtPayload struct {
	UserID string        `json:"userId"`
	Seat   int           `json:"seat"`
	Hand   []domain.Card `json:"hand"`
}

type BidPlacedPayload struct {
	Seat     int        `json:"seat"`
	Bid      domain.Bid `json:"bid"`
	NextSeat int        `json:"nextSeat"`
}

type CinchOfferedPayload struct {
	CinchSeat   int `json:"cinchSeat"`
	RespondSeat int `json:"respondSeat"`
}

type BiddingClosedPayload struct {
	WinnerSeat         int        `json:"winnerSeat"`
	Contract           domain.Bid `json:"contract"`
	OverrideSuccessful bool       `json:"overrideSuccessful"`
}

// NewHandPayload announces the next hand, either after scoring or when an
// all-pass auction forces a redeal.
type NewHandPayload struct {
	DealerSeat  int `json:"dealerSeat"`
	BiddingSeat int `json:"biddingSeat"`
}

type TrumpSelectedPayload struct {
	Seat  int         `json:"seat"`
	Trump domain.Suit `json:"trump"`
}

type DiscardPromptPayload struct {
	UserID          string `json:"userId"`
	NonTrumpIndices []int  `json:"nonTrumpIndices"`
}

type CardsDiscardedPayload struct {
	Seat  int `json:"seat"`
	Count int `json:"count"`
}

type PlayStartedPayload struct {
	LeaderSeat int `json:"leaderSeat"`
}

type CardPlayedPayload struct {
	Seat     int         `json:"seat"`
	Card     domain.Card `json:"card"`
	NextSeat int         `json:"nextSeat"`
}

type TrickCompletePayload struct {
	WinnerSeat int    `json:"winnerSeat"`
	WinnerName string `json:"winnerName"`
}

type HandScoredPayload struct {
	Score   domain.ScoreResult `json:"score"`
	Applied domain.ApplyResult `json:"applied"`
	Scores  map[int]int        `json:"scores"`
}

type GameEndedPayload struct {
	WinningTeam int         `json:"winningTeam"`
	Scores      map[int]int `json:"scores"`
}
