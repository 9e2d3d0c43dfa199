package nakama

import (
	"cinch/internal/app"
)

// matchLabel is the JSON label attached to every match for listing queries.
type matchLabel struct {
	Open  int    `json:"open"`
	State string `json:"state"`
}

// Client request payloads. All client messages are JSON.
type placeBidRequest struct {
	Bid int `json:"bid"`
}

type selectTrumpRequest struct {
	Suit string `json:"suit"`
}

type discardRequest struct {
	Indices []int `json:"indices"`
}

type playCardRequest struct {
	Index int `json:"index"`
}

// gameErrorPayload is sent privately when a client request is rejected.
type gameErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// playerState is one seat in the lobby snapshot.
type playerState struct {
	UserID      string `json:"userId"`
	Seat        int    `json:"seat"`
	IsOwner     bool   `json:"isOwner"`
	DisplayName string `json:"displayName"`
	Balance     int64  `json:"balance"`
}

// matchSnapshot is broadcast after seating changes.
type matchSnapshot struct {
	Seats     []string      `json:"seats"`
	OwnerSeat int           `json:"ownerSeat"`
	Tick      int64         `json:"tick"`
	Players   []playerState `json:"players"`
}

// opcodeForEvent maps an app event kind to its wire opcode.
func opcodeForEvent(kind app.EventKind) (int64, bool) {
	switch kind {
	case app.EventGameStarted:
		return OpGameStarted, true
	case app.EventHandDealt:
		return OpHandDealt, true
	case app.EventBidPlaced:
		return OpBidPlaced, true
	case app.EventCinchOffered:
		return OpCinchOffered, true
	case app.EventBiddingClosed:
		return OpBiddingClosed, true
	case app.EventNewHand:
		return OpNewHand, true
	case app.EventTrumpSelected:
		return OpTrumpSelected, true
	case app.EventDiscardPrompt:
		return OpDiscardPrompt, true
	case app.EventCardsDiscarded:
		return OpCardsDiscarded, true
	case app.EventPlayStarted:
		return OpPlayStarted, true
	case app.EventCardPlayed:
		return OpCardPlayed, true
	case app.EventTrickComplete:
		return OpTrickComplete, true
	case app.EventHandScored:
		return OpHandScored, true
	case app.EventGameEnded:
		return OpGameEnded, true
	default:
		return 0, false
	}
}
