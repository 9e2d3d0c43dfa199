package app

import (
	"errors"
	"math/rand"
	"time"

	"cinch/internal/domain"
)

// Service contains Cinch use-cases operating on domain state. It validates
// the actor and turn order, drives the engine and translates outcomes into
// events for the transport layer to fan out.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with the provided rng or a time-seeded
// default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

var (
	ErrWrongSeatCount   = errors.New("cinch requires exactly four seated players")
	ErrUnknownPlayer    = errors.New("player not found")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrWrongPhase       = errors.New("action not allowed in this phase")
	ErrInvalidBid       = errors.New("bid does not beat the current bid")
	ErrInvalidTrump     = errors.New("unknown trump suit")
	ErrNotBidWinner     = errors.New("only the bid winner selects trump")
	ErrAlreadyDiscarded = errors.New("seat has already discarded this hand")
	ErrTrumpDiscard     = errors.New("trump cards cannot be discarded")
)

// RuleError carries a user-facing rule violation reason produced by the
// engine, such as a suit-following failure.
type RuleError struct {
	Reason string
}

func (e *RuleError) Error() string { return e.Reason }

// SeatAssignment binds a user to a seat for a new match.
type SeatAssignment struct {
	UserID      string
	DisplayName string
}

// StartMatch creates a fresh game for four seated players and deals the
// first hand. Seat order follows the slice order.
func (s *Service) StartMatch(seats []SeatAssignment) (*domain.Game, []Event, error) {
	if len(seats) != domain.MaxPlayers {
		return nil, nil, ErrWrongSeatCount
	}
	for _, sa := range seats {
		if sa.UserID == "" {
			return nil, nil, ErrWrongSeatCount
		}
	}

	game := domain.NewGame(s.rng)
	for _, sa := range seats {
		game.AddPlayer(sa.UserID, sa.DisplayName)
	}
	game.StartNewHand()

	events := []Event{{
		Kind:    EventGameStarted,
		Payload: GameStartedPayload{DealerSeat: game.DealerSeat, BiddingSeat: game.ActiveSeat},
	}}
	events = append(events, handDealtEvents(game)...)
	return game, events, nil
}

// PlaceBid records one bid for the player, covering both normal bidding and
// responses during the cinch-override sub-phase. An auction where every
// seat passes is thrown in and redealt.
func (s *Service) PlaceBid(game *domain.Game, userID string, bid domain.Bid) ([]Event, error) {
	if game.Phase != domain.PhaseBidding {
		return nil, ErrWrongPhase
	}
	pl := game.PlayerByID(userID)
	if pl == nil {
		return nil, ErrUnknownPlayer
	}
	if pl.Seat != game.ActiveSeat {
		return nil, ErrNotYourTurn
	}
	if game.OverrideActive() {
		// During the counter-cinch sub-phase the responder may only pass or
		// match with a cinch of their own; the strict-exceed rule is for the
		// normal rotation.
		if bid != domain.BidPass && bid != domain.BidCinch {
			return nil, ErrInvalidBid
		}
	} else if !domain.IsValidBid(bid, game.CurrentBid) {
		return nil, ErrInvalidBid
	}

	res := game.ProcessBid(pl, bid)
	if res.Err != nil {
		return nil, res.Err
	}

	events := []Event{{
		Kind:    EventBidPlaced,
		Payload: BidPlacedPayload{Seat: pl.Seat, Bid: bid, NextSeat: game.ActiveSeat},
	}}

	if res.CinchOffered {
		events = append(events, Event{
			Kind:    EventCinchOffered,
			Payload: CinchOfferedPayload{CinchSeat: game.CinchBidderSeat(), RespondSeat: game.ActiveSeat},
		})
	}

	if res.Finished {
		if game.HighestBidder < 0 {
			// Everybody passed; throw the hand in and redeal.
			game.StartNewHand()
			events = append(events, Event{
				Kind:    EventNewHand,
				Payload: NewHandPayload{DealerSeat: game.DealerSeat, BiddingSeat: game.ActiveSeat},
			})
			events = append(events, handDealtEvents(game)...)
			return events, nil
		}
		events = append(events, Event{
			Kind: EventBiddingClosed,
			Payload: BiddingClosedPayload{
				WinnerSeat:         game.HighestBidder,
				Contract:           game.BidContract,
				OverrideSuccessful: res.OverrideSuccessful,
			},
		})
	}
	return events, nil
}

// SelectTrump lets the bid winner fix the trump suit, then privately prompts
// every player with the hand positions they may discard.
func (s *Service) SelectTrump(game *domain.Game, userID string, suit domain.Suit) ([]Event, error) {
	if game.Phase != domain.PhaseChooseTrump {
		return nil, ErrWrongPhase
	}
	pl := game.PlayerByID(userID)
	if pl == nil {
		return nil, ErrUnknownPlayer
	}
	if pl.Seat != game.HighestBidder {
		return nil, ErrNotBidWinner
	}
	if !game.SetTrump(suit) {
		return nil, ErrInvalidTrump
	}

	events := []Event{{
		Kind:    EventTrumpSelected,
		Payload: TrumpSelectedPayload{Seat: pl.Seat, Trump: suit},
	}}
	for _, p := range game.Players {
		events = append(events, Event{
			Kind: EventDiscardPrompt,
			Payload: DiscardPromptPayload{
				UserID:          p.UserID,
				NonTrumpIndices: p.Hand.NonTrumpIndices(suit),
			},
			Recipients: []string{p.UserID},
		})
	}
	return events, nil
}

// Discard removes the player's chosen non-trump cards. Once the fourth seat
// discards, hands are topped back up to six and play opens with the bid
// winner leading.
func (s *Service) Discard(game *domain.Game, userID string, indices []int) ([]Event, error) {
	if game.Phase != domain.PhaseDiscarding {
		return nil, ErrWrongPhase
	}
	pl := game.PlayerByID(userID)
	if pl == nil {
		return nil, ErrUnknownPlayer
	}
	if game.HasDiscarded(pl.Seat) {
		return nil, ErrAlreadyDiscarded
	}

	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		c, ok := pl.Hand.At(idx)
		if !ok || seen[idx] {
			return nil, &RuleError{Reason: "Invalid card index"}
		}
		seen[idx] = true
		if c.Suit == game.Trump {
			return nil, ErrTrumpDiscard
		}
	}

	done := game.CompleteDiscard(pl, indices)

	events := []Event{{
		Kind:    EventCardsDiscarded,
		Payload: CardsDiscardedPayload{Seat: pl.Seat, Count: len(indices)},
	}}
	if done {
		events = append(events, handDealtEvents(game)...)
		events = append(events, Event{
			Kind:    EventPlayStarted,
			Payload: PlayStartedPayload{LeaderSeat: game.ActiveSeat},
		})
	}
	return events, nil
}

// PlayCard plays one card for the player. Completed tricks, hand scoring,
// the next deal and match completion all surface as appended events.
func (s *Service) PlayCard(game *domain.Game, userID string, cardIndex int) ([]Event, error) {
	pl := game.PlayerByID(userID)
	if pl == nil {
		return nil, ErrUnknownPlayer
	}
	if check := game.CanPlayCard(pl, cardIndex); !check.Valid {
		return nil, &RuleError{Reason: check.Reason}
	}

	res := game.PlayCard(pl, cardIndex)

	events := []Event{{
		Kind:    EventCardPlayed,
		Payload: CardPlayedPayload{Seat: pl.Seat, Card: res.Card, NextSeat: game.ActiveSeat},
	}}
	if res.TrickComplete {
		events = append(events, Event{
			Kind:    EventTrickComplete,
			Payload: TrickCompletePayload{WinnerSeat: res.WinnerSeat, WinnerName: res.WinnerName},
		})
	}

	if game.Phase != domain.PhaseScoring {
		return events, nil
	}

	score := game.CalculateScore()
	applied := game.ApplyScore(score)
	events = append(events, Event{
		Kind:    EventHandScored,
		Payload: HandScoredPayload{Score: score, Applied: applied, Scores: copyScores(game)},
	})

	if game.IsGameComplete() {
		events = append(events, Event{
			Kind:    EventGameEnded,
			Payload: GameEndedPayload{WinningTeam: game.WinningTeam(), Scores: copyScores(game)},
		})
		return events, nil
	}

	game.StartNewHand()
	events = append(events, Event{
		Kind:    EventNewHand,
		Payload: NewHandPayload{DealerSeat: game.DealerSeat, BiddingSeat: game.ActiveSeat},
	})
	events = append(events, handDealtEvents(game)...)
	return events, nil
}

// handDealtEvents builds one private hand snapshot per seated player.
func handDealtEvents(game *domain.Game) []Event {
	events := make([]Event, 0, len(game.Players))
	for _, p := range game.Players {
		events = append(events, Event{
			Kind: EventHandDealt,
			Payload: HandDealtPayload{
				UserID: p.UserID,
				Seat:   p.Seat,
				Hand:   p.Hand.Cards(),
			},
			Recipients: []string{p.UserID},
		})
	}
	return events
}

func copyScores(game *domain.Game) map[int]int {
	out := make(map[int]int, len(game.Scores))
	for team, score := range game.Scores {
		out[team] = score
	}
	return out
}
