package domain

import (
	"fmt"
	"math/rand"
	"time"
)

// Phase is the lifecycle stage of a Cinch hand.
type Phase string

const (
	PhaseWaiting     Phase = "waiting"
	PhaseBidding     Phase = "bidding"
	PhaseChooseTrump Phase = "choose_trump"
	PhaseDiscarding  Phase = "discarding"
	PhasePlaying     Phase = "playing"
	PhaseScoring     Phase = "scoring"
)

const (
	// MaxPlayers is the number of seats at a Cinch table.
	MaxPlayers = 4
	// HandSize is the number of cards every player holds entering play.
	HandSize = 6
	// TargetScore ends the match once either team reaches it.
	TargetScore = 21
)

// TrickPlay is one card played into the current trick.
type TrickPlay struct {
	Seat int    `json:"seat"`
	Card Card   `json:"card"`
	Name string `json:"name"`
}

// Game holds the authoritative state for one Cinch match: the roster, the
// deck, phase and turn tracking, bidding bookkeeping, the trick in progress
// and both team scores. Every method runs to completion and mutates state
// directly; callers must serialize access.
type Game struct {
	Players []*Player
	Phase   Phase

	// DealerSeat stays -1 until the first hand is dealt, so the first
	// rotation lands on seat 0.
	DealerSeat int
	ActiveSeat int

	CurrentBid    Bid
	HighestBidder int // seat index, -1 while nobody holds the bid
	BidContract   Bid

	Trump Suit // empty until the bid winner chooses

	Trick []TrickPlay

	Scores map[int]int // team (1 or 2) -> cumulative match score

	FirstHand bool

	deck *Deck
	rng  *rand.Rand

	// Per-hand bidding bookkeeping.
	bidsMade         int
	seatsBid         map[int]bool
	cinchBidderSeat  int
	overrideActive   bool
	overrideAttempts int

	discardedSeats map[int]bool
}

// NewGame returns a game in the waiting phase. rng may be nil to use a
// time-seeded default source.
func NewGame(rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Game{rng: rng}
	g.Reset()
	return g
}

// AddPlayer seats a new player at the next free seat and returns it.
// It returns nil when the table already has four players.
func (g *Game) AddPlayer(userID, name string) *Player {
	if len(g.Players) >= MaxPlayers {
		return nil
	}
	p := NewPlayer(userID, name, len(g.Players))
	g.Players = append(g.Players, p)
	return p
}

// RemoveAllPlayers clears the roster.
func (g *Game) RemoveAllPlayers() {
	g.Players = nil
}

// PlayerBySeat returns the player at the given seat, or nil.
func (g *Game) PlayerBySeat(seat int) *Player {
	if seat < 0 || seat >= len(g.Players) {
		return nil
	}
	return g.Players[seat]
}

// PlayerByID returns the player with the given user ID, or nil.
func (g *Game) PlayerByID(userID string) *Player {
	for _, p := range g.Players {
		if p.UserID == userID {
			return p
		}
	}
	return nil
}

// Reset fully reinitializes the game: roster, deck, scores, phase and all
// per-hand bookkeeping. Calling it twice in a row yields the same state as
// calling it once.
func (g *Game) Reset() {
	g.Players = nil
	g.deck = NewDeck()
	g.Phase = PhaseWaiting
	g.DealerSeat = -1
	g.ActiveSeat = 0
	g.FirstHand = true
	g.Scores = map[int]int{1: 0, 2: 0}
	g.resetHandState()
}

// resetHandState clears everything scoped to a single hand.
func (g *Game) resetHandState() {
	g.CurrentBid = BidPass
	g.HighestBidder = -1
	g.BidContract = BidPass
	g.Trump = ""
	g.Trick = nil
	g.bidsMade = 0
	g.seatsBid = make(map[int]bool)
	g.cinchBidderSeat = -1
	g.overrideActive = false
	g.overrideAttempts = 0
	g.discardedSeats = make(map[int]bool)
}

// StartNewHand rotates the dealer, builds and shuffles a fresh deck, clears
// all per-hand state, resets every player's containers and deals six cards
// to each seat. Bidding opens with the seat left of the dealer.
func (g *Game) StartNewHand() {
	g.DealerSeat = (g.DealerSeat + 1) % MaxPlayers
	g.FirstHand = false
	g.deck = NewDeck()
	g.deck.Shuffle(g.rng)
	g.resetHandState()
	g.Phase = PhaseBidding
	g.ActiveSeat = (g.DealerSeat + 1) % MaxPlayers
	for _, p := range g.Players {
		p.ResetForNewHand()
	}
	g.DealCards(HandSize)
}

// DealCards deals n cards to every seated player round-robin, one card per
// player per pass. Dealing stops silently when the deck is exhausted.
func (g *Game) DealCards(n int) {
	for i := 0; i < n; i++ {
		for _, p := range g.Players {
			cards := g.deck.Deal(1)
			if len(cards) == 0 {
				return
			}
			p.Hand.AddCard(cards[0])
		}
	}
}

// DealNewCards tops every player's hand back up to six cards, dealing only
// the shortfall. A depleted deck degrades to partial hands.
func (g *Game) DealNewCards() {
	for _, p := range g.Players {
		short := HandSize - p.Hand.Size()
		if short > 0 {
			p.Hand.AddCards(g.deck.Deal(short))
		}
	}
}

// DeckSize returns the number of undealt cards.
func (g *Game) DeckSize() int {
	return g.deck.Size()
}

// SetTrump fixes the trump suit for the hand and moves to the discard
// phase, resetting the discard tally. Unknown suits are rejected and leave
// state unchanged.
func (g *Game) SetTrump(suit Suit) bool {
	if !suit.Valid() {
		return false
	}
	g.Trump = suit
	g.Phase = PhaseDiscarding
	g.discardedSeats = make(map[int]bool)
	return true
}

// HasDiscarded reports whether the seat has completed its discard this hand.
func (g *Game) HasDiscarded(seat int) bool {
	return g.discardedSeats[seat]
}

// CompleteDiscard removes the player's chosen cards and tallies the
// discard. Once all seated players have discarded, hands are replenished to
// six cards and play begins with the bid winner leading the first trick.
func (g *Game) CompleteDiscard(player *Player, indices []int) (allDone bool) {
	player.DiscardCards(indices)
	g.discardedSeats[player.Seat] = true
	if len(g.discardedSeats) < len(g.Players) {
		return false
	}
	g.DealNewCards()
	g.Phase = PhasePlaying
	if g.HighestBidder >= 0 {
		g.ActiveSeat = g.HighestBidder
	}
	return true
}

// PlayCheck is the verdict from CanPlayCard.
type PlayCheck struct {
	Valid  bool
	Reason string
}

// CanPlayCard checks whether the player may legally play the card at the
// given hand index. PlayCard assumes this has been consulted first and does
// not re-validate.
func (g *Game) CanPlayCard(player *Player, cardIndex int) PlayCheck {
	if g.Phase != PhasePlaying || player.Seat != g.ActiveSeat {
		return PlayCheck{Reason: "Not your turn"}
	}
	card, ok := player.Hand.At(cardIndex)
	if !ok {
		return PlayCheck{Reason: "Invalid card index"}
	}
	if len(g.Trick) > 0 {
		led := g.Trick[0].Card.Suit
		if card.Suit != led && player.Hand.HasSuit(led) {
			return PlayCheck{Reason: fmt.Sprintf("You must follow suit (%s) if you have one.", led.Name())}
		}
	}
	return PlayCheck{Valid: true}
}

// PlayResult reports the outcome of one PlayCard call.
type PlayResult struct {
	Card          Card
	TrickComplete bool
	WinnerSeat    int
	WinnerName    string
}

// PlayCard plays the card at cardIndex into the current trick and advances
// the turn. When the fourth card lands the trick is resolved: the winner
// collects all four cards into their won pile and leads the next trick.
// A completed final trick moves the hand to the scoring phase.
func (g *Game) PlayCard(player *Player, cardIndex int) PlayResult {
	card, _ := player.PlayCard(cardIndex)
	g.Trick = append(g.Trick, TrickPlay{Seat: player.Seat, Card: card, Name: player.Name})
	g.ActiveSeat = (g.ActiveSeat + 1) % MaxPlayers

	if len(g.Trick) < MaxPlayers {
		return PlayResult{Card: card}
	}

	winnerSeat := g.resolveTrick()
	winner := g.Players[winnerSeat]
	for _, tp := range g.Trick {
		winner.Won.AddCard(tp.Card)
	}
	g.Trick = nil
	g.ActiveSeat = winnerSeat

	if g.IsHandComplete() {
		g.Phase = PhaseScoring
	}

	return PlayResult{Card: card, TrickComplete: true, WinnerSeat: winnerSeat, WinnerName: winner.Name}
}

// resolveTrick decides the winning seat in a single left-to-right pass: a
// trump play beats any non-trump winner, otherwise a higher card of the
// current winner's suit takes over. Off-suit non-trump plays never win.
func (g *Game) resolveTrick() int {
	winning := g.Trick[0]
	for _, tp := range g.Trick[1:] {
		playIsTrump := tp.Card.Suit == g.Trump
		winnerIsTrump := winning.Card.Suit == g.Trump
		switch {
		case playIsTrump && !winnerIsTrump:
			winning = tp
		case tp.Card.Suit == winning.Card.Suit && tp.Card.Rank > winning.Card.Rank:
			winning = tp
		}
	}
	return winning.Seat
}

// IsHandComplete reports whether every seated player's hand is empty.
func (g *Game) IsHandComplete() bool {
	for _, p := range g.Players {
		if !p.Hand.IsEmpty() {
			return false
		}
	}
	return true
}
