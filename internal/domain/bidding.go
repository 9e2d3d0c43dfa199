package domain

import "errors"

// Bid is the closed bid domain. Numbered bids carry their contract value
// directly; Cinch is the maximal overbid worth eleven.
type Bid int

const (
	BidPass  Bid = 0
	BidOne   Bid = 1
	BidTwo   Bid = 2
	BidThree Bid = 3
	BidFour  Bid = 4
	BidCinch Bid = 11
)

// Valid reports whether b is a recognized bid value.
func (b Bid) Valid() bool {
	return b == BidPass || (b >= BidOne && b <= BidFour) || b == BidCinch
}

func (b Bid) String() string {
	switch b {
	case BidPass:
		return "pass"
	case BidCinch:
		return "cinch"
	}
	if b >= BidOne && b <= BidFour {
		return string('0' + rune(b))
	}
	return "invalid"
}

// IsValidBid reports whether bid may legally follow currentBid. A pass is
// always structurally valid; whose turn it is remains the caller's concern.
func IsValidBid(bid, currentBid Bid) bool {
	if !bid.Valid() {
		return false
	}
	if bid == BidPass {
		return true
	}
	return bid > currentBid
}

// ErrAlreadyBid rejects a counter-cinch from a seat that already locked in a
// bid this hand. The override cannot be used to bid twice.
var ErrAlreadyBid = errors.New("player has already bid this hand")

// BidResult reports the outcome of one ProcessBid call.
type BidResult struct {
	// Finished is true once bidding for the hand is over and the game has
	// moved to trump selection.
	Finished bool
	// CinchOverride is true while the counter-cinch sub-phase is active.
	CinchOverride bool
	// CinchOffered is true when an eligible opposing seat has just been
	// offered the counter-cinch.
	CinchOffered bool
	// OverrideSuccessful is true when a counter-cinch took the contract.
	OverrideSuccessful bool
	// Err is set when an override attempt was rejected; the sub-phase stays
	// active and the caller must re-solicit.
	Err error
}

// CinchBidderSeat returns the seat that currently holds a declared cinch,
// or -1 when none has been declared this hand.
func (g *Game) CinchBidderSeat() int {
	return g.cinchBidderSeat
}

// OverrideActive reports whether the counter-cinch sub-phase is running.
func (g *Game) OverrideActive() bool {
	return g.overrideActive
}

// ProcessBid records one bid. In normal bidding each of the four seats bids
// once, starting left of the dealer. An early cinch opens the counter-cinch
// sub-phase for opposing seats that have not yet bid; see processOverrideBid
// for that path. The caller validates turn order and bid shape (IsValidBid)
// before calling.
func (g *Game) ProcessBid(player *Player, bid Bid) BidResult {
	if g.overrideActive {
		return g.processOverrideBid(player, bid)
	}

	g.bidsMade++
	g.seatsBid[player.Seat] = true

	if bid != BidPass {
		g.CurrentBid = bid
		g.HighestBidder = player.Seat
		g.BidContract = bid
	}

	if bid == BidCinch {
		g.cinchBidderSeat = player.Seat

		if g.bidsMade >= MaxPlayers {
			// Cinch as the last normal bid: nothing to override.
			g.finishBidding()
			return BidResult{Finished: true}
		}

		if len(g.eligibleOpposingPlayers()) > 0 {
			g.overrideActive = true
			g.overrideAttempts = 0
			g.findNextEligibleOpposingTeamMember()
			return BidResult{CinchOverride: true, CinchOffered: true}
		}

		// Every opposing seat has already bid; the cinch stands.
		g.finishBidding()
		return BidResult{Finished: true}
	}

	g.ActiveSeat = (g.ActiveSeat + 1) % MaxPlayers
	if g.bidsMade >= MaxPlayers {
		g.finishBidding()
		return BidResult{Finished: true}
	}
	return BidResult{}
}

// processOverrideBid handles one response while the counter-cinch sub-phase
// is active. The attempt counter advances before any check: a rejected
// attempt still uses up a turn in the rotation, and exhaustion is measured
// against the eligible set as it stands right now.
func (g *Game) processOverrideBid(player *Player, bid Bid) BidResult {
	g.overrideAttempts++

	if bid == BidCinch {
		if g.seatsBid[player.Seat] {
			return BidResult{CinchOverride: true, Err: ErrAlreadyBid}
		}
		g.CurrentBid = BidCinch
		g.HighestBidder = player.Seat
		g.BidContract = BidCinch
		g.cinchBidderSeat = player.Seat
		g.seatsBid[player.Seat] = true
		g.finishBidding()
		return BidResult{Finished: true, OverrideSuccessful: true}
	}

	if g.overrideAttempts >= len(g.eligibleOpposingPlayers()) {
		// All opposing candidates exhausted; the original cinch stands.
		g.finishBidding()
		return BidResult{Finished: true}
	}

	g.findNextEligibleOpposingTeamMember()
	return BidResult{CinchOverride: true, CinchOffered: true}
}

// finishBidding closes the auction and hands the turn to the bid winner for
// trump selection.
func (g *Game) finishBidding() {
	g.overrideActive = false
	g.overrideAttempts = 0
	g.Phase = PhaseChooseTrump
	if g.HighestBidder >= 0 {
		g.ActiveSeat = g.HighestBidder
	}
}

// eligibleOpposingPlayers returns the seated players on the team opposing
// the cinch bidder who have not yet bid this hand. An unset or unoccupied
// cinch seat yields no candidates; this guards against partially
// initialized state.
func (g *Game) eligibleOpposingPlayers() []*Player {
	bidder := g.PlayerBySeat(g.cinchBidderSeat)
	if bidder == nil {
		return nil
	}
	var out []*Player
	for _, p := range g.Players {
		if p.Team() != bidder.Team() && !g.seatsBid[p.Seat] {
			out = append(out, p)
		}
	}
	return out
}

// findNextOpposingTeamMember advances the turn to the next seat on the team
// opposing the cinch bidder, eligible or not. The scan is bounded to one
// full rotation so inconsistent state cannot loop forever.
func (g *Game) findNextOpposingTeamMember() {
	bidder := g.PlayerBySeat(g.cinchBidderSeat)
	if bidder == nil {
		return
	}
	seat := g.ActiveSeat
	for i := 0; i < MaxPlayers; i++ {
		seat = (seat + 1) % MaxPlayers
		if p := g.PlayerBySeat(seat); p != nil && p.Team() != bidder.Team() {
			g.ActiveSeat = seat
			return
		}
	}
}

// findNextEligibleOpposingTeamMember advances the turn to the next eligible
// opposing seat in rotation order, wrapping and skipping ineligible seats.
// With nobody eligible the turn pointer is left untouched, which callers
// use to detect that no one is left to ask.
func (g *Game) findNextEligibleOpposingTeamMember() {
	eligible := g.eligibleOpposingPlayers()
	if len(eligible) == 0 {
		return
	}
	bySeat := make(map[int]bool, len(eligible))
	for _, p := range eligible {
		bySeat[p.Seat] = true
	}
	seat := g.ActiveSeat
	for i := 0; i < MaxPlayers; i++ {
		seat = (seat + 1) % MaxPlayers
		if bySeat[seat] {
			g.ActiveSeat = seat
			return
		}
	}
}
