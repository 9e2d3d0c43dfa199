package domain

import (
	"errors"
	"testing"
)

func TestIsValidBid(t *testing.T) {
	tests := []struct {
		name     string
		bid      Bid
		current  Bid
		expected bool
	}{
		{name: "pass always valid", bid: BidPass, current: BidFour, expected: true},
		{name: "opening one", bid: BidOne, current: BidPass, expected: true},
		{name: "raise over two", bid: BidThree, current: BidTwo, expected: true},
		{name: "equal bid rejected", bid: BidTwo, current: BidTwo, expected: false},
		{name: "lower bid rejected", bid: BidOne, current: BidThree, expected: false},
		{name: "cinch over four", bid: BidCinch, current: BidFour, expected: true},
		{name: "unknown value rejected", bid: Bid(7), current: BidPass, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidBid(tt.bid, tt.current); got != tt.expected {
				t.Errorf("IsValidBid(%v, %v) = %v, want %v", tt.bid, tt.current, got, tt.expected)
			}
		})
	}
}

// biddingGame starts a hand so the dealer is seat 0 and bidding opens at
// seat 1.
func biddingGame(t *testing.T) *Game {
	t.Helper()
	g := newTestGame(17)
	g.StartNewHand()
	if g.ActiveSeat != 1 {
		t.Fatalf("first bidder = %d, want 1", g.ActiveSeat)
	}
	return g
}

func TestNormalBiddingRound(t *testing.T) {
	g := biddingGame(t)

	if res := g.ProcessBid(g.Players[1], BidPass); res.Finished {
		t.Fatal("bidding should not finish after one bid")
	}
	if res := g.ProcessBid(g.Players[2], BidTwo); res.Finished {
		t.Fatal("bidding should not finish after two bids")
	}
	if g.CurrentBid != BidTwo || g.HighestBidder != 2 {
		t.Fatalf("current bid = %v by %d, want 2 by seat 2", g.CurrentBid, g.HighestBidder)
	}
	if res := g.ProcessBid(g.Players[3], BidThree); res.Finished {
		t.Fatal("bidding should not finish after three bids")
	}

	res := g.ProcessBid(g.Players[0], BidPass)
	if !res.Finished {
		t.Fatal("bidding should finish after the fourth bid")
	}
	if g.Phase != PhaseChooseTrump {
		t.Fatalf("phase = %s, want choose_trump", g.Phase)
	}
	if g.HighestBidder != 3 || g.BidContract != BidThree {
		t.Fatalf("contract = %v by %d, want 3 by seat 3", g.BidContract, g.HighestBidder)
	}
	if g.ActiveSeat != 3 {
		t.Fatalf("trump chooser = %d, want bid winner", g.ActiveSeat)
	}
}

func TestCinchAsFourthBidSkipsOverride(t *testing.T) {
	g := biddingGame(t)

	g.ProcessBid(g.Players[1], BidPass)
	g.ProcessBid(g.Players[2], BidTwo)
	g.ProcessBid(g.Players[3], BidPass)

	res := g.ProcessBid(g.Players[0], BidCinch)
	if !res.Finished || res.CinchOverride {
		t.Fatalf("fourth-bid cinch result = %+v, want finished without override", res)
	}
	if g.BidContract != BidCinch || g.HighestBidder != 0 {
		t.Fatalf("contract = %v by %d, want cinch by seat 0", g.BidContract, g.HighestBidder)
	}
	if g.OverrideActive() {
		t.Fatal("override bookkeeping should be cleared")
	}
}

func TestEarlyCinchOfferAndSuccessfulOverride(t *testing.T) {
	g := biddingGame(t)

	g.ProcessBid(g.Players[1], BidTwo)

	// Seat 2 (team 1) cinches early. Seat 3 is the only opposing seat that
	// has not bid, so it gets the counter-cinch offer.
	res := g.ProcessBid(g.Players[2], BidCinch)
	if res.Finished || !res.CinchOverride || !res.CinchOffered {
		t.Fatalf("early cinch result = %+v, want open override offer", res)
	}
	if g.ActiveSeat != 3 {
		t.Fatalf("offer went to seat %d, want 3", g.ActiveSeat)
	}
	if g.CinchBidderSeat() != 2 {
		t.Fatalf("cinch bidder = %d, want 2", g.CinchBidderSeat())
	}

	res = g.ProcessBid(g.Players[3], BidCinch)
	if !res.Finished || !res.OverrideSuccessful {
		t.Fatalf("counter-cinch result = %+v, want successful override", res)
	}
	if g.HighestBidder != 3 || g.CinchBidderSeat() != 3 || g.BidContract != BidCinch {
		t.Fatalf("contract = %v by %d (cinch seat %d), want cinch by seat 3",
			g.BidContract, g.HighestBidder, g.CinchBidderSeat())
	}
	if g.Phase != PhaseChooseTrump {
		t.Fatalf("phase = %s, want choose_trump", g.Phase)
	}
}

func TestOverridePassExhaustsSingleCandidate(t *testing.T) {
	g := biddingGame(t)

	g.ProcessBid(g.Players[1], BidTwo)
	g.ProcessBid(g.Players[2], BidCinch)

	res := g.ProcessBid(g.Players[3], BidPass)
	if !res.Finished || res.OverrideSuccessful {
		t.Fatalf("exhausted override result = %+v, want finished and unsuccessful", res)
	}
	if g.HighestBidder != 2 || g.BidContract != BidCinch {
		t.Fatalf("contract = %v by %d, want original cinch retained", g.BidContract, g.HighestBidder)
	}
}

func TestOverrideRotatesThroughBothCandidates(t *testing.T) {
	g := biddingGame(t)

	// Seat 1 (team 2) cinches on the very first bid; seats 0 and 2 are both
	// eligible opposing candidates.
	res := g.ProcessBid(g.Players[1], BidCinch)
	if res.Finished || !res.CinchOffered {
		t.Fatalf("opening cinch result = %+v", res)
	}
	if g.ActiveSeat != 2 {
		t.Fatalf("first offer went to seat %d, want 2", g.ActiveSeat)
	}

	res = g.ProcessBid(g.Players[2], BidPass)
	if res.Finished {
		t.Fatal("one pass of two candidates should not end the override")
	}
	if g.ActiveSeat != 0 {
		t.Fatalf("second offer went to seat %d, want 0", g.ActiveSeat)
	}

	res = g.ProcessBid(g.Players[0], BidPass)
	if !res.Finished || res.OverrideSuccessful {
		t.Fatalf("final pass result = %+v, want finished and unsuccessful", res)
	}
	if g.HighestBidder != 1 {
		t.Fatalf("contract holder = %d, want original cinch bidder", g.HighestBidder)
	}
}

// A seat that already bid this hand cannot counter-cinch, and its rejected
// attempt still consumes a slot in the rotation.
func TestOverrideRejectsSeatThatAlreadyBid(t *testing.T) {
	g := biddingGame(t)

	g.ProcessBid(g.Players[1], BidTwo)
	g.ProcessBid(g.Players[2], BidCinch)

	res := g.ProcessBid(g.Players[1], BidCinch)
	if res.Finished || !res.CinchOverride {
		t.Fatalf("rejected override result = %+v, want sub-phase still active", res)
	}
	if !errors.Is(res.Err, ErrAlreadyBid) {
		t.Fatalf("err = %v, want ErrAlreadyBid", res.Err)
	}
	if g.HighestBidder != 2 {
		t.Fatalf("contract holder = %d, want unchanged", g.HighestBidder)
	}

	// The wasted attempt counts: seat 3 was the only eligible candidate, so
	// its pass now exhausts the rotation.
	res = g.ProcessBid(g.Players[3], BidPass)
	if !res.Finished || res.OverrideSuccessful {
		t.Fatalf("post-rejection pass result = %+v, want finished and unsuccessful", res)
	}
}

func TestEligibleOpposingPlayersExcludesSeatsThatBid(t *testing.T) {
	g := biddingGame(t)

	g.ProcessBid(g.Players[1], BidTwo)
	g.ProcessBid(g.Players[2], BidCinch)

	for _, p := range g.eligibleOpposingPlayers() {
		if g.seatsBid[p.Seat] {
			t.Fatalf("seat %d already bid but is listed as eligible", p.Seat)
		}
		if p.Team() == g.Players[2].Team() {
			t.Fatalf("seat %d is on the cinch bidder's own team", p.Seat)
		}
	}
	if len(g.eligibleOpposingPlayers()) != 1 {
		t.Fatalf("eligible = %d, want just seat 3", len(g.eligibleOpposingPlayers()))
	}
}

func TestEligibleOpposingPlayersDefensiveOnBadSeat(t *testing.T) {
	g := biddingGame(t)

	if got := g.eligibleOpposingPlayers(); got != nil {
		t.Fatalf("eligible with no cinch declared = %v, want none", got)
	}

	g.cinchBidderSeat = 9
	if got := g.eligibleOpposingPlayers(); got != nil {
		t.Fatalf("eligible with out-of-range cinch seat = %v, want none", got)
	}
}

func TestFindNextOpposingTeamMember(t *testing.T) {
	g := biddingGame(t)
	g.cinchBidderSeat = 2 // team 1; opposing seats are 1 and 3

	g.ActiveSeat = 2
	g.findNextOpposingTeamMember()
	if g.ActiveSeat != 3 {
		t.Fatalf("active seat = %d, want 3", g.ActiveSeat)
	}
	g.findNextOpposingTeamMember()
	if g.ActiveSeat != 1 {
		t.Fatalf("active seat = %d, want 1 after wrap", g.ActiveSeat)
	}
}

func TestFindNextEligibleIsNoOpWhenNobodyEligible(t *testing.T) {
	g := biddingGame(t)
	g.cinchBidderSeat = 2
	g.seatsBid[1] = true
	g.seatsBid[3] = true

	g.ActiveSeat = 2
	g.findNextEligibleOpposingTeamMember()
	if g.ActiveSeat != 2 {
		t.Fatalf("active seat = %d, want unchanged when eligible set is empty", g.ActiveSeat)
	}
}

// A cinch declared when every opposing seat has already bid stands
// unchallenged and closes the auction immediately.
func TestEarlyCinchWithNoEligibleOpponents(t *testing.T) {
	g := biddingGame(t)

	g.ProcessBid(g.Players[1], BidPass)
	g.ProcessBid(g.Players[2], BidTwo)

	// Seat 3 is about to cinch; its opponents are seats 0 and 2. Seat 2 has
	// bid, and marking seat 0 as having bid empties the eligible set while
	// this is still only the third bid of the hand.
	g.seatsBid[0] = true

	res := g.ProcessBid(g.Players[3], BidCinch)
	if !res.Finished || res.CinchOverride {
		t.Fatalf("unchallengeable cinch result = %+v, want immediate finish", res)
	}
	if g.HighestBidder != 3 || g.BidContract != BidCinch {
		t.Fatalf("contract = %v by %d, want cinch by seat 3", g.BidContract, g.HighestBidder)
	}
}
