package domain

import "testing"

// wonGame returns a game in the scoring phase where each seat's won pile is
// assigned directly.
func wonGame(t *testing.T, trump Suit, won map[int][]Card) *Game {
	t.Helper()
	g := newTestGame(31)
	g.StartNewHand()
	g.Trump = trump
	g.Phase = PhaseScoring
	for seat, cards := range won {
		pile := NewHand()
		pile.AddCards(cards)
		g.Players[seat].Won = pile
	}
	return g
}

func TestCalculateScoreAllFourCategories(t *testing.T) {
	g := wonGame(t, SuitSpades, map[int][]Card{
		// Team 1 (seats 0, 2) takes high trump, the trump jack and the ten.
		0: {
			{Suit: SuitSpades, Rank: RankAce},
			{Suit: SuitHearts, Rank: RankTen},
		},
		2: {
			{Suit: SuitSpades, Rank: RankJack},
		},
		// Team 2 (seats 1, 3) takes only the low trump.
		1: {
			{Suit: SuitSpades, Rank: RankTwo},
			{Suit: SuitClubs, Rank: RankThree},
		},
	})

	res := g.CalculateScore()

	if res.High == nil || res.High.Team != 1 || res.High.Card.Rank != RankAce {
		t.Fatalf("High = %+v, want AS to team 1", res.High)
	}
	if res.Low == nil || res.Low.Team != 2 || res.Low.Card.Rank != RankTwo {
		t.Fatalf("Low = %+v, want 2S to team 2", res.Low)
	}
	if res.Jack == nil || res.Jack.Team != 1 {
		t.Fatalf("Jack = %+v, want JS to team 1", res.Jack)
	}
	// Team 1 totals A(4) + 10(10) + J(1) = 15; team 2 totals 0.
	if res.GameTeam != 1 {
		t.Fatalf("GameTeam = %d, want 1", res.GameTeam)
	}
	if res.GameTotals[1] != 15 || res.GameTotals[2] != 0 {
		t.Fatalf("GameTotals = %v, want 15 vs 0", res.GameTotals)
	}
	if res.TeamPoints[1] != 3 || res.TeamPoints[2] != 1 {
		t.Fatalf("TeamPoints = %v, want 3 vs 1", res.TeamPoints)
	}
}

func TestCalculateScoreNoTrumpPlayed(t *testing.T) {
	g := wonGame(t, SuitSpades, map[int][]Card{
		0: {{Suit: SuitHearts, Rank: RankAce}},
		1: {{Suit: SuitClubs, Rank: RankKing}},
	})

	res := g.CalculateScore()

	if res.High != nil || res.Low != nil || res.Jack != nil {
		t.Fatal("no trump played: High/Low/Jack should all be nil")
	}
	if res.GameTeam != 1 {
		t.Fatalf("GameTeam = %d, want 1 (4 points vs 3)", res.GameTeam)
	}
}

func TestCalculateScoreGameTieAwardsNobody(t *testing.T) {
	g := wonGame(t, SuitSpades, map[int][]Card{
		0: {{Suit: SuitHearts, Rank: RankAce}},  // 4 points for team 1
		1: {{Suit: SuitClubs, Rank: RankAce}},   // 4 points for team 2
	})

	res := g.CalculateScore()

	if res.GameTeam != 0 {
		t.Fatalf("GameTeam = %d, want 0 on a tie", res.GameTeam)
	}
	if res.GameTotals[1] != 4 || res.GameTotals[2] != 4 {
		t.Fatalf("GameTotals = %v, want both totals reported", res.GameTotals)
	}
	if res.TeamPoints[1] != 0 || res.TeamPoints[2] != 0 {
		t.Fatalf("TeamPoints = %v, want no Game point awarded", res.TeamPoints)
	}
}

func applyGame(t *testing.T, contract Bid, bidderSeat int) *Game {
	t.Helper()
	g := newTestGame(37)
	g.StartNewHand()
	g.HighestBidder = bidderSeat
	g.BidContract = contract
	g.Phase = PhaseScoring
	return g
}

func scoreWith(points map[int]int) ScoreResult {
	return ScoreResult{
		GameTotals: map[int]int{1: 0, 2: 0},
		TeamPoints: points,
	}
}

func TestApplyScoreCapsAwardAtFour(t *testing.T) {
	g := applyGame(t, BidTwo, 0) // team 1 bids 2

	res := g.ApplyScore(scoreWith(map[int]int{1: 5, 2: 1}))

	if !res.Success || res.BiddingTeam != 1 {
		t.Fatalf("result = %+v, want success for team 1", res)
	}
	if res.PointsAwarded != 4 {
		t.Fatalf("awarded = %d, want capped at 4", res.PointsAwarded)
	}
	if g.Scores[1] != 4 || g.Scores[2] != 1 {
		t.Fatalf("scores = %v, want 4 and 1", g.Scores)
	}
}

func TestApplyScoreFailedCinch(t *testing.T) {
	g := applyGame(t, BidCinch, 0)

	res := g.ApplyScore(scoreWith(map[int]int{1: 3, 2: 1}))

	if res.Success {
		t.Fatal("a cinch without all four categories must fail")
	}
	if g.Scores[1] != -11 {
		t.Fatalf("bidding team score = %d, want -11", g.Scores[1])
	}
	if g.Scores[2] != 1 {
		t.Fatalf("non-bidding team score = %d, want 1", g.Scores[2])
	}
}

func TestApplyScoreSuccessfulCinch(t *testing.T) {
	g := applyGame(t, BidCinch, 2)

	res := g.ApplyScore(scoreWith(map[int]int{1: 4, 2: 0}))

	if !res.Success || res.PointsAwarded != 11 {
		t.Fatalf("result = %+v, want success worth 11", res)
	}
	if g.Scores[1] != 11 {
		t.Fatalf("score = %d, want 11", g.Scores[1])
	}
}

func TestApplyScoreFailedNumberedContract(t *testing.T) {
	g := applyGame(t, BidThree, 1) // team 2 bids 3

	res := g.ApplyScore(scoreWith(map[int]int{1: 2, 2: 2}))

	if res.Success {
		t.Fatal("two points against a contract of three must fail")
	}
	if g.Scores[2] != -3 {
		t.Fatalf("bidding team score = %d, want -3", g.Scores[2])
	}
	if g.Scores[1] != 2 {
		t.Fatalf("non-bidding team score = %d, want 2", g.Scores[1])
	}
}

func TestWinningTeam(t *testing.T) {
	tests := []struct {
		name     string
		scores   map[int]int
		complete bool
		winner   int
	}{
		{name: "both below target", scores: map[int]int{1: 20, 2: 15}, complete: false, winner: 0},
		{name: "team 1 over", scores: map[int]int{1: 22, 2: 10}, complete: true, winner: 1},
		{name: "team 2 over", scores: map[int]int{1: 4, 2: 21}, complete: true, winner: 2},
		{name: "both over, team 2 higher", scores: map[int]int{1: 21, 2: 24}, complete: true, winner: 2},
		{name: "tied at target", scores: map[int]int{1: 21, 2: 21}, complete: true, winner: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(41)
			g.Scores = tt.scores
			if got := g.IsGameComplete(); got != tt.complete {
				t.Errorf("IsGameComplete() = %v, want %v", got, tt.complete)
			}
			if got := g.WinningTeam(); got != tt.winner {
				t.Errorf("WinningTeam() = %d, want %d", got, tt.winner)
			}
		})
	}
}
