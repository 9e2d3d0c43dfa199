package domain

// CategoryAward records the card that decided a scoring category and the
// team that captured it.
type CategoryAward struct {
	Card Card `json:"card"`
	Team int  `json:"team"`
}

// ScoreResult is the outcome of scoring one completed hand. High, Low and
// Jack are nil when no trump was played (or, for Jack, when the trump jack
// never hit the table). GameTeam is 0 when the Game point is tied away.
type ScoreResult struct {
	High *CategoryAward `json:"high"`
	Low  *CategoryAward `json:"low"`
	Jack *CategoryAward `json:"jack"`

	GameTeam   int         `json:"gameTeam"`
	GameTotals map[int]int `json:"gameTotals"`

	// TeamPoints counts the categories captured by each team this hand.
	TeamPoints map[int]int `json:"teamPoints"`
}

// CalculateScore tallies the four scoring categories over every card won
// this hand. High and Low go to the holders of the highest and lowest trump
// actually played; Jack to whoever captured the trump jack; Game to the
// strictly higher aggregate point total, with a tie awarding nobody.
func (g *Game) CalculateScore() ScoreResult {
	res := ScoreResult{
		GameTotals: map[int]int{1: 0, 2: 0},
		TeamPoints: map[int]int{1: 0, 2: 0},
	}

	var trumpPlayed []Card
	for _, p := range g.Players {
		for _, c := range p.Won.Cards() {
			if c.Suit == g.Trump {
				trumpPlayed = append(trumpPlayed, c)
			}
			res.GameTotals[p.Team()] += c.PointValue()
		}
	}

	if len(trumpPlayed) > 0 {
		high, low := trumpPlayed[0], trumpPlayed[0]
		for _, c := range trumpPlayed[1:] {
			if c.Rank > high.Rank {
				high = c
			}
			if c.Rank < low.Rank {
				low = c
			}
		}
		res.High = &CategoryAward{Card: high, Team: g.teamHoldingCard(high)}
		res.Low = &CategoryAward{Card: low, Team: g.teamHoldingCard(low)}
		res.TeamPoints[res.High.Team]++
		res.TeamPoints[res.Low.Team]++

		for _, c := range trumpPlayed {
			if c.Rank == RankJack {
				res.Jack = &CategoryAward{Card: c, Team: g.teamHoldingCard(c)}
				res.TeamPoints[res.Jack.Team]++
				break
			}
		}
	}

	if res.GameTotals[1] > res.GameTotals[2] {
		res.GameTeam = 1
	} else if res.GameTotals[2] > res.GameTotals[1] {
		res.GameTeam = 2
	}
	if res.GameTeam != 0 {
		res.TeamPoints[res.GameTeam]++
	}

	return res
}

// teamHoldingCard scans the won piles for the exact suit+rank card. Cards
// are unique, so the first match is the only one.
func (g *Game) teamHoldingCard(c Card) int {
	for _, p := range g.Players {
		if p.Won.HasCard(c.Suit, c.Rank) {
			return p.Team()
		}
	}
	return 0
}

// ApplyResult reports the contract settlement after a hand is scored.
// PointsAwarded is meaningful only on success.
type ApplyResult struct {
	Success       bool `json:"success"`
	BiddingTeam   int  `json:"biddingTeam"`
	PointsAwarded int  `json:"pointsAwarded"`
}

// ApplyScore settles the hand against the bid contract and updates both
// team scores. The non-bidding team always banks its captured points. The
// bidding team makes a numbered contract by earning at least its value,
// scoring its earned points capped at four; a cinch contract requires all
// four categories and swings the full eleven either way.
func (g *Game) ApplyScore(res ScoreResult) ApplyResult {
	biddingTeam := 1
	if p := g.PlayerBySeat(g.HighestBidder); p != nil {
		biddingTeam = p.Team()
	}
	otherTeam := 3 - biddingTeam
	g.Scores[otherTeam] += res.TeamPoints[otherTeam]

	earned := res.TeamPoints[biddingTeam]

	if g.BidContract == BidCinch {
		if earned == 4 {
			g.Scores[biddingTeam] += int(BidCinch)
			return ApplyResult{Success: true, BiddingTeam: biddingTeam, PointsAwarded: int(BidCinch)}
		}
		g.Scores[biddingTeam] -= int(BidCinch)
		return ApplyResult{BiddingTeam: biddingTeam}
	}

	if earned >= int(g.BidContract) {
		awarded := earned
		if awarded > 4 {
			awarded = 4
		}
		g.Scores[biddingTeam] += awarded
		return ApplyResult{Success: true, BiddingTeam: biddingTeam, PointsAwarded: awarded}
	}

	g.Scores[biddingTeam] -= int(g.BidContract)
	return ApplyResult{BiddingTeam: biddingTeam}
}

// IsGameComplete reports whether either team has reached the target score.
func (g *Game) IsGameComplete() bool {
	return g.Scores[1] >= TargetScore || g.Scores[2] >= TargetScore
}

// WinningTeam returns the winning team once either score reaches the
// target. Both teams can cross in the same hand, in which case the strictly
// higher score wins; an exact tie at or above the target, or any state
// below it, returns 0.
func (g *Game) WinningTeam() int {
	s1, s2 := g.Scores[1], g.Scores[2]
	if s1 < TargetScore && s2 < TargetScore {
		return 0
	}
	if s1 > s2 {
		return 1
	}
	if s2 > s1 {
		return 2
	}
	return 0
}
