package bot

import (
	"cinch/internal/domain"
)

// StandardBot bids on hand strength, counters a cinch only with a monster
// holding, and plays to take tricks when it can do so cheaply.
type StandardBot struct{}

func (b *StandardBot) ChooseBid(game *domain.Game, player *domain.Player) domain.Bid {
	_, strength := bestSuit(player.Hand, DefaultTuning.Suit)

	if game.OverrideActive() {
		if strength >= DefaultTuning.CinchThreshold {
			return domain.BidCinch
		}
		return domain.BidPass
	}

	target := domain.BidPass
	switch {
	case strength >= DefaultTuning.CinchThreshold:
		target = domain.BidCinch
	case strength >= DefaultTuning.FourThreshold:
		target = domain.BidFour
	case strength >= DefaultTuning.ThreeThreshold:
		target = domain.BidThree
	case strength >= DefaultTuning.TwoThreshold:
		target = domain.BidTwo
	case strength >= DefaultTuning.OneThreshold:
		target = domain.BidOne
	}

	for target > domain.BidPass {
		if domain.IsValidBid(target, game.CurrentBid) {
			return target
		}
		if target == domain.BidCinch {
			break
		}
		target--
	}
	return domain.BidPass
}

func (b *StandardBot) ChooseTrump(player *domain.Player) domain.Suit {
	suit, _ := bestSuit(player.Hand, DefaultTuning.Suit)
	return suit
}

func (b *StandardBot) ChooseDiscards(player *domain.Player, trump domain.Suit) []int {
	return player.Hand.NonTrumpIndices(trump)
}

func (b *StandardBot) ChooseCard(game *domain.Game, player *domain.Player) (int, error) {
	legal := legalIndices(game, player)
	if len(legal) == 0 {
		return -1, errNotSeated
	}

	winning, trickStarted := currentWinningPlay(game)
	if !trickStarted {
		// Leading: play the highest card of our strongest suit.
		best := legal[0]
		for _, i := range legal[1:] {
			candidate, _ := player.Hand.At(i)
			current, _ := player.Hand.At(best)
			if !cheaperCard(candidate, current, game.Trump) {
				best = i
			}
		}
		return best, nil
	}

	// A partner already winning the trick is left alone.
	if winning.Seat%2 == player.Seat%2 {
		return lowestOf(legal, player, game.Trump), nil
	}

	// Take the trick with the cheapest card that wins it, otherwise dump.
	takeWith := -1
	for _, i := range legal {
		candidate, _ := player.Hand.At(i)
		if !beats(candidate, winning.Card, game.Trump) {
			continue
		}
		if takeWith < 0 {
			takeWith = i
			continue
		}
		current, _ := player.Hand.At(takeWith)
		if cheaperCard(candidate, current, game.Trump) {
			takeWith = i
		}
	}
	if takeWith >= 0 {
		return takeWith, nil
	}
	return lowestOf(legal, player, game.Trump), nil
}

func lowestOf(legal []int, player *domain.Player, trump domain.Suit) int {
	lowest := legal[0]
	for _, i := range legal[1:] {
		candidate, _ := player.Hand.At(i)
		current, _ := player.Hand.At(lowest)
		if cheaperCard(candidate, current, trump) {
			lowest = i
		}
	}
	return lowest
}
