package bot

import (
	"cinch/internal/domain"
)

// suitStrength scores how well a suit would serve as trump for this hand.
func suitStrength(hand *domain.Hand, suit domain.Suit, w SuitWeights) float64 {
	strength := 0.0
	for _, c := range hand.CardsOfSuit(suit) {
		strength += w.CardWeight
		switch c.Rank {
		case domain.RankAce:
			strength += w.AceBonus
		case domain.RankKing:
			strength += w.KingBonus
		case domain.RankJack:
			strength += w.JackBonus
		case domain.RankTwo:
			strength += w.DeuceBonus
		}
	}
	return strength
}

// bestSuit returns the strongest trump candidate and its strength.
func bestSuit(hand *domain.Hand, w SuitWeights) (domain.Suit, float64) {
	best := domain.SuitSpades
	bestStrength := -1.0
	for _, suit := range []domain.Suit{domain.SuitSpades, domain.SuitHearts, domain.SuitDiamonds, domain.SuitClubs} {
		if s := suitStrength(hand, suit, w); s > bestStrength {
			best = suit
			bestStrength = s
		}
	}
	return best, bestStrength
}

// legalIndices returns the hand indices the player may play right now.
func legalIndices(game *domain.Game, player *domain.Player) []int {
	var legal []int
	for i := 0; i < player.Hand.Size(); i++ {
		if game.CanPlayCard(player, i).Valid {
			legal = append(legal, i)
		}
	}
	return legal
}

// currentWinningPlay reduces the trick so far to the play currently winning it.
func currentWinningPlay(game *domain.Game) (domain.TrickPlay, bool) {
	if len(game.Trick) == 0 {
		return domain.TrickPlay{}, false
	}
	winner := game.Trick[0]
	for _, play := range game.Trick[1:] {
		if beats(play.Card, winner.Card, game.Trump) {
			winner = play
		}
	}
	return winner, true
}

// beats reports whether challenger takes the trick from holder.
func beats(challenger, holder domain.Card, trump domain.Suit) bool {
	if challenger.Suit == trump && holder.Suit != trump {
		return true
	}
	if challenger.Suit != trump && holder.Suit == trump {
		return false
	}
	return challenger.Suit == holder.Suit && challenger.Rank > holder.Rank
}

/// BasicBot is a conservative strategy: it bids low, declares its longest
// suit, throws away everything off-trump, and plays the cheapest legal card.
type BasicBot struct{}

func (b *BasicBot) ChooseBid(game *domain.Game, player *domain.Player) domain.Bid {
	// Never counter a cinch.
	if game.OverrideActive() {
		return domain.BidPass
	}

	_, strength := bestSuit(player.Hand, DefaultTuning.Suit)
	if strength >= DefaultTuning.TwoThreshold && domain.IsValidBid(domain.BidTwo, game.CurrentBid) {
		return domain.BidTwo
	}
	if strength >= DefaultTuning.OneThreshold && domain.IsValidBid(domain.BidOne, game.CurrentBid) {
		return domain.BidOne
	}
	return domain.BidPass
}

func (b *BasicBot) ChooseTrump(player *domain.Player) domain.Suit {
	suit, _ := bestSuit(player.Hand, DefaultTuning.Suit)
	return suit
}

func (b *BasicBot) ChooseDiscards(player *domain.Player, trump domain.Suit) []int {
	return player.Hand.NonTrumpIndices(trump)
}

func (b *BasicBot) ChooseCard(game *domain.Game, player *domain.Player) (int, error) {
	legal := legalIndices(game, player)
	if len(legal) == 0 {
		return -1, errNotSeated
	}

	lowest := legal[0]
	for _, i := range legal[1:] {
		candidate, _ := player.Hand.At(i)
		current, _ := player.Hand.At(lowest)
		if cheaperCard(candidate, current, game.Trump) {
			lowest = i
		}
	}
	return lowest, nil
}

// cheaperCard orders cards by how safe they are to give up: off-trump before
// trump, then by rank.
func cheaperCard(a, b domain.Card, trump domain.Suit) bool {
	aTrump := a.Suit == trump
	bTrump := b.Suit == trump
	if aTrump != bTrump {
		return !aTrump
	}
	return a.Rank < b.Rank
}
