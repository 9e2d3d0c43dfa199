package bot

import (
	"cinch/internal/domain"
)

// Agent represents an autonomous bot player.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// Bid asks the agent for its bid in the current auction.
func (a *Agent) Bid(game *domain.Game) domain.Bid {
	player := game.PlayerByID(a.ID)
	if player == nil {
		return domain.BidPass
	}
	return a.Strategy.ChooseBid(game, player)
}

// SelectTrump asks the agent which suit to declare as trump.
func (a *Agent) SelectTrump(game *domain.Game) domain.Suit {
	player := game.PlayerByID(a.ID)
	if player == nil {
		return domain.SuitSpades
	}
	return a.Strategy.ChooseTrump(player)
}

// Discard asks the agent which hand indices to throw away.
func (a *Agent) Discard(game *domain.Game) []int {
	player := game.PlayerByID(a.ID)
	if player == nil {
		return nil
	}
	return a.Strategy.ChooseDiscards(player, game.Trump)
}

// Play asks the agent for the hand index of the card to play.
func (a *Agent) Play(game *domain.Game) (int, error) {
	player := game.PlayerByID(a.ID)
	if player == nil {
		return -1, errNotSeated
	}
	return a.Strategy.ChooseCard(game, player)
}
