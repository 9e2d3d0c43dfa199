package bot

import (
	"cinch/internal/domain"
)

// Brain is the interface that all bot strategies must implement.
// Each method covers one decision point in a hand.
type Brain interface {
	// ChooseBid returns the bid to place, or BidPass.
	ChooseBid(game *domain.Game, player *domain.Player) domain.Bid
	// ChooseTrump returns the suit to declare when the bot won the auction.
	ChooseTrump(player *domain.Player) domain.Suit
	// ChooseDiscards returns the hand indices to discard after trump is set.
	ChooseDiscards(player *domain.Player, trump domain.Suit) []int
	// ChooseCard returns the hand index of the card to play.
	ChooseCard(game *domain.Game, player *domain.Player) (int, error)
}
