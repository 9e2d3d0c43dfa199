package domain

// Player is one seated participant. Seat and team are fixed at creation;
// the UserID doubles as the identity token the transport layer uses to
// correlate reconnects.
type Player struct {
	UserID string
	Name   string
	Seat   int

	Hand *Hand
	Won  *Hand
}

// NewPlayer seats a player with empty hand and won-cards containers.
func NewPlayer(userID, name string, seat int) *Player {
	return &Player{
		UserID: userID,
		Name:   name,
		Seat:   seat,
		Hand:   NewHand(),
		Won:    NewHand(),
	}
}

// Team returns 1 for even seats and 2 for odd seats.
func (p *Player) Team() int {
	if p.Seat%2 == 0 {
		return 1
	}
	return 2
}

// PlayCard removes and returns the card at the given hand index. The game
// validates the play with CanPlayCard before calling.
func (p *Player) PlayCard(index int) (Card, bool) {
	return p.Hand.RemoveCard(index)
}

// DiscardCards removes the cards at the given hand indices.
func (p *Player) DiscardCards(indices []int) []Card {
	return p.Hand.RemoveCards(indices)
}

// ResetForNewHand replaces both containers with empty ones. Cards won in a
// completed hand are not needed once the hand has been scored.
func (p *Player) ResetForNewHand() {
	p.Hand = NewHand()
	p.Won = NewHand()
}
