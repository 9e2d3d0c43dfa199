package domain

import "math/rand"

// Deck is the 52-card supply for one hand. The game owns exactly one and
// recreates it fresh at the start of every hand.
type Deck struct {
	cards []Card
}

// NewDeck returns an ordered 52-card deck (suit-major, rank-minor).
func NewDeck() *Deck {
	cards := make([]Card, 0, 52)
	for _, s := range Suits {
		for r := RankTwo; r <= RankAce; r++ {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return &Deck{cards: cards}
}

// Shuffle performs an in-place uniform Fisher-Yates shuffle. The rng is
// injected by the owner; it is a general-purpose source, not a
// cryptographic one.
func (d *Deck) Shuffle(rng *rand.Rand) {
	for i := len(d.cards) - 1; i >= 1; i-- {
		j := rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the next n cards. When the deck holds fewer than
// n cards the remainder is returned; exhaustion is never an error.
func (d *Deck) Deal(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	out := make([]Card, n)
	copy(out, d.cards[:n])
	d.cards = d.cards[n:]
	return out
}

// Size returns the number of undealt cards.
func (d *Deck) Size() int {
	return len(d.cards)
}
