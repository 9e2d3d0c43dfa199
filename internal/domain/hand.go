package domain

import "sort"

// Hand is an ordered, mutable collection of cards. It backs both a player's
// current hand and the pile of cards won in tricks. Insertion order is
// preserved; all removal is by current position.
type Hand struct {
	cards []Card
}

// NewHand returns an empty hand.
func NewHand() *Hand {
	return &Hand{}
}

// AddCard appends a card to the hand.
func (h *Hand) AddCard(c Card) {
	h.cards = append(h.cards, c)
}

// AddCards appends cards to the hand, preserving their order.
func (h *Hand) AddCards(cards []Card) {
	h.cards = append(h.cards, cards...)
}

// At returns the card at index without removing it.
func (h *Hand) At(index int) (Card, bool) {
	if index < 0 || index >= len(h.cards) {
		return Card{}, false
	}
	return h.cards[index], true
}

// RemoveCard removes and returns the card at index. ok is false when the
// index is out of range; callers are expected to validate first.
func (h *Hand) RemoveCard(index int) (Card, bool) {
	if index < 0 || index >= len(h.cards) {
		return Card{}, false
	}
	c := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return c, true
}

// RemoveCards removes the cards at the given positions and returns them.
// Indices are processed from highest to lowest so that earlier removals
// cannot shift the positions of later ones; the result is the same logical
// cards for any permutation of the index set.
func (h *Hand) RemoveCards(indices []int) []Card {
	ordered := append([]int(nil), indices...)
	sort.Sort(sort.Reverse(sort.IntSlice(ordered)))

	removed := make([]Card, 0, len(ordered))
	for _, idx := range ordered {
		if c, ok := h.RemoveCard(idx); ok {
			removed = append(removed, c)
		}
	}
	return removed
}

// HasCard reports whether the hand contains the exact suit+rank card.
func (h *Hand) HasCard(suit Suit, rank Rank) bool {
	for _, c := range h.cards {
		if c.Suit == suit && c.Rank == rank {
			return true
		}
	}
	return false
}

// HasSuit reports whether the hand holds any card of the given suit.
func (h *Hand) HasSuit(suit Suit) bool {
	for _, c := range h.cards {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

// CardsOfSuit returns the cards of the given suit in hand order.
func (h *Hand) CardsOfSuit(suit Suit) []Card {
	var out []Card
	for _, c := range h.cards {
		if c.Suit == suit {
			out = append(out, c)
		}
	}
	return out
}

// NonTrumpCards returns the cards that are not of the trump suit.
func (h *Hand) NonTrumpCards(trump Suit) []Card {
	var out []Card
	for _, c := range h.cards {
		if c.Suit != trump {
			out = append(out, c)
		}
	}
	return out
}

// NonTrumpIndices returns the positions of non-trump cards relative to the
// hand's current order.
func (h *Hand) NonTrumpIndices(trump Suit) []int {
	var out []int
	for i, c := range h.cards {
		if c.Suit != trump {
			out = append(out, i)
		}
	}
	return out
}

// TotalPointValue sums the point values of every card in the hand.
func (h *Hand) TotalPointValue() int {
	total := 0
	for _, c := range h.cards {
		total += c.PointValue()
	}
	return total
}

// Size returns the number of cards held.
func (h *Hand) Size() int {
	return len(h.cards)
}

// IsEmpty reports whether the hand holds no cards.
func (h *Hand) IsEmpty() bool {
	return len(h.cards) == 0
}

// Cards returns a copy of the hand contents for transport snapshots.
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}
