package domain

// Suit identifies one of the four card suits.
type Suit string

const (
	SuitSpades   Suit = "S"
	SuitHearts   Suit = "H"
	SuitDiamonds Suit = "D"
	SuitClubs    Suit = "C"
)

// Suits lists every suit in deck-construction order.
var Suits = [4]Suit{SuitSpades, SuitHearts, SuitDiamonds, SuitClubs}

// Valid reports whether s is one of the four known suits.
func (s Suit) Valid() bool {
	switch s {
	case SuitSpades, SuitHearts, SuitDiamonds, SuitClubs:
		return true
	}
	return false
}

// Name returns the long suit name used in player-facing messages.
func (s Suit) Name() string {
	switch s {
	case SuitSpades:
		return "Spades"
	case SuitHearts:
		return "Hearts"
	case SuitDiamonds:
		return "Diamonds"
	case SuitClubs:
		return "Clubs"
	}
	return "Unknown"
}

// Rank is a card rank index. 0 is the lowest rank (Two), 12 the highest (Ace).
type Rank int

const (
	RankTwo Rank = iota
	RankThree
	RankFour
	RankFive
	RankSix
	RankSeven
	RankEight
	RankNine
	RankTen
	RankJack
	RankQueen
	RankKing
	RankAce
)

var rankLabels = [13]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// Label returns the short rank label ("2".."10", "J", "Q", "K", "A").
func (r Rank) Label() string {
	if r < RankTwo || r > RankAce {
		return "?"
	}
	return rankLabels[r]
}

// Card is a single immutable playing card.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// PointValue returns the card's value toward the Game scoring category.
func (c Card) PointValue() int {
	switch c.Rank {
	case RankTen:
		return 10
	case RankAce:
		return 4
	case RankKing:
		return 3
	case RankQueen:
		return 2
	case RankJack:
		return 1
	}
	return 0
}

func (c Card) String() string {
	return c.Rank.Label() + string(c.Suit)
}
