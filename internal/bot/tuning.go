package bot

// SuitWeights scores a single suit as a trump candidate.
type SuitWeights struct {
	CardWeight float64
	AceBonus   float64
	KingBonus  float64
	JackBonus  float64
	DeuceBonus float64
}

// BotTuning holds the bid thresholds shared by all strategies. A six-card
// hand with ace, king and jack of one suit plus length crosses the cinch
// threshold; a bare long suit only supports a low bid.
type BotTuning struct {
	Suit SuitWeights

	OneThreshold   float64
	TwoThreshold   float64
	ThreeThreshold float64
	FourThreshold  float64
	CinchThreshold float64
}

// DefaultTuning balances aggression against the cost of a set contract.
var DefaultTuning = BotTuning{
	Suit: SuitWeights{
		CardWeight: 1.0,
		AceBonus:   2.5,
		KingBonus:  1.5,
		JackBonus:  2.0,
		DeuceBonus: 1.0,
	},
	OneThreshold:   3.0,
	TwoThreshold:   4.5,
	ThreeThreshold: 6.0,
	FourThreshold:  7.5,
	CinchThreshold: 9.5,
}
