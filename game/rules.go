package game

import "github.com/cardroom/cardgames/hands"

// Rules carries the table configuration for a session. Zero values are legal:
// a round with no blinds and no ante simply starts with an empty pot.
type Rules struct {
	Variant    hands.Variant
	SmallBlind int
	BigBlind   int
	Ante       int
	MinBet     int
}

// DefaultRules returns the stakes the dealer demo plays at.
func DefaultRules(variant hands.Variant) Rules {
	switch variant {
	case hands.Texas:
		return Rules{Variant: variant, SmallBlind: 5, BigBlind: 10, MinBet: 10}
	default:
		return Rules{Variant: variant, MinBet: 10}
	}
}
