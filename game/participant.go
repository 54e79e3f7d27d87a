package game

import "github.com/cardroom/cardgames/cards"

// Participant is a player seated in a round. Seat numbers increase away from
// the dealer, so seat 0 is the earliest seat.
type Participant struct {
	ID         string
	Seat       int
	Chips      int
	CurrentBet int // chips committed during the current street
	Committed  int // chips committed during the whole round
	Folded     bool
	Hand       cards.Stack
}

// commit moves chips from the participant's stack into the pot counters.
// Callers must validate the amount first.
func (p *Participant) commit(amount int) {
	p.Chips -= amount
	p.CurrentBet += amount
	p.Committed += amount
}

func (p *Participant) resetForStreet() {
	p.CurrentBet = 0
}
