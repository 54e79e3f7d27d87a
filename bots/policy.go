package bots

import (
	"github.com/cardroom/cardgames/cards"
	"github.com/cardroom/cardgames/game"
	"github.com/cardroom/cardgames/hands"
)

// View is the read-only snapshot a bot is allowed to see when it acts: its
// own hand, the public board and the table state. It never exposes other
// participants' cards.
type View struct {
	Variant hands.Variant
	Street  game.Street
	Pot     int
	ToCall  int
	LiveBet int // highest bet on the current street
	MinBet  int
	Chips   int
	Hand    cards.Stack
	Board   cards.Stack
}

// DecisionPolicy turns a view into a wagering action.
type DecisionPolicy interface {
	Decide(view View) game.Action
}

// ViewFor builds the view for one participant in the session's current
// round.
func ViewFor(session *game.Session, participantID string) (View, error) {
	round := session.Round
	if round == nil {
		return View{}, game.ErrIllegalAction
	}
	p, err := round.Participant(participantID)
	if err != nil {
		return View{}, err
	}
	return View{
		Variant: session.Rules.Variant,
		Street:  round.Street,
		Pot:     round.Pot,
		ToCall:  round.MaxBet() - p.CurrentBet,
		LiveBet: round.MaxBet(),
		MinBet:  session.Rules.MinBet,
		Chips:   p.Chips,
		Hand:    p.Hand.Clone(),
		Board:   session.Board.Clone(),
	}, nil
}

// RandomCaller plays without looking at its cards: it usually matches the
// live bet and occasionally opens for the minimum. It folds only when it
// cannot afford the call.
type RandomCaller struct {
	RNG cards.RNG
}

func (b RandomCaller) Decide(view View) game.Action {
	if view.ToCall > 0 {
		if view.ToCall > view.Chips {
			return game.Action{Type: game.ActionFold}
		}
		if b.RNG() > 0.3 {
			return game.Action{Type: game.ActionCall}
		}
		return game.Action{Type: game.ActionFold}
	}
	if view.LiveBet > 0 || b.RNG() > 0.3 || view.MinBet > view.Chips || view.MinBet <= 0 {
		// Nothing owed. Only open a bet when the street has no live bet.
		return game.Action{Type: game.ActionCheck}
	}
	return game.Action{Type: game.ActionBet, Amount: view.MinBet}
}

// StrengthCaller evaluates its own hand and stays in only when the hand
// reaches its category threshold. Below the threshold it usually folds but
// limps in now and then.
type StrengthCaller struct {
	RNG       cards.RNG
	Threshold hands.Category
}

func (b StrengthCaller) Decide(view View) game.Action {
	hand := view.Hand.Clone()
	if view.Variant == hands.Texas {
		hand.AddCards(view.Board...)
	}

	rank, err := hands.Evaluate(hand, view.Variant)
	strong := err == nil && rank.Category >= b.Threshold

	if !strong && b.RNG() > 0.3 {
		return game.Action{Type: game.ActionFold}
	}
	if view.ToCall > 0 {
		if view.ToCall > view.Chips {
			return game.Action{Type: game.ActionFold}
		}
		return game.Action{Type: game.ActionCall}
	}
	return game.Action{Type: game.ActionCheck}
}
