package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/cardroom/cardgames/cards"
	"github.com/cardroom/cardgames/game/events"
	"github.com/cardroom/cardgames/hands"
)

// Session owns a table: the rules, the seated participants, the deck and the
// current round. It drives the per-variant deal plan and hands wagering off
// to the round state machine.
type Session struct {
	ID           string
	Rules        Rules
	Participants []*Participant

	Deck  cards.Stack
	Board cards.Stack
	Round *Round

	// Landlord bidding state.
	BottomCards cards.Stack
	LandlordID  string
	Multiplier  int
	bidsPlaced  int

	rng           cards.RNG
	eventHandlers []events.EventHandler
}

// SessionOption configures a session at construction time.
type SessionOption func(*Session)

// WithRNG injects the shuffle randomness source, letting tests replay exact
// deals.
func WithRNG(rng cards.RNG) SessionOption {
	return func(s *Session) { s.rng = rng }
}

// NewSession seats participants under the given rules. Seat order follows
// the slice order.
func NewSession(rules Rules, participants []*Participant, opts ...SessionOption) (*Session, error) {
	if !rules.Variant.IsValid() {
		return nil, hands.ErrInvalidVariant
	}
	if len(participants) < 2 {
		return nil, ErrIllegalAction
	}
	if rules.Variant == hands.Landlord && len(participants) != 3 {
		return nil, ErrIllegalAction
	}

	s := &Session{
		ID:           uuid.NewString(),
		Rules:        rules,
		Participants: participants,
		rng:          cards.NewTimeRNG(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Session) OnEvent(handler events.EventHandler) {
	s.eventHandlers = append(s.eventHandlers, handler)
}

func (s *Session) emit(ev events.Event) {
	for _, handler := range s.eventHandlers {
		handler(ev)
	}
}

// holeCount is the number of cards each participant receives up front.
func holeCount(variant hands.Variant) int {
	switch variant {
	case hands.Texas:
		return 2
	case hands.Golden:
		return 3
	case hands.Bull:
		return 5
	case hands.Landlord:
		return 17
	}
	return 0
}

// requiredCards is the full deal plan for one round: every hole card plus
// the variant's fixed extras.
func requiredCards(variant hands.Variant, seats int) int {
	required := holeCount(variant) * seats
	switch variant {
	case hands.Texas:
		required += 8 // three burns plus five board cards
	case hands.Landlord:
		required += 3 // bottom cards
	}
	return required
}

// StartRound shuffles a fresh deck, deals every participant their hand and
// opens the first betting street (or the bidding phase for Landlord, which
// also sets aside the three bottom cards).
func (s *Session) StartRound() error {
	if s.Round != nil && s.Round.Street != StreetSettled && s.Round.Street != StreetFoldedOut {
		return ErrIllegalAction
	}

	deck := cards.NewDeck52()
	if s.Rules.Variant == hands.Landlord {
		deck = cards.NewDeck54()
	}
	if requiredCards(s.Rules.Variant, len(s.Participants)) > len(deck) {
		return cards.ErrInsufficientCards
	}
	s.Deck = cards.Shuffle(deck, s.rng)
	s.Board = cards.Stack{}
	s.BottomCards = cards.Stack{}
	s.LandlordID = ""
	s.Multiplier = 1
	s.bidsPlaced = 0

	round := NewRound(uuid.NewString(), s.Rules.Variant, s.Participants)
	for _, handler := range s.eventHandlers {
		round.OnEvent(handler)
	}
	s.Round = round

	ids := make([]string, len(s.Participants))
	for i, p := range s.Participants {
		ids[i] = p.ID
	}
	s.emit(events.RoundStarted{
		SessionID:    s.ID,
		RoundID:      round.ID,
		Variant:      s.Rules.Variant,
		Participants: ids,
		At:           time.Now(),
	})

	if err := round.BeginDealing(); err != nil {
		return err
	}

	count := holeCount(s.Rules.Variant)
	for _, p := range s.Participants {
		hand, rest, err := cards.Draw(s.Deck, count)
		if err != nil {
			return err
		}
		p.Hand = hand
		s.Deck = rest
		s.emit(events.HandDealt{
			RoundID:       round.ID,
			ParticipantID: p.ID,
			CardCount:     count,
			At:            time.Now(),
		})
	}

	if s.Rules.Variant == hands.Landlord {
		bottom, rest, err := cards.Draw(s.Deck, 3)
		if err != nil {
			return err
		}
		s.BottomCards = bottom
		s.Deck = rest
	}

	return round.BeginBetting(s.Rules)
}

// Apply forwards a wagering action to the current round.
func (s *Session) Apply(participantID string, action Action) error {
	if s.Round == nil {
		return ErrIllegalAction
	}
	return s.Round.Apply(participantID, action)
}

// AdvanceStreet closes the current street and, for Texas, deals the next
// board cards with a burn before each deal: three for the flop, one each
// for the turn and the river.
func (s *Session) AdvanceStreet() error {
	if s.Round == nil {
		return ErrIllegalAction
	}
	if err := s.Round.AdvanceStreet(); err != nil {
		return err
	}
	if s.Rules.Variant != hands.Texas {
		return nil
	}

	var dealt int
	switch s.Round.Street {
	case StreetFlop:
		dealt = 3
	case StreetTurn, StreetRiver:
		dealt = 1
	default:
		return nil
	}

	s.Deck.BurnCard()
	s.emit(events.CardBurned{RoundID: s.Round.ID, At: time.Now()})
	dealtCards := s.Deck.DealCards(dealt)
	s.Board.AddCards(dealtCards...)
	s.emit(events.BoardCardsDealt{
		RoundID: s.Round.ID,
		Cards:   dealtCards,
		At:      time.Now(),
	})
	return nil
}

// Showdown evaluates every non-folded hand and settles the pot. Texas hands
// are combined with the board before evaluation.
func (s *Session) Showdown() (Settlement, []hands.ShowdownResult, error) {
	if s.Round == nil || s.Round.Street != StreetShowdown {
		return Settlement{}, nil, ErrIllegalAction
	}

	participantCards := map[string]cards.Stack{}
	for _, p := range s.Round.ActiveParticipants() {
		hand := p.Hand.Clone()
		if s.Rules.Variant == hands.Texas {
			hand.AddCards(s.Board...)
		}
		participantCards[p.ID] = hand
	}

	results := hands.Showdown(participantCards, s.Rules.Variant)
	settlement, err := s.Round.Settle(results)
	if err != nil {
		return Settlement{}, nil, err
	}
	return settlement, results, nil
}

// SettleEarlyWin ends the round in favour of the last participant standing.
func (s *Session) SettleEarlyWin() (Settlement, error) {
	if s.Round == nil {
		return Settlement{}, ErrIllegalAction
	}
	return s.Round.SettleEarlyWin()
}

// PlaceBid records one Landlord bid: 0 passes, 1 calls and 2 grabs. A grab
// outbids a call, and a later equal bid takes the seat from an earlier one.
// Once all three participants have spoken the winner receives the bottom
// cards; if everyone passes the round ends so a fresh deal can start.
func (s *Session) PlaceBid(participantID string, multiplier int) error {
	if s.Round == nil || s.Round.Street != StreetBidding {
		return ErrIllegalAction
	}
	if multiplier < 0 || multiplier > 2 {
		return ErrIllegalAction
	}
	p, err := s.Round.Participant(participantID)
	if err != nil {
		return err
	}
	if s.Round.CurrentActor != p.ID {
		return ErrIllegalAction
	}

	if multiplier > 0 && (s.LandlordID == "" || multiplier >= s.Multiplier) {
		s.LandlordID = p.ID
		s.Multiplier = multiplier
	}
	s.bidsPlaced++
	s.Round.advanceActor(p)

	s.emit(events.BidPlaced{
		RoundID:       s.Round.ID,
		ParticipantID: p.ID,
		Multiplier:    multiplier,
		At:            time.Now(),
	})

	if s.bidsPlaced >= len(s.Participants) {
		s.Round.CurrentActor = ""
		if s.LandlordID == "" {
			// Everyone passed. End the round so StartRound can redeal.
			s.Round.setStreet(StreetSettled)
			return nil
		}
		return s.chooseLandlord()
	}
	return nil
}

// chooseLandlord hands the bottom cards to the winning bidder.
func (s *Session) chooseLandlord() error {
	landlord, err := s.Round.Participant(s.LandlordID)
	if err != nil {
		return err
	}
	landlord.Hand.AddCards(s.BottomCards...)
	s.Round.setStreet(StreetSettled)
	s.emit(events.LandlordChosen{
		RoundID:       s.Round.ID,
		ParticipantID: landlord.ID,
		Multiplier:    s.Multiplier,
		BottomCards:   s.BottomCards,
		At:            time.Now(),
	})
	return nil
}
