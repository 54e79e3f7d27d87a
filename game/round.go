package game

import (
	"time"

	"github.com/cardroom/cardgames/game/events"
	"github.com/cardroom/cardgames/hands"
)

// Street names a phase of a round. Texas walks the four betting streets,
// Golden and Bull play a single street, Landlord bids instead of betting.
type Street string

const (
	StreetWaiting   Street = "waiting"
	StreetDealing   Street = "dealing"
	StreetBidding   Street = "bidding"
	StreetPreflop   Street = "preflop"
	StreetFlop      Street = "flop"
	StreetTurn      Street = "turn"
	StreetRiver     Street = "river"
	StreetBetting   Street = "betting"
	StreetShowdown  Street = "showdown"
	StreetSettled   Street = "settled"
	StreetFoldedOut Street = "folded-out"
)

// IsBetting reports whether wagering actions are legal on this street.
func (s Street) IsBetting() bool {
	switch s {
	case StreetPreflop, StreetFlop, StreetTurn, StreetRiver, StreetBetting:
		return true
	}
	return false
}

// ActionType names a wagering move.
type ActionType string

const (
	ActionBet   ActionType = "bet"
	ActionCall  ActionType = "call"
	ActionCheck ActionType = "check"
	ActionRaise ActionType = "raise"
	ActionFold  ActionType = "fold"
)

// Action is a single wagering move by one participant. Amount is the chips
// added on top of the current max bet for a raise, and the opening size for
// a bet. Call, check and fold ignore it.
type Action struct {
	Type   ActionType
	Amount int
}

// Round is the betting state machine for one deal. It mutates in place and
// reports state changes through its event handlers. All validation happens
// before any mutation, so a failed Apply leaves the round untouched.
type Round struct {
	ID           string
	Variant      hands.Variant
	Street       Street
	Pot          int
	Participants []*Participant
	CurrentActor string

	eventHandlers []events.EventHandler
}

// NewRound seats the participants in the order given and leaves the round
// waiting for cards. Seat numbers are assigned from the slice order.
func NewRound(id string, variant hands.Variant, participants []*Participant) *Round {
	for i, p := range participants {
		p.Seat = i
		p.CurrentBet = 0
		p.Committed = 0
		p.Folded = false
	}
	return &Round{
		ID:           id,
		Variant:      variant,
		Street:       StreetWaiting,
		Participants: participants,
	}
}

func (r *Round) OnEvent(handler events.EventHandler) {
	r.eventHandlers = append(r.eventHandlers, handler)
}

func (r *Round) emit(ev events.Event) {
	for _, handler := range r.eventHandlers {
		handler(ev)
	}
}

// Participant looks up a seated participant by ID.
func (r *Round) Participant(id string) (*Participant, error) {
	for _, p := range r.Participants {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrUnknownParticipant
}

// ActiveParticipants returns the participants who have not folded, in seat
// order.
func (r *Round) ActiveParticipants() []*Participant {
	active := []*Participant{}
	for _, p := range r.Participants {
		if !p.Folded {
			active = append(active, p)
		}
	}
	return active
}

// MaxBet returns the highest current-street bet among non-folded
// participants.
func (r *Round) MaxBet() int {
	max := 0
	for _, p := range r.ActiveParticipants() {
		if p.CurrentBet > max {
			max = p.CurrentBet
		}
	}
	return max
}

// BeginDealing moves the round from waiting into the dealing phase.
func (r *Round) BeginDealing() error {
	if r.Street != StreetWaiting {
		return ErrIllegalAction
	}
	r.setStreet(StreetDealing)
	return nil
}

// BeginBetting opens the first betting street and posts blinds and antes
// according to the rules. For Texas the first participant posts the small
// blind and the second the big blind; action then starts on the earliest
// seat. Landlord rounds enter the bidding phase instead.
func (r *Round) BeginBetting(rules Rules) error {
	if r.Street != StreetDealing {
		return ErrIllegalAction
	}

	if r.Variant == hands.Landlord {
		r.setStreet(StreetBidding)
		r.CurrentActor = r.Participants[0].ID
		return nil
	}

	if rules.Ante > 0 {
		for _, p := range r.Participants {
			if p.Chips < rules.Ante {
				return ErrInsufficientChips
			}
		}
		for _, p := range r.Participants {
			r.post(p, rules.Ante, "ante")
		}
	}

	if r.Variant == hands.Texas && rules.SmallBlind > 0 {
		if len(r.Participants) < 2 {
			return ErrIllegalAction
		}
		small, big := r.Participants[0], r.Participants[1]
		if small.Chips < rules.SmallBlind || big.Chips < rules.BigBlind {
			return ErrInsufficientChips
		}
		r.post(small, rules.SmallBlind, "small")
		r.post(big, rules.BigBlind, "big")
	}

	if r.Variant == hands.Texas {
		r.setStreet(StreetPreflop)
	} else {
		r.setStreet(StreetBetting)
	}
	r.CurrentActor = r.Participants[0].ID
	return nil
}

func (r *Round) post(p *Participant, amount int, kind string) {
	p.commit(amount)
	r.growPot(amount)
	r.emit(events.BlindPosted{
		RoundID:       r.ID,
		ParticipantID: p.ID,
		Kind:          kind,
		Amount:        amount,
		At:            time.Now(),
	})
}

func (r *Round) growPot(amount int) {
	previous := r.Pot
	r.Pot += amount
	r.emit(events.PotChanged{
		RoundID:        r.ID,
		PreviousAmount: previous,
		NewAmount:      r.Pot,
		At:             time.Now(),
	})
}

// Apply validates and executes one wagering action. The round is only
// mutated when every check passes.
func (r *Round) Apply(participantID string, action Action) error {
	if !r.Street.IsBetting() {
		return ErrIllegalAction
	}
	p, err := r.Participant(participantID)
	if err != nil {
		return err
	}
	if p.Folded {
		return ErrIllegalAction
	}
	if r.CurrentActor != "" && r.CurrentActor != participantID {
		return ErrIllegalAction
	}

	switch action.Type {
	case ActionBet:
		if r.MaxBet() > 0 || action.Amount <= 0 {
			return ErrIllegalAction
		}
		if action.Amount > p.Chips {
			return ErrInsufficientChips
		}
		r.wager(p, action.Amount)
	case ActionCall:
		owed := r.MaxBet() - p.CurrentBet
		if owed > p.Chips {
			return ErrInsufficientChips
		}
		if owed > 0 {
			r.wager(p, owed)
		} else {
			r.emitChecked(p)
		}
	case ActionCheck:
		if p.CurrentBet != r.MaxBet() {
			return ErrIllegalAction
		}
		r.emitChecked(p)
	case ActionRaise:
		if action.Amount <= 0 {
			return ErrIllegalAction
		}
		owed := r.MaxBet() - p.CurrentBet + action.Amount
		if owed > p.Chips {
			return ErrInsufficientChips
		}
		r.wager(p, owed)
	case ActionFold:
		p.Folded = true
		r.emit(events.ParticipantFolded{
			RoundID:       r.ID,
			ParticipantID: p.ID,
			Street:        string(r.Street),
			At:            time.Now(),
		})
	default:
		return ErrIllegalAction
	}

	r.advanceActor(p)
	return nil
}

func (r *Round) wager(p *Participant, amount int) {
	p.commit(amount)
	r.growPot(amount)
	r.emit(events.BetPlaced{
		RoundID:       r.ID,
		ParticipantID: p.ID,
		Amount:        amount,
		Street:        string(r.Street),
		At:            time.Now(),
	})
}

func (r *Round) emitChecked(p *Participant) {
	r.emit(events.ParticipantChecked{
		RoundID:       r.ID,
		ParticipantID: p.ID,
		Street:        string(r.Street),
		At:            time.Now(),
	})
}

// advanceActor moves the action to the next non-folded participant after p,
// wrapping around the table.
func (r *Round) advanceActor(p *Participant) {
	n := len(r.Participants)
	for offset := 1; offset <= n; offset++ {
		next := r.Participants[(p.Seat+offset)%n]
		if !next.Folded {
			r.CurrentActor = next.ID
			return
		}
	}
	r.CurrentActor = ""
}

// IsStreetComplete reports whether every non-folded participant has matched
// the current max bet. An all-checked street (every bet zero) counts as
// complete; the session drives one action per participant before asking.
func (r *Round) IsStreetComplete() bool {
	max := r.MaxBet()
	for _, p := range r.ActiveParticipants() {
		if p.CurrentBet != max {
			return false
		}
	}
	return true
}

// EarlyWinner returns the last participant standing when everyone else has
// folded, or false when the round is still contested.
func (r *Round) EarlyWinner() (*Participant, bool) {
	active := r.ActiveParticipants()
	if len(active) == 1 {
		return active[0], true
	}
	return nil, false
}

// AdvanceStreet closes the current betting street and opens the next one,
// resetting per-street bets. The last betting street advances into showdown.
func (r *Round) AdvanceStreet() error {
	if !r.Street.IsBetting() {
		return ErrIllegalAction
	}
	if !r.IsStreetComplete() {
		return ErrIllegalAction
	}

	for _, p := range r.Participants {
		p.resetForStreet()
	}

	var next Street
	switch r.Street {
	case StreetPreflop:
		next = StreetFlop
	case StreetFlop:
		next = StreetTurn
	case StreetTurn:
		next = StreetRiver
	default:
		next = StreetShowdown
	}
	r.setStreet(next)

	if next == StreetShowdown {
		ids := []string{}
		for _, p := range r.ActiveParticipants() {
			ids = append(ids, p.ID)
		}
		r.CurrentActor = ""
		r.emit(events.ShowdownStarted{
			RoundID:      r.ID,
			Participants: ids,
			At:           time.Now(),
		})
	} else {
		r.CurrentActor = r.firstActiveID()
	}
	return nil
}

func (r *Round) firstActiveID() string {
	for _, p := range r.Participants {
		if !p.Folded {
			return p.ID
		}
	}
	return ""
}

func (r *Round) setStreet(next Street) {
	previous := r.Street
	r.Street = next
	r.emit(events.StreetAdvanced{
		RoundID:        r.ID,
		PreviousStreet: string(previous),
		NewStreet:      string(next),
		At:             time.Now(),
	})
}
