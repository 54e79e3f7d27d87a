package game

import (
	"sort"
	"time"

	"github.com/thoas/go-funk"

	"github.com/cardroom/cardgames/game/events"
	"github.com/cardroom/cardgames/hands"
)

// Settlement is the final accounting of a round. Deltas holds every
// participant's net chip change; the values always sum to zero.
type Settlement struct {
	RoundID    string
	WinnerIDs  []string
	PotAwarded int
	Deltas     map[string]int
}

// Settle splits the pot among the showdown winners and credits their stacks.
// Ties split the pot evenly, with any indivisible remainder going to the
// winner in the earliest seat. The round must be in showdown.
func (r *Round) Settle(results []hands.ShowdownResult) (Settlement, error) {
	if r.Street != StreetShowdown {
		return Settlement{}, ErrIllegalAction
	}

	winnerIDs := []string{}
	for _, result := range results {
		if result.IsWinner {
			winnerIDs = append(winnerIDs, result.ParticipantID)
		}
	}
	winners := funk.Filter(r.ActiveParticipants(), func(p *Participant) bool {
		return funk.ContainsString(winnerIDs, p.ID)
	}).([]*Participant)
	if len(winners) == 0 {
		return Settlement{}, ErrIllegalAction
	}
	sort.Slice(winners, func(i, j int) bool { return winners[i].Seat < winners[j].Seat })

	settlement := r.award(winners, "showdown")
	r.setStreet(StreetSettled)
	return settlement, nil
}

// SettleEarlyWin hands the whole pot to the last participant standing after
// every other seat has folded. The round ends folded-out without a showdown.
func (r *Round) SettleEarlyWin() (Settlement, error) {
	if !r.Street.IsBetting() {
		return Settlement{}, ErrIllegalAction
	}
	winner, ok := r.EarlyWinner()
	if !ok {
		return Settlement{}, ErrIllegalAction
	}

	r.emit(events.EarlyWinDeclared{
		RoundID:       r.ID,
		ParticipantID: winner.ID,
		Pot:           r.Pot,
		At:            time.Now(),
	})
	settlement := r.award([]*Participant{winner}, "early-win")
	r.setStreet(StreetFoldedOut)
	return settlement, nil
}

// award distributes the pot across the winners (already in seat order) and
// builds the zero-sum delta map against each participant's committed chips.
func (r *Round) award(winners []*Participant, reason string) Settlement {
	pot := r.Pot
	share := 0
	remainder := 0
	if len(winners) > 0 {
		share = pot / len(winners)
		remainder = pot % len(winners)
	}

	awarded := map[string]int{}
	for i, w := range winners {
		amount := share
		if i == 0 {
			amount += remainder
		}
		w.Chips += amount
		awarded[w.ID] = amount
		r.emit(events.PotAwarded{
			RoundID:       r.ID,
			ParticipantID: w.ID,
			Amount:        amount,
			Reason:        reason,
			At:            time.Now(),
		})
	}

	deltas := map[string]int{}
	winnerIDs := []string{}
	for _, p := range r.Participants {
		deltas[p.ID] = awarded[p.ID] - p.Committed
	}
	for _, w := range winners {
		winnerIDs = append(winnerIDs, w.ID)
	}

	r.Pot = 0
	settlement := Settlement{
		RoundID:    r.ID,
		WinnerIDs:  winnerIDs,
		PotAwarded: pot,
		Deltas:     deltas,
	}
	r.emit(events.RoundSettled{
		RoundID:   r.ID,
		WinnerIDs: winnerIDs,
		Pot:       pot,
		Deltas:    deltas,
		At:        time.Now(),
	})
	return settlement
}
