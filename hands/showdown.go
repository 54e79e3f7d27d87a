package hands

import (
	"sort"

	"github.com/cardroom/cardgames/cards"
)

// ShowdownResult represents one participant's outcome when multiple hands
// are compared at showdown.
type ShowdownResult struct {
	ParticipantID string
	Rank          HandRank
	IsWinner      bool
	PlaceIndex    int // 0 for first place; tied hands share a place index
}

// Showdown evaluates and compares the given participants' hands under one
// variant, best first. Every participant tied for the strongest hand is a
// winner. Participants whose hands fail to evaluate (wrong card count) are
// excluded from the results; callers are expected to pre-validate sizes.
func Showdown(participantCards map[string]cards.Stack, variant Variant) []ShowdownResult {
	if len(participantCards) == 0 {
		return nil
	}

	type evaluated struct {
		id   string
		rank HandRank
	}

	ranked := make([]evaluated, 0, len(participantCards))
	for id, hand := range participantCards {
		rank, err := Evaluate(hand, variant)
		if err != nil {
			continue
		}
		ranked = append(ranked, evaluated{id: id, rank: rank})
	}

	// Strongest first; participant ID as a stable tie-break for ordering
	// only (it never affects winner/place computation).
	sort.Slice(ranked, func(i, j int) bool {
		if c := ranked[i].rank.Compare(ranked[j].rank); c != 0 {
			return c > 0
		}
		return ranked[i].id < ranked[j].id
	})

	results := make([]ShowdownResult, len(ranked))
	placeIndex := 0
	for i, entry := range ranked {
		if i > 0 && entry.rank.Compare(ranked[i-1].rank) != 0 {
			placeIndex = i
		}
		results[i] = ShowdownResult{
			ParticipantID: entry.id,
			Rank:          entry.rank,
			IsWinner:      placeIndex == 0,
			PlaceIndex:    placeIndex,
		}
	}

	return results
}
