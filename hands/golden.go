package hands

import (
	"sort"

	"github.com/cardroom/cardgames/cards"
)

// evaluateGolden ranks exactly three cards under Golden Flower rules:
// Straight Flush > Three of a Kind > Flush > Straight > Pair > High Card.
func evaluateGolden(hand cards.Stack) HandRank {
	sorted := sortByRankDesc(hand)

	flush := isFlush(sorted)
	straight, straightHigh := isGoldenStraight(sorted)

	if flush && straight {
		return HandRank{Variant: Golden, Category: GoldenStraightFlush, Kickers: []int{straightHigh}}
	}

	groups := groupByRank(sorted)

	for rank, count := range groups {
		if count == 3 {
			return HandRank{Variant: Golden, Category: GoldenThreeOfAKind, Kickers: []int{rank}}
		}
	}

	if flush {
		return HandRank{Variant: Golden, Category: GoldenFlush, Kickers: ranksOf(sorted)}
	}

	if straight {
		return HandRank{Variant: Golden, Category: GoldenStraight, Kickers: []int{straightHigh}}
	}

	if pair, kickers, ok := findOnePair(groups); ok {
		return HandRank{Variant: Golden, Category: GoldenPair, Kickers: append([]int{pair}, kickers...)}
	}

	return HandRank{Variant: Golden, Category: GoldenHighCard, Kickers: ranksOf(sorted)}
}

// isGoldenStraight checks three consecutive ranks. A-2-3 is a valid low
// straight ranked by the 3; this is an explicit special case, not a generic
// wrap-around.
func isGoldenStraight(hand cards.Stack) (bool, int) {
	ranks := ranksOf(hand)
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	if ranks[0] == ranks[1]+1 && ranks[1] == ranks[2]+1 {
		return true, ranks[0]
	}

	// A-2-3 (descending: 14, 3, 2)
	if ranks[0] == 14 && ranks[1] == 3 && ranks[2] == 2 {
		return true, 3
	}

	return false, 0
}
