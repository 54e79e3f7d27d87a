package hands

import (
	"sort"

	"github.com/cardroom/cardgames/cards"
)

// Evaluate computes the rank of a hand under the selected variant's rules.
// It is a pure function: the result depends only on the multiset of input
// cards, never on their order.
//
// Accepted hand sizes: 5, 6 or 7 cards for Texas (hole + board, best five
// are searched), exactly 3 for Golden Flower, exactly 5 for Bull.
func Evaluate(hand cards.Stack, variant Variant) (HandRank, error) {
	switch variant {
	case Texas:
		if len(hand) < 5 || len(hand) > 7 {
			return HandRank{}, ErrInvalidHandSize
		}
		return evaluateBestFive(hand), nil
	case Golden:
		if len(hand) != 3 {
			return HandRank{}, ErrInvalidHandSize
		}
		return evaluateGolden(hand), nil
	case Bull:
		if len(hand) != 5 {
			return HandRank{}, ErrInvalidHandSize
		}
		return evaluateBull(hand), nil
	default:
		return HandRank{}, ErrInvalidVariant
	}
}

// evaluateBestFive searches all 5-card subsets of the hand and returns the
// strongest combination. A 5-card hand short-circuits to a single evaluation.
func evaluateBestFive(hand cards.Stack) HandRank {
	if len(hand) == 5 {
		return evaluateFiveCards(hand)
	}

	best := HandRank{Variant: Texas, Category: -1}
	for _, combo := range combinations(len(hand), 5) {
		five := make(cards.Stack, 5)
		for i, idx := range combo {
			five[i] = hand[idx]
		}
		if rank := evaluateFiveCards(five); best.Category < 0 || rank.Compare(best) > 0 {
			best = rank
		}
	}
	return best
}

// evaluateFiveCards ranks exactly five cards under standard poker rules
func evaluateFiveCards(hand cards.Stack) HandRank {
	sorted := sortByRankDesc(hand)

	flush := isFlush(sorted)
	straight, straightHigh := isStraight(sorted)

	if flush && straight {
		if straightHigh == 14 {
			return HandRank{Variant: Texas, Category: RoyalFlush}
		}
		return HandRank{Variant: Texas, Category: StraightFlush, Kickers: []int{straightHigh}}
	}

	groups := groupByRank(sorted)

	if quad, kicker, ok := findFourOfAKind(groups); ok {
		return HandRank{Variant: Texas, Category: FourOfAKind, Kickers: []int{quad, kicker}}
	}

	if three, pair, ok := findFullHouse(groups); ok {
		return HandRank{Variant: Texas, Category: FullHouse, Kickers: []int{three, pair}}
	}

	if flush {
		return HandRank{Variant: Texas, Category: Flush, Kickers: ranksOf(sorted)}
	}

	if straight {
		return HandRank{Variant: Texas, Category: Straight, Kickers: []int{straightHigh}}
	}

	if three, kickers, ok := findThreeOfAKind(groups); ok {
		return HandRank{Variant: Texas, Category: ThreeOfAKind, Kickers: append([]int{three}, kickers...)}
	}

	if high, low, kicker, ok := findTwoPair(groups); ok {
		return HandRank{Variant: Texas, Category: TwoPair, Kickers: []int{high, low, kicker}}
	}

	if pair, kickers, ok := findOnePair(groups); ok {
		return HandRank{Variant: Texas, Category: OnePair, Kickers: append([]int{pair}, kickers...)}
	}

	return HandRank{Variant: Texas, Category: HighCard, Kickers: ranksOf(sorted)}
}

// sortByRankDesc sorts cards by rank in descending order
func sortByRankDesc(hand cards.Stack) cards.Stack {
	sorted := hand.Clone()
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Rank() > sorted[j].Rank()
	})
	return sorted
}

// ranksOf converts cards to their rank values, preserving order
func ranksOf(hand cards.Stack) []int {
	ranks := make([]int, len(hand))
	for i, card := range hand {
		ranks[i] = card.Rank()
	}
	return ranks
}

// isFlush checks if all cards are of the same suit
func isFlush(hand cards.Stack) bool {
	if len(hand) == 0 {
		return false
	}
	suit := hand[0].Suit
	for _, card := range hand[1:] {
		if card.Suit != suit {
			return false
		}
	}
	return true
}

// isStraight checks for consecutive rank values and returns the straight's
// high card. The wheel (A-2-3-4-5) is an explicit special case ranked by the
// 5, not the Ace: a plain sorted-ascending consecutiveness check would
// reject it.
func isStraight(hand cards.Stack) (bool, int) {
	ranks := ranksOf(hand)
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	consecutive := true
	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[i-1]-1 {
			consecutive = false
			break
		}
	}
	if consecutive {
		return true, ranks[0]
	}

	if isWheel(ranks) {
		return true, 5
	}

	return false, 0
}

// isWheel checks for A-5-4-3-2 (ranks sorted descending: 14,5,4,3,2)
func isWheel(desc []int) bool {
	if len(desc) != 5 {
		return false
	}
	return desc[0] == 14 && desc[1] == 5 && desc[2] == 4 && desc[3] == 3 && desc[4] == 2
}

// groupByRank counts the occurrences of each rank value
func groupByRank(hand cards.Stack) map[int]int {
	counts := make(map[int]int)
	for _, card := range hand {
		counts[card.Rank()]++
	}
	return counts
}

// findFourOfAKind returns the quad rank and the kicker rank
func findFourOfAKind(groups map[int]int) (int, int, bool) {
	quad, kicker := 0, 0
	for rank, count := range groups {
		if count == 4 {
			quad = rank
		} else {
			kicker = rank
		}
	}
	return quad, kicker, quad > 0
}

// findFullHouse returns the trips rank and the pair rank
func findFullHouse(groups map[int]int) (int, int, bool) {
	three, pair := 0, 0
	for rank, count := range groups {
		switch count {
		case 3:
			three = rank
		case 2:
			pair = rank
		}
	}
	return three, pair, three > 0 && pair > 0
}

// findThreeOfAKind returns the trips rank and the kicker ranks descending
func findThreeOfAKind(groups map[int]int) (int, []int, bool) {
	three := 0
	var kickers []int
	for rank, count := range groups {
		if count == 3 {
			three = rank
		} else {
			kickers = append(kickers, rank)
		}
	}
	if three == 0 {
		return 0, nil, false
	}
	sort.Sort(sort.Reverse(sort.IntSlice(kickers)))
	return three, kickers, true
}

// findTwoPair returns the higher pair, lower pair and kicker ranks
func findTwoPair(groups map[int]int) (int, int, int, bool) {
	var pairs []int
	kicker := 0
	for rank, count := range groups {
		switch count {
		case 2:
			pairs = append(pairs, rank)
		case 1:
			kicker = rank
		}
	}
	if len(pairs) != 2 {
		return 0, 0, 0, false
	}
	sort.Sort(sort.Reverse(sort.IntSlice(pairs)))
	return pairs[0], pairs[1], kicker, true
}

// findOnePair returns the pair rank and the kicker ranks descending
func findOnePair(groups map[int]int) (int, []int, bool) {
	pair := 0
	var kickers []int
	for rank, count := range groups {
		if count == 2 {
			pair = rank
		} else {
			kickers = append(kickers, rank)
		}
	}
	if pair == 0 {
		return 0, nil, false
	}
	sort.Sort(sort.Reverse(sort.IntSlice(kickers)))
	return pair, kickers, true
}

// combinations generates all possible combinations of k elements from a set
func combinations(n, k int) [][]int {
	if k > n {
		return nil
	}

	var result [][]int
	var combine func(int, []int)

	combine = func(start int, current []int) {
		if len(current) == k {
			combo := make([]int, k)
			copy(combo, current)
			result = append(result, combo)
			return
		}
		for i := start; i < n; i++ {
			current = append(current, i)
			combine(i+1, current)
			current = current[:len(current)-1]
		}
	}

	combine(0, []int{})
	return result
}
