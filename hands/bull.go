package hands

import "github.com/cardroom/cardgames/cards"

// evaluateBull scores exactly five cards on the 0-12 Bull scale. A "bull" is
// any three-card subset whose face values sum to a multiple of 10; the bull
// value is then the remaining two cards' sum mod 10, with 0 counting as 10
// (Bull-Bull). Two special hands outrank every ordinary bull value:
// Five-Flower (all cards J or above) and Bomb (four of a kind).
//
// Ties at the same value break on the highest single card rank in the hand.
func evaluateBull(hand cards.Stack) HandRank {
	value := bullValue(hand)

	if isBomb(hand) {
		value = BullBomb
	} else if isFiveFlower(hand) {
		value = FiveFlower
	}

	return HandRank{Variant: Bull, Category: value, Kickers: []int{maxRank(hand)}}
}

// bullValue searches all C(5,3)=10 three-card subsets for the best bull
func bullValue(hand cards.Stack) Category {
	values := make([]int, len(hand))
	total := 0
	for i, card := range hand {
		values[i] = card.FaceValue()
		total += values[i]
	}

	best := 0
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 4; j++ {
			for k := j + 1; k < 5; k++ {
				sum := values[i] + values[j] + values[k]
				if sum%10 != 0 {
					continue
				}
				remaining := (total - sum) % 10
				if remaining == 0 {
					remaining = 10
				}
				if remaining > best {
					best = remaining
				}
			}
		}
	}

	return Category(best)
}

// isFiveFlower checks that every card ranks J or above
func isFiveFlower(hand cards.Stack) bool {
	for _, card := range hand {
		if card.Rank() < 11 {
			return false
		}
	}
	return true
}

// isBomb checks for four cards of identical rank
func isBomb(hand cards.Stack) bool {
	for _, count := range groupByRank(hand) {
		if count == 4 {
			return true
		}
	}
	return false
}

// maxRank returns the highest single card rank in the hand
func maxRank(hand cards.Stack) int {
	max := 0
	for _, card := range hand {
		if card.Rank() > max {
			max = card.Rank()
		}
	}
	return max
}
