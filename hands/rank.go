package hands

// Category is a hand's tagged category within its variant. Categories from
// different variants are never comparable with each other.
type Category int

// Five-card poker categories (Texas), weakest to strongest.
const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Three-card Golden Flower categories, weakest to strongest.
const (
	GoldenHighCard Category = iota
	GoldenPair
	GoldenStraight
	GoldenFlush
	GoldenThreeOfAKind
	GoldenStraightFlush
)

// Bull categories are the 0-12 bull-value scale: No Bull (0), Bull-1 through
// Bull-9, Bull-Bull (10), Five-Flower (11), Bomb (12).
const (
	NoBull     Category = 0
	BullBull   Category = 10
	FiveFlower Category = 11
	BullBomb   Category = 12
)

// HandRank is the evaluator's output: a tagged category plus a totally
// ordered strength key. Two ranks of the same variant compare strictly via
// Compare; ranks of different variants must never be compared.
type HandRank struct {
	Variant  Variant
	Category Category
	Kickers  []int // tie-break values, highest significance first
}

// Compare returns -1 if r is weaker than other, 1 if stronger, 0 if truly
// tied. Within one variant this is a total order: category first, then
// kickers in order of significance.
func (r HandRank) Compare(other HandRank) int {
	if c := compareInt(int(r.Category), int(other.Category)); c != 0 {
		return c
	}
	for i := 0; i < len(r.Kickers) && i < len(other.Kickers); i++ {
		if c := compareInt(r.Kickers[i], other.Kickers[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Label returns the human-readable category name
func (r HandRank) Label() string {
	switch r.Variant {
	case Texas:
		return pokerLabels[r.Category]
	case Golden:
		return goldenLabels[r.Category]
	case Bull:
		return bullLabel(r.Category)
	}
	return "unknown"
}

var pokerLabels = map[Category]string{
	HighCard:      "High Card",
	OnePair:       "One Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
}

var goldenLabels = map[Category]string{
	GoldenHighCard:      "High Card",
	GoldenPair:          "Pair",
	GoldenStraight:      "Straight",
	GoldenFlush:         "Flush",
	GoldenThreeOfAKind:  "Three of a Kind",
	GoldenStraightFlush: "Straight Flush",
}

func bullLabel(c Category) string {
	switch c {
	case NoBull:
		return "No Bull"
	case BullBull:
		return "Bull-Bull"
	case FiveFlower:
		return "Five-Flower"
	case BullBomb:
		return "Bomb"
	default:
		if c >= 1 && c <= 9 {
			return "Bull-" + string(rune('0'+int(c)))
		}
		return "unknown"
	}
}

// Compare orders two hand ranks of the same variant: -1 when a is weaker
// than b, 1 when stronger, 0 when tied.
func Compare(a, b HandRank) int {
	return a.Compare(b)
}

// compareInt is a helper function to compare two integers
func compareInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
