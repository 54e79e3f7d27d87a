package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck52(t *testing.T) {
	deck := NewDeck52()

	assert.Len(t, deck, 52, "Expected a standard deck to have 52 cards")

	seen := make(map[Card]bool)
	for _, card := range deck {
		assert.False(t, seen[card], "Expected no duplicate card, got %s twice", card)
		seen[card] = true
		assert.False(t, card.IsJoker(), "Expected no jokers in a standard deck")
	}
}

func TestNewDeck54(t *testing.T) {
	deck := NewDeck54()

	assert.Len(t, deck, 54, "Expected a Landlord deck to have 54 cards")

	jokers := Stack{}
	seen := make(map[Card]bool)
	for _, card := range deck {
		assert.False(t, seen[card], "Expected no duplicate card, got %s twice", card)
		seen[card] = true
		if card.IsJoker() {
			jokers.AddCard(card)
		}
	}

	require.Len(t, jokers, 2, "Expected exactly two jokers")
	assert.False(t, jokers[0].Equals(jokers[1]), "Expected the two jokers to be distinct")
}

func TestShuffle_IsBijection(t *testing.T) {
	deck := NewDeck52()
	shuffled := Shuffle(deck, NewSeededRNG(42))

	require.Len(t, shuffled, len(deck), "Expected shuffle to preserve deck size")

	counts := make(map[Card]int)
	for _, card := range deck {
		counts[card]++
	}
	for _, card := range shuffled {
		counts[card]--
	}
	for card, count := range counts {
		assert.Zero(t, count, "Expected card %s to appear exactly once after shuffle", card)
	}
}

func TestShuffle_DeterministicUnderFixedSeed(t *testing.T) {
	deck := NewDeck52()

	first := Shuffle(deck, NewSeededRNG(7))
	second := Shuffle(deck, NewSeededRNG(7))

	assert.Equal(t, first, second, "Expected identical shuffles for identical RNG sequences")
}

func TestShuffle_DoesNotModifyInput(t *testing.T) {
	deck := NewDeck52()
	original := deck.Clone()

	Shuffle(deck, NewSeededRNG(1))

	assert.Equal(t, original, deck, "Expected input deck to be left untouched")
}

func TestDraw(t *testing.T) {
	deck := NewDeck52()

	drawn, remaining, err := Draw(deck, 5)

	require.NoError(t, err)
	assert.Len(t, drawn, 5, "Expected 5 drawn cards")
	assert.Len(t, remaining, 47, "Expected 47 cards to remain")
	assert.Equal(t, deck[:5], drawn, "Expected draw to remove from the front")
}

func TestDraw_InsufficientCards(t *testing.T) {
	deck := NewStack(Card{Suit: Spades, Value: Ace})

	_, remaining, err := Draw(deck, 2)

	assert.ErrorIs(t, err, ErrInsufficientCards)
	assert.Equal(t, deck, remaining, "Expected failed draw to leave the deck unchanged")
}

func TestStack_DealAndBurn(t *testing.T) {
	card1 := Card{Suit: Clubs, Value: Ace}
	card2 := Card{Suit: Diamonds, Value: Two}
	card3 := Card{Suit: Hearts, Value: King}
	stack := NewStack(card1, card2, card3)

	dealt := stack.DealCard()
	assert.Equal(t, card1, dealt, "Expected dealt card to be the top card")
	assert.Len(t, stack, 2, "Expected stack to shrink after deal")

	stack.BurnCard()
	assert.Len(t, stack, 1, "Expected stack to shrink after burn")
	assert.Equal(t, card3, stack[0], "Expected remaining card to be card3")
}

func TestStack_DealCards(t *testing.T) {
	card1 := Card{Suit: Clubs, Value: Ace}
	card2 := Card{Suit: Diamonds, Value: Two}
	card3 := Card{Suit: Hearts, Value: King}
	stack := NewStack(card1, card2, card3)

	dealt := stack.DealCards(2)

	assert.Equal(t, NewStack(card1, card2), dealt, "Expected first two cards to be dealt")
	assert.Equal(t, NewStack(card3), stack, "Expected one card to remain")
}

func TestStack_String(t *testing.T) {
	stack := NewStack(
		Card{Suit: Clubs, Value: Ace},
		Card{Suit: Diamonds, Value: Two},
	)

	assert.Equal(t, "A♣ 2♦", stack.String())
}
