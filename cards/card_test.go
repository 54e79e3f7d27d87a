package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected Card
	}{
		{"10♠", Card{Suit: Spades, Value: Ten}},
		{"10s", Card{Suit: Spades, Value: Ten}},
		{"Th", Card{Suit: Hearts, Value: Ten}},
		{"AS", Card{Suit: Spades, Value: Ace}},
		{"Kd", Card{Suit: Diamonds, Value: King}},
		{"2c", Card{Suit: Clubs, Value: Two}},
		{"w", Card{Suit: Jokers, Value: SmallJoker}},
		{"W", Card{Suit: Jokers, Value: BigJoker}},
	}

	for _, tc := range tests {
		card, err := CardFromString(tc.input)
		assert.NoError(t, err, "Expected no error for input %q", tc.input)
		assert.Equal(t, tc.expected, card, "Expected card for input %q", tc.input)
	}
}

func TestCardFromString_Invalid(t *testing.T) {
	for _, input := range []string{"", "X", "1♠", "Az"} {
		_, err := CardFromString(input)
		assert.Error(t, err, "Expected error for input %q", input)
	}
}

func TestCard_Rank(t *testing.T) {
	assert.Equal(t, 2, Card{Suit: Clubs, Value: Two}.Rank())
	assert.Equal(t, 10, Card{Suit: Clubs, Value: Ten}.Rank())
	assert.Equal(t, 11, Card{Suit: Clubs, Value: Jack}.Rank())
	assert.Equal(t, 14, Card{Suit: Clubs, Value: Ace}.Rank())
	assert.Equal(t, 15, Card{Suit: Jokers, Value: SmallJoker}.Rank())
	assert.Equal(t, 16, Card{Suit: Jokers, Value: BigJoker}.Rank())
}

func TestCard_FaceValue(t *testing.T) {
	assert.Equal(t, 1, Card{Suit: Clubs, Value: Ace}.FaceValue(), "Ace counts 1 in Bull scoring")
	assert.Equal(t, 10, Card{Suit: Clubs, Value: King}.FaceValue(), "Face cards count 10 in Bull scoring")
	assert.Equal(t, 10, Card{Suit: Clubs, Value: Jack}.FaceValue())
	assert.Equal(t, 7, Card{Suit: Clubs, Value: Seven}.FaceValue())
	assert.Equal(t, 10, Card{Suit: Clubs, Value: Ten}.FaceValue())
}

func TestCard_Equals(t *testing.T) {
	a := Card{Suit: Spades, Value: Ace}
	b := Card{Suit: Spades, Value: Ace}
	c := Card{Suit: Hearts, Value: Ace}

	assert.True(t, a.Equals(b), "Expected structurally equal cards to be equal")
	assert.False(t, a.Equals(c), "Expected cards of different suits to differ")
}

func TestCard_IsJoker(t *testing.T) {
	assert.True(t, Card{Suit: Jokers, Value: BigJoker}.IsJoker())
	assert.False(t, Card{Suit: Spades, Value: Ace}.IsJoker())
}
