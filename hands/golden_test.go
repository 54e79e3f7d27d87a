package hands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_GoldenCategories(t *testing.T) {
	tests := []struct {
		name     string
		hand     []string
		expected Category
	}{
		{"straight flush", []string{"4h", "5h", "6h"}, GoldenStraightFlush},
		{"three of a kind", []string{"9h", "9d", "9c"}, GoldenThreeOfAKind},
		{"flush", []string{"2h", "7h", "Kh"}, GoldenFlush},
		{"straight", []string{"4h", "5d", "6c"}, GoldenStraight},
		{"pair", []string{"9h", "9d", "2c"}, GoldenPair},
		{"high card", []string{"2h", "7d", "Kc"}, GoldenHighCard},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rank, err := Evaluate(stackOf(tc.hand...), Golden)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, rank.Category, "Expected %s", tc.name)
		})
	}
}

func TestEvaluate_GoldenLowStraight(t *testing.T) {
	rank, err := Evaluate(stackOf("Ah", "2d", "3c"), Golden)
	require.NoError(t, err)

	assert.Equal(t, GoldenStraight, rank.Category, "Expected A-2-3 to be a valid low straight")
	assert.Equal(t, []int{3}, rank.Kickers, "Expected A-2-3 to be ranked by the 3")
}

func TestEvaluate_GoldenLowStraightIsWeakest(t *testing.T) {
	low, err := Evaluate(stackOf("Ah", "2d", "3c"), Golden)
	require.NoError(t, err)
	next, err := Evaluate(stackOf("2h", "3d", "4c"), Golden)
	require.NoError(t, err)

	assert.Equal(t, -1, low.Compare(next), "Expected A-2-3 to lose to 2-3-4")
}

func TestEvaluate_GoldenQAKIsNotAStraight(t *testing.T) {
	rank, err := Evaluate(stackOf("Qh", "Ad", "Kc"), Golden)
	require.NoError(t, err)

	assert.Equal(t, GoldenHighCard, rank.Category)
}

func TestEvaluate_GoldenThreeOfAKindBeatsFlush(t *testing.T) {
	trips, err := Evaluate(stackOf("2h", "2d", "2c"), Golden)
	require.NoError(t, err)
	flush, err := Evaluate(stackOf("Ah", "Kh", "Jh"), Golden)
	require.NoError(t, err)

	assert.Equal(t, 1, trips.Compare(flush), "Expected three of a kind to beat a flush in Golden Flower")
}

func TestEvaluate_GoldenInvalidSize(t *testing.T) {
	_, err := Evaluate(stackOf("Ah", "Kh"), Golden)
	assert.ErrorIs(t, err, ErrInvalidHandSize)

	_, err = Evaluate(stackOf("Ah", "Kh", "Qh", "Jh"), Golden)
	assert.ErrorIs(t, err, ErrInvalidHandSize)
}
