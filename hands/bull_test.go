package hands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_BullBull(t *testing.T) {
	// {5,5,K} sums to 20; the remaining {Q,J} sum to 20, 20 mod 10 = 0,
	// which counts as Bull-Bull.
	rank, err := Evaluate(stackOf("5s", "5h", "Kd", "Qc", "Js"), Bull)
	require.NoError(t, err)

	assert.Equal(t, BullBull, rank.Category, "Expected Bull-Bull")
	assert.Equal(t, "Bull-Bull", rank.Label())
}

func TestEvaluate_NoBull(t *testing.T) {
	rank, err := Evaluate(stackOf("As", "2h", "4d", "6c", "8s"), Bull)
	require.NoError(t, err)

	assert.Equal(t, NoBull, rank.Category, "Expected no three-card subset to sum to a multiple of 10")
	assert.Equal(t, "No Bull", rank.Label())
}

func TestEvaluate_OrdinaryBullValue(t *testing.T) {
	// {2,3,5} sums to 10; remaining {9,8} sum to 17 -> Bull-7.
	rank, err := Evaluate(stackOf("2s", "3h", "5d", "9c", "8s"), Bull)
	require.NoError(t, err)

	assert.Equal(t, Category(7), rank.Category, "Expected Bull-7")
	assert.Equal(t, "Bull-7", rank.Label())
}

func TestEvaluate_BullPicksBestSubset(t *testing.T) {
	// {10,Q,K} is a bull leaving {9,A} = Bull-10? No: 9+1=10 -> Bull-Bull.
	// Multiple bull subsets exist; the best one must be chosen.
	rank, err := Evaluate(stackOf("10s", "Qh", "Kd", "9c", "As"), Bull)
	require.NoError(t, err)

	assert.Equal(t, BullBull, rank.Category, "Expected the search to keep the best subset")
}

func TestEvaluate_FiveFlower(t *testing.T) {
	rank, err := Evaluate(stackOf("Js", "Jh", "Qd", "Kc", "Ks"), Bull)
	require.NoError(t, err)

	assert.Equal(t, FiveFlower, rank.Category, "Expected all face cards to score Five-Flower")

	bullBull, err := Evaluate(stackOf("5s", "5h", "Kd", "Qc", "Js"), Bull)
	require.NoError(t, err)
	assert.Equal(t, 1, rank.Compare(bullBull), "Expected Five-Flower to beat Bull-Bull")
}

func TestEvaluate_BombOutranksEverything(t *testing.T) {
	bomb, err := Evaluate(stackOf("7s", "7h", "7d", "7c", "Ks"), Bull)
	require.NoError(t, err)
	fiveFlower, err := Evaluate(stackOf("Js", "Jh", "Qd", "Kc", "Ks"), Bull)
	require.NoError(t, err)
	bullBull, err := Evaluate(stackOf("5s", "5h", "Kd", "Qc", "Js"), Bull)
	require.NoError(t, err)

	assert.Equal(t, BullBomb, bomb.Category)
	assert.Equal(t, 1, bomb.Compare(fiveFlower), "Expected a bomb to beat Five-Flower")
	assert.Equal(t, 1, bomb.Compare(bullBull), "Expected a bomb to beat Bull-Bull")
}

func TestEvaluate_FaceCardBombIsBombNotFiveFlower(t *testing.T) {
	rank, err := Evaluate(stackOf("Js", "Jh", "Jd", "Jc", "Ks"), Bull)
	require.NoError(t, err)

	assert.Equal(t, BullBomb, rank.Category, "Expected four jacks to score as a bomb, not Five-Flower")
}

func TestEvaluate_BullTieBreaksOnMaxCard(t *testing.T) {
	// Both hands are Bull-Bull; the second holds an ace.
	withKing, err := Evaluate(stackOf("5s", "5h", "Kd", "Qc", "Js"), Bull)
	require.NoError(t, err)
	withAce, err := Evaluate(stackOf("As", "9h", "10d", "10c", "10s"), Bull)
	require.NoError(t, err)

	require.Equal(t, BullBull, withKing.Category)
	require.Equal(t, BullBull, withAce.Category)
	assert.Equal(t, 1, withAce.Compare(withKing), "Expected the ace-high hand to win the tie")
}

func TestEvaluate_BullInvalidSize(t *testing.T) {
	_, err := Evaluate(stackOf("5s", "5h", "Kd", "Qc"), Bull)
	assert.ErrorIs(t, err, ErrInvalidHandSize)
}
