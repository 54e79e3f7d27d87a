package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnlockedAchievements_FirstWin(t *testing.T) {
	unlocked := UnlockedAchievements(PlayerTally{Wins: 1, Chips: 1000}, nil)
	assert.Equal(t, []string{AchievementFirstWin}, unlocked)
}

func TestUnlockedAchievements_AlreadyUnlockedExcluded(t *testing.T) {
	tally := PlayerTally{Wins: 3, Chips: 6000}
	unlocked := UnlockedAchievements(tally, []string{AchievementFirstWin})
	assert.Equal(t, []string{AchievementRich}, unlocked)
}

func TestUnlockedAchievements_Thresholds(t *testing.T) {
	assert.Empty(t, UnlockedAchievements(PlayerTally{Chips: 4999}, nil))
	assert.Empty(t, UnlockedAchievements(PlayerTally{LandlordWins: 9, BullBullHands: 9}, nil))

	unlocked := UnlockedAchievements(PlayerTally{LandlordWins: 10, BullBullHands: 10}, nil)
	assert.Equal(t, []string{AchievementLandlordMaster, AchievementBullKing}, unlocked)
}

func TestUnlockedAchievements_NothingNew(t *testing.T) {
	all := []string{AchievementFirstWin, AchievementRich, AchievementLandlordMaster, AchievementBullKing}
	assert.Empty(t, UnlockedAchievements(PlayerTally{Wins: 100, Chips: 99999, LandlordWins: 50, BullBullHands: 50}, all))
}
