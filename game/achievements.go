package game

import "github.com/thoas/go-funk"

// Achievement identifiers.
const (
	AchievementFirstWin       = "first_win"
	AchievementRich           = "rich"
	AchievementLandlordMaster = "landlord_master"
	AchievementBullKing       = "bull_king"
)

// PlayerTally is the running lifetime record checked for achievements. It is
// plain data the caller keeps between rounds.
type PlayerTally struct {
	Wins          int
	Chips         int
	LandlordWins  int
	BullBullHands int
}

// achievementChecks maps each achievement to its unlock condition.
var achievementChecks = []struct {
	ID    string
	Check func(PlayerTally) bool
}{
	{AchievementFirstWin, func(t PlayerTally) bool { return t.Wins >= 1 }},
	{AchievementRich, func(t PlayerTally) bool { return t.Chips >= 5000 }},
	{AchievementLandlordMaster, func(t PlayerTally) bool { return t.LandlordWins >= 10 }},
	{AchievementBullKing, func(t PlayerTally) bool { return t.BullBullHands >= 10 }},
}

// UnlockedAchievements returns the achievements the tally newly satisfies,
// excluding any already unlocked. The result is deterministic and ordered.
func UnlockedAchievements(tally PlayerTally, already []string) []string {
	unlocked := []string{}
	for _, a := range achievementChecks {
		if funk.ContainsString(already, a.ID) {
			continue
		}
		if a.Check(tally) {
			unlocked = append(unlocked, a.ID)
		}
	}
	return unlocked
}
