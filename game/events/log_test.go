package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLog_AppendAndByRound(t *testing.T) {
	log := NewLog()
	log.Append(RoundStarted{RoundID: "r1", At: time.Now()})
	log.Append(BetPlaced{RoundID: "r1", ParticipantID: "alice", Amount: 10, At: time.Now()})
	log.Append(RoundStarted{RoundID: "r2", At: time.Now()})

	r1 := log.ByRound("r1")
	assert.Len(t, r1, 2)
	assert.Equal(t, "ROUND_STARTED", r1[0].Name())
	assert.Equal(t, "BET_PLACED", r1[1].Name())

	assert.Len(t, log.ByRound("r2"), 1)
	assert.Empty(t, log.ByRound("missing"))
	assert.Len(t, log.All(), 3)
}

func TestLog_EventsWithoutRoundStillInAll(t *testing.T) {
	log := NewLog()
	log.Append(AchievementUnlocked{ParticipantID: "alice", AchievementID: "first_win", At: time.Now()})

	assert.Len(t, log.All(), 1)
	assert.Empty(t, log.ByRound(""))
}

func TestLog_ReturnsCopies(t *testing.T) {
	log := NewLog()
	log.Append(RoundStarted{RoundID: "r1", At: time.Now()})

	got := log.ByRound("r1")
	got[0] = BetPlaced{RoundID: "r1"}

	assert.Equal(t, "ROUND_STARTED", log.ByRound("r1")[0].Name(), "Callers must not be able to mutate the log")
}
