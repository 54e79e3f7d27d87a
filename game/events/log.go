package events

import "sync"

// Log is an in-memory, append-only record of engine events, keyed by round.
// It is safe for concurrent use; its Append method satisfies EventHandler so
// a log can be subscribed directly to a session.
type Log struct {
	mutex     sync.RWMutex
	byRoundID map[string][]Event
	all       []Event
}

func NewLog() *Log {
	return &Log{byRoundID: make(map[string][]Event)}
}

// Append records one event.
func (l *Log) Append(event Event) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.all = append(l.all, event)
	if id := roundID(event); id != "" {
		l.byRoundID[id] = append(l.byRoundID[id], event)
	}
}

// ByRound returns a copy of the events recorded for one round, in order.
func (l *Log) ByRound(roundID string) []Event {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	recorded := l.byRoundID[roundID]
	result := make([]Event, len(recorded))
	copy(result, recorded)
	return result
}

// All returns a copy of every recorded event, in order.
func (l *Log) All() []Event {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	result := make([]Event, len(l.all))
	copy(result, l.all)
	return result
}

// roundID pulls the round identifier off the events that carry one.
func roundID(event Event) string {
	switch e := event.(type) {
	case RoundStarted:
		return e.RoundID
	case HandDealt:
		return e.RoundID
	case BoardCardsDealt:
		return e.RoundID
	case CardBurned:
		return e.RoundID
	case BlindPosted:
		return e.RoundID
	case BetPlaced:
		return e.RoundID
	case ParticipantChecked:
		return e.RoundID
	case ParticipantFolded:
		return e.RoundID
	case PotChanged:
		return e.RoundID
	case StreetAdvanced:
		return e.RoundID
	case ShowdownStarted:
		return e.RoundID
	case PotAwarded:
		return e.RoundID
	case RoundSettled:
		return e.RoundID
	case EarlyWinDeclared:
		return e.RoundID
	case BidPlaced:
		return e.RoundID
	case LandlordChosen:
		return e.RoundID
	}
	return ""
}
