package events

import (
	"time"

	"github.com/cardroom/cardgames/cards"
	"github.com/cardroom/cardgames/hands"
)

// EventHandler is a callback invoked for every event the engine emits.
type EventHandler func(event Event)

// Event is the interface all engine events implement.
type Event interface {
	Name() string
}

type RoundStarted struct {
	SessionID    string
	RoundID      string
	Variant      hands.Variant
	Participants []string
	At           time.Time
}

func (e RoundStarted) Name() string { return "ROUND_STARTED" }

type HandDealt struct {
	RoundID       string
	ParticipantID string
	CardCount     int
	At            time.Time
}

func (e HandDealt) Name() string { return "HAND_DEALT" }

type BoardCardsDealt struct {
	RoundID string
	Cards   cards.Stack
	At      time.Time
}

func (e BoardCardsDealt) Name() string { return "BOARD_CARDS_DEALT" }

type CardBurned struct {
	RoundID string
	At      time.Time
}

func (e CardBurned) Name() string { return "CARD_BURNED" }

type BlindPosted struct {
	RoundID       string
	ParticipantID string
	Kind          string // "small", "big" or "ante"
	Amount        int
	At            time.Time
}

func (e BlindPosted) Name() string { return "BLIND_POSTED" }

type BetPlaced struct {
	RoundID       string
	ParticipantID string
	Amount        int
	Street        string
	At            time.Time
}

func (e BetPlaced) Name() string { return "BET_PLACED" }

type ParticipantChecked struct {
	RoundID       string
	ParticipantID string
	Street        string
	At            time.Time
}

func (e ParticipantChecked) Name() string { return "PARTICIPANT_CHECKED" }

type ParticipantFolded struct {
	RoundID       string
	ParticipantID string
	Street        string
	At            time.Time
}

func (e ParticipantFolded) Name() string { return "PARTICIPANT_FOLDED" }

type PotChanged struct {
	RoundID        string
	PreviousAmount int
	NewAmount      int
	At             time.Time
}

func (e PotChanged) Name() string { return "POT_CHANGED" }

type StreetAdvanced struct {
	RoundID        string
	PreviousStreet string
	NewStreet      string
	At             time.Time
}

func (e StreetAdvanced) Name() string { return "STREET_ADVANCED" }

type ShowdownStarted struct {
	RoundID      string
	Participants []string
	At           time.Time
}

func (e ShowdownStarted) Name() string { return "SHOWDOWN_STARTED" }

type PotAwarded struct {
	RoundID       string
	ParticipantID string
	Amount        int
	Reason        string
	At            time.Time
}

func (e PotAwarded) Name() string { return "POT_AWARDED" }

type RoundSettled struct {
	RoundID   string
	WinnerIDs []string
	Pot       int
	Deltas    map[string]int
	At        time.Time
}

func (e RoundSettled) Name() string { return "ROUND_SETTLED" }

type EarlyWinDeclared struct {
	RoundID       string
	ParticipantID string
	Pot           int
	At            time.Time
}

func (e EarlyWinDeclared) Name() string { return "EARLY_WIN_DECLARED" }

type BidPlaced struct {
	RoundID       string
	ParticipantID string
	Multiplier    int // 0 = pass
	At            time.Time
}

func (e BidPlaced) Name() string { return "BID_PLACED" }

type LandlordChosen struct {
	RoundID       string
	ParticipantID string
	Multiplier    int
	BottomCards   cards.Stack
	At            time.Time
}

func (e LandlordChosen) Name() string { return "LANDLORD_CHOSEN" }

type AchievementUnlocked struct {
	ParticipantID string
	AchievementID string
	At            time.Time
}

func (e AchievementUnlocked) Name() string { return "ACHIEVEMENT_UNLOCKED" }
