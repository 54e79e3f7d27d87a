package game

import "errors"

var (
	// ErrInsufficientChips is returned when a bet, raise or call exceeds a
	// participant's remaining stack.
	ErrInsufficientChips = errors.New("participant does not have enough chips")

	// ErrIllegalAction is returned when an action is attempted in a street
	// or state that disallows it, out of turn, or by a folded participant.
	ErrIllegalAction = errors.New("action is not legal in the current state")

	// ErrUnknownParticipant is returned when an action names a participant
	// that is not part of the round.
	ErrUnknownParticipant = errors.New("participant is not part of this round")
)
