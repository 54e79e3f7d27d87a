package hands

import "errors"

// Variant identifies one of the supported card games. It is a closed set:
// every evaluator and comparison is only meaningful within a single variant.
type Variant string

const (
	Texas    Variant = "texas"
	Landlord Variant = "landlord"
	Golden   Variant = "golden"
	Bull     Variant = "bull"
)

var (
	// ErrInvalidHandSize is returned when a hand is evaluated with a card
	// count the variant does not allow.
	ErrInvalidHandSize = errors.New("invalid hand size for variant")

	// ErrInvalidVariant is returned for unknown variants and for variants
	// that have no showdown ranking (Landlord is deck/deal only).
	ErrInvalidVariant = errors.New("variant has no hand ranking")
)

// IsValid checks if the variant is one of the supported games
func (v Variant) IsValid() bool {
	switch v {
	case Texas, Landlord, Golden, Bull:
		return true
	}
	return false
}
