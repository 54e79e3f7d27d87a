package cards

import (
	"fmt"
	"unicode/utf8"
)

// Suit represents a card suit
type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
	Jokers   Suit = "🃏" // sentinel suit for the two jokers in a 54-card deck
)

// Value represents a card value
type Value string

const (
	Ace        Value = "A"
	King       Value = "K"
	Queen      Value = "Q"
	Jack       Value = "J"
	Ten        Value = "10"
	Nine       Value = "9"
	Eight      Value = "8"
	Seven      Value = "7"
	Six        Value = "6"
	Five       Value = "5"
	Four       Value = "4"
	Three      Value = "3"
	Two        Value = "2"
	SmallJoker Value = "joker"
	BigJoker   Value = "JOKER"
)

// Card represents a playing card. Cards are pure values: equality is
// structural (suit + value) and there is no identity beyond that.
type Card struct {
	Suit  Suit
	Value Value
}

// String returns the string representation of a card
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Value, c.Suit)
}

// Equals checks if two cards are equal
func (c Card) Equals(other Card) bool {
	return c.Suit == other.Suit && c.Value == other.Value
}

// IsJoker checks if the card is one of the two jokers
func (c Card) IsJoker() bool {
	return c.Suit == Jokers
}

// Rank converts the card value to its numerical rank (2=2 .. A=14,
// small joker=15, big joker=16)
func (c Card) Rank() int {
	switch c.Value {
	case Two:
		return 2
	case Three:
		return 3
	case Four:
		return 4
	case Five:
		return 5
	case Six:
		return 6
	case Seven:
		return 7
	case Eight:
		return 8
	case Nine:
		return 9
	case Ten:
		return 10
	case Jack:
		return 11
	case Queen:
		return 12
	case King:
		return 13
	case Ace:
		return 14
	case SmallJoker:
		return 15
	case BigJoker:
		return 16
	default:
		return 0
	}
}

// FaceValue returns the Bull-scoring value of a card: numerals at face,
// J/Q/K counted as 10 and Ace as 1.
func (c Card) FaceValue() int {
	switch c.Value {
	case Ace:
		return 1
	case Jack, Queen, King:
		return 10
	default:
		return c.Rank()
	}
}

// CardFromString creates a card from a string representation
// e.g., "10♠" or "10s" or "10S" -> Card{Suit: Spades, Value: Ten}
// e.g., "w" -> small joker, "W" -> big joker
func CardFromString(s string) (Card, error) {
	switch s {
	case "w":
		return Card{Suit: Jokers, Value: SmallJoker}, nil
	case "W":
		return Card{Suit: Jokers, Value: BigJoker}, nil
	}

	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card shorthand: %s", s)
	}

	// The suit is the last rune, which may be a multi-byte glyph.
	lastRune, size := utf8.DecodeLastRuneInString(s)

	var suit Suit
	switch string(lastRune) {
	case "♠", "s", "S":
		suit = Spades
	case "♥", "h", "H":
		suit = Hearts
	case "♦", "d", "D":
		suit = Diamonds
	case "♣", "c", "C":
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid card suit: %s", string(lastRune))
	}

	var value Value
	switch s[:len(s)-size] {
	case "A":
		value = Ace
	case "K":
		value = King
	case "Q":
		value = Queen
	case "J":
		value = Jack
	case "10", "T":
		value = Ten
	case "9":
		value = Nine
	case "8":
		value = Eight
	case "7":
		value = Seven
	case "6":
		value = Six
	case "5":
		value = Five
	case "4":
		value = Four
	case "3":
		value = Three
	case "2":
		value = Two
	default:
		return Card{}, fmt.Errorf("invalid card value: %s", s[:len(s)-size])
	}

	return Card{Suit: suit, Value: value}, nil
}

// MustCardFromString is CardFromString for literals in tests and fixtures;
// it panics on malformed input.
func MustCardFromString(s string) Card {
	card, err := CardFromString(s)
	if err != nil {
		panic(err)
	}
	return card
}
