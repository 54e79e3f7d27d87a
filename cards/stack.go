package cards

import "strings"

// Stack represents an ordered collection of cards: a deck, a hand, or a board.
type Stack []Card

// NewStack creates a new stack holding the given cards
func NewStack(cards ...Card) Stack {
	return Stack(cards)
}

// String returns the space-separated representation of the stack
func (s Stack) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// AddCard adds a single card to the stack
func (s *Stack) AddCard(card Card) {
	*s = append(*s, card)
}

// AddCards adds multiple cards to the stack
func (s *Stack) AddCards(cards ...Card) {
	*s = append(*s, cards...)
}

// DealCard removes and returns the top card of the stack
func (s *Stack) DealCard() Card {
	if len(*s) == 0 {
		return Card{}
	}
	card := (*s)[0]
	*s = (*s)[1:]
	return card
}

// DealCards removes and returns the top count cards of the stack.
// If fewer cards remain, it deals what is left.
func (s *Stack) DealCards(count int) Stack {
	if count > len(*s) {
		count = len(*s)
	}
	dealt := make(Stack, count)
	copy(dealt, (*s)[:count])
	*s = (*s)[count:]
	return dealt
}

// BurnCard discards the top card of the stack without revealing it
func (s *Stack) BurnCard() {
	if len(*s) > 0 {
		*s = (*s)[1:]
	}
}

// IsEmpty checks whether the stack has no cards left
func (s Stack) IsEmpty() bool {
	return len(s) == 0
}

// Contains checks whether the stack holds the given card
func (s Stack) Contains(card Card) bool {
	for _, c := range s {
		if c.Equals(card) {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the stack
func (s Stack) Clone() Stack {
	clone := make(Stack, len(s))
	copy(clone, s)
	return clone
}
