package cards

import (
	"errors"
	"math/rand"
	"time"
)

// ErrInsufficientCards is returned when a draw requests more cards than the
// deck still holds.
var ErrInsufficientCards = errors.New("not enough cards left in deck")

// RNG is an injected source of uniform random numbers in [0,1).
// Shuffles are deterministic and reproducible under a fixed source.
type RNG func() float64

// NewTimeRNG returns an RNG seeded from the current time
func NewTimeRNG() RNG {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return r.Float64
}

// NewSeededRNG returns a reproducible RNG for a fixed seed
func NewSeededRNG(seed int64) RNG {
	r := rand.New(rand.NewSource(seed))
	return r.Float64
}

// NewDeck52 creates a standard deck of 52 cards
func NewDeck52() Stack {
	var deck Stack
	suits := []Suit{Spades, Hearts, Diamonds, Clubs}
	values := []Value{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

	for _, suit := range suits {
		for _, value := range values {
			deck.AddCard(Card{Suit: suit, Value: value})
		}
	}

	return deck
}

// NewDeck54 creates the Landlord deck: 52 standard cards plus two jokers
func NewDeck54() Stack {
	deck := NewDeck52()
	deck.AddCard(Card{Suit: Jokers, Value: SmallJoker})
	deck.AddCard(Card{Suit: Jokers, Value: BigJoker})
	return deck
}

// Shuffle returns a uniformly random permutation of the deck using
// Fisher-Yates driven by the injected RNG. The input deck is not modified.
func Shuffle(deck Stack, rng RNG) Stack {
	shuffled := deck.Clone()
	for i := len(shuffled) - 1; i > 0; i-- {
		j := int(rng() * float64(i+1))
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Draw removes the first n cards from the deck and returns them with the
// remaining deck. Fails with ErrInsufficientCards if n exceeds the deck size.
func Draw(deck Stack, n int) (Stack, Stack, error) {
	if n < 0 {
		return nil, deck, errors.New("cannot draw a negative number of cards")
	}
	if n > len(deck) {
		return nil, deck, ErrInsufficientCards
	}

	drawn := make(Stack, n)
	copy(drawn, deck[:n])

	return drawn, deck[n:], nil
}
