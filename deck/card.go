package deck

import (
	"errors"
	"fmt"
)

var ErrInvalidID = errors.New("invalid card id")

// Card represents a playing card.
// Cards are comparable values, so they can be used as map keys.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard constructs a card. It panics on an out of range rank or suit,
// which is always a programming error.
func NewCard(rank Rank, suit Suit) Card {
	if !rank.Valid() || !suit.Valid() {
		panic(fmt.Sprintf("card out of range: rank %d, suit %d", rank, suit))
	}
	return Card{Rank: rank, Suit: suit}
}

// ID is the two character identifier used in move requests, e.g. "QH".
func (c Card) ID() string {
	return string([]byte{c.Rank.Glyph(), c.Suit.Glyph()})
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// ParseID is the inverse of Card.ID
func ParseID(id string) (Card, error) {
	if len(id) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	rank, ok := rankFromGlyph(id[0])
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidID, id)
	}
	suit, ok := suitFromGlyph(id[1])
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidID, id)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustParseIDs parses a list of ids and panics on the first bad one.
// Meant for fixtures.
func MustParseIDs(ids ...string) []Card {
	cards := make([]Card, 0, len(ids))
	for _, id := range ids {
		c, err := ParseID(id)
		if err != nil {
			panic(err)
		}
		cards = append(cards, c)
	}
	return cards
}

// IDs returns the ids of cards, in order
func IDs(cards []Card) []string {
	ids := make([]string, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.ID())
	}
	return ids
}

func rankFromGlyph(b byte) (Rank, bool) {
	for r := Ace; r <= King; r++ {
		if rankGlyphs[r] == b {
			return r, true
		}
	}
	return 0, false
}

func suitFromGlyph(b byte) (Suit, bool) {
	for s := Clubs; s <= Diamonds; s++ {
		if s.Glyph() == b {
			return s, true
		}
	}
	return 0, false
}
