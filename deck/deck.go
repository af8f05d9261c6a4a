package deck

import (
	"math/rand"
	"time"
)

// FullDeckSize is the number of cards in a standard deck
const FullDeckSize = 52

// Deck represents a pile of cards. The top of the pile is the last element.
type Deck []Card

// New creates an unshuffled deck of cards.
// Ranks go from Ace to King and, within a rank, Clubs, Spades, Diamonds and
// Hearts are pushed in turn, so the King of Hearts ends up on top.
func New() Deck {
	cards := Deck{}
	for _, rank := range Ranks() {
		for _, suit := range constructionOrder {
			cards.Push(NewCard(rank, suit))
		}
	}
	return cards
}

// Shuffle shuffles the deck of cards
func (d *Deck) Shuffle() {
	d.ShuffleWith(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// ShuffleWith shuffles using r, which makes the order reproducible
func (d *Deck) ShuffleWith(r *rand.Rand) {
	actualDeck := *d
	r.Shuffle(len(actualDeck), func(i, j int) {
		actualDeck[i], actualDeck[j] = actualDeck[j], actualDeck[i]
	})
}

// Push puts a card on top of the deck. Only used while building a pile.
func (d *Deck) Push(c Card) {
	*d = append(*d, c)
}

// Draw pops the top card. ok is false when the deck is empty.
func (d *Deck) Draw() (c Card, ok bool) {
	n := len(*d)
	if n == 0 {
		return Card{}, false
	}
	c = (*d)[n-1]
	*d = (*d)[:n-1]
	return c, true
}

// Clone returns a copy that shares nothing with d
func (d Deck) Clone() Deck {
	out := make(Deck, len(d))
	copy(out, d)
	return out
}
