package game

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/MatthewRicci12/gofish/deck"
	utils "github.com/MatthewRicci12/gofish/internal"
)

var quiet = zerolog.Nop()

// gameWithHands builds a game with a fixed pile (ids bottom to top) and
// fixed hands, so no shuffling or dealing gets in the way
func gameWithHands(t *testing.T, variant Variant, pile []string, hands ...[]string) *Game {
	t.Helper()

	cardHands := make([][]deck.Card, 0, len(hands))
	for _, h := range hands {
		cardHands = append(cardHands, deck.MustParseIDs(h...))
	}

	g, err := New(Opts{
		Variant: variant,
		Deck:    deck.Deck(deck.MustParseIDs(pile...)),
		Hands:   cardHands,
		Logger:  &quiet,
	})
	utils.AssertNoError(t, err)

	return g
}

func handIDs(g *Game, i int) []string {
	return deck.IDs(g.Player(i).Hand)
}

func setIDs(g *Game, i int) []string {
	return deck.IDs(g.Player(i).Sets)
}

func assertValid(t *testing.T, g *Game) {
	t.Helper()

	if err := g.Validate(); err != nil {
		t.Fatalf("game state is invalid: %s", err)
	}
}

var errNoSnapshot = errors.New("no such snapshot")

type memoryStore struct {
	saved map[string][]byte
	saves int
	err   error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{saved: map[string][]byte{}}
}

func (m *memoryStore) Save(ctx context.Context, name string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	m.saves++
	m.saved[name] = data
	return nil
}

func (m *memoryStore) Load(ctx context.Context, name string) ([]byte, error) {
	data, ok := m.saved[name]
	if !ok {
		return nil, errNoSnapshot
	}
	return data, nil
}
