package gofish

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatthewRicci12/gofish/deck"
	"github.com/MatthewRicci12/gofish/game"
	utils "github.com/MatthewRicci12/gofish/internal"
	"github.com/MatthewRicci12/gofish/store"
)

var quiet = zerolog.Nop()

// orderedOpts deals an unshuffled deck, so player 1 starts with QS QH QD
func orderedOpts(snapshots game.SnapshotStore) game.Opts {
	return game.Opts{
		Players: 2,
		Deck:    deck.New(),
		Store:   snapshots,
		Logger:  &quiet,
	}
}

func playSession(t *testing.T, s *Session, input ...string) string {
	t.Helper()

	out := &bytes.Buffer{}
	s.conn = Conn{In: strings.NewReader(strings.Join(input, "\n") + "\n"), Out: out}

	err := s.Run(context.Background())
	utils.AssertNoError(t, err)

	return out.String()
}

func TestSessionStartsAGame(t *testing.T) {
	s := NewSession(Conn{}, orderedOpts(nil))

	out := playSession(t, s, "quit")

	assert.Contains(t, out, welcomeText)
	assert.Contains(t, out, "standard game, 38 cards left to draw")
	assert.Contains(t, out, "Player 2: 3 cards, sets: JH")
	assert.Contains(t, out, "Player 1, it's your turn.")
	assert.Contains(t, out, "Your hand: QS QH QD")
	assert.True(t, strings.HasSuffix(out, goodbyeText))
	require.NotNil(t, s.Game())
}

func TestSessionAsk(t *testing.T) {
	t.Run("a hit redraws the table and reports the set", func(t *testing.T) {
		s := NewSession(Conn{}, orderedOpts(nil))

		out := playSession(t, s, "ask 2 qh")

		assert.Contains(t, out, setCompletedText)
		assert.Contains(t, out, "Your hand: TS")
		assert.Contains(t, out, "Your sets: KH QH")
		assert.Contains(t, out, "Player 2: 2 cards, sets: JH")
		utils.AssertEqual(t, s.Game().NumSets(), 3)
	})

	t.Run("asking an empty hand is a go fish", func(t *testing.T) {
		s := NewSession(Conn{}, orderedOpts(nil))

		out := playSession(t, s, "ask 2 QH", "ask 2 TS", "ask 2 TS")

		assert.Contains(t, out, cardsAcquiredText)
		assert.Contains(t, out, goFishText)
	})

	type test struct {
		name, line, want string
	}

	tt := []test{
		{"asking yourself", "ask 1 QH", askYourselfText},
		{"asking an empty seat", "ask 3 QH", "There is no seat 3. Pick a seat from 1 to 2."},
		{"asking for a card you don't hold", "ask 2 KH", "You don't have KH."},
		{"asking badly", "ask two QH", `"two" is not a seat`},
		{"mistyping", "fish", `Sorry, I don't know "fish".`},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession(Conn{}, orderedOpts(nil))

			out := playSession(t, s, tc.line)

			assert.Contains(t, out, tc.want)
			utils.AssertEqual(t, s.Game().NumSets(), 2)
			utils.AssertEqual(t, s.Game().CurrentTurn(), 0)
		})
	}
}

func TestSessionSaveAndLoad(t *testing.T) {
	t.Run("a saved game can be loaded back", func(t *testing.T) {
		snapshots := store.NewInMemoryStore()
		s := NewSession(Conn{}, orderedOpts(snapshots))

		out := playSession(t, s, "save", "ask 2 QH", "load")

		assert.Contains(t, out, savedText)
		assert.Contains(t, out, loadedText)

		t.Log("The checkpoint after the move is what gets loaded")
		utils.AssertEqual(t, s.Game().NumSets(), 3)
	})

	t.Run("a failed save is reported", func(t *testing.T) {
		type test struct {
			name      string
			snapshots game.SnapshotStore
			want      string
		}

		tt := []test{
			{"without a store", nil, "Couldn't save the game: " + game.ErrNoStore.Error()},
			{"when the store fails", failingStore{errors.New("disk full")}, "Couldn't save the game: disk full"},
		}

		for _, tc := range tt {
			t.Run(tc.name, func(t *testing.T) {
				s := NewSession(Conn{}, orderedOpts(tc.snapshots))

				out := playSession(t, s, "save")

				assert.Contains(t, out, tc.want)
				assert.NotContains(t, out, savedText)
			})
		}
	})

	t.Run("nothing to load", func(t *testing.T) {
		s := NewSession(Conn{}, orderedOpts(store.NewInMemoryStore()))

		out := playSession(t, s, "load")

		assert.Contains(t, out, nothingToLoadText)
		utils.AssertEqual(t, s.Game().NumSets(), 2)
	})

	t.Run("resume starts from the saved game", func(t *testing.T) {
		snapshots := store.NewInMemoryStore()
		first := NewSession(Conn{}, orderedOpts(snapshots))
		playSession(t, first, "ask 2 QH")

		second := NewSession(Conn{}, orderedOpts(snapshots))
		second.Resume = true
		out := playSession(t, second, "quit")

		assert.Contains(t, out, loadedText)
		utils.AssertEqual(t, second.Game().ID(), first.Game().ID())
	})
}

type failingStore struct {
	err error
}

func (f failingStore) Save(ctx context.Context, name string, data []byte) error {
	return f.err
}

func (f failingStore) Load(ctx context.Context, name string) ([]byte, error) {
	return nil, f.err
}

func TestSessionNewGame(t *testing.T) {
	s := NewSession(Conn{}, orderedOpts(nil))

	out := playSession(t, s, "new 3 risky", "help")

	utils.AssertEqual(t, s.Game().NumPlayers(), 3)
	utils.AssertEqual(t, s.Game().Variant(), game.Risky)
	assert.Contains(t, out, "risky game, 31 cards left to draw")
	assert.Contains(t, out, "Commands:")

	out = playSession(t, s, "new 9")
	assert.Contains(t, out, game.ErrTooManyPlayers.Error())
	utils.AssertEqual(t, s.Game().NumPlayers(), 3)
}

func TestSessionStopsWhenCancelled(t *testing.T) {
	s := NewSession(Conn{In: strings.NewReader("hand\n"), Out: &bytes.Buffer{}}, orderedOpts(nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	utils.AssertErrorIs(t, s.Run(ctx), context.Canceled)
}
