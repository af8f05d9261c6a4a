package game

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatthewRicci12/gofish/deck"
	utils "github.com/MatthewRicci12/gofish/internal"
)

func TestSnapshot(t *testing.T) {
	t.Run("captures the game", func(t *testing.T) {
		g, err := New(Opts{Players: 2, Deck: deck.New(), ID: "abc", Variant: Popcorn, Logger: &quiet})
		require.NoError(t, err)

		s := g.Snapshot()

		utils.AssertEqual(t, s.Version, SnapshotVersion)
		utils.AssertEqual(t, s.GameID, "abc")
		utils.AssertEqual(t, s.Variant, "popcorn")
		utils.AssertEqual(t, s.NumPlayers, 2)
		utils.AssertEqual(t, s.NumSets, 2)
		assert.Equal(t, []int{int(deck.Jack), int(deck.King)}, s.BookedRanks)
		assert.Len(t, s.Pile, 38)
		utils.AssertEqual(t, s.Pile[len(s.Pile)-1], "TS")
		assert.Equal(t, []string{"KH"}, s.Players[0].Sets)
	})

	t.Run("round trips through the codec", func(t *testing.T) {
		g, err := New(Opts{Players: 3, Seed: 7, Variant: Risky, Logger: &quiet})
		require.NoError(t, err)

		for i := 0; i < 5 && !g.IsGameOver(); i++ {
			asker := g.Player(g.CurrentTurn())
			target := (g.CurrentTurn() + 1) % g.NumPlayers()
			_, err := g.ResolveMove(target, asker.Hand[0].ID())
			require.NoError(t, err)
		}

		data, err := g.Snapshot().Encode()
		require.NoError(t, err)

		s, err := DecodeSnapshot(data)
		require.NoError(t, err)

		restored, err := Restore(s, Opts{Logger: &quiet})
		require.NoError(t, err)

		assert.Equal(t, g.Snapshot(), restored.Snapshot())
		utils.AssertEqual(t, restored.ID(), g.ID())
		utils.AssertEqual(t, restored.Variant(), Risky)
		assertValid(t, restored)
	})

	t.Run("refuses other versions", func(t *testing.T) {
		_, err := DecodeSnapshot([]byte(`{"version":2,"numPlayers":2}`))
		utils.AssertErrorIs(t, err, ErrSnapshotVersion)

		_, err = Restore(Snapshot{Version: 0}, Opts{Logger: &quiet})
		utils.AssertErrorIs(t, err, ErrSnapshotVersion)
	})

	t.Run("refuses garbage", func(t *testing.T) {
		_, err := DecodeSnapshot([]byte("not json"))
		utils.AssertErrorIs(t, err, ErrInvalidState)
	})

	t.Run("refuses a snapshot that breaks the card invariants", func(t *testing.T) {
		g := gameWithHands(t, Standard, []string{"2C"}, []string{"3C"}, []string{"4C"})
		s := g.Snapshot()
		s.Players[1].Hand = append(s.Players[1].Hand, "2C")

		_, err := Restore(s, Opts{Logger: &quiet})
		utils.AssertErrorIs(t, err, ErrInvalidState)

		s = g.Snapshot()
		s.Pile = append(s.Pile, "XX")
		_, err = Restore(s, Opts{Logger: &quiet})
		utils.AssertErrorIs(t, err, ErrInvalidState)
	})

	t.Run("refuses a snapshot with an unbooked set in a hand", func(t *testing.T) {
		g := gameWithHands(t, Standard, nil,
			[]string{"2C", "9C"},
			[]string{"2S", "2D", "2H"},
		)
		s := g.Snapshot()
		s.Players[0].Hand = []string{"9C"}
		s.Players[1].Hand = append(s.Players[1].Hand, "2C")

		_, err := Restore(s, Opts{Logger: &quiet})
		utils.AssertErrorIs(t, err, ErrInvalidState)
	})
}

func TestCheckpoints(t *testing.T) {
	t.Run("a move saves the game", func(t *testing.T) {
		store := newMemoryStore()
		g, err := New(Opts{
			Players:      2,
			Deck:         deck.New(),
			Store:        store,
			SnapshotName: "game.json",
			Logger:       &quiet,
		})
		require.NoError(t, err)
		utils.AssertEqual(t, store.saves, 0)

		_, err = g.ResolveMove(1, "QH")
		require.NoError(t, err)

		require.Contains(t, store.saved, "game.json")
		s, err := DecodeSnapshot(store.saved["game.json"])
		require.NoError(t, err)
		utils.AssertEqual(t, s.NumSets, 3)
	})

	t.Run("a failing store doesn't stop the game", func(t *testing.T) {
		store := newMemoryStore()
		store.err = errors.New("disk full")
		g, err := New(Opts{Players: 2, Deck: deck.New(), Store: store, Logger: &quiet})
		require.NoError(t, err)

		outcome, err := g.ResolveMove(1, "QH")
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, outcome, CardsAcquiredAndSetCompleted)
		utils.AssertEqual(t, store.saves, 0)

		t.Log("But an explicit save reports the failure")
		utils.AssertErrored(t, g.SaveSnapshot())
	})

	t.Run("saving without a store reports it", func(t *testing.T) {
		g := gameWithHands(t, Standard, nil, []string{"3C"}, []string{"4C"})
		utils.AssertErrorIs(t, g.SaveSnapshot(), ErrNoStore)
	})
}

func TestLoadSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("loads a saved game", func(t *testing.T) {
		store := newMemoryStore()
		g, err := New(Opts{Players: 4, Seed: 3, Store: store, Logger: &quiet})
		require.NoError(t, err)
		require.NoError(t, g.SaveSnapshot())

		notified := 0
		loaded := LoadSnapshot(ctx, store, DefaultSnapshotName, Opts{
			Logger:    &quiet,
			Observers: []Observer{func(*Game) { notified++ }},
		})
		require.NotNil(t, loaded)

		assert.Equal(t, g.Snapshot(), loaded.Snapshot())
		utils.AssertEqual(t, notified, 1)

		t.Log("And the loaded game keeps saving to the same place")
		saves := store.saves
		require.NoError(t, loaded.SaveSnapshot())
		utils.AssertEqual(t, store.saves, saves+1)
	})

	t.Run("nothing to load", func(t *testing.T) {
		loaded := LoadSnapshot(ctx, newMemoryStore(), "missing", Opts{Logger: &quiet})
		assert.Nil(t, loaded)
	})

	t.Run("unreadable snapshot", func(t *testing.T) {
		store := newMemoryStore()
		store.saved[DefaultSnapshotName] = []byte(`{"version":9}`)

		loaded := LoadSnapshot(ctx, store, "", Opts{Logger: &quiet})
		assert.Nil(t, loaded)
	})
}
