package game

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"github.com/MatthewRicci12/gofish/deck"
)

// SnapshotVersion is written into every snapshot. Snapshots carrying any
// other version are refused.
const SnapshotVersion = 1

// SnapshotStore persists encoded snapshots under a name
type SnapshotStore interface {
	Save(ctx context.Context, name string, data []byte) error
	Load(ctx context.Context, name string) ([]byte, error)
}

// Snapshot is the whole state of a game, enough to carry on playing it.
// Cards are stored as ids, the pile from bottom to top.
type Snapshot struct {
	Version     int              `json:"version"`
	GameID      string           `json:"gameID"`
	Variant     string           `json:"variant"`
	NumPlayers  int              `json:"numPlayers"`
	CurrentTurn int              `json:"currentTurn"`
	NumSets     int              `json:"numSets"`
	BookedRanks []int            `json:"bookedRanks"`
	Pile        []string         `json:"pile"`
	Players     []PlayerSnapshot `json:"players"`
}

type PlayerSnapshot struct {
	Hand []string `json:"hand"`
	Sets []string `json:"sets"`
}

// Snapshot captures the current state
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Version:     SnapshotVersion,
		GameID:      g.id,
		Variant:     g.rules.Variant().String(),
		NumPlayers:  len(g.players),
		CurrentTurn: g.currentTurn,
		NumSets:     g.numSets,
		BookedRanks: []int{},
		Pile:        deck.IDs(g.pile),
		Players:     make([]PlayerSnapshot, 0, len(g.players)),
	}

	for _, r := range deck.Ranks() {
		if g.bookedRanks[r] {
			s.BookedRanks = append(s.BookedRanks, int(r))
		}
	}

	for _, p := range g.players {
		s.Players = append(s.Players, PlayerSnapshot{
			Hand: deck.IDs(p.Hand),
			Sets: deck.IDs(p.Sets),
		})
	}

	return s
}

func (s Snapshot) Encode() ([]byte, error) {
	return json.Marshal(s)
}

// DecodeSnapshot parses data written by Snapshot.Encode
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrInvalidState, err)
	}
	if s.Version != SnapshotVersion {
		return Snapshot{}, fmt.Errorf("%w: %d", ErrSnapshotVersion, s.Version)
	}
	return s, nil
}

// Restore rebuilds a game from s. Only the store, logger, snapshot name and
// observers are taken from opts.
func Restore(s Snapshot, opts Opts) (*Game, error) {
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrSnapshotVersion, s.Version)
	}

	variant, err := ParseVariant(s.Variant)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidVariant, err)
	}
	rules, err := RulesFor(variant)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidVariant, err)
	}

	if s.NumPlayers != len(s.Players) {
		return nil, fmt.Errorf("%w: %d players recorded, %d present", ErrInvalidState, s.NumPlayers, len(s.Players))
	}

	opts.ID = s.GameID
	g := newGame(opts, rules)
	g.currentTurn = s.CurrentTurn
	g.numSets = s.NumSets

	for _, r := range s.BookedRanks {
		rank := deck.Rank(r)
		if !rank.Valid() {
			return nil, fmt.Errorf("%w: booked rank %d", ErrInvalidState, r)
		}
		g.bookedRanks[rank] = true
	}

	if g.pile, err = parseCards(s.Pile); err != nil {
		return nil, err
	}

	for _, ps := range s.Players {
		hand, err := parseCards(ps.Hand)
		if err != nil {
			return nil, err
		}
		sets, err := parseCards(ps.Sets)
		if err != nil {
			return nil, err
		}
		g.players = append(g.players, NewPlayer(hand, sets))
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}

	g.log.Info().Int("pile", len(g.pile)).Int("sets", g.numSets).Msg("game restored")
	g.notify()

	return g, nil
}

func parseCards(ids []string) ([]deck.Card, error) {
	cards := make([]deck.Card, 0, len(ids))
	for _, id := range ids {
		c, err := deck.ParseID(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidState, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// SaveSnapshot writes the game to its store. The error is logged as well,
// so callers that only care about the game carrying on can drop it.
func (g *Game) SaveSnapshot() error {
	if g.store == nil {
		g.log.Warn().Msg("no snapshot store, not saving")
		return ErrNoStore
	}

	data, err := g.Snapshot().Encode()
	if err != nil {
		g.log.Error().Err(err).Msg("could not encode snapshot")
		return err
	}

	if err := g.store.Save(context.Background(), g.snapshotName, data); err != nil {
		g.log.Error().Err(err).Str("snapshot", g.snapshotName).Msg("could not save snapshot")
		return err
	}

	g.log.Debug().Str("snapshot", g.snapshotName).Msg("snapshot saved")
	return nil
}

func (g *Game) checkpoint() {
	if g.store == nil {
		return
	}
	_ = g.SaveSnapshot()
}

// LoadSnapshot reads and restores the named snapshot. It returns nil when
// there is nothing usable to load.
func LoadSnapshot(ctx context.Context, store SnapshotStore, name string, opts Opts) *Game {
	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	if name == "" {
		name = DefaultSnapshotName
	}

	data, err := store.Load(ctx, name)
	if err != nil {
		logger.Warn().Err(err).Str("snapshot", name).Msg("could not load snapshot")
		return nil
	}

	s, err := DecodeSnapshot(data)
	if err != nil {
		logger.Warn().Err(err).Str("snapshot", name).Msg("could not decode snapshot")
		return nil
	}

	if opts.Store == nil {
		opts.Store = store
	}
	opts.SnapshotName = name

	g, err := Restore(s, opts)
	if err != nil {
		logger.Warn().Err(err).Str("snapshot", name).Msg("could not restore snapshot")
		return nil
	}

	return g
}
