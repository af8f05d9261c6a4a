package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	uuid "github.com/satori/go.uuid"

	"github.com/MatthewRicci12/gofish/deck"
)

var (
	ErrTooFewPlayers   = errors.New("minimum of 2 players required")
	ErrTooManyPlayers  = errors.New("maximum of 4 players allowed")
	ErrInvalidMove     = errors.New("invalid move")
	ErrUnknownPlayer   = errors.New("unknown player")
	ErrGameOver        = errors.New("game is already over")
	ErrInvalidState    = errors.New("invalid game state")
	ErrInvalidVariant  = errors.New("invalid variant")
	ErrSnapshotVersion = errors.New("unsupported snapshot version")
	ErrNoStore         = errors.New("no snapshot store")
)

const (
	minPlayers = 2
	maxPlayers = 4

	// MaxSets is reached when every rank has been booked
	MaxSets    = deck.NumRanks
	cardsInSet = 4

	smallGameHandSize = 7
	largeGameHandSize = 5

	DefaultSnapshotName = "save.bin"
)

// Game is one game of Go Fish. It is not safe for concurrent use: one move
// is resolved at a time.
type Game struct {
	id          string
	players     []*Player
	currentTurn int
	numSets     int
	bookedRanks [deck.NumRanks + 1]bool
	pile        deck.Deck
	rules       Rules

	store        SnapshotStore
	snapshotName string

	log       zerolog.Logger
	observers *observers
}

// Opts configures a new game. Deck and Hands are for fixtures and tests:
// an injected Deck is used as is and never shuffled, and Hands skips the deal.
type Opts struct {
	ID        string
	Players   int
	Variant   Variant
	Deck      deck.Deck
	Hands     [][]deck.Card
	Seed      int64
	Observers []Observer

	Store        SnapshotStore
	SnapshotName string
	Logger       *zerolog.Logger
}

// NewID generates a game id
func NewID() string {
	return uuid.NewV4().String()
}

// New constructs a game and deals the cards
func New(opts Opts) (*Game, error) {
	numPlayers := opts.Players
	if numPlayers == 0 && opts.Hands != nil {
		numPlayers = len(opts.Hands)
	}
	if numPlayers < minPlayers {
		return nil, ErrTooFewPlayers
	}
	if numPlayers > maxPlayers {
		return nil, ErrTooManyPlayers
	}
	if opts.Hands != nil && len(opts.Hands) != numPlayers {
		return nil, fmt.Errorf("%w: %d hands for %d players", ErrInvalidState, len(opts.Hands), numPlayers)
	}

	rules, err := RulesFor(opts.Variant)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidVariant, err)
	}

	g := newGame(opts, rules)

	if opts.Deck != nil {
		g.pile = opts.Deck.Clone()
	} else {
		g.pile = deck.New()
		if opts.Seed == 0 {
			g.pile.Shuffle()
		} else {
			g.pile.ShuffleWith(rand.New(rand.NewSource(opts.Seed)))
		}
	}

	g.players = make([]*Player, numPlayers)
	if opts.Hands != nil {
		for i, hand := range opts.Hands {
			cards := make([]deck.Card, len(hand))
			copy(cards, hand)
			g.players[i] = NewPlayer(cards, nil)
			for _, r := range deck.Ranks() {
				g.checkForSets(i, r)
			}
		}
	} else {
		for i := range g.players {
			g.players[i] = NewPlayer(nil, nil)
		}
		g.deal()
	}

	g.log.Info().
		Int("players", numPlayers).
		Str("variant", rules.Variant().String()).
		Int("pile", len(g.pile)).
		Msg("game created")

	g.notify()

	return g, nil
}

func newGame(opts Opts, rules Rules) *Game {
	id := opts.ID
	if id == "" {
		id = NewID()
	}

	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	snapshotName := opts.SnapshotName
	if snapshotName == "" {
		snapshotName = DefaultSnapshotName
	}

	g := &Game{
		id:           id,
		rules:        rules,
		store:        opts.Store,
		snapshotName: snapshotName,
		log:          logger.With().Str("game", id).Logger(),
		observers:    &observers{},
	}

	for _, o := range opts.Observers {
		g.observers.add(o)
	}

	return g
}

// deal gives each seat in turn its full allotment from the top of the pile
func (g *Game) deal() {
	handSize := smallGameHandSize
	if len(g.players) >= maxPlayers {
		handSize = largeGameHandSize
	}

	for i := range g.players {
		for j := 0; j < handSize; j++ {
			if _, ok := g.draw(i); !ok {
				return
			}
		}
	}
}

// draw moves the top of the pile into player i's hand
func (g *Game) draw(i int) (deck.Card, bool) {
	c, ok := g.pile.Draw()
	if !ok {
		return deck.Card{}, false
	}
	g.players[i].add(c)
	g.checkForSets(i, c.Rank)
	return c, true
}

// checkForSets books rank r if player i holds all four cards of it
func (g *Game) checkForSets(i int, r deck.Rank) bool {
	p := g.players[i]
	matches := p.cardsOfRank(r)
	if len(matches) != cardsInSet {
		return false
	}

	p.takeRank(r)
	p.Sets = append(p.Sets, matches[0])
	g.numSets++
	g.bookedRanks[r] = true

	g.log.Debug().Int("player", i).Str("rank", r.String()).Msg("set completed")

	return true
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Variant() Variant {
	return g.rules.Variant()
}

// Players gives read access to every seat, in seat order
func (g *Game) Players() []*Player {
	return g.players
}

func (g *Game) NumPlayers() int {
	return len(g.players)
}

// Player returns seat i, or nil when i is out of range
func (g *Game) Player(i int) *Player {
	if i < 0 || i >= len(g.players) {
		return nil
	}
	return g.players[i]
}

func (g *Game) CurrentTurn() int {
	return g.currentTurn
}

func (g *Game) DrawPileSize() int {
	return len(g.pile)
}

// NumSets is the number of sets completed across all players
func (g *Game) NumSets() int {
	return g.numSets
}

// BookedRank reports whether a set of rank r has been completed
func (g *Game) BookedRank(r deck.Rank) bool {
	if !r.Valid() {
		return false
	}
	return g.bookedRanks[r]
}

// IsGameOver is true once every rank is booked, or once no cards are left
// anywhere
func (g *Game) IsGameOver() bool {
	if g.numSets >= MaxSets {
		return true
	}
	if len(g.pile) > 0 {
		return false
	}
	for _, p := range g.players {
		if p.HasCards() {
			return false
		}
	}
	return true
}

// WinnerIndex is -1 until the game is over. Then it is the player with the
// most sets, the lowest seat winning ties, or -1 if nobody completed a set.
func (g *Game) WinnerIndex() int {
	if !g.IsGameOver() {
		return -1
	}
	return g.Leader()
}

// Leader is the player currently holding the most sets, with the same tie
// breaking as WinnerIndex
func (g *Game) Leader() int {
	leader, most := -1, 0
	for i, p := range g.players {
		if p.NumSets() > most {
			leader, most = i, p.NumSets()
		}
	}
	return leader
}

// Validate checks that every card is in exactly one place, that no hand
// sits on a complete set and that the counters agree with the cards
func (g *Game) Validate() error {
	if len(g.players) < minPlayers || len(g.players) > maxPlayers {
		return fmt.Errorf("%w: %d players", ErrInvalidState, len(g.players))
	}
	if g.currentTurn < 0 || g.currentTurn >= len(g.players) {
		return fmt.Errorf("%w: current turn %d out of range", ErrInvalidState, g.currentTurn)
	}

	seen := map[deck.Card]string{}
	visit := func(c deck.Card, where string) error {
		if !c.Rank.Valid() || !c.Suit.Valid() {
			return fmt.Errorf("%w: bad card %+v in %s", ErrInvalidState, c, where)
		}
		if prev, ok := seen[c]; ok {
			return fmt.Errorf("%w: %s is in %s and %s", ErrInvalidState, c.ID(), prev, where)
		}
		seen[c] = where
		return nil
	}

	for _, c := range g.pile {
		if err := visit(c, "the pile"); err != nil {
			return err
		}
	}

	booked := map[deck.Rank]bool{}
	totalSets := 0
	for i, p := range g.players {
		where := fmt.Sprintf("player %d's hand", i)
		held := map[deck.Rank]int{}
		for _, c := range p.Hand {
			if err := visit(c, where); err != nil {
				return err
			}
			held[c.Rank]++
			if held[c.Rank] == cardsInSet {
				return fmt.Errorf("%w: %s holds an unbooked set of %s", ErrInvalidState, where, c.Rank)
			}
		}
		for _, c := range p.Sets {
			if booked[c.Rank] {
				return fmt.Errorf("%w: rank %s booked twice", ErrInvalidState, c.Rank)
			}
			booked[c.Rank] = true
			totalSets++
		}
	}

	for c, where := range seen {
		if booked[c.Rank] {
			return fmt.Errorf("%w: %s is in %s but its rank is booked", ErrInvalidState, c.ID(), where)
		}
	}

	for _, r := range deck.Ranks() {
		if booked[r] != g.bookedRanks[r] {
			return fmt.Errorf("%w: booked table disagrees on %s", ErrInvalidState, r)
		}
	}
	if totalSets != g.numSets {
		return fmt.Errorf("%w: %d sets recorded, %d held", ErrInvalidState, g.numSets, totalSets)
	}

	return nil
}
