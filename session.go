package gofish

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MatthewRicci12/gofish/game"
	"github.com/MatthewRicci12/gofish/protocol"
)

// Conn is the terminal a session plays on
type Conn struct {
	In  io.Reader
	Out io.Writer
}

// Session plays hot-seat games on one terminal. It only forwards what is
// typed to the game and redraws the table whenever the game changes.
type Session struct {
	// Resume makes Run start from the saved game when there is one
	Resume bool

	conn     Conn
	game     *game.Game
	gameOpts game.Opts
	log      zerolog.Logger
}

// NewSession prepares a session. opts is the template for every game it
// starts or loads.
func NewSession(conn Conn, opts game.Opts) *Session {
	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Session{
		conn:     conn,
		gameOpts: opts,
		log:      logger,
	}
}

// Game is the game being played, nil before one is started or loaded
func (s *Session) Game() *game.Game {
	return s.game
}

// NewGame deals a fresh game. Zero values fall back to the session's
// template.
func (s *Session) NewGame(players int, variant *game.Variant) error {
	opts := s.gameOpts
	opts.ID = ""
	if players != 0 {
		opts.Players = players
	}
	if variant != nil {
		opts.Variant = *variant
	}
	opts.Observers = append([]game.Observer{s.render}, s.gameOpts.Observers...)

	g, err := game.New(opts)
	if err != nil {
		return err
	}

	s.game = g
	s.log.Info().Str("game", g.ID()).Msg("new game")

	return nil
}

// Load replaces the current game with the saved one. It reports whether
// there was a game to load.
func (s *Session) Load(ctx context.Context) bool {
	if s.gameOpts.Store == nil {
		return false
	}

	opts := s.gameOpts
	opts.Observers = append([]game.Observer{s.render}, s.gameOpts.Observers...)

	g := game.LoadSnapshot(ctx, s.gameOpts.Store, s.gameOpts.SnapshotName, opts)
	if g == nil {
		return false
	}

	s.game = g
	return true
}

func (s *Session) render(g *game.Game) {
	SendText(s.conn.Out, "%s", buildTableText(buildView(g)))
}

// Run reads commands until quit, end of input or ctx is done. Without a
// game to play it starts one first.
func (s *Session) Run(ctx context.Context) error {
	SendText(s.conn.Out, welcomeText)
	if s.game == nil {
		if s.Resume && s.Load(ctx) {
			SendText(s.conn.Out, loadedText)
		} else if err := s.NewGame(0, nil); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(s.conn.In)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		cmd, err := protocol.Parse(line)
		if errors.Is(err, protocol.ErrUnknownCommand) {
			SendText(s.conn.Out, unknownCommandText, strings.Fields(line)[0])
			continue
		}
		if err != nil {
			s.sendError(err)
			continue
		}

		if cmd.Cmd == protocol.Quit {
			SendText(s.conn.Out, goodbyeText)
			return nil
		}

		s.handle(ctx, cmd)
	}

	return scanner.Err()
}

func (s *Session) handle(ctx context.Context, cmd protocol.Command) {
	switch cmd.Cmd {
	case protocol.Ask:
		s.ask(cmd)

	case protocol.Hand:
		if s.game != nil {
			SendText(s.conn.Out, "%s", buildHandText(buildView(s.game)))
		}

	case protocol.Status:
		if s.game != nil {
			s.render(s.game)
		}

	case protocol.Save:
		if s.game != nil {
			if err := s.game.SaveSnapshot(); err != nil {
				SendText(s.conn.Out, notSavedText, err)
			} else {
				SendText(s.conn.Out, savedText)
			}
		}

	case protocol.Load:
		if s.Load(ctx) {
			SendText(s.conn.Out, loadedText)
		} else {
			SendText(s.conn.Out, nothingToLoadText)
		}

	case protocol.NewGame:
		var variant *game.Variant
		if cmd.Variant != "" {
			v, err := game.ParseVariant(cmd.Variant)
			if err != nil {
				s.sendError(err)
				return
			}
			variant = &v
		}
		if err := s.NewGame(cmd.Players, variant); err != nil {
			s.sendError(err)
		}

	case protocol.Help:
		SendText(s.conn.Out, "%s", buildHelpText())
	}
}

func (s *Session) ask(cmd protocol.Command) {
	if s.game == nil {
		return
	}

	target := cmd.Seat - 1
	if target == s.game.CurrentTurn() {
		SendText(s.conn.Out, askYourselfText)
		return
	}

	outcome, err := s.game.ResolveMove(target, cmd.CardID)
	switch {
	case errors.Is(err, game.ErrUnknownPlayer):
		SendText(s.conn.Out, noSuchSeatText, cmd.Seat, s.game.NumPlayers())
		return
	case errors.Is(err, game.ErrInvalidMove):
		SendText(s.conn.Out, notInHandText, cmd.CardID)
		return
	case errors.Is(err, game.ErrGameOver):
		SendText(s.conn.Out, gameIsOverText)
		return
	case err != nil:
		s.sendError(err)
		return
	}

	switch outcome {
	case game.CardsAcquiredAndSetCompleted:
		SendText(s.conn.Out, setCompletedText)
	case game.CardsAcquired:
		SendText(s.conn.Out, cardsAcquiredText)
	default:
		SendText(s.conn.Out, goFishText)
	}
}

func (s *Session) sendError(err error) {
	s.log.Debug().Err(err).Msg("command rejected")
	SendText(s.conn.Out, "%s\n", err.Error())
}
