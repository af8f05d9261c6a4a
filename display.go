package gofish

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MatthewRicci12/gofish/deck"
	"github.com/MatthewRicci12/gofish/game"
	"github.com/MatthewRicci12/gofish/protocol"
)

const (
	welcomeText        = "Let's play Go Fish! Type \"help\" to see what you can do.\n"
	goFishText         = "Go fish! 🐟\n"
	cardsAcquiredText  = "Got them!\n"
	setCompletedText   = "Got them, and completed a set! 🎉\n"
	askYourselfText    = "You can't ask yourself. Pick another seat.\n"
	noSuchSeatText     = "There is no seat %d. Pick a seat from 1 to %d.\n"
	notInHandText      = "You don't have %s. You can only ask for a rank you hold.\n"
	gameIsOverText     = "The game is over. Type \"new\" to play again.\n"
	savedText          = "Game saved.\n"
	notSavedText       = "Couldn't save the game: %v\n"
	loadedText         = "Game loaded.\n"
	nothingToLoadText  = "No saved game to load.\n"
	unknownCommandText = "Sorry, I don't know %q. Type \"help\" to see what you can do.\n"
	goodbyeText        = "Bye!\n"
)

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// buildView shows the table from the seat whose turn it is
func buildView(g *game.Game) protocol.View {
	current := g.CurrentTurn()
	p := g.Player(current)

	view := protocol.View{
		GameID:    g.ID(),
		Variant:   g.Variant().String(),
		Seat:      current + 1,
		Hand:      sortedIDs(p.Hand),
		Sets:      deck.IDs(p.Sets),
		DeckCount: g.DrawPileSize(),
		Opponents: []protocol.Opponent{},
		GameOver:  g.IsGameOver(),
	}

	for i, o := range g.Players() {
		if i == current {
			continue
		}
		view.Opponents = append(view.Opponents, protocol.Opponent{
			Seat:     i + 1,
			HandSize: len(o.Hand),
			Sets:     deck.IDs(o.Sets),
		})
	}

	if view.GameOver {
		if w := g.WinnerIndex(); w >= 0 {
			view.Winner = w + 1
		}
	}

	return view
}

func sortedIDs(cards []deck.Card) []string {
	sorted := make([]deck.Card, len(cards))
	copy(sorted, cards)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Rank != sorted[j].Rank {
			return sorted[i].Rank < sorted[j].Rank
		}
		return sorted[i].Suit < sorted[j].Suit
	})
	return deck.IDs(sorted)
}

func listOrNone(ids []string) string {
	if len(ids) == 0 {
		return "none"
	}
	return strings.Join(ids, " ")
}

func buildTableText(view protocol.View) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s game, %d cards left to draw\n", view.Variant, view.DeckCount)
	for _, o := range view.Opponents {
		fmt.Fprintf(&b, "  Player %d: %d cards, sets: %s\n", o.Seat, o.HandSize, listOrNone(o.Sets))
	}

	if view.GameOver {
		fmt.Fprintf(&b, "  Player %d: %d cards, sets: %s\n", view.Seat, len(view.Hand), listOrNone(view.Sets))
		b.WriteString(buildGameOverText(view))
		return b.String()
	}

	fmt.Fprintf(&b, "Player %d, it's your turn.\n", view.Seat)
	b.WriteString(buildHandText(view))

	return b.String()
}

func buildHandText(view protocol.View) string {
	return fmt.Sprintf("  Your hand: %s\n  Your sets: %s\n", listOrNone(view.Hand), listOrNone(view.Sets))
}

func buildGameOverText(view protocol.View) string {
	if view.Winner == 0 {
		return "Game over! Nobody completed a set.\n"
	}
	return fmt.Sprintf("Game over! Player %d wins 🏆\n", view.Winner)
}

func buildHelpText() string {
	var b strings.Builder
	b.WriteString("Commands:\n")
	for c := protocol.Ask; c <= protocol.Quit; c++ {
		b.WriteString("  " + protocol.Usage[c] + "\n")
	}
	return b.String()
}
