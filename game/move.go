package game

import (
	"fmt"

	"github.com/MatthewRicci12/gofish/deck"
)

// ResolveMove has the current player ask target for the rank of the card
// identified by cardID, which must be in the asker's hand.
// Once the move has been fully applied the game is saved and observers are
// notified.
func (g *Game) ResolveMove(target int, cardID string) (Outcome, error) {
	if g.IsGameOver() {
		return NoCardsAcquired, ErrGameOver
	}
	if target < 0 || target >= len(g.players) {
		return NoCardsAcquired, fmt.Errorf("%w: %d", ErrUnknownPlayer, target)
	}

	askerIdx := g.currentTurn
	asker := g.players[askerIdx]
	requested, ok := asker.find(cardID)
	if !ok {
		return NoCardsAcquired, fmt.Errorf("%w: %q is not in player %d's hand", ErrInvalidMove, cardID, askerIdx)
	}

	defer func() {
		g.checkpoint()
		g.notify()
	}()

	acquired := g.players[target].takeRank(requested.Rank)

	moveLog := g.log.With().
		Int("asker", askerIdx).
		Int("target", target).
		Str("rank", requested.Rank.String()).
		Logger()

	if len(acquired) == 0 {
		moveLog.Debug().Msg("go fish")
		g.miss(askerIdx, target, requested)
		return NoCardsAcquired, nil
	}

	moveLog.Debug().Int("cards", len(acquired)).Msg("cards acquired")

	asker.add(acquired...)
	outcome := CardsAcquired
	if g.checkForSets(askerIdx, requested.Rank) {
		outcome = CardsAcquiredAndSetCompleted
	}

	g.replenish(askerIdx, target)

	return outcome, nil
}

func (g *Game) miss(askerIdx, target int, requested deck.Card) {
	if g.rules.OnMiss(askerIdx, target) == SurrenderThenDraw {
		g.players[askerIdx].remove(requested)
		g.players[target].add(requested)
	}

	fish, ok := g.draw(askerIdx)
	if ok && fish.Rank == requested.Rank {
		// lucky fish: the asker goes again
		g.log.Debug().Int("asker", askerIdx).Str("card", fish.ID()).Msg("lucky fish")
		g.replenish(askerIdx, target)
		return
	}

	g.advance(target)
}

// replenish refills an empty hand from the pile. With nothing left to draw
// the turn moves on.
func (g *Game) replenish(askerIdx, target int) {
	for !g.players[askerIdx].HasCards() {
		if _, ok := g.draw(askerIdx); !ok {
			g.advance(target)
			return
		}
	}
}

// advance hands the turn to whoever the rules pick. A player with an empty
// hand draws a card, or is skipped when the pile is empty.
func (g *Game) advance(target int) {
	if g.IsGameOver() {
		g.log.Info().Int("winner", g.WinnerIndex()).Msg("game over")
		return
	}

	next := g.rules.OnAdvance(g.currentTurn, target, len(g.players))
	g.currentTurn = next

	if g.players[next].HasCards() {
		return
	}
	if _, ok := g.draw(next); ok {
		return
	}

	for i := 1; i < len(g.players); i++ {
		idx := (next + i) % len(g.players)
		if g.players[idx].HasCards() {
			g.currentTurn = idx
			return
		}
	}
}
