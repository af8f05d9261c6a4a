package game

import "github.com/MatthewRicci12/gofish/deck"

// Player holds one seat's cards. Sets keeps one representative card per
// completed four of a kind.
type Player struct {
	Hand []deck.Card
	Sets []deck.Card
}

func NewPlayer(hand, sets []deck.Card) *Player {
	if hand == nil {
		hand = []deck.Card{}
	}
	if sets == nil {
		sets = []deck.Card{}
	}

	return &Player{
		Hand: hand,
		Sets: sets,
	}
}

// HasCards reports whether the player can still ask for something
func (p *Player) HasCards() bool {
	return len(p.Hand) > 0
}

func (p *Player) NumSets() int {
	return len(p.Sets)
}

// find looks a card up in the hand by its id
func (p *Player) find(id string) (deck.Card, bool) {
	for _, c := range p.Hand {
		if c.ID() == id {
			return c, true
		}
	}
	return deck.Card{}, false
}

func (p *Player) cardsOfRank(r deck.Rank) []deck.Card {
	matches := []deck.Card{}
	for _, c := range p.Hand {
		if c.Rank == r {
			matches = append(matches, c)
		}
	}
	return matches
}

// takeRank removes and returns every card of rank r
func (p *Player) takeRank(r deck.Rank) []deck.Card {
	taken := []deck.Card{}
	kept := p.Hand[:0]
	for _, c := range p.Hand {
		if c.Rank == r {
			taken = append(taken, c)
			continue
		}
		kept = append(kept, c)
	}
	p.Hand = kept
	return taken
}

func (p *Player) remove(card deck.Card) bool {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Player) add(cards ...deck.Card) {
	p.Hand = append(p.Hand, cards...)
}

func (p *Player) clone() *Player {
	hand := make([]deck.Card, len(p.Hand))
	copy(hand, p.Hand)
	sets := make([]deck.Card, len(p.Sets))
	copy(sets, p.Sets)
	return NewPlayer(hand, sets)
}
