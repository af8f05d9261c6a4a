package game

// Outcome is the result of the acquisition step of a move
type Outcome int

const (
	NoCardsAcquired Outcome = iota
	CardsAcquired
	CardsAcquiredAndSetCompleted
)

var outcomeNames = map[Outcome]string{
	NoCardsAcquired:              "no cards acquired",
	CardsAcquired:                "cards acquired",
	CardsAcquiredAndSetCompleted: "cards acquired and set completed",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown outcome"
}

// MissAction is what the asker does when the target has no card of the
// requested rank
type MissAction int

const (
	DrawOnly MissAction = iota
	SurrenderThenDraw
)
