package game

import (
	"fmt"
	"strings"
)

// Variant selects the rule set a game is played with
type Variant int

const (
	Standard Variant = iota
	Risky
	Popcorn
)

var variantNames = map[Variant]string{
	Standard: "standard",
	Risky:    "risky",
	Popcorn:  "popcorn",
}

// names used by older save files and menus
var variantAliases = map[string]Variant{
	"basic":     Standard,
	"variant_1": Risky,
	"variant_2": Popcorn,
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// Valid reports whether v is one of the known variants
func (v Variant) Valid() bool {
	_, ok := variantNames[v]
	return ok
}

// ParseVariant is the inverse of Variant.String. It is case insensitive.
func ParseVariant(s string) (Variant, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for v, name := range variantNames {
		if name == s {
			return v, nil
		}
	}
	if v, ok := variantAliases[s]; ok {
		return v, nil
	}
	return Standard, fmt.Errorf("unknown variant %q", s)
}

// Rules is the policy hook a variant plugs into the engine.
// OnMiss is consulted when the target holds nothing of the requested rank.
// OnAdvance returns the index of the next player to act.
type Rules interface {
	Variant() Variant
	OnMiss(asker, target int) MissAction
	OnAdvance(current, target, numPlayers int) int
}

// RulesFor returns the policy for v
func RulesFor(v Variant) (Rules, error) {
	switch v {
	case Standard:
		return standardRules{}, nil
	case Risky:
		return riskyRules{}, nil
	case Popcorn:
		return popcornRules{}, nil
	}
	return nil, fmt.Errorf("unknown variant %d", int(v))
}

type standardRules struct{}

func (standardRules) Variant() Variant { return Standard }

func (standardRules) OnMiss(asker, target int) MissAction { return DrawOnly }

func (standardRules) OnAdvance(current, target, numPlayers int) int {
	return (current + 1) % numPlayers
}

// riskyRules makes the asker hand over the card they asked with before
// going fishing
type riskyRules struct {
	standardRules
}

func (riskyRules) Variant() Variant { return Risky }

func (riskyRules) OnMiss(asker, target int) MissAction { return SurrenderThenDraw }

// popcornRules passes the turn to whoever was asked
type popcornRules struct {
	standardRules
}

func (popcornRules) Variant() Variant { return Popcorn }

func (popcornRules) OnAdvance(current, target, numPlayers int) int { return target }
