package protocol

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingArgs    = errors.New("missing arguments")
	ErrBadArgs        = errors.New("bad arguments")
)

// Cmd represents a command typed at the terminal
type Cmd int

const (
	Ask Cmd = iota
	Hand
	Status
	Save
	Load
	NewGame
	Help
	Quit
)

var cmdNames = []string{
	"ask",
	"hand",
	"status",
	"save",
	"load",
	"new",
	"help",
	"quit",
}

// single letter shortcuts
var cmdAliases = map[string]Cmd{
	"a":    Ask,
	"h":    Hand,
	"s":    Status,
	"q":    Quit,
	"exit": Quit,
	"?":    Help,
}

func (c Cmd) String() string {
	if c < 0 || int(c) >= len(cmdNames) {
		return "unknown"
	}
	return cmdNames[c]
}

// Usage describes each command for the help text
var Usage = map[Cmd]string{
	Ask:     "ask <seat> <card>   ask the player in <seat> for the rank of <card>, e.g. ask 2 QH",
	Hand:    "hand                show your hand",
	Status:  "status              show the table",
	Save:    "save                save the game",
	Load:    "load                load the saved game",
	NewGame: "new [players] [variant]   start again",
	Help:    "help                show this help",
	Quit:    "quit                leave",
}

// Command is one parsed line of input. Seats are numbered from 1.
type Command struct {
	Cmd     Cmd
	Seat    int
	CardID  string
	Players int
	Variant string
}

// ParseCmd looks up a command by name or shortcut
func ParseCmd(name string) (Cmd, error) {
	name = strings.ToLower(name)
	for i, n := range cmdNames {
		if n == name {
			return Cmd(i), nil
		}
	}
	if c, ok := cmdAliases[name]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// Parse turns a line of input into a Command
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrMissingArgs
	}

	cmd, err := ParseCmd(fields[0])
	if err != nil {
		return Command{}, err
	}
	args := fields[1:]

	switch cmd {
	case Ask:
		if len(args) < 2 {
			return Command{}, fmt.Errorf("%w: %s", ErrMissingArgs, Usage[Ask])
		}
		seat, err := strconv.Atoi(args[0])
		if err != nil || seat < 1 {
			return Command{}, fmt.Errorf("%w: %q is not a seat", ErrBadArgs, args[0])
		}
		return Command{Cmd: Ask, Seat: seat, CardID: strings.ToUpper(args[1])}, nil

	case NewGame:
		c := Command{Cmd: NewGame}
		if len(args) > 0 {
			players, err := strconv.Atoi(args[0])
			if err != nil {
				return Command{}, fmt.Errorf("%w: %q is not a number of players", ErrBadArgs, args[0])
			}
			c.Players = players
		}
		if len(args) > 1 {
			c.Variant = strings.ToLower(args[1])
		}
		return c, nil
	}

	return Command{Cmd: cmd}, nil
}
