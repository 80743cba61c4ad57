// Package command defines game command data types and handles tokenizing and
// parsing of commands from lines of player input.
package command

import (
	"fmt"
	"strings"
)

// Kind is the kind of a Command. Each Kind is handled by exactly one executor
// in the game.
type Kind int

const (
	KindNone Kind = iota
	Move
	Get
	Drop
	Look
	Status
	Help
	Use
	Combine
	Quit
)

// keywords maps the upper-case keyword for each command to its Kind.
var keywords = map[string]Kind{
	"MOVE":    Move,
	"GET":     Get,
	"DROP":    Drop,
	"LOOK":    Look,
	"STATUS":  Status,
	"HELP":    Help,
	"USE":     Use,
	"COMBINE": Combine,
	"QUIT":    Quit,
}

// String returns the keyword that invokes the Kind.
func (k Kind) String() string {
	switch k {
	case Move:
		return "MOVE"
	case Get:
		return "GET"
	case Drop:
		return "DROP"
	case Look:
		return "LOOK"
	case Status:
		return "STATUS"
	case Help:
		return "HELP"
	case Use:
		return "USE"
	case Combine:
		return "COMBINE"
	case Quit:
		return "QUIT"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Command is a valid command received from a game input source.
type Command struct {
	// Kind is what the command does.
	Kind Kind

	// Operands are the arguments to the command in the order they were typed.
	// MOVE, GET, DROP, LOOK, and STATUS have exactly one; USE and COMBINE have
	// exactly two; HELP has zero or one; QUIT has none.
	Operands []string
}

// Operand returns the operand at index i, or the empty string if there is no
// operand at that index.
func (c Command) Operand(i int) string {
	if i < 0 || i >= len(c.Operands) {
		return ""
	}
	return c.Operands[i]
}

func (c Command) String() string {
	if len(c.Operands) < 1 {
		return c.Kind.String()
	}
	return c.Kind.String() + " " + strings.Join(c.Operands, " ")
}

// Reader is a type that can be used for getting lines of command input.
type Reader interface {
	// ReadCommand reads a single line of user input. It will block until one
	// is ready. If there is an error or input is at end (EOF), the returned
	// string will be empty.
	//
	// When error is io.EOF, string will always be empty. If EOF was encountered
	// on a call but some input was received, the input will be returned and
	// error will be nil, and the next call to ReadCommand will return "",
	// io.EOF.
	ReadCommand() (string, error)

	// Close performs any operations required to clean the resources created by
	// the Reader. It should be called at least once when the Reader is no
	// longer needed.
	Close() error
}

// IsQuit returns whether the raw line of input is a request to end the
// session. This is checked on the line itself, independent of whether it
// parses.
func IsQuit(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), "quit")
}
