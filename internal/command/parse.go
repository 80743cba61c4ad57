package command

import (
	"github.com/dekarrin/moonlight/internal/mlerrors"
)

// operandNames is what the single operand of each one-operand command is
// called in error output.
var operandNames = map[Kind]string{
	Move:   "direction",
	Get:    "item",
	Drop:   "item",
	Look:   "target",
	Status: "topic",
}

// Parse builds a Command from the given tokens. Each command has a fixed
// positional grammar, and if the tokens do not satisfy the grammar for the
// leading keyword, a *mlerrors.CommandError is returned.
func Parse(tokens []Token) (Command, error) {
	if len(tokens) < 1 {
		return Command{}, mlerrors.Command("no command entered")
	}

	first := tokens[0]
	if first.Kind != Keyword {
		return Command{}, mlerrors.Command("invalid command")
	}

	cmd := Command{Kind: first.Command}

	switch first.Command {
	case Move, Get, Drop, Look, Status:
		if !hasVariableAt(tokens, 1) {
			return Command{}, mlerrors.Commandf("no %s specified", operandNames[first.Command])
		}
		cmd.Operands = []string{tokens[1].Text}
	case Help:
		// operand is optional; anything that isn't a variable is general help
		if hasVariableAt(tokens, 1) {
			cmd.Operands = []string{tokens[1].Text}
		}
	case Use, Combine:
		if len(tokens) != 4 || !hasVariableAt(tokens, 1) || tokens[2].Kind != Preposition || !hasVariableAt(tokens, 3) {
			if first.Command == Use {
				return Command{}, mlerrors.Command("no equipment or target specified")
			}
			return Command{}, mlerrors.Command("no two items specified")
		}
		cmd.Operands = []string{tokens[1].Text, tokens[3].Text}
	case Quit:
		// takes nothing
	default:
		return Command{}, mlerrors.Command("invalid command")
	}

	return cmd, nil
}

// ParseLine tokenizes and then parses a line of input.
func ParseLine(line string) (Command, error) {
	return Parse(Tokenize(line))
}

func hasVariableAt(tokens []Token, idx int) bool {
	return idx < len(tokens) && tokens[idx].Kind == Variable
}
