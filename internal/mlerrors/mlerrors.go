// Package mlerrors contains error types that carry a message meant to be shown
// to the player in addition to the usual technical error message.
package mlerrors

import (
	"errors"
	"fmt"
)

// playerError is an error that has both a technical message and a message
// that is suitable for display in-game.
type playerError struct {
	msg   string
	human string
}

func (e *playerError) Error() string {
	return e.msg
}

// GameMessage shows the message that should be displayed in-game to describe
// the error.
func (e *playerError) GameMessage() string {
	return e.human
}

// CommandError is returned when a line of input does not form a valid command.
// It is a parse-time failure; no world state is touched when one is produced.
type CommandError struct {
	playerError
}

// Is returns whether target is also a CommandError with the same in-game
// message.
func (e *CommandError) Is(target error) bool {
	other, ok := target.(*CommandError)
	if !ok {
		return false
	}
	return other.human == e.human
}

// Command returns a new CommandError with the given in-game message.
func Command(game string) error {
	return &CommandError{
		playerError: playerError{
			msg:   fmt.Sprintf("command error: %s", game),
			human: game,
		},
	}
}

// Commandf returns a new CommandError whose in-game message is built from the
// given format string and arguments.
func Commandf(gameFormat string, a ...interface{}) error {
	return Command(fmt.Sprintf(gameFormat, a...))
}

// IsCommandError returns whether err is or wraps a CommandError.
func IsCommandError(err error) bool {
	var cmdErr *CommandError
	return errors.As(err, &cmdErr)
}

// GameMessage gets the message to display to the console for the given error.
// If err is or wraps a CommandError, its in-game message is returned.
// Otherwise, err.Error() is returned.
func GameMessage(err error) string {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.GameMessage()
	}
	return err.Error()
}
