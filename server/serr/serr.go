// Package serr holds the errors returned by the Moonlight server backend.
// Callers check them with errors.Is against the sentinel values below.
package serr

import (
	"errors"
	"fmt"
)

var (
	ErrBadCredentials = errors.New("the supplied username/password combination is incorrect")
	ErrPermissions    = errors.New("you don't have permission to do that")
	ErrNotFound       = errors.New("the requested entity could not be found")
	ErrAlreadyExists  = errors.New("an entity with the same identifying information already exists")
	ErrDB             = errors.New("an error occurred with the DB")
	ErrBadArgument    = errors.New("one or more of the arguments is invalid")
	ErrBodyUnmarshal  = errors.New("malformed data in request")
	ErrGameOver       = errors.New("the game has already ended")
)

// Error is a message along with the errors that caused it. Since Unwrap
// returns every cause, errors.Is and errors.As match any of them.
type Error struct {
	Msg    string
	Causes []error
}

// Error gives Msg followed by the message of the first cause.
func (e *Error) Error() string {
	switch {
	case len(e.Causes) == 0:
		return e.Msg
	case e.Msg == "":
		return e.Causes[0].Error()
	default:
		return e.Msg + ": " + e.Causes[0].Error()
	}
}

func (e *Error) Unwrap() []error {
	return e.Causes
}

// New returns an *Error with the given message and causes.
func New(msg string, causes ...error) error {
	return &Error{Msg: msg, Causes: append([]error(nil), causes...)}
}

// WrapDB returns an error caused by both err and ErrDB.
func WrapDB(msg string, err error) error {
	return New(msg, err, ErrDB)
}

// GameOver returns an error matching ErrGameOver that names the turn which
// ended the game. A quitSeq below 1 gives ErrGameOver itself.
func GameOver(quitSeq int) error {
	if quitSeq < 1 {
		return ErrGameOver
	}
	return New(fmt.Sprintf("turn %d quit the game", quitSeq), ErrGameOver)
}

// BlankInput returns an error matching ErrBadArgument for a turn with no
// command in it.
func BlankInput() error {
	return New("input cannot be blank", ErrBadArgument)
}
