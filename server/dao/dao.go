// Package dao provides data access objects for use in the Moonlight server.
package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Store holds all the repositories. Closing it closes every repository.
type Store interface {
	Accounts() AccountRepository
	Turns() TurnRepository
	Close() error
}

// AccountRepository holds the accounts that may log in to play.
type AccountRepository interface {

	// Create adds a new Account. ID and Created are assigned by the
	// repository; everything else is taken from acct. Returns
	// ErrConstraintViolation if the name is taken.
	Create(ctx context.Context, acct Account) (Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (Account, error)
	GetByName(ctx context.Context, name string) (Account, error)

	// Touch records the login and logout times of an account. Nothing else
	// about an account changes once it is created.
	Touch(ctx context.Context, id uuid.UUID, lastLogin, lastLogout time.Time) (Account, error)
}

// TurnRepository holds the transcript of the hosted game. Turns are never
// modified once created.
type TurnRepository interface {

	// Create appends a new Turn to the transcript. The ID, Sequence, and
	// Created fields are assigned by the repository.
	Create(ctx context.Context, turn Turn) (Turn, error)

	// GetAll returns every Turn in the order they were played.
	GetAll(ctx context.Context) ([]Turn, error)
	GetByID(ctx context.Context, id uuid.UUID) (Turn, error)
}

// Role is what an account is allowed to do. Players play turns; the operator
// can additionally end other accounts' logins.
type Role int

const (
	Player Role = iota
	Operator
)

func (r Role) String() string {
	switch r {
	case Player:
		return "player"
	case Operator:
		return "operator"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Account is a login to the server.
type Account struct {
	ID   uuid.UUID
	Name string

	// PassHash is the base64-encoded bcrypt hash of the password.
	PassHash string

	Role       Role
	Created    time.Time
	LastLogin  time.Time
	LastLogout time.Time
}

// Turn is one line of input played against the hosted game along with what
// the game said back and where the player was left afterward.
type Turn struct {
	ID       uuid.UUID
	Sequence int
	UserID   uuid.UUID
	Input    string
	Output   string
	Score    int
	RoomID   string
	Quit     bool
	Created  time.Time
}
