// Package mls has services for interacting with the Moonlight server backend
// decoupled from the API that accesses it.
package mls

import (
	"sync"

	"github.com/dekarrin/moonlight/internal/game"
	"github.com/dekarrin/moonlight/server/dao"
)

// PasswordCost is the bcrypt cost used to hash stored passwords.
const PasswordCost = 14

// Service hosts exactly one game and plays turns against it on behalf of
// logged-in accounts, recording each one to the transcript in DB.
//
// Turns are applied one at a time; a Service is safe for concurrent use.
// Create one with New.
type Service struct {
	DB dao.Store

	mtx  sync.Mutex
	game *game.State

	over bool

	// quitSeq is the sequence number of the turn that ended the game. It is
	// 0 if that turn could not be recorded.
	quitSeq int
}

// New creates a Service that hosts gs and records to db.
func New(db dao.Store, gs *game.State) *Service {
	return &Service{
		DB:   db,
		game: gs,
	}
}
