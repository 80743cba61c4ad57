// Package inmem provides a dao.Store that keeps everything in memory. Nothing
// survives a restart.
package inmem

import "github.com/dekarrin/moonlight/server/dao"

type store struct {
	accounts *AccountsRepository
	turns    *TurnsRepository
}

func NewDatastore() dao.Store {
	return &store{
		accounts: NewAccountsRepository(),
		turns:    NewTurnsRepository(),
	}
}

func (s *store) Accounts() dao.AccountRepository {
	return s.accounts
}

func (s *store) Turns() dao.TurnRepository {
	return s.turns
}

// Close does nothing; there are no resources to release.
func (s *store) Close() error {
	return nil
}
