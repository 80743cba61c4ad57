package inmem

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dekarrin/moonlight/server/dao"
	"github.com/google/uuid"
)

// AccountsRepository keeps accounts in a map, indexed by both ID and name.
type AccountsRepository struct {
	mtx    sync.RWMutex
	byID   map[uuid.UUID]dao.Account
	byName map[string]uuid.UUID
}

func NewAccountsRepository() *AccountsRepository {
	return &AccountsRepository{
		byID:   make(map[uuid.UUID]dao.Account),
		byName: make(map[string]uuid.UUID),
	}
}

func (repo *AccountsRepository) Create(ctx context.Context, acct dao.Account) (dao.Account, error) {
	repo.mtx.Lock()
	defer repo.mtx.Unlock()

	if _, taken := repo.byName[acct.Name]; taken {
		return dao.Account{}, dao.ErrConstraintViolation
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return dao.Account{}, fmt.Errorf("could not generate ID: %w", err)
	}

	acct.ID = id
	acct.Created = time.Now()

	repo.byID[id] = acct
	repo.byName[acct.Name] = id
	return acct, nil
}

func (repo *AccountsRepository) GetByID(ctx context.Context, id uuid.UUID) (dao.Account, error) {
	repo.mtx.RLock()
	defer repo.mtx.RUnlock()

	acct, ok := repo.byID[id]
	if !ok {
		return dao.Account{}, dao.ErrNotFound
	}
	return acct, nil
}

func (repo *AccountsRepository) GetByName(ctx context.Context, name string) (dao.Account, error) {
	repo.mtx.RLock()
	defer repo.mtx.RUnlock()

	id, ok := repo.byName[name]
	if !ok {
		return dao.Account{}, dao.ErrNotFound
	}
	return repo.byID[id], nil
}

func (repo *AccountsRepository) Touch(ctx context.Context, id uuid.UUID, lastLogin, lastLogout time.Time) (dao.Account, error) {
	repo.mtx.Lock()
	defer repo.mtx.Unlock()

	acct, ok := repo.byID[id]
	if !ok {
		return dao.Account{}, dao.ErrNotFound
	}

	acct.LastLogin = lastLogin
	acct.LastLogout = lastLogout
	repo.byID[id] = acct
	return acct, nil
}
