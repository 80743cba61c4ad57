package inmem

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dekarrin/moonlight/server/dao"
	"github.com/google/uuid"
)

// TurnsRepository keeps the transcript as a slice in play order with an index
// from ID to position. A turn's Sequence is always its position plus one.
type TurnsRepository struct {
	mtx   sync.RWMutex
	turns []dao.Turn
	byID  map[uuid.UUID]int
}

func NewTurnsRepository() *TurnsRepository {
	return &TurnsRepository{
		byID: make(map[uuid.UUID]int),
	}
}

func (repo *TurnsRepository) Create(ctx context.Context, turn dao.Turn) (dao.Turn, error) {
	repo.mtx.Lock()
	defer repo.mtx.Unlock()

	id, err := uuid.NewRandom()
	if err != nil {
		return dao.Turn{}, fmt.Errorf("could not generate ID: %w", err)
	}

	pos := len(repo.turns)
	turn.ID = id
	turn.Sequence = pos + 1
	turn.Created = time.Now()

	repo.byID[id] = pos
	repo.turns = append(repo.turns, turn)
	return turn, nil
}

func (repo *TurnsRepository) GetAll(ctx context.Context) ([]dao.Turn, error) {
	repo.mtx.RLock()
	defer repo.mtx.RUnlock()

	return append([]dao.Turn(nil), repo.turns...), nil
}

func (repo *TurnsRepository) GetByID(ctx context.Context, id uuid.UUID) (dao.Turn, error) {
	repo.mtx.RLock()
	defer repo.mtx.RUnlock()

	pos, ok := repo.byID[id]
	if !ok {
		return dao.Turn{}, dao.ErrNotFound
	}
	return repo.turns[pos], nil
}
