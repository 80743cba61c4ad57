package mls

import (
	"context"
	"errors"
	"strings"

	"github.com/dekarrin/moonlight/internal/command"
	"github.com/dekarrin/moonlight/server/dao"
	"github.com/dekarrin/moonlight/server/serr"
	"github.com/google/uuid"
)

// Status is a point-in-time view of the hosted game.
type Status struct {
	RoomID   string
	RoomName string
	Score    int
	Over     bool
}

// PlayTurn runs one line of input against the hosted game on behalf of who
// and appends the result to the transcript. The input is recorded with
// surrounding whitespace removed.
//
// The returned error will match serr.ErrBadArgument if the input is blank
// and serr.ErrGameOver if a turn that quit the game was already played. If it
// matches serr.ErrDB, the turn could not be recorded but has still been
// applied to the game; the returned Turn holds its result without an ID.
func (svc *Service) PlayTurn(ctx context.Context, who uuid.UUID, input string) (dao.Turn, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return dao.Turn{}, serr.BlankInput()
	}

	svc.mtx.Lock()
	defer svc.mtx.Unlock()

	if svc.over {
		return dao.Turn{}, serr.GameOver(svc.quitSeq)
	}

	turn := dao.Turn{
		UserID: who,
		Input:  input,
		Output: svc.game.Execute(input),
		Quit:   command.IsQuit(input),
		Score:  svc.game.Player.Score,
		RoomID: svc.game.World.CurrentRoomID(),
	}
	svc.over = turn.Quit

	recorded, err := svc.DB.Turns().Create(ctx, turn)
	if err != nil {
		return turn, serr.WrapDB("could not record turn", err)
	}
	if recorded.Quit {
		svc.quitSeq = recorded.Sequence
	}
	return recorded, nil
}

// GetTurns returns the full transcript in the order it was played.
func (svc *Service) GetTurns(ctx context.Context) ([]dao.Turn, error) {
	turns, err := svc.DB.Turns().GetAll(ctx)
	if err != nil {
		return nil, serr.WrapDB("could not get transcript", err)
	}
	return turns, nil
}

// GetTurn returns the turn with the given ID. The returned error will match
// serr.ErrNotFound if there is no such turn.
func (svc *Service) GetTurn(ctx context.Context, id uuid.UUID) (dao.Turn, error) {
	turn, err := svc.DB.Turns().GetByID(ctx, id)
	if errors.Is(err, dao.ErrNotFound) {
		return dao.Turn{}, serr.New("turn "+id.String(), serr.ErrNotFound)
	} else if err != nil {
		return dao.Turn{}, serr.WrapDB("could not get turn", err)
	}
	return turn, nil
}

// Status returns where the player is and their score right now.
func (svc *Service) Status() Status {
	svc.mtx.Lock()
	defer svc.mtx.Unlock()

	room := svc.game.World.CurrentRoom()
	return Status{
		RoomID:   room.ID,
		RoomName: room.Name,
		Score:    svc.game.Player.Score,
		Over:     svc.over,
	}
}
