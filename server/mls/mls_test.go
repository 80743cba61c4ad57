package mls

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/dekarrin/moonlight/internal/game"
	"github.com/dekarrin/moonlight/server/dao"
	"github.com/dekarrin/moonlight/server/dao/inmem"
	"github.com/dekarrin/moonlight/server/serr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	kitchen := game.NewRoom("r1", "kitchen", "A small kitchen")
	pantry := game.NewRoom("r2", "pantry", "Shelves line the walls")
	kitchen.AddExit(&game.Exit{Attrs: game.Attrs{ID: "e1", Name: "east", Description: "A doorway east."}, NextRoomID: "r2"})
	pantry.AddExit(&game.Exit{Attrs: game.Attrs{ID: "e2", Name: "west", Description: "A doorway west."}, NextRoomID: "r1"})

	world, err := game.NewWorld("r1", kitchen, pantry)
	require.NoError(t, err)

	gs, err := game.New(world, game.NewPlayer("Moonlight"))
	require.NoError(t, err)

	return New(inmem.NewDatastore(), gs)
}

func Test_Service_PlayTurn(t *testing.T) {
	ctx := context.Background()
	who := uuid.New()

	testCases := []struct {
		name        string
		input       string
		expectRoom  string
		expectScore int
		expectOut   string
		expectQuit  bool
	}{
		{name: "look", input: "look room", expectRoom: "r1", expectScore: 10, expectOut: "A small kitchen"},
		{name: "move", input: "move east", expectRoom: "r2", expectScore: 9, expectOut: "Moving towards east"},
		{name: "invalid", input: "dance", expectRoom: "r2", expectScore: 9, expectOut: "Invalid command: "},
		{name: "quit", input: "  QUIT ", expectRoom: "r2", expectScore: 9, expectOut: "Game over", expectQuit: true},
	}

	svc := newTestService(t)

	// cases run in order against the same game
	for i, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			turn, err := svc.PlayTurn(ctx, who, tc.input)
			require.NoError(t, err)

			assert.Equal(i+1, turn.Sequence)
			assert.Equal(who, turn.UserID)
			assert.Equal(tc.expectRoom, turn.RoomID)
			assert.Equal(tc.expectScore, turn.Score)
			assert.Contains(turn.Output, tc.expectOut)
			assert.Equal(tc.expectQuit, turn.Quit)
		})
	}

	t.Run("after quit", func(t *testing.T) {
		_, err := svc.PlayTurn(ctx, who, "look room")
		assert.ErrorIs(t, err, serr.ErrGameOver)
		assert.Contains(t, err.Error(), "turn 4 quit the game")
		assert.True(t, svc.Status().Over)
	})

	t.Run("transcript", func(t *testing.T) {
		turns, err := svc.GetTurns(ctx)
		require.NoError(t, err)
		require.Len(t, turns, len(testCases))
		for i := range testCases {
			assert.Equal(t, strings.TrimSpace(testCases[i].input), turns[i].Input)
		}
		assert.Equal(t, "QUIT", turns[3].Input)

		one, err := svc.GetTurn(ctx, turns[1].ID)
		require.NoError(t, err)
		assert.Equal(t, "move east", one.Input)

		_, err = svc.GetTurn(ctx, uuid.New())
		assert.ErrorIs(t, err, serr.ErrNotFound)
	})
}

func Test_Service_PlayTurn_blank(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.PlayTurn(context.Background(), uuid.New(), "   ")
	assert.ErrorIs(t, err, serr.ErrBadArgument)

	turns, err := svc.GetTurns(context.Background())
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func Test_Service_PlayTurn_concurrent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	who := uuid.New()

	const players = 8
	const perPlayer = 10

	var wg sync.WaitGroup
	for p := 0; p < players; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perPlayer; i++ {
				if p%2 == 0 {
					svc.PlayTurn(ctx, who, "move east")
				} else {
					svc.PlayTurn(ctx, who, "move west")
				}
			}
		}(p)
	}
	wg.Wait()

	turns, err := svc.GetTurns(ctx)
	require.NoError(t, err)
	require.Len(t, turns, players*perPlayer)

	// each recorded turn must agree with the one before it
	room := "r1"
	score := game.StartingScore
	for i, turn := range turns {
		assert.Equal(t, i+1, turn.Sequence)
		if turn.Output == "Moving towards east" || turn.Output == "Moving towards west" {
			score -= game.MoveCost
			if room == "r1" {
				room = "r2"
			} else {
				room = "r1"
			}
		}
		assert.Equal(t, room, turn.RoomID, fmt.Sprintf("turn %d", turn.Sequence))
		assert.Equal(t, score, turn.Score, fmt.Sprintf("turn %d", turn.Sequence))
	}
}

func Test_Service_CreateAccount(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreateAccount(ctx, "Moonlight", "hunter2", dao.Operator)
	require.NoError(t, err)

	testCases := []struct {
		name      string
		acctName  string
		password  string
		expectErr error
	}{
		{name: "name taken", acctName: "Moonlight", password: "other", expectErr: serr.ErrAlreadyExists},
		{name: "blank name", acctName: "", password: "pass", expectErr: serr.ErrBadArgument},
		{name: "blank password", acctName: "Sunshine", password: "", expectErr: serr.ErrBadArgument},
		{name: "password too long", acctName: "Sunshine", password: strings.Repeat("x", 73), expectErr: serr.ErrBadArgument},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateAccount(ctx, tc.acctName, tc.password, dao.Player)
			assert.ErrorIs(t, err, tc.expectErr)
		})
	}
}

func Test_Service_Login(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.CreateAccount(ctx, "Moonlight", "hunter2", dao.Operator)
	require.NoError(t, err)

	testCases := []struct {
		name      string
		acctName  string
		password  string
		expectErr error
	}{
		{name: "correct", acctName: "Moonlight", password: "hunter2"},
		{name: "wrong password", acctName: "Moonlight", password: "hunter3", expectErr: serr.ErrBadCredentials},
		{name: "no such account", acctName: "Sunshine", password: "hunter2", expectErr: serr.ErrBadCredentials},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			acct, err := svc.Login(ctx, tc.acctName, tc.password)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, created.ID, acct.ID)
			assert.False(t, acct.LastLogin.IsZero())
		})
	}

	t.Run("logout", func(t *testing.T) {
		acct, err := svc.Logout(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, acct.LastLogout.IsZero())
		assert.False(t, acct.LastLogin.IsZero(), "logout keeps the login time")

		_, err = svc.Logout(ctx, uuid.New())
		assert.ErrorIs(t, err, serr.ErrNotFound)
	})
}
