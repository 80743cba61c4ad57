package api

import (
	"time"

	"github.com/dekarrin/moonlight/server/dao"
)

// Request and response bodies. Times are RFC 3339 strings and IDs are UUID
// strings, whatever the dao types hold.

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

type InfoModel struct {
	Version struct {
		Server    string `json:"server"`
		Moonlight string `json:"moonlight"`
	} `json:"version"`

	// Commands is a plain-text table of every command the game accepts.
	Commands string `json:"commands"`

	// Game is only included for logged-in clients.
	Game *GameModel `json:"game,omitempty"`
}

type GameModel struct {
	Room     string `json:"room"`
	RoomName string `json:"room_name"`
	Score    int    `json:"score"`
	Over     bool   `json:"over"`
}

type TurnRequest struct {
	Input string `json:"input"`
}

// TurnModel is one entry of the transcript. URI is where it can be fetched
// again.
type TurnModel struct {
	URI      string `json:"uri"`
	ID       string `json:"id"`
	Sequence int    `json:"sequence"`
	Input    string `json:"input"`
	Output   string `json:"output"`
	Score    int    `json:"score"`
	Room     string `json:"room"`
	Quit     bool   `json:"quit"`
	Created  string `json:"created"`
}

func turnModel(t dao.Turn) TurnModel {
	return TurnModel{
		URI:      PathPrefix + "/turns/" + t.ID.String(),
		ID:       t.ID.String(),
		Sequence: t.Sequence,
		Input:    t.Input,
		Output:   t.Output,
		Score:    t.Score,
		Room:     t.RoomID,
		Quit:     t.Quit,
		Created:  t.Created.Format(time.RFC3339),
	}
}
