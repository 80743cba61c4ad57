package sqlite

import (
	"context"
	"database/sql"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/dekarrin/moonlight/server/dao"
	"github.com/dekarrin/rezi"
	"github.com/google/uuid"
)

// turnSnapshot is the game state left behind by a turn. It is stored
// rezi-encoded in the state column rather than as separate columns so that
// more of the state can be recorded later without a table migration.
type turnSnapshot struct {
	RoomID string
	Score  int
}

func (snap turnSnapshot) MarshalBinary() ([]byte, error) {
	var data []byte

	data = append(data, rezi.EncString(snap.RoomID)...)
	data = append(data, rezi.EncInt(snap.Score)...)

	return data, nil
}

func (snap *turnSnapshot) UnmarshalBinary(data []byte) error {
	var err error
	var n int

	snap.RoomID, n, err = rezi.DecString(data)
	if err != nil {
		return fmt.Errorf("room ID: %w", err)
	}
	data = data[n:]

	snap.Score, _, err = rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("score: %w", err)
	}

	return nil
}

func encodeSnapshot(t dao.Turn) string {
	data := rezi.EncBinary(turnSnapshot{RoomID: t.RoomID, Score: t.Score})
	return base64.StdEncoding.EncodeToString(data)
}

func decodeSnapshot(s string, target *dao.Turn) error {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return err
	}

	var snap turnSnapshot
	if _, err := rezi.DecBinary(data, &snap); err != nil {
		return err
	}

	target.RoomID = snap.RoomID
	target.Score = snap.Score
	return nil
}

// TurnsDB is the turns table. seq is assigned inside the INSERT so that it
// continues from whatever transcript is already stored.
type TurnsDB struct {
	db *sql.DB
}

const turnsSelect = `SELECT id, seq, user_id, input, output, quit, state, created FROM turns`

func (repo *TurnsDB) init() error {
	_, err := repo.db.Exec(`CREATE TABLE IF NOT EXISTS turns (
		id TEXT NOT NULL PRIMARY KEY,
		seq INTEGER NOT NULL UNIQUE,
		user_id TEXT NOT NULL REFERENCES accounts(id),
		input TEXT NOT NULL,
		output TEXT NOT NULL,
		quit INTEGER NOT NULL,
		state TEXT NOT NULL,
		created INTEGER NOT NULL
	);`)
	return wrapDBError(err)
}

func (repo *TurnsDB) Create(ctx context.Context, t dao.Turn) (dao.Turn, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return dao.Turn{}, fmt.Errorf("could not generate ID: %w", err)
	}

	var quit int64
	if t.Quit {
		quit = 1
	}

	_, err = repo.db.ExecContext(ctx,
		`INSERT INTO turns (id, seq, user_id, input, output, quit, state, created)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM turns), ?, ?, ?, ?, ?, ?);`,
		id.String(), t.UserID.String(), t.Input, t.Output, quit,
		encodeSnapshot(t), unixTime(time.Now()),
	)
	if err != nil {
		return dao.Turn{}, wrapDBError(err)
	}

	return repo.GetByID(ctx, id)
}

func (repo *TurnsDB) GetAll(ctx context.Context) ([]dao.Turn, error) {
	rows, err := repo.db.QueryContext(ctx, turnsSelect+` ORDER BY seq;`)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	var all []dao.Turn
	for rows.Next() {
		t, err := scanTurn(rows)
		if err != nil {
			return all, err
		}
		all = append(all, t)
	}

	return all, wrapDBError(rows.Err())
}

func (repo *TurnsDB) GetByID(ctx context.Context, id uuid.UUID) (dao.Turn, error) {
	return scanTurn(repo.db.QueryRowContext(ctx, turnsSelect+` WHERE id = ?;`, id.String()))
}

func scanTurn(s scanner) (dao.Turn, error) {
	var t dao.Turn
	var id, userID, state string
	var quit, created int64

	if err := s.Scan(&id, &t.Sequence, &userID, &t.Input, &t.Output, &quit, &state, &created); err != nil {
		return t, wrapDBError(err)
	}
	t.Quit = quit != 0

	err := decodeColumns(
		uuidColumn("ID", id, &t.ID),
		uuidColumn("user ID", userID, &t.UserID),
		timeColumn("created time", created, &t.Created),
		column{"state", func() error { return decodeSnapshot(state, &t) }},
	)
	return t, err
}
