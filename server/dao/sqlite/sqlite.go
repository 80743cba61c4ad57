// Package sqlite provides a dao.Store backed by a SQLite database file in a
// storage directory.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dekarrin/moonlight/server/dao"
	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// DBFile is the name of the database file created in the storage directory.
const DBFile = "data.db"

type store struct {
	file     string
	db       *sql.DB
	accounts *AccountsDB
	turns    *TurnsDB
}

// NewDatastore opens (creating if needed) the database file in storageDir
// and makes sure every table exists.
func NewDatastore(storageDir string) (dao.Store, error) {
	file := filepath.Join(storageDir, DBFile)

	db, err := sql.Open("sqlite", file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, wrapDBError(err))
	}

	st := &store{
		file:     file,
		db:       db,
		accounts: &AccountsDB{db: db},
		turns:    &TurnsDB{db: db},
	}

	// turns references accounts, so accounts must exist first
	for _, t := range []struct {
		name string
		init func() error
	}{
		{"accounts", st.accounts.init},
		{"turns", st.turns.init},
	} {
		if err := t.init(); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %s: %w", file, t.name, err)
		}
	}

	return st, nil
}

func (s *store) Accounts() dao.AccountRepository {
	return s.accounts
}

func (s *store) Turns() dao.TurnRepository {
	return s.turns
}

// Close closes the database handle the repositories share.
func (s *store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("%s: %w", s.file, err)
	}
	return nil
}

// wrapDBError translates errors from the driver into dao errors. The original
// error stays in the chain. SQLite reports extended result codes, so only the
// low byte is compared against the primary code.
func wrapDBError(err error) error {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
			return fmt.Errorf("%w: %w", dao.ErrConstraintViolation, err)
		}
		return fmt.Errorf("sqlite: %w", err)
	} else if errors.Is(err, sql.ErrNoRows) {
		return dao.ErrNotFound
	}
	return err
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// unixTime stores t as unix seconds, with the zero time as 0.
func unixTime(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func fromUnixTime(secs int64) (time.Time, error) {
	switch {
	case secs < 0:
		return time.Time{}, fmt.Errorf("negative timestamp %d", secs)
	case secs == 0:
		return time.Time{}, nil
	default:
		return time.Unix(secs, 0), nil
	}
}

// column is one stored value to decode after a scan, along with the name used
// for it in errors.
type column struct {
	name   string
	decode func() error
}

func decodeColumns(cols ...column) error {
	for _, c := range cols {
		if err := c.decode(); err != nil {
			return fmt.Errorf("stored %s is invalid: %w", c.name, err)
		}
	}
	return nil
}

func uuidColumn(name, s string, target *uuid.UUID) column {
	return column{name, func() (err error) {
		*target, err = uuid.Parse(s)
		return err
	}}
}

func timeColumn(name string, secs int64, target *time.Time) column {
	return column{name, func() (err error) {
		*target, err = fromUnixTime(secs)
		return err
	}}
}
