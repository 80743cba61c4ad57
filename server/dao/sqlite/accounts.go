package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dekarrin/moonlight/server/dao"
	"github.com/google/uuid"
)

// AccountsDB is the accounts table.
type AccountsDB struct {
	db *sql.DB
}

const accountsSelect = `SELECT id, name, pass_hash, role, created, last_login, last_logout FROM accounts`

func (repo *AccountsDB) init() error {
	_, err := repo.db.Exec(`CREATE TABLE IF NOT EXISTS accounts (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		pass_hash TEXT NOT NULL,
		role INTEGER NOT NULL,
		created INTEGER NOT NULL,
		last_login INTEGER NOT NULL,
		last_logout INTEGER NOT NULL
	);`)
	return wrapDBError(err)
}

func (repo *AccountsDB) Create(ctx context.Context, acct dao.Account) (dao.Account, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return dao.Account{}, fmt.Errorf("could not generate ID: %w", err)
	}

	_, err = repo.db.ExecContext(ctx,
		`INSERT INTO accounts (id, name, pass_hash, role, created, last_login, last_logout) VALUES (?, ?, ?, ?, ?, ?, ?);`,
		id.String(), acct.Name, acct.PassHash, int64(acct.Role),
		unixTime(time.Now()), unixTime(acct.LastLogin), unixTime(acct.LastLogout),
	)
	if err != nil {
		return dao.Account{}, wrapDBError(err)
	}

	return repo.GetByID(ctx, id)
}

func (repo *AccountsDB) GetByID(ctx context.Context, id uuid.UUID) (dao.Account, error) {
	return scanAccount(repo.db.QueryRowContext(ctx, accountsSelect+` WHERE id = ?;`, id.String()))
}

func (repo *AccountsDB) GetByName(ctx context.Context, name string) (dao.Account, error) {
	return scanAccount(repo.db.QueryRowContext(ctx, accountsSelect+` WHERE name = ?;`, name))
}

func (repo *AccountsDB) Touch(ctx context.Context, id uuid.UUID, lastLogin, lastLogout time.Time) (dao.Account, error) {
	res, err := repo.db.ExecContext(ctx, `UPDATE accounts SET last_login = ?, last_logout = ? WHERE id = ?;`,
		unixTime(lastLogin), unixTime(lastLogout), id.String(),
	)
	if err != nil {
		return dao.Account{}, wrapDBError(err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return dao.Account{}, wrapDBError(err)
	} else if n < 1 {
		return dao.Account{}, dao.ErrNotFound
	}

	return repo.GetByID(ctx, id)
}

func scanAccount(s scanner) (dao.Account, error) {
	var acct dao.Account
	var id string
	var role, created, login, logout int64

	if err := s.Scan(&id, &acct.Name, &acct.PassHash, &role, &created, &login, &logout); err != nil {
		return acct, wrapDBError(err)
	}

	err := decodeColumns(
		uuidColumn("ID", id, &acct.ID),
		column{"role", func() error {
			acct.Role = dao.Role(role)
			if acct.Role != dao.Player && acct.Role != dao.Operator {
				return fmt.Errorf("unknown role %d", role)
			}
			return nil
		}},
		timeColumn("created time", created, &acct.Created),
		timeColumn("last login time", login, &acct.LastLogin),
		timeColumn("last logout time", logout, &acct.LastLogout),
	)
	return acct, err
}
