package mls

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	"github.com/dekarrin/moonlight/server/dao"
	"github.com/dekarrin/moonlight/server/serr"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// CreateAccount adds an account that can log in with the given name and
// password.
//
// The returned error will match serr.ErrBadArgument if name or password is
// blank, serr.ErrAlreadyExists if the name is taken, and serr.ErrDB for any
// other problem with the DB.
func (svc *Service) CreateAccount(ctx context.Context, name, password string, role dao.Role) (dao.Account, error) {
	if name == "" {
		return dao.Account{}, serr.New("name cannot be blank", serr.ErrBadArgument)
	}
	if password == "" {
		return dao.Account{}, serr.New("password cannot be blank", serr.ErrBadArgument)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return dao.Account{}, serr.New("password is too long", err, serr.ErrBadArgument)
		}
		return dao.Account{}, serr.New("password could not be hashed", err)
	}

	acct, err := svc.DB.Accounts().Create(ctx, dao.Account{
		Name:     name,
		PassHash: base64.StdEncoding.EncodeToString(hash),
		Role:     role,
	})
	if errors.Is(err, dao.ErrConstraintViolation) {
		return dao.Account{}, serr.New("account "+name, serr.ErrAlreadyExists)
	} else if err != nil {
		return dao.Account{}, serr.WrapDB("could not create account", err)
	}
	return acct, nil
}

// GetAccount returns the account with the given ID. The returned error will
// match serr.ErrNotFound if there is no such account.
func (svc *Service) GetAccount(ctx context.Context, id uuid.UUID) (dao.Account, error) {
	acct, err := svc.DB.Accounts().GetByID(ctx, id)
	if errors.Is(err, dao.ErrNotFound) {
		return dao.Account{}, serr.New("account "+id.String(), serr.ErrNotFound)
	} else if err != nil {
		return dao.Account{}, serr.WrapDB("could not get account", err)
	}
	return acct, nil
}

// Login checks password against the account named name and records the
// login. An unknown name and a wrong password both give an error matching
// serr.ErrBadCredentials, so callers cannot tell which it was.
func (svc *Service) Login(ctx context.Context, name, password string) (dao.Account, error) {
	acct, err := svc.DB.Accounts().GetByName(ctx, name)
	if errors.Is(err, dao.ErrNotFound) {
		return dao.Account{}, serr.ErrBadCredentials
	} else if err != nil {
		return dao.Account{}, serr.WrapDB("could not get account", err)
	}

	if err := checkPassword(acct.PassHash, password); err != nil {
		return dao.Account{}, err
	}

	acct, err = svc.DB.Accounts().Touch(ctx, acct.ID, time.Now(), acct.LastLogout)
	if err != nil {
		return dao.Account{}, serr.WrapDB("could not record login", err)
	}
	return acct, nil
}

// Logout ends every login of the account with the given ID. Tokens issued
// before now stop being accepted. The returned error will match
// serr.ErrNotFound if there is no such account.
func (svc *Service) Logout(ctx context.Context, id uuid.UUID) (dao.Account, error) {
	acct, err := svc.GetAccount(ctx, id)
	if err != nil {
		return dao.Account{}, err
	}

	acct, err = svc.DB.Accounts().Touch(ctx, id, acct.LastLogin, time.Now())
	if err != nil {
		return dao.Account{}, serr.WrapDB("could not record logout", err)
	}
	return acct, nil
}

func checkPassword(storedHash, password string) error {
	hash, err := base64.StdEncoding.DecodeString(storedHash)
	if err != nil {
		return serr.New("stored password is corrupt", err)
	}

	err = bcrypt.CompareHashAndPassword(hash, []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return serr.ErrBadCredentials
	} else if err != nil {
		return serr.New("password could not be checked", err)
	}
	return nil
}
