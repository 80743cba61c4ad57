// Package token issues and checks the JWTs that authenticate requests to the
// Moonlight server.
package token

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dekarrin/moonlight/server/dao"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// Issuer is the value of the iss claim of every token the server creates.
	Issuer = "mls"

	// Lifetime is how long a token remains valid after it is generated.
	Lifetime = time.Hour

	// QueryParam is the URL query parameter a token may be given in when the
	// client cannot set headers, as with a browser websocket.
	QueryParam = "token"
)

// Validate parses tok and checks that it was signed for an account that
// exists in accounts. The signing key is derived from the account's password
// hash and last logout time, so logging out invalidates every outstanding
// token.
func Validate(ctx context.Context, tok string, secret []byte, accounts dao.AccountRepository) (dao.Account, error) {
	var acct dao.Account

	keyFunc := func(t *jwt.Token) (interface{}, error) {
		subj, err := t.Claims.GetSubject()
		if err != nil {
			return nil, fmt.Errorf("cannot get subject: %w", err)
		}
		id, err := uuid.Parse(subj)
		if err != nil {
			return nil, fmt.Errorf("cannot parse subject UUID: %w", err)
		}

		acct, err = accounts.GetByID(ctx, id)
		if errors.Is(err, dao.ErrNotFound) {
			return nil, fmt.Errorf("subject does not exist")
		} else if err != nil {
			return nil, fmt.Errorf("subject could not be validated")
		}
		return signKey(secret, acct), nil
	}

	_, err := jwt.Parse(tok, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithLeeway(time.Minute),
	)
	if err != nil {
		return dao.Account{}, err
	}
	return acct, nil
}

// Get extracts the token from the Authorization header of req, which must use
// the Bearer scheme. If there is no such header, the QueryParam query
// parameter is checked instead.
func Get(req *http.Request) (string, error) {
	authHeader := strings.TrimSpace(req.Header.Get("Authorization"))
	if authHeader == "" {
		if tok := strings.TrimSpace(req.URL.Query().Get(QueryParam)); tok != "" {
			return tok, nil
		}
		return "", fmt.Errorf("no authorization header present")
	}

	scheme, tok, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", fmt.Errorf("authorization header not in Bearer format")
	}
	return strings.TrimSpace(tok), nil
}

// Generate creates a new signed token for acct.
func Generate(secret []byte, acct dao.Account) (string, error) {
	claims := jwt.MapClaims{
		"iss": Issuer,
		"exp": time.Now().Add(Lifetime).Unix(),
		"sub": acct.ID.String(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(signKey(secret, acct))
}

func signKey(secret []byte, acct dao.Account) []byte {
	key := append([]byte(nil), secret...)
	key = append(key, acct.PassHash...)
	return strconv.AppendInt(key, acct.LastLogout.Unix(), 10)
}
