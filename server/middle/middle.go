// Package middle contains middleware for use with the Moonlight server.
package middle

import (
	"context"
	"net/http"
	"time"

	"github.com/dekarrin/moonlight/server/dao"
	"github.com/dekarrin/moonlight/server/result"
	"github.com/dekarrin/moonlight/server/token"
)

type ctxKey int

const accountKey ctxKey = iota

// Account returns the account that authenticated req, or false if the client
// is not logged in.
func Account(req *http.Request) (dao.Account, bool) {
	acct, ok := req.Context().Value(accountKey).(dao.Account)
	return acct, ok
}

// Auth authenticates requests by the JWT they carry. The account it belongs to
// is placed in the request context for Account to retrieve.
type Auth struct {
	Accounts dao.AccountRepository
	Secret   []byte

	// UnauthDelay is waited before rejecting a request.
	UnauthDelay time.Duration
}

// Required rejects requests without a valid token with an HTTP-401.
func (a Auth) Required(next http.Handler) http.Handler {
	return a.wrap(next, true)
}

// Optional lets every request through, logged in or not.
func (a Auth) Optional(next http.Handler) http.Handler {
	return a.wrap(next, false)
}

func (a Auth) wrap(next http.Handler, required bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		acct, err := a.authenticate(req)
		if err == nil {
			req = req.WithContext(context.WithValue(req.Context(), accountKey, acct))
		} else if required {
			time.Sleep(a.UnauthDelay)
			result.Unauthorized("", "%s", err.Error()).Write(w)
			return
		}
		next.ServeHTTP(w, req)
	})
}

func (a Auth) authenticate(req *http.Request) (dao.Account, error) {
	tok, err := token.Get(req)
	if err != nil {
		return dao.Account{}, err
	}
	return token.Validate(req.Context(), tok, a.Secret, a.Accounts)
}
