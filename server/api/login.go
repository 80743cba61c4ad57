package api

import (
	"net/http"

	"github.com/dekarrin/moonlight/server/dao"
	"github.com/dekarrin/moonlight/server/middle"
	"github.com/dekarrin/moonlight/server/result"
	"github.com/dekarrin/moonlight/server/token"
)

// HTTPCreateLogin returns a HandlerFunc that logs in with a username and
// password and gives back a token for the account.
func (api API) HTTPCreateLogin() http.HandlerFunc {
	return api.endpoint(api.epCreateLogin)
}

func (api API) epCreateLogin(req *http.Request) result.Result {
	var body LoginRequest
	if err := parseJSON(req, &body); err != nil {
		return result.FromError(err)
	}
	if body.Username == "" {
		return result.BadRequest("username: property is empty or missing from request", "empty username")
	}
	if body.Password == "" {
		return result.BadRequest("password: property is empty or missing from request", "empty password")
	}

	acct, err := api.Backend.Login(req.Context(), body.Username, body.Password)
	if err != nil {
		r := result.FromError(err)
		r.Log = "login as '" + body.Username + "': " + r.Log
		return r
	}

	return api.issueToken(acct, "logged in")
}

// HTTPDeleteLogin returns a HandlerFunc that ends every login of an account.
// Only the operator may log out an account other than their own.
func (api API) HTTPDeleteLogin() http.HandlerFunc {
	return api.endpoint(api.epDeleteLogin)
}

func (api API) epDeleteLogin(req *http.Request) result.Result {
	id, err := idParam(req)
	if err != nil {
		return result.FromError(err)
	}
	acct, _ := middle.Account(req)

	if id != acct.ID && acct.Role != dao.Operator {
		return result.Forbidden("'%s' (%s) tried to log out %s", acct.Name, acct.Role, id)
	}

	loggedOut, err := api.Backend.Logout(req.Context(), id)
	if err != nil {
		return result.FromError(err)
	}

	return result.NoContent("'%s' logged out '%s'", acct.Name, loggedOut.Name)
}

// HTTPCreateToken returns a HandlerFunc that gives a fresh token to an
// already logged-in client.
func (api API) HTTPCreateToken() http.HandlerFunc {
	return api.endpoint(api.epCreateToken)
}

func (api API) epCreateToken(req *http.Request) result.Result {
	acct, _ := middle.Account(req)
	return api.issueToken(acct, "refreshed token")
}

func (api API) issueToken(acct dao.Account, what string) result.Result {
	tok, err := token.Generate(api.Secret, acct)
	if err != nil {
		return result.InternalServerError("could not generate JWT: %s", err.Error())
	}

	resp := LoginResponse{Token: tok, UserID: acct.ID.String()}
	return result.Created(resp, "'%s' %s", acct.Name, what)
}
