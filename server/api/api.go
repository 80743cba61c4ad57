// Package api provides HTTP API endpoints for the Moonlight server.
//
// Every endpoint is an endpointFunc that returns a result.Result; the
// handlers returned by the HTTP* methods of API wrap them so that each
// response is logged the same way.
package api

import (
	"encoding/json"
	"fmt"
	"log"
	"mime"
	"net"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/dekarrin/moonlight/server/mls"
	"github.com/dekarrin/moonlight/server/result"
	"github.com/dekarrin/moonlight/server/serr"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// PathPrefix is the prefix of all paths in the API.
const PathPrefix = "/api/v1"

// API serves requests against a single hosted game. Create one and assign the
// result of its HTTP* methods as handlers on a router.
//
// For direct programmatic access to the game, use [mls.Service].
type API struct {
	// Backend is the service that hosts the game.
	Backend *mls.Service

	// UnauthDelay is waited before responding with an HTTP-401, HTTP-403, or
	// HTTP-500, to slow down clients that are guessing.
	UnauthDelay time.Duration

	// Secret is the secret used to sign JWT tokens.
	Secret []byte
}

type endpointFunc func(req *http.Request) result.Result

func (api API) endpoint(ep endpointFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		defer recoverTo500(w, req)

		r := ep(req)
		switch r.Status {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusInternalServerError:
			time.Sleep(api.UnauthDelay)
		}

		logResult(req, r)
		if err := r.Write(w); err != nil {
			r = result.InternalServerError("%s", err.Error())
			logResult(req, r)
			r.Write(w)
		}
	}
}

// HTTPNotFound returns a HandlerFunc that responds to requests for paths that
// do not exist.
func (api API) HTTPNotFound() http.HandlerFunc {
	return api.endpoint(func(req *http.Request) result.Result {
		return result.NotFound("no route for path")
	})
}

// HTTPMethodNotAllowed returns a HandlerFunc that responds to requests that
// use a method the path does not support.
func (api API) HTTPMethodNotAllowed() http.HandlerFunc {
	return api.endpoint(func(req *http.Request) result.Result {
		return result.MethodNotAllowed(req)
	})
}

// HTTPRedirect returns a HandlerFunc that permanently redirects every request
// to uri.
func (api API) HTTPRedirect(uri string) http.HandlerFunc {
	return api.endpoint(func(req *http.Request) result.Result {
		return result.Redirect(uri)
	})
}

// idParam gets the UUID in the {id} part of the route. A malformed ID can
// never name anything, so it is reported as not found.
func idParam(req *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(req, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, serr.New(fmt.Sprintf("id %q", raw), err, serr.ErrNotFound)
	}
	return id, nil
}

// parseJSON decodes the JSON body of req into v, which must be a pointer. The
// returned error matches serr.ErrBodyUnmarshal.
func parseJSON(req *http.Request, v interface{}) error {
	mediaType, _, err := mime.ParseMediaType(req.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return serr.New("request content-type is not application/json", serr.ErrBodyUnmarshal)
	}

	defer req.Body.Close()
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		return serr.New("malformed JSON in request", err, serr.ErrBodyUnmarshal)
	}
	return nil
}

func recoverTo500(w http.ResponseWriter, req *http.Request) {
	if p := recover(); p != nil {
		r := result.InternalServerError("panic: %v\nSTACK TRACE: %s", p, debug.Stack())
		logResult(req, r)
		r.Write(w)
	}
}

func logResult(req *http.Request, r result.Result) {
	level := "INFO"
	if r.IsErr() {
		level = "ERROR"
	}
	logRequest(level, req, r.Status, r.Log)
}

// logRequest writes one line to the server log about a response to req. The
// level is padded to five characters so that messages line up.
func logRequest(level string, req *http.Request, status int, msg string) {
	// the client's ephemeral port is not interesting
	remote, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		remote = req.RemoteAddr
	}
	log.Printf("%-5.5s %s %s %s: HTTP-%d %s", level, remote, req.Method, req.URL.Path, status, msg)
}
