// Package result holds the responses that Moonlight API endpoints produce.
// An endpoint returns a Result rather than writing to the connection itself,
// which lets the caller log and delay responses uniformly.
package result

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dekarrin/moonlight/server/serr"
)

// ErrorResponse is the body of every error response. It is also sent as-is
// on the play socket when a turn cannot be played.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// Result is a response ready to be written. Body is encoded as JSON; a nil
// Body sends no content.
type Result struct {
	Status int
	Body   interface{}

	// Log is written to the server log and never sent to the client.
	Log string

	location string
	header   [][2]string
}

// IsErr returns whether r is a 4xx or 5xx response.
func (r Result) IsErr() bool {
	return r.Status >= 400
}

// logMsg formats the optional log arguments taken by the constructors. The
// first argument, if any, is the format string.
func logMsg(def string, logArgs []interface{}) string {
	if len(logArgs) == 0 {
		return def
	}
	return fmt.Sprintf(logArgs[0].(string), logArgs[1:]...)
}

func OK(body interface{}, logArgs ...interface{}) Result {
	return Result{Status: http.StatusOK, Body: body, Log: logMsg("OK", logArgs)}
}

func Created(body interface{}, logArgs ...interface{}) Result {
	return Result{Status: http.StatusCreated, Body: body, Log: logMsg("created", logArgs)}
}

func NoContent(logArgs ...interface{}) Result {
	return Result{Status: http.StatusNoContent, Log: logMsg("no content", logArgs)}
}

// Redirect permanently sends the client to uri.
func Redirect(uri string) Result {
	return Result{Status: http.StatusPermanentRedirect, Log: "redirect -> " + uri, location: uri}
}

// Err returns an error response with userMsg in the body.
func Err(status int, userMsg string, logArgs ...interface{}) Result {
	return Result{
		Status: status,
		Body:   ErrorResponse{Error: userMsg, Status: status},
		Log:    logMsg(http.StatusText(status), logArgs),
	}
}

func BadRequest(userMsg string, logArgs ...interface{}) Result {
	return Err(http.StatusBadRequest, userMsg, logArgs...)
}

// Unauthorized also sets the WWW-Authenticate header. If userMsg is empty, a
// generic message is used.
func Unauthorized(userMsg string, logArgs ...interface{}) Result {
	if userMsg == "" {
		userMsg = "You are not authorized to do that"
	}
	r := Err(http.StatusUnauthorized, userMsg, logArgs...)
	r.header = append(r.header, [2]string{"WWW-Authenticate", `Bearer realm="Moonlight server", charset="utf-8"`})
	return r
}

func Forbidden(logArgs ...interface{}) Result {
	return Err(http.StatusForbidden, "You don't have permission to do that", logArgs...)
}

func NotFound(logArgs ...interface{}) Result {
	return Err(http.StatusNotFound, "The requested resource was not found", logArgs...)
}

func MethodNotAllowed(req *http.Request, logArgs ...interface{}) Result {
	userMsg := fmt.Sprintf("Method %s is not allowed for %s", req.Method, req.URL.Path)
	return Err(http.StatusMethodNotAllowed, userMsg, logArgs...)
}

// GameOver is the response to a turn played after the game has ended.
func GameOver(logArgs ...interface{}) Result {
	return Err(http.StatusConflict, "The game is over", logArgs...)
}

func InternalServerError(logArgs ...interface{}) Result {
	return Err(http.StatusInternalServerError, "An internal server error occurred", logArgs...)
}

// FromError picks the response for an error returned by the backend. The
// error's message is always logged. Only a bad argument has its message shown
// to the client, since it describes what the client sent.
func FromError(err error) Result {
	switch {
	case errors.Is(err, serr.ErrBadArgument), errors.Is(err, serr.ErrBodyUnmarshal):
		return BadRequest(err.Error(), "%s", err.Error())
	case errors.Is(err, serr.ErrGameOver):
		return GameOver("%s", err.Error())
	case errors.Is(err, serr.ErrBadCredentials):
		return Unauthorized(serr.ErrBadCredentials.Error(), "%s", err.Error())
	case errors.Is(err, serr.ErrPermissions):
		return Forbidden("%s", err.Error())
	case errors.Is(err, serr.ErrNotFound):
		return NotFound("%s", err.Error())
	default:
		return InternalServerError("%s", err.Error())
	}
}

// Write sends r to w. If the body cannot be encoded nothing is written and
// the error is returned.
func (r Result) Write(w http.ResponseWriter) error {
	if r.Status == 0 {
		return fmt.Errorf("result has no status")
	}

	var body []byte
	if r.Body != nil && r.Status != http.StatusNoContent {
		var err error
		if body, err = json.Marshal(r.Body); err != nil {
			return fmt.Errorf("encode response: %w", err)
		}
	}

	hdr := w.Header()
	hdr.Set("X-Content-Type-Options", "nosniff")
	if body != nil {
		hdr.Set("Content-Type", "application/json")
	}
	if r.location != "" {
		hdr.Set("Location", r.location)
	}
	for _, kv := range r.header {
		hdr.Set(kv[0], kv[1])
	}

	w.WriteHeader(r.Status)
	if body != nil {
		w.Write(body)
	}
	return nil
}
