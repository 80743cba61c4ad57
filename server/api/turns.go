package api

import (
	"net/http"

	"github.com/dekarrin/moonlight/server/middle"
	"github.com/dekarrin/moonlight/server/result"
)

// HTTPCreateTurn returns a HandlerFunc that plays one line of input against
// the hosted game and returns the resulting turn. Blank input is an HTTP-400
// and any turn after the game has ended is an HTTP-409.
func (api API) HTTPCreateTurn() http.HandlerFunc {
	return api.endpoint(api.epCreateTurn)
}

func (api API) epCreateTurn(req *http.Request) result.Result {
	acct, _ := middle.Account(req)

	var body TurnRequest
	if err := parseJSON(req, &body); err != nil {
		return result.FromError(err)
	}

	turn, err := api.Backend.PlayTurn(req.Context(), acct.ID, body.Input)
	if err != nil {
		r := result.FromError(err)
		r.Log = "'" + acct.Name + "' turn: " + r.Log
		return r
	}

	return result.Created(turnModel(turn), "'%s' played turn %d", acct.Name, turn.Sequence)
}

// HTTPGetAllTurns returns a HandlerFunc that retrieves the transcript of every
// turn played so far, in order.
func (api API) HTTPGetAllTurns() http.HandlerFunc {
	return api.endpoint(api.epGetAllTurns)
}

func (api API) epGetAllTurns(req *http.Request) result.Result {
	acct, _ := middle.Account(req)

	turns, err := api.Backend.GetTurns(req.Context())
	if err != nil {
		return result.FromError(err)
	}

	resp := make([]TurnModel, len(turns))
	for i := range turns {
		resp[i] = turnModel(turns[i])
	}
	return result.OK(resp, "'%s' got %d turns", acct.Name, len(resp))
}

// HTTPGetTurn returns a HandlerFunc that retrieves a single turn by its ID.
func (api API) HTTPGetTurn() http.HandlerFunc {
	return api.endpoint(api.epGetTurn)
}

func (api API) epGetTurn(req *http.Request) result.Result {
	acct, _ := middle.Account(req)

	id, err := idParam(req)
	if err != nil {
		return result.FromError(err)
	}

	turn, err := api.Backend.GetTurn(req.Context(), id)
	if err != nil {
		return result.FromError(err)
	}
	return result.OK(turnModel(turn), "'%s' got turn %d", acct.Name, turn.Sequence)
}
