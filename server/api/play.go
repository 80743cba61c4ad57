package api

import (
	"fmt"
	"net/http"

	"github.com/dekarrin/moonlight/server/middle"
	"github.com/dekarrin/moonlight/server/result"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// HTTPPlay returns a HandlerFunc that upgrades the connection to a websocket
// and plays the game over it. Every text message received is one line of
// input, and every reply is the resulting TurnModel as JSON, or an
// result.ErrorResponse if the turn could not be played. The server closes the
// connection after the turn that ends the game.
//
// Browsers cannot set the Authorization header on a websocket, so the token
// may be given in the token query parameter instead.
func (api API) HTTPPlay() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		defer recoverTo500(w, req)
		acct, _ := middle.Account(req)

		conn, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			// Upgrade has already written the error response
			logRequest("ERROR", req, http.StatusBadRequest, "websocket upgrade: "+err.Error())
			return
		}
		defer conn.Close()

		logRequest("INFO", req, http.StatusSwitchingProtocols, fmt.Sprintf("'%s' opened play socket", acct.Name))

		for {
			msgType, data, err := conn.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					logRequest("WARN", req, http.StatusSwitchingProtocols, fmt.Sprintf("'%s' play socket: %s", acct.Name, err.Error()))
				}
				return
			}
			if msgType != websocket.TextMessage {
				continue
			}

			turn, err := api.Backend.PlayTurn(req.Context(), acct.ID, string(data))
			if err != nil {
				// the socket stays open; the client decides whether to go on
				r := result.FromError(err)
				logRequest("ERROR", req, r.Status, fmt.Sprintf("'%s' play socket: %s", acct.Name, r.Log))
				if err := conn.WriteJSON(r.Body); err != nil {
					return
				}
				continue
			}

			if err := conn.WriteJSON(turnModel(turn)); err != nil {
				return
			}

			if turn.Quit {
				msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "game over")
				conn.WriteMessage(websocket.CloseMessage, msg)
				logRequest("INFO", req, http.StatusSwitchingProtocols, fmt.Sprintf("'%s' ended the game on turn %d", acct.Name, turn.Sequence))
				return
			}
		}
	}
}
