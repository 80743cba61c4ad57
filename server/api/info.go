package api

import (
	"net/http"

	"github.com/dekarrin/moonlight/internal/version"
	"github.com/dekarrin/moonlight/server/middle"
	"github.com/dekarrin/moonlight/server/result"
	"github.com/dekarrin/rosed"
)

// commandUsage is the syntax of each command and what it does.
var commandUsage = [][2]string{
	{"MOVE <direction>", "Move north, south, east or west"},
	{"LOOK <room|exits|features|name>", "Describe your surroundings"},
	{"GET <item|equipment>", "Pick something up"},
	{"DROP <item|equipment>", "Put something down"},
	{"USE <equipment> ON <feature>", "Use equipment on something in the room"},
	{"COMBINE <item> WITH <item>", "Make a new item from two others"},
	{"STATUS <inventory|player|map|score|name>", "Check on yourself"},
	{"HELP <topic>", "Get help on a command"},
	{"QUIT", "End the game"},
}

// commandTable renders commandUsage as a plain-text table.
func commandTable() string {
	return rosed.Edit("").
		WithOptions(rosed.Options{}.WithParagraphSeparator("\n").WithNoTrailingLineSeparators(true)).
		InsertDefinitionsTable(rosed.End, commandUsage, 80).
		String()
}

// HTTPGetInfo returns a HandlerFunc that retrieves information on the API and
// server. Logged-in clients also get the state of the hosted game.
func (api API) HTTPGetInfo() http.HandlerFunc {
	return api.endpoint(api.epGetInfo)
}

func (api API) epGetInfo(req *http.Request) result.Result {
	var resp InfoModel
	resp.Version.Server = version.ServerCurrent
	resp.Version.Moonlight = version.Current
	resp.Commands = commandTable()

	acct, loggedIn := middle.Account(req)
	if !loggedIn {
		return result.OK(resp, "unauthed client got API info")
	}

	st := api.Backend.Status()
	resp.Game = &GameModel{
		Room:     st.RoomID,
		RoomName: st.RoomName,
		Score:    st.Score,
		Over:     st.Over,
	}
	return result.OK(resp, "'%s' got API and game info", acct.Name)
}
