package game

import (
	"fmt"
	"strings"

	"github.com/dekarrin/moonlight/internal/util"
	"github.com/dekarrin/rosed"
)

const (
	mapColumns = 5
	mapMinRows = 2
	mapWidth   = 80
)

// RenderMap draws a grid with one cell per room, in the order the rooms were
// loaded, followed by a legend of room names. The player's room is marked with
// an asterisk.
func (w *World) RenderMap() string {
	rooms := w.Rooms()

	rows := (len(rooms) + mapColumns - 1) / mapColumns
	if rows < mapMinRows {
		rows = mapMinRows
	}

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		cells := make([]string, mapColumns)
		for col := 0; col < mapColumns; col++ {
			idx := row*mapColumns + col
			switch {
			case idx >= len(rooms):
				cells[col] = "   "
			case rooms[idx].ID == w.currentID:
				cells[col] = "[*]"
			default:
				cells[col] = "[ ]"
			}
		}
		sb.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		sb.WriteRune('\n')
	}

	legend := make([][2]string, len(rooms))
	for i, r := range rooms {
		legend[i] = [2]string{fmt.Sprintf("%d", i+1), util.Title(r.Name)}
	}

	legendText := rosed.Edit("").
		WithOptions(rosed.Options{}.
			WithParagraphSeparator("\n").
			WithNoTrailingLineSeparators(true)).
		InsertDefinitionsTable(rosed.End, legend, mapWidth).
		String()

	return sb.String() + "\n" + legendText
}
