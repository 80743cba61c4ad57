package mlw

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// legacyFieldSep splits the fields of a line in the line-based format. Both
// the record type and the fields are split on it.
var legacyFieldSep = regexp.MustCompile(`[:,]`)

// legacyFieldCounts is the number of fields each record type needs, including
// the record type itself.
var legacyFieldCounts = map[string]int{
	"player":    2,
	"map":       2,
	"room":      5,
	"item":      5,
	"container": 5,
	"equipment": 9,
	"exit":      6,
}

// LoadLegacy loads a world from the line-based world format. Each line is a
// record such as "room:r1,Shop,A small shop,false"; everything that follows a
// room record belongs to that room, and the first room is where the player
// starts. Lines that are not records are ignored.
func LoadLegacy(r io.Reader) (WorldData, error) {
	top, err := unmarshalLegacy(r)
	if err != nil {
		return WorldData{}, err
	}
	return parseWorldData(top)
}

func unmarshalLegacy(r io.Reader) (topLevelWorldData, error) {
	top := topLevelWorldData{Format: FormatName, Type: TypeData}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		parts := legacyFieldSep.Split(line, -1)
		kind := parts[0]
		need, ok := legacyFieldCounts[kind]
		if !ok || !strings.HasPrefix(line, kind+":") {
			continue
		}
		if len(parts) < need {
			return top, fmt.Errorf("line %d: %s: need %d fields but got %d", lineNo, kind, need-1, len(parts)-1)
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		if kind != "player" && kind != "map" && kind != "room" && len(top.Rooms) < 1 {
			return top, fmt.Errorf("line %d: %s: must come after a room", lineNo, kind)
		}

		// taken fresh each line; appending rooms may move the slice
		var cur *room
		if len(top.Rooms) > 0 {
			cur = &top.Rooms[len(top.Rooms)-1]
		}

		switch kind {
		case "player":
			top.Player.Name = parts[1]
		case "map":
			// only one map is supported; its ID is not used.
		case "room":
			top.Rooms = append(top.Rooms, room{
				ID:          parts[1],
				Name:        parts[2],
				Description: parts[3],
				Hidden:      legacyBool(parts[4]),
			})
			if top.World.Start == "" {
				top.World.Start = parts[1]
			}
		case "item":
			cur.Items = append(cur.Items, item{
				ID:          parts[1],
				Name:        parts[2],
				Description: parts[3],
				Hidden:      legacyBool(parts[4]),
			})
		case "container":
			cur.Features = append(cur.Features, feature{
				ID:          parts[1],
				Name:        parts[2],
				Description: parts[3],
				Hidden:      legacyBool(parts[4]),
				Container:   true,
			})
		case "equipment":
			cur.Equipment = append(cur.Equipment, equipment{
				ID:          parts[1],
				Name:        parts[2],
				Description: parts[3],
				Hidden:      legacyBool(parts[4]),
				Use: use{
					Action:  parts[5],
					Target:  parts[6],
					Result:  parts[7],
					Message: parts[8],
				},
			})
		case "exit":
			cur.Exits = append(cur.Exits, exit{
				ID:          parts[1],
				Name:        parts[2],
				Description: parts[3],
				Next:        parts[4],
				Hidden:      legacyBool(parts[5]),
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return top, err
	}

	return top, nil
}

// legacyBool is true only for "true" in any case; every other value is false.
func legacyBool(s string) bool {
	return strings.EqualFold(s, "true")
}
