package mlw

import (
	"fmt"
	"strings"

	"github.com/dekarrin/moonlight/internal/game"
)

type stringSet map[string]bool

// worldSymbols is every ID defined in the world, so that references can be
// checked before anything is built.
type worldSymbols struct {
	roomIDs   stringSet
	objectIDs stringSet
}

func parseWorldData(top topLevelWorldData) (WorldData, error) {
	if strings.TrimSpace(top.Player.Name) == "" {
		return WorldData{}, fmt.Errorf("player: name must not be empty")
	}
	if len(top.Rooms) < 1 {
		return WorldData{}, fmt.Errorf("world must have at least one room")
	}

	// first, get all of our game symbols so we can immediately check validity
	// of every reference as we go through it.
	symbols, err := scanSymbols(top)
	if err != nil {
		return WorldData{}, err
	}

	start := top.World.Start
	if start == "" {
		start = top.Rooms[0].ID
	}
	if !symbols.roomIDs[start] {
		return WorldData{}, fmt.Errorf("world: start: no room with ID %q exists", start)
	}

	rooms := make([]*game.Room, len(top.Rooms))
	for i, r := range top.Rooms {
		if err := validateRoomDef(r, symbols); err != nil {
			return WorldData{}, fmt.Errorf("room %q: %w", r.ID, err)
		}
		rooms[i] = r.toGameRoom()
	}

	w, err := game.NewWorld(start, rooms...)
	if err != nil {
		return WorldData{}, err
	}

	return WorldData{
		World:  w,
		Player: game.NewPlayer(top.Player.Name),
	}, nil
}

// scanSymbols builds up a pre-list of every ID in the world so references can
// be checked later. IDs share a single namespace across every kind of object,
// so an error is returned if any ID is empty or is used more than once.
func scanSymbols(top topLevelWorldData) (worldSymbols, error) {
	syms := worldSymbols{
		roomIDs:   make(stringSet),
		objectIDs: make(stringSet),
	}

	claim := func(kind, id string) error {
		if id == "" {
			return fmt.Errorf("%s: ID must not be empty", kind)
		}
		if syms.objectIDs[id] {
			return fmt.Errorf("%s %q: duplicate ID; another object already has this ID", kind, id)
		}
		syms.objectIDs[id] = true
		return nil
	}

	for _, r := range top.Rooms {
		if err := claim("room", r.ID); err != nil {
			return syms, err
		}
		syms.roomIDs[r.ID] = true
	}

	for _, r := range top.Rooms {
		for _, ex := range r.Exits {
			if err := claim("exit", ex.ID); err != nil {
				return syms, fmt.Errorf("room %q: %w", r.ID, err)
			}
		}
		for _, it := range r.Items {
			if err := claim("item", it.ID); err != nil {
				return syms, fmt.Errorf("room %q: %w", r.ID, err)
			}
		}
		for _, eq := range r.Equipment {
			if err := claim("equipment", eq.ID); err != nil {
				return syms, fmt.Errorf("room %q: %w", r.ID, err)
			}
		}
		for _, f := range r.Features {
			if err := claim("feature", f.ID); err != nil {
				return syms, fmt.Errorf("room %q: %w", r.ID, err)
			}
		}
	}

	return syms, nil
}

func validateRoomDef(r room, symbols worldSymbols) error {
	if r.Name == "" {
		return fmt.Errorf("name must not be empty")
	}

	for _, ex := range r.Exits {
		if ex.Name == "" {
			return fmt.Errorf("exit %q: name must not be empty", ex.ID)
		}
		if !symbols.roomIDs[ex.Next] {
			return fmt.Errorf("exit %q: next room %q does not exist", ex.ID, ex.Next)
		}
	}

	for _, it := range r.Items {
		if it.Name == "" {
			return fmt.Errorf("item %q: name must not be empty", it.ID)
		}
	}

	for _, eq := range r.Equipment {
		if err := validateEquipmentDef(eq, symbols); err != nil {
			return fmt.Errorf("equipment %q: %w", eq.ID, err)
		}
	}

	for _, f := range r.Features {
		if f.Name == "" {
			return fmt.Errorf("feature %q: name must not be empty", f.ID)
		}
	}

	return nil
}

func validateEquipmentDef(eq equipment, symbols worldSymbols) error {
	if eq.Name == "" {
		return fmt.Errorf("name must not be empty")
	}

	if eq.Use.Target != "" && !symbols.objectIDs[eq.Use.Target] {
		return fmt.Errorf("use target %q does not exist", eq.Use.Target)
	}
	if eq.Use.Result != "" && !symbols.objectIDs[eq.Use.Result] {
		return fmt.Errorf("use result %q does not exist", eq.Use.Result)
	}

	return nil
}
