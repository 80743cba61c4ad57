package game

import (
	"fmt"
	"log"
)

// World is every room in the game along with which one the player is in. Rooms
// are owned by the World and are looked up by ID.
type World struct {
	rooms     map[string]*Room
	order     []string
	currentID string
}

// NewWorld creates a World from the given rooms, in the order given. start is
// the ID of the room the player begins in. It returns an error if two rooms
// share an ID or if start does not name one of the rooms.
func NewWorld(start string, rooms ...*Room) (*World, error) {
	w := &World{
		rooms: make(map[string]*Room, len(rooms)),
	}

	for _, r := range rooms {
		if err := w.AddRoom(r); err != nil {
			return nil, err
		}
	}

	if _, ok := w.rooms[start]; !ok {
		return nil, fmt.Errorf("starting room with ID %q does not exist", start)
	}
	w.currentID = start

	return w, nil
}

// AddRoom adds a room to the world. It returns an error if a room with the same
// ID already exists.
func (w *World) AddRoom(r *Room) error {
	if r == nil {
		return fmt.Errorf("room is nil")
	}
	if _, ok := w.rooms[r.ID]; ok {
		return fmt.Errorf("room with ID %q already exists", r.ID)
	}
	w.rooms[r.ID] = r
	w.order = append(w.order, r.ID)
	return nil
}

// Room returns the room with the given ID, or nil if there is none.
func (w *World) Room(id string) *Room {
	return w.rooms[id]
}

// Rooms returns every room in the order they were added.
func (w *World) Rooms() []*Room {
	all := make([]*Room, len(w.order))
	for i, id := range w.order {
		all[i] = w.rooms[id]
	}
	return all
}

// CurrentRoomID returns the ID of the room the player is in.
func (w *World) CurrentRoomID() string {
	return w.currentID
}

// CurrentRoom returns the room the player is in.
func (w *World) CurrentRoom() *Room {
	return w.rooms[w.currentID]
}

// SetCurrentRoom moves the player to the room with the given ID. If there is no
// such room, a warning is logged and the current room does not change.
func (w *World) SetCurrentRoom(id string) {
	if _, ok := w.rooms[id]; !ok {
		log.Printf("WARN  No room with ID %q; staying in %q", id, w.currentID)
		return
	}
	w.currentID = id
}
