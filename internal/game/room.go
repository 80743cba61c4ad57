// Package game implements the world model and the execution of player
// commands against it.
package game

// File room.go includes symbols for holding data on the rooms and exits between
// them.

import (
	"fmt"
	"strings"
)

// Room is a location in the game. It owns the exits leading out of it and the
// items, equipment, and features that are currently in it. Each collection is
// kept in insertion order.
type Room struct {
	Attrs

	Exits     []*Exit
	Items     []*Item
	Equipment []*Equipment
	Features  []*Feature
}

// NewRoom creates a new empty Room.
func NewRoom(id, name, description string) *Room {
	return &Room{
		Attrs: Attrs{
			ID:          id,
			Name:        name,
			Description: description,
		},
	}
}

func (room Room) String() string {
	var exits []string
	for _, ex := range room.Exits {
		exits = append(exits, ex.String())
	}
	exitsStr := strings.Join(exits, ", ")

	return fmt.Sprintf("Room<%s %q EXITS: %s>", room.ID, room.Name, exitsStr)
}

// AddExit adds an exit to the room.
func (room *Room) AddExit(ex *Exit) {
	room.Exits = append(room.Exits, ex)
}

// ExitByName returns the exit from the room with the given name, compared
// without regard to case. Hidden exits are returned as well. If there is no
// such exit, nil is returned.
func (room *Room) ExitByName(name string) *Exit {
	return findByName(room.Exits, name)
}

// ExitByID returns the exit with the given ID, or nil if it is not in the room.
func (room *Room) ExitByID(id string) *Exit {
	return findByID(room.Exits, id)
}

// AddItem adds an item to the room.
func (room *Room) AddItem(item *Item) {
	room.Items = append(room.Items, item)
}

// RemoveItem removes the given item from the room. If the item is not in the
// room, this has no effect.
func (room *Room) RemoveItem(item *Item) {
	room.Items = removeObject(room.Items, item)
}

// ItemByName returns the first item in the room with the given name, or nil if
// there is none.
func (room *Room) ItemByName(name string) *Item {
	return findByName(room.Items, name)
}

// ItemByID returns the item in the room with the given ID, or nil if there is
// none.
func (room *Room) ItemByID(id string) *Item {
	return findByID(room.Items, id)
}

// HasItem returns whether an item with the given name is in the room.
func (room *Room) HasItem(name string) bool {
	return room.ItemByName(name) != nil
}

// HasItemID returns whether the item with the given ID is in the room.
func (room *Room) HasItemID(id string) bool {
	return room.ItemByID(id) != nil
}

// AddEquipment adds equipment to the room.
func (room *Room) AddEquipment(eq *Equipment) {
	room.Equipment = append(room.Equipment, eq)
}

// RemoveEquipment removes the given equipment from the room. If it is not in
// the room, this has no effect.
func (room *Room) RemoveEquipment(eq *Equipment) {
	room.Equipment = removeObject(room.Equipment, eq)
}

// EquipmentByName returns the first equipment in the room with the given
// name, or nil if there is none.
func (room *Room) EquipmentByName(name string) *Equipment {
	return findByName(room.Equipment, name)
}

// EquipmentByID returns the equipment in the room with the given ID, or nil if
// there is none.
func (room *Room) EquipmentByID(id string) *Equipment {
	return findByID(room.Equipment, id)
}

// HasEquipment returns whether equipment with the given name is in the room.
func (room *Room) HasEquipment(name string) bool {
	return room.EquipmentByName(name) != nil
}

// HasEquipmentID returns whether the equipment with the given ID is in the
// room.
func (room *Room) HasEquipmentID(id string) bool {
	return room.EquipmentByID(id) != nil
}

// AddFeature adds a feature to the room.
func (room *Room) AddFeature(f *Feature) {
	room.Features = append(room.Features, f)
}

// FeatureByName returns the first feature in the room with the given name, or
// nil if there is none.
func (room *Room) FeatureByName(name string) *Feature {
	return findByName(room.Features, name)
}

// FeatureByID returns the feature in the room with the given ID, or nil if
// there is none.
func (room *Room) FeatureByID(id string) *Feature {
	return findByID(room.Features, id)
}

// HasFeature returns whether a feature with the given name is in the room.
func (room *Room) HasFeature(name string) bool {
	return room.FeatureByName(name) != nil
}

// Objects returns every object in the room: features, then equipment, then
// items, then exits.
func (room *Room) Objects() []Object {
	var all []Object
	for _, f := range room.Features {
		all = append(all, f)
	}
	for _, eq := range room.Equipment {
		all = append(all, eq)
	}
	for _, it := range room.Items {
		all = append(all, it)
	}
	for _, ex := range room.Exits {
		all = append(all, ex)
	}
	return all
}
