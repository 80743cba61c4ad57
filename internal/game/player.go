package game

import (
	"fmt"
	"strings"
)

const (
	// StartingScore is the score every player begins with.
	StartingScore = 10

	// MoveCost is taken from the score on every successful move.
	MoveCost = 1

	// RewardPoints is added to the score on a successful use or combine.
	RewardPoints = 10
)

// Player is the one character controlled by the user. It owns the items and
// equipment it carries.
type Player struct {
	Name      string
	Inventory []*Item
	Equipment []*Equipment
	Score     int
}

// NewPlayer creates a player with empty inventory and the starting score.
func NewPlayer(name string) *Player {
	return &Player{
		Name:  name,
		Score: StartingScore,
	}
}

func (p Player) String() string {
	return fmt.Sprintf("Player(%q, score=%d, items=%d, equipment=%d)", p.Name, p.Score, len(p.Inventory), len(p.Equipment))
}

// ItemByName returns the first carried item with the given name, or nil.
func (p *Player) ItemByName(name string) *Item {
	return findByName(p.Inventory, name)
}

// HasItem returns whether the player carries an item with the given name.
func (p *Player) HasItem(name string) bool {
	return p.ItemByName(name) != nil
}

// AddItem puts an item in the inventory.
func (p *Player) AddItem(item *Item) {
	p.Inventory = append(p.Inventory, item)
}

// RemoveItem takes the given item out of the inventory. If it is not there,
// this has no effect.
func (p *Player) RemoveItem(item *Item) {
	p.Inventory = removeObject(p.Inventory, item)
}

// EquipmentByName returns the first carried equipment with the given name, or
// nil.
func (p *Player) EquipmentByName(name string) *Equipment {
	return findByName(p.Equipment, name)
}

// HasEquipment returns whether the player carries equipment with the given
// name.
func (p *Player) HasEquipment(name string) bool {
	return p.EquipmentByName(name) != nil
}

// AddEquipment puts equipment in the player's possession.
func (p *Player) AddEquipment(eq *Equipment) {
	p.Equipment = append(p.Equipment, eq)
}

// RemoveEquipment takes the given equipment from the player. If the player
// does not have it, this has no effect.
func (p *Player) RemoveEquipment(eq *Equipment) {
	p.Equipment = removeObject(p.Equipment, eq)
}

// StatusBlock gives the full status of the player: name, the descriptions of
// everything carried, and score.
func (p *Player) StatusBlock() string {
	var sb strings.Builder

	sb.WriteString("Player Name: " + p.Name + "\n")
	sb.WriteString("Inventory:\n")
	sb.WriteString(descriptionLines(p.Inventory))
	sb.WriteString("Equipment:\n")
	sb.WriteString(descriptionLines(p.Equipment))
	sb.WriteString(fmt.Sprintf("Score: %d", p.Score))

	return sb.String()
}
