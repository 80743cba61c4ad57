package game

// File tables.go holds the fixed text and rule tables of the game.

import "github.com/dekarrin/moonlight/internal/util"

// cardinalDirections are the only exit names that MOVE will travel through.
var cardinalDirections = map[string]bool{
	"north": true,
	"south": true,
	"east":  true,
	"west":  true,
}

// lookFlavorText is the closed set of things that can be looked at that are
// not part of the room listing.
var lookFlavorText = map[string]string{
	"key":    "A rusty old key.",
	"poster": "A poster with a peculiar acrostic poem - 'Dreaming Of Novel Unity Today'. You can safely assume that 'DONUT' is a code of some sort.",
}

// requiredIngredients are the names of the items that the player must be
// carrying at once to finish the game.
var requiredIngredients = []string{"buttercream", "eggs", "syrup", "liquor", "sweets", "sugar"}

const congratulationsMessage = "Congratulations Moonlight. You have obtained all of the ingredients and have become a step closer to world peace."

const generalHelp = `Welcome to the game!
Commands:
- MOVE <exit name>: Move to a different location
- LOOK <room|exits|features>|<item name>: Look around the current room, at the exits, at the features, or at something specific
- GET <item name|equipment name>: Pick up an item or equipment from the current room
- DROP <item name|equipment name>: Drop an item or equipment from your inventory
- USE <equipment name> on|with <feature>: Use equipment in your inventory on a feature in the room
- STATUS <inventory|player|item name|equipment name|map|score>: Check your current status or inventory, get more information about something you carry, or display the map or your score
- HELP <topic>: Display this help information or get help on a specific topic
- COMBINE <item1> and <item2>: Combine two items into a new item
- QUIT: Exit the game

You need to collect these ingredients: eggs, syrup, liquor, sweets, sugar, buttercream`

// helpTopics maps lower-case help topics to their text.
var helpTopics = map[string]string{
	"move":        "MOVE Command: Use the 'move' command\nMove to a different location in a direction\nCan move north, south, east or west",
	"look":        "Look around the current room, at the exits, at the features, or at something specific",
	"get":         "Pick up an item or equipment from the current room",
	"drop":        "Drop an item or equipment from your inventory",
	"use":         "Use equipment in your inventory on a feature in the room",
	"status":      "Check your current status or inventory, get more information about something you carry, or display the map or your score",
	"help":        "Display this help information or get help on a specific topic",
	"combine":     "Combine two items into a new item",
	"quit":        "Exit the game",
	"ingredients": "Ingredients list: eggs, syrup, liquor, sweets, sugar, buttercream",
}

// CombineRule says that two items, given in either order, combine into a new
// item.
type CombineRule struct {
	// First and Second are the names of the two source items. Their order does
	// not matter.
	First  string
	Second string

	// Result is the definition of the item that is created.
	Result Item
}

// Matches returns whether the two names are the rule's pair, in either order.
func (cr CombineRule) Matches(name1, name2 string) bool {
	return (util.FoldEqual(cr.First, name1) && util.FoldEqual(cr.Second, name2)) ||
		(util.FoldEqual(cr.First, name2) && util.FoldEqual(cr.Second, name1))
}

// combineRules is the closed table of every combination that works.
var combineRules = []CombineRule{
	{
		First:  "butter",
		Second: "cream",
		Result: Item{Attrs: Attrs{
			ID:          "i8",
			Name:        "buttercream",
			Description: "Buttercream you have made",
		}},
	},
}

// findCombineRule returns the rule for the two names, or nil if none exists.
func findCombineRule(name1, name2 string) *CombineRule {
	for i := range combineRules {
		if combineRules[i].Matches(name1, name2) {
			return &combineRules[i]
		}
	}
	return nil
}
