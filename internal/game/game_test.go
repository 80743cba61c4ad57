package game

import (
	"testing"

	"github.com/dekarrin/moonlight/internal/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestState builds a two-room world. The kitchen holds butter, cream, a key,
// a poster, a locked chest, and hidden eggs that the key reveals. The kitchen
// has a visible east exit, a hidden south exit, and a non-cardinal "up" exit,
// all of which lead to the storeroom.
func newTestState(t *testing.T) *State {
	kitchen := NewRoom("r1", "kitchen", "A cramped kitchen.")
	kitchen.AddFeature(&Feature{Attrs: Attrs{ID: "f1", Name: "poster", Description: "A poster on the wall."}})
	kitchen.AddFeature(&Feature{Attrs: Attrs{ID: "c1", Name: "chest", Description: "A locked chest."}, Container: true})
	kitchen.AddEquipment(&Equipment{
		Attrs: Attrs{ID: "q1", Name: "key", Description: "A rusty old key."},
		Use: UseInformation{
			Action:   "unlock",
			TargetID: "c1",
			ResultID: "i3",
			Message:  "The chest swings open.",
		},
	})
	kitchen.AddItem(&Item{Attrs: Attrs{ID: "i1", Name: "butter", Description: "A block of butter."}})
	kitchen.AddItem(&Item{Attrs: Attrs{ID: "i2", Name: "cream", Description: "A carton of cream."}})
	kitchen.AddItem(&Item{Attrs: Attrs{ID: "i3", Name: "eggs", Description: "A carton of eggs.", Hidden: true}})
	kitchen.AddExit(&Exit{Attrs: Attrs{ID: "e1", Name: "east", Description: "A door to the east."}, NextRoomID: "r2"})
	kitchen.AddExit(&Exit{Attrs: Attrs{ID: "e2", Name: "south", Description: "A trapdoor.", Hidden: true}, NextRoomID: "r2"})
	kitchen.AddExit(&Exit{Attrs: Attrs{ID: "e3", Name: "up", Description: "A ladder going up."}, NextRoomID: "r2"})

	storeroom := NewRoom("r2", "storeroom", "A dusty storeroom.")
	storeroom.AddExit(&Exit{Attrs: Attrs{ID: "e4", Name: "west", Description: "A door to the west."}, NextRoomID: "r1"})

	w, err := NewWorld("r1", kitchen, storeroom)
	require.NoError(t, err)

	gs, err := New(w, NewPlayer("Moonlight"))
	require.NoError(t, err)

	return gs
}

func Test_State_Execute_invalidCommands(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "empty", input: "", expect: "Invalid command: no command entered"},
		{name: "unknown keyword", input: "dance", expect: "Invalid command: invalid command"},
		{name: "move without direction", input: "move", expect: "Invalid command: no direction specified"},
		{name: "bad use", input: "use key", expect: "Invalid command: no equipment or target specified"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			gs := newTestState(t)

			actual := gs.Execute(tc.input)

			assert.Equal(tc.expect, actual)
			assert.Equal(StartingScore, gs.Player.Score)
			assert.Equal("r1", gs.World.CurrentRoomID())
		})
	}
}

func Test_State_Move(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expect      string
		expectRoom  string
		expectScore int
	}{
		{name: "visible cardinal exit", input: "move east", expect: "Moving towards east", expectRoom: "r2", expectScore: 9},
		{name: "case-insensitive", input: "MOVE East", expect: "Moving towards east", expectRoom: "r2", expectScore: 9},
		{name: "upper-case direction", input: "move EAST", expect: "Moving towards east", expectRoom: "r2", expectScore: 9},
		{name: "hidden exit", input: "move south", expect: "No exit found in that direction.", expectRoom: "r1", expectScore: 10},
		{name: "non-cardinal exit", input: "move up", expect: "No exit found in that direction.", expectRoom: "r1", expectScore: 10},
		{name: "no such exit", input: "move west", expect: "No exit found in that direction.", expectRoom: "r1", expectScore: 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			gs := newTestState(t)

			actual := gs.Execute(tc.input)

			assert.Equal(tc.expect, actual)
			assert.Equal(tc.expectRoom, gs.World.CurrentRoomID())
			assert.Equal(tc.expectScore, gs.Player.Score)
		})
	}
}

func Test_State_GetAndDrop_ownershipIsConserved(t *testing.T) {
	assert := assert.New(t)
	gs := newTestState(t)
	kitchen := gs.World.Room("r1")

	assert.Equal("You pick up: butter", gs.Execute("get butter"))
	assert.False(kitchen.HasItem("butter"))
	assert.True(gs.Player.HasItem("butter"))

	assert.Equal("No butter to get.", gs.Execute("get butter"))

	assert.Equal("You pick up: key", gs.Execute("get key"))
	assert.False(kitchen.HasEquipment("key"))
	assert.True(gs.Player.HasEquipment("key"))

	// drop in another room
	gs.Execute("move east")
	storeroom := gs.World.Room("r2")

	assert.Equal("You drop: butter", gs.Execute("drop butter"))
	assert.False(gs.Player.HasItem("butter"))
	assert.True(storeroom.HasItem("butter"))
	assert.False(kitchen.HasItem("butter"))

	assert.Equal("You drop: key", gs.Execute("drop KEY"))
	assert.True(storeroom.HasEquipment("key"))
	assert.Empty(gs.Player.Equipment)

	assert.Equal("You cannot drop butter", gs.Execute("drop butter"))
}

func Test_State_Get(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "item", input: "get cream", expect: "You pick up: cream"},
		{name: "item by other case", input: "get CREAM", expect: "You pick up: cream"},
		{name: "equipment by other case", input: "get Key", expect: "You pick up: key"},
		{name: "equipment", input: "get key", expect: "You pick up: key"},
		{name: "hidden item can still be taken", input: "get eggs", expect: "You pick up: eggs"},
		{name: "absent", input: "get sugar", expect: "No sugar to get."},
		{name: "feature cannot be taken", input: "get chest", expect: "No chest to get."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			gs := newTestState(t)

			assert.Equal(tc.expect, gs.Execute(tc.input))
		})
	}
}

func Test_State_Get_alreadyHave(t *testing.T) {
	assert := assert.New(t)
	gs := newTestState(t)

	gs.Player.AddItem(&Item{Attrs: Attrs{ID: "i9", Name: "butter", Description: "Another block of butter."}})

	assert.Equal("You already have butter", gs.Execute("get butter"))
	assert.True(gs.World.CurrentRoom().HasItem("butter"))
	assert.Len(gs.Player.Inventory, 1)
}

func Test_State_Look(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:  "room",
			input: "look room",
			expect: "A cramped kitchen.\nYou see:\n" +
				"A poster on the wall.\nA locked chest.\n" +
				"A rusty old key.\n" +
				"A block of butter.\nA carton of cream.\n" +
				"A door to the east.\nA ladder going up.\n",
		},
		{name: "exits", input: "look exits", expect: "The available exits are:\nA door to the east.\nA ladder going up.\n"},
		{name: "features", input: "LOOK Features", expect: "You also see:\nA poster on the wall.\nA locked chest.\n"},
		{name: "flavor key", input: "look key", expect: "A rusty old key."},
		{name: "flavor poster", input: "look POSTER", expect: "A poster with a peculiar acrostic poem - 'Dreaming Of Novel Unity Today'. You can safely assume that 'DONUT' is a code of some sort."},
		{name: "nothing to see", input: "look butter", expect: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			gs := newTestState(t)

			assert.Equal(tc.expect, gs.Execute(tc.input))
		})
	}
}

func Test_State_Use(t *testing.T) {
	assert := assert.New(t)
	gs := newTestState(t)
	kitchen := gs.World.Room("r1")

	assert.Equal("You do not have key", gs.Execute("use key on chest"))
	assert.Equal(StartingScore, gs.Player.Score)

	gs.Execute("get key")
	key := gs.Player.EquipmentByName("key")
	require.NotNil(t, key)

	assert.Equal("Invalid use target", gs.Execute("use key on table"))
	assert.Equal("Invalid use target", gs.Execute("use key on poster"))
	assert.Equal(Unused, key.Use.State())
	assert.Equal(StartingScore, gs.Player.Score)
	assert.NotContains(gs.Execute("look room"), "A carton of eggs.")

	assert.Equal("The chest swings open.", gs.Execute("use key with chest"))
	assert.Equal(Used, key.Use.State())
	assert.Equal(StartingScore+RewardPoints, gs.Player.Score)
	assert.False(kitchen.ItemByID("i3").Hidden)
	assert.Contains(gs.Execute("look room"), "A carton of eggs.")

	assert.Equal("You have already used key", gs.Execute("use key on chest"))
	assert.Equal(StartingScore+RewardPoints, gs.Player.Score)
	assert.Equal(Used, key.Use.State())
}

func Test_State_Use_revealsEquipment(t *testing.T) {
	assert := assert.New(t)
	gs := newTestState(t)
	kitchen := gs.World.Room("r1")

	kitchen.AddEquipment(&Equipment{Attrs: Attrs{ID: "q2", Name: "crowbar", Description: "A crowbar.", Hidden: true}})
	kitchen.EquipmentByName("key").Use.ResultID = "q2"

	gs.Execute("get key")
	gs.Execute("use key on chest")

	assert.False(kitchen.EquipmentByID("q2").Hidden)
	assert.Contains(gs.Execute("look room"), "A crowbar.")
}

func Test_State_Use_revealsExactID(t *testing.T) {
	assert := assert.New(t)
	gs := newTestState(t)
	kitchen := gs.World.Room("r1")

	// added first so that a case-insensitive match would find it first
	decoy := &Item{Attrs: Attrs{ID: "X1", Name: "flour", Description: "A sack of flour.", Hidden: true}}
	prize := &Item{Attrs: Attrs{ID: "x1", Name: "sugar", Description: "A bag of sugar.", Hidden: true}}
	kitchen.Items = append([]*Item{decoy, prize}, kitchen.Items...)
	kitchen.EquipmentByName("key").Use.ResultID = "x1"

	gs.Execute("get key")
	gs.Execute("use key on chest")

	assert.False(prize.Hidden)
	assert.True(decoy.Hidden)
	assert.Nil(kitchen.ItemByID("I1"))
	assert.Same(prize, kitchen.ItemByID("x1"))
}

func Test_State_Combine(t *testing.T) {
	testCases := []struct {
		name        string
		take        []string
		input       string
		expect      string
		expectScore int
		expectNames []string
	}{
		{
			name:        "butter and cream",
			take:        []string{"butter", "cream"},
			input:       "combine butter and cream",
			expect:      "You combine butter and cream to get buttercream",
			expectScore: 20,
			expectNames: []string{"buttercream"},
		},
		{
			name:        "cream and butter",
			take:        []string{"butter", "cream"},
			input:       "combine cream with butter",
			expect:      "You combine cream and butter to get buttercream",
			expectScore: 20,
			expectNames: []string{"buttercream"},
		},
		{
			name:        "missing one item",
			take:        []string{"butter"},
			input:       "combine butter and cream",
			expect:      "You do not have the required items",
			expectScore: 10,
			expectNames: []string{"butter"},
		},
		{
			name:        "same item twice",
			take:        []string{"butter"},
			input:       "combine butter and butter",
			expect:      "You do not have the required items",
			expectScore: 10,
			expectNames: []string{"butter"},
		},
		{
			name:        "no rule for pair",
			take:        []string{"butter", "eggs"},
			input:       "combine butter and eggs",
			expect:      "You do not have the required items",
			expectScore: 10,
			expectNames: []string{"butter", "eggs"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			gs := newTestState(t)

			for _, name := range tc.take {
				gs.Execute("get " + name)
			}

			actual := gs.Execute(tc.input)

			assert.Equal(tc.expect, actual)
			assert.Equal(tc.expectScore, gs.Player.Score)

			var names []string
			for _, it := range gs.Player.Inventory {
				names = append(names, it.Name)
			}
			assert.Equal(tc.expectNames, names)
		})
	}
}

func Test_State_Combine_resultIsVisible(t *testing.T) {
	assert := assert.New(t)
	gs := newTestState(t)

	gs.Execute("get butter")
	gs.Execute("get cream")
	gs.Execute("combine butter and cream")

	bc := gs.Player.ItemByName("buttercream")
	if !assert.NotNil(bc) {
		return
	}
	assert.Equal("i8", bc.ID)
	assert.False(bc.Hidden)
	assert.Equal("Buttercream you have made", gs.Execute("status buttercream"))
}

func Test_State_Status(t *testing.T) {
	testCases := []struct {
		name   string
		take   []string
		input  string
		expect string
	}{
		{name: "empty inventory", input: "status inventory", expect: ""},
		{name: "inventory", take: []string{"key", "butter", "cream"}, input: "status inventory", expect: "butter cream key"},
		{name: "score", input: "status score", expect: "10"},
		{name: "carried item", take: []string{"butter"}, input: "status butter", expect: "A block of butter."},
		{name: "carried equipment", take: []string{"key"}, input: "status KEY", expect: "A rusty old key."},
		{name: "item not carried", input: "status butter", expect: ""},
		{name: "unknown topic", input: "status weather", expect: ""},
		{
			name:   "player",
			take:   []string{"butter", "key"},
			input:  "status player",
			expect: "Player Name: Moonlight\nInventory:\nA block of butter.\nEquipment:\nA rusty old key.\nScore: 10",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			gs := newTestState(t)

			for _, name := range tc.take {
				gs.Execute("get " + name)
			}

			assert.Equal(tc.expect, gs.Execute(tc.input))
		})
	}
}

func Test_State_Status_congratulatesOnce(t *testing.T) {
	assert := assert.New(t)
	gs := newTestState(t)

	for i, name := range []string{"buttercream", "eggs", "syrup", "liquor", "sweets", "sugar"} {
		gs.Player.AddItem(&Item{Attrs: Attrs{ID: "x" + string(rune('a'+i)), Name: name, Description: name + "."}})
	}
	assert.True(gs.HasAllIngredients())

	first := gs.Execute("status player")
	assert.Contains(first, congratulationsMessage)
	assert.Contains(first, "Player Name: Moonlight")

	second := gs.Execute("status player")
	assert.NotContains(second, congratulationsMessage)
	assert.Equal(gs.Player.StatusBlock(), second)
}

func Test_State_Status_map(t *testing.T) {
	assert := assert.New(t)
	gs := newTestState(t)

	before := gs.Execute("status map")
	assert.Contains(before, "[*] [ ]")
	assert.Contains(before, "Kitchen")
	assert.Contains(before, "Storeroom")

	gs.Execute("move east")
	after := gs.Execute("status map")
	assert.Contains(after, "[ ] [*]")
}

func Test_State_Help(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "general", input: "help", expect: generalHelp},
		{name: "topic", input: "help combine", expect: "Combine two items into a new item"},
		{name: "topic any case", input: "help QUIT", expect: "Exit the game"},
		{name: "ingredients", input: "help ingredients", expect: "Ingredients list: eggs, syrup, liquor, sweets, sugar, buttercream"},
		{name: "unknown", input: "help dancing", expect: "No help available for the topic: dancing"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			gs := newTestState(t)

			assert.Equal(tc.expect, gs.Execute(tc.input))
		})
	}
}

func Test_State_Quit(t *testing.T) {
	assert := assert.New(t)
	gs := newTestState(t)

	gs.Execute("get butter")

	actual := gs.Advance(command.Command{Kind: command.Quit})

	assert.Equal("Game over: Your current status is: \nPlayer Name: Moonlight\nInventory:\nA block of butter.\nEquipment:\nScore: 10", actual)
	assert.Equal("r1", gs.World.CurrentRoomID())
	assert.Equal(StartingScore, gs.Player.Score)
}

func Test_State_butterAndCreamScenario(t *testing.T) {
	assert := assert.New(t)
	gs := newTestState(t)

	assert.Equal("You pick up: butter", gs.Execute("get butter"))
	assert.Equal("You pick up: cream", gs.Execute("get cream"))
	assert.Equal("10", gs.Execute("status score"))
	assert.Equal("You combine butter and cream to get buttercream", gs.Execute("combine butter and cream"))
	assert.Equal("20", gs.Execute("status score"))
	assert.Equal("buttercream", gs.Execute("status inventory"))
}

func Test_New(t *testing.T) {
	w, err := NewWorld("r1", NewRoom("r1", "room", "A room."))
	require.NoError(t, err)

	testCases := []struct {
		name      string
		world     *World
		player    *Player
		expectErr bool
	}{
		{name: "valid", world: w, player: NewPlayer("Moonlight")},
		{name: "nil world", player: NewPlayer("Moonlight"), expectErr: true},
		{name: "nil player", world: w, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			gs, err := New(tc.world, tc.player)
			if tc.expectErr {
				assert.Error(err)
				return
			}
			assert.NoError(err)
			assert.NotNil(gs)
		})
	}
}
