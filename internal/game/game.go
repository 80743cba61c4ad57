package game

import (
	"fmt"
	"strings"

	"github.com/dekarrin/moonlight/internal/command"
	"github.com/dekarrin/moonlight/internal/mlerrors"
	"github.com/dekarrin/moonlight/internal/util"
)

// State is the game's entire state.
type State struct {
	// World is all rooms that exist and which one the player is in.
	World *World

	// Player is the player character and everything it carries.
	Player *Player

	// congratulated is whether the player has already been told that they
	// have every ingredient.
	congratulated bool
}

// New creates a new State from a loaded world and player. It returns an error
// if either is missing.
func New(world *World, player *Player) (*State, error) {
	if world == nil {
		return nil, fmt.Errorf("world is nil")
	}
	if player == nil {
		return nil, fmt.Errorf("player is nil")
	}
	if world.CurrentRoom() == nil {
		return nil, fmt.Errorf("world has no current room")
	}

	return &State{World: world, Player: player}, nil
}

// Execute runs a single line of player input against the game state and
// returns the text to show for it. If the line is not a valid command, the
// returned text describes why and the state is not changed.
func (gs *State) Execute(line string) string {
	cmd, err := command.ParseLine(line)
	if err != nil {
		return "Invalid command: " + mlerrors.GameMessage(err)
	}
	return gs.Advance(cmd)
}

// Advance advances the game state based on the given command and returns the
// outcome to show the player. Conditions in the world such as a missing item
// or a wrong target are reported in the outcome; they are never errors.
//
// Note that QUIT only produces the final status. It is up to the controlling
// engine to actually stop reading input.
func (gs *State) Advance(cmd command.Command) string {
	switch cmd.Kind {
	case command.Move:
		return gs.ExecuteCommandMove(cmd)
	case command.Get:
		return gs.ExecuteCommandGet(cmd)
	case command.Drop:
		return gs.ExecuteCommandDrop(cmd)
	case command.Look:
		return gs.ExecuteCommandLook(cmd)
	case command.Status:
		return gs.ExecuteCommandStatus(cmd)
	case command.Help:
		return gs.ExecuteCommandHelp(cmd)
	case command.Use:
		return gs.ExecuteCommandUse(cmd)
	case command.Combine:
		return gs.ExecuteCommandCombine(cmd)
	case command.Quit:
		return gs.ExecuteCommandQuit(cmd)
	default:
		return fmt.Sprintf("I don't know how to %s", cmd.Kind)
	}
}

// HasAllIngredients returns whether the player is carrying every ingredient
// needed to win.
func (gs *State) HasAllIngredients() bool {
	for _, name := range requiredIngredients {
		if !gs.Player.HasItem(name) {
			return false
		}
	}
	return true
}

// ExecuteCommandMove executes the MOVE command with the arguments in the
// provided Command and returns the output.
func (gs *State) ExecuteCommandMove(cmd command.Command) string {
	direction := cmd.Operand(0)

	ex := gs.World.CurrentRoom().ExitByName(direction)
	if ex == nil || ex.Hidden || !cardinalDirections[util.Fold(ex.Name)] {
		return "No exit found in that direction."
	}

	gs.World.SetCurrentRoom(ex.NextRoomID)
	gs.Player.Score -= MoveCost

	return "Moving towards " + strings.ToLower(ex.Name)
}

// ExecuteCommandGet executes the GET command with the arguments in the
// provided Command and returns the output. Items in the room are checked
// before equipment.
func (gs *State) ExecuteCommandGet(cmd command.Command) string {
	name := cmd.Operand(0)
	room := gs.World.CurrentRoom()

	if item := room.ItemByName(name); item != nil {
		if gs.Player.HasItem(name) {
			return "You already have " + name
		}
		room.RemoveItem(item)
		gs.Player.AddItem(item)
		return "You pick up: " + item.Name
	}

	if eq := room.EquipmentByName(name); eq != nil {
		if gs.Player.HasEquipment(name) {
			return "You already have " + name
		}
		room.RemoveEquipment(eq)
		gs.Player.AddEquipment(eq)
		return "You pick up: " + eq.Name
	}

	return "No " + name + " to get."
}

// ExecuteCommandDrop executes the DROP command with the arguments in the
// provided Command and returns the output.
func (gs *State) ExecuteCommandDrop(cmd command.Command) string {
	name := cmd.Operand(0)
	room := gs.World.CurrentRoom()

	if item := gs.Player.ItemByName(name); item != nil {
		gs.Player.RemoveItem(item)
		room.AddItem(item)
		return "You drop: " + item.Name
	}

	if eq := gs.Player.EquipmentByName(name); eq != nil {
		gs.Player.RemoveEquipment(eq)
		room.AddEquipment(eq)
		return "You drop: " + eq.Name
	}

	return "You cannot drop " + name
}

// ExecuteCommandLook executes the LOOK command with the arguments in the
// provided Command and returns the output. Hidden objects are never listed.
func (gs *State) ExecuteCommandLook(cmd command.Command) string {
	room := gs.World.CurrentRoom()

	switch util.Fold(cmd.Operand(0)) {
	case "room":
		var sb strings.Builder
		sb.WriteString(room.Description)
		sb.WriteString("\nYou see:\n")
		sb.WriteString(descriptionLines(visible(room.Features)))
		sb.WriteString(descriptionLines(visible(room.Equipment)))
		sb.WriteString(descriptionLines(visible(room.Items)))
		sb.WriteString(descriptionLines(visible(room.Exits)))
		return sb.String()
	case "exits":
		return "The available exits are:\n" + descriptionLines(visible(room.Exits))
	case "features":
		return "You also see:\n" + descriptionLines(visible(room.Features))
	default:
		return lookFlavorText[util.Fold(cmd.Operand(0))]
	}
}

// ExecuteCommandStatus executes the STATUS command with the arguments in the
// provided Command and returns the output. The reserved topics are checked
// before the names of carried things.
func (gs *State) ExecuteCommandStatus(cmd command.Command) string {
	topic := cmd.Operand(0)

	switch util.Fold(topic) {
	case "inventory":
		var names []string
		for _, item := range gs.Player.Inventory {
			names = append(names, item.Name)
		}
		for _, eq := range gs.Player.Equipment {
			names = append(names, eq.Name)
		}
		return strings.Join(names, " ")
	case "player":
		status := gs.Player.StatusBlock()
		if !gs.congratulated && gs.HasAllIngredients() {
			gs.congratulated = true
			status = congratulationsMessage + "\n\n" + status
		}
		return status
	case "map":
		return gs.World.RenderMap()
	case "score":
		return fmt.Sprintf("%d", gs.Player.Score)
	}

	if item := gs.Player.ItemByName(topic); item != nil {
		return item.Description
	}
	if eq := gs.Player.EquipmentByName(topic); eq != nil {
		return eq.Description
	}
	return ""
}

// ExecuteCommandHelp executes the HELP command with the arguments in the
// provided Command and returns the output.
func (gs *State) ExecuteCommandHelp(cmd command.Command) string {
	topic := cmd.Operand(0)
	if topic == "" {
		return generalHelp
	}

	text, ok := helpTopics[util.Fold(topic)]
	if !ok {
		return "No help available for the topic: " + topic
	}
	return text
}

// ExecuteCommandUse executes the USE command with the arguments in the
// provided Command and returns the output. Equipment can be tried on any
// feature as many times as the player likes, but only the first use on the
// correct target does anything.
func (gs *State) ExecuteCommandUse(cmd command.Command) string {
	eqName, targetName := cmd.Operand(0), cmd.Operand(1)
	room := gs.World.CurrentRoom()

	eq := gs.Player.EquipmentByName(eqName)
	if eq == nil {
		return "You do not have " + eqName
	}

	target := room.FeatureByName(targetName)
	if target == nil {
		return "Invalid use target"
	}

	switch eq.Use.Attempt(target.ID) {
	case UseAlreadyUsed:
		return "You have already used " + eqName
	case UseMismatched:
		return "Invalid use target"
	}

	if item := room.ItemByID(eq.Use.ResultID); item != nil {
		item.Reveal()
	} else if revealed := room.EquipmentByID(eq.Use.ResultID); revealed != nil {
		revealed.Reveal()
	}
	gs.Player.Score += RewardPoints

	return eq.Use.Message
}

// ExecuteCommandCombine executes the COMBINE command with the arguments in the
// provided Command and returns the output.
func (gs *State) ExecuteCommandCombine(cmd command.Command) string {
	name1, name2 := cmd.Operand(0), cmd.Operand(1)

	item1 := gs.Player.ItemByName(name1)
	item2 := gs.Player.ItemByName(name2)
	if item1 == nil || item2 == nil || item1 == item2 {
		return "You do not have the required items"
	}

	rule := findCombineRule(item1.Name, item2.Name)
	if rule == nil {
		return "You do not have the required items"
	}

	gs.Player.RemoveItem(item1)
	gs.Player.RemoveItem(item2)
	result := rule.Result.Copy()
	gs.Player.AddItem(result)
	gs.Player.Score += RewardPoints

	return fmt.Sprintf("You combine %s and %s to get %s", name1, name2, result.Name)
}

// ExecuteCommandQuit executes the QUIT command and returns the final status of
// the player. It does not change the game state.
func (gs *State) ExecuteCommandQuit(cmd command.Command) string {
	return "Game over: Your current status is: \n" + gs.Player.StatusBlock()
}
