package mlw

import (
	"github.com/dekarrin/moonlight/internal/game"
)

// topLevelWorldData is the top-level structure containing all keys in a
// complete MLW 'DATA' type file.
type topLevelWorldData struct {
	Format string `toml:"format" yaml:"format"`
	Type   string `toml:"type" yaml:"type"`
	World  world  `toml:"world" yaml:"world"`
	Player player `toml:"player" yaml:"player"`
	Rooms  []room `toml:"room" yaml:"room"`
}

type world struct {
	// Start is the ID of the room the player starts in. If empty, the first
	// room is used.
	Start string `toml:"start" yaml:"start"`
}

type player struct {
	Name string `toml:"name" yaml:"name"`
}

type room struct {
	ID          string      `toml:"id" yaml:"id"`
	Name        string      `toml:"name" yaml:"name"`
	Description string      `toml:"description" yaml:"description"`
	Hidden      bool        `toml:"hidden" yaml:"hidden"`
	Exits       []exit      `toml:"exit" yaml:"exit"`
	Items       []item      `toml:"item" yaml:"item"`
	Equipment   []equipment `toml:"equipment" yaml:"equipment"`
	Features    []feature   `toml:"feature" yaml:"feature"`
}

func (r room) toGameRoom() *game.Room {
	gr := game.NewRoom(r.ID, r.Name, r.Description)
	gr.Hidden = r.Hidden

	for _, f := range r.Features {
		gr.AddFeature(f.toGameFeature())
	}
	for _, eq := range r.Equipment {
		gr.AddEquipment(eq.toGameEquipment())
	}
	for _, it := range r.Items {
		gr.AddItem(it.toGameItem())
	}
	for _, ex := range r.Exits {
		gr.AddExit(ex.toGameExit())
	}

	return gr
}

type exit struct {
	ID          string `toml:"id" yaml:"id"`
	Name        string `toml:"name" yaml:"name"`
	Description string `toml:"description" yaml:"description"`
	Hidden      bool   `toml:"hidden" yaml:"hidden"`
	Next        string `toml:"next" yaml:"next"`
}

func (ex exit) toGameExit() *game.Exit {
	return &game.Exit{
		Attrs:      game.Attrs{ID: ex.ID, Name: ex.Name, Description: ex.Description, Hidden: ex.Hidden},
		NextRoomID: ex.Next,
	}
}

type item struct {
	ID          string `toml:"id" yaml:"id"`
	Name        string `toml:"name" yaml:"name"`
	Description string `toml:"description" yaml:"description"`
	Hidden      bool   `toml:"hidden" yaml:"hidden"`
}

func (it item) toGameItem() *game.Item {
	return &game.Item{
		Attrs: game.Attrs{ID: it.ID, Name: it.Name, Description: it.Description, Hidden: it.Hidden},
	}
}

type use struct {
	Action  string `toml:"action" yaml:"action"`
	Target  string `toml:"target" yaml:"target"`
	Result  string `toml:"result" yaml:"result"`
	Message string `toml:"message" yaml:"message"`
}

type equipment struct {
	ID          string `toml:"id" yaml:"id"`
	Name        string `toml:"name" yaml:"name"`
	Description string `toml:"description" yaml:"description"`
	Hidden      bool   `toml:"hidden" yaml:"hidden"`
	Use         use    `toml:"use" yaml:"use"`
}

func (eq equipment) toGameEquipment() *game.Equipment {
	return &game.Equipment{
		Attrs: game.Attrs{ID: eq.ID, Name: eq.Name, Description: eq.Description, Hidden: eq.Hidden},
		Use: game.UseInformation{
			Action:   eq.Use.Action,
			TargetID: eq.Use.Target,
			ResultID: eq.Use.Result,
			Message:  eq.Use.Message,
		},
	}
}

type feature struct {
	ID          string `toml:"id" yaml:"id"`
	Name        string `toml:"name" yaml:"name"`
	Description string `toml:"description" yaml:"description"`
	Hidden      bool   `toml:"hidden" yaml:"hidden"`
	Container   bool   `toml:"container" yaml:"container"`
}

func (f feature) toGameFeature() *game.Feature {
	return &game.Feature{
		Attrs:     game.Attrs{ID: f.ID, Name: f.Name, Description: f.Description, Hidden: f.Hidden},
		Container: f.Container,
	}
}
