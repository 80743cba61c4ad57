package game

// File object.go holds the attribute block shared by every thing in the world
// and the variant types built on it.

import (
	"fmt"
	"strings"

	"github.com/dekarrin/moonlight/internal/util"
)

// Object is anything in the world that has an identity and can be listed. It
// is implemented by *Item, *Equipment, *Feature, *Exit, and *Room.
type Object interface {
	// GetID returns the globally unique ID of the object.
	GetID() string

	// GetName returns the name the player uses to refer to the object. Names
	// are not guaranteed to be unique.
	GetName() string

	// GetDescription returns the text shown when the object is listed.
	GetDescription() string

	// IsHidden returns whether the object is left out of listings.
	IsHidden() bool
}

// Attrs is the block of attributes that every Object has.
type Attrs struct {
	// ID must be unique across the entire loaded world.
	ID string

	// Name is how the player refers to the object.
	Name string

	// Description is shown when the object is looked at or listed.
	Description string

	// Hidden objects are left out of LOOK and STATUS listings. It does not
	// prevent the object from being matched by name or ID.
	Hidden bool
}

func (a Attrs) GetID() string          { return a.ID }
func (a Attrs) GetName() string        { return a.Name }
func (a Attrs) GetDescription() string { return a.Description }
func (a Attrs) IsHidden() bool         { return a.Hidden }

// Reveal clears the hidden flag so the object shows up in listings.
func (a *Attrs) Reveal() {
	a.Hidden = false
}

func (a Attrs) String() string {
	return fmt.Sprintf("%s(%q)", a.ID, a.Name)
}

// Item is an object that can be carried, dropped, and combined.
type Item struct {
	Attrs
}

// Copy returns a copy of the Item that is a separate object.
func (item Item) Copy() *Item {
	return &Item{Attrs: item.Attrs}
}

func (item Item) String() string {
	return "Item" + item.Attrs.String()
}

// Feature is a fixed part of a room that equipment can be used on. It cannot be
// picked up.
type Feature struct {
	Attrs

	// Container is whether the feature is a container such as a chest or a
	// cabinet.
	Container bool
}

func (f Feature) String() string {
	if f.Container {
		return "Container" + f.Attrs.String()
	}
	return "Feature" + f.Attrs.String()
}

// Exit is a way out of a room into another one.
type Exit struct {
	Attrs

	// NextRoomID is the ID of the room that the exit leads to.
	NextRoomID string
}

func (ex Exit) String() string {
	return fmt.Sprintf("Exit(%q -> %s)", ex.Name, ex.NextRoomID)
}

// Equipment is a carryable object that can be used on a feature once.
type Equipment struct {
	Attrs

	// Use is how the equipment is used and whether it has been.
	Use UseInformation
}

func (eq Equipment) String() string {
	return "Equipment" + eq.Attrs.String()
}

// UseState is the state of a piece of equipment's one-time use.
type UseState int

const (
	Unused UseState = iota
	Used
)

func (us UseState) String() string {
	if us == Used {
		return "USED"
	}
	return "UNUSED"
}

// UseOutcome is the result of attempting to use a piece of equipment on a
// target.
type UseOutcome int

const (
	// UseMatched means the target was correct and the use has now happened.
	UseMatched UseOutcome = iota

	// UseMismatched means the target was wrong. Nothing changed.
	UseMismatched

	// UseAlreadyUsed means the equipment was used before. Nothing changed.
	UseAlreadyUsed
)

// UseInformation describes what happens when equipment is used. Its state
// goes from Unused to Used exactly once, the first time Attempt is called
// with the correct target, and never goes back.
type UseInformation struct {
	state UseState

	// Action is the verb describing the use, such as "open" or "unlock".
	Action string

	// TargetID is the ID of the feature that the equipment must be used on.
	TargetID string

	// ResultID is the ID of the object revealed by a successful use.
	ResultID string

	// Message is shown to the player after a successful use.
	Message string
}

// State returns whether the equipment has been used.
func (ui UseInformation) State() UseState {
	return ui.state
}

// IsUsed returns whether State is Used.
func (ui UseInformation) IsUsed() bool {
	return ui.state == Used
}

// Attempt tries to use the equipment on the object with the given ID. It is
// only when the ID equals TargetID that the state is latched to Used.
func (ui *UseInformation) Attempt(targetID string) UseOutcome {
	if ui.state == Used {
		return UseAlreadyUsed
	}
	if ui.TargetID != targetID {
		return UseMismatched
	}
	ui.state = Used
	return UseMatched
}

// findByName returns the first object in objs whose name matches name without
// regard to case. Returns the zero value of T if there is none.
func findByName[T Object](objs []T, name string) T {
	for _, o := range objs {
		if util.FoldEqual(o.GetName(), name) {
			return o
		}
	}
	var zero T
	return zero
}

// findByID returns the object in objs with exactly the given ID. Returns the
// zero value of T if there is none.
func findByID[T Object](objs []T, id string) T {
	for _, o := range objs {
		if o.GetID() == id {
			return o
		}
	}
	var zero T
	return zero
}

// removeObject removes the given object from objs by identity. If it is not
// in objs, objs is returned unchanged.
func removeObject[T comparable](objs []T, o T) []T {
	for i := range objs {
		if objs[i] == o {
			return append(objs[:i], objs[i+1:]...)
		}
	}
	return objs
}

// visible returns only the objects that are not hidden.
func visible[T Object](objs []T) []T {
	var shown []T
	for _, o := range objs {
		if !o.IsHidden() {
			shown = append(shown, o)
		}
	}
	return shown
}

// descriptionLines gives the description of each object, each followed by a
// newline.
func descriptionLines[T Object](objs []T) string {
	var sb strings.Builder
	for _, o := range objs {
		sb.WriteString(o.GetDescription())
		sb.WriteRune('\n')
	}
	return sb.String()
}
