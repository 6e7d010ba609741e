package components

import (
	"strings"

	"ebiten-pathsim/ecs"
)

// Registry holds the typed handle for every component kind of a World.
// Systems keep a *Registry instead of looking handles up per frame.
type Registry struct {
	Transform *ecs.Component[Transform]
	Motion    *ecs.Component[Motion]
	Color     *ecs.Component[Color]
	Sprite    *ecs.Component[Sprite]
	Path      *ecs.Component[Path]
	Name      *ecs.Component[Name]
}

// Register registers every component kind with w, in ID order. Call it once
// per World, before any other component registration.
func Register(w *ecs.World) *Registry {
	r := &Registry{
		Transform: ecs.RegisterComponent[Transform](w, "Transform"),
		Motion:    ecs.RegisterComponent[Motion](w, "Motion"),
		Color:     ecs.RegisterComponent[Color](w, "Color"),
		Sprite:    ecs.RegisterComponent[Sprite](w, "Sprite"),
		Path:      ecs.RegisterComponent[Path](w, "Path"),
		Name:      ecs.RegisterComponent[Name](w, "Name"),
	}

	if r.Transform.ID() != TransformID || r.Name.ID() != NameID {
		ecs.Violate("components.Register", "world already had components registered")
	}
	return r
}

// componentNameMap maps string component names to their IDs
var componentNameMap = map[string]ecs.ComponentType{
	"Transform": TransformID,
	"Motion":    MotionID,
	"Color":     ColorID,
	"Sprite":    SpriteID,
	"Path":      PathID,
	"Name":      NameID,
}

// GetComponentIDByName returns the ComponentType for a given component name string
// The lookup is case-insensitive
func GetComponentIDByName(name string) (ecs.ComponentType, bool) {
	// Try exact match first
	if id, exists := componentNameMap[name]; exists {
		return id, true
	}

	// Try case-insensitive match
	for compName, id := range componentNameMap {
		if strings.EqualFold(compName, name) {
			return id, true
		}
	}

	return 0, false
}
