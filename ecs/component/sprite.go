package component

import "image/color"

// Sprite is the visual presence of an entity. Drawing is done by the debug
// renderer from collider geometry, tinted with Color.
type Sprite struct {
	Color      color.Color
	Hidden     bool
	FacingLeft bool
}

var SpriteComponent = NewComponent[Sprite]()
