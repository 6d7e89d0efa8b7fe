package ui

import "github.com/OpticalFlyer/canvasui/surface"

// Widget is anything the Manager can hold. Every widget owns a bounding box
// that it re-anchors on each render. Widgets are compared by identity, so
// implementations must be pointer types.
type Widget interface {
	Bounds() BoundingBox
}

// Renderable widgets draw themselves onto a surface.
type Renderable interface {
	Render(dst surface.Surface)
}

// Hoverable widgets track whether the pointer is over them. ReceiveMouseOver
// only ever sets the hover flag; clearing it is done by Dehover.
type Hoverable interface {
	Dehover()
	ReceiveMouseOver(x, y float64)
}

// Clickable widgets react to pointer presses inside their bounds.
type Clickable interface {
	ReceiveClick(x, y float64)
}

// Selectable widgets hold keyboard focus until deselected.
type Selectable interface {
	Deselect()
}

// CursorMovable widgets have a text cursor moved by arrow keys.
type CursorMovable interface {
	ReceiveCursorMove(dir Direction)
}

// CharacterReceivable widgets accept typed characters.
type CharacterReceivable interface {
	ReceiveCharacter(ch rune)
}

// CharacterDeleter widgets delete the character before their cursor.
type CharacterDeleter interface {
	DeleteCharacter()
}

// Updater widgets have per-tick housekeeping, such as a blinking caret.
type Updater interface {
	Update()
}

// Direction is a horizontal cursor movement.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}
