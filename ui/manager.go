package ui

import (
	"io"

	"github.com/OpticalFlyer/canvasui/input"
	"github.com/OpticalFlyer/canvasui/surface"
)

// Manager owns an ordered set of widgets and routes input events to them.
// Insertion order is dispatch order and paint order: later widgets are
// drawn on top.
//
// Pointer events are dispatched in two full passes. A mouse-down first
// deselects every Selectable and only then offers the click to every
// Clickable, so at most the widgets hit by this click stay selected. Mouse
// moves likewise dehover everything before offering the new position.
//
// Manager is not safe for concurrent use; call it from the event loop.
type Manager struct {
	widgets   []Widget
	chars     input.CharacterDict
	modifiers input.ModifierDict
	pressed   map[string]bool
}

// NewManager creates a Manager. Nil dictionaries fall back to the defaults
// from the input package.
func NewManager(chars input.CharacterDict, modifiers input.ModifierDict) *Manager {
	if chars == nil {
		chars = input.DefaultCharacterDict()
	}
	if modifiers == nil {
		modifiers = input.DefaultModifierDict()
	}
	return &Manager{
		widgets:   make([]Widget, 0),
		chars:     chars,
		modifiers: modifiers,
		pressed:   make(map[string]bool),
	}
}

// AddWidget appends w unless it is already managed.
func (m *Manager) AddWidget(w Widget) {
	for _, existing := range m.widgets {
		if existing == w {
			return
		}
	}
	m.widgets = append(m.widgets, w)
}

// RemoveWidget removes every occurrence of w. Removal ends the widget's
// life: if it implements io.Closer it is closed.
func (m *Manager) RemoveWidget(w Widget) {
	kept := m.widgets[:0]
	found := false
	for _, existing := range m.widgets {
		if existing == w {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	clear(m.widgets[len(kept):])
	m.widgets = kept
	if found {
		closeWidget(w)
	}
}

// Wipe removes and closes every widget.
func (m *Manager) Wipe() {
	for _, w := range m.widgets {
		closeWidget(w)
	}
	m.widgets = make([]Widget, 0)
}

func closeWidget(w Widget) {
	if c, ok := w.(io.Closer); ok {
		if err := c.Close(); err != nil {
			logger.Warn("closing widget", "err", err)
		}
	}
}

// Widgets returns a copy of the managed widgets in dispatch order.
func (m *Manager) Widgets() []Widget {
	out := make([]Widget, len(m.widgets))
	copy(out, m.widgets)
	return out
}

// ModifierPressed reports whether the named modifier is held.
func (m *Manager) ModifierPressed(name string) bool {
	return m.pressed[name]
}

// OnKeyDown classifies the key and dispatches it. A key is a character, a
// modifier, an arrow or backspace, checked in that order; only the first
// match is acted on.
func (m *Manager) OnKeyDown(e input.KeyEvent) {
	if pair, ok := m.chars[e.Code]; ok {
		ch := pair.Select(m.pressed[input.ModShift])
		logger.Debug("key down: character", "code", e.Code, "char", string(ch))
		for _, w := range m.widgets {
			if r, ok := w.(CharacterReceivable); ok {
				r.ReceiveCharacter(ch)
			}
		}
		return
	}

	if name, ok := m.modifiers[e.Code]; ok {
		logger.Debug("key down: modifier", "code", e.Code, "modifier", name)
		m.pressed[name] = true
		return
	}

	switch e.Code {
	case input.KeyLeft:
		m.moveCursor(Left)
	case input.KeyRight:
		m.moveCursor(Right)
	case input.KeyBackspace:
		logger.Debug("key down: backspace")
		for _, w := range m.widgets {
			if d, ok := w.(CharacterDeleter); ok {
				d.DeleteCharacter()
			}
		}
	}
}

func (m *Manager) moveCursor(dir Direction) {
	logger.Debug("key down: cursor move", "direction", dir)
	for _, w := range m.widgets {
		if c, ok := w.(CursorMovable); ok {
			c.ReceiveCursorMove(dir)
		}
	}
}

// OnKeyUp releases a modifier key.
func (m *Manager) OnKeyUp(e input.KeyEvent) {
	if name, ok := m.modifiers[e.Code]; ok {
		m.pressed[name] = false
	}
}

// OnFocusLost releases every modifier. Key-up events for keys released while
// the window was unfocused never arrive.
func (m *Manager) OnFocusLost() {
	for name := range m.pressed {
		m.pressed[name] = false
	}
}

// OnMouseDown deselects every widget, then offers the click to every widget.
func (m *Manager) OnMouseDown(e input.MouseEvent) {
	logger.Debug("mouse down", "x", e.X, "y", e.Y)
	for _, w := range m.widgets {
		if s, ok := w.(Selectable); ok {
			s.Deselect()
		}
	}
	for _, w := range m.widgets {
		if c, ok := w.(Clickable); ok {
			c.ReceiveClick(e.X, e.Y)
		}
	}
}

// OnMouseUp is accepted for symmetry with OnMouseDown; no widget reacts to
// button release.
func (m *Manager) OnMouseUp(e input.MouseEvent) {}

// OnMouseMove dehovers every widget, then offers the position to every
// widget.
func (m *Manager) OnMouseMove(e input.MouseEvent) {
	for _, w := range m.widgets {
		if h, ok := w.(Hoverable); ok {
			h.Dehover()
		}
	}
	for _, w := range m.widgets {
		if h, ok := w.(Hoverable); ok {
			h.ReceiveMouseOver(e.X, e.Y)
		}
	}
}

// Update runs per-tick housekeeping on every widget.
func (m *Manager) Update() {
	for _, w := range m.widgets {
		if u, ok := w.(Updater); ok {
			u.Update()
		}
	}
}

// Render draws every widget in collection order.
func (m *Manager) Render(dst surface.Surface) {
	for _, w := range m.widgets {
		if r, ok := w.(Renderable); ok {
			r.Render(dst)
		}
	}
}

// IsInteractingWithUI returns true if any widget holds keyboard focus.
func (m *Manager) IsInteractingWithUI() bool {
	for _, w := range m.widgets {
		if s, ok := w.(interface{ Selected() bool }); ok && s.Selected() {
			return true
		}
	}
	return false
}
