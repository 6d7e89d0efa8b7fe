package ebiteninput

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/canvasui/input"
)

// Dispatcher receives normalized input events. ui.Manager implements it.
type Dispatcher interface {
	OnKeyDown(e input.KeyEvent)
	OnKeyUp(e input.KeyEvent)
	OnMouseDown(e input.MouseEvent)
	OnMouseUp(e input.MouseEvent)
	OnMouseMove(e input.MouseEvent)
	OnFocusLost()
}

// Key repeat timing in ticks.
const (
	RepeatDelay    = 30
	RepeatInterval = 3
)

// Poller samples ebiten input state once per tick and forwards changes to a
// Dispatcher. Call Poll from Game.Update.
type Poller struct {
	lastX, lastY int
	havePos      bool
	focused      bool
	modifiers    input.ModifierDict
}

// NewPoller creates a poller. Keys in modifiers are never auto-repeated.
func NewPoller(modifiers input.ModifierDict) *Poller {
	if modifiers == nil {
		modifiers = input.DefaultModifierDict()
	}
	return &Poller{focused: true, modifiers: modifiers}
}

// Poll forwards this tick's input to d.
func (p *Poller) Poll(d Dispatcher) {
	focused := ebiten.IsFocused()
	if p.focused && !focused {
		d.OnFocusLost()
	}
	p.focused = focused

	x, y := ebiten.CursorPosition()
	ev := input.MouseEvent{X: float64(x), Y: float64(y)}
	if !p.havePos || x != p.lastX || y != p.lastY {
		p.lastX, p.lastY, p.havePos = x, y, true
		d.OnMouseMove(ev)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		d.OnMouseDown(ev)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		d.OnMouseUp(ev)
	}

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if code, ok := KeyCode(k); ok {
			d.OnKeyDown(input.KeyEvent{Code: code})
		}
	}
	for _, k := range inpututil.AppendPressedKeys(nil) {
		code, ok := KeyCode(k)
		if !ok {
			continue
		}
		if _, isMod := p.modifiers[code]; isMod {
			continue
		}
		if repeats(inpututil.KeyPressDuration(k)) {
			d.OnKeyDown(input.KeyEvent{Code: code})
		}
	}
	for _, k := range inpututil.AppendJustReleasedKeys(nil) {
		if code, ok := KeyCode(k); ok {
			d.OnKeyUp(input.KeyEvent{Code: code})
		}
	}
}

// repeats reports whether a key held for d ticks fires a repeat this tick.
func repeats(d int) bool {
	return d > RepeatDelay && (d-RepeatDelay)%RepeatInterval == 0
}
