package ui

import (
	"time"

	"github.com/OpticalFlyer/canvasui/surface"
)

var (
	_ Renderable          = (*TextField)(nil)
	_ Hoverable           = (*TextField)(nil)
	_ Clickable           = (*TextField)(nil)
	_ Selectable          = (*TextField)(nil)
	_ CursorMovable       = (*TextField)(nil)
	_ CharacterReceivable = (*TextField)(nil)
	_ CharacterDeleter    = (*TextField)(nil)
	_ Updater             = (*TextField)(nil)
)

const (
	caretVisible = '|'
	caretHidden  = ' '
)

// TextField is a single-line text input. A click inside it selects it;
// while selected it takes typed characters, arrow keys and backspace, and
// its caret blinks. onChange receives the full text after every edit.
//
// The cursor is an index into the text in [0, len(text)] and is re-clamped
// after every mutation.
type TextField struct {
	x, y     float64
	onChange func(text string)
	opts     TextFieldOptions
	bbox     BoundingBox

	text          []rune
	cursor        int
	selected      bool
	cursorVisible bool
	hover         bool

	// Caret blink timer. Ticks are drained by Update on the caller's
	// goroutine; stop releases the ticker.
	ticks <-chan time.Time
	stop  func()
}

func NewTextField(x, y float64, onChange func(text string), opts TextFieldOptions) *TextField {
	opts = opts.withDefaults()
	ticker := time.NewTicker(opts.CursorBlinkRate)
	f := &TextField{
		x:             x,
		y:             y,
		onChange:      onChange,
		opts:          opts,
		cursorVisible: true,
		ticks:         ticker.C,
		stop:          ticker.Stop,
	}
	f.bbox.Set(x, y, x+opts.Width, y+opts.Height)
	return f
}

func (f *TextField) Bounds() BoundingBox { return f.bbox }

func (f *TextField) SetPosition(x, y float64) {
	f.x, f.y = x, y
}

func (f *TextField) Text() string        { return string(f.text) }
func (f *TextField) Cursor() int         { return f.cursor }
func (f *TextField) Selected() bool      { return f.selected }
func (f *TextField) CursorVisible() bool { return f.cursorVisible }
func (f *TextField) Hovered() bool       { return f.hover }

// SetText replaces the text without notifying onChange. The cursor keeps its
// index, clamped to the new length.
func (f *TextField) SetText(text string) {
	f.text = []rune(text)
	f.clampCursor()
}

func (f *TextField) clampCursor() {
	if f.cursor < 0 {
		f.cursor = 0
	} else if f.cursor > len(f.text) {
		f.cursor = len(f.text)
	}
}

func (f *TextField) changed() {
	if f.onChange != nil {
		f.onChange(string(f.text))
	}
}

func (f *TextField) Deselect() {
	if f.selected {
		logger.Debug("text field deselected", "x", f.x, "y", f.y)
	}
	f.selected = false
}

func (f *TextField) Dehover() {
	f.hover = false
}

func (f *TextField) ReceiveClick(x, y float64) {
	if f.bbox.PointIntersects(x, y) {
		f.selected = true
		logger.Debug("text field selected", "x", f.x, "y", f.y)
	}
}

func (f *TextField) ReceiveMouseOver(x, y float64) {
	if f.bbox.PointIntersects(x, y) {
		f.hover = true
	}
}

func (f *TextField) ReceiveCursorMove(dir Direction) {
	if !f.selected {
		return
	}
	switch dir {
	case Left:
		f.cursor--
	case Right:
		f.cursor++
	}
	f.clampCursor()
}

// DeleteCharacter removes the character before the cursor. It does nothing
// at the start of the text.
func (f *TextField) DeleteCharacter() {
	if !f.selected || f.cursor <= 0 {
		return
	}
	f.clampCursor()
	f.text = append(f.text[:f.cursor-1], f.text[f.cursor:]...)
	f.cursor--
	f.clampCursor()
	f.changed()
}

// ReceiveCharacter inserts ch before the cursor and advances the cursor.
func (f *TextField) ReceiveCharacter(ch rune) {
	if !f.selected {
		return
	}
	f.clampCursor()
	text := make([]rune, 0, len(f.text)+1)
	text = append(text, f.text[:f.cursor]...)
	text = append(text, ch)
	text = append(text, f.text[f.cursor:]...)
	f.text = text
	f.cursor++
	f.clampCursor()
	f.changed()
}

// Update toggles the caret once per elapsed blink period while selected.
func (f *TextField) Update() {
	for {
		select {
		case <-f.ticks:
			if f.selected {
				f.cursorVisible = !f.cursorVisible
			}
		default:
			return
		}
	}
}

// Close stops the blink timer. It is safe to call more than once.
func (f *TextField) Close() error {
	if f.stop != nil {
		f.stop()
		f.stop = nil
	}
	f.ticks = nil
	return nil
}

// padding is the gap between the outline and the text on each side.
func (f *TextField) padding() float64 {
	return (f.opts.Height - f.opts.FontSize) / 2
}

func (f *TextField) textStyle() surface.TextStyle {
	return surface.TextStyle{
		Size:     f.opts.FontSize,
		Font:     f.opts.Font,
		Align:    surface.AlignLeft,
		Baseline: surface.BaselineMiddle,
	}
}

// displayText returns the string drawn inside the field: the text with the
// caret glyph at the cursor while selected, trimmed to the interior width.
func (f *TextField) displayText(dst surface.Surface) string {
	shown := f.text
	if f.selected {
		caret := caretVisible
		if !f.cursorVisible {
			caret = caretHidden
		}
		shown = make([]rune, 0, len(f.text)+1)
		shown = append(shown, f.text[:f.cursor]...)
		shown = append(shown, caret)
		shown = append(shown, f.text[f.cursor:]...)
	}

	st := f.textStyle()
	return clipToWidth(shown, f.cursor, f.opts.Width-f.padding()*2, func(s string) float64 {
		return dst.MeasureTextWidth(s, st)
	})
}

// clipToWidth drops runes from whichever end of s is farther from cursor
// until the measured width fits maxWidth. It never modifies s.
func clipToWidth(s []rune, cursor int, maxWidth float64, measure func(string) float64) string {
	for len(s) > 0 && measure(string(s)) > maxWidth {
		if len(s)-cursor < cursor {
			s = s[1:]
			cursor--
		} else {
			s = s[:len(s)-1]
		}
	}
	return string(s)
}

func (f *TextField) Render(dst surface.Surface) {
	o := f.opts
	f.bbox.Set(f.x, f.y, f.x+o.Width, f.y+o.Height)

	outline := o.OutlineColor
	if f.hover {
		outline = o.HoverOutlineColor
	}

	shown := f.displayText(dst)
	dst.DrawRect(f.x, f.y, o.Width, o.Height, false, o.OutlineLineWidth, outline)
	dst.DrawText(f.x+f.padding(), f.y+o.Height/2, o.FontColor, shown, f.textStyle())
}
