// Package input holds the normalized input events consumed by the widget
// manager, and the key-code dictionaries used to classify key presses.
package input

// KeyEvent is a key press or release identified by a numeric key code.
type KeyEvent struct {
	Code int
}

// MouseEvent is a pointer event in surface-local coordinates.
type MouseEvent struct {
	X, Y float64
}

// Key codes. The numbering matches the DOM keyCode values the character and
// modifier dictionaries are keyed on.
const (
	KeyBackspace = 8
	KeyTab       = 9
	KeyEnter     = 13
	KeyShift     = 16
	KeyControl   = 17
	KeyAlt       = 18
	KeyEscape    = 27
	KeySpace     = 32
	KeyLeft      = 37
	KeyUp        = 38
	KeyRight     = 39
	KeyDown      = 40
	KeyDelete    = 46

	Key0 = 48
	KeyA = 65

	KeySemicolon    = 186
	KeyEqual        = 187
	KeyComma        = 188
	KeyMinus        = 189
	KeyPeriod       = 190
	KeySlash        = 191
	KeyBackquote    = 192
	KeyBracketLeft  = 219
	KeyBackslash    = 220
	KeyBracketRight = 221
	KeyQuote        = 222
)

// Modifier names stored in a ModifierDict.
const (
	ModShift   = "Shift"
	ModControl = "Control"
	ModAlt     = "Alt"
)
