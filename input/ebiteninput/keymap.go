// Package ebiteninput translates ebiten keyboard and mouse state into the
// normalized events of the input package.
package ebiteninput

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/canvasui/input"
)

var keyCodes = map[ebiten.Key]int{
	ebiten.KeyBackspace:    input.KeyBackspace,
	ebiten.KeyTab:          input.KeyTab,
	ebiten.KeyEnter:        input.KeyEnter,
	ebiten.KeyShiftLeft:    input.KeyShift,
	ebiten.KeyShiftRight:   input.KeyShift,
	ebiten.KeyControlLeft:  input.KeyControl,
	ebiten.KeyControlRight: input.KeyControl,
	ebiten.KeyAltLeft:      input.KeyAlt,
	ebiten.KeyAltRight:     input.KeyAlt,
	ebiten.KeyEscape:       input.KeyEscape,
	ebiten.KeySpace:        input.KeySpace,
	ebiten.KeyArrowLeft:    input.KeyLeft,
	ebiten.KeyArrowUp:      input.KeyUp,
	ebiten.KeyArrowRight:   input.KeyRight,
	ebiten.KeyArrowDown:    input.KeyDown,
	ebiten.KeyDelete:       input.KeyDelete,
	ebiten.KeySemicolon:    input.KeySemicolon,
	ebiten.KeyEqual:        input.KeyEqual,
	ebiten.KeyComma:        input.KeyComma,
	ebiten.KeyMinus:        input.KeyMinus,
	ebiten.KeyPeriod:       input.KeyPeriod,
	ebiten.KeySlash:        input.KeySlash,
	ebiten.KeyBackquote:    input.KeyBackquote,
	ebiten.KeyBracketLeft:  input.KeyBracketLeft,
	ebiten.KeyBackslash:    input.KeyBackslash,
	ebiten.KeyBracketRight: input.KeyBracketRight,
	ebiten.KeyQuote:        input.KeyQuote,
}

func init() {
	letters := []ebiten.Key{
		ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG, ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN, ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU, ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
	}
	for i, k := range letters {
		keyCodes[k] = input.KeyA + i
	}
	digits := []ebiten.Key{
		ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
	for i, k := range digits {
		keyCodes[k] = input.Key0 + i
	}
}

// KeyCode returns the numeric key code for an ebiten key.
func KeyCode(k ebiten.Key) (int, bool) {
	code, ok := keyCodes[k]
	return code, ok
}
