package input

// CharPair is the character a key produces without and with Shift held.
type CharPair struct {
	Unshifted rune
	Shifted   rune
}

// Select returns the shifted or unshifted character.
func (p CharPair) Select(shift bool) rune {
	if shift {
		return p.Shifted
	}
	return p.Unshifted
}

// CharacterDict maps key codes to the characters they type.
type CharacterDict map[int]CharPair

// ModifierDict maps key codes to modifier names.
type ModifierDict map[int]string

// DefaultCharacterDict returns a US keyboard layout.
func DefaultCharacterDict() CharacterDict {
	d := CharacterDict{
		KeySpace:        {' ', ' '},
		KeySemicolon:    {';', ':'},
		KeyEqual:        {'=', '+'},
		KeyComma:        {',', '<'},
		KeyMinus:        {'-', '_'},
		KeyPeriod:       {'.', '>'},
		KeySlash:        {'/', '?'},
		KeyBackquote:    {'`', '~'},
		KeyBracketLeft:  {'[', '{'},
		KeyBackslash:    {'\\', '|'},
		KeyBracketRight: {']', '}'},
		KeyQuote:        {'\'', '"'},
	}

	shiftedDigits := []rune(")!@#$%^&*(")
	for i := 0; i < 10; i++ {
		d[Key0+i] = CharPair{rune('0' + i), shiftedDigits[i]}
	}
	for i := 0; i < 26; i++ {
		d[KeyA+i] = CharPair{rune('a' + i), rune('A' + i)}
	}
	return d
}

// DefaultModifierDict returns the Shift, Control and Alt modifiers.
func DefaultModifierDict() ModifierDict {
	return ModifierDict{
		KeyShift:   ModShift,
		KeyControl: ModControl,
		KeyAlt:     ModAlt,
	}
}
