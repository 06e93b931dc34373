package pin

import "strconv"

// Parse decodes a PIN token into an Identifier. It is total over all byte
// strings: every input yields either an Identifier or exactly one of the
// sentinel errors, with the first violated position determining the error.
//
// The length bound is checked on bytes, not characters, before any byte is
// inspected, so oversized multi-byte sequences are rejected up front.
func Parse(s string) (Identifier, error) {
	if len(s) == 0 {
		return Identifier{}, ErrEmptyInput
	}
	if len(s) > 3 {
		return Identifier{}, ErrInputTooLong
	}

	switch len(s) {
	case 1:
		if !isLetter(classTab[s[0]]) {
			return Identifier{}, ErrMustContainOneLetter
		}
		return letterIdentifier(s[0]), nil

	case 2:
		c0, c1 := classTab[s[0]], classTab[s[1]]
		switch {
		case isModifier(c0) && isLetter(c1):
			id := letterIdentifier(s[1])
			id.state = modifierState(c0)
			return id, nil
		case isLetter(c0) && c1 == classTerminal:
			id := letterIdentifier(s[0])
			id.terminal = true
			return id, nil
		case isLetter(c0):
			// The letter is present; the defect is whatever follows it.
			return Identifier{}, ErrInvalidTerminalMarker
		case isModifier(c0):
			// Modifier with no letter after it.
			return Identifier{}, ErrMustContainOneLetter
		default:
			// First byte should have been a letter or a state modifier.
			return Identifier{}, ErrInvalidStateModifier
		}

	default: // length 3
		c0, c1, c2 := classTab[s[0]], classTab[s[1]], classTab[s[2]]
		switch {
		case isModifier(c0) && isLetter(c1) && c2 == classTerminal:
			id := letterIdentifier(s[1])
			id.state = modifierState(c0)
			id.terminal = true
			return id, nil
		case isModifier(c0) && isLetter(c1):
			return Identifier{}, ErrInvalidTerminalMarker
		case isModifier(c0):
			return Identifier{}, ErrMustContainOneLetter
		case isLetter(c0):
			// A bare letter followed by two more bytes: the trailing bytes
			// can never form a valid terminal marker.
			return Identifier{}, ErrInvalidTerminalMarker
		default:
			return Identifier{}, ErrInvalidStateModifier
		}
	}
}

// MustParse is like Parse but panics on invalid input. It simplifies safe
// initialization of identifiers from literal tokens.
func MustParse(s string) Identifier {
	id, err := Parse(s)
	if err != nil {
		panic("pin: Parse(" + strconv.Quote(s) + "): " + err.Error())
	}
	return id
}

// IsValid reports whether s is a well-formed PIN token.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// letterIdentifier builds the identifier encoded by a single letter byte.
// The letter's case carries the side; the piece is always canonical upper.
func letterIdentifier(c byte) Identifier {
	if classTab[c] == classLower {
		return Identifier{piece: Piece(c - 'a' + 'A'), side: SecondPlayer}
	}
	return Identifier{piece: Piece(c), side: FirstPlayer}
}

// modifierState maps a modifier byte class to the state it encodes.
func modifierState(c byteClass) State {
	if c == classEnhance {
		return Enhanced
	}
	return Diminished
}
