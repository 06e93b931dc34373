// Package pin implements Piece Identifier Notation (PIN): a 1-3 byte ASCII
// token encoding a game piece's type, side, state, and terminal status.
//
// The wire format is [state-marker] letter [terminal-marker] where the state
// marker is '+' (enhanced) or '-' (diminished), the letter's case carries the
// side (uppercase = first player), and a trailing '^' marks a terminal piece.
// Only the 62 bytes A-Z, a-z, '+', '-', '^' may appear anywhere in a token.
package pin

// Piece represents a piece type, held as its canonical upper-case letter.
// The letter's case on the wire carries the Side, never the Piece.
type Piece byte

// The 26 piece type values.
const (
	PieceA Piece = 'A' + iota
	PieceB
	PieceC
	PieceD
	PieceE
	PieceF
	PieceG
	PieceH
	PieceI
	PieceJ
	PieceK
	PieceL
	PieceM
	PieceN
	PieceO
	PieceP
	PieceQ
	PieceR
	PieceS
	PieceT
	PieceU
	PieceV
	PieceW
	PieceX
	PieceY
	PieceZ
)

// Valid reports whether p is one of the 26 canonical piece values.
func (p Piece) Valid() bool {
	return p >= PieceA && p <= PieceZ
}

// String returns the canonical upper-case letter of the piece.
func (p Piece) String() string {
	if !p.Valid() {
		return "?"
	}
	return string(rune(p))
}

// Side represents which of the two players a piece belongs to.
type Side int

const (
	FirstPlayer Side = iota
	SecondPlayer
)

// String returns the string representation of a side.
func (s Side) String() string {
	switch s {
	case FirstPlayer:
		return "First"
	case SecondPlayer:
		return "Second"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	if s == FirstPlayer {
		return SecondPlayer
	}
	return FirstPlayer
}

// Valid reports whether s is one of the two defined sides.
func (s Side) Valid() bool {
	return s == FirstPlayer || s == SecondPlayer
}

// State represents a piece's enhancement status. Exactly one state holds at
// a time; Normal has no wire marker.
type State int

const (
	Normal State = iota
	Enhanced
	Diminished
)

// stateNames maps states to their string representations.
var stateNames = [...]string{
	Normal:     "Normal",
	Enhanced:   "Enhanced",
	Diminished: "Diminished",
}

// String returns the string representation of a state.
func (s State) String() string {
	if s.Valid() {
		return stateNames[s]
	}
	return "Unknown"
}

// Valid reports whether s is one of the three defined states.
func (s State) Valid() bool {
	return s >= Normal && s <= Diminished
}

// Wire format marker bytes.
const (
	EnhancedMarker   = '+'
	DiminishedMarker = '-'
	TerminalMarker   = '^'
)

// byteClass is the classification of a single input byte. Every byte value
// belongs to exactly one class, independent of its position in the token.
type byteClass int

const (
	classInvalid byteClass = iota
	classUpper
	classLower
	classEnhance
	classDiminish
	classTerminal
)

// Byte classification table. Classification is over raw bytes, never decoded
// runes: every byte of a multi-byte UTF-8 sequence is outside the five
// recognized classes, so lookalike characters and combining marks are
// rejected without any Unicode handling.
var classTab [256]byteClass

func init() {
	initClassTab()
}

// initClassTab initializes the byte classification table. Bytes not assigned
// here keep the zero value classInvalid.
func initClassTab() {
	for c := byte('A'); c <= 'Z'; c++ {
		classTab[c] = classUpper
		classTab[c+'a'-'A'] = classLower
	}
	classTab[EnhancedMarker] = classEnhance
	classTab[DiminishedMarker] = classDiminish
	classTab[TerminalMarker] = classTerminal
}

// isLetter reports whether the class is an upper- or lower-case letter.
func isLetter(c byteClass) bool {
	return c == classUpper || c == classLower
}

// isModifier reports whether the class is a state modifier.
func isModifier(c byteClass) bool {
	return c == classEnhance || c == classDiminish
}
