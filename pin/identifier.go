package pin

// Identifier is the validated aggregate of a piece's type, side, state, and
// terminal status. It is an immutable value type: every transformation
// returns a new Identifier, and two Identifiers are equal (==) iff all four
// fields are equal. Identifiers are safe to share across goroutines.
type Identifier struct {
	piece    Piece
	side     Side
	state    State
	terminal bool
}

// New creates an Identifier, validating each field independently. The
// returned error is a *FieldError naming the first invalid field.
func New(piece Piece, side Side, state State, terminal bool) (Identifier, error) {
	if !piece.Valid() {
		return Identifier{}, invalidField("piece", piece)
	}
	if !side.Valid() {
		return Identifier{}, invalidField("side", side)
	}
	if !state.Valid() {
		return Identifier{}, invalidField("state", state)
	}
	return Identifier{piece: piece, side: side, state: state, terminal: terminal}, nil
}

// NewSimple creates a normal, non-terminal Identifier.
func NewSimple(piece Piece, side Side) (Identifier, error) {
	return New(piece, side, Normal, false)
}

// Piece returns the canonical upper-case piece type.
func (id Identifier) Piece() Piece { return id.piece }

// Side returns which player the piece belongs to.
func (id Identifier) Side() Side { return id.side }

// State returns the piece's enhancement state.
func (id Identifier) State() State { return id.state }

// Terminal reports whether the piece is in its terminal condition.
func (id Identifier) Terminal() bool { return id.terminal }

// String renders the identifier as its wire token. It is the exact left
// inverse of Parse: MustParse(id.String()) == id for every valid id.
func (id Identifier) String() string {
	buf := make([]byte, 0, 3)
	switch id.state {
	case Enhanced:
		buf = append(buf, EnhancedMarker)
	case Diminished:
		buf = append(buf, DiminishedMarker)
	}
	letter := byte(id.piece)
	if id.side == SecondPlayer {
		letter += 'a' - 'A'
	}
	buf = append(buf, letter)
	if id.terminal {
		buf = append(buf, TerminalMarker)
	}
	return string(buf)
}

// Enhance returns the identifier with state Enhanced.
func (id Identifier) Enhance() Identifier {
	id.state = Enhanced
	return id
}

// Diminish returns the identifier with state Diminished.
func (id Identifier) Diminish() Identifier {
	id.state = Diminished
	return id
}

// Normalize returns the identifier with state Normal.
func (id Identifier) Normalize() Identifier {
	id.state = Normal
	return id
}

// Flip returns the identifier with the side swapped to the other player.
func (id Identifier) Flip() Identifier {
	id.side = id.side.Opposite()
	return id
}

// MarkTerminal returns the identifier with the terminal flag set.
func (id Identifier) MarkTerminal() Identifier {
	id.terminal = true
	return id
}

// UnmarkTerminal returns the identifier with the terminal flag cleared.
func (id Identifier) UnmarkTerminal() Identifier {
	id.terminal = false
	return id
}

// WithPiece returns the identifier with the piece type replaced. The new
// value is validated the same way New validates it.
func (id Identifier) WithPiece(piece Piece) (Identifier, error) {
	if !piece.Valid() {
		return Identifier{}, invalidField("piece", piece)
	}
	id.piece = piece
	return id, nil
}

// WithSide returns the identifier with the side replaced.
func (id Identifier) WithSide(side Side) (Identifier, error) {
	if !side.Valid() {
		return Identifier{}, invalidField("side", side)
	}
	id.side = side
	return id, nil
}

// WithState returns the identifier with the state replaced.
func (id Identifier) WithState(state State) (Identifier, error) {
	if !state.Valid() {
		return Identifier{}, invalidField("state", state)
	}
	id.state = state
	return id, nil
}

// WithTerminal returns the identifier with the terminal flag replaced.
// Booleans need no validation, so unlike the other setters it cannot fail.
func (id Identifier) WithTerminal(terminal bool) Identifier {
	id.terminal = terminal
	return id
}

// IsNormal reports whether the piece is in the normal state.
func (id Identifier) IsNormal() bool { return id.state == Normal }

// IsEnhanced reports whether the piece is in the enhanced state.
func (id Identifier) IsEnhanced() bool { return id.state == Enhanced }

// IsDiminished reports whether the piece is in the diminished state.
func (id Identifier) IsDiminished() bool { return id.state == Diminished }

// IsFirstPlayer reports whether the piece belongs to the first player.
func (id Identifier) IsFirstPlayer() bool { return id.side == FirstPlayer }

// IsSecondPlayer reports whether the piece belongs to the second player.
func (id Identifier) IsSecondPlayer() bool { return id.side == SecondPlayer }

// IsTerminal reports whether the piece is in its terminal condition.
func (id Identifier) IsTerminal() bool { return id.terminal }

// SamePiece reports whether both identifiers have the same piece type.
func (id Identifier) SamePiece(other Identifier) bool { return id.piece == other.piece }

// SameSide reports whether both identifiers belong to the same player.
func (id Identifier) SameSide(other Identifier) bool { return id.side == other.side }

// SameState reports whether both identifiers are in the same state.
func (id Identifier) SameState(other Identifier) bool { return id.state == other.state }

// SameTerminal reports whether both identifiers have the same terminal flag.
func (id Identifier) SameTerminal(other Identifier) bool { return id.terminal == other.terminal }
