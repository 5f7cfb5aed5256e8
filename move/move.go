package move

import (
	"fmt"

	"github.com/domino14/goban/board"
)

// MoveType is a type of move; a stone placement or a pass.
type MoveType uint8

const (
	MoveTypePlace MoveType = iota
	MoveTypePass
)

// Move is a single turn taken by one player. Placements know where they
// went and, once the turn has been resolved, how many stones they
// captured.
type Move struct {
	action   MoveType
	color    board.Owner
	pos      board.Position
	coords   string
	captured int
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	switch m.action {
	case MoveTypePlace:
		return fmt.Sprintf("<%p action: place color: %v at: %v %v captured: %v>",
			m, m.color, m.coords, m.pos, m.captured)
	case MoveTypePass:
		return fmt.Sprintf("<%p action: pass color: %v>", m, m.color)
	}
	return fmt.Sprint("<Unhandled move>")
}

func (m *Move) MoveTypeString() string {
	switch m.action {
	case MoveTypePlace:
		return "Place"
	case MoveTypePass:
		return "Pass"
	}
	return fmt.Sprint("UNHANDLED")
}

func colorLetter(c board.Owner) string {
	if c == board.White {
		return "W"
	}
	return "B"
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m *Move) ShortDescription() string {
	switch m.action {
	case MoveTypePlace:
		return fmt.Sprintf("%v %v", colorLetter(m.color), m.coords)
	case MoveTypePass:
		return fmt.Sprintf("%v (Pass)", colorLetter(m.color))
	}
	return fmt.Sprint("UNHANDLED")
}

func (m *Move) Action() MoveType {
	return m.action
}

func (m *Move) Color() board.Owner {
	return m.color
}

func (m *Move) Position() board.Position {
	return m.pos
}

// Coords is the user-facing coordinate of a placement, like D4.
func (m *Move) Coords() string {
	return m.coords
}

func (m *Move) Captured() int {
	return m.captured
}

func (m *Move) SetCaptured(n int) {
	m.captured = n
}

// Equals compares the action, color and position of two moves. The capture
// count is ignored.
func (m *Move) Equals(o *Move) bool {
	if m.action != o.action || m.color != o.color {
		return false
	}
	if m.action == MoveTypePass {
		return true
	}
	return m.pos == o.pos
}

// NewPlacementMove creates a placement of a stone of the given color. dim
// is used only to render the coordinates.
func NewPlacementMove(color board.Owner, pos board.Position, dim int) *Move {
	return &Move{
		action: MoveTypePlace,
		color:  color,
		pos:    pos,
		coords: ToBoardGameCoords(pos, dim),
	}
}

// NewPassMove creates a pass by the given color.
func NewPassMove(color board.Owner) *Move {
	return &Move{
		action: MoveTypePass,
		color:  color,
	}
}
