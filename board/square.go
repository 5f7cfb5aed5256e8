package board

import "fmt"

// An Owner is whatever currently occupies a single intersection of the
// board: nothing, a stone, or (only after scoring) a territory marker.
type Owner uint8

const (
	Empty Owner = iota
	Black
	White
	BlackTerritory
	WhiteTerritory
	Neutral
)

func (o Owner) String() string {
	switch o {
	case Empty:
		return "empty"
	case Black:
		return "black"
	case White:
		return "white"
	case BlackTerritory:
		return "blackTerritory"
	case WhiteTerritory:
		return "whiteTerritory"
	case Neutral:
		return "neutral"
	}
	return fmt.Sprintf("owner(%d)", uint8(o))
}

// IsStone returns true for Black and White.
func (o Owner) IsStone() bool {
	return o == Black || o == White
}

// Opponent returns the other stone color. It returns Empty for anything
// that is not a stone.
func (o Owner) Opponent() Owner {
	switch o {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

// Territory returns the territory marker credited to a stone color.
func (o Owner) Territory() Owner {
	switch o {
	case Black:
		return BlackTerritory
	case White:
		return WhiteTerritory
	}
	return Neutral
}

// DisplayString is the single-character rendering used by ToDisplayText.
func (o Owner) DisplayString() string {
	switch o {
	case Black:
		return "X"
	case White:
		return "O"
	case BlackTerritory:
		return "x"
	case WhiteTerritory:
		return "o"
	case Neutral:
		return "-"
	}
	return "."
}

// ownerFromRune is the inverse of DisplayString, for plaintext boards.
func ownerFromRune(r rune) (Owner, error) {
	switch r {
	case '.', '+', ' ':
		return Empty, nil
	case 'X', 'B':
		return Black, nil
	case 'O', 'W':
		return White, nil
	case 'x':
		return BlackTerritory, nil
	case 'o':
		return WhiteTerritory, nil
	case '-':
		return Neutral, nil
	}
	return Empty, fmt.Errorf("unrecognized board character %q", r)
}

// A Position is a zero-based (row, column) pair. Row 0 is the top of the
// board.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// north, east, west, south
func (p Position) neighbors() [4]Position {
	return [4]Position{
		{p.Row - 1, p.Col},
		{p.Row, p.Col + 1},
		{p.Row, p.Col - 1},
		{p.Row + 1, p.Col},
	}
}
