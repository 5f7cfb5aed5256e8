package board

import (
	"fmt"
	"strings"
)

// ColumnLabel returns the letter used for a column. Like most Go software
// we skip I, so column 8 is J.
func ColumnLabel(col int) string {
	c := 'A' + rune(col)
	if col >= 8 {
		c++
	}
	if c > 'Z' {
		return fmt.Sprintf("%d", col+1)
	}
	return string(c)
}

// ToDisplayText renders the board with column letters on top and row
// numbers on the left. Rows are numbered from the bottom.
func (g *GameBoard) ToDisplayText() string {
	var str strings.Builder
	n := g.Dim()
	str.WriteString("    ")
	for i := 0; i < n; i++ {
		str.WriteString(fmt.Sprintf("%-2s", ColumnLabel(i)))
	}
	str.WriteString("\n")
	str.WriteString("   " + strings.Repeat("-", n*2+1) + "\n")
	for i := 0; i < n; i++ {
		str.WriteString(fmt.Sprintf("%2d| ", n-i))
		for j := 0; j < n; j++ {
			str.WriteString(g.Get(Position{i, j}).DisplayString() + " ")
		}
		str.WriteString("|\n")
	}
	str.WriteString("   " + strings.Repeat("-", n*2+1) + "\n")
	return "\n" + str.String()
}

// ToPlaintext is the bare diagram form accepted by SetFromPlaintext,
// one string per row.
func (g *GameBoard) ToPlaintext() []string {
	rows := make([]string, g.Dim())
	for i := range rows {
		var sb strings.Builder
		for j := 0; j < g.Dim(); j++ {
			sb.WriteString(g.Get(Position{i, j}).DisplayString())
		}
		rows[i] = sb.String()
	}
	return rows
}

// SetFromPlaintext sets the board from a diagram of dim rows. Whitespace
// between cells is ignored, so both "X.O" and "X . O" work.
func (g *GameBoard) SetFromPlaintext(rows []string) error {
	if len(rows) != g.Dim() {
		return fmt.Errorf("expected %d rows, got %d", g.Dim(), len(rows))
	}
	cells := make([]Owner, 0, g.Dim()*g.Dim())
	for i, row := range rows {
		row = strings.Join(strings.Fields(row), "")
		if len(row) != g.Dim() {
			return fmt.Errorf("row %d: expected %d cells, got %d", i, g.Dim(), len(row))
		}
		for _, r := range row {
			o, err := ownerFromRune(r)
			if err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			cells = append(cells, o)
		}
	}
	g.SetSquares(cells)
	return nil
}

// MakeBoard creates a board from a plaintext diagram. It panics on a bad
// diagram and is meant for tests and fixtures.
func MakeBoard(desc []string) *GameBoard {
	b, err := NewBoard(len(desc))
	if err != nil {
		panic(err)
	}
	if err := b.SetFromPlaintext(desc); err != nil {
		panic(err)
	}
	return b
}
