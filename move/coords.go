package move

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/domino14/goban/board"
)

var ErrInvalidCoords = errors.New("invalid coordinates")

var reVertex, reNumeric *regexp.Regexp

func init() {
	reVertex = regexp.MustCompile(`^(?P<col>[A-HJ-Z])(?P<row>[0-9]+)$`)
	reNumeric = regexp.MustCompile(`^(?P<row>[0-9]+)\s*,\s*(?P<col>[0-9]+)$`)
}

// ToBoardGameCoords converts a position to a vertex like D4. Columns are
// lettered from the left skipping I, rows are numbered from the bottom.
// Boards wider than 25 run out of letters, so they use "row,col" with
// zero-based indices instead.
func ToBoardGameCoords(p board.Position, dim int) string {
	if dim > 25 {
		return fmt.Sprintf("%d,%d", p.Row, p.Col)
	}
	return board.ColumnLabel(p.Col) + strconv.Itoa(dim-p.Row)
}

// FromBoardGameCoords does the inverse operation of ToBoardGameCoords
// above. It also accepts the "row,col" form on any board size. The
// position is checked against dim.
func FromBoardGameCoords(c string, dim int) (board.Position, error) {
	c = strings.TrimSpace(c)
	var row, col int
	if m := reNumeric.FindStringSubmatch(c); len(m) == 3 {
		row, _ = strconv.Atoi(m[1])
		col, _ = strconv.Atoi(m[2])
	} else if m := reVertex.FindStringSubmatch(strings.ToUpper(c)); len(m) == 3 {
		col = int(m[1][0] - 'A')
		if col > 7 {
			// account for the skipped I
			col--
		}
		n, _ := strconv.Atoi(m[2])
		row = dim - n
	} else {
		return board.Position{}, fmt.Errorf("%w: %q", ErrInvalidCoords, c)
	}
	if row < 0 || col < 0 || row >= dim || col >= dim {
		return board.Position{}, fmt.Errorf("%w: %q is off a %dx%d board",
			ErrInvalidCoords, c, dim, dim)
	}
	return board.Position{Row: row, Col: col}, nil
}
