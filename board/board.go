// Package board contains the goban itself: an N×N grid of intersections
// and the flood-fill analysis (groups, liberties, empty regions) that the
// rules are built on.
package board

import (
	"errors"

	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidDimension = errors.New("board dimension must be at least 1")
	ErrOutOfRange       = errors.New("position is off the board")
	ErrOccupiedCell     = errors.New("intersection is already occupied")
	ErrNotAStone        = errors.New("only black or white stones can be placed")
)

// A GameBoard is the main board structure. The dimension is fixed at
// creation; cells are stored row-major.
type GameBoard struct {
	dim   int
	cells []Owner
}

// NewBoard creates an empty dim×dim board.
func NewBoard(dim int) (*GameBoard, error) {
	if dim < 1 {
		return nil, ErrInvalidDimension
	}
	return &GameBoard{dim: dim, cells: make([]Owner, dim*dim)}, nil
}

// Dim is the dimension of the board. It assumes the board is square.
func (g *GameBoard) Dim() int {
	return g.dim
}

func (g *GameBoard) InBounds(p Position) bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < g.dim && p.Col < g.dim
}

func (g *GameBoard) index(p Position) int {
	return p.Row*g.dim + p.Col
}

// Get returns the owner of an in-range position. It panics like a slice
// would for an out-of-range one; check InBounds first.
func (g *GameBoard) Get(p Position) Owner {
	return g.cells[g.index(p)]
}

// Set overwrites the owner of a position with no legality checks at all.
func (g *GameBoard) Set(p Position, o Owner) {
	g.cells[g.index(p)] = o
}

// Place puts a stone on an empty intersection.
func (g *GameBoard) Place(p Position, color Owner) error {
	if !g.InBounds(p) {
		return ErrOutOfRange
	}
	if !color.IsStone() {
		return ErrNotAStone
	}
	if g.Get(p) != Empty {
		return ErrOccupiedCell
	}
	g.Set(p, color)
	return nil
}

// RemoveCells empties every given position.
func (g *GameBoard) RemoveCells(ps []Position) {
	for _, p := range ps {
		g.Set(p, Empty)
	}
}

// Neighbors returns the on-board orthogonal neighbors of p, in north,
// east, west, south order.
func (g *GameBoard) Neighbors(p Position) []Position {
	ns := make([]Position, 0, 4)
	for _, n := range p.neighbors() {
		if g.InBounds(n) {
			ns = append(ns, n)
		}
	}
	return ns
}

// Count returns how many cells have the given owner.
func (g *GameBoard) Count(o Owner) int {
	ct := 0
	for _, c := range g.cells {
		if c == o {
			ct++
		}
	}
	return ct
}

// IsEmpty returns if the board has no stones on it.
func (g *GameBoard) IsEmpty() bool {
	return g.Count(Black) == 0 && g.Count(White) == 0
}

// Clear empties the board.
func (g *GameBoard) Clear() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
}

// Squares returns a copy of the owner grid, row-major.
func (g *GameBoard) Squares() []Owner {
	sq := make([]Owner, len(g.cells))
	copy(sq, g.cells)
	return sq
}

// SetSquares replaces the whole grid. The slice must be dim*dim long.
func (g *GameBoard) SetSquares(sq []Owner) {
	if len(sq) != len(g.cells) {
		log.Error().Int("want", len(g.cells)).Int("got", len(sq)).Msg("square count mismatch")
		return
	}
	copy(g.cells, sq)
}

// Copy returns a deep copy of this board.
func (g *GameBoard) Copy() *GameBoard {
	return &GameBoard{dim: g.dim, cells: g.Squares()}
}

// CopyFrom copies the squares of other into this board. Boards must have
// the same dimension.
func (g *GameBoard) CopyFrom(other *GameBoard) {
	g.SetSquares(other.cells)
}

// Equals checks the boards for equality. Two boards are equal if all the
// intersections have the same owner.
func (g *GameBoard) Equals(g2 *GameBoard) bool {
	if g.dim != g2.dim {
		log.Debug().Int("dim", g.dim).Int("other", g2.dim).Msg("dims don't match")
		return false
	}
	return g.EqualsSquares(g2.cells)
}

// EqualsSquares compares this board against a raw owner grid.
func (g *GameBoard) EqualsSquares(sq []Owner) bool {
	if len(sq) != len(g.cells) {
		return false
	}
	for i, c := range g.cells {
		if sq[i] != c {
			return false
		}
	}
	return true
}

// A CellChange records one intersection whose owner differs between two
// boards.
type CellChange struct {
	Position Position
	From     Owner
	To       Owner
}

// Diff lists every intersection whose owner in sq differs from the owner on
// this board, reading this board as "from" and sq as "to".
func (g *GameBoard) Diff(sq []Owner) []CellChange {
	var changes []CellChange
	for i, c := range g.cells {
		if i >= len(sq) {
			break
		}
		if sq[i] != c {
			changes = append(changes, CellChange{
				Position: Position{Row: i / g.dim, Col: i % g.dim},
				From:     c,
				To:       sq[i],
			})
		}
	}
	return changes
}
