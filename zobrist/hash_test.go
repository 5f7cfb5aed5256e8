package zobrist

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/goban/board"
)

func TestEmptyBoardHashesToZero(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(9)
	b, _ := board.NewBoard(9)
	is.Equal(z.Hash(b.Squares()), uint64(0))
}

func TestHashAfterMakingPlay(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(5)

	b := board.MakeBoard([]string{
		".XO..",
		"XO...",
		".....",
		".....",
		".....",
	})
	h := z.Hash(b.Squares())

	p := board.Position{Row: 0, Col: 0}
	is.NoErr(b.Place(p, board.White))
	captured := b.CaptureAround(p, board.White)
	is.Equal(captured, []board.Position{{Row: 0, Col: 1}})

	h1 := z.AddMove(h, p, board.White, captured)
	is.Equal(h1, z.Hash(b.Squares()))
	is.True(h1 != h) // extremely unlikely to collide, but not technically impossible.
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(3)
	p := board.Position{Row: 1, Col: 2}
	h := z.Toggle(0, p, board.Black)
	is.True(h != 0)
	is.Equal(z.Toggle(h, p, board.Black), uint64(0))
	is.True(z.Toggle(0, p, board.White) != h)
	is.Equal(z.Toggle(h, p, board.Neutral), h)
}

func TestTerritoryHashesAsEmpty(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(3)
	played := board.MakeBoard([]string{"X..", "...", "..O"})
	scored := board.MakeBoard([]string{"Xxx", "---", "ooO"})
	is.Equal(z.Hash(played.Squares()), z.Hash(scored.Squares()))
}
