package move

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/goban/board"
)

type coordTestStruct struct {
	row    int
	col    int
	dim    int
	output string
}

var coordTests = []coordTestStruct{
	{18, 0, 19, "A1"},
	{15, 3, 19, "D4"},
	{3, 15, 19, "Q16"},
	{9, 9, 19, "K10"},
	{0, 8, 9, "J9"},
	{4, 4, 9, "E5"},
	{0, 0, 1, "A1"},
	{3, 27, 30, "3,27"},
}

func TestToBoardGameCoords(t *testing.T) {
	for _, tc := range coordTests {
		calc := ToBoardGameCoords(board.Position{Row: tc.row, Col: tc.col}, tc.dim)
		if calc != tc.output {
			t.Errorf("For row=%v col=%v dim=%v got %v, expected %v",
				tc.row, tc.col, tc.dim, calc, tc.output)
		}
	}
}

func TestFromBoardGameCoords(t *testing.T) {
	for _, tc := range coordTests {
		p, err := FromBoardGameCoords(tc.output, tc.dim)
		if err != nil {
			t.Errorf("For coord %v got error %v", tc.output, err)
			continue
		}
		if p.Row != tc.row || p.Col != tc.col {
			t.Errorf("For coord %v expected (%v, %v) got (%v, %v)",
				tc.output, tc.row, tc.col, p.Row, p.Col)
		}
	}
}

func TestFromBoardGameCoordsLenient(t *testing.T) {
	is := is.New(t)
	p, err := FromBoardGameCoords(" d4 ", 19)
	is.NoErr(err)
	is.Equal(p, board.Position{Row: 15, Col: 3})

	p, err = FromBoardGameCoords("2, 7", 9)
	is.NoErr(err)
	is.Equal(p, board.Position{Row: 2, Col: 7})
}

func TestFromBoardGameCoordsErrors(t *testing.T) {
	is := is.New(t)
	for _, c := range []string{"", "I5", "Z", "5D", "T20", "A0", "9,9", "pass"} {
		_, err := FromBoardGameCoords(c, 9)
		is.True(errors.Is(err, ErrInvalidCoords)) // each bad coordinate is rejected
	}
}

func TestShortDescription(t *testing.T) {
	is := is.New(t)
	m := NewPlacementMove(board.White, board.Position{Row: 15, Col: 3}, 19)
	is.Equal(m.ShortDescription(), "W D4")
	is.Equal(m.Coords(), "D4")
	is.Equal(NewPassMove(board.Black).ShortDescription(), "B (Pass)")
}

func TestEquals(t *testing.T) {
	is := is.New(t)
	m1 := NewPlacementMove(board.Black, board.Position{Row: 2, Col: 2}, 9)
	m2 := NewPlacementMove(board.Black, board.Position{Row: 2, Col: 2}, 9)
	m2.SetCaptured(3)
	is.True(m1.Equals(m2))
	m3 := NewPlacementMove(board.White, board.Position{Row: 2, Col: 2}, 9)
	is.True(!m1.Equals(m3))
	is.True(NewPassMove(board.White).Equals(NewPassMove(board.White)))
	is.True(!NewPassMove(board.White).Equals(m3))
}
