package territory

import (
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/goban/board"
)

func TestScoreSimpleEnclosures(t *testing.T) {
	is := is.New(t)
	b := board.MakeBoard([]string{
		".X.O.",
		"XX.OO",
		".....",
		"OOOOO",
		".....",
	})
	r := Scorer{}.Score(b, 0, false)

	is.Equal(r.BlackStones, 3)
	is.Equal(r.WhiteStones, 8)
	is.Equal(r.BlackTerritory, 1) // top-left corner
	is.Equal(r.WhiteTerritory, 6) // top-right corner + bottom row
	is.Equal(r.Neutral, 7)        // the middle borders both colors
	is.Equal(r.BlackScore, 4)
	is.Equal(r.WhiteScore, 14)
	is.Equal(r.Winner, WinnerWhite)
	is.Equal(b.ToPlaintext(), []string{
		"xX-Oo",
		"XX-OO",
		"-----",
		"OOOOO",
		"ooooo",
	})
	is.Equal(r.OwnerAt(board.Position{Row: 0, Col: 0}), board.BlackTerritory)
	is.Equal(r.ScoreFor(board.White), 14)
}

func TestEmptyBoardIsNeutral(t *testing.T) {
	is := is.New(t)
	b, _ := board.NewBoard(3)
	r := Scorer{}.Score(b, 0, false)
	is.Equal(r.Neutral, 9)
	is.Equal(r.BlackScore, 0)
	is.Equal(r.WhiteScore, 0)
	is.Equal(r.Winner, WinnerNeither)
}

func TestTies(t *testing.T) {
	for _, tc := range []struct {
		bonus         int
		whiteWinsTies bool
		winner        string
	}{
		{0, false, WinnerNeither},
		{0, true, WinnerWhite},
		{1, false, WinnerWhite},
	} {
		b := board.MakeBoard([]string{
			"X..",
			"...",
			"..O",
		})
		r := Scorer{}.Score(b, tc.bonus, tc.whiteWinsTies)
		assert.Equal(t, tc.winner, r.Winner)
		assert.Equal(t, 1, r.BlackScore)
		assert.Equal(t, 1+tc.bonus, r.WhiteScore)
	}
}

func TestScoreIsIdempotent(t *testing.T) {
	is := is.New(t)
	b := board.MakeBoard([]string{
		".X...",
		"XX...",
		".....",
		"...OO",
		"...O.",
	})
	r1 := Scorer{}.Score(b, 5, false)
	scored := b.Copy()
	r2 := Scorer{}.Score(b, 5, false)
	is.Equal(r1, r2)
	is.True(b.Equals(scored))
}

func TestToYAML(t *testing.T) {
	is := is.New(t)
	b := board.MakeBoard([]string{"X.", ".."})
	r := Scorer{}.Score(b, 2, false)
	out, err := r.ToYAML()
	is.NoErr(err)
	is.True(strings.Contains(out, "winner: black"))
	is.True(strings.Contains(out, "white_bonus: 2"))
	is.True(strings.Contains(out, "- Xx"))
}
