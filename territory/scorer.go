// Package territory scores a finished game by area: stones on the board
// plus the empty regions each color surrounds.
package territory

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/goban/board"
)

const (
	WinnerBlack   = "black"
	WinnerWhite   = "white"
	WinnerNeither = "neither"
)

// Result is the outcome of scoring a board.
type Result struct {
	Winner         string `yaml:"winner"`
	BlackScore     int    `yaml:"black_score"`
	WhiteScore     int    `yaml:"white_score"`
	BlackStones    int    `yaml:"black_stones"`
	WhiteStones    int    `yaml:"white_stones"`
	BlackTerritory int    `yaml:"black_territory"`
	WhiteTerritory int    `yaml:"white_territory"`
	Neutral        int    `yaml:"neutral"`
	WhiteBonus     int    `yaml:"white_bonus"`
	Dim            int    `yaml:"dim"`
	// TerritoryMap is the scored board, row-major.
	TerritoryMap []board.Owner `yaml:"-"`
	// Map is TerritoryMap rendered one string per row.
	Map []string `yaml:"map"`
}

// ScoreFor returns the final score of a stone color.
func (r *Result) ScoreFor(color board.Owner) int {
	switch color {
	case board.Black:
		return r.BlackScore
	case board.White:
		return r.WhiteScore
	}
	return 0
}

// OwnerAt returns the scored owner of an intersection.
func (r *Result) OwnerAt(p board.Position) board.Owner {
	return r.TerritoryMap[p.Row*r.Dim+p.Col]
}

func (r *Result) String() string {
	if r.Winner == WinnerNeither {
		return fmt.Sprintf("Tie game, %d to %d", r.BlackScore, r.WhiteScore)
	}
	return fmt.Sprintf("%s wins, black %d white %d", r.Winner, r.BlackScore, r.WhiteScore)
}

func (r *Result) ToYAML() (string, error) {
	out, err := yaml.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Scorer classifies territory. It keeps no state between calls.
type Scorer struct{}

// Score classifies every empty region of b and writes the territory owners
// onto it. A region bordered only by black stones is black territory, only
// by white stones white territory, and anything else (both colors, or no
// stones at all) is neutral. Regions that were already classified are
// left alone, so scoring a scored board gives the same result.
func (s Scorer) Score(b *board.GameBoard, whiteBonus int, whiteWinsTies bool) *Result {
	dim := b.Dim()
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			p := board.Position{Row: row, Col: col}
			if b.Get(p) != board.Empty {
				continue
			}
			region := b.FindRegion(p)
			owner := region.Owner()
			log.Debug().Stringer("at", p).Int("size", len(region.Members)).
				Stringer("owner", owner).Msg("classified region")
			for _, m := range region.Members {
				b.Set(m, owner)
			}
		}
	}

	sq := b.Squares()
	r := &Result{
		BlackStones:    lo.Count(sq, board.Black),
		WhiteStones:    lo.Count(sq, board.White),
		BlackTerritory: lo.Count(sq, board.BlackTerritory),
		WhiteTerritory: lo.Count(sq, board.WhiteTerritory),
		Neutral:        lo.Count(sq, board.Neutral),
		WhiteBonus:     whiteBonus,
		Dim:            dim,
		TerritoryMap:   sq,
		Map:            b.ToPlaintext(),
	}
	r.BlackScore = r.BlackStones + r.BlackTerritory
	r.WhiteScore = r.WhiteStones + r.WhiteTerritory + whiteBonus

	switch {
	case r.BlackScore > r.WhiteScore:
		r.Winner = WinnerBlack
	case r.WhiteScore > r.BlackScore:
		r.Winner = WinnerWhite
	case whiteWinsTies:
		r.Winner = WinnerWhite
	default:
		r.Winner = WinnerNeither
	}
	log.Debug().Str("winner", r.Winner).Int("black", r.BlackScore).
		Int("white", r.WhiteScore).Msg("scored")
	return r
}
