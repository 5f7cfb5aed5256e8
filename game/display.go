package game

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/goban/board"
)

func splitSubN(s string, n int) []string {
	sub := ""
	subs := []string{}

	runes := bytes.Runes([]byte(s))
	l := len(runes)
	for i, r := range runes {
		sub = sub + string(r)
		if (i+1)%n == 0 {
			subs = append(subs, sub)
			sub = ""
		} else if (i + 1) == l {
			subs = append(subs, sub)
		}
	}

	return subs
}

func addText(lines []string, row int, hpad int, text string) {
	maxTextSize := 42
	sp := splitSubN(text, maxTextSize)

	for _, chunk := range sp {
		if row >= len(lines) {
			return
		}
		lines[row] = lines[row] + strings.Repeat(" ", hpad) + chunk
		row++
	}
}

func playerString(color board.Owner, onturn bool) string {
	name := "Black (X)"
	if color == board.White {
		name = "White (O)"
	}
	if onturn {
		return "-> " + name
	}
	return "   " + name
}

// ToDisplayText turns the current state of the game into a displayable
// string.
func (g *Game) ToDisplayText() string {
	bt := g.board.ToDisplayText()
	// Pad out short boards so the side panel always fits.
	bts := strings.Split(bt, "\n")
	for len(bts) < 12 {
		bts = append(bts, "")
	}
	width := 0
	for _, l := range bts {
		width = max(width, len(l))
	}
	for i := range bts {
		bts[i] += strings.Repeat(" ", width-len(bts[i]))
	}
	hpadding := 3
	vpadding := 1

	log.Debug().Stringer("onturn", g.onturn).Msg("todisplaytext")
	for i, c := range []board.Owner{board.Black, board.White} {
		addText(bts, vpadding+i, hpadding,
			playerString(c, g.playing == StatePlaying && g.onturn == c))
	}

	addText(bts, vpadding+3, hpadding, g.rules.String())
	addText(bts, vpadding+5, hpadding, fmt.Sprintf("Turn %d:", g.turnnum))
	if evt := g.LastEvent(); evt != nil {
		summary := evt.ShortDescription()
		if evt.Captured() > 0 {
			summary += fmt.Sprintf(" captures %d", evt.Captured())
		}
		addText(bts, vpadding+6, hpadding, summary)
	}
	if g.passes > 0 {
		addText(bts, vpadding+7, hpadding, fmt.Sprintf("Consecutive passes: %d", g.passes))
	}

	if g.playing == StateGameOver && g.result != nil {
		addText(bts, vpadding+9, hpadding, "Game is over.")
		addText(bts, vpadding+10, hpadding, g.result.String())
	}

	return strings.Join(bts, "\n")
}
