package game

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/goban/board"
	"github.com/domino14/goban/move"
)

var (
	ErrKoViolation      = errors.New("move recreates the position before the opponent's last move")
	ErrSuperkoViolation = errors.New("move recreates an earlier position")
)

// turnPhase is where a placement is in the turn protocol. A rejected
// placement never gets past AwaitingMove; a repetition is rolled back at
// KoChecked.
type turnPhase int

const (
	phaseAwaitingMove turnPhase = iota
	phasePlaced
	phaseCaptureResolved
	phaseKoChecked
	phaseTurnAdvanced
)

func (p turnPhase) String() string {
	switch p {
	case phaseAwaitingMove:
		return "awaiting-move"
	case phasePlaced:
		return "placed"
	case phaseCaptureResolved:
		return "capture-resolved"
	case phaseKoChecked:
		return "ko-checked"
	case phaseTurnAdvanced:
		return "turn-advanced"
	}
	return "unknown"
}

func (g *Game) enterPhase(p turnPhase) {
	log.Debug().Int("turn", g.turnnum).Stringer("onturn", g.onturn).
		Stringer("phase", p).Msg("turn-protocol")
}

// MoveResult describes an accepted placement.
type MoveResult struct {
	Move     *move.Move
	Captured []board.Position
	// Changed lists every intersection the placement changed: the new
	// stone first, then the captured stones in removal order.
	Changed []board.CellChange
}

// playPlacement runs one placement through the turn protocol. On any error
// the board and history are as they were before the call.
func (g *Game) playPlacement(p board.Position) (*MoveResult, error) {
	color := g.onturn
	g.enterPhase(phaseAwaitingMove)
	if err := g.board.Place(p, color); err != nil {
		log.Debug().Err(err).Stringer("at", p).Msg("placement-rejected")
		return nil, err
	}

	g.enterPhase(phasePlaced)
	captured := g.board.CaptureAround(p, color)

	g.enterPhase(phaseCaptureResolved)
	prev := g.history.At(0)
	hash := g.zobrist.AddMove(prev.Hash(), p, color, captured)
	sq := g.board.Squares()
	if err := g.checkRepetition(sq, hash); err != nil {
		g.board.SetSquares(prev.Squares())
		log.Debug().Err(err).Stringer("at", p).Msg("placement-reverted")
		return nil, err
	}

	g.enterPhase(phaseKoChecked)
	m := move.NewPlacementMove(color, p, g.board.Dim())
	m.SetCaptured(len(captured))
	g.record(sq, hash, m)
	g.passes = 0

	g.enterPhase(phaseTurnAdvanced)
	opp := color.Opponent()
	changed := append([]board.CellChange{{Position: p, From: board.Empty, To: color}},
		lo.Map(captured, func(c board.Position, _ int) board.CellChange {
			return board.CellChange{Position: c, From: opp, To: board.Empty}
		})...)
	return &MoveResult{Move: m, Captured: captured, Changed: changed}, nil
}

// checkRepetition compares a tentative grid against the history. At(0) is
// the board the move was played on, so ko looks one further back and
// superko looks at everything older than that.
func (g *Game) checkRepetition(sq []board.Owner, hash uint64) error {
	switch g.rules.KoMode() {
	case KoModeKo:
		if g.history.Len() > 1 && g.history.At(1).Matches(sq, hash) {
			return ErrKoViolation
		}
	case KoModeSuperko:
		if i := g.history.Find(sq, hash, 1); i >= 0 {
			log.Debug().Int("plies-back", i).Msg("superko-repetition")
			return ErrSuperkoViolation
		}
	}
	return nil
}
