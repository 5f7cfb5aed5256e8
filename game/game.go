// Package game encapsulates the rules of Go: turn order, legality of
// placements, ko and superko, passing, undo and the end of the game.
package game

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/domino14/goban/board"
	"github.com/domino14/goban/move"
	"github.com/domino14/goban/territory"
	"github.com/domino14/goban/zobrist"
)

var (
	ErrGameOver         = errors.New("the game is over")
	ErrInvalidUndoCount = errors.New("undo count out of range")
	ErrPrematureEndGame = errors.New("cannot end the game before two plies have been played")
)

type PlayState int

const (
	StatePlaying PlayState = iota
	StateGameOver
)

func (p PlayState) String() string {
	if p == StateGameOver {
		return "game-over"
	}
	return "playing"
}

// Game is the actual internal game structure that controls the entire
// business logic of the game. It is not safe for concurrent use; a caller
// that serves several sessions keeps one Game per session.
type Game struct {
	rules   GameRules
	board   *board.GameBoard
	zobrist *zobrist.Zobrist
	scorer  territory.Scorer

	history *History
	// events[i] is the ply that produced history entry i+1, oldest first.
	events []*move.Move

	onturn  board.Owner
	turnnum int
	passes  int
	playing PlayState
	result  *territory.Result
}

// PassResult describes an accepted pass.
type PassResult struct {
	Move      *move.Move
	GameEnded bool
	// Result is set only when the pass ended the game.
	Result *territory.Result
}

// UndoResult describes the effect of an undo.
type UndoResult struct {
	Undone         int
	RevertedToTurn int
	Diff           []board.CellChange
}

// NewGame is how one instantiates a brand new game: an empty board, black
// to move, turn 1.
func NewGame(rules *GameRules) (*Game, error) {
	b, err := board.NewBoard(rules.BoardSize())
	if err != nil {
		return nil, err
	}
	z := &zobrist.Zobrist{}
	z.Initialize(rules.BoardSize())
	g := &Game{
		rules:   *rules,
		board:   b,
		zobrist: z,
		onturn:  board.Black,
		turnnum: 1,
		playing: StatePlaying,
	}
	g.history = newHistory(b.Squares(), z.Hash(b.Squares()))
	log.Debug().Msgf("new game: %v", g.rules)
	return g, nil
}

// record appends a completed ply and hands the turn to the other player.
func (g *Game) record(sq []board.Owner, hash uint64, m *move.Move) {
	g.history.push(sq, hash)
	g.events = append(g.events, m)
	g.onturn = g.onturn.Opponent()
	g.turnnum++
}

// SubmitMove places a stone of the player on turn at (row, col).
// ErrOutOfRange and ErrOccupiedCell from the board package are returned
// unchanged; so are ErrKoViolation and ErrSuperkoViolation, after the board
// has been rolled back.
func (g *Game) SubmitMove(row, col int) (*MoveResult, error) {
	if g.playing == StateGameOver {
		return nil, ErrGameOver
	}
	return g.playPlacement(board.Position{Row: row, Col: col})
}

// Pass passes the turn. The second consecutive pass scores the board and
// ends the game.
func (g *Game) Pass() (*PassResult, error) {
	if g.playing == StateGameOver {
		return nil, ErrGameOver
	}
	m := move.NewPassMove(g.onturn)
	prev := g.history.At(0)
	g.passes++
	g.record(g.board.Squares(), prev.Hash(), m)
	log.Debug().Int("passes", g.passes).Msg("passed")

	res := &PassResult{Move: m}
	if g.passes >= 2 {
		res.GameEnded = true
		res.Result = g.score()
	}
	return res, nil
}

// Undo reverts the last n plies. The empty starting board is never undone,
// so n is clamped to [1, History().Len()-1]; when it has to be clamped the
// undo is still performed and ErrInvalidUndoCount is returned with the
// result. Undo always reopens a finished game.
func (g *Game) Undo(n int) (*UndoResult, error) {
	var err error
	maxN := g.history.Len() - 1
	if n < 1 || n > maxN {
		log.Debug().Int("requested", n).Int("max", maxN).Msg("clamping undo count")
		err = ErrInvalidUndoCount
		n = max(1, min(n, maxN))
		if maxN == 0 {
			n = 0
		}
	}
	if n == 0 {
		return &UndoResult{RevertedToTurn: g.turnnum}, err
	}

	target := g.history.At(n)
	diff := g.board.Diff(target.squares)
	g.board.SetSquares(target.squares)
	g.history.truncate(n)
	for i := len(g.events) - n; i < len(g.events); i++ {
		g.events[i] = nil
	}
	g.events = g.events[:len(g.events)-n]
	if n%2 == 1 {
		g.onturn = g.onturn.Opponent()
	}
	if g.passes > 0 {
		g.passes--
	}
	g.turnnum -= n
	g.playing = StatePlaying
	g.result = nil
	log.Debug().Int("undone", n).Int("turn", g.turnnum).Msg("undo")
	return &UndoResult{Undone: n, RevertedToTurn: g.turnnum, Diff: diff}, err
}

// EndGame scores the board and ends the game right away. Calling it on a
// finished game returns the existing result without touching the board.
func (g *Game) EndGame() (*territory.Result, error) {
	if g.playing == StateGameOver {
		return g.result, nil
	}
	if g.history.Len() < 3 {
		return nil, ErrPrematureEndGame
	}
	return g.score(), nil
}

func (g *Game) score() *territory.Result {
	g.result = g.scorer.Score(g.board, g.rules.WhiteBonus(), g.rules.WhiteWinsTies())
	g.playing = StateGameOver
	log.Debug().Str("winner", g.result.Winner).Msg("game over")
	return g.result
}

func (g *Game) Board() *board.GameBoard {
	return g.board
}

func (g *Game) Rules() GameRules {
	return g.rules
}

func (g *Game) PlayerOnTurn() board.Owner {
	return g.onturn
}

func (g *Game) Opponent() board.Owner {
	return g.onturn.Opponent()
}

// Turn is the number of the ply about to be played. It starts at 1 and is
// always equal to History().Len().
func (g *Game) Turn() int {
	return g.turnnum
}

// Passes is the number of consecutive passes just played.
func (g *Game) Passes() int {
	return g.passes
}

func (g *Game) Playing() PlayState {
	return g.playing
}

func (g *Game) History() *History {
	return g.history
}

// Result is the score of a finished game, or nil.
func (g *Game) Result() *territory.Result {
	return g.result
}

// Events returns the plies played so far, oldest first.
func (g *Game) Events() []*move.Move {
	evts := make([]*move.Move, len(g.events))
	copy(evts, g.events)
	return evts
}

// LastEvent returns the most recent ply, or nil at the start of the game.
func (g *Game) LastEvent() *move.Move {
	if len(g.events) == 0 {
		return nil
	}
	return g.events[len(g.events)-1]
}
