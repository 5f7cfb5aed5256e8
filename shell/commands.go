package shell

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/domino14/goban/config"
	"github.com/domino14/goban/game"
	"github.com/domino14/goban/move"
)

// newGame starts a game. Positional arguments override the configured
// defaults in order: size, ko mode, white bonus, white wins ties.
func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	size := sc.config.GetInt(config.ConfigBoardSize)
	koMode := sc.config.GetString(config.ConfigKoMode)
	bonus := sc.config.GetInt(config.ConfigWhiteBonus)
	ties := sc.config.GetBool(config.ConfigWhiteWinsTies)

	var err error
	args := cmd.args
	if len(args) > 0 {
		if size, err = strconv.Atoi(args[0]); err != nil {
			return nil, fmt.Errorf("board size: %w", err)
		}
	}
	if len(args) > 1 {
		koMode = args[1]
	}
	if len(args) > 2 {
		if bonus, err = strconv.Atoi(args[2]); err != nil {
			return nil, fmt.Errorf("white bonus: %w", err)
		}
	}
	if len(args) > 3 {
		if ties, err = strconv.ParseBool(args[3]); err != nil {
			return nil, fmt.Errorf("white wins ties: %w", err)
		}
	}

	km, err := game.ParseKoMode(koMode)
	if err != nil {
		return nil, err
	}
	rules, err := game.NewGameRules(size, km, bonus, ties)
	if err != nil {
		return nil, err
	}
	g, err := game.NewGame(rules)
	if err != nil {
		return nil, err
	}
	sc.game = g
	log.Debug().Msgf("started game: %v", rules)
	return msg(g.ToDisplayText()), nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("play <vertex>, for example play D4 or play 3,3")
	}
	if cmd.args[0] == "pass" {
		return sc.pass()
	}
	pos, err := move.FromBoardGameCoords(cmd.args[0], sc.game.Board().Dim())
	if err != nil {
		return nil, err
	}
	res, err := sc.game.SubmitMove(pos.Row, pos.Col)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("changed", len(res.Changed)).Msg("played " + res.Move.ShortDescription())
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) pass() (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	res, err := sc.game.Pass()
	if err != nil {
		return nil, err
	}
	if res.GameEnded {
		return msg(sc.game.ToDisplayText() + "\n\nBoth players passed. " + res.Result.String()), nil
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) undo(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	n := 1
	if len(cmd.args) > 0 {
		var err error
		if n, err = strconv.Atoi(cmd.args[0]); err != nil {
			return nil, err
		}
	}
	res, err := sc.game.Undo(n)
	if err != nil && !errors.Is(err, game.ErrInvalidUndoCount) {
		return nil, err
	}
	out := sc.game.ToDisplayText()
	if err != nil {
		out += fmt.Sprintf("\n\n%v: undid %d instead of %d", err, res.Undone, n)
	}
	return msg(out), nil
}

func (sc *ShellController) endGame() (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	r, err := sc.game.EndGame()
	if err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText() + "\n\n" + r.String()), nil
}

func (sc *ShellController) show() (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.game.ToDisplayText()), nil
}

// score shows the result of a finished game, as YAML with -format yaml.
func (sc *ShellController) score(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	r := sc.game.Result()
	if r == nil {
		return nil, errors.New("the game is not over; use end to score it now")
	}
	switch cmd.options["format"] {
	case "yaml":
		out, err := r.ToYAML()
		if err != nil {
			return nil, err
		}
		return msg(out), nil
	case "", "text":
		return msg(r.String()), nil
	}
	return nil, fmt.Errorf("unknown format %q", cmd.options["format"])
}
