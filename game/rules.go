package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/goban/config"
)

var (
	ErrInvalidBoardSize = errors.New("board size must be at least 1")
	ErrInvalidKoMode    = errors.New("ko mode must be ko or superko")
	ErrNegativeBonus    = errors.New("white bonus cannot be negative")
)

// KoMode is the repetition rule in effect for a game.
type KoMode int

const (
	// KoModeKo forbids recreating the position from before the opponent's
	// last move.
	KoModeKo KoMode = iota
	// KoModeSuperko forbids recreating any earlier position.
	KoModeSuperko
)

func (k KoMode) String() string {
	switch k {
	case KoModeKo:
		return "ko"
	case KoModeSuperko:
		return "superko"
	}
	return fmt.Sprintf("komode(%d)", int(k))
}

func ParseKoMode(s string) (KoMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ko":
		return KoModeKo, nil
	case "superko":
		return KoModeSuperko, nil
	}
	return KoModeKo, fmt.Errorf("%w: %q", ErrInvalidKoMode, s)
}

// GameRules is the session configuration. It is fixed once a game has
// been created from it.
type GameRules struct {
	boardSize     int
	koMode        KoMode
	whiteBonus    int
	whiteWinsTies bool
}

func NewGameRules(boardSize int, koMode KoMode, whiteBonus int, whiteWinsTies bool) (*GameRules, error) {
	if boardSize < 1 {
		return nil, ErrInvalidBoardSize
	}
	if koMode != KoModeKo && koMode != KoModeSuperko {
		return nil, ErrInvalidKoMode
	}
	if whiteBonus < 0 {
		return nil, ErrNegativeBonus
	}
	return &GameRules{
		boardSize:     boardSize,
		koMode:        koMode,
		whiteBonus:    whiteBonus,
		whiteWinsTies: whiteWinsTies,
	}, nil
}

func NewGameRulesFromConfig(cfg *config.Config) (*GameRules, error) {
	km, err := ParseKoMode(cfg.GetString(config.ConfigKoMode))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", config.ConfigKoMode, err)
	}
	rules, err := NewGameRules(cfg.GetInt(config.ConfigBoardSize), km,
		cfg.GetInt(config.ConfigWhiteBonus), cfg.GetBool(config.ConfigWhiteWinsTies))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return rules, nil
}

func (r GameRules) BoardSize() int {
	return r.boardSize
}

func (r GameRules) KoMode() KoMode {
	return r.koMode
}

func (r GameRules) WhiteBonus() int {
	return r.whiteBonus
}

func (r GameRules) WhiteWinsTies() bool {
	return r.whiteWinsTies
}

func (r GameRules) String() string {
	return fmt.Sprintf("%dx%d, %v, white bonus %d, white wins ties: %v",
		r.boardSize, r.boardSize, r.koMode, r.whiteBonus, r.whiteWinsTies)
}
