package shell

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/goban/config"
	"github.com/domino14/goban/game"
	"github.com/domino14/goban/territory"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"score -format yaml",
			&shellcmd{"score", nil, map[string]string{"format": "yaml"}},
			nil},
		{"play D4",
			&shellcmd{"play", []string{"D4"}, map[string]string{}},
			nil},
		{"new 9 ko -x y 5 ",
			&shellcmd{"new",
				[]string{"9", "ko", "5"},
				map[string]string{"x": "y"}},
			nil,
		},
		{"undo -3",
			&shellcmd{"undo", []string{"-3"}, map[string]string{}},
			nil},
		{"score -format",
			nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

func newTestController(t *testing.T, args ...string) *ShellController {
	t.Helper()
	cfg := &config.Config{}
	if err := cfg.Load(args); err != nil {
		t.Fatal(err)
	}
	return &ShellController{config: cfg}
}

func run(t *testing.T, sc *ShellController, lines ...string) {
	t.Helper()
	for _, l := range lines {
		if _, err := sc.handle(l); err != nil {
			t.Fatalf("%v: %v", l, err)
		}
	}
}

func TestNoGame(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)
	for _, l := range []string{"play D4", "pass", "undo", "end", "show", "score"} {
		_, err := sc.handle(l)
		is.Equal(err, errNoGame)
	}
}

func TestNewGameUsesConfigDefaults(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t, "--board-size=7", "--ko-mode=ko")
	run(t, sc, "new")
	is.Equal(sc.game.Board().Dim(), 7)
	is.Equal(sc.game.Rules().KoMode(), game.KoModeKo)

	run(t, sc, "new 9 superko 5 true")
	r := sc.game.Rules()
	is.Equal(r.BoardSize(), 9)
	is.Equal(r.KoMode(), game.KoModeSuperko)
	is.Equal(r.WhiteBonus(), 5)
	is.True(r.WhiteWinsTies())

	_, err := sc.handle("new 9 triple")
	is.True(errors.Is(err, game.ErrInvalidKoMode))
	_, err = sc.handle("new 0")
	is.True(errors.Is(err, game.ErrInvalidBoardSize))
}

func TestPlayKoAndUndo(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)
	run(t, sc, "new 5 ko", "play A4", "play A5", "play E1", "play C5",
		"play D1", "play B4", "play B5")
	is.Equal(sc.game.Board().ToPlaintext(), []string{
		".XO..",
		"XO...",
		".....",
		".....",
		"...XX",
	})

	_, err := sc.handle("play A5")
	is.True(errors.Is(err, game.ErrKoViolation))

	resp, err := sc.handle("undo 2")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "Turn 6:"))
	is.Equal(sc.game.Turn(), 6)

	resp, err = sc.handle("undo 50")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "undid 5 instead of 50"))
	is.True(sc.game.Board().IsEmpty())
}

func TestPlayRejectsBadVertex(t *testing.T) {
	sc := newTestController(t)
	run(t, sc, "new 9")
	_, err := sc.handle("play Z99")
	assert.Error(t, err)
	_, err = sc.handle("play")
	assert.Error(t, err)
	assert.Equal(t, 1, sc.game.Turn())
}

func TestPassesEndGameAndScore(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)
	run(t, sc, "new 9 superko 5", "play C7", "play D7")

	_, err := sc.handle("score")
	is.True(err != nil) // not over yet

	run(t, sc, "pass")
	resp, err := sc.handle("pass")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "Both players passed."))
	is.Equal(sc.game.Result().Winner, territory.WinnerWhite)

	resp, err = sc.handle("score -format yaml")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "white_score: 6"))

	resp, err = sc.handle("end")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "white wins"))

	_, err = sc.handle("play E5")
	is.True(errors.Is(err, game.ErrGameOver))
}

func TestHelp(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)
	resp, err := sc.handle("help")
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.message, "Usage:"))
	resp, err = sc.handle("help undo")
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.message, "undo [n]"))
	resp, err = sc.handle("help nothing")
	is.NoErr(err)
	is.Equal(resp.message, "There is no help text for the topic nothing")
}

func TestUnknownCommand(t *testing.T) {
	is := is.New(t)
	sc := newTestController(t)
	_, err := sc.handle("resign")
	is.Equal(err.Error(), `command "resign" not found`)
}
