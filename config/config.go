package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigBoardSize     = "board-size"
	ConfigKoMode        = "ko-mode"
	ConfigWhiteBonus    = "white-bonus"
	ConfigWhiteWinsTies = "white-wins-ties"
	ConfigDebug         = "debug"
	ConfigHistoryFile   = "history-file"
	ConfigFile          = "config-file"
)

// Config is the session configuration. Values come from, in decreasing
// priority: command-line flags, GOBAN_* environment variables, an optional
// config file, and the defaults below.
type Config struct {
	*viper.Viper

	args []string
}

func (c *Config) Load(args []string) error {
	c.Viper = viper.New()

	fs := pflag.NewFlagSet("goban", pflag.ContinueOnError)
	fs.Int(ConfigBoardSize, 19, "the board dimension")
	fs.String(ConfigKoMode, "superko", "repetition rule: ko or superko")
	fs.Int(ConfigWhiteBonus, 0, "points added to white's score (komi)")
	fs.Bool(ConfigWhiteWinsTies, false, "white wins when the scores are equal")
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigHistoryFile, "/tmp/goban_readline.tmp", "readline history file")
	fs.String(ConfigFile, "", "optional YAML/TOML/JSON config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("goban")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if f := c.GetString(ConfigFile); f != "" {
		c.SetConfigFile(f)
		if err := c.ReadInConfig(); err != nil {
			return err
		}
	}
	return nil
}

// Args returns the command-line arguments left over after the flags.
func (c *Config) Args() []string {
	return c.args
}

// SanitizedSettings returns the settings suitable for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
