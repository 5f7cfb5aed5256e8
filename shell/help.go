package shell

import (
	"embed"
	"strings"

	"github.com/chzyer/readline"
)

//go:embed helptext/*.txt
var helptext embed.FS

var completer = readline.NewPrefixCompleter(
	readline.PcItem("new",
		readline.PcItem("9"), readline.PcItem("13"), readline.PcItem("19")),
	readline.PcItem("play"),
	readline.PcItem("pass"),
	readline.PcItem("undo"),
	readline.PcItem("end"),
	readline.PcItem("show"),
	readline.PcItem("score", readline.PcItem("-format",
		readline.PcItem("yaml"), readline.PcItem("text"))),
	readline.PcItem("help",
		readline.PcItem("new"), readline.PcItem("play"), readline.PcItem("undo"),
		readline.PcItem("end"), readline.PcItem("score")),
	readline.PcItem("exit"),
)

func usage() string {
	dat, err := helptext.ReadFile("helptext/usage.txt")
	if err != nil {
		return "Error loading helptext: " + err.Error()
	}
	return string(dat)
}

func usageTopic(topic string) string {
	dat, err := helptext.ReadFile("helptext/" + topic + ".txt")
	if err != nil {
		return "There is no help text for the topic " + topic
	}
	return string(dat)
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(strings.TrimRight(usage(), "\n")), nil
	}
	return msg(strings.TrimRight(usageTopic(cmd.args[0]), "\n")), nil
}
