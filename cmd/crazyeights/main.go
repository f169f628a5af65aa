package main

import (
	"strings"

	"github.com/alecthomas/kong"

	"github.com/lox/crazyeights/internal/bot"
	"github.com/lox/crazyeights/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play against the computer (default)"`
	Simulate SimulateCmd      `cmd:"" help:"Run bot-vs-bot games and report statistics"`
	Validate ValidateCmd      `cmd:"" help:"Check a saved game file"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("crazyeights"),
		kong.Description("Crazy Eights in the terminal against a computer opponent"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"bots":        strings.Join(bot.Names, ","),
			"config_file": config.DefaultFile,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
