package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Deal     DealCmd          `cmd:"" help:"Build a deck and deal hands from it"`
	Show     ShowCmd          `cmd:"" help:"Print the deck in its current order"`
	Eval     EvalCmd          `cmd:"" help:"Classify a hand given as card labels"`
	Simulate SimulateCmd      `cmd:"" help:"Deal many decks and report hand category frequencies"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("carddeck"),
		kong.Description("Configurable multi-deck card dealer and poker hand classifier"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
