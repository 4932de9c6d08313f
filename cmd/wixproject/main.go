package main

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/wixproject/cmd/wixproject/commands"
	ferrors "git.home.luguber.info/inful/wixproject/internal/foundation/errors"
	"github.com/alecthomas/kong"
)

var version = "dev"

func main() {
	cli := &commands.CLI{}
	parser := kong.Must(cli,
		kong.Name("wixproject"),
		kong.Description("Inspect and scaffold WiX installer project settings."),
		kong.UsageOnError(),
		commands.Vars(version),
	)
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	global := &commands.Global{Logger: slog.Default(), Out: os.Stdout}
	if err := ctx.Run(global, cli); err != nil {
		ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
