package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/wixproject/internal/config"
	"git.home.luguber.info/inful/wixproject/internal/logfields"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite an existing project file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	if err := config.Init(root.Config, i.Force); err != nil {
		return err
	}
	slog.Debug("Project file initialized", logfields.ProjectFile(root.Config))
	_, _ = fmt.Fprintf(g.Out, "Wrote project file %s\n", root.Config)
	return nil
}
