package commands

import (
	"log/slog"

	"git.home.luguber.info/inful/wixproject/internal/config"
	ferrors "git.home.luguber.info/inful/wixproject/internal/foundation/errors"
	"git.home.luguber.info/inful/wixproject/internal/logfields"
	"git.home.luguber.info/inful/wixproject/internal/toolargs"
	"gopkg.in/yaml.v3"
)

// ShowCmd implements the 'show' command.
type ShowCmd struct {
	Argv bool `help:"Include the candle and light argument vectors"`
}

type showView struct {
	config.Resolved `yaml:",inline"`
	CandleArgs      []string `yaml:"candle_args,omitempty"`
	LightArgs       []string `yaml:"light_args,omitempty"`
}

func (c *ShowCmd) Run(g *Global, root *CLI) error {
	s, err := config.Load(root.Config)
	if err != nil {
		return err
	}

	view := showView{Resolved: config.Resolve(s)}
	slog.Debug("Resolved project settings", logfields.ProjectFile(root.Config), logfields.OutDir(view.OutDir))

	if c.Argv {
		if view.CandleArgs, err = toolargs.Candle(s); err != nil {
			return err
		}
		if view.LightArgs, err = toolargs.Light(s); err != nil {
			return err
		}
	}

	enc := yaml.NewEncoder(g.Out)
	enc.SetIndent(2)
	if err := enc.Encode(&view); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to encode settings").Build()
	}
	return enc.Close()
}
