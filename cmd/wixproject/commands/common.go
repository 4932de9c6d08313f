package commands

import (
	"io"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/wixproject/internal/config"
	"github.com/alecthomas/kong"
)

// Global holds state shared by all subcommands.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Project file path" default:"${project_file}" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Init InitCmd `cmd:"" help:"Write an example project file"`
	Show ShowCmd `cmd:"" help:"Print the resolved project settings"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// Vars are the interpolation variables the CLI definition relies on.
func Vars(version string) kong.Vars {
	return kong.Vars{
		"version":      version,
		"project_file": config.DefaultPath,
	}
}
