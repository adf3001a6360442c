package datagen

import (
	"context"
	"fmt"

	"datagen.arpa/datagen/config"
	"github.com/urfave/cli/v3"
)

type cmdWithArgs func(ctx context.Context, cmd *cli.Command, a *App) error

// Wrap subcommands to inject the app dependency
func cmdWithApp(action cmdWithArgs, app *App) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		return action(ctx, cmd, app)
	}
}

type setupWithArgs func(ctx context.Context, cmd *cli.Command) (context.Context, error)

func setup(setup setupWithArgs) cli.BeforeFunc {
	return func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		return setup(ctx, cmd)
	}
}

func NewCommandRoot(a *App) *cli.Command {
	opts := a.BuildOpts
	version := fmt.Sprintf("%s (%s)", config.Default(opts.BuildVersion, "dev"), opts.BuildTime)
	if opts.BuildTime == "" {
		version = config.Default(opts.BuildVersion, "dev")
	}
	return &cli.Command{
		Name:    "datagen",
		Usage:   "Generate files of random integers or floats",
		Version: version,
		Before:  setup(a.Setup), // runs before any command to configure logging and the random source
		Action: cmdWithApp(func(ctx context.Context, cmd *cli.Command, a *App) error {
			if cmd.Args().Present() {
				return fmt.Errorf("unknown command %q", cmd.Args().First())
			}
			return a.Interactive(ctx)
		}, a),
		Commands: Commands(a),
		Flags:    config.Flags(),
	}
}

func Commands(a *App) []*cli.Command {
	return []*cli.Command{
		newGenerateCommand(a),
	}
}
