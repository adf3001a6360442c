package datagen

import (
	"context"
	"fmt"

	"datagen.arpa/datagen/datafile"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
)

type generateCommandFlags struct {
	Type   string
	Count  string
	Output string
}

func newGenerateCommandFlags(cmd *cli.Command) *generateCommandFlags {
	return &generateCommandFlags{
		Type:   cmd.String("type"),
		Count:  cmd.String("count"),
		Output: cmd.String("output"),
	}
}

func newGenerateCommand(a *App) *cli.Command {
	return &cli.Command{
		Name:   "generate",
		Usage:  "Write one data file without the interactive menu",
		Action: cmdWithApp(generate, a),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "type",
				Aliases:  []string{"t"},
				Usage:    "Data type, i for integer or f for float",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "count",
				Aliases:  []string{"n"},
				Usage:    "Number of values to generate",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "Destination file, created or truncated",
				Required: true,
			},
		},
	}
}

func generate(ctx context.Context, cmd *cli.Command, a *App) error {
	f := newGenerateCommandFlags(cmd)
	req, err := datafile.NewRequest(f.Type, f.Count, f.Output)
	if err != nil {
		return err
	}

	res, err := a.Create(ctx, req)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	fmt.Fprintf(a.stdout, "Wrote %d %s values to %s (%s)\n", res.Lines, req.Kind, res.Path, humanize.Bytes(uint64(res.Bytes)))
	return nil
}
