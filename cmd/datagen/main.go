package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"datagen.arpa/datagen"
	"datagen.arpa/datagen/config"
	"go.uber.org/zap"
)

var (
	buildVersion string
	buildTime    string
)

func main() {
	if err := run(context.Background(), os.Args, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	opts := config.BuildOpts{
		BuildVersion: config.Default(buildVersion, "dev"),
		BuildTime:    buildTime,
	}

	app := datagen.NewApp(opts, stdin, stdout)
	cmd := datagen.NewCommandRoot(app)
	cmd.Writer = stdout
	runErr := cmd.Run(ctx, args)

	if err := app.Shutdown(ctx); err != nil {
		app.Logger().Error("Error during shutdown.", zap.Error(err))
	}
	return runErr
}
