package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"
)

var LogLevels = []string{"none", "error", "warn", "info", "debug"}

func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log level, logs are written to stderr when it is a terminal",
			Value:   "warn",
			Sources: cli.EnvVars("LOG_LEVEL"),
			Action: func(ctx context.Context, cmd *cli.Command, v string) error {
				return validateLogLevel(v)
			},
		},
		&cli.StringFlag{
			Name:    "env",
			Usage:   "build environment description",
			Value:   EnvironmentDevelopment.String(),
			Sources: cli.EnvVars("ENVIRONMENT"),
			Action: func(ctx context.Context, cmd *cli.Command, v string) error {
				return validateEnvironment(v)
			},
		},
		&cli.Uint64Flag{
			Name:    "seed",
			Usage:   "random seed for reproducible output, 0 picks a random seed",
			Sources: cli.EnvVars("DATAGEN_SEED"),
		},
		&cli.StringFlag{
			Name:    "config-file",
			Usage:   "optional YAML or JSON file providing log_level, environment and seed",
			Sources: cli.EnvVars("CONFIG_FILE"),
			Action: func(ctx context.Context, cmd *cli.Command, v string) error {
				if err := validateFileInput(v); err != nil {
					return fmt.Errorf("invalid config file: %w", err)
				}
				return nil
			},
		},
	}
}

func validateLogLevel(v string) error {
	if slices.Contains(LogLevels, strings.ToLower(v)) {
		return nil
	}
	return fmt.Errorf("'log-level' must be %v. Received: %v", strings.Join(LogLevels, ", "), v)
}

func validateEnvironment(v string) error {
	if IsEnvironment(v) {
		return nil
	}
	options := []string{EnvironmentDevelopment.String(), EnvironmentProduction.String()}
	return fmt.Errorf("'env' must be %v. Received: %v", strings.Join(options, ", "), v)
}

// Ensures the file input is valid.
func validateFileInput(file string) error {
	if file == "" {
		return errors.New("file is required")
	}
	info, err := os.Stat(file)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", file)
	}
	return nil
}
