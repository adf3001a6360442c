// Package config resolves settings from flags, environment variables and an optional config file
package config

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
)

type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

func (e Environment) String() string {
	return string(e)
}

func IsEnvironment(s string) bool {
	return environmentFromString(s) != ""
}

func environmentFromString(s string) Environment {
	switch strings.ToLower(s) {
	case EnvironmentDevelopment.String():
		return EnvironmentDevelopment
	case EnvironmentProduction.String():
		return EnvironmentProduction
	default:
		return ""
	}
}

// From LDFLAGS
type BuildOpts struct {
	BuildVersion string
	BuildTime    string
}

type Config struct {
	Version     string
	BuildTime   string
	LogLevel    string
	Environment Environment
	Seed        uint64
}

// MakeConfig merges the config file under explicitly set flags and environment variables.
// Flag defaults apply only where neither sets a value.
func (l BuildOpts) MakeConfig(cmd *cli.Command) (Config, error) {
	var file FileConfig
	if path := cmd.String("config-file"); path != "" {
		if err := ReadConfig(path, &file); err != nil {
			return Config{}, fmt.Errorf("config file: %w", err)
		}
	}

	opts := configOpts{
		Version:     Default(l.BuildVersion, "dev"),
		BuildTime:   Default(l.BuildTime, "unknown"),
		LogLevel:    pick(cmd, "log-level", cmd.String("log-level"), file.LogLevel),
		Environment: pick(cmd, "env", cmd.String("env"), file.Environment),
		Seed:        pick(cmd, "seed", cmd.Uint64("seed"), file.Seed),
	}
	return newConfig(opts)
}

type configOpts struct {
	Version     string
	BuildTime   string
	LogLevel    string
	Environment string
	Seed        uint64
}

func newConfig(opts configOpts) (Config, error) {
	if err := validateLogLevel(opts.LogLevel); err != nil {
		return Config{}, err
	}
	if err := validateEnvironment(opts.Environment); err != nil {
		return Config{}, err
	}
	return Config{
		Version:     opts.Version,
		BuildTime:   opts.BuildTime,
		LogLevel:    strings.ToLower(opts.LogLevel),
		Environment: environmentFromString(opts.Environment),
		Seed:        opts.Seed,
	}, nil
}

// pick prefers an explicitly set flag, then the file value, then the flag default.
func pick[T comparable](cmd *cli.Command, name string, flagVal, fileVal T) T {
	var zero T
	if cmd.IsSet(name) || fileVal == zero {
		return flagVal
	}
	return fileVal
}

func Default[T comparable](val T, defaultVal T) T {
	var zero T
	if val == zero {
		return defaultVal
	}
	return val
}
