package datagen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"syscall"

	"datagen.arpa/datagen/config"
	"datagen.arpa/datagen/datafile"
	"datagen.arpa/datagen/menu"
	"datagen.arpa/logger"
	"datagen.arpa/tools/random"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

type App struct {
	BuildOpts config.BuildOpts
	logger    logger.Logger
	log       *zap.Logger
	config    config.Config
	random    *random.Source
	stdin     io.Reader
	stdout    io.Writer
}

func NewApp(buildOpts config.BuildOpts, stdin io.Reader, stdout io.Writer) *App {
	return &App{
		BuildOpts: buildOpts,
		logger:    logger.NewNoopLogger(),
		log:       zap.NewNop(),
		stdin:     stdin,
		stdout:    stdout,
	}
}

func (a *App) Setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error
	a.config, err = a.BuildOpts.MakeConfig(cmd)
	if err != nil {
		return ctx, fmt.Errorf("config setup: %w", err)
	}

	isProd := a.config.Environment == config.EnvironmentProduction
	a.logger, err = logger.NewLogger(logger.LoggerOpts{
		Level:        a.config.LogLevel,
		IsProduction: isProd,
		JSONConsole:  isProd,
	})
	if err != nil {
		return ctx, err
	}

	a.log = a.logger.Get()
	a.random = random.New(a.config.Seed)

	a.log.Debug("Configured data generator.",
		zap.String("version", a.config.Version),
		zap.Stringer("environment", a.config.Environment),
		zap.Bool("seeded", a.config.Seed != 0),
	)
	return ctx, nil
}

// Interactive runs the menu loop on the app's stdin and stdout.
func (a *App) Interactive(ctx context.Context) error {
	m := menu.NewMenu(a.log, a.stdin, a.stdout, a.Create)
	if err := m.Run(ctx); err != nil {
		if errors.Is(err, menu.ErrInputClosed) {
			a.log.Warn("Input closed before exit was chosen.")
		}
		return err
	}
	return nil
}

// Create generates the requested values and writes them to the request's file.
func (a *App) Create(ctx context.Context, req datafile.Request) (datafile.Result, error) {
	log := a.log.With(zap.String("request_id", req.ID))
	log.Debug("Generating data file.",
		zap.Stringer("kind", req.Kind),
		zap.Uint64("count", req.Count),
		zap.String("filename", req.Filename),
	)

	res, err := datafile.Write(req.Filename, req.Count, datafile.Generate(a.random, req.Kind, req.Count))
	if err != nil {
		log.Error("Failed to write data file.", zap.String("filename", req.Filename), zap.Error(err))
		return res, err
	}
	log.Info("Wrote data file.",
		zap.String("path", res.Path),
		zap.Uint64("lines", res.Lines),
		zap.String("size", humanize.Bytes(uint64(res.Bytes))),
	)
	return res, nil
}

func (a *App) Shutdown(ctx context.Context) error {
	// Sync throws an error when logging to console (sync is for buffered file logging)
	// `sync /dev/stderr: inappropriate ioctl for device`
	// https://github.com/uber-go/zap/issues/880
	if err := a.log.Sync(); err != nil && !errors.Is(err, syscall.ENOTTY) && !errors.Is(err, syscall.EINVAL) {
		return fmt.Errorf("sync logger: %w", err)
	}
	return nil
}

func (a *App) Logger() *zap.Logger {
	return a.logger.Get()
}
