package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

type LoggerOpts struct {
	Level        string
	IsProduction bool
	JSONConsole  bool // Whether to use JSON encoding for the console output
	// Sink for log records. Defaults to stderr, which is only written when it is a terminal
	// so records never mix into redirected prompt output.
	Output zapcore.WriteSyncer
}

// Use zap WrapCore if interface is required
func NewZapLogger(opts LoggerOpts) (*zap.Logger, zap.AtomicLevel, error) {
	if opts.Level == "none" {
		return zap.NewNop(), zap.NewAtomicLevel(), nil
	}
	level, err := zap.ParseAtomicLevel(opts.Level)
	if err != nil {
		return nil, level, err
	}
	var ecfg zapcore.EncoderConfig
	if opts.IsProduction {
		ecfg = zap.NewProductionEncoderConfig()
	} else {
		ecfg = zap.NewDevelopmentEncoderConfig()
	}
	ecfg.EncodeTime = zapcore.ISO8601TimeEncoder

	out, color := opts.Output, false
	if out == nil {
		if !isTTY() {
			return zap.NewNop(), level, nil
		}
		out, color = zapcore.Lock(os.Stderr), true
	}

	var core zapcore.Core
	if opts.JSONConsole {
		core = consoleJSONCore(ecfg, level, out)
	} else {
		core = consoleCore(ecfg, level, out, color)
	}
	return zap.New(core), level, nil
}

// Core to write pretty output to the console
func consoleCore(ecfg zapcore.EncoderConfig, level zap.AtomicLevel, out zapcore.WriteSyncer, color bool) zapcore.Core {
	ecfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if color {
		ecfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return zapcore.NewCore(zapcore.NewConsoleEncoder(ecfg), out, level)
}

// Core to write only JSON to the console
func consoleJSONCore(ecfg zapcore.EncoderConfig, level zap.AtomicLevel, out zapcore.WriteSyncer) zapcore.Core {
	return zapcore.NewCore(zapcore.NewJSONEncoder(ecfg), out, level)
}

type Logger struct {
	logger *zap.Logger
}

// New wrapped Zap logger.
func NewLogger(opts LoggerOpts) (Logger, error) {
	logger, _, err := NewZapLogger(opts)
	return Logger{logger}, err
}

func NewNoopLogger() Logger {
	return Logger{logger: zap.NewNop()}
}

// Return usable Zap logger.
func (l Logger) Get() *zap.Logger {
	return l.logger
}

func isTTY() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
