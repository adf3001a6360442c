package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewZapLogger(t *testing.T) {
	tests := []struct {
		name    string
		opts    LoggerOpts
		wantErr bool
	}{
		{
			name: "valid debug level",
			opts: LoggerOpts{Level: "debug", IsProduction: false, JSONConsole: false},
		},
		{
			name: "valid info level production",
			opts: LoggerOpts{Level: "info", IsProduction: true, JSONConsole: true},
		},
		{
			name: "none level",
			opts: LoggerOpts{Level: "none", IsProduction: false, JSONConsole: false},
		},
		{
			name:    "invalid level",
			opts:    LoggerOpts{Level: "invalid", IsProduction: false, JSONConsole: false},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, level, err := NewZapLogger(tt.opts)

			if (err != nil) != tt.wantErr {
				t.Errorf("NewZapLogger() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && logger == nil {
				t.Errorf("NewZapLogger() logger is nil")
			}

			if err == nil && tt.opts.Level != "none" {
				expectedLevel, _ := zap.ParseAtomicLevel(tt.opts.Level)
				if level.Level() != expectedLevel.Level() {
					t.Errorf("NewZapLogger() level = %v, want %v", level.Level(), expectedLevel.Level())
				}
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	opts := LoggerOpts{Level: "info", IsProduction: false, JSONConsole: false}
	logger, err := NewLogger(opts)

	if err != nil {
		t.Errorf("NewLogger() error = %v", err)
	}

	if logger.Get() == nil {
		t.Errorf("Logger.Get() returned nil")
	}
}

func TestNewNoopLogger(t *testing.T) {
	logger := NewNoopLogger()

	if logger.Get() == nil {
		t.Errorf("NewNoopLogger().Get() returned nil")
	}
}

func TestLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	opts := LoggerOpts{Level: "info", Output: zapcore.AddSync(&buf)}
	logger, err := NewLogger(opts)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	logger.Get().Info("test message")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("Logger output should contain 'test message', got: %s", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("Logger output should contain an uncolored level, got: %s", output)
	}
}

func TestLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	opts := LoggerOpts{Level: "info", IsProduction: true, JSONConsole: true, Output: zapcore.AddSync(&buf)}
	logger, err := NewLogger(opts)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	logger.Get().Info("test json message", zap.Int("count", 5))

	output := buf.String()
	if !strings.Contains(output, `"msg":"test json message"`) {
		t.Errorf("Logger JSON output should contain the message, got: %s", output)
	}
	if !strings.Contains(output, `"count":5`) {
		t.Errorf("Logger JSON output should contain fields, got: %s", output)
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	opts := LoggerOpts{Level: "warn", Output: zapcore.AddSync(&buf)}
	logger, err := NewLogger(opts)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	zapLogger := logger.Get()

	// These should not appear (below warn level)
	zapLogger.Debug("debug message")
	zapLogger.Info("info message")

	// These should appear (warn level and above)
	zapLogger.Warn("warn message")
	zapLogger.Error("error message")

	output := buf.String()

	if strings.Contains(output, "debug message") {
		t.Errorf("Debug message should not appear with warn level")
	}
	if strings.Contains(output, "info message") {
		t.Errorf("Info message should not appear with warn level")
	}
	if !strings.Contains(output, "warn message") {
		t.Errorf("Warn message should appear with warn level")
	}
	if !strings.Contains(output, "error message") {
		t.Errorf("Error message should appear with warn level")
	}
}

func BenchmarkNewLogger(b *testing.B) {
	opts := LoggerOpts{Level: "info", IsProduction: false, JSONConsole: false}

	for b.Loop() {
		_, err := NewLogger(opts)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLoggerInfo(b *testing.B) {
	var buf bytes.Buffer
	opts := LoggerOpts{Level: "info", Output: zapcore.AddSync(&buf)}
	logger, err := NewLogger(opts)
	if err != nil {
		b.Fatal(err)
	}

	zapLogger := logger.Get()

	for b.Loop() {
		buf.Reset()
		zapLogger.Info("benchmark message")
	}
}
