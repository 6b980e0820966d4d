package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	if logger == nil {
		t.Fatal("newLogger() returned nil")
	}

	logger.Info("Window open")

	if buf.Len() == 0 {
		t.Error("logger should have written output")
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		at      log.Level
		logAt   log.Level
		wantLog bool
	}{
		{name: "info passes at info", at: log.InfoLevel, logAt: log.InfoLevel, wantLog: true},
		{name: "debug filtered at info", at: log.InfoLevel, logAt: log.DebugLevel, wantLog: false},
		{name: "debug passes at debug", at: log.DebugLevel, logAt: log.DebugLevel, wantLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.at)

			logger.Log(tt.logAt, "presenting frame")

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	prog := newProgress(logger)
	if prog == nil {
		t.Fatal("newProgress() returned nil")
	}

	// Sleep long enough for a measurable duration
	time.Sleep(10 * time.Millisecond)
	prog.done("Composed frame")

	if !bytes.Contains(buf.Bytes(), []byte("Composed frame")) {
		t.Errorf("done() output %q should contain the message", buf.String())
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	ctx := withLogger(context.Background(), logger)

	got := loggerFromContext(ctx)
	if got != logger {
		t.Fatal("loggerFromContext should return the attached logger")
	}

	got.Info("present complete")
	if buf.Len() == 0 {
		t.Error("attached logger should write to its buffer")
	}
}

func TestLoggerFromContextDefault(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext should fall back to the default logger")
	}
}
