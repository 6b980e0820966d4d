package cli

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewCLI(t *testing.T) {
	c := New(io.Discard, LogDebug)

	if c.Logger == nil {
		t.Fatal("New() should set a logger")
	}
	if got := c.Logger.GetLevel(); got != log.DebugLevel {
		t.Errorf("level = %v, want debug", got)
	}

	c.SetLogLevel(LogInfo)
	if got := c.Logger.GetLevel(); got != log.InfoLevel {
		t.Errorf("level after SetLogLevel = %v, want info", got)
	}
}

func TestRootCommand(t *testing.T) {
	c := testCLI()
	root := c.RootCommand()

	if root.Use != appName {
		t.Errorf("root.Use = %q, want %q", root.Use, appName)
	}
	if root.Version == "" {
		t.Error("root command should carry a version")
	}

	want := []string{"completion", "layout", "preview", "render", "show", "synth"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing %q", name)
		}
	}
}
