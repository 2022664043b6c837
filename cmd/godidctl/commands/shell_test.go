package commands

import (
	"strings"
	"testing"
)

func TestListCommandsReflectsRegisteredSubcommands(t *testing.T) {
	var out strings.Builder
	listCommands(rootCmd, &out)

	got := out.String()
	for _, want := range []string{"decode", "encode", "pack", "schedule", "fleet", "version", "config init", "exit / quit"} {
		if !strings.Contains(got, want) {
			t.Errorf("listCommands() output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "shell ") || strings.Contains(got, "shell\t") {
		t.Errorf("listCommands() should not list itself, got:\n%s", got)
	}
}

func TestRunREPLDispatchesAndExits(t *testing.T) {
	in := strings.NewReader("version\nexit\n")
	var out strings.Builder

	if err := runREPL(rootCmd, in, &out); err != nil {
		t.Fatalf("runREPL: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "godidctl interactive session") {
		t.Errorf("runREPL() output missing banner:\n%s", got)
	}
}
