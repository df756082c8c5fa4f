package commands

import (
	"bytes"
	"flag"
	"io"
	"strings"
	"testing"
)

func TestExecuteParsesFlags(t *testing.T) {
	r := NewRegistry()
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	steps := fs.Int("steps", 1, "")
	ran := false
	r.Register("run", "step the world", fs, func() error {
		ran = true
		return nil
	})

	if err := r.Execute([]string{"run", "-steps", "42"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !ran {
		t.Error("expected command to run")
	}
	if *steps != 42 {
		t.Errorf("expected steps 42, got %d", *steps)
	}
}

func TestExecuteErrors(t *testing.T) {
	r := NewRegistry()
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	r.Register("run", "", fs, func() error { return nil })

	if err := r.Execute(nil); err == nil {
		t.Error("expected error for missing subcommand")
	}
	if err := r.Execute([]string{"fly"}); err == nil || !strings.Contains(err.Error(), "fly") {
		t.Errorf("expected unknown command error, got %v", err)
	}
	if err := r.Execute([]string{"run", "-bogus"}); err == nil {
		t.Error("expected flag parse error")
	}
}

func TestUsageListsSortedCommands(t *testing.T) {
	r := NewRegistry()
	r.Register("view", "open a window", flag.NewFlagSet("view", flag.ContinueOnError), nil)
	r.Register("run", "headless", flag.NewFlagSet("run", flag.ContinueOnError), nil)

	var buf bytes.Buffer
	r.Usage(&buf)
	out := buf.String()
	if strings.Index(out, "run") > strings.Index(out, "view") {
		t.Errorf("expected sorted usage, got:\n%s", out)
	}
	if !strings.Contains(out, "open a window") {
		t.Errorf("expected summaries in usage, got:\n%s", out)
	}
}
