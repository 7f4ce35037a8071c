package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/trimmonitor/pkg/ports"
)

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewConsoleTo(ports.LevelInfo, &out, &errOut)

	log.Debug("hidden %d", 1)
	log.Info("shown %d", 2)
	log.Warn("warned %d", 3)

	if strings.Contains(out.String(), "hidden") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(out.String(), "shown 2") {
		t.Errorf("expected info on stdout, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "warned 3") {
		t.Errorf("expected warning on stderr, got %q", errOut.String())
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewConsoleTo(ports.LevelDebug, &out, &errOut).WithComponent("matchframe")

	log.Debug("frame %d", 42)

	if got := out.String(); !strings.HasPrefix(got, "[matchframe] frame 42") {
		t.Errorf("expected component prefix, got %q", got)
	}
}

func TestNoopLogger(t *testing.T) {
	log := NewNoop()
	if log.WithComponent("x") != log {
		t.Error("expected WithComponent to return the same logger")
	}
}
