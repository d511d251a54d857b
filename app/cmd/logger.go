package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lexcodex/spirvconf/internal/workspacecfg"
)

// newLogger writes diagnostics to w, keeping stdout free for cmake's output.
// Unknown levels or formats are rejected rather than silently defaulted.
func newLogger(cfg workspacecfg.LoggingConfig, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	switch cfg.Format {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unknown log format %q (choose text or json)", cfg.Format)
}
