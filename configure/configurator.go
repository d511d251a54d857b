package configure

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lexcodex/spirvconf/framework"
)

// State tracks a configure run through its linear lifecycle.
type State string

const (
	StateUnconfigured State = "unconfigured"
	StateValidated    State = "validated"
	StateCommandBuilt State = "command_built"
	StateRunning      State = "running"
	StateSucceeded    State = "succeeded"
	StateFailed       State = "failed"
)

// Configurator turns an InvocationRequest into a configure step.
type Configurator struct {
	Runner framework.CommandRunner
	// Out receives the echoed command and the tool's stdout.
	Out io.Writer
	// ErrOut receives the tool's stderr.
	ErrOut io.Writer
	Logger *slog.Logger

	state State
}

// NewConfigurator wires a runner to the console writers.
func NewConfigurator(runner framework.CommandRunner, out, errOut io.Writer, logger *slog.Logger) *Configurator {
	if runner == nil {
		runner = framework.NewLocalCommandRunner()
	}
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Configurator{
		Runner: runner,
		Out:    out,
		ErrOut: errOut,
		Logger: logger,
		state:  StateUnconfigured,
	}
}

// State reports how far the last run progressed.
func (c *Configurator) State() State { return c.state }

// Plan validates the directories, builds the command line and echoes it.
// Nothing is spawned.
func (c *Configurator) Plan(req InvocationRequest) (CommandLine, error) {
	c.transition(StateUnconfigured)
	if err := Validate(req.SourceDir, req.BuildDir); err != nil {
		c.transition(StateFailed, "error", err)
		return CommandLine{}, err
	}
	c.transition(StateValidated, "source", req.SourceDir, "build", req.BuildDir)

	cmdline := BuildCommandLine(req)
	c.transition(StateCommandBuilt, "profile", req.Profile, "definitions", req.Options.Len())
	if _, err := fmt.Fprintln(c.Out, cmdline.String()); err != nil {
		return CommandLine{}, err
	}
	return cmdline, nil
}

// Run plans the invocation, then spawns the tool and relays its stdout line
// by line until it exits.
func (c *Configurator) Run(ctx context.Context, req InvocationRequest) (framework.ProcessResult, error) {
	cmdline, err := c.Plan(req)
	if err != nil {
		return framework.ProcessResult{}, err
	}
	if _, err := c.Runner.LookPath(cmdline.Tool()); err != nil {
		c.transition(StateFailed, "error", err)
		return framework.ProcessResult{}, &ExternalToolFailure{Tool: cmdline.Tool(), Err: err}
	}

	proc, err := c.Runner.Start(ctx, framework.CommandRequest{
		Workdir: req.BuildDir,
		Args:    cmdline.Argv(),
		Env:     req.Env,
		Stderr:  c.ErrOut,
	})
	if err != nil {
		c.transition(StateFailed, "error", err)
		return framework.ProcessResult{}, &ExternalToolFailure{Tool: cmdline.Tool(), Err: err}
	}
	c.transition(StateRunning, "tool", cmdline.Tool())

	var writeErr error
	for line := range proc.Lines() {
		if _, err := io.WriteString(c.Out, line); err != nil {
			writeErr = err
			break
		}
	}
	result, err := proc.Wait()
	if err == nil && writeErr != nil {
		err = fmt.Errorf("relay output: %w", writeErr)
	}
	if err != nil {
		c.transition(StateFailed, "exit_code", result.ExitCode, "error", err)
		return result, &ExternalToolFailure{Tool: cmdline.Tool(), ExitCode: result.ExitCode, Err: err}
	}
	c.transition(StateSucceeded, "lines", result.Lines, "duration", result.Duration)
	return result, nil
}

func (c *Configurator) transition(next State, attrs ...any) {
	c.state = next
	c.Logger.Debug("configure state", append([]any{"state", string(next)}, attrs...)...)
}
