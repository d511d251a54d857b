package framework

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"os/exec"
	"time"
)

// CommandRequest captures process execution metadata for a local child process.
type CommandRequest struct {
	Workdir string
	Args    []string
	Env     []string
	// Stderr receives the child's standard error untouched. Nil inherits
	// the parent's stderr.
	Stderr io.Writer
}

// ProcessResult describes how a child process finished.
type ProcessResult struct {
	ExitCode int
	Lines    int
	Duration time.Duration
}

// Success reports whether the child exited with status zero.
func (r ProcessResult) Success() bool { return r.ExitCode == 0 }

// Process is a started child whose stdout is consumed one line at a time.
type Process interface {
	// Lines yields stdout lines, newline included, as they are produced.
	// Iteration blocks until the next line is available and ends when the
	// stream closes.
	Lines() iter.Seq[string]
	// Wait blocks until the child exits. Unread stdout is discarded first.
	Wait() (ProcessResult, error)
}

// CommandRunner describes a primitive capable of starting external commands.
type CommandRunner interface {
	LookPath(name string) (string, error)
	Start(ctx context.Context, req CommandRequest) (Process, error)
}

// LocalCommandRunner launches commands directly on the host.
type LocalCommandRunner struct{}

// NewLocalCommandRunner returns a runner backed by os/exec.
func NewLocalCommandRunner() *LocalCommandRunner {
	return &LocalCommandRunner{}
}

// LookPath resolves name against PATH.
func (r *LocalCommandRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Start spawns the requested command with its stdout attached to a pipe.
func (r *LocalCommandRunner) Start(ctx context.Context, req CommandRequest) (Process, error) {
	if len(req.Args) == 0 {
		return nil, errors.New("command arguments required")
	}
	cmd := exec.CommandContext(ctx, req.Args[0], req.Args[1:]...)
	if req.Workdir != "" {
		cmd.Dir = req.Workdir
	}
	if len(req.Env) > 0 {
		cmd.Env = append(os.Environ(), req.Env...)
	}
	cmd.Stderr = req.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	started := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", req.Args[0], err)
	}
	return &localProcess{
		cmd:     cmd,
		stdout:  bufio.NewReader(stdout),
		started: started,
	}, nil
}

type localProcess struct {
	cmd     *exec.Cmd
	stdout  *bufio.Reader
	started time.Time
	lines   int
	readErr error
	done    bool
}

func (p *localProcess) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for !p.done {
			line, err := p.stdout.ReadString('\n')
			if line != "" {
				p.lines++
				if !yield(line) {
					return
				}
			}
			if err != nil {
				p.done = true
				if !errors.Is(err, io.EOF) {
					p.readErr = err
				}
			}
		}
	}
}

func (p *localProcess) Wait() (ProcessResult, error) {
	// exec requires every pipe read to finish before Wait closes it.
	if !p.done {
		_, _ = io.Copy(io.Discard, p.stdout)
		p.done = true
	}
	err := p.cmd.Wait()
	result := ProcessResult{
		ExitCode: -1,
		Lines:    p.lines,
		Duration: time.Since(p.started),
	}
	if p.cmd.ProcessState != nil {
		result.ExitCode = p.cmd.ProcessState.ExitCode()
	}
	if err != nil {
		return result, err
	}
	if p.readErr != nil {
		return result, fmt.Errorf("read stdout: %w", p.readErr)
	}
	return result, nil
}
