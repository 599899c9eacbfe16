// Package shell provides the subprocess executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new shell Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs argv[0] with argv[1:] as arguments in dir and blocks until the
// subprocess terminates. Output is streamed line by line to the logger and to
// the provided writers; a non-zero exit is returned with the exit code and a
// tail of the captured output attached.
func (e *Executor) Execute(ctx context.Context, argv []string, dir string, stdout, stderr io.Writer) error {
	if len(argv) == 0 {
		return nil
	}

	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	stdoutLog := &logWriter{logger: e.logger, level: "info"}
	stderrLog := &logWriter{logger: e.logger, level: "error"}
	tail := newTailBuffer(tailLimit)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // tool and args come from validated config
	cmd.Dir = dir
	cmd.Env = os.Environ()
	cmd.Stdout = io.MultiWriter(stdoutLog, stdout, tail)
	cmd.Stderr = io.MultiWriter(stderrLog, stderr, tail)

	err := cmd.Run()

	// Flush partial lines before reporting.
	_ = stdoutLog.Close()
	_ = stderrLog.Close()

	if err == nil {
		return nil
	}

	// The context expiring kills the subprocess; report that as a timeout
	// rather than a plain tool failure.
	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
		return zerr.With(domain.ErrBuildToolTimeout, "tool", argv[0])
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	wrapped := zerr.With(errors.Join(domain.ErrBuildToolFailed, err), "exit_code", exitCode)
	return zerr.With(wrapped, "output_tail", tail.String())
}

// LookPath reports where the named tool resolves on PATH.
func (e *Executor) LookPath(tool string) (string, error) {
	path, err := exec.LookPath(tool)
	if err != nil {
		return "", zerr.With(domain.ErrToolNotFound, "tool", tool)
	}
	return path, nil
}

// logWriter buffers subprocess output and forwards it to the logger one
// complete line at a time.
type logWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")

	if w.level == "info" {
		w.logger.Info(msg)
	} else {
		w.logger.Error(zerr.New(msg))
	}
}

// tailLimit bounds how much subprocess output is attached to failure reports.
const tailLimit = 4096

// tailBuffer keeps the last limit bytes written to it. Writes are
// synchronized because the stdout and stderr pipes are copied on separate
// goroutines.
type tailBuffer struct {
	limit int
	mu    sync.Mutex
	buf   []byte
}

func newTailBuffer(limit int) *tailBuffer {
	return &tailBuffer{limit: limit}
}

func (t *tailBuffer) Write(p []byte) (n int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.buf = append(t.buf, p...)
	if len(t.buf) > t.limit {
		t.buf = t.buf[len(t.buf)-t.limit:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.TrimRight(string(t.buf), "\n")
}
