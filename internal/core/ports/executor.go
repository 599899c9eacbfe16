package ports

import (
	"context"
	"io"
)

// Executor defines the interface for invoking the external build tool.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs argv[0] with argv[1:] as arguments in dir, blocking until
	// the subprocess terminates. Output is streamed to stdout and stderr.
	//
	// A non-zero exit is returned as an error carrying the exit code.
	Execute(ctx context.Context, argv []string, dir string, stdout, stderr io.Writer) error

	// LookPath reports where the named tool resolves on PATH, for preflight checks.
	LookPath(tool string) (string, error)
}
