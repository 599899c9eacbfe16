// Package app implements the application layer for forge.
package app

import (
	"context"
	"errors"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	orchestrator *orchestrator.Orchestrator
	logger       ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, orch *orchestrator.Orchestrator, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		orchestrator: orch,
		logger:       log,
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Clean overrides the configured clean-first behavior when non-nil.
	Clean *bool
	// Scope overrides the configured package scope for every target.
	Scope string
}

// Run executes the build for the named targets. The reserved name "all"
// selects every declared target.
func (a *App) Run(ctx context.Context, targetNames []string, opts RunOptions) error {
	run, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if opts.Clean != nil {
		run.CleanFirst = *opts.Clean
	}
	if opts.Scope != "" {
		for i := range run.Targets {
			run.Targets[i].PackageScope = opts.Scope
		}
	}

	targets, err := run.Select(targetNames)
	if err != nil {
		return err
	}

	results, err := a.orchestrator.Run(ctx, run, targets)
	if err != nil {
		return errors.Join(domain.ErrRunFailed, err)
	}

	a.logger.Info(summarize(results))
	return nil
}

// Clean removes the output directories of every declared target without
// building anything.
func (a *App) Clean(_ context.Context, targetNames []string) error {
	run, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if len(targetNames) == 0 {
		targetNames = []string{"all"}
	}

	targets, err := run.Select(targetNames)
	if err != nil {
		return err
	}

	return a.orchestrator.Clean(targets)
}
