// Package orchestrator drives the per-target build and patch phases.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Orchestrator produces one correctly-named package per declared target.
type Orchestrator struct {
	executor  ports.Executor
	patcher   ports.ManifestPatcher
	digester  ports.Digester
	telemetry ports.Telemetry
	logger    ports.Logger
}

// NewOrchestrator creates a new Orchestrator with the given dependencies.
func NewOrchestrator(
	executor ports.Executor,
	patcher ports.ManifestPatcher,
	digester ports.Digester,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		executor:  executor,
		patcher:   patcher,
		digester:  digester,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Run executes the given targets in declaration order: optional clean, then
// build followed immediately by the manifest patch for each target. The run
// stops at the first failure; the returned error names the failing target and
// phase. Failed runs leave partially-populated output directories in place
// for inspection.
func (o *Orchestrator) Run(ctx context.Context, run *domain.Run, targets []domain.Target) ([]domain.TargetResult, error) {
	if len(targets) == 0 {
		return nil, domain.ErrNoTargetsSpecified
	}

	if run.Preflight {
		path, err := o.executor.LookPath(run.Tool)
		if err != nil {
			return nil, err
		}
		o.logger.Info(fmt.Sprintf("using %s at %s", run.Tool, path))
	}

	if run.CleanFirst {
		if err := o.Clean(targets); err != nil {
			return nil, err
		}
	}

	if run.Parallelism > 1 {
		return o.runParallel(ctx, run, targets)
	}

	results := make([]domain.TargetResult, 0, len(targets))
	for _, target := range targets {
		result, err := o.runTarget(ctx, run, target)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

// runParallel builds targets concurrently. Output directories are disjoint so
// targets cannot interfere; a target's own phases still run consecutively on
// one goroutine. The first failure cancels the remaining targets.
func (o *Orchestrator) runParallel(ctx context.Context, run *domain.Run, targets []domain.Target) ([]domain.TargetResult, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(run.Parallelism)

	results := make([]domain.TargetResult, len(targets))
	for i, target := range targets {
		g.Go(func() error {
			result, err := o.runTarget(ctx, run, target)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Clean removes each target's output directory. Removal of a non-existent
// directory is not an error, so Clean is idempotent.
func (o *Orchestrator) Clean(targets []domain.Target) error {
	for _, target := range targets {
		if err := os.RemoveAll(target.OutputDir); err != nil {
			failure := zerr.With(errors.Join(domain.ErrCleanFailed, err), "output_dir", target.OutputDir)
			return tagFailure(failure, target.Name, domain.PhaseClean)
		}
	}
	return nil
}

func (o *Orchestrator) runTarget(ctx context.Context, run *domain.Run, target domain.Target) (domain.TargetResult, error) {
	start := time.Now()

	ctx, vtx := o.telemetry.Record(ctx, "build "+target.Name)

	if err := o.build(ctx, run, target, vtx); err != nil {
		vtx.Complete(err)
		return domain.TargetResult{}, tagFailure(err, target.Name, domain.PhaseBuild)
	}

	path, digest, err := o.patch(target)
	if err != nil {
		vtx.Complete(err)
		return domain.TargetResult{}, tagFailure(err, target.Name, domain.PhasePatch)
	}

	vtx.Complete(nil)

	result := domain.TargetResult{
		TargetName:     target.Name,
		PackageName:    target.PatchedPackageName(),
		ManifestPath:   path,
		ManifestDigest: digest,
		Duration:       time.Since(start),
	}

	o.logger.Info(fmt.Sprintf("built %s (%s, digest %s) in %s",
		result.PackageName, result.ManifestPath, result.ManifestDigest, result.Duration.Round(time.Millisecond)))

	return result, nil
}

func (o *Orchestrator) build(ctx context.Context, run *domain.Run, target domain.Target, vtx ports.Vertex) error {
	if run.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, run.Timeout)
		defer cancel()
	}

	argv := target.BuildCommand(run.Tool)
	return o.executor.Execute(ctx, argv, "", vtx.Stdout(), vtx.Stderr())
}

func (o *Orchestrator) patch(target domain.Target) (path, digest string, err error) {
	path, err = o.patcher.Patch(target)
	if err != nil {
		return "", "", err
	}

	digest, err = o.digester.DigestFile(path)
	if err != nil {
		return "", "", err
	}

	return path, digest, nil
}

// tagFailure attaches the failing target and phase to an error, both as
// metadata and in the message so text output names them.
func tagFailure(err error, target string, phase domain.Phase) error {
	err = zerr.With(err, "target", target)
	err = zerr.With(err, "phase", string(phase))
	return zerr.Wrap(err, fmt.Sprintf("target %s failed during %s", target, phase))
}
