// Package config provides the configuration loader for forge.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file forge looks for.
const DefaultFilename = "forge.yaml"

// DefaultTool is the external build tool invoked when none is configured.
const DefaultTool = "wasm-pack"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Filename string
	Logger   ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Filename: DefaultFilename,
		Logger:   logger,
	}
}

// Load reads the configuration file in cwd and returns the validated run.
func (l *Loader) Load(cwd string) (*domain.Run, error) {
	path := l.Filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	var forgefile Forgefile
	if err := yaml.Unmarshal(data, &forgefile); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}

	return l.buildRun(&forgefile)
}

func (l *Loader) buildRun(forgefile *Forgefile) (*domain.Run, error) {
	run := &domain.Run{
		Tool:        forgefile.Tool,
		CleanFirst:  true,
		Parallelism: forgefile.Parallelism,
		Preflight:   forgefile.Preflight,
	}

	if run.Tool == "" {
		run.Tool = DefaultTool
	}

	if forgefile.Clean != nil {
		run.CleanFirst = *forgefile.Clean
	}

	if forgefile.Parallelism < 0 {
		return nil, zerr.With(domain.ErrInvalidParallelism, "parallelism", forgefile.Parallelism)
	}

	if forgefile.Timeout != "" {
		timeout, err := time.ParseDuration(forgefile.Timeout)
		if err != nil {
			return nil, zerr.With(domain.ErrInvalidTimeout, "timeout", forgefile.Timeout)
		}
		run.Timeout = timeout
	}

	if forgefile.Parallelism > 1 {
		l.Logger.Warn("parallel builds multiply the build tool's peak resource use")
	}

	outputDirs := make(map[string]string, len(forgefile.Targets))

	for i := range forgefile.Targets {
		target, err := buildTarget(forgefile, &forgefile.Targets[i])
		if err != nil {
			return nil, err
		}

		// Output directories must be disjoint so targets cannot interfere.
		if previous, exists := outputDirs[target.OutputDir]; exists {
			err := zerr.With(domain.ErrDuplicateOutputDir, "output_dir", target.OutputDir)
			err = zerr.With(err, "first_target", previous)
			return nil, zerr.With(err, "duplicate_target", target.Name)
		}
		outputDirs[target.OutputDir] = target.Name

		run.Targets = append(run.Targets, target)
	}

	return run, nil
}

func buildTarget(forgefile *Forgefile, dto *TargetDTO) (domain.Target, error) {
	if err := domain.ValidateTargetName(dto.Name); err != nil {
		return domain.Target{}, err
	}

	modeStr := dto.Mode
	if modeStr == "" {
		modeStr = dto.Name
	}
	mode, err := domain.ParseBuildMode(modeStr)
	if err != nil {
		return domain.Target{}, zerr.With(err, "target", dto.Name)
	}

	scope := dto.Scope
	if scope == "" {
		scope = forgefile.Scope
	}
	if scope == "" {
		return domain.Target{}, zerr.With(domain.ErrMissingScope, "target", dto.Name)
	}

	base := dto.OutName
	if base == "" {
		base = forgefile.Base
	}
	if base == "" {
		return domain.Target{}, zerr.With(domain.ErrMissingBasename, "target", dto.Name)
	}

	outDir := dto.OutDir
	if outDir == "" {
		outDir = "pkg-" + dto.Name
	}

	return domain.Target{
		Name:           dto.Name,
		Mode:           mode,
		OutputDir:      outDir,
		OutputBasename: base,
		PackageScope:   scope,
	}, nil
}
