package domain

import "go.trai.ch/zerr"

var (
	// ErrNoTargetsSpecified is returned when a run is requested without target names.
	ErrNoTargetsSpecified = zerr.New("no targets specified")

	// ErrTargetNotFound is returned when a requested target is not declared in the configuration.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrInvalidTargetName is returned when a target name contains invalid characters.
	ErrInvalidTargetName = zerr.New("target name can only contain alphanumeric characters, hyphens and underscores")

	// ErrUnknownBuildMode is returned when a target declares a build mode the tool does not support.
	ErrUnknownBuildMode = zerr.New("unknown build mode, expected 'node', 'browser' or 'bundler'")

	// ErrDuplicateOutputDir is returned when two targets declare the same output directory.
	ErrDuplicateOutputDir = zerr.New("duplicate output directory")

	// ErrMissingScope is returned when no package scope is configured for a target.
	ErrMissingScope = zerr.New("missing package scope")

	// ErrMissingBasename is returned when no output basename is configured for a target.
	ErrMissingBasename = zerr.New("missing output basename")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigExists is returned when init would overwrite an existing config file.
	ErrConfigExists = zerr.New("config file already exists")

	// ErrConfigWriteFailed is returned when the starter config file cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write config file")

	// ErrInvalidTimeout is returned when the configured timeout cannot be parsed.
	ErrInvalidTimeout = zerr.New("invalid timeout, expected a Go duration like '10m'")

	// ErrInvalidParallelism is returned when the configured parallelism is negative.
	ErrInvalidParallelism = zerr.New("parallelism must be zero or positive")

	// ErrCleanFailed is returned when an output directory exists but cannot be removed.
	ErrCleanFailed = zerr.New("failed to remove output directory")

	// ErrToolNotFound is returned by the preflight check when the build tool is not on PATH.
	ErrToolNotFound = zerr.New("build tool not found on PATH")

	// ErrBuildToolFailed is returned when the build tool subprocess exits non-zero.
	ErrBuildToolFailed = zerr.New("build tool failed")

	// ErrBuildToolTimeout is returned when the build tool subprocess exceeds the run timeout.
	ErrBuildToolTimeout = zerr.New("build tool timed out")

	// ErrManifestReadFailed is returned when the generated manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestWriteFailed is returned when the patched manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrManifestPatternNotFound is returned when the expected package name is absent
	// from the manifest, usually because the build tool's output format changed.
	ErrManifestPatternNotFound = zerr.New("package name not found in manifest")

	// ErrDigestFailed is returned when the patched manifest cannot be hashed.
	ErrDigestFailed = zerr.New("failed to digest manifest")

	// ErrRunFailed is the top-level error for a failed run, carrying the failing
	// target and phase in its metadata.
	ErrRunFailed = zerr.New("run failed")
)
