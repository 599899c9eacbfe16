package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/config"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, config.DefaultFilename), []byte(content), 0o644)
	require.NoError(t, err)
}

func TestLoader_Load_FullConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
version: "1"
tool: wasm-pack
scope: influxdata
base: flux-lsp
clean: true
parallelism: 2
timeout: 10m
preflight: true
targets:
  - name: node
  - name: browser
`)

	run, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "wasm-pack", run.Tool)
	assert.True(t, run.CleanFirst)
	assert.Equal(t, 2, run.Parallelism)
	assert.Equal(t, 10*time.Minute, run.Timeout)
	assert.True(t, run.Preflight)

	require.Len(t, run.Targets, 2)
	assert.Equal(t, domain.Target{
		Name:           "node",
		Mode:           domain.BuildModeNode,
		OutputDir:      "pkg-node",
		OutputBasename: "flux-lsp",
		PackageScope:   "influxdata",
	}, run.Targets[0])
	assert.Equal(t, "browser", run.Targets[1].Name)
	assert.Equal(t, domain.BuildModeBrowser, run.Targets[1].Mode)
}

func TestLoader_Load_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
scope: influxdata
base: flux-lsp
targets:
  - name: node
`)

	run, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultTool, run.Tool)
	assert.True(t, run.CleanFirst, "clean defaults to true to match unconditional rebuilds")
	assert.Zero(t, run.Parallelism)
	assert.Zero(t, run.Timeout)
	assert.False(t, run.Preflight)
	assert.Equal(t, "pkg-node", run.Targets[0].OutputDir)
}

func TestLoader_Load_TargetOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
scope: influxdata
base: flux-lsp
targets:
  - name: web
    mode: browser
    outDir: dist/web
    outName: flux-web
    scope: other
`)

	run, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	target := run.Targets[0]
	assert.Equal(t, domain.BuildModeBrowser, target.Mode)
	assert.Equal(t, "dist/web", target.OutputDir)
	assert.Equal(t, "flux-web", target.OutputBasename)
	assert.Equal(t, "other", target.PackageScope)
}

func TestLoader_Load_PreservesDeclarationOrder(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
scope: s
base: b
targets:
  - name: bundler
  - name: node
  - name: browser
`)

	run, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	names := make([]string, len(run.Targets))
	for i, target := range run.Targets {
		names[i] = target.Name
	}
	assert.Equal(t, []string{"bundler", "node", "browser"}, names)
}

func TestLoader_Load_DuplicateOutputDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
scope: s
base: b
targets:
  - name: node
    outDir: pkg
  - name: browser
    outDir: pkg
`)

	_, err := newLoader(t).Load(dir)
	assert.ErrorIs(t, err, domain.ErrDuplicateOutputDir)
}

func TestLoader_Load_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		wantErr error
	}{
		{
			name:    "unknown mode",
			config:  "scope: s\nbase: b\ntargets:\n  - name: node\n    mode: wasm\n",
			wantErr: domain.ErrUnknownBuildMode,
		},
		{
			name:    "invalid target name",
			config:  "scope: s\nbase: b\ntargets:\n  - name: \"no/slash\"\n",
			wantErr: domain.ErrInvalidTargetName,
		},
		{
			name:    "missing scope",
			config:  "base: b\ntargets:\n  - name: node\n",
			wantErr: domain.ErrMissingScope,
		},
		{
			name:    "missing basename",
			config:  "scope: s\ntargets:\n  - name: node\n",
			wantErr: domain.ErrMissingBasename,
		},
		{
			name:    "bad timeout",
			config:  "scope: s\nbase: b\ntimeout: soon\ntargets:\n  - name: node\n",
			wantErr: domain.ErrInvalidTimeout,
		},
		{
			name:    "negative parallelism",
			config:  "scope: s\nbase: b\nparallelism: -1\ntargets:\n  - name: node\n",
			wantErr: domain.ErrInvalidParallelism,
		},
		{
			name:    "not yaml",
			config:  "{{nope",
			wantErr: domain.ErrConfigParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.config)

			_, err := newLoader(t).Load(dir)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWriteStarter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultFilename)

	require.NoError(t, config.WriteStarter(path))

	// The starter must load as-is.
	run, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "wasm-pack", run.Tool)
	require.Len(t, run.Targets, 2)
	assert.Equal(t, "node", run.Targets[0].Name)
	assert.Equal(t, "browser", run.Targets[1].Name)
	assert.Equal(t, "@influxdata/flux-lsp-node", run.Targets[0].PatchedPackageName())
}

func TestWriteStarter_NeverOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte("tool: custom\n"), 0o644))

	err := config.WriteStarter(path)
	assert.ErrorIs(t, err, domain.ErrConfigExists)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "tool: custom\n", string(data))
}

func TestLoader_Load_MissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := newLoader(t).Load(dir)
	assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestLoader_Load_AbsoluteFilename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	err := os.WriteFile(path, []byte("scope: s\nbase: b\ntargets:\n  - name: node\n"), 0o644)
	require.NoError(t, err)

	loader := newLoader(t)
	loader.Filename = path

	run, loadErr := loader.Load(t.TempDir())
	require.NoError(t, loadErr)
	assert.Len(t, run.Targets, 1)
}
