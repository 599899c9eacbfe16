package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/cmd/forge/commands"
	"go.trai.ch/forge/internal/adapters/fs"
	"go.trai.ch/forge/internal/adapters/logger"
	"go.trai.ch/forge/internal/adapters/manifest"
	"go.trai.ch/forge/internal/adapters/shell"
	"go.trai.ch/forge/internal/adapters/telemetry"
	"go.trai.ch/forge/internal/app"
	"go.trai.ch/forge/internal/build"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.trai.ch/forge/internal/engine/orchestrator"
	"go.uber.org/mock/gomock"
)

func newCLI(t *testing.T, loader *mocks.MockConfigLoader) (*commands.CLI, *bytes.Buffer) {
	t.Helper()

	log := logger.New()
	orch := orchestrator.NewOrchestrator(
		shell.NewExecutor(log),
		manifest.NewPatcher(),
		fs.NewDigester(),
		telemetry.NewNoOp(),
		log,
	)

	cli := commands.New(app.New(loader, orch, log))

	var out bytes.Buffer
	cli.SetOutput(&out, &out)
	return cli, &out
}

func TestVersionCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	cli, out := newCLI(t, mocks.NewMockConfigLoader(ctrl))

	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), build.Version)
}

func TestRunCmd_NoArgsShowsHelp(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	cli, out := newCLI(t, loader)

	// No config load happens; the command only prints usage.
	cli.SetArgs([]string{"run"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "run [targets...]")
}

func TestConfigHook(t *testing.T) {
	ctrl := gomock.NewController(t)
	cli, _ := newCLI(t, mocks.NewMockConfigLoader(ctrl))

	var got string
	cli.SetConfigHook(func(path string) { got = path })

	cli.SetArgs([]string{"version", "--config", "custom.yaml"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "custom.yaml", got)
}

func TestInitCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	cli, out := newCLI(t, mocks.NewMockConfigLoader(ctrl))

	path := filepath.Join(t.TempDir(), "forge.yaml")
	cli.SetArgs([]string{"init", "--config", path})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: node")
	assert.Contains(t, string(data), "name: browser")

	// A second init must not clobber the existing file.
	err = cli.Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestCleanCmd_LoaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(".").Return(nil, assert.AnError)

	cli, _ := newCLI(t, loader)
	cli.SetArgs([]string{"clean"})

	err := cli.Execute(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
