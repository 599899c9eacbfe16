package shell_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/shell"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Execute_MultiLineOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockLogger.EXPECT().Info("line1").Times(1)
	mockLogger.EXPECT().Info("line2").Times(1)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(),
		[]string{"sh", "-c", "echo line1; echo line2"},
		t.TempDir(), io.Discard, io.Discard)
	require.NoError(t, err)
}

func TestExecutor_Execute_StreamsToWriters(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(mockLogger)

	var stdout, stderr bytes.Buffer
	err := executor.Execute(context.Background(),
		[]string{"sh", "-c", "echo out; echo err >&2"},
		t.TempDir(), &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestExecutor_Execute_NonZeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(),
		[]string{"sh", "-c", "echo boom >&2; exit 3"},
		t.TempDir(), io.Discard, io.Discard)
	assert.ErrorIs(t, err, domain.ErrBuildToolFailed)
}

func TestExecutor_Execute_InterleavedStreams(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(mockLogger)

	// Both streams write concurrently; the output tail must stay consistent
	// under the race detector.
	script := `i=0
while [ $i -lt 500 ]; do
  echo "out $i"
  echo "err $i" >&2
  i=$((i+1))
done
exit 3`

	var stdout, stderr bytes.Buffer
	err := executor.Execute(context.Background(),
		[]string{"sh", "-c", script},
		t.TempDir(), &stdout, &stderr)
	require.ErrorIs(t, err, domain.ErrBuildToolFailed)

	assert.Equal(t, 500, strings.Count(stdout.String(), "out "))
	assert.Equal(t, 500, strings.Count(stderr.String(), "err "))
}

func TestExecutor_Execute_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	executor := shell.NewExecutor(mockLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := executor.Execute(ctx,
		[]string{"sh", "-c", "sleep 5"},
		t.TempDir(), io.Discard, io.Discard)
	assert.ErrorIs(t, err, domain.ErrBuildToolTimeout)
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	err := executor.Execute(context.Background(), nil, "", io.Discard, io.Discard)
	require.NoError(t, err)
}

func TestExecutor_LookPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	path, err := executor.LookPath("sh")
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	_, err = executor.LookPath("definitely-not-a-real-build-tool")
	assert.ErrorIs(t, err, domain.ErrToolNotFound)
}
