package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/fs"
	"go.trai.ch/forge/internal/core/domain"
)

func TestDigester_DigestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "package.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "@scope/pkg"}`), 0o644))

	digester := fs.NewDigester()

	first, err := digester.DigestFile(path)
	require.NoError(t, err)
	assert.Len(t, first, 16, "digest is a 16-char hex string")

	// Same content, same digest.
	second, err := digester.DigestFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Different content, different digest.
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "@scope/pkg-node"}`), 0o644))
	third, err := digester.DigestFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestDigester_DigestFile_Missing(t *testing.T) {
	digester := fs.NewDigester()

	_, err := digester.DigestFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, domain.ErrDigestFailed)
}
