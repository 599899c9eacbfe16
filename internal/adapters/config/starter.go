package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Starter is the configuration written by `forge init`. It documents a
// typical two-target wasm build; adjust scope, base and targets to taste.
const Starter = `# forge build configuration.
version: "1"

# External build tool invoked once per target.
tool: wasm-pack

# Package namespace and base name, combined into "@<scope>/<base>".
scope: influxdata
base: flux-lsp

# Targets are built in declaration order. Each builds into its own output
# directory (default pkg-<name>) and its generated manifest is renamed to
# "@<scope>/<base>-<name>".
targets:
  - name: node
  - name: browser
`

// WriteStarter writes the starter configuration to path. An existing file is
// never overwritten.
func WriteStarter(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return zerr.With(domain.ErrConfigExists, "path", path)
		}
		return zerr.With(errors.Join(domain.ErrConfigWriteFailed, err), "path", path)
	}

	if _, err := f.WriteString(Starter); err != nil {
		_ = f.Close()
		return zerr.With(errors.Join(domain.ErrConfigWriteFailed, err), "path", path)
	}

	return f.Close()
}
