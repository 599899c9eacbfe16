// Package manifest rewrites generated package manifests per target.
package manifest

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Filename is the manifest file the external build tool emits.
const Filename = "package.json"

// Patcher implements ports.ManifestPatcher with an anchored substring rewrite.
type Patcher struct{}

// NewPatcher creates a new Patcher.
func NewPatcher() *Patcher {
	return &Patcher{}
}

// Patch rewrites the manifest in the target's output directory so its name
// field becomes "@<scope>/<base>-<target>". Every other byte of the file is
// preserved. The write goes to a temp file in the same directory followed by
// a rename, so a concurrent reader observes either the old or the new content,
// never a truncated mix.
func (p *Patcher) Patch(target domain.Target) (string, error) {
	path := filepath.Join(target.OutputDir, Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path derives from validated config
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrManifestReadFailed, err), "path", path)
	}

	patched, err := Rewrite(data, target)
	if err != nil {
		return "", zerr.With(err, "path", path)
	}

	if err := writeAtomic(path, patched); err != nil {
		return "", zerr.With(errors.Join(domain.ErrManifestWriteFailed, err), "path", path)
	}

	return path, nil
}

// Rewrite replaces the first occurrence of the target's package name with its
// per-target variant. The match is an exact substring anchored on the closing
// quote of the name value, so no other field can be affected.
func Rewrite(data []byte, target domain.Target) ([]byte, error) {
	old := []byte(target.PackageName() + `"`)
	replacement := []byte(target.PatchedPackageName() + `"`)

	if !bytes.Contains(data, old) {
		err := zerr.With(domain.ErrManifestPatternNotFound, "expected", string(old))
		return nil, zerr.With(err, "target", target.Name)
	}

	return bytes.Replace(data, old, replacement, 1), nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}

	tmp, err := os.CreateTemp(dir, "."+Filename+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	return nil
}
