package ports

import "go.trai.ch/forge/internal/core/domain"

// ManifestPatcher rewrites a target's generated manifest so the package name
// carries the target suffix.
//
//go:generate mockgen -source=manifest_patcher.go -destination=mocks/mock_manifest_patcher.go -package=mocks
type ManifestPatcher interface {
	// Patch rewrites the manifest in the target's output directory and returns
	// the path of the patched file. The rewrite is atomic from the perspective
	// of any concurrent reader.
	Patch(target domain.Target) (string, error)
}
