package domain

import "time"

// Phase identifies which stage of a target's processing an event or error
// belongs to. The orchestrator has no state machine beyond "running target i,
// phase p".
type Phase string

const (
	// PhaseClean is the removal of previous output directories.
	PhaseClean Phase = "clean"
	// PhaseBuild is the external build tool subprocess.
	PhaseBuild Phase = "build"
	// PhasePatch is the manifest name rewrite.
	PhasePatch Phase = "patch"
)

// TargetResult summarizes one successfully processed target.
type TargetResult struct {
	TargetName string
	// PackageName is the patched, per-target package name.
	PackageName string
	// ManifestPath is the absolute or run-relative path of the patched manifest.
	ManifestPath string
	// ManifestDigest is the xxhash digest of the patched manifest content.
	ManifestDigest string
	Duration       time.Duration
}
