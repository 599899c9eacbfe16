// Package domain contains the core types for forge.
package domain

import (
	"regexp"
	"time"

	"go.trai.ch/zerr"
)

// BuildMode selects the flavor of package the external build tool produces.
type BuildMode string

const (
	// BuildModeNode produces a package for the Node.js runtime.
	BuildModeNode BuildMode = "node"
	// BuildModeBrowser produces a package loadable directly in browsers.
	BuildModeBrowser BuildMode = "browser"
	// BuildModeBundler produces a package for consumption by bundlers.
	BuildModeBundler BuildMode = "bundler"
)

// toolTargets maps a BuildMode to the --target value the external tool expects.
var toolTargets = map[BuildMode]string{
	BuildModeNode:    "nodejs",
	BuildModeBrowser: "browser",
	BuildModeBundler: "bundler",
}

// ParseBuildMode converts a configuration string to a BuildMode.
func ParseBuildMode(s string) (BuildMode, error) {
	mode := BuildMode(s)
	if _, ok := toolTargets[mode]; !ok {
		return "", zerr.With(ErrUnknownBuildMode, "mode", s)
	}
	return mode, nil
}

// ToolTarget returns the selector passed to the external build tool.
func (m BuildMode) ToolTarget() string {
	return toolTargets[m]
}

var validTargetNameRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// ValidateTargetName checks that a target name is usable as a package name suffix.
func ValidateTargetName(name string) error {
	if !validTargetNameRegex.MatchString(name) {
		return zerr.With(ErrInvalidTargetName, "target", name)
	}
	return nil
}

// Target is one named build configuration producing one output package.
// Targets are built from configuration at load time and immutable for the
// duration of a run.
type Target struct {
	Name           string
	Mode           BuildMode
	OutputDir      string
	OutputBasename string
	PackageScope   string
}

// PackageName returns the scoped name the external tool writes into the
// manifest, e.g. "@influxdata/flux-lsp".
func (t Target) PackageName() string {
	return "@" + t.PackageScope + "/" + t.OutputBasename
}

// PatchedPackageName returns the per-target name the manifest is rewritten
// to, e.g. "@influxdata/flux-lsp-node".
func (t Target) PatchedPackageName() string {
	return t.PackageName() + "-" + t.Name
}

// BuildCommand returns the argv used to invoke the external build tool for
// this target.
func (t Target) BuildCommand(tool string) []string {
	return []string{
		tool,
		"build",
		"--target", t.Mode.ToolTarget(),
		"--out-dir", t.OutputDir,
		"--out-name", t.OutputBasename,
		"--scope", t.PackageScope,
	}
}

// Run is a single forge invocation: an ordered sequence of targets plus the
// global execution options. It is constructed from configuration, executed
// once and discarded.
type Run struct {
	// Tool is the external build tool binary, e.g. "wasm-pack".
	Tool string
	// Targets in declaration order. Output directories are unique across targets.
	Targets []Target
	// CleanFirst removes every target's output directory before building.
	CleanFirst bool
	// Parallelism is the number of targets built concurrently. Values below 2
	// keep the default strictly sequential semantics.
	Parallelism int
	// Timeout bounds each build subprocess. Zero means no limit.
	Timeout time.Duration
	// Preflight verifies the tool is on PATH before starting.
	Preflight bool
}

// Select returns the targets matching the given names, in declaration order.
// The reserved name "all" selects every target.
func (r *Run) Select(names []string) ([]Target, error) {
	if len(names) == 0 {
		return nil, ErrNoTargetsSpecified
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		if n == "all" {
			return r.Targets, nil
		}
		wanted[n] = true
	}

	selected := make([]Target, 0, len(wanted))
	for _, t := range r.Targets {
		if wanted[t.Name] {
			selected = append(selected, t)
			delete(wanted, t.Name)
		}
	}

	for n := range wanted {
		return nil, zerr.With(ErrTargetNotFound, "target", n)
	}

	return selected, nil
}
