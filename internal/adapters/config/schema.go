package config

// Forgefile represents the structure of the forge.yaml configuration file.
type Forgefile struct {
	Version string `yaml:"version"`
	// Tool is the external build tool binary. Defaults to "wasm-pack".
	Tool string `yaml:"tool"`
	// Scope is the package namespace shared by all targets unless overridden.
	Scope string `yaml:"scope"`
	// Base is the package base name shared by all targets unless overridden.
	Base string `yaml:"base"`
	// Clean removes output directories before building. Defaults to true so
	// every run starts from empty output directories.
	Clean *bool `yaml:"clean"`
	// Parallelism is the number of targets built concurrently. Defaults to 1.
	Parallelism int `yaml:"parallelism"`
	// Timeout bounds each build subprocess, as a Go duration string.
	Timeout string `yaml:"timeout"`
	// Preflight checks tool availability before the run starts.
	Preflight bool `yaml:"preflight"`
	// Targets is the ordered list of build targets.
	Targets []TargetDTO `yaml:"targets"`
}

// TargetDTO represents a target definition in the configuration.
type TargetDTO struct {
	Name string `yaml:"name"`
	// Mode is the build mode: node, browser or bundler. Defaults to the
	// target name when that is itself a valid mode.
	Mode string `yaml:"mode"`
	// OutDir is the output directory. Defaults to "pkg-<name>".
	OutDir string `yaml:"outDir"`
	// OutName overrides the package base name for this target.
	OutName string `yaml:"outName"`
	// Scope overrides the package scope for this target.
	Scope string `yaml:"scope"`
}
