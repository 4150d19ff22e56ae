// Package runner discovers Robot Framework files and runs the pipeline over
// them with a pool of workers.
package runner

import (
	"github.com/yaklabco/robotxt/pkg/config"
	"github.com/yaklabco/robotxt/pkg/pipeline"
)

// Options controls multi-file processing.
type Options struct {
	// Paths are the files or directories to process. Defaults to ".".
	Paths []string

	// WorkingDir resolves relative Paths and anchors glob matching.
	// Defaults to the process working directory.
	WorkingDir string

	// Extensions are always processed. Defaults to DefaultExtensions().
	Extensions []string

	// DetectExtensions are processed only when their content looks like
	// Robot Framework data. Defaults to DefaultDetectExtensions().
	DetectExtensions []string

	// IncludeGlobs restrict processing to matching paths, relative to
	// WorkingDir. Empty means everything.
	IncludeGlobs []string

	// ExcludeGlobs skip matching files and directories.
	ExcludeGlobs []string

	// FollowSymlinks traverses symlinked directories.
	FollowSymlinks bool

	// Jobs is the number of workers; 0 or less means runtime.NumCPU().
	Jobs int

	// Pipeline is passed to every file.
	Pipeline pipeline.Options
}

// DefaultExtensions returns the extensions processed without detection.
func DefaultExtensions() []string {
	return config.DefaultExtensions()
}

// DefaultDetectExtensions returns the extensions that need content
// detection.
func DefaultDetectExtensions() []string {
	return []string{".txt"}
}

// OptionsFromConfig fills the discovery and pipeline options from cfg.
func OptionsFromConfig(cfg *config.Config, mode pipeline.Mode, paths []string) Options {
	opts := Options{
		Paths:    paths,
		Pipeline: pipeline.OptionsFromConfig(cfg, mode),
	}
	if cfg != nil {
		opts.Extensions = cfg.Extensions
		opts.ExcludeGlobs = cfg.Ignore
		opts.Jobs = cfg.Jobs
	}
	return opts
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectiveDetectExtensions() []string {
	if o.DetectExtensions == nil {
		return DefaultDetectExtensions()
	}
	return o.DetectExtensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
