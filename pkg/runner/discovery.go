package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/yaklabco/robotxt/internal/logging"
	"github.com/yaklabco/robotxt/pkg/fsutil"
	"github.com/yaklabco/robotxt/pkg/langdetect"
)

// Discover finds the files to process under opts.Paths and returns their
// absolute paths, sorted and without duplicates.
func Discover(ctx context.Context, fsys *fsutil.FS, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	d := &discoverer{
		fs:      fsys.Afero(),
		workDir: workDir,
		opts:    opts,
		always:  lowerAll(opts.effectiveExtensions()),
		detect:  lowerAll(opts.effectiveDetectExtensions()),
		seen:    make(map[string]struct{}),
		logger:  logging.FromContext(ctx),
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := d.fs.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			if err := d.walk(ctx, absPath); err != nil {
				return nil, err
			}
			continue
		}
		d.consider(absPath)
	}

	slices.Sort(d.files)
	return d.files, nil
}

type discoverer struct {
	fs      afero.Fs
	workDir string
	opts    Options
	always  []string
	detect  []string
	seen    map[string]struct{}
	files   []string
	logger  *log.Logger
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		return os.Getwd()
	}
	return filepath.Abs(workDir)
}

func (d *discoverer) walk(ctx context.Context, root string) error {
	err := afero.Walk(d.fs, root, func(path string, info fs.FileInfo, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrPermission) {
				return nil
			}
			return walkErr
		}

		hidden := path != root && strings.HasPrefix(info.Name(), ".")

		if info.IsDir() {
			if hidden || (path != root && d.excludedDir(d.rel(path))) {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden {
			return nil
		}

		if info.Mode()&fs.ModeSymlink != 0 {
			return d.symlink(ctx, path)
		}

		d.consider(path)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

// symlink handles a symlink met during the walk. File links are treated as
// files; directory links are walked at their target when FollowSymlinks is
// set. Broken links are skipped.
func (d *discoverer) symlink(ctx context.Context, path string) error {
	target, err := d.fs.Stat(path)
	if err != nil {
		return nil //nolint:nilerr // broken symlinks are skipped
	}
	if !target.IsDir() {
		d.consider(path)
		return nil
	}
	if !d.opts.FollowSymlinks {
		return nil
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil //nolint:nilerr // unresolvable targets are skipped
	}
	return d.walk(ctx, resolved)
}

func (d *discoverer) rel(path string) string {
	rel, err := filepath.Rel(d.workDir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// consider adds path when it passes the extension, glob and content checks.
func (d *discoverer) consider(path string) {
	if _, ok := d.seen[path]; ok {
		return
	}

	rel := d.rel(path)
	if matchesAny(rel, d.opts.ExcludeGlobs) {
		return
	}
	if len(d.opts.IncludeGlobs) > 0 && !matchesAny(rel, d.opts.IncludeGlobs) {
		return
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case slices.Contains(d.always, ext):
	case slices.Contains(d.detect, ext):
		content, err := afero.ReadFile(d.fs, path)
		if err != nil {
			return
		}
		result := langdetect.Detect(path, content)
		if !result.Robot {
			d.logger.Debug("skipping file", logging.FieldPath, rel,
				logging.FieldLanguage, result.Language, logging.FieldReason, result.Reason)
			return
		}
	default:
		return
	}

	d.seen[path] = struct{}{}
	d.files = append(d.files, path)
}

func (d *discoverer) excludedDir(rel string) bool {
	for _, pattern := range d.opts.ExcludeGlobs {
		pattern = filepath.ToSlash(pattern)
		if doublestar.MatchUnvalidated(pattern, rel) ||
			doublestar.MatchUnvalidated(strings.TrimSuffix(pattern, "/**"), rel) {
			return true
		}
	}
	return false
}

// matchesAny matches rel against doublestar patterns. Patterns without a
// slash also match the base name, so "*.resource" works at any depth.
func matchesAny(rel string, patterns []string) bool {
	base := filepath.Base(rel)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if doublestar.MatchUnvalidated(pattern, rel) {
			return true
		}
		if !strings.Contains(pattern, "/") && doublestar.MatchUnvalidated(pattern, base) {
			return true
		}
	}
	return false
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for idx, v := range values {
		out[idx] = strings.ToLower(v)
	}
	return out
}
