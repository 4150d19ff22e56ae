package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/robotxt/pkg/fsutil"
	"github.com/yaklabco/robotxt/pkg/runner"
)

const robotHeader = "*** Test Cases ***\nExample\n    Log    hi\n"

func memTree(t *testing.T, files map[string]string) *fsutil.FS {
	t.Helper()

	mem := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0o644))
	}
	return fsutil.New(mem)
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	fsys := memTree(t, map[string]string{
		"/w/suite.robot":             robotHeader,
		"/w/common.resource":         "*** Keywords ***\n",
		"/w/legacy.txt":              robotHeader,
		"/w/notes.txt":               "shopping list\n",
		"/w/README.md":               "# readme\n",
		"/w/nested/deep/a.ROBOT":     robotHeader,
		"/w/.hidden/skip.robot":      robotHeader,
		"/w/nested/.skip.robot":      robotHeader,
		"/w/vendor/lib/other.robot":  robotHeader,
		"/w/results/output.resource": "",
	})

	tests := []struct {
		name string
		opts runner.Options
		want []string
	}{
		{
			name: "defaults",
			opts: runner.Options{WorkingDir: "/w"},
			want: []string{
				"/w/common.resource",
				"/w/legacy.txt",
				"/w/nested/deep/a.ROBOT",
				"/w/results/output.resource",
				"/w/suite.robot",
				"/w/vendor/lib/other.robot",
			},
		},
		{
			name: "exclude directory and base name globs",
			opts: runner.Options{
				WorkingDir:   "/w",
				ExcludeGlobs: []string{"vendor/**", "*.resource"},
			},
			want: []string{"/w/legacy.txt", "/w/nested/deep/a.ROBOT", "/w/suite.robot"},
		},
		{
			name: "include globs",
			opts: runner.Options{WorkingDir: "/w", IncludeGlobs: []string{"nested/**"}},
			want: []string{"/w/nested/deep/a.ROBOT"},
		},
		{
			name: "no detection",
			opts: runner.Options{WorkingDir: "/w", Paths: []string{"legacy.txt", "suite.robot"}, DetectExtensions: []string{}},
			want: []string{"/w/suite.robot"},
		},
		{
			name: "custom extensions",
			opts: runner.Options{WorkingDir: "/w", Extensions: []string{".md"}, DetectExtensions: []string{}},
			want: []string{"/w/README.md"},
		},
		{
			name: "deduplicated multiple paths",
			opts: runner.Options{WorkingDir: "/w", Paths: []string{"nested", "/w/nested/deep/a.ROBOT", "suite.robot"}},
			want: []string{"/w/nested/deep/a.ROBOT", "/w/suite.robot"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := runner.Discover(context.Background(), fsys, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiscoverErrors(t *testing.T) {
	t.Parallel()

	fsys := memTree(t, map[string]string{"/w/a.robot": robotHeader})

	_, err := runner.Discover(context.Background(), fsys, runner.Options{WorkingDir: "/w", Paths: []string{"missing"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = runner.Discover(ctx, fsys, runner.Options{WorkingDir: "/w"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDiscoverSymlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(t.TempDir(), "shared")
	require.NoError(t, os.MkdirAll(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "linked.robot"), []byte(robotHeader), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "own.robot"), []byte(robotHeader), 0o644))
	if err := os.Symlink(target, filepath.Join(dir, "shared")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	fsys := fsutil.OS()

	got, err := runner.Discover(context.Background(), fsys, runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "own.robot")}, got)

	got, err = runner.Discover(context.Background(), fsys, runner.Options{WorkingDir: dir, FollowSymlinks: true})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
