package runner_test

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/robotxt/pkg/config"
	"github.com/yaklabco/robotxt/pkg/pipeline"
	"github.com/yaklabco/robotxt/pkg/runner"
)

func testConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.EditorConfig = false
	return cfg
}

func TestRunCheck(t *testing.T) {
	t.Parallel()

	fsys := memTree(t, map[string]string{
		"/w/a.robot":    robotHeader,
		"/w/b.robot":    "| *** Settings *** |\n| Library | X |\n",
		"/w/c.resource": "*** Keywords ***\r\nKw\r\n\tNo Operation\r\n",
	})
	cfg := testConfig()

	for _, jobs := range []int{1, 4} {
		opts := runner.OptionsFromConfig(cfg, pipeline.ModeCheck, nil)
		opts.WorkingDir = "/w"
		opts.Jobs = jobs

		result, err := runner.New(fsys, pipeline.New(fsys, cfg)).Run(context.Background(), opts)
		require.NoError(t, err)

		require.Len(t, result.Files, 3)
		assert.Equal(t, "/w/a.robot", result.Files[0].Path)
		assert.Equal(t, "/w/c.resource", result.Files[2].Path)
		assert.Equal(t, 3, result.Stats.FilesDiscovered)
		assert.Equal(t, 3, result.Stats.FilesProcessed)
		assert.Zero(t, result.Stats.FilesChanged)
		assert.False(t, result.HasFailures())
		assert.NoError(t, result.Err())
	}
}

func TestRunFormatWrite(t *testing.T) {
	t.Parallel()

	fsys := memTree(t, map[string]string{
		"/w/a.robot": "*** Settings ***\nLibrary   Collections   \n",
		"/w/b.robot": "| *** Settings *** |\n| Library | Collections |\n",
	})

	cfg := testConfig()
	cfg.Dialect = config.DialectPipe
	cfg.Write = true

	opts := runner.OptionsFromConfig(cfg, pipeline.ModeFormat, []string{"/w"})
	result, err := runner.New(fsys, pipeline.New(fsys, cfg)).Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesChanged)
	assert.Equal(t, 1, result.Stats.FilesWritten)
	assert.Equal(t, 1, result.Stats.BackupsCreated)
	assert.True(t, result.HasChanges())
	assert.False(t, result.HasFailures())

	got, err := afero.ReadFile(fsys.Afero(), "/w/a.robot")
	require.NoError(t, err)
	assert.Equal(t, "| *** Settings *** |\n| Library | Collections |\n", string(got))
}

func TestRunAggregatesErrors(t *testing.T) {
	t.Parallel()

	fsys := memTree(t, map[string]string{
		"/w/good.robot": robotHeader,
		"/w/bad.robot":  "*** Settings ***\nLibrary    \xfe\n",
		"/w/ugly.robot": "*** Variables ***\n${X}    \xff\n",
	})

	cfg := testConfig()
	cfg.StrictUTF8 = true

	opts := runner.OptionsFromConfig(cfg, pipeline.ModeCheck, []string{"/w"})
	result, err := runner.New(fsys, pipeline.New(fsys, cfg)).Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.FilesErrored)
	assert.Equal(t, 1, result.Stats.FilesProcessed)
	assert.True(t, result.HasFailures())

	runErr := result.Err()
	require.ErrorIs(t, runErr, pipeline.ErrParseFailure)
	assert.Contains(t, runErr.Error(), "2 errors occurred")
}

func TestRunNoFiles(t *testing.T) {
	t.Parallel()

	fsys := memTree(t, map[string]string{"/w/readme.md": "# x\n"})
	cfg := testConfig()

	result, err := runner.New(fsys, pipeline.New(fsys, cfg)).Run(context.Background(),
		runner.Options{WorkingDir: "/w"})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.Zero(t, result.Stats.FilesDiscovered)
	assert.False(t, result.HasChanges())
}

func TestResultNil(t *testing.T) {
	t.Parallel()

	var result *runner.Result
	assert.False(t, result.HasFailures())
	assert.False(t, result.HasChanges())
	assert.NoError(t, result.Err())
}

func TestCollect(t *testing.T) {
	t.Parallel()

	result := runner.Collect(pipeline.ModeFormat,
		runner.FileOutcome{Path: "<stdin>", Result: &pipeline.Result{Mode: pipeline.ModeFormat, Changed: true}},
		runner.FileOutcome{Path: "bad.robot", Error: errors.New("boom")},
	)

	assert.Equal(t, pipeline.ModeFormat, result.Mode)
	assert.Equal(t, 2, result.Stats.FilesDiscovered)
	assert.Equal(t, 1, result.Stats.FilesProcessed)
	assert.Equal(t, 1, result.Stats.FilesChanged)
	assert.Equal(t, 1, result.Stats.FilesErrored)
	assert.True(t, result.HasFailures())
	require.Error(t, result.Err())
}
