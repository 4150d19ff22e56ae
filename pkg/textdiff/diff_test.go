package textdiff_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/robotxt/pkg/textdiff"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: nil},
		{name: "lf", text: "a\nb\n", want: []string{"a\n", "b\n"}},
		{name: "no final terminator", text: "a\nb", want: []string{"a\n", "b"}},
		{name: "crlf", text: "a\r\nb\r\n", want: []string{"a\r\n", "b\r\n"}},
		{name: "cr", text: "a\rb\r", want: []string{"a\r", "b\r"}},
		{name: "mixed", text: "a\r\nb\nc\rd", want: []string{"a\r\n", "b\n", "c\r", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, textdiff.SplitLines(tt.text))
		})
	}
}

func TestComputeEqual(t *testing.T) {
	t.Parallel()

	d := textdiff.Compute("a.robot", []byte("x\n"), []byte("x\n"))
	assert.Nil(t, d)
	assert.False(t, d.HasChanges())
	assert.Empty(t, d.String())
	assert.Nil(t, d.Edits())
}

func TestComputeUnified(t *testing.T) {
	t.Parallel()

	original := "*** Settings ***\nLibrary   Collections\nLibrary   OperatingSystem\n"
	modified := "*** Settings ***\nLibrary   Collections    WITH NAME    C\nLibrary   OperatingSystem\n"

	d := textdiff.Compute("/suite/a.robot", []byte(original), []byte(modified))
	require.NotNil(t, d)
	assert.Equal(t, 1, d.Additions)
	assert.Equal(t, 1, d.Deletions)

	want := "--- a/suite/a.robot\n" +
		"+++ b/suite/a.robot\n" +
		"@@ -1,3 +1,3 @@\n" +
		" *** Settings ***\n" +
		"-Library   Collections\n" +
		"+Library   Collections    WITH NAME    C\n" +
		" Library   OperatingSystem\n"
	assert.Equal(t, want, d.String())
	assert.Equal(t, "diff --git a/suite/a.robot b/suite/a.robot\n"+want, d.FullString())
}

func TestComputeSeparateHunks(t *testing.T) {
	t.Parallel()

	var orig, mod []string
	for idx := range 20 {
		line := strings.Repeat("x", idx+1) + "\n"
		orig = append(orig, line)
		switch idx {
		case 1, 17:
			mod = append(mod, "changed\n")
		default:
			mod = append(mod, line)
		}
	}

	d := textdiff.Compute("a.robot", []byte(strings.Join(orig, "")), []byte(strings.Join(mod, "")))
	require.Len(t, d.Hunks, 2)

	first, second := d.Hunks[0], d.Hunks[1]
	assert.Equal(t, 1, first.OldStart)
	assert.Equal(t, 5, first.OldCount)
	assert.Equal(t, 15, second.OldStart)
	assert.Equal(t, 6, second.OldCount)
	assert.Equal(t, 15, second.NewStart)
}

func TestComputeLineSeparatorChange(t *testing.T) {
	t.Parallel()

	d := textdiff.Compute("a.robot", []byte("a\r\nb\r\n"), []byte("a\nb\n"))
	require.NotNil(t, d)
	assert.Equal(t, 2, d.Additions)
	assert.Equal(t, 2, d.Deletions)
}

func TestComputeMissingFinalNewline(t *testing.T) {
	t.Parallel()

	d := textdiff.Compute("a.robot", []byte("a\nb"), []byte("a\nb\n"))
	require.NotNil(t, d)

	want := "--- a/a.robot\n" +
		"+++ b/a.robot\n" +
		"@@ -1,2 +1,2 @@\n" +
		" a\n" +
		"-b\n\\ No newline at end of file\n" +
		"+b\n"
	assert.Equal(t, want, d.String())
}

func TestComputeFromEmpty(t *testing.T) {
	t.Parallel()

	d := textdiff.Compute("new.robot", nil, []byte("a\nb\n"))
	require.Len(t, d.Hunks, 1)

	h := d.Hunks[0]
	assert.Equal(t, 0, h.OldStart)
	assert.Equal(t, 0, h.OldCount)
	assert.Equal(t, 1, h.NewStart)
	assert.Equal(t, 2, h.NewCount)
}

func TestEditsApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		original string
		modified string
	}{
		{name: "replace", original: "a\nb\nc\n", modified: "a\nB\nc\n"},
		{name: "insert", original: "a\nc\n", modified: "a\nb\nc\n"},
		{name: "delete", original: "a\nb\nc\n", modified: "a\nc\n"},
		{name: "append", original: "a\n", modified: "a\nb\nc"},
		{name: "crlf", original: "a\r\nb\r\n", modified: "a\nb\n"},
		{name: "everything", original: "x\ny\n", modified: "p\nq\nr\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := textdiff.Compute("f", []byte(tt.original), []byte(tt.modified))
			got, err := textdiff.Apply([]byte(tt.original), d.Edits())
			require.NoError(t, err)
			assert.Equal(t, tt.modified, string(got))
		})
	}
}

func TestEditsAreMinimalRuns(t *testing.T) {
	t.Parallel()

	d := textdiff.Compute("f", []byte("a\nb\nc\n"), []byte("a\nB\nc\n"))
	assert.Equal(t, []textdiff.TextEdit{{Start: 2, End: 4, NewText: "B\n"}}, d.Edits())
}

func TestApplyRejectsInvalidEdits(t *testing.T) {
	t.Parallel()

	content := []byte("hello world")
	tests := []struct {
		name  string
		edits []textdiff.TextEdit
	}{
		{name: "past end", edits: []textdiff.TextEdit{{Start: 5, End: 20}}},
		{name: "reversed", edits: []textdiff.TextEdit{{Start: 5, End: 2}}},
		{name: "overlap", edits: []textdiff.TextEdit{{Start: 0, End: 5}, {Start: 3, End: 6}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := textdiff.Apply(content, tt.edits)
			assert.ErrorIs(t, err, textdiff.ErrInvalidEdit)
		})
	}
}
