package fixer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/gnolang/simplint/internal"
	"github.com/gnolang/simplint/internal/ast"
	"github.com/gnolang/simplint/internal/fix"
	tt "github.com/gnolang/simplint/internal/types"
)

const header = "module Main exposing (..)\n\n\n"

func pos(row, col int) ast.Position {
	return ast.Position{Row: row, Column: col}
}

func rng(r1, c1, r2, c2 int) ast.Range {
	return ast.Range{Start: pos(r1, c1), End: pos(r2, c2)}
}

func newEngine(t *testing.T) *internal.Engine {
	engine, err := internal.NewEngine(nil)
	require.NoError(t, err)
	return engine
}

func writeFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "Main.elm")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
		applied  int
		passes   int
	}{
		{
			name:     "single fix",
			input:    header + "subject x =\n    List.map identity x\n",
			expected: header + "subject x =\n    x\n",
			applied:  1,
			passes:   1,
		},
		{
			name:     "nested simplifications need a second pass",
			input:    header + "subject x a b c =\n    if True then (if x == x then a else b) else c\n",
			expected: header + "subject x a b c =\n    (a)\n",
			applied:  3,
			passes:   2,
		},
		{
			name:     "nothing to fix",
			input:    header + "subject x =\n    x\n",
			expected: header + "subject x =\n    x\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			engine := newEngine(t)
			path := writeFile(t, tt.input)

			issues, err := engine.Run(path)
			require.NoError(t, err)

			var out bytes.Buffer
			f := New(false, engine, zaptest.NewLogger(t))
			f.Out = &out
			res, err := f.Fix(path, issues)
			require.NoError(t, err)
			assert.Equal(t, tt.applied, res.Applied)
			assert.Equal(t, tt.passes, res.Passes)

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(content))

			if tt.applied > 0 {
				assert.Contains(t, out.String(), "Fixed")
			}
		})
	}
}

func TestFixDryRun(t *testing.T) {
	t.Parallel()

	input := header + "subject x =\n    List.map identity x\n"
	engine := newEngine(t)
	path := writeFile(t, input)

	issues, err := engine.Run(path)
	require.NoError(t, err)
	require.Len(t, issues, 1)

	var out bytes.Buffer
	f := New(true, engine, nil)
	f.Out = &out
	res, err := f.Fix(path, issues)
	require.NoError(t, err)
	assert.Zero(t, res.Applied)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, input, string(content), "dry run must not modify the file")

	assert.Contains(t, out.String(), "Would fix issue in "+path+" at line 5")
	assert.Contains(t, out.String(), "  -     List.map identity x\n")
	assert.Contains(t, out.String(), "  +     x\n")
}

func TestFixSourceSkipsConflicts(t *testing.T) {
	t.Parallel()

	src := []byte(header + "a =\n    [ 1, 2 ]\n")

	t.Run("overlapping edits of one issue", func(t *testing.T) {
		t.Parallel()
		issues := []tt.Issue{{
			Rule:  "list-simplification",
			Start: pos(5, 5),
			Fixes: []fix.Edit{
				fix.ReplaceRange(rng(5, 5, 5, 10), "x"),
				fix.ReplaceRange(rng(5, 7, 5, 13), "y"),
			},
		}}
		f := New(false, nil, zaptest.NewLogger(t))
		out, res, err := f.FixSource(src, issues)
		require.NoError(t, err)
		assert.Equal(t, Result{Skipped: 1}, res)
		assert.Equal(t, src, out)
	})

	t.Run("overlapping issues", func(t *testing.T) {
		t.Parallel()
		issues := []tt.Issue{
			{Rule: "b", Start: pos(5, 7), Fixes: []fix.Edit{fix.ReplaceRange(rng(5, 7, 5, 8), "3")}},
			{Rule: "a", Start: pos(5, 5), Fixes: []fix.Edit{fix.ReplaceRange(rng(5, 5, 5, 13), "[]")}},
		}
		f := New(false, nil, nil)
		out, res, err := f.FixSource(src, issues)
		require.NoError(t, err)
		assert.Equal(t, Result{Applied: 1, Skipped: 1, Passes: 1}, res)
		assert.Equal(t, header+"a =\n    []\n", string(out), "issues are applied in source order")
	})
}

func TestFixSourceRejectsBrokenResults(t *testing.T) {
	t.Parallel()

	src := []byte(header + "a =\n    1\n\n\nb =\n    2\n")

	t.Run("declaration removed", func(t *testing.T) {
		t.Parallel()
		issues := []tt.Issue{{Fixes: []fix.Edit{fix.RemoveRange(rng(8, 1, 9, 6))}}}
		out, _, err := New(false, nil, nil).FixSource(src, issues)
		assert.ErrorIs(t, err, ErrNotEquivalent)
		assert.Equal(t, src, out)
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()
		issues := []tt.Issue{{Fixes: []fix.Edit{fix.ReplaceRange(rng(5, 5, 5, 6), "(")}}}
		_, _, err := New(false, nil, nil).FixSource(src, issues)
		assert.ErrorContains(t, err, "fixed source is invalid")
	})

	t.Run("edit outside the source", func(t *testing.T) {
		t.Parallel()
		issues := []tt.Issue{{Fixes: []fix.Edit{fix.ReplaceRange(rng(40, 1, 40, 2), "x")}}}
		_, _, err := New(false, nil, nil).FixSource(src, issues)
		assert.ErrorIs(t, err, fix.ErrInvalidRange)
	})
}

func TestFixMissingFile(t *testing.T) {
	t.Parallel()

	_, err := New(false, nil, nil).Fix(filepath.Join(t.TempDir(), "Missing.elm"), nil)
	assert.Error(t, err)
}

func TestChangedRows(t *testing.T) {
	t.Parallel()

	first, last := changedRows([]fix.Edit{
		fix.RemoveRange(rng(7, 1, 7, 4)),
		fix.InsertAt(pos(3, 2), "x"),
		fix.ReplaceRange(rng(4, 1, 9, 1), "y"),
	})
	assert.Equal(t, 3, first)
	assert.Equal(t, 9, last)
}
