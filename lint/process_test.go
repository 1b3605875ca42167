package lint

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/simplint/internal/simplify"
	tt "github.com/gnolang/simplint/internal/types"
)

// writeModules writes n modules; module i holds i+1 identity maps.
func writeModules(t *testing.T, dir string, n int) {
	t.Helper()
	for i := range n {
		var b strings.Builder
		fmt.Fprintf(&b, "module M%d exposing (..)\n", i)
		for j := 0; j <= i; j++ {
			fmt.Fprintf(&b, "\n\nf%d x =\n    List.map identity x\n", j)
		}
		err := os.WriteFile(filepath.Join(dir, fmt.Sprintf("M%d.elm", i)), []byte(b.String()), 0o644)
		require.NoError(t, err)
	}
}

func TestProcessPathContextCancellation(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeModules(t, tempDir, 10)

	engine, err := New("")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	issues, err := ProcessPath(ctx, nil, engine, tempDir, 2, ProcessFile)

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotNil(t, issues)
}

func TestProcessPathResultOrdering(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeModules(t, tempDir, 5)

	engine, err := New("")
	require.NoError(t, err)

	issues, err := ProcessPath(context.Background(), nil, engine, tempDir, 4, ProcessFile)
	require.NoError(t, err)
	require.Len(t, issues, 1+2+3+4+5)

	var order []string
	for _, issue := range issues {
		assert.Equal(t, simplify.RuleList, issue.Rule)
		if len(order) == 0 || order[len(order)-1] != issue.Filename {
			order = append(order, issue.Filename)
		}
	}
	assert.Len(t, order, 5)
	assert.IsIncreasing(t, order)
}

func TestProcessPathSkipsBrokenFiles(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeModules(t, tempDir, 3)
	invalidFile := filepath.Join(tempDir, "Broken.elm")
	require.NoError(t, os.WriteFile(invalidFile, []byte("module Broken exposing (..)\n\nbroken = (\n"), 0o644))

	engine, err := New("")
	require.NoError(t, err)

	issues, err := ProcessPath(context.Background(), nil, engine, tempDir, 2, ProcessFile)

	assert.NoError(t, err)
	assert.Len(t, issues, 1+2+3)
	for _, issue := range issues {
		assert.NotEqual(t, invalidFile, issue.Filename)
	}
}

func TestErrorPropagationSingleFile(t *testing.T) {
	t.Parallel()

	invalidFile := filepath.Join(t.TempDir(), "Broken.elm")
	require.NoError(t, os.WriteFile(invalidFile, []byte("module Broken exposing (..)\n\nbroken = (\n"), 0o644))

	engine, err := New("")
	require.NoError(t, err)

	issues, err := ProcessPath(context.Background(), nil, engine, invalidFile, 1, ProcessFile)

	assert.Error(t, err)
	assert.Empty(t, issues)
}

func TestNewAppliesConfig(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeModules(t, tempDir, 2)
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "generated"), 0o755))
	writeModules(t, filepath.Join(tempDir, "generated"), 2)

	configPath := filepath.Join(tempDir, ".simplint.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(fmt.Sprintf(`rules:
  list-simplification:
    severity: error
ignore_paths:
  - %s
`, filepath.Join(tempDir, "generated"))), 0o644))

	engine, err := New(configPath)
	require.NoError(t, err)

	issues, err := ProcessPath(context.Background(), nil, engine, tempDir, 2, ProcessFile)
	require.NoError(t, err)
	require.Len(t, issues, 3)
	for _, issue := range issues {
		assert.Equal(t, tt.SeverityError, issue.Severity)
		assert.NotContains(t, issue.Filename, "generated")
	}
}

func TestNewUnsupportedConfig(t *testing.T) {
	t.Parallel()

	_, err := New(filepath.Join(t.TempDir(), "config.ini"))
	assert.ErrorIs(t, err, ErrUnsupportedConfig)
}
