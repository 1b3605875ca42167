package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/simplint/internal/ast"
	"github.com/gnolang/simplint/internal/fix"
	"github.com/gnolang/simplint/internal/simplify"
	tt "github.com/gnolang/simplint/internal/types"
)

const sampleSource = `module Main exposing (..)


mapped x =
    List.map identity x


branch =
    if True then 1 else 2
`

// createTempDir creates a temporary directory removed after the test.
func createTempDir(t testing.TB, prefix string) string {
	tempDir, err := os.MkdirTemp("", prefix)
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tempDir) })
	return tempDir
}

func writeSource(t testing.TB, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func rulesOf(issues []tt.Issue) []string {
	rules := make([]string, 0, len(issues))
	for _, issue := range issues {
		rules = append(rules, issue.Rule)
	}
	return rules
}

func TestNewEngine(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(nil)
	require.NoError(t, err)

	rules := engine.Rules()
	require.Len(t, rules, len(simplify.RuleGroups))
	for _, r := range rules {
		assert.Equal(t, tt.SeverityWarning, r.Severity(), r.Name())
		assert.NotEmpty(t, r.Description(), r.Name())
	}
	assert.Equal(t, simplify.RuleBasics, rules[0].Name(), "rules are sorted by name")
}

func TestEngine_RunSource(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(nil)
	require.NoError(t, err)

	issues, err := engine.RunSource([]byte(sampleSource))
	require.NoError(t, err)
	require.Len(t, issues, 2)

	list := issues[0]
	assert.Equal(t, simplify.RuleList, list.Rule)
	assert.Equal(t, tt.SeverityWarning, list.Severity)
	assert.Equal(t, ast.Position{Row: 5, Column: 5}, list.Start)
	assert.Equal(t, ast.Position{Row: 5, Column: 13}, list.End)
	assert.NotEmpty(t, list.Details)
	require.True(t, list.Fixable())

	fixed, err := fix.Apply([]byte(sampleSource), list.Fixes)
	require.NoError(t, err)
	assert.Contains(t, string(fixed), "mapped x =\n    x\n")

	assert.Equal(t, simplify.RuleIf, issues[1].Rule)
}

func TestEngine_ConfiguredSeverities(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(map[string]tt.ConfigRule{
		simplify.RuleList: {Severity: tt.SeverityError},
		simplify.RuleIf:   {Severity: tt.SeverityOff},
		"unknown-rule":    {Severity: tt.SeverityError},
	})
	require.NoError(t, err)

	issues, err := engine.RunSource([]byte(sampleSource))
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, simplify.RuleList, issues[0].Rule)
	assert.Equal(t, tt.SeverityError, issues[0].Severity)
}

func TestEngine_IgnoreRule(t *testing.T) {
	t.Parallel()

	engine := &Engine{}
	engine.IgnoreRule("test_rule")
	assert.True(t, engine.ignoredRules["test_rule"])

	engine, err := NewEngine(nil)
	require.NoError(t, err)
	engine.IgnoreRule(simplify.RuleList)

	issues, err := engine.RunSource([]byte(sampleSource))
	require.NoError(t, err)
	assert.Equal(t, []string{simplify.RuleIf}, rulesOf(issues))
}

func TestEngine_Nolint(t *testing.T) {
	t.Parallel()

	src := `module Main exposing (..)


mapped x =
    -- simplint:ignore list-simplification
    List.map identity x


branch =
    if True then 1 else 2 -- simplint:ignore
`
	engine, err := NewEngine(nil)
	require.NoError(t, err)

	issues, err := engine.RunSource([]byte(src))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestEngine_Run(t *testing.T) {
	t.Parallel()

	dir := createTempDir(t, "engine_test")
	path := writeSource(t, dir, "Main.elm", sampleSource)

	engine, err := NewEngine(nil)
	require.NoError(t, err)

	issues, err := engine.Run(path)
	require.NoError(t, err)
	require.Len(t, issues, 2)
	for _, issue := range issues {
		assert.Equal(t, path, issue.Filename)
	}

	_, err = engine.Run(filepath.Join(dir, "Missing.elm"))
	assert.Error(t, err)
}

func TestEngine_ParseError(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(nil)
	require.NoError(t, err)

	_, err = engine.RunSource([]byte("module Main exposing (..)\n\nf = (\n"))
	assert.ErrorContains(t, err, "error parsing file")
}

func TestEngine_IgnorePath(t *testing.T) {
	t.Parallel()

	dir := createTempDir(t, "ignore_path_test")
	generated := filepath.Join(dir, "generated")
	require.NoError(t, os.Mkdir(generated, 0o755))
	inside := writeSource(t, generated, "Gen.elm", sampleSource)
	globbed := writeSource(t, dir, "Api.gen.elm", sampleSource)
	kept := writeSource(t, dir, "Main.elm", sampleSource)

	engine, err := NewEngine(nil)
	require.NoError(t, err)
	engine.IgnorePath(generated)
	engine.IgnorePath(filepath.Join(dir, "*.gen.elm"))

	for _, path := range []string{inside, globbed} {
		issues, err := engine.Run(path)
		require.NoError(t, err)
		assert.Empty(t, issues, path)
	}

	issues, err := engine.Run(kept)
	require.NoError(t, err)
	assert.Len(t, issues, 2)
}

func TestEngine_Cache(t *testing.T) {
	t.Parallel()

	dir := createTempDir(t, "engine_cache_test")
	path := writeSource(t, dir, "Main.elm", sampleSource)
	config := writeSource(t, dir, ".simplint.yaml", "name: simplint\n")

	engine, err := NewEngine(nil)
	require.NoError(t, err)
	require.NoError(t, engine.EnableCache(filepath.Join(dir, "cache"), config))

	issues, err := engine.Run(path)
	require.NoError(t, err)
	assert.Equal(t, 1, engine.cache.Len())

	cached, err := engine.Run(path)
	require.NoError(t, err)
	assert.Equal(t, issues, cached)

	// cached issues still follow the rule configuration
	engine.IgnoreRule(simplify.RuleIf)
	cached, err = engine.Run(path)
	require.NoError(t, err)
	assert.Equal(t, []string{simplify.RuleList}, rulesOf(cached))

	writeSource(t, dir, "Main.elm", "module Main exposing (..)\n\n\nf x =\n    x\n")
	changed, err := engine.Run(path)
	require.NoError(t, err)
	assert.Empty(t, changed)
}
