package lint

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gnolang/simplint/internal/ast"
	"github.com/gnolang/simplint/internal/simplify"
	"github.com/gnolang/simplint/internal/types"
)

type mockLintEngine struct {
	mock.Mock
}

func (m *mockLintEngine) Run(filePath string) ([]types.Issue, error) {
	args := m.Called(filePath)
	return args.Get(0).([]types.Issue), args.Error(1)
}

func (m *mockLintEngine) RunSource(source []byte) ([]types.Issue, error) {
	args := m.Called(source)
	return args.Get(0).([]types.Issue), args.Error(1)
}

func (m *mockLintEngine) IgnoreRule(rule string) {
	m.Called(rule)
}

func (m *mockLintEngine) IgnorePath(path string) {
	m.Called(path)
}

func testIssue(rule, filename, message string) types.Issue {
	return types.Issue{
		Rule:     rule,
		Filename: filename,
		Start:    ast.Position{Row: 1, Column: 1},
		End:      ast.Position{Row: 1, Column: 11},
		Message:  message,
	}
}

func TestProcessFile(t *testing.T) {
	t.Parallel()
	expectedIssues := []types.Issue{testIssue("test-rule", "Main.elm", "Test issue")}
	mockEngine := new(mockLintEngine)
	mockEngine.On("Run", "Main.elm").Return(expectedIssues, nil)

	issues, err := ProcessFile(mockEngine, "Main.elm")

	assert.NoError(t, err)
	assert.Equal(t, expectedIssues, issues)
	mockEngine.AssertExpectations(t)
}

func TestProcessSource(t *testing.T) {
	t.Parallel()
	source := []byte("module Main exposing (..)")
	expectedIssues := []types.Issue{testIssue("test-rule", "", "Test issue")}
	mockEngine := new(mockLintEngine)
	mockEngine.On("RunSource", source).Return(expectedIssues, nil)

	issues, err := ProcessSource(mockEngine, source)

	assert.NoError(t, err)
	assert.Equal(t, expectedIssues, issues)
	mockEngine.AssertExpectations(t)
}

func TestProcessPath(t *testing.T) {
	t.Parallel()
	logger := zap.NewNop()

	tempDir := t.TempDir()
	paths := createTempFiles(t, tempDir, "A.elm", "B.elm")
	createTempFiles(t, tempDir, "notes.txt")

	expectedIssues := []types.Issue{
		testIssue("rule1", paths[0], "Test issue 1"),
		testIssue("rule2", paths[1], "Test issue 2"),
	}

	mockEngine := new(mockLintEngine)
	mockEngine.On("Run", paths[0]).Return([]types.Issue{expectedIssues[0]}, nil)
	mockEngine.On("Run", paths[1]).Return([]types.Issue{expectedIssues[1]}, nil)

	issues, err := ProcessPath(context.Background(), logger, mockEngine, tempDir, 2, ProcessFile)

	assert.NoError(t, err)
	assert.Equal(t, expectedIssues, issues)
	mockEngine.AssertExpectations(t)
}

func TestProcessPathSkipsBuildDirectories(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	paths := createTempFiles(t, tempDir, "Main.elm")
	for _, dir := range []string{"elm-stuff", ".git"} {
		require.NoError(t, os.Mkdir(filepath.Join(tempDir, dir), 0o755))
		createTempFiles(t, filepath.Join(tempDir, dir), "Generated.elm")
	}

	mockEngine := new(mockLintEngine)
	mockEngine.On("Run", paths[0]).Return([]types.Issue{}, nil)

	issues, err := ProcessPath(context.Background(), nil, mockEngine, tempDir, 1, ProcessFile)

	assert.NoError(t, err)
	assert.Empty(t, issues)
	mockEngine.AssertExpectations(t)
	mockEngine.AssertNumberOfCalls(t, "Run", 1)
}

func TestProcessFiles(t *testing.T) {
	t.Parallel()
	logger := zap.NewNop()

	tempDir := t.TempDir()
	paths := createTempFiles(t, tempDir, "A.elm", "B.elm")

	expectedIssues := []types.Issue{
		testIssue("rule1", paths[0], "Test issue 1"),
		testIssue("rule2", paths[1], "Test issue 2"),
	}

	mockEngine := new(mockLintEngine)
	mockEngine.On("Run", paths[0]).Return([]types.Issue{expectedIssues[0]}, nil)
	mockEngine.On("Run", paths[1]).Return([]types.Issue{expectedIssues[1]}, nil)

	issues, err := ProcessFiles(context.Background(), logger, mockEngine, paths, 0, ProcessFile)

	assert.NoError(t, err)
	assert.Equal(t, expectedIssues, issues)
	mockEngine.AssertExpectations(t)
}

func TestProcessFilesMissingPath(t *testing.T) {
	t.Parallel()

	mockEngine := new(mockLintEngine)
	_, err := ProcessFiles(context.Background(), zap.NewNop(), mockEngine,
		[]string{filepath.Join(t.TempDir(), "Missing.elm")}, 1, ProcessFile)

	assert.Error(t, err)
	mockEngine.AssertNotCalled(t, "Run", mock.Anything)
}

func TestProcessSources(t *testing.T) {
	t.Parallel()
	logger := zap.NewNop()

	expectedIssues := []types.Issue{
		testIssue("rule1", "", "Test issue 1"),
		testIssue("rule2", "", "Test issue 2"),
	}
	first := []byte("module A exposing (..)")
	second := []byte("module B exposing (..)")

	mockEngine := new(mockLintEngine)
	mockEngine.On("RunSource", first).Return([]types.Issue{expectedIssues[0]}, nil)
	mockEngine.On("RunSource", second).Return([]types.Issue{expectedIssues[1]}, nil)

	issues, err := ProcessSources(context.Background(), logger, mockEngine, [][]byte{first, second}, ProcessSource)

	assert.NoError(t, err)
	assert.Equal(t, expectedIssues, issues)
	mockEngine.AssertExpectations(t)
}

func TestHasDesiredExtension(t *testing.T) {
	t.Parallel()
	assert.True(t, hasDesiredExtension("Main.elm"))
	assert.True(t, hasDesiredExtension("src/Page/Home.elm"))
	assert.False(t, hasDesiredExtension("main.go"))
	assert.False(t, hasDesiredExtension("Main"))
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	yamlPath := filepath.Join(dir, ".simplint.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`name: project
rules:
  list-simplification:
    severity: error
  if-simplification:
    severity: off
ignore_paths:
  - generated
`), 0o644))

	tomlPath := filepath.Join(dir, ".simplint.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(`name = "project"
ignore_paths = ["generated"]

[rules.list-simplification]
severity = "error"

[rules.if-simplification]
severity = "off"
`), 0o644))

	for _, path := range []string{yamlPath, tomlPath} {
		config, err := LoadConfig(path)
		require.NoError(t, err, path)
		assert.Equal(t, "project", config.Name)
		assert.Equal(t, types.SeverityError, config.Rules[simplify.RuleList].Severity)
		assert.Equal(t, types.SeverityOff, config.Rules[simplify.RuleIf].Severity)
		assert.Equal(t, []string{"generated"}, config.IgnorePaths)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte("{}"), 0o644))
	_, err := LoadConfig(jsonPath)
	assert.ErrorIs(t, err, ErrUnsupportedConfig)

	badPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badPath, []byte("rules:\n  list-simplification:\n    severity: loud\n"), 0o644))
	_, err = LoadConfig(badPath)
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteConfigRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, WriteConfig(path, DefaultConfig()))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
	assert.Len(t, config.Rules, len(simplify.RuleGroups))
}

func createTempFiles(t *testing.T, dir string, fileNames ...string) []string {
	t.Helper()
	paths := make([]string, 0, len(fileNames))
	for _, fileName := range fileNames {
		filePath := filepath.Join(dir, fileName)
		f, err := os.Create(filePath)
		require.NoError(t, err)
		require.NoError(t, f.Close())
		paths = append(paths, filePath)
	}
	return paths
}
