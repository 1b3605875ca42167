package lint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/gnolang/simplint/internal"
	"github.com/gnolang/simplint/internal/simplify"
	tt "github.com/gnolang/simplint/internal/types"
	"github.com/gnolang/simplint/scanner"
)

// DefaultConfigFile is the configuration file written by `simplint init`.
const DefaultConfigFile = ".simplint.yaml"

// ErrUnsupportedConfig is returned for configuration files that are
// neither YAML nor TOML.
var ErrUnsupportedConfig = errors.New("unsupported configuration format")

type LintEngine interface {
	Run(filePath string) ([]tt.Issue, error)
	RunSource(source []byte) ([]tt.Issue, error)
	IgnoreRule(rule string)
	IgnorePath(path string)
}

// Config represents the overall configuration with a name and the
// severity of each rule group.
type Config struct {
	Name        string                   `yaml:"name" toml:"name"`
	Rules       map[string]tt.ConfigRule `yaml:"rules" toml:"rules"`
	IgnorePaths []string                 `yaml:"ignore_paths,omitempty" toml:"ignore_paths,omitempty"`
}

// DefaultConfig returns a configuration listing every rule group at its
// default severity.
func DefaultConfig() Config {
	rules := make(map[string]tt.ConfigRule, len(simplify.RuleGroups))
	for _, name := range simplify.RuleGroups {
		rules[name] = tt.ConfigRule{Severity: tt.SeverityWarning}
	}
	return Config{Name: "simplint", Rules: rules}
}

// New creates an engine configured by the file at configurationPath. An
// empty path uses the default configuration.
func New(configurationPath string) (*internal.Engine, error) {
	config := DefaultConfig()
	if configurationPath != "" {
		var err error
		if config, err = LoadConfig(configurationPath); err != nil {
			return nil, err
		}
	}

	engine, err := internal.NewEngine(config.Rules)
	if err != nil {
		return nil, err
	}
	for _, path := range config.IgnorePaths {
		engine.IgnorePath(path)
	}
	return engine, nil
}

// LoadConfig reads a YAML or TOML configuration file, chosen by extension.
func LoadConfig(path string) (Config, error) {
	var config Config

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return config, err
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&config); err != nil && !errors.Is(err, io.EOF) {
			return config, fmt.Errorf("error parsing %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, &config); err != nil {
			return config, fmt.Errorf("error parsing %s: %w", path, err)
		}
	default:
		return config, fmt.Errorf("%w: %s", ErrUnsupportedConfig, path)
	}

	return config, nil
}

// WriteConfig writes config to path as YAML.
func WriteConfig(path string, config Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func ProcessSources(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	sources [][]byte,
	processor func(LintEngine, []byte) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for i, source := range sources {
		if err := ctx.Err(); err != nil {
			return allIssues, err
		}
		issues, err := processor(engine, source)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing source", zap.Int("source", i), zap.Error(err))
			}
			return nil, err
		}
		allIssues = append(allIssues, issues...)
	}

	return allIssues, nil
}

func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	paths []string,
	jobs int,
	processor func(LintEngine, string) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for _, path := range paths {
		issues, err := ProcessPath(ctx, logger, engine, path, jobs, processor)
		allIssues = append(allIssues, issues...)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return allIssues, err
		}
	}

	return allIssues, nil
}

// ProcessPath lints a single file or every source file below a directory.
// Files of a directory are processed by at most jobs goroutines; files that
// fail are logged and skipped. Issues are returned in walk order. On
// cancellation the issues collected so far are returned with the context
// error.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	path string,
	jobs int,
	processor func(LintEngine, string) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if !hasDesiredExtension(path) {
			return nil, nil
		}
		return processor(engine, path)
	}

	files, err := collectFiles(path)
	if err != nil {
		return nil, err
	}

	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	bar := newProgressBar(len(files), path)

	results := make([][]tt.Issue, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, fp := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			defer bar.Add(1)

			fileIssues, err := processor(engine, fp)
			if err != nil {
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
				}
				return nil
			}
			results[i] = fileIssues
			return nil
		})
	}
	err = g.Wait()
	bar.Finish()

	issues := make([]tt.Issue, 0)
	for _, r := range results {
		issues = append(issues, r...)
	}
	if err == nil {
		err = ctx.Err()
	}
	return issues, err
}

// collectFiles lists the source files below root in lexical order.
func collectFiles(root string) ([]string, error) {
	found, err := scanner.New(root, internal.SourceExtension).Scan()
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(found))
	for _, f := range found {
		files = append(files, f.Path)
	}
	return files, nil
}

func newProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

func ProcessFile(engine LintEngine, filePath string) ([]tt.Issue, error) {
	return engine.Run(filePath)
}

func ProcessSource(engine LintEngine, source []byte) ([]tt.Issue, error) {
	return engine.RunSource(source)
}

func hasDesiredExtension(path string) bool {
	return filepath.Ext(path) == internal.SourceExtension
}
