package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gnolang/simplint/internal/fix"
	"github.com/gnolang/simplint/internal/lookup"
	"github.com/gnolang/simplint/internal/nolint"
	"github.com/gnolang/simplint/internal/parser"
	"github.com/gnolang/simplint/internal/simplify"
	tt "github.com/gnolang/simplint/internal/types"
)

// Engine manages the linting process. Run and RunSource are safe for
// concurrent use once the engine is configured.
type Engine struct {
	ignoredRules map[string]bool
	ignoredPaths []string
	rules        map[string]LintRule
	cache        *Cache
}

// NewEngine creates a new lint engine. rules overrides the default
// severity of rule groups; unknown group names are ignored.
func NewEngine(rules map[string]tt.ConfigRule) (*Engine, error) {
	engine := &Engine{
		ignoredRules: make(map[string]bool),
	}
	engine.applyRules(rules)

	return engine, nil
}

func (e *Engine) applyRules(rules map[string]tt.ConfigRule) {
	e.rules = defaultRules()

	for key, rule := range rules {
		r := e.findRule(key)
		if r == nil {
			continue
		}
		if rule.Severity == tt.SeverityOff {
			e.IgnoreRule(key)
		}
		r.SetSeverity(rule.Severity)
	}
}

func (e *Engine) findRule(name string) LintRule {
	if rule, ok := e.rules[name]; ok {
		return rule
	}
	return nil
}

// Rules returns the rule groups sorted by name.
func (e *Engine) Rules() []LintRule {
	rules := make([]LintRule, 0, len(e.rules))
	for _, r := range e.rules {
		rules = append(rules, r)
	}
	slices.SortFunc(rules, func(a, b LintRule) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return rules
}

// EnableCache stores the issues of analysed files in cacheDir. The
// dependency files invalidate the cache when they change.
func (e *Engine) EnableCache(cacheDir string, dependencies ...string) error {
	cache, err := NewCache(cacheDir)
	if err != nil {
		return err
	}
	if err := cache.SetDependencies(dependencies...); err != nil {
		return err
	}
	e.cache = cache
	return nil
}

// Run applies all lint rules to the given file and returns a slice of Issues.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	if e.isIgnoredPath(filename) {
		return nil, nil
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	if e.cache != nil {
		if issues, ok := e.cache.Get(filename, content); ok {
			return e.filterIssues(issues), nil
		}
	}

	issues, err := analyze(filename, content)
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		if err := e.cache.Set(filename, content, issues); err != nil {
			return nil, fmt.Errorf("error caching issues: %w", err)
		}
	}

	return e.filterIssues(issues), nil
}

// RunSource applies all lint rules to the given source and returns a slice of Issues.
func (e *Engine) RunSource(source []byte) ([]tt.Issue, error) {
	issues, err := analyze("", source)
	if err != nil {
		return nil, err
	}
	return e.filterIssues(issues), nil
}

// analyze finds every simplification of a source file, without ignore
// directives applied.
func analyze(filename string, content []byte) ([]tt.Issue, error) {
	mod, err := parser.ParseModule(content)
	if err != nil {
		return nil, fmt.Errorf("error parsing file: %w", err)
	}

	table := lookup.Build(mod)
	diags := simplify.Analyze(mod, table, fix.NewSource(content))
	nolintMgr := nolint.Parse(content, mod)

	issues := make([]tt.Issue, 0, len(diags))
	for _, d := range diags {
		if nolintMgr.IsNolint(d.Range.Start, d.Rule) {
			continue
		}
		issues = append(issues, tt.Issue{
			Rule:     d.Rule,
			Filename: filename,
			Message:  d.Message,
			Details:  d.Details,
			Start:    d.Range.Start,
			End:      d.Range.End,
			Fixes:    d.Fixes,
		})
	}
	return issues, nil
}

// filterIssues drops ignored rules and sets the configured severity. The
// input is not modified.
func (e *Engine) filterIssues(issues []tt.Issue) []tt.Issue {
	filtered := make([]tt.Issue, 0, len(issues))
	for _, issue := range issues {
		if e.ignoredRules[issue.Rule] {
			continue
		}
		if r := e.findRule(issue.Rule); r != nil {
			if r.Severity() == tt.SeverityOff {
				continue
			}
			issue.Severity = r.Severity()
		}
		filtered = append(filtered, issue)
	}
	return filtered
}

func (e *Engine) IgnoreRule(rule string) {
	if e.ignoredRules == nil {
		e.ignoredRules = make(map[string]bool)
	}
	e.ignoredRules[rule] = true
}

// IgnorePath skips files matching the glob pattern, or inside the
// directory, given by path.
func (e *Engine) IgnorePath(path string) {
	e.ignoredPaths = append(e.ignoredPaths, filepath.Clean(path))
}

func (e *Engine) isIgnoredPath(filename string) bool {
	clean := filepath.Clean(filename)
	for _, pattern := range e.ignoredPaths {
		if matched, err := filepath.Match(pattern, clean); err == nil && matched {
			return true
		}
		if clean == pattern || strings.HasPrefix(clean, pattern+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// SourceCode stores the content of a source code file.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads the content of a file and returns it as a `SourceCode` struct.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return NewSourceCode(content), nil
}

func NewSourceCode(content []byte) *SourceCode {
	return &SourceCode{Lines: strings.Split(string(content), "\n")}
}
