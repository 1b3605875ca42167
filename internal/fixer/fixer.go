package fixer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/gnolang/simplint/internal/fix"
	tt "github.com/gnolang/simplint/internal/types"
)

const defaultMaxPasses = 10

// ErrNotEquivalent is returned when a fixed source lost or renamed a
// declaration of the original.
var ErrNotEquivalent = errors.New("fixed source is not equivalent to the original")

// Analyzer finds the issues of a source text.
type Analyzer interface {
	RunSource(source []byte) ([]tt.Issue, error)
}

type Fixer struct {
	DryRun    bool
	MaxPasses int
	// Out receives the dry-run preview and the summary lines.
	Out io.Writer

	analyzer Analyzer
	checker  *StructureChecker
	logger   *zap.Logger
}

// New creates a Fixer. analyzer re-analyses the source after each pass; it
// may be nil, in which case only the given issues are fixed.
func New(dryRun bool, analyzer Analyzer, logger *zap.Logger) *Fixer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fixer{
		DryRun:    dryRun,
		MaxPasses: defaultMaxPasses,
		Out:       os.Stdout,
		analyzer:  analyzer,
		checker:   NewStructureChecker(false),
		logger:    logger,
	}
}

// Result summarizes the fixes applied to one file.
type Result struct {
	Applied int
	Skipped int
	Passes  int
}

// Fix applies the edits of issues to filename. Each issue is applied as a
// whole or not at all; an issue overlapping one already applied in the
// same pass waits for the next pass, where it is reported again on the
// updated source if it still applies.
func (f *Fixer) Fix(filename string, issues []tt.Issue) (Result, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return Result{}, fmt.Errorf("failed to stat file: %w", err)
	}
	content, err := os.ReadFile(filename)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read file: %w", err)
	}

	if f.DryRun {
		f.preview(filename, content, issues)
		return Result{Skipped: len(issues)}, nil
	}

	fixed, res, err := f.FixSource(content, issues)
	if err != nil {
		return res, err
	}
	if res.Applied == 0 {
		return res, nil
	}

	if err := os.WriteFile(filename, fixed, info.Mode().Perm()); err != nil {
		return res, fmt.Errorf("failed to write file: %w", err)
	}
	fmt.Fprintf(f.Out, "Fixed %d issue(s) in %s\n", res.Applied, filename)
	return res, nil
}

// FixSource applies issues to content until no fixable issue is left or
// MaxPasses is reached, and returns the new content.
func (f *Fixer) FixSource(content []byte, issues []tt.Issue) ([]byte, Result, error) {
	var res Result
	current := content
	maxPasses := max(f.MaxPasses, 1)

	for res.Passes < maxPasses {
		edits, applied, skipped := f.selectFixes(issues)
		if applied == 0 {
			res.Skipped += skipped
			break
		}
		res.Passes++

		next, err := fix.Apply(current, edits)
		if err != nil {
			return content, res, fmt.Errorf("failed to apply fixes: %w", err)
		}
		ok, report, err := f.checker.CheckEquivalence(current, next)
		if err != nil {
			return content, res, fmt.Errorf("fixed source is invalid: %w", err)
		}
		if !ok {
			return content, res, fmt.Errorf("%w:\n%s", ErrNotEquivalent, report)
		}
		current = next
		res.Applied += applied

		if f.analyzer == nil {
			res.Skipped += skipped
			break
		}
		issues, err = f.analyzer.RunSource(current)
		if err != nil {
			return content, res, fmt.Errorf("failed to analyze fixed source: %w", err)
		}
	}

	return current, res, nil
}

// selectFixes picks, in source order, the issues whose edits can be
// applied together.
func (f *Fixer) selectFixes(issues []tt.Issue) ([]fix.Edit, int, int) {
	sorted := slices.Clone(issues)
	slices.SortStableFunc(sorted, func(a, b tt.Issue) int {
		return a.Start.Compare(b.Start)
	})

	var edits []fix.Edit
	applied, skipped := 0, 0
	for _, issue := range sorted {
		if !issue.Fixable() {
			continue
		}
		if err := fix.CheckDisjoint(issue.Fixes); err != nil {
			f.logger.Warn("skipping issue with overlapping edits",
				zap.String("rule", issue.Rule),
				zap.Stringer("position", issue.Start),
				zap.Error(err))
			skipped++
			continue
		}
		combined := slices.Concat(edits, issue.Fixes)
		if fix.CheckDisjoint(combined) != nil {
			skipped++
			continue
		}
		edits = combined
		applied++
	}
	return edits, applied, skipped
}

// preview prints what Fix would change without touching the file.
func (f *Fixer) preview(filename string, content []byte, issues []tt.Issue) {
	lines := strings.Split(string(content), "\n")
	for _, issue := range issues {
		fmt.Fprintf(f.Out, "Would fix issue in %s at line %d: %s\n", filename, issue.Start.Row, issue.Message)
		if !issue.Fixable() {
			fmt.Fprintln(f.Out, "  (no automatic fix)")
			continue
		}
		fixed, err := fix.Apply(content, issue.Fixes)
		if err != nil {
			fmt.Fprintf(f.Out, "  (fix cannot be applied: %v)\n", err)
			continue
		}
		first, last := changedRows(issue.Fixes)
		writeDiff(f.Out, lines, strings.Split(string(fixed), "\n"), first, last)
	}
}

// changedRows returns the first and last rows touched by edits.
func changedRows(edits []fix.Edit) (int, int) {
	first, last := edits[0].Range.Start.Row, edits[0].Range.End.Row
	for _, e := range edits[1:] {
		first = min(first, e.Range.Start.Row)
		last = max(last, e.Range.End.Row)
	}
	return first, last
}

// writeDiff prints the rows [first, last] of the original and the
// corresponding rows of the fixed text. Lines after the edit are the same
// in both, so the fixed rows are found by counting from the end.
func writeDiff(w io.Writer, before, after []string, first, last int) {
	tail := len(before) - last
	for _, line := range before[first-1 : last] {
		fmt.Fprintf(w, "  - %s\n", line)
	}
	end := max(len(after)-tail, first-1)
	for _, line := range after[first-1 : end] {
		fmt.Fprintf(w, "  + %s\n", line)
	}
}
