package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/simplint/internal/fixer"
	"github.com/gnolang/simplint/lint"
)

var (
	dryRun    bool
	maxPasses int
)

var fixCmd = &cobra.Command{
	Use:   "fix [paths...]",
	Short: "Automatically apply simplifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("please provide file or directory paths")
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		engine, err := newEngine()
		if err != nil {
			return fmt.Errorf("failed to initialize lint engine: %w", err)
		}
		applyIgnores(engine, ignoreRules, ignorePaths)

		fix := fixer.New(dryRun, engine, logger)
		fix.MaxPasses = maxPasses
		fix.Out = cmd.OutOrStdout()

		return runAutoFix(ctx, cmd.OutOrStdout(), logger, engine, fix, args)
	},
}

func init() {
	fixCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run in dry-run mode (show fixes without applying them)")
	fixCmd.Flags().IntVar(&maxPasses, "max-passes", 10, "Maximum number of fix passes per file")
	fixCmd.Flags().StringVar(&ignoreRules, "ignore", "", "Comma-separated list of rule groups to ignore")
	fixCmd.Flags().StringVar(&ignorePaths, "ignore-paths", "", "Comma-separated list of paths to ignore")
}

func runAutoFix(ctx context.Context, w io.Writer, logger *zap.Logger, engine lint.LintEngine, fix *fixer.Fixer, paths []string) error {
	total, failed := 0, 0
	for _, path := range paths {
		issues, err := lint.ProcessPath(ctx, logger, engine, path, jobs, lint.ProcessFile)
		if err != nil {
			logger.Error("error processing path", zap.String("path", path), zap.Error(err))
			failed++
			continue
		}

		issuesByFile, files := groupByFile(issues)
		for _, filename := range files {
			res, err := fix.Fix(filename, issuesByFile[filename])
			if err != nil {
				logger.Error("error fixing issues", zap.String("file", filename), zap.Error(err))
				failed++
				continue
			}
			logger.Debug("fixed file",
				zap.String("file", filename),
				zap.Int("applied", res.Applied),
				zap.Int("skipped", res.Skipped),
				zap.Int("passes", res.Passes))
			total += res.Applied
		}
	}

	if !fix.DryRun {
		fmt.Fprintf(w, "Applied %d fix(es)\n", total)
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) could not be fixed", failed)
	}
	return nil
}
