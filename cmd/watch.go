package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/simplint/formatter"
	"github.com/gnolang/simplint/internal"
	tt "github.com/gnolang/simplint/internal/types"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Lint files again whenever they are saved",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{"."}
		}

		engine, err := newEngine()
		if err != nil {
			return fmt.Errorf("failed to initialize lint engine: %w", err)
		}
		applyIgnores(engine, ignoreRules, ignorePaths)

		out := cmd.OutOrStdout()
		report := func(filename string, issues []tt.Issue) {
			if len(issues) == 0 {
				fmt.Fprintf(out, "%s: no issues\n", filename)
				return
			}
			source, err := internal.ReadSourceCode(filename)
			if err != nil {
				logger.Error("Error reading source file", zap.String("file", filename), zap.Error(err))
				return
			}
			fmt.Fprint(out, formatter.GenerateFormattedIssue(issues, source))
		}

		watcher, err := internal.NewWatcher(engine, logger, report)
		if err != nil {
			return err
		}
		defer watcher.Close()

		if err := watcher.Add(args...); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("Watching for changes", zap.Strings("paths", args))
		if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().StringVar(&ignoreRules, "ignore", "", "Comma-separated list of rule groups to ignore")
	watchCmd.Flags().StringVar(&ignorePaths, "ignore-paths", "", "Comma-separated list of paths to ignore")
}
