package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/simplint/internal"
	"github.com/gnolang/simplint/lint"
)

const defaultTimeout = 5 * time.Minute

// ErrIssuesFound is returned by the lint command when it reported issues.
var ErrIssuesFound = errors.New("issues found")

var (
	cfgFile  string
	timeout  time.Duration
	verbose  bool
	jobs     int
	cacheDir string
	noCache  bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:              "simplint [paths...]",
	Short:            "simplint - simplifies Elm code",
	SilenceUsage:     true,
	SilenceErrors:    true,
	TraverseChildren: true, // Prioritize subcommands
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		// simplint [path1 path2 ...] behaves like the lint subcommand
		return lintCmd.RunE(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "Configuration file (default: .simplint.yaml or .simplint.toml when present)")
	flags.DurationVar(&timeout, "timeout", defaultTimeout, "Timeout for the whole run")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable development logging")
	flags.IntVarP(&jobs, "jobs", "j", 0, "Number of files processed in parallel (default: number of CPUs)")
	flags.StringVar(&cacheDir, "cache-dir", "", "Directory of the issue cache (default: user cache directory)")
	flags.BoolVar(&noCache, "no-cache", false, "Disable the issue cache")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(watchCmd)
}

func setupLogger() error {
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	return err
}

// configPath returns the configuration file to use, or "" for the
// defaults.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	for _, name := range []string{lint.DefaultConfigFile, ".simplint.toml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// newEngine builds the engine from the configuration file and enables the
// issue cache unless disabled. A cache that cannot be opened is logged and
// skipped.
func newEngine() (*internal.Engine, error) {
	path := configPath()
	engine, err := lint.New(path)
	if err != nil {
		return nil, err
	}
	if noCache {
		return engine, nil
	}

	dir := cacheDir
	if dir == "" {
		userDir, err := os.UserCacheDir()
		if err != nil {
			logger.Debug("No user cache directory", zap.Error(err))
			return engine, nil
		}
		dir = filepath.Join(userDir, "simplint")
	}

	var deps []string
	if path != "" {
		deps = append(deps, path)
	}
	if err := engine.EnableCache(dir, deps...); err != nil {
		logger.Warn("Cache disabled", zap.String("dir", dir), zap.Error(err))
	}
	return engine, nil
}
