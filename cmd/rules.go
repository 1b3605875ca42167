package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gnolang/simplint/internal"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rule groups and their configured severity",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return fmt.Errorf("failed to initialize lint engine: %w", err)
		}
		printRules(cmd.OutOrStdout(), engine.Rules())
		return nil
	},
}

var ruleNameStyle = color.New(color.FgYellow, color.Bold)

func printRules(w io.Writer, rules []internal.LintRule) {
	width := 0
	for _, rule := range rules {
		width = max(width, len(rule.Name()))
	}
	for _, rule := range rules {
		name := ruleNameStyle.Sprintf("%-*s", width, rule.Name())
		fmt.Fprintf(w, "%s  %-7s  %s\n", name, rule.Severity(), rule.Description())
	}
}
