package internal

import (
	"github.com/gnolang/simplint/internal/simplify"
	tt "github.com/gnolang/simplint/internal/types"
)

// LintRule is a group of simplifications that is configured as a whole.
type LintRule interface {
	// Name returns the name of the rule group.
	Name() string

	// Description returns a one-line summary of the group.
	Description() string

	Severity() tt.Severity
	SetSeverity(tt.Severity)
}

type simplificationRule struct {
	name        string
	description string
	severity    tt.Severity
}

func (r *simplificationRule) Name() string { return r.name }
func (r *simplificationRule) Description() string { return r.description }
func (r *simplificationRule) Severity() tt.Severity { return r.severity }
func (r *simplificationRule) SetSeverity(s tt.Severity) { r.severity = s }

var ruleDescriptions = map[string]string{
	simplify.RuleBoolean:     "constant and redundant (&&), (||) and not",
	simplify.RuleEquality:    "comparisons whose result is known",
	simplify.RuleIf:          "if expressions with a known condition or equal branches",
	simplify.RuleList:        "List functions applied to known lists or functions, (++) and (::)",
	simplify.RuleString:      "String functions applied to known strings",
	simplify.RuleMaybe:       "Maybe functions applied to Nothing, Just or constant functions",
	simplify.RuleBasics:      "identity, always and not",
	simplify.RuleTuple:       "Tuple.first and Tuple.second on known tuples",
	simplify.RuleComposition: "(>>) and (<<) chains containing identity or always",
}

// defaultRules returns every rule group with its default severity.
func defaultRules() map[string]LintRule {
	rules := make(map[string]LintRule, len(simplify.RuleGroups))
	for _, name := range simplify.RuleGroups {
		rules[name] = &simplificationRule{
			name:        name,
			description: ruleDescriptions[name],
			severity:    tt.SeverityWarning,
		}
	}
	return rules
}
