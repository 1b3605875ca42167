// Package simplify finds expressions that can be written in a simpler way
// and builds the edits that perform the simplification.
//
// Analyze walks every top-level declaration. Call sites are normalised into
// a CheckInfo, whatever the spelling (`f a b`, `f a <| b`, `b |> f a`), and
// dispatched on the resolved name of the function. Operator uses are
// dispatched on the operator symbol.
package simplify

import (
	"github.com/gnolang/simplint/internal/ast"
	"github.com/gnolang/simplint/internal/fix"
)

// Rule groups. Every diagnostic belongs to exactly one group.
const (
	RuleBoolean     = "boolean-simplification"
	RuleEquality    = "equality-simplification"
	RuleIf          = "if-simplification"
	RuleList        = "list-simplification"
	RuleString      = "string-simplification"
	RuleMaybe       = "maybe-simplification"
	RuleBasics      = "basics-simplification"
	RuleTuple       = "tuple-simplification"
	RuleComposition = "composition-simplification"
)

// RuleGroups lists every rule group.
var RuleGroups = []string{
	RuleBoolean,
	RuleEquality,
	RuleIf,
	RuleList,
	RuleString,
	RuleMaybe,
	RuleBasics,
	RuleTuple,
	RuleComposition,
}

// Diagnostic is a simplification opportunity together with its fix.
type Diagnostic struct {
	Rule    string
	Message string
	Details []string
	// Range is the part of the source the diagnostic points at.
	Range ast.Range
	// Fixes address the original source and never overlap.
	Fixes []fix.Edit
}
