package simplify

import (
	"fmt"

	"github.com/gnolang/simplint/internal/ast"
	"github.com/gnolang/simplint/internal/lookup"
	"github.com/gnolang/simplint/internal/match"
)

type (
	checkFunc         func(CheckInfo) []Diagnostic
	operatorCheckFunc func(OperatorCheckInfo) []Diagnostic
)

type checkEntry struct {
	rule  string
	check checkFunc
}

type operatorEntry struct {
	rule  string
	check operatorCheckFunc
}

func qualified(module, name string) string {
	return ast.QualifiedName{Module: ast.ModuleName{module}, Name: name}.Key()
}

// functionCallChecks is keyed by the resolved name of the called function.
var functionCallChecks = map[string]checkEntry{
	qualified("Basics", "identity"): {RuleBasics, identityCheck},
	qualified("Basics", "always"):   {RuleBasics, alwaysCheck},
	qualified("Basics", "not"):      {RuleBasics, notCheck},

	qualified("List", "map"):        {RuleList, emptyCollectionCheck(1, emptyList, emptyList, mapIdentityCheck("list"))},
	qualified("List", "filter"):     {RuleList, emptyCollectionCheck(1, emptyList, emptyList, listFilterCheck)},
	qualified("List", "filterMap"):  {RuleList, emptyCollectionCheck(1, emptyList, emptyList, listFilterMapCheck)},
	qualified("List", "concat"):     {RuleList, emptyCollectionCheck(0, emptyList, emptyList, listConcatCheck)},
	qualified("List", "concatMap"):  {RuleList, emptyCollectionCheck(1, emptyList, emptyList, listConcatMapCheck)},
	qualified("List", "indexedMap"): {RuleList, emptyCollectionCheck(1, emptyList, emptyList, noCheck)},
	qualified("List", "reverse"):    {RuleList, emptyCollectionCheck(0, emptyList, emptyList, doubleReversalCheck)},
	qualified("List", "length"):     {RuleList, listLengthCheck},
	qualified("List", "isEmpty"):    {RuleList, listIsEmptyCheck},
	qualified("List", "head"):       {RuleList, listHeadCheck},
	qualified("List", "repeat"):     {RuleList, listRepeatCheck},
	qualified("List", "range"):      {RuleList, listRangeCheck},
	qualified("List", "all"):        {RuleList, listAllCheck},
	qualified("List", "any"):        {RuleList, listAnyCheck},
	qualified("List", "member"):     {RuleList, listMemberCheck},

	qualified("String", "isEmpty"):  {RuleString, stringIsEmptyCheck},
	qualified("String", "length"):   {RuleString, stringLengthCheck},
	qualified("String", "repeat"):   {RuleString, emptyCollectionCheck(1, emptyString, emptyString, stringRepeatCheck)},
	qualified("String", "words"):    {RuleString, stringWordsCheck},
	qualified("String", "lines"):    {RuleString, stringLinesCheck},
	qualified("String", "concat"):   {RuleString, emptyCollectionCheck(0, emptyList, emptyString, noCheck)},
	qualified("String", "join"):     {RuleString, emptyCollectionCheck(1, emptyList, emptyString, noCheck)},
	qualified("String", "fromList"): {RuleString, emptyCollectionCheck(0, emptyList, emptyString, noCheck)},
	qualified("String", "reverse"):  {RuleString, emptyCollectionCheck(0, emptyString, emptyString, doubleReversalCheck)},

	qualified("Maybe", "map"):         {RuleMaybe, emptyCollectionCheck(1, nothing, nothing, mapIdentityCheck("maybe value"))},
	qualified("Maybe", "andThen"):     {RuleMaybe, emptyCollectionCheck(1, nothing, nothing, maybeAndThenCheck)},
	qualified("Maybe", "withDefault"): {RuleMaybe, maybeWithDefaultCheck},

	qualified("Tuple", "first"):  {RuleTuple, tupleProjectionCheck(match.ProjectFirst)},
	qualified("Tuple", "second"): {RuleTuple, tupleProjectionCheck(match.ProjectSecond)},
}

// operatorChecks is keyed by operator symbol. The pipes are not listed: they
// are turned into calls before dispatch.
var operatorChecks = map[string]operatorEntry{
	"||": {RuleBoolean, orCheck},
	"&&": {RuleBoolean, andCheck},
	"==": {RuleEquality, equalCheck},
	"/=": {RuleEquality, notEqualCheck},
	"++": {RuleList, appendCheck},
	"::": {RuleList, consCheck},
	">>": {RuleComposition, compositionCheck},
	"<<": {RuleComposition, compositionCheck},
}

func noCheck(CheckInfo) []Diagnostic {
	return nil
}

// collection describes the empty value of a collection type.
type collection struct {
	name    string
	isEmpty func(lookup.Resolver, ast.Expr) bool
	text    func(CheckInfo) string
}

var (
	emptyList = collection{
		name:    "an empty list",
		isEmpty: func(_ lookup.Resolver, e ast.Expr) bool { return match.IsEmptyList(e) },
		text:    func(CheckInfo) string { return "[]" },
	}
	emptyString = collection{
		name:    "an empty string",
		isEmpty: func(_ lookup.Resolver, e ast.Expr) bool { return match.IsEmptyString(e) },
		text:    func(CheckInfo) string { return `""` },
	}
	nothing = collection{
		name:    "Nothing",
		isEmpty: match.IsNothing,
		text:    func(c CheckInfo) string { return c.Qualify(match.Nothing) },
	}
)

// emptyCollectionCheck reports calls whose last argument, at index, is the
// empty value of from. Such calls evaluate to the empty value of to. Other
// calls are passed on to check.
func emptyCollectionCheck(index int, from, to collection, check checkFunc) checkFunc {
	return func(c CheckInfo) []Diagnostic {
		if len(c.Args) != index+1 || !from.isEmpty(c.Lookup, c.Args[index]) {
			return check(c)
		}
		return []Diagnostic{{
			Message: fmt.Sprintf("Using %s on %s will result in %s", c.Fn, from.name, to.name),
			Details: []string{fmt.Sprintf("You can replace this call by %s.", to.name)},
			Range:   c.FnRange,
			Fixes:   replaceByText(c.ParentRange, to.text(c)),
		}}
	}
}

// runCall dispatches a call on the resolved name of its function.
func runCall(c CheckInfo) []Diagnostic {
	if len(c.Args) == 0 {
		return nil
	}
	entry, ok := functionCallChecks[c.Fn.Key()]
	if !ok {
		return nil
	}
	return withRule(entry.rule, entry.check(c))
}

// runOperator dispatches an operator use on its symbol.
func runOperator(c OperatorCheckInfo) []Diagnostic {
	entry, ok := operatorChecks[c.Operator]
	if !ok || !match.IsOperator(c.Lookup, c.Node, c.Operator) {
		return nil
	}
	return withRule(entry.rule, entry.check(c))
}

func withRule(rule string, diags []Diagnostic) []Diagnostic {
	for i := range diags {
		diags[i].Rule = rule
	}
	return diags
}
