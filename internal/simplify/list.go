package simplify

import (
	"fmt"
	"strconv"

	"github.com/gnolang/simplint/internal/ast"
	"github.com/gnolang/simplint/internal/match"
)

// unchangedCollection reports a call returning its collection argument
// untouched. Partially applied calls are replaced by identity.
func unchangedCollection(c CheckInfo, message, what string) []Diagnostic {
	d := Diagnostic{Message: message, Range: c.FnRange}
	switch len(c.Args) {
	case 2:
		d.Details = []string{fmt.Sprintf("You can remove this call and replace it by the %s itself.", what)}
		d.Fixes = keepOnly(c.Parent, c.ParentRange, c.Args[1])
	case 1:
		d.Details = []string{"You can replace this call by identity."}
		d.Fixes = replaceByText(c.ParentRange, c.Qualify(match.Identity))
	default:
		return nil
	}
	return []Diagnostic{d}
}

// constantResult reports a call whose result does not depend on its
// collection argument. value must be atomic source text.
func constantResult(c CheckInfo, message, value string) []Diagnostic {
	d := Diagnostic{Message: message, Range: c.FnRange}
	switch len(c.Args) {
	case 2:
		d.Details = []string{"You can replace this call by " + value + "."}
		d.Fixes = replaceByText(c.ParentRange, value)
	case 1:
		always := c.Qualify(match.Always) + " " + value
		d.Details = []string{"You can replace this call by " + always + "."}
		d.Fixes = replaceBy(c.Parent, c.ParentRange, applicationText, always)
	default:
		return nil
	}
	return []Diagnostic{d}
}

// mapIdentityCheck reports `map identity` on a collection.
func mapIdentityCheck(what string) checkFunc {
	return func(c CheckInfo) []Diagnostic {
		if !match.IsIdentity(c.Lookup, c.FirstArg()) {
			return nil
		}
		return unchangedCollection(c,
			fmt.Sprintf("Using %s with an identity function is the same as not using %s", c.Fn, c.Fn), what)
	}
}

func listFilterCheck(c CheckInfo) []Diagnostic {
	v, ok := match.GetAlwaysBool(c.Lookup, c.FirstArg())
	switch {
	case !ok:
		return nil
	case v:
		return unchangedCollection(c,
			"Using List.filter with a function that will always return True is the same as not using List.filter", "list")
	default:
		return constantResult(c,
			"Using List.filter with a function that will always return False will result in an empty list", "[]")
	}
}

func listFilterMapCheck(c CheckInfo) []Diagnostic {
	switch {
	case match.IsJustFunction(c.Lookup, c.FirstArg()):
		return unchangedCollection(c,
			"Using List.filterMap with a function that will always return Just is the same as not using List.filterMap", "list")
	case match.IsAlwaysNothing(c.Lookup, c.FirstArg()):
		return constantResult(c,
			"Using List.filterMap with a function that will always return Nothing will result in an empty list", "[]")
	}
	return nil
}

func listConcatCheck(c CheckInfo) []Diagnostic {
	if len(c.Args) != 1 {
		return nil
	}
	elements, ok := match.GetListLiteral(c.FirstArg())
	if !ok {
		return nil
	}

	if len(elements) == 1 {
		return []Diagnostic{{
			Message: "Unnecessary use of List.concat on a list with 1 element",
			Details: []string{"The value of the operation will be the element itself. You should replace this expression by that."},
			Range:   c.FnRange,
			Fixes:   keepOnly(c.Parent, c.ParentRange, elements[0]),
		}}
	}

	if merged, ok := mergeListLiterals(c, elements); ok {
		return []Diagnostic{{
			Message: "Expression could be simplified to be a single List",
			Details: []string{"Try moving all the elements into a single list."},
			Range:   c.FnRange,
			Fixes:   replaceByText(c.ParentRange, merged),
		}}
	}

	// Merge every run of two or more adjacent list literals.
	var diags []Diagnostic
	for start := 0; start < len(elements); {
		end := start
		for end < len(elements) && isListLiteral(elements[end]) {
			end++
		}
		if end-start >= 2 {
			run := elements[start:end]
			merged, _ := mergeListLiterals(c, run)
			rng := ast.Range{Start: run[0].Range().Start, End: run[len(run)-1].Range().End}
			diags = append(diags, Diagnostic{
				Message: "Consecutive literal lists should be merged",
				Details: []string{"Try moving all the elements from consecutive list literals so that they form a single list."},
				Range:   rng,
				Fixes:   replaceByText(rng, merged),
			})
		}
		start = max(end, start+1)
	}
	return diags
}

func isListLiteral(e ast.Expr) bool {
	_, ok := match.GetListLiteral(e)
	return ok
}

// mergeListLiterals renders the concatenation of list literals as one list
// literal.
func mergeListLiterals(c CheckInfo, lists []ast.Expr) (string, bool) {
	var all []string
	for _, list := range lists {
		elements, ok := match.GetListLiteral(list)
		if !ok {
			return "", false
		}
		all = append(all, extractAll(c.Source, elements)...)
	}
	return listText(all), true
}

var listConcat = ast.QualifiedName{Module: ast.ModuleName{"List"}, Name: "concat"}

func listConcatMapCheck(c CheckInfo) []Diagnostic {
	switch {
	case match.IsIdentity(c.Lookup, c.FirstArg()):
		return []Diagnostic{{
			Message: "Using List.concatMap with an identity function is the same as using List.concat",
			Details: []string{"You can replace this call by List.concat."},
			Range:   c.FnRange,
			Fixes:   replaceFunctionAndFirstArg(c, c.Qualify(listConcat)),
		}}
	case match.IsAlwaysEmptyList(c.Lookup, c.FirstArg()):
		return constantResult(c,
			"Using List.concatMap with a function that will always return an empty list will result in an empty list", "[]")
	}
	return nil
}

// doubleReversalCheck reports `reverse (reverse x)` for List and String.
func doubleReversalCheck(c CheckInfo) []Diagnostic {
	if len(c.Args) != 1 {
		return nil
	}
	inner, ok := match.GetSpecificFunctionCall(c.Lookup, c.FirstArg(), c.Fn)
	if !ok || len(inner.Args) != 1 {
		return nil
	}
	return []Diagnostic{{
		Message: "Unnecessary double reversal",
		Details: []string{fmt.Sprintf("Chaining %s with %s makes both functions cancel each other out.", c.Fn, c.Fn)},
		Range:   c.FnRange,
		Fixes:   keepOnly(c.Parent, c.ParentRange, inner.Args[0]),
	}}
}

// knownElements returns the elements of a list literal, or of a cons chain
// ending in a list literal.
func knownElements(c CheckInfo, e ast.Expr) ([]ast.Expr, bool) {
	if elements, ok := match.GetListLiteral(e); ok {
		return elements, true
	}
	chain, ok := match.CollapseCons(c.Lookup, e)
	if !ok {
		return nil, false
	}
	return chain.Literal()
}

func listLengthCheck(c CheckInfo) []Diagnostic {
	if len(c.Args) != 1 {
		return nil
	}
	elements, ok := knownElements(c, c.FirstArg())
	if !ok {
		return nil
	}
	return []Diagnostic{{
		Message: fmt.Sprintf("The length of the list is %d", len(elements)),
		Details: []string{"The length of the list can be determined by looking at the code."},
		Range:   c.FnRange,
		Fixes:   replaceByText(c.ParentRange, strconv.Itoa(len(elements))),
	}}
}

func listIsEmptyCheck(c CheckInfo) []Diagnostic {
	if len(c.Args) != 1 {
		return nil
	}
	var empty bool
	if elements, ok := match.GetListLiteral(c.FirstArg()); ok {
		empty = len(elements) == 0
	} else if _, ok := match.CollapseCons(c.Lookup, c.FirstArg()); !ok {
		return nil
	}
	return []Diagnostic{boolResult(c, empty)}
}

// boolResult reports a call that always evaluates to v.
func boolResult(c CheckInfo, v bool) Diagnostic {
	return Diagnostic{
		Message: fmt.Sprintf("The call to %s will result in %s", c.Fn, boolName(v)),
		Details: []string{"You can replace this call by " + boolName(v) + "."},
		Range:   c.FnRange,
		Fixes:   replaceByText(c.ParentRange, c.Qualify(boolRef(v))),
	}
}

func listHeadCheck(c CheckInfo) []Diagnostic {
	if len(c.Args) != 1 {
		return nil
	}
	arg := c.FirstArg()
	if match.IsEmptyList(arg) {
		return []Diagnostic{{
			Message: "Using List.head on an empty list will result in Nothing",
			Details: []string{"You can replace this call by Nothing."},
			Range:   c.FnRange,
			Fixes:   replaceByText(c.ParentRange, c.Qualify(match.Nothing)),
		}}
	}

	var first ast.Expr
	if elements, ok := match.GetListLiteral(arg); ok {
		first = elements[0]
	} else if chain, ok := match.CollapseCons(c.Lookup, arg); ok {
		first = chain.Elements[0]
	} else {
		return nil
	}
	return []Diagnostic{{
		Message: "Using List.head on a list with a first element will result in Just the first element",
		Details: []string{"You can replace this call by Just the first list element."},
		Range:   c.FnRange,
		Fixes: replaceBy(c.Parent, c.ParentRange, applicationText,
			c.Qualify(match.Just)+" "+parenthesize(first, c.Extract(first))),
	}}
}

func listRepeatCheck(c CheckInfo) []Diagnostic {
	n, ok := match.GetIntValue(c.FirstArg())
	switch {
	case !ok:
		return nil
	case n < 1:
		return constantResult(c, "List.repeat will result in an empty list", "[]")
	case n == 1 && len(c.Args) == 2:
		element := c.Args[1]
		return []Diagnostic{{
			Message: "List.repeat will result in a list with one element",
			Details: []string{"Using List.repeat with 1 will result in a list containing only the element. You can replace this call by that list."},
			Range:   c.FnRange,
			Fixes:   replaceByText(c.ParentRange, listText([]string{c.Extract(element)})),
		}}
	}
	return nil
}

func listRangeCheck(c CheckInfo) []Diagnostic {
	if len(c.Args) != 2 {
		return nil
	}
	low, lowOK := match.GetIntValue(c.Args[0])
	high, highOK := match.GetIntValue(c.Args[1])
	if !lowOK || !highOK {
		return nil
	}
	switch {
	case low > high:
		return []Diagnostic{{
			Message: "The call to List.range will result in []",
			Details: []string{"The first argument to List.range is bigger than the second one, therefore you can replace this list by an empty list."},
			Range:   c.FnRange,
			Fixes:   replaceByText(c.ParentRange, "[]"),
		}}
	case low == high:
		list := listText([]string{strconv.FormatInt(low, 10)})
		return []Diagnostic{{
			Message: "The call to List.range will result in " + list,
			Details: []string{"Both arguments to List.range are equal, therefore you can replace this call by a list with that one value."},
			Range:   c.FnRange,
			Fixes:   replaceByText(c.ParentRange, list),
		}}
	}
	return nil
}

func listAllCheck(c CheckInfo) []Diagnostic {
	return predicateCheck(c, true)
}

func listAnyCheck(c CheckInfo) []Diagnostic {
	return predicateCheck(c, false)
}

// predicateCheck handles List.all (neutral is True) and List.any (neutral
// is False). Both return the neutral value on an empty list, and a
// constant predicate equal to the neutral value decides the result.
func predicateCheck(c CheckInfo, neutral bool) []Diagnostic {
	if len(c.Args) == 2 && match.IsEmptyList(c.Args[1]) {
		return []Diagnostic{boolResult(c, neutral)}
	}
	if v, ok := match.GetAlwaysBool(c.Lookup, c.FirstArg()); ok && v == neutral {
		return constantResult(c, fmt.Sprintf("The call to %s will result in %s", c.Fn, boolName(neutral)), c.Qualify(boolRef(neutral)))
	}
	return nil
}

func listMemberCheck(c CheckInfo) []Diagnostic {
	if len(c.Args) != 2 || !match.IsEmptyList(c.Args[1]) {
		return nil
	}
	return []Diagnostic{{
		Message: "Using List.member on an empty list will result in False",
		Details: []string{"You can replace this call by False."},
		Range:   c.FnRange,
		Fixes:   replaceByText(c.ParentRange, c.Qualify(match.False)),
	}}
}
