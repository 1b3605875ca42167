package simplify

import (
	"slices"

	"github.com/gnolang/simplint/internal/ast"
	"github.com/gnolang/simplint/internal/fix"
	"github.com/gnolang/simplint/internal/match"
	"github.com/gnolang/simplint/internal/normalize"
)

func boolName(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

func boolRef(v bool) ast.QualifiedName {
	if v {
		return match.True
	}
	return match.False
}

func orCheck(c OperatorCheckInfo) []Diagnostic {
	return boolOperatorCheck(c, true)
}

func andCheck(c OperatorCheckInfo) []Diagnostic {
	return boolOperatorCheck(c, false)
}

// boolOperatorCheck handles `||` and `&&`. absorbing is the literal that
// decides the result on its own: True for `||`, False for `&&`.
func boolOperatorCheck(c OperatorCheckInfo, absorbing bool) []Diagnostic {
	leftPart := ast.Cover(c.LeftRange(), c.OperatorRange)
	rightPart := ast.Cover(c.OperatorRange, c.RightRange())

	if v, ok := match.GetBool(c.Lookup, c.Left); ok {
		if v == absorbing {
			return []Diagnostic{alwaysBool(c, absorbing, leftPart, c.Left)}
		}
		return []Diagnostic{unnecessaryLiteral(c, v, leftPart, c.Right)}
	}
	if v, ok := match.GetBool(c.Lookup, c.Right); ok {
		if v == absorbing {
			return []Diagnostic{alwaysBool(c, absorbing, rightPart, c.Right)}
		}
		return []Diagnostic{unnecessaryLiteral(c, v, rightPart, c.Left)}
	}
	if normalize.AreEquivalent(c.Lookup, c.Left, c.Right) {
		return []Diagnostic{{
			Message: "Condition is redundant",
			Details: []string{"The same condition appears on both sides of " + c.Operator + ", you can remove one of them."},
			Range:   rightPart,
			Fixes:   keepOnly(c.Parent, c.ParentRange, c.Left),
		}}
	}
	return nil
}

func alwaysBool(c OperatorCheckInfo, v bool, rng ast.Range, literal ast.Expr) Diagnostic {
	return Diagnostic{
		Message: "Comparison is always " + boolName(v),
		Details: []string{"This condition will always result in " + boolName(v) + ", the other side of " + c.Operator + " is never used."},
		Range:   rng,
		Fixes:   keepOnly(c.Parent, c.ParentRange, literal),
	}
}

func unnecessaryLiteral(c OperatorCheckInfo, v bool, rng ast.Range, keep ast.Expr) Diagnostic {
	return Diagnostic{
		Message: "Part of the expression is unnecessary",
		Details: []string{"A `" + boolName(v) + "` literal is unnecessary, you can remove it."},
		Range:   rng,
		Fixes:   keepOnly(c.Parent, c.ParentRange, keep),
	}
}

func equalCheck(c OperatorCheckInfo) []Diagnostic {
	return comparisonCheck(c, true)
}

func notEqualCheck(c OperatorCheckInfo) []Diagnostic {
	return comparisonCheck(c, false)
}

// comparisonCheck handles `==` (isEqual) and `/=`.
func comparisonCheck(c OperatorCheckInfo, isEqual bool) []Diagnostic {
	var result bool
	switch normalize.Compare(c.Lookup, c.Left, c.Right) {
	case normalize.ConfirmedEquality:
		result = isEqual
	case normalize.ConfirmedInequality:
		result = !isEqual
	default:
		if v, ok := match.GetBool(c.Lookup, c.Right); ok {
			return []Diagnostic{boolComparison(c, c.Left, v == isEqual, ast.Cover(c.OperatorRange, c.RightRange()))}
		}
		if v, ok := match.GetBool(c.Lookup, c.Left); ok {
			return []Diagnostic{boolComparison(c, c.Right, v == isEqual, ast.Cover(c.LeftRange(), c.OperatorRange))}
		}
		return nil
	}

	return []Diagnostic{{
		Message: "Comparison is always " + boolName(result),
		Details: []string{"The values on both sides of " + c.Operator + " can be determined by looking at the code, so the result is always " + boolName(result) + "."},
		Range:   c.ParentRange,
		Fixes:   replaceByText(c.ParentRange, c.Qualify(boolRef(result))),
	}}
}

// boolComparison handles `x == True` and its variants. When same is false
// the comparison negates x.
func boolComparison(c OperatorCheckInfo, other ast.Expr, same bool, rng ast.Range) Diagnostic {
	d := Diagnostic{
		Message: "Unnecessary comparison with boolean",
		Range:   rng,
	}
	if same {
		d.Details = []string{"The result of the expression will be the same with or without the comparison."}
		d.Fixes = keepOnly(c.Parent, c.ParentRange, other)
		return d
	}
	d.Details = []string{"The result of the expression is the negation of the other side, you can use `not` instead."}
	d.Fixes = replaceBy(c.Parent, c.ParentRange, applicationText,
		c.Qualify(match.Not)+" "+parenthesize(other, c.Extract(other)))
	return d
}

// appendCheck handles `++` on strings and lists.
func appendCheck(c OperatorCheckInfo) []Diagnostic {
	leftPart := ast.Cover(c.LeftRange(), c.OperatorRange)
	rightPart := ast.Cover(c.OperatorRange, c.RightRange())

	switch {
	case match.IsEmptyString(c.Left):
		return []Diagnostic{emptyConcatenation(c, "string", leftPart, c.Right)}
	case match.IsEmptyString(c.Right):
		return []Diagnostic{emptyConcatenation(c, "string", rightPart, c.Left)}
	case match.IsEmptyList(c.Left):
		return []Diagnostic{emptyConcatenation(c, "list", leftPart, c.Right)}
	case match.IsEmptyList(c.Right):
		return []Diagnostic{emptyConcatenation(c, "list", rightPart, c.Left)}
	}

	left, leftOK := match.GetListLiteral(c.Left)
	right, rightOK := match.GetListLiteral(c.Right)
	if leftOK && rightOK {
		return []Diagnostic{{
			Message: "Expression could be simplified to be a single List",
			Details: []string{"Try moving all the elements into a single list."},
			Range:   c.OperatorRange,
			Fixes:   replaceByText(c.ParentRange, listText(extractAll(c.Source, append(slices.Clone(left), right...)))),
		}}
	}
	if leftOK && len(left) == 1 {
		return []Diagnostic{{
			Message: "Should use (::) instead of (++)",
			Details: []string{"Concatenating a list with a single value is the same as using (::) on the list with the value."},
			Range:   c.OperatorRange,
			Fixes:   singletonToCons(c, left[0]),
		}}
	}
	return nil
}

func emptyConcatenation(c OperatorCheckInfo, kind string, rng ast.Range, keep ast.Expr) Diagnostic {
	return Diagnostic{
		Message: "Unnecessary concatenation with an empty " + kind,
		Details: []string{"You should remove the concatenation with the empty " + kind + "."},
		Range:   rng,
		Fixes:   keepOnly(c.Parent, c.ParentRange, keep),
	}
}

// singletonToCons rewrites `[ a ] ++ list` to `a :: list`.
func singletonToCons(c OperatorCheckInfo, element ast.Expr) []fix.Edit {
	before := ast.Range{Start: c.LeftRange().Start, End: element.Range().Start}
	after := ast.Range{Start: element.Range().End, End: c.OperatorRange.End}
	if needsParens(operatorText, element) {
		return []fix.Edit{fix.ReplaceRange(before, "("), fix.ReplaceRange(after, ") ::")}
	}
	return []fix.Edit{fix.RemoveRange(before), fix.ReplaceRange(after, " ::")}
}

// consCheck rewrites a cons chain ending in a list literal into one list
// literal: `a :: b :: [ c ]` becomes `[ a, b, c ]`.
func consCheck(c OperatorCheckInfo) []Diagnostic {
	chain, ok := match.CollapseCons(c.Lookup, c.Node)
	if !ok {
		return nil
	}
	elements, ok := chain.Literal()
	if !ok {
		return nil
	}
	return []Diagnostic{{
		Message: "Element added to the beginning of the list could be included in the list",
		Details: []string{"Try moving the element inside the list it is being added to."},
		Range:   c.OperatorRange,
		Fixes:   replaceByText(c.ParentRange, listText(extractAll(c.Source, elements))),
	}}
}

func extractAll(src *fix.Source, es []ast.Expr) []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, src.Extract(e.Range()))
	}
	return out
}
