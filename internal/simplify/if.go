package simplify

import (
	"github.com/gnolang/simplint/internal/ast"
	"github.com/gnolang/simplint/internal/fix"
	"github.com/gnolang/simplint/internal/lookup"
	"github.com/gnolang/simplint/internal/match"
	"github.com/gnolang/simplint/internal/normalize"
)

func ifCheck(l lookup.Lookup, src *fix.Source, parent ast.Expr, e *ast.IfExpr) []Diagnostic {
	head := ast.Range{Start: e.Range().Start, End: e.Cond.Range().End}

	if v, ok := match.GetBool(l, e.Cond); ok {
		d := Diagnostic{
			Message: "The condition will always evaluate to " + boolName(v),
			Range:   head,
		}
		if v {
			d.Details = []string{"The expression can be replaced by what is inside the 'then' branch."}
			d.Fixes = keepOnly(parent, e.Range(), e.Then)
		} else {
			d.Details = []string{"The expression can be replaced by what is inside the 'else' branch."}
			d.Fixes = keepOnly(parent, e.Range(), e.Else)
		}
		return []Diagnostic{d}
	}

	thenValue, thenOK := match.GetBool(l, e.Then)
	elseValue, elseOK := match.GetBool(l, e.Else)
	if thenOK && elseOK && thenValue != elseValue {
		if thenValue {
			return []Diagnostic{{
				Message: "The if expression's value is the same as the condition",
				Details: []string{"The expression can be replaced by the condition."},
				Range:   head,
				Fixes:   keepOnly(parent, e.Range(), e.Cond),
			}}
		}
		return []Diagnostic{{
			Message: "The if expression's value is the inverse of the condition",
			Details: []string{"The expression can be replaced by the condition wrapped by `not`."},
			Range:   head,
			Fixes: replaceBy(parent, e.Range(), applicationText,
				l.Qualify(match.Not)+" "+parenthesize(e.Cond, src.Extract(e.Cond.Range()))),
		}}
	}

	if normalize.AreEquivalent(l, e.Then, e.Else) {
		return []Diagnostic{{
			Message: "The values in both branches is the same.",
			Details: []string{"The expression can be replaced by the contents of either branch."},
			Range:   head,
			Fixes:   keepOnly(parent, e.Range(), e.Then),
		}}
	}
	return nil
}
