package simplify

import (
	"github.com/gnolang/simplint/internal/ast"
	"github.com/gnolang/simplint/internal/fix"
	"github.com/gnolang/simplint/internal/match"
)

// compositionCheck handles chains of `>>` or `<<`.
func compositionCheck(c OperatorCheckInfo) []Diagnostic {
	chain, ok := match.CollapseComposition(c.Lookup, c.Node)
	if !ok {
		return nil
	}

	fns := chain.Functions
	for i, fn := range fns {
		if !match.IsIdentity(c.Lookup, fn) {
			continue
		}
		// Drop identity together with the operator next to it.
		removed := ast.Range{Start: fn.Range().Start, End: fns[1].Range().Start}
		if i > 0 {
			removed = ast.Range{Start: fns[i-1].Range().End, End: fn.Range().End}
		}
		return []Diagnostic{{
			Message: "`identity` should be removed",
			Details: []string{"Composing a function with `identity` is the same as simply referencing the function."},
			Range:   fn.Range(),
			Fixes:   []fix.Edit{fix.RemoveRange(removed)},
		}}
	}

	latest := chain.Latest()
	if _, ok := match.GetAlwaysResult(c.Lookup, latest); ok {
		return []Diagnostic{{
			Message: "Function composed with always will be ignored",
			Details: []string{"`always` will swallow the function composed into it."},
			Range:   latest.Range(),
			Fixes:   keepOnly(c.Parent, c.ParentRange, latest),
		}}
	}
	return nil
}
