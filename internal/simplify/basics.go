package simplify

import (
	"github.com/gnolang/simplint/internal/match"
)

func identityCheck(c CheckInfo) []Diagnostic {
	return []Diagnostic{{
		Message: "`identity` should be removed",
		Details: []string{"`identity` can be a useful function to be passed as arguments to other functions, but calling it manually with an argument is the same thing as writing the argument on its own."},
		Range:   c.FnRange,
		Fixes:   removeFunctionFromCall(c),
	}}
}

// alwaysCheck reduces `always a b` to `a`.
func alwaysCheck(c CheckInfo) []Diagnostic {
	if len(c.Args) != 2 {
		return nil
	}
	return []Diagnostic{{
		Message: "Expression can be replaced by the first argument given to `always`",
		Details: []string{"The second argument will be ignored because of the `always` call."},
		Range:   c.FnRange,
		Fixes:   keepOnly(c.Parent, c.ParentRange, c.FirstArg()),
	}}
}

func notCheck(c CheckInfo) []Diagnostic {
	if len(c.Args) != 1 {
		return nil
	}
	if v, ok := match.GetBool(c.Lookup, c.FirstArg()); ok {
		return []Diagnostic{{
			Message: "Expression is equal to " + boolName(!v),
			Details: []string{"You can replace the call to `not` by the boolean value directly."},
			Range:   c.ParentRange,
			Fixes:   replaceByText(c.ParentRange, c.Qualify(boolRef(!v))),
		}}
	}
	if inner, ok := match.GetSpecificFunctionCall(c.Lookup, c.FirstArg(), match.Not); ok && len(inner.Args) == 1 {
		return []Diagnostic{{
			Message: "Unnecessary double negation",
			Details: []string{"Chaining `not` with `not` makes both functions cancel each other out."},
			Range:   c.FnRange,
			Fixes:   keepOnly(c.Parent, c.ParentRange, inner.Args[0]),
		}}
	}
	return nil
}
