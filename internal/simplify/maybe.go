package simplify

import (
	"github.com/gnolang/simplint/internal/match"
)

func maybeWithDefaultCheck(c CheckInfo) []Diagnostic {
	if len(c.Args) != 2 {
		return nil
	}
	if match.IsNothing(c.Lookup, c.Args[1]) {
		return []Diagnostic{{
			Message: "Using Maybe.withDefault on Nothing will result in the default value",
			Details: []string{"You can replace this call by the default value."},
			Range:   c.FnRange,
			Fixes:   keepOnly(c.Parent, c.ParentRange, c.Args[0]),
		}}
	}
	if value, ok := match.GetJustCall(c.Lookup, c.Args[1]); ok {
		return []Diagnostic{{
			Message: "Using Maybe.withDefault on a value that is Just will result in that value",
			Details: []string{"You can replace this call by the value wrapped in Just."},
			Range:   c.FnRange,
			Fixes:   keepOnly(c.Parent, c.ParentRange, value),
		}}
	}
	return nil
}

func maybeAndThenCheck(c CheckInfo) []Diagnostic {
	switch {
	case match.IsJustFunction(c.Lookup, c.FirstArg()):
		return unchangedCollection(c,
			"Using Maybe.andThen with a function that will always return Just is the same as not using Maybe.andThen", "maybe value")
	case match.IsAlwaysNothing(c.Lookup, c.FirstArg()):
		return constantResult(c,
			"Using Maybe.andThen with a function that will always return Nothing will result in Nothing", c.Qualify(match.Nothing))
	}
	return nil
}
