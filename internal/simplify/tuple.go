package simplify

import (
	"fmt"

	"github.com/gnolang/simplint/internal/match"
)

// tupleProjectionCheck reduces a projection applied to a pair literal. It
// also serves projection lambdas such as `\( a, _ ) -> a`.
func tupleProjectionCheck(p match.Projection) checkFunc {
	part := "first"
	if p == match.ProjectSecond {
		part = "second"
	}
	return func(c CheckInfo) []Diagnostic {
		if len(c.Args) != 1 {
			return nil
		}
		first, second, ok := match.GetTupleLiteral(c.FirstArg())
		if !ok {
			return nil
		}
		keep := first
		if p == match.ProjectSecond {
			keep = second
		}
		return []Diagnostic{{
			Message: fmt.Sprintf("Using %s on a known tuple will result in the %s part", c.Fn, part),
			Details: []string{fmt.Sprintf("You can replace this call by the %s part of the tuple.", part)},
			Range:   c.FnRange,
			Fixes:   keepOnly(c.Parent, c.ParentRange, keep),
		}}
	}
}
