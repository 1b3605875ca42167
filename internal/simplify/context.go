package simplify

import (
	"github.com/gnolang/simplint/internal/ast"
	"github.com/gnolang/simplint/internal/fix"
	"github.com/gnolang/simplint/internal/lookup"
	"github.com/gnolang/simplint/internal/match"
)

// CheckInfo describes one call site, whatever its spelling.
type CheckInfo struct {
	Lookup lookup.Lookup
	Source *fix.Source
	// Parent is the expression directly containing the call, or nil at the
	// top of a declaration.
	Parent      ast.Expr
	ParentRange ast.Range
	Fn          ast.QualifiedName
	FnRange     ast.Range
	// Args are in application order: for `b |> f a` they are [a, b].
	Args []ast.Expr
	Pipe match.Pipe
}

// FirstArg returns the first argument.
func (c CheckInfo) FirstArg() ast.Expr {
	return c.Args[0]
}

// ArgsAfterFirst returns every argument but the first.
func (c CheckInfo) ArgsAfterFirst() []ast.Expr {
	return c.Args[1:]
}

// SecondArg returns the second argument, or nil.
func (c CheckInfo) SecondArg() ast.Expr {
	return c.arg(1)
}

func (c CheckInfo) arg(i int) ast.Expr {
	if i < len(c.Args) {
		return c.Args[i]
	}
	return nil
}

// Extract returns the source text of e.
func (c CheckInfo) Extract(e ast.Expr) string {
	return c.Source.Extract(e.Range())
}

// Qualify spells name the shortest way valid in the module.
func (c CheckInfo) Qualify(name ast.QualifiedName) string {
	return c.Lookup.Qualify(name)
}

// OperatorCheckInfo describes one use of an infix operator.
type OperatorCheckInfo struct {
	Lookup        lookup.Lookup
	Source        *fix.Source
	Node          *ast.OperatorApplication
	Parent        ast.Expr
	ParentRange   ast.Range
	Operator      string
	OperatorRange ast.Range
	Left          ast.Expr
	Right         ast.Expr
}

// LeftRange returns the range of the left operand.
func (c OperatorCheckInfo) LeftRange() ast.Range {
	return c.Left.Range()
}

// RightRange returns the range of the right operand.
func (c OperatorCheckInfo) RightRange() ast.Range {
	return c.Right.Range()
}

// Extract returns the source text of e.
func (c OperatorCheckInfo) Extract(e ast.Expr) string {
	return c.Source.Extract(e.Range())
}

// Qualify spells name the shortest way valid in the module.
func (c OperatorCheckInfo) Qualify(name ast.QualifiedName) string {
	return c.Lookup.Qualify(name)
}

// RangeSet is the set of ranges already explained by an enclosing
// diagnostic. It is an immutable value: With returns a new set.
type RangeSet struct {
	ranges []ast.Range
}

// Contains reports whether r is in the set.
func (s RangeSet) Contains(r ast.Range) bool {
	for _, x := range s.ranges {
		if x == r {
			return true
		}
	}
	return false
}

// With returns a set holding the ranges of s and rs.
func (s RangeSet) With(rs ...ast.Range) RangeSet {
	if len(rs) == 0 {
		return s
	}
	out := make([]ast.Range, 0, len(s.ranges)+len(rs))
	out = append(out, s.ranges...)
	return RangeSet{ranges: append(out, rs...)}
}

// Len returns the number of ranges in the set.
func (s RangeSet) Len() int {
	return len(s.ranges)
}
