package match

import (
	"github.com/gnolang/simplint/internal/ast"
	"github.com/gnolang/simplint/internal/lookup"
)

// ConsChain is `a :: b :: tail` split into its consed elements and tail.
type ConsChain struct {
	Elements []ast.Expr
	Tail     ast.Expr
}

// Literal returns every element of the chain when its tail is a list
// literal, i.e. when the chain denotes a finite list.
func (c ConsChain) Literal() ([]ast.Expr, bool) {
	rest, ok := GetListLiteral(c.Tail)
	if !ok {
		return nil, false
	}
	out := make([]ast.Expr, 0, len(c.Elements)+len(rest))
	out = append(out, c.Elements...)
	return append(out, rest...), true
}

// CollapseCons flattens a right-nested chain of `::` applications.
func CollapseCons(l lookup.Resolver, e ast.Expr) (ConsChain, bool) {
	op, ok := RemoveParens(e).(*ast.OperatorApplication)
	if !ok || !IsOperator(l, op, "::") {
		return ConsChain{}, false
	}
	chain := ConsChain{}
	var cur ast.Expr = op
	for {
		op, ok := RemoveParens(cur).(*ast.OperatorApplication)
		if !ok || !IsOperator(l, op, "::") {
			chain.Tail = RemoveParens(cur)
			return chain, true
		}
		chain.Elements = append(chain.Elements, op.Left)
		cur = op.Right
	}
}

// Composition is a chain of functions joined by a single composition
// operator.
type Composition struct {
	Operator string
	// Functions are in source order.
	Functions []ast.Expr
	// OperatorRanges[i] sits between Functions[i] and Functions[i+1].
	OperatorRanges []ast.Range
	Range          ast.Range
}

// Earliest returns the function applied first.
func (c Composition) Earliest() ast.Expr {
	if c.Operator == ">>" {
		return c.Functions[0]
	}
	return c.Functions[len(c.Functions)-1]
}

// Latest returns the function applied last.
func (c Composition) Latest() ast.Expr {
	if c.Operator == ">>" {
		return c.Functions[len(c.Functions)-1]
	}
	return c.Functions[0]
}

// CollapseComposition flattens `f >> g >> h` or `h << g << f`. Parenthesised
// sub-chains are kept as single segments.
func CollapseComposition(l lookup.Resolver, e ast.Expr) (Composition, bool) {
	op, ok := RemoveParens(e).(*ast.OperatorApplication)
	if !ok || !(IsOperator(l, op, ">>") || IsOperator(l, op, "<<")) {
		return Composition{}, false
	}
	c := Composition{Operator: op.Operator, Range: op.Range()}
	var flatten func(ast.Expr)
	flatten = func(e ast.Expr) {
		inner, ok := e.(*ast.OperatorApplication)
		if !ok || !IsOperator(l, inner, c.Operator) {
			c.Functions = append(c.Functions, e)
			return
		}
		flatten(inner.Left)
		c.OperatorRanges = append(c.OperatorRanges, inner.OperatorRange)
		flatten(inner.Right)
	}
	flatten(op)
	return c, true
}

// Projection identifies which element of a pair a function extracts.
type Projection int

const (
	ProjectFirst Projection = iota
	ProjectSecond
)

// GetTupleProjection recognises `Tuple.first`, `Tuple.second` and the
// lambdas `\( a, _ ) -> a` and `\( _, b ) -> b`.
func GetTupleProjection(l lookup.Resolver, e ast.Expr) (Projection, bool) {
	reduced := ReduceLambda(e)
	switch {
	case IsReference(l, reduced, TupleFirst):
		return ProjectFirst, true
	case IsReference(l, reduced, TupleSecond):
		return ProjectSecond, true
	}

	lambda, ok := reduced.(*ast.LambdaExpr)
	if !ok || len(lambda.Args) != 1 {
		return 0, false
	}
	tuple, ok := ast.RemoveParensPattern(lambda.Args[0]).(*ast.TuplePattern)
	if !ok || len(tuple.Elements) != 2 {
		return 0, false
	}
	ref, ok := RemoveParens(lambda.Body).(*ast.FunctionOrValue)
	if !ok || len(ref.ModuleName) > 0 {
		return 0, false
	}
	first := ast.RemoveParensPattern(tuple.Elements[0])
	second := ast.RemoveParensPattern(tuple.Elements[1])
	switch {
	case isVarNamed(first, ref.Name) && !bindsName(second, ref.Name):
		return ProjectFirst, true
	case isVarNamed(second, ref.Name) && !bindsName(first, ref.Name):
		return ProjectSecond, true
	}
	return 0, false
}

func isVarNamed(p ast.Pattern, name string) bool {
	v, ok := p.(*ast.VarPattern)
	return ok && v.Name == name
}

func bindsName(p ast.Pattern, name string) bool {
	return patternsBind([]ast.Pattern{p}, name)
}
