package simplify

import (
	"slices"

	"github.com/gnolang/simplint/internal/ast"
	"github.com/gnolang/simplint/internal/fix"
	"github.com/gnolang/simplint/internal/lookup"
	"github.com/gnolang/simplint/internal/match"
)

// Analyze reports every simplification found in the top-level declarations
// of mod. src must be the text mod was parsed from.
func Analyze(mod *ast.Module, l lookup.Lookup, src *fix.Source) []Diagnostic {
	a := &analyzer{lookup: l, source: src}
	for _, decl := range mod.Declarations {
		fn, ok := decl.(*ast.FunctionDecl)
		if !ok || fn.Body == nil {
			continue
		}
		a.visit(fn.Body, nil, RangeSet{})
	}
	return a.diags
}

type analyzer struct {
	lookup lookup.Lookup
	source *fix.Source
	diags  []Diagnostic
}

// visit checks e and then its children in pre-order. Ranges added to the
// ignore set by a check only affect the descendants of e.
func (a *analyzer) visit(e, parent ast.Expr, ignored RangeSet) {
	if !ignored.Contains(e.Range()) {
		diags, skip := a.check(e, parent)
		a.diags = append(a.diags, diags...)
		ignored = ignored.With(skip...)
	}
	for _, child := range ast.Children(e) {
		a.visit(child, e, ignored)
	}
}

func (a *analyzer) check(e, parent ast.Expr) ([]Diagnostic, []ast.Range) {
	switch node := e.(type) {
	case *ast.Application:
		c, ok := a.applicationCall(node, parent)
		if !ok {
			return nil, nil
		}
		return runCall(c), nil
	case *ast.OperatorApplication:
		return a.checkOperator(node, parent)
	case *ast.IfExpr:
		return withRule(RuleIf, ifCheck(a.lookup, a.source, parent, node)), nil
	}
	return nil, nil
}

func (a *analyzer) newCall(parent ast.Expr, rng ast.Range, pipe match.Pipe) CheckInfo {
	return CheckInfo{
		Lookup:      a.lookup,
		Source:      a.source,
		Parent:      parent,
		ParentRange: rng,
		Pipe:        pipe,
	}
}

func (a *analyzer) applicationCall(node *ast.Application, parent ast.Expr) (CheckInfo, bool) {
	c := a.newCall(parent, node.Range(), match.NoPipe)
	c.Args = node.Args
	return c, a.resolveFunction(&c, node.Fn)
}

// resolveFunction fills the function part of c. Besides named functions it
// accepts tuple projection lambdas, which are checked as Tuple.first and
// Tuple.second. FnRange is the callee as written, parentheses included.
func (a *analyzer) resolveFunction(c *CheckInfo, fn ast.Expr) bool {
	switch f := match.RemoveParens(fn).(type) {
	case *ast.FunctionOrValue:
		name, ok := lookup.ResolveRef(a.lookup, f)
		c.Fn, c.FnRange = name, fn.Range()
		return ok
	case *ast.LambdaExpr:
		projection, ok := match.GetTupleProjection(a.lookup, f)
		if !ok {
			return false
		}
		c.Fn, c.FnRange = match.TupleFirst, fn.Range()
		if projection == match.ProjectSecond {
			c.Fn = match.TupleSecond
		}
		return true
	}
	return false
}

func (a *analyzer) checkOperator(node *ast.OperatorApplication, parent ast.Expr) ([]Diagnostic, []ast.Range) {
	switch {
	case match.IsOperator(a.lookup, node, "<|"):
		return a.pipeCall(node, parent, node.Left, node.Right, match.LeftPipe)
	case match.IsOperator(a.lookup, node, "|>"):
		return a.pipeCall(node, parent, node.Right, node.Left, match.RightPipe)
	}

	c := OperatorCheckInfo{
		Lookup:        a.lookup,
		Source:        a.source,
		Node:          node,
		Parent:        parent,
		ParentRange:   node.Range(),
		Operator:      node.Operator,
		OperatorRange: node.OperatorRange,
		Left:          node.Left,
		Right:         node.Right,
	}
	return runOperator(c), a.chainRanges(node)
}

// pipeCall turns `f a <| b` and `b |> f a` into the call `f a b`. The
// application `f a` is not checked on its own afterwards.
func (a *analyzer) pipeCall(node *ast.OperatorApplication, parent, fnSide, arg ast.Expr, pipe match.Pipe) ([]Diagnostic, []ast.Range) {
	c := a.newCall(parent, node.Range(), pipe)
	inner, isApp := match.RemoveParens(fnSide).(*ast.Application)
	if !isApp {
		c.Args = []ast.Expr{arg}
		if !a.resolveFunction(&c, fnSide) {
			return nil, nil
		}
		return runCall(c), nil
	}

	skip := []ast.Range{inner.Range()}
	c.Args = append(slices.Clone(inner.Args), arg)
	if !a.resolveFunction(&c, inner.Fn) {
		return nil, nil
	}
	return runCall(c), skip
}

// chainRanges returns the nested operator applications that belong to the
// same cons or composition chain as node. The whole chain is checked at its
// root.
func (a *analyzer) chainRanges(node *ast.OperatorApplication) []ast.Range {
	var out []ast.Range
	switch {
	case match.IsOperator(a.lookup, node, "::"):
		cur := match.RemoveParens(node.Right)
		for {
			op, ok := cur.(*ast.OperatorApplication)
			if !ok || !match.IsOperator(a.lookup, op, "::") {
				return out
			}
			out = append(out, op.Range())
			cur = match.RemoveParens(op.Right)
		}
	case match.IsOperator(a.lookup, node, ">>"), match.IsOperator(a.lookup, node, "<<"):
		var collect func(ast.Expr)
		collect = func(e ast.Expr) {
			op, ok := e.(*ast.OperatorApplication)
			if !ok || !match.IsOperator(a.lookup, op, node.Operator) {
				return
			}
			out = append(out, op.Range())
			collect(op.Left)
			collect(op.Right)
		}
		collect(node.Left)
		collect(node.Right)
	}
	return out
}
