package match

import (
	"github.com/gnolang/simplint/internal/ast"
	"github.com/gnolang/simplint/internal/lookup"
)

// Pipe tells how a call was written.
type Pipe int

const (
	// NoPipe is a prefix application `f a b`.
	NoPipe Pipe = iota
	// LeftPipe is `f a <| b`.
	LeftPipe
	// RightPipe is `b |> f a`.
	RightPipe
)

// FunctionCall is a recognised call of a specific function.
type FunctionCall struct {
	// NodeRange covers the whole call, pipe operands included.
	NodeRange ast.Range
	FnRange   ast.Range
	// Args are in application order; for `b |> f a` they are [a, b].
	Args []ast.Expr
	Pipe Pipe
}

// FirstArg returns the first argument, or nil for a bare reference.
func (c FunctionCall) FirstArg() ast.Expr {
	if len(c.Args) == 0 {
		return nil
	}
	return c.Args[0]
}

// ReduceLambda eta-reduces a lambda: `\x -> f a x` becomes `f a`, and
// `\x y -> f x y` becomes `f`. Pairs are stripped from the end while the last
// parameter is a plain variable passed as the last argument and not used
// anywhere else. Non-lambdas are returned without their parentheses.
//
// Reduced applications get a range spanning the remaining function and
// arguments, which is a contiguous piece of the source.
func ReduceLambda(e ast.Expr) ast.Expr {
	e = RemoveParens(e)
	lambda, ok := e.(*ast.LambdaExpr)
	if !ok {
		return e
	}

	params := lambda.Args
	body := RemoveParens(lambda.Body)
	reduced := false
	for len(params) > 0 {
		app, ok := body.(*ast.Application)
		if !ok {
			break
		}
		v, ok := ast.RemoveParensPattern(params[len(params)-1]).(*ast.VarPattern)
		if !ok {
			break
		}
		last, ok := RemoveParens(app.Args[len(app.Args)-1]).(*ast.FunctionOrValue)
		if !ok || len(last.ModuleName) > 0 || last.Name != v.Name {
			break
		}
		rest := app.Args[:len(app.Args)-1]
		if ast.UsesName(app.Fn, v.Name) || usesNameIn(rest, v.Name) || patternsBind(params[:len(params)-1], v.Name) {
			break
		}

		params = params[:len(params)-1]
		reduced = true
		if len(rest) == 0 {
			body = RemoveParens(app.Fn)
			continue
		}
		body = &ast.Application{
			BaseExpr: ast.BaseExpr{Rng: ast.Cover(app.Fn.Range(), rest[len(rest)-1].Range())},
			Fn:       app.Fn,
			Args:     rest,
		}
	}

	switch {
	case !reduced:
		return lambda
	case len(params) == 0:
		return body
	default:
		return &ast.LambdaExpr{BaseExpr: lambda.BaseExpr, Args: params, Body: body}
	}
}

func usesNameIn(es []ast.Expr, name string) bool {
	for _, e := range es {
		if ast.UsesName(e, name) {
			return true
		}
	}
	return false
}

func patternsBind(ps []ast.Pattern, name string) bool {
	for _, p := range ps {
		for _, bound := range ast.BoundNames(p) {
			if bound == name {
				return true
			}
		}
	}
	return false
}

// IsIdentity recognises `identity`, `\x -> x` and lambdas that eta-reduce
// to one of them.
func IsIdentity(l lookup.Resolver, e ast.Expr) bool {
	switch e := ReduceLambda(e).(type) {
	case *ast.FunctionOrValue:
		return IsReference(l, e, Identity)
	case *ast.LambdaExpr:
		if len(e.Args) != 1 {
			return false
		}
		v, ok := ast.RemoveParensPattern(e.Args[0]).(*ast.VarPattern)
		if !ok {
			return false
		}
		ref, ok := RemoveParens(e.Body).(*ast.FunctionOrValue)
		return ok && len(ref.ModuleName) == 0 && ref.Name == v.Name
	}
	return false
}

// GetAlwaysResult returns the constant value of a function ignoring its
// first argument: `always v`, `always <| v`, `v |> always` or a lambda
// whose first parameter is unused, e.g. `\_ -> v`.
//
// For a lambda with several parameters the result is a lambda over the
// remaining ones, so `\_ _ -> v` needs two steps to reach v. That lambda
// is synthetic and its range must not be used to extract source text.
func GetAlwaysResult(l lookup.Resolver, e ast.Expr) (ast.Expr, bool) {
	if call, ok := GetSpecificFunctionCall(l, e, Always); ok && len(call.Args) == 1 {
		return call.Args[0], true
	}

	lambda, ok := RemoveParens(e).(*ast.LambdaExpr)
	if !ok || len(lambda.Args) == 0 {
		return nil, false
	}
	switch p := ast.RemoveParensPattern(lambda.Args[0]).(type) {
	case *ast.AllPattern:
	case *ast.VarPattern:
		if ast.UsesName(lambda.Body, p.Name) || patternsBind(lambda.Args[1:], p.Name) {
			return nil, false
		}
	default:
		return nil, false
	}
	if len(lambda.Args) == 1 {
		return lambda.Body, true
	}
	return &ast.LambdaExpr{BaseExpr: lambda.BaseExpr, Args: lambda.Args[1:], Body: lambda.Body}, true
}

// GetAlwaysBool recognises a function that always returns a boolean literal.
func GetAlwaysBool(l lookup.Resolver, e ast.Expr) (value, ok bool) {
	result, ok := GetAlwaysResult(l, e)
	if !ok {
		return false, false
	}
	return GetBool(l, result)
}

// IsAlwaysNothing recognises `always Nothing` and `\_ -> Nothing`.
func IsAlwaysNothing(l lookup.Resolver, e ast.Expr) bool {
	result, ok := GetAlwaysResult(l, e)
	return ok && IsNothing(l, result)
}

// IsAlwaysEmptyList recognises `always []` and `\_ -> []`.
func IsAlwaysEmptyList(l lookup.Resolver, e ast.Expr) bool {
	result, ok := GetAlwaysResult(l, e)
	return ok && IsEmptyList(result)
}

// IsJustFunction recognises `Just` and lambdas reducing to it.
func IsJustFunction(l lookup.Resolver, e ast.Expr) bool {
	return IsReference(l, ReduceLambda(e), Just)
}

// GetJustCall returns v for `Just v`, `Just <| v` and `v |> Just`.
func GetJustCall(l lookup.Resolver, e ast.Expr) (ast.Expr, bool) {
	call, ok := GetSpecificFunctionCall(l, e, Just)
	if !ok || len(call.Args) != 1 {
		return nil, false
	}
	return call.Args[0], true
}

// GetSpecificFunctionCall recognises any spelling of a call to name: the
// bare reference, `f a b`, `f a <| b`, `b |> f a`, and lambdas that
// eta-reduce to one of those.
func GetSpecificFunctionCall(l lookup.Resolver, e ast.Expr, name ast.QualifiedName) (FunctionCall, bool) {
	e = RemoveParens(e)
	switch node := e.(type) {
	case *ast.FunctionOrValue:
		if IsReference(l, node, name) {
			return FunctionCall{NodeRange: node.Range(), FnRange: node.Range(), Pipe: NoPipe}, true
		}
	case *ast.Application:
		fn := RemoveParens(node.Fn)
		if IsReference(l, fn, name) {
			return FunctionCall{NodeRange: node.Range(), FnRange: fn.Range(), Args: node.Args, Pipe: NoPipe}, true
		}
	case *ast.OperatorApplication:
		switch {
		case IsOperator(l, node, "<|"):
			inner, ok := prefixCall(l, node.Left, name)
			if !ok {
				break
			}
			inner.NodeRange = node.Range()
			inner.Args = append(append([]ast.Expr{}, inner.Args...), node.Right)
			inner.Pipe = LeftPipe
			return inner, true
		case IsOperator(l, node, "|>"):
			inner, ok := prefixCall(l, node.Right, name)
			if !ok {
				break
			}
			inner.NodeRange = node.Range()
			inner.Args = append(append([]ast.Expr{}, inner.Args...), node.Left)
			inner.Pipe = RightPipe
			return inner, true
		}
	case *ast.LambdaExpr:
		reduced := ReduceLambda(node)
		if reduced == ast.Expr(node) {
			break
		}
		call, ok := GetSpecificFunctionCall(l, reduced, name)
		if ok {
			call.NodeRange = node.Range()
		}
		return call, ok
	}
	return FunctionCall{}, false
}

// prefixCall recognises the function side of a pipe: a bare reference or a
// prefix application.
func prefixCall(l lookup.Resolver, e ast.Expr, name ast.QualifiedName) (FunctionCall, bool) {
	e = RemoveParens(e)
	switch node := e.(type) {
	case *ast.FunctionOrValue:
		if IsReference(l, node, name) {
			return FunctionCall{NodeRange: node.Range(), FnRange: node.Range()}, true
		}
	case *ast.Application:
		fn := RemoveParens(node.Fn)
		if IsReference(l, fn, name) {
			return FunctionCall{NodeRange: node.Range(), FnRange: fn.Range(), Args: node.Args}, true
		}
	}
	return FunctionCall{}, false
}
