// Package match recognises canonical expression shapes.
//
// Every entry point strips enclosing parentheses first, so `x`, `(x)` and
// `((x))` always give the same answer. References are recognised through
// the name resolution service, never by spelling: a local binding called
// `identity` is not the core identity function.
package match

import (
	"github.com/gnolang/simplint/internal/ast"
	"github.com/gnolang/simplint/internal/lookup"
)

// Core values recognised by the matchers.
var (
	Identity    = core("Basics", "identity")
	Always      = core("Basics", "always")
	True        = core("Basics", "True")
	False       = core("Basics", "False")
	Not         = core("Basics", "not")
	Just        = core("Maybe", "Just")
	Nothing     = core("Maybe", "Nothing")
	TupleFirst  = core("Tuple", "first")
	TupleSecond = core("Tuple", "second")
)

func core(module, name string) ast.QualifiedName {
	return ast.QualifiedName{Module: ast.ModuleName{module}, Name: name}
}

// RemoveParens strips every layer of enclosing parentheses.
func RemoveParens(e ast.Expr) ast.Expr {
	return ast.RemoveParens(e)
}

// GetReference returns the resolved name of a reference expression.
func GetReference(l lookup.Resolver, e ast.Expr) (ast.QualifiedName, bool) {
	ref, ok := RemoveParens(e).(*ast.FunctionOrValue)
	if !ok {
		return ast.QualifiedName{}, false
	}
	return lookup.ResolveRef(l, ref)
}

// IsReference reports whether e refers to the given qualified name.
func IsReference(l lookup.Resolver, e ast.Expr, name ast.QualifiedName) bool {
	ref, ok := RemoveParens(e).(*ast.FunctionOrValue)
	if !ok || ref.Name != name.Name {
		return false
	}
	m, ok := l.ModuleNameFor(ref.Range())
	return ok && m.Equal(name.Module)
}

// IsOperator reports whether op is the core operator with the given symbol.
func IsOperator(l lookup.Resolver, op *ast.OperatorApplication, symbol string) bool {
	if op.Operator != symbol {
		return false
	}
	m, ok := l.ModuleNameFor(op.OperatorRange)
	if !ok {
		return false
	}
	if symbol == "::" {
		return m.Equal(ast.ModuleName{"List"})
	}
	return m.Equal(ast.ModuleName{"Basics"})
}

// GetBool recognises the boolean constructors.
func GetBool(l lookup.Resolver, e ast.Expr) (value, ok bool) {
	switch {
	case IsReference(l, e, True):
		return true, true
	case IsReference(l, e, False):
		return false, true
	}
	return false, false
}

// IsTrue reports whether e is the `True` constructor.
func IsTrue(l lookup.Resolver, e ast.Expr) bool {
	return IsReference(l, e, True)
}

// IsFalse reports whether e is the `False` constructor.
func IsFalse(l lookup.Resolver, e ast.Expr) bool {
	return IsReference(l, e, False)
}

// IsNothing reports whether e is the `Nothing` constructor.
func IsNothing(l lookup.Resolver, e ast.Expr) bool {
	return IsReference(l, e, Nothing)
}

// GetListLiteral returns the elements of a list literal.
func GetListLiteral(e ast.Expr) ([]ast.Expr, bool) {
	list, ok := RemoveParens(e).(*ast.ListExpr)
	if !ok {
		return nil, false
	}
	return list.Elements, true
}

// IsEmptyList reports whether e is `[]`.
func IsEmptyList(e ast.Expr) bool {
	elements, ok := GetListLiteral(e)
	return ok && len(elements) == 0
}

// GetStringLiteral returns the value of a string literal.
func GetStringLiteral(e ast.Expr) (string, bool) {
	str, ok := RemoveParens(e).(*ast.StringExpr)
	if !ok {
		return "", false
	}
	return str.Value, true
}

// IsEmptyString reports whether e is `""`.
func IsEmptyString(e ast.Expr) bool {
	s, ok := GetStringLiteral(e)
	return ok && s == ""
}

// GetIntValue evaluates decimal and hex integer literals, including
// negated ones.
func GetIntValue(e ast.Expr) (int64, bool) {
	switch e := RemoveParens(e).(type) {
	case *ast.IntegerExpr:
		return e.Value, true
	case *ast.HexExpr:
		return e.Value, true
	case *ast.NegationExpr:
		v, ok := GetIntValue(e.Expr)
		return -v, ok
	}
	return 0, false
}

// GetTupleLiteral returns the two elements of a pair literal.
func GetTupleLiteral(e ast.Expr) (first, second ast.Expr, ok bool) {
	tuple, isTuple := RemoveParens(e).(*ast.TupleExpr)
	if !isTuple || len(tuple.Elements) != 2 {
		return nil, nil, false
	}
	return tuple.Elements[0], tuple.Elements[1], true
}
