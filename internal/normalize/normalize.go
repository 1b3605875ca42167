// Package normalize decides whether two expressions always evaluate to the
// same value.
//
// The check is sound but incomplete. Both sides are turned into a canonical
// Node tree and compared structurally. A positive answer guarantees equal
// values for every input; anything else only means equality could not be
// proven.
package normalize

import (
	"slices"
	"strconv"
	"strings"

	"github.com/gnolang/simplint/internal/ast"
	"github.com/gnolang/simplint/internal/lookup"
)

// Result is the outcome of comparing two expressions.
type Result int

const (
	_ Result = iota
	// ConfirmedEquality means both sides evaluate to the same value.
	ConfirmedEquality
	// ConfirmedInequality means both sides are distinct literals.
	ConfirmedInequality
	// Unconfirmed means nothing could be proven.
	Unconfirmed
)

func (r Result) String() string {
	switch r {
	case ConfirmedEquality:
		return "ConfirmedEquality"
	case ConfirmedInequality:
		return "ConfirmedInequality"
	case Unconfirmed:
		return "Unconfirmed"
	default:
		return "?"
	}
}

// Normalizer builds canonical forms using a module's name resolution.
type Normalizer struct {
	lookup lookup.Lookup
}

// NewNormalizer creates a normalizer for the module described by l.
func NewNormalizer(l lookup.Lookup) *Normalizer {
	return &Normalizer{lookup: l}
}

// Compare normalizes both expressions and compares them.
func Compare(l lookup.Lookup, a, b ast.Expr) Result {
	return NewNormalizer(l).Compare(a, b)
}

// AreEquivalent reports whether a and b are proven to be equal.
func AreEquivalent(l lookup.Lookup, a, b ast.Expr) bool {
	return Compare(l, a, b) == ConfirmedEquality
}

// Compare normalizes both expressions and compares them.
func (n *Normalizer) Compare(a, b ast.Expr) Result {
	na, nb := n.Normalize(a), n.Normalize(b)
	if na.Equal(nb) {
		return ConfirmedEquality
	}
	if na.IsLiteral() && na.Kind == nb.Kind {
		return ConfirmedInequality
	}
	if isBool(na) && isBool(nb) {
		return ConfirmedInequality
	}
	return Unconfirmed
}

func isBool(n *Node) bool {
	return n.Kind == KindRef && (n.Value == "Basics.True" || n.Value == "Basics.False")
}

// Normalize returns the canonical form of e.
func (n *Normalizer) Normalize(e ast.Expr) *Node {
	switch e := e.(type) {
	case *ast.ParenthesizedExpr:
		return n.Normalize(e.Expr)
	case *ast.IntegerExpr:
		return leaf(KindInt, strconv.FormatInt(e.Value, 10))
	case *ast.HexExpr:
		return leaf(KindInt, strconv.FormatInt(e.Value, 10))
	case *ast.FloatExpr:
		return floatLeaf(e.Value)
	case *ast.StringExpr:
		return leaf(KindString, e.Value)
	case *ast.CharExpr:
		return leaf(KindChar, string(e.Value))
	case *ast.UnitExpr:
		return leaf(KindUnit, "")
	case *ast.FunctionOrValue:
		return n.reference(e.Range(), e.Name)
	case *ast.PrefixOperator:
		return n.operatorRef(e.Range(), e.Operator)
	case *ast.RecordAccessFunction:
		return leaf(KindAccessor, e.Field)
	case *ast.NegationExpr:
		return negate(n.Normalize(e.Expr))
	case *ast.Application:
		out := n.Normalize(e.Fn)
		for _, arg := range e.Args {
			out = apply(out, n.Normalize(arg))
		}
		return out
	case *ast.OperatorApplication:
		return n.operator(e)
	case *ast.TupleExpr:
		return &Node{Kind: KindTuple, Children: n.all(e.Elements)}
	case *ast.ListExpr:
		return &Node{Kind: KindList, Children: n.all(e.Elements)}
	case *ast.RecordExpr:
		return &Node{Kind: KindRecord, Children: n.fields(e.Fields)}
	case *ast.RecordUpdateExpr:
		children := []*Node{n.reference(e.RecordRange, e.Record)}
		return &Node{Kind: KindUpdate, Children: append(children, n.fields(e.Fields)...)}
	case *ast.RecordAccess:
		return n.access(e)
	case *ast.LambdaExpr:
		children := n.patterns(e.Args)
		return &Node{Kind: KindLambda, Children: append(children, n.Normalize(e.Body))}
	case *ast.IfExpr:
		cond := n.Normalize(e.Cond)
		switch {
		case cond.Kind == KindRef && cond.Value == "Basics.True":
			return n.Normalize(e.Then)
		case cond.Kind == KindRef && cond.Value == "Basics.False":
			return n.Normalize(e.Else)
		}
		return &Node{Kind: KindIf, Children: []*Node{cond, n.Normalize(e.Then), n.Normalize(e.Else)}}
	case *ast.LetExpr:
		return n.let(e)
	case *ast.CaseExpr:
		children := []*Node{n.Normalize(e.Subject)}
		for _, b := range e.Branches {
			children = append(children, &Node{
				Kind:     KindBranch,
				Children: []*Node{n.pattern(b.Pattern), n.Normalize(b.Body)},
			})
		}
		return &Node{Kind: KindCase, Children: children}
	}
	return unknown()
}

func (n *Normalizer) all(es []ast.Expr) []*Node {
	out := make([]*Node, 0, len(es))
	for _, e := range es {
		out = append(out, n.Normalize(e))
	}
	return out
}

// fields normalizes record fields and sorts them by name, since field
// order does not affect the value.
func (n *Normalizer) fields(fields []ast.RecordField) []*Node {
	out := make([]*Node, 0, len(fields))
	for _, f := range fields {
		out = append(out, &Node{Kind: KindField, Value: f.Name, Children: []*Node{n.Normalize(f.Value)}})
	}
	slices.SortStableFunc(out, func(a, b *Node) int {
		return strings.Compare(a.Value, b.Value)
	})
	return out
}

func (n *Normalizer) reference(rng ast.Range, name string) *Node {
	if m, ok := n.lookup.ModuleNameFor(rng); ok {
		return leaf(KindRef, m.String()+"."+name)
	}
	if n.lookup.IsLocal(rng) {
		return leaf(KindLocal, name)
	}
	return unknown()
}

func (n *Normalizer) operatorRef(rng ast.Range, op string) *Node {
	if m, ok := n.lookup.ModuleNameFor(rng); ok {
		return leaf(KindRef, m.String()+".("+op+")")
	}
	return unknown()
}

func (n *Normalizer) operator(e *ast.OperatorApplication) *Node {
	ref := n.operatorRef(e.OperatorRange, e.Operator)
	switch ref.Value {
	case "Basics.(|>)":
		return apply(n.Normalize(e.Right), n.Normalize(e.Left))
	case "Basics.(<|)":
		return apply(n.Normalize(e.Left), n.Normalize(e.Right))
	case "List.(::)":
		right := n.Normalize(e.Right)
		if right.Kind == KindList {
			children := append([]*Node{n.Normalize(e.Left)}, right.Children...)
			return &Node{Kind: KindList, Children: children}
		}
		return call(ref, n.Normalize(e.Left), right)
	}
	return call(ref, n.Normalize(e.Left), n.Normalize(e.Right))
}

func (n *Normalizer) access(e *ast.RecordAccess) *Node {
	record := n.Normalize(e.Record)
	if record.Kind == KindRecord {
		for _, f := range record.Children {
			if f.Value == e.Field {
				return f.Children[0]
			}
		}
	}
	return &Node{Kind: KindAccess, Value: e.Field, Children: []*Node{record}}
}

func (n *Normalizer) let(e *ast.LetExpr) *Node {
	children := make([]*Node, 0, len(e.Declarations)+1)
	for _, decl := range e.Declarations {
		switch d := decl.(type) {
		case *ast.LetFunction:
			fn := &Node{Kind: KindLetFunction, Value: d.Name, Children: n.patterns(d.Args)}
			fn.Children = append(fn.Children, n.Normalize(d.Body))
			children = append(children, fn)
		case *ast.LetDestructuring:
			children = append(children, &Node{
				Kind:     KindLetDestructuring,
				Children: []*Node{n.pattern(d.Pattern), n.Normalize(d.Body)},
			})
		}
	}
	return &Node{Kind: KindLet, Children: append(children, n.Normalize(e.Body))}
}

func apply(fn, arg *Node) *Node {
	if fn.Kind == KindCall {
		children := make([]*Node, 0, len(fn.Children)+1)
		children = append(children, fn.Children...)
		return &Node{Kind: KindCall, Children: append(children, arg)}
	}
	return &Node{Kind: KindCall, Children: []*Node{fn, arg}}
}

func call(fn *Node, args ...*Node) *Node {
	out := fn
	for _, arg := range args {
		out = apply(out, arg)
	}
	return out
}

// floatLeaf renders v canonically. Both zeros render as "0" since they
// compare equal.
func floatLeaf(v float64) *Node {
	if v == 0 {
		v = 0
	}
	return leaf(KindFloat, strconv.FormatFloat(v, 'g', -1, 64))
}

func negate(inner *Node) *Node {
	switch inner.Kind {
	case KindInt:
		if v, err := strconv.ParseInt(inner.Value, 10, 64); err == nil {
			return leaf(KindInt, strconv.FormatInt(-v, 10))
		}
	case KindFloat:
		if v, err := strconv.ParseFloat(inner.Value, 64); err == nil {
			return floatLeaf(-v)
		}
	}
	return call(leaf(KindRef, "Basics.negate"), inner)
}
