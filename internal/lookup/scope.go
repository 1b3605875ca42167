package lookup

import "github.com/gnolang/simplint/internal/ast"

type scope struct {
	names  map[string]struct{}
	parent *scope
}

func newScope(parent *scope) *scope {
	return &scope{names: make(map[string]struct{}), parent: parent}
}

func (s *scope) add(name string) {
	s.names[name] = struct{}{}
}

func (s *scope) has(name string) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if _, ok := cur.names[name]; ok {
			return true
		}
	}
	return false
}

func (t *Table) resolveExpr(e ast.Expr, sc *scope) {
	switch e := e.(type) {
	case nil:
		return
	case *ast.FunctionOrValue:
		t.resolveName(e.Range(), e.ModuleName, e.Name, sc)
	case *ast.PrefixOperator:
		t.resolveOperator(e.Range(), e.Operator)
	case *ast.OperatorApplication:
		t.resolveOperator(e.OperatorRange, e.Operator)
		t.resolveExpr(e.Left, sc)
		t.resolveExpr(e.Right, sc)
	case *ast.RecordUpdateExpr:
		t.resolveName(e.RecordRange, nil, e.Record, sc)
		for _, f := range e.Fields {
			t.resolveExpr(f.Value, sc)
		}
	case *ast.LambdaExpr:
		inner := newScope(sc)
		for _, arg := range e.Args {
			t.bindPattern(arg, inner)
		}
		t.resolveExpr(e.Body, inner)
	case *ast.LetExpr:
		inner := newScope(sc)
		for _, decl := range e.Declarations {
			switch d := decl.(type) {
			case *ast.LetFunction:
				inner.add(d.Name)
			case *ast.LetDestructuring:
				t.bindPattern(d.Pattern, inner)
			}
		}
		for _, decl := range e.Declarations {
			switch d := decl.(type) {
			case *ast.LetFunction:
				fnScope := newScope(inner)
				for _, arg := range d.Args {
					t.bindPattern(arg, fnScope)
				}
				t.resolveExpr(d.Body, fnScope)
			case *ast.LetDestructuring:
				t.resolveExpr(d.Body, inner)
			}
		}
		t.resolveExpr(e.Body, inner)
	case *ast.CaseExpr:
		t.resolveExpr(e.Subject, sc)
		for _, b := range e.Branches {
			inner := newScope(sc)
			t.bindPattern(b.Pattern, inner)
			t.resolveExpr(b.Body, inner)
		}
	default:
		for _, child := range ast.Children(e) {
			t.resolveExpr(child, sc)
		}
	}
}

func (t *Table) resolveName(rng ast.Range, qualifier ast.ModuleName, name string, sc *scope) {
	if len(qualifier) > 0 {
		if m, ok := t.qualifiers[qualifier.String()]; ok {
			t.refs[rng] = m
		}
		return
	}
	if sc.has(name) {
		t.locals[rng] = struct{}{}
		return
	}
	if _, ok := t.topLevel[name]; ok {
		t.refs[rng] = t.module
		return
	}
	if m, ok := t.unqualified[name]; ok {
		t.refs[rng] = m
	}
}

func (t *Table) resolveOperator(rng ast.Range, op string) {
	if m, ok := t.unqualified[op]; ok {
		t.refs[rng] = m
	}
}

// bindPattern adds the variables of p to sc and resolves the constructors
// it mentions.
func (t *Table) bindPattern(p ast.Pattern, sc *scope) {
	switch p := p.(type) {
	case *ast.VarPattern:
		sc.add(p.Name)
	case *ast.NamedPattern:
		t.resolveName(p.Range(), p.ModuleName, p.Name, nil)
		for _, arg := range p.Args {
			t.bindPattern(arg, sc)
		}
	case *ast.TuplePattern:
		for _, el := range p.Elements {
			t.bindPattern(el, sc)
		}
	case *ast.ListPattern:
		for _, el := range p.Elements {
			t.bindPattern(el, sc)
		}
	case *ast.ConsPattern:
		t.bindPattern(p.Head, sc)
		t.bindPattern(p.Tail, sc)
	case *ast.AsPattern:
		t.bindPattern(p.Pattern, sc)
		sc.add(p.Name)
	case *ast.RecordPattern:
		for _, f := range p.Fields {
			sc.add(f)
		}
	case *ast.ParenthesizedPattern:
		t.bindPattern(p.Pattern, sc)
	}
}
