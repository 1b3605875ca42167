package ast

// Children returns the direct sub-expressions of e in source order.
func Children(e Expr) []Expr {
	switch e := e.(type) {
	case *Application:
		out := make([]Expr, 0, len(e.Args)+1)
		out = append(out, e.Fn)
		return append(out, e.Args...)
	case *OperatorApplication:
		return []Expr{e.Left, e.Right}
	case *NegationExpr:
		return []Expr{e.Expr}
	case *ParenthesizedExpr:
		return []Expr{e.Expr}
	case *TupleExpr:
		return e.Elements
	case *ListExpr:
		return e.Elements
	case *RecordExpr:
		return fieldValues(e.Fields)
	case *RecordUpdateExpr:
		return fieldValues(e.Fields)
	case *RecordAccess:
		return []Expr{e.Record}
	case *LambdaExpr:
		return []Expr{e.Body}
	case *IfExpr:
		return []Expr{e.Cond, e.Then, e.Else}
	case *LetExpr:
		out := make([]Expr, 0, len(e.Declarations)+1)
		for _, decl := range e.Declarations {
			switch d := decl.(type) {
			case *LetFunction:
				out = append(out, d.Body)
			case *LetDestructuring:
				out = append(out, d.Body)
			}
		}
		return append(out, e.Body)
	case *CaseExpr:
		out := make([]Expr, 0, len(e.Branches)+1)
		out = append(out, e.Subject)
		for _, b := range e.Branches {
			out = append(out, b.Body)
		}
		return out
	case *UnitExpr, *IntegerExpr, *HexExpr, *FloatExpr, *StringExpr, *CharExpr,
		*FunctionOrValue, *PrefixOperator, *RecordAccessFunction:
		return nil
	default:
		return nil
	}
}

func fieldValues(fields []RecordField) []Expr {
	out := make([]Expr, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Value)
	}
	return out
}

// Inspect traverses e in depth-first pre-order. If f returns false the
// children of the current node are skipped.
func Inspect(e Expr, f func(Expr) bool) {
	if e == nil || !f(e) {
		return
	}
	for _, child := range Children(e) {
		Inspect(child, f)
	}
}

// RemoveParens strips any number of enclosing parentheses.
func RemoveParens(e Expr) Expr {
	for {
		paren, ok := e.(*ParenthesizedExpr)
		if !ok {
			return e
		}
		e = paren.Expr
	}
}

// IsAtomic reports whether e can be used as a function argument without
// surrounding parentheses.
func IsAtomic(e Expr) bool {
	switch e.(type) {
	case *UnitExpr, *IntegerExpr, *HexExpr, *FloatExpr, *StringExpr, *CharExpr,
		*FunctionOrValue, *PrefixOperator, *RecordAccessFunction,
		*ParenthesizedExpr, *TupleExpr, *ListExpr, *RecordExpr, *RecordUpdateExpr,
		*RecordAccess:
		return true
	default:
		return false
	}
}

// UsesName reports whether an unqualified reference to name occurs in e.
func UsesName(e Expr, name string) bool {
	found := false
	Inspect(e, func(n Expr) bool {
		if found {
			return false
		}
		if ref, ok := n.(*FunctionOrValue); ok && len(ref.ModuleName) == 0 && ref.Name == name {
			found = true
			return false
		}
		if upd, ok := n.(*RecordUpdateExpr); ok && upd.Record == name {
			found = true
			return false
		}
		return true
	})
	return found
}
