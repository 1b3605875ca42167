package parser

import (
	"fmt"
	"strings"

	"github.com/gnolang/simplint/internal/ast"
)

// render prints an expression with explicit grouping: applications and
// operator uses are wrapped in parentheses, source parentheses in <>.
func render(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.UnitExpr:
		return "()"
	case *ast.IntegerExpr:
		return fmt.Sprint(e.Value)
	case *ast.HexExpr:
		return fmt.Sprintf("0x%X", e.Value)
	case *ast.FloatExpr:
		return fmt.Sprint(e.Value)
	case *ast.StringExpr:
		return fmt.Sprintf("%q", e.Value)
	case *ast.CharExpr:
		return fmt.Sprintf("%q", e.Value)
	case *ast.FunctionOrValue:
		if len(e.ModuleName) > 0 {
			return e.ModuleName.String() + "." + e.Name
		}
		return e.Name
	case *ast.PrefixOperator:
		return "(" + e.Operator + ")"
	case *ast.RecordAccessFunction:
		return "." + e.Field
	case *ast.Application:
		parts := []string{render(e.Fn)}
		for _, arg := range e.Args {
			parts = append(parts, render(arg))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *ast.OperatorApplication:
		return "(" + render(e.Left) + " " + e.Operator + " " + render(e.Right) + ")"
	case *ast.NegationExpr:
		return "-" + render(e.Expr)
	case *ast.ParenthesizedExpr:
		return "<" + render(e.Expr) + ">"
	case *ast.TupleExpr:
		return "(" + renderAll(e.Elements) + ")"
	case *ast.ListExpr:
		return "[" + renderAll(e.Elements) + "]"
	case *ast.RecordExpr:
		return "{" + renderFields(e.Fields) + "}"
	case *ast.RecordUpdateExpr:
		return "{" + e.Record + " | " + renderFields(e.Fields) + "}"
	case *ast.RecordAccess:
		return render(e.Record) + "." + e.Field
	case *ast.LambdaExpr:
		args := make([]string, 0, len(e.Args))
		for _, arg := range e.Args {
			args = append(args, renderPattern(arg))
		}
		return "\\" + strings.Join(args, " ") + " -> " + render(e.Body)
	case *ast.IfExpr:
		return "if " + render(e.Cond) + " then " + render(e.Then) + " else " + render(e.Else)
	case *ast.LetExpr:
		decls := make([]string, 0, len(e.Declarations))
		for _, d := range e.Declarations {
			switch d := d.(type) {
			case *ast.LetFunction:
				decls = append(decls, d.Name+" = "+render(d.Body))
			case *ast.LetDestructuring:
				decls = append(decls, renderPattern(d.Pattern)+" = "+render(d.Body))
			}
		}
		return "let " + strings.Join(decls, "; ") + " in " + render(e.Body)
	case *ast.CaseExpr:
		branches := make([]string, 0, len(e.Branches))
		for _, b := range e.Branches {
			branches = append(branches, renderPattern(b.Pattern)+" -> "+render(b.Body))
		}
		return "case " + render(e.Subject) + " of " + strings.Join(branches, "; ")
	}
	return "?"
}

func renderAll(es []ast.Expr) string {
	parts := make([]string, 0, len(es))
	for _, e := range es {
		parts = append(parts, render(e))
	}
	return strings.Join(parts, ", ")
}

func renderFields(fields []ast.RecordField) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f.Name+" = "+render(f.Value))
	}
	return strings.Join(parts, ", ")
}

func renderPattern(p ast.Pattern) string {
	switch p := p.(type) {
	case *ast.AllPattern:
		return "_"
	case *ast.VarPattern:
		return p.Name
	case *ast.UnitPattern:
		return "()"
	case *ast.IntPattern:
		return fmt.Sprint(p.Value)
	case *ast.TuplePattern:
		parts := make([]string, 0, len(p.Elements))
		for _, el := range p.Elements {
			parts = append(parts, renderPattern(el))
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case *ast.NamedPattern:
		parts := []string{p.Name}
		for _, arg := range p.Args {
			parts = append(parts, renderPattern(arg))
		}
		return strings.Join(parts, " ")
	case *ast.ParenthesizedPattern:
		return "(" + renderPattern(p.Pattern) + ")"
	}
	return "?"
}
