package simplify

import (
	"strconv"
	"strings"

	"github.com/gnolang/simplint/internal/ast"
	"github.com/gnolang/simplint/internal/fix"
)

// Placeholders standing for generated text in needsParens.
var (
	applicationText ast.Expr = &ast.Application{}
	operatorText    ast.Expr = &ast.OperatorApplication{}
)

// needsParens reports whether keep must be wrapped in parentheses when it
// takes the place of a node whose direct parent is parent.
func needsParens(parent, keep ast.Expr) bool {
	if parent == nil {
		return false
	}
	switch parent.(type) {
	case *ast.Application, *ast.OperatorApplication, *ast.RecordAccess, *ast.NegationExpr:
	default:
		return false
	}
	switch keep.(type) {
	case *ast.OperatorApplication, *ast.LambdaExpr, *ast.IfExpr, *ast.LetExpr, *ast.CaseExpr:
		return true
	case *ast.Application:
		_, isOperand := parent.(*ast.OperatorApplication)
		return !isOperand
	case *ast.NegationExpr:
		_, isAccess := parent.(*ast.RecordAccess)
		return isAccess
	}
	return false
}

// keepOnly replaces the node at rng by its sub-expression keep.
func keepOnly(parent ast.Expr, rng ast.Range, keep ast.Expr) []fix.Edit {
	if needsParens(parent, keep) {
		return fix.KeepOnlyRangeInParens(rng, keep.Range())
	}
	return fix.KeepOnlyRange(rng, keep.Range())
}

// replaceBy replaces the node at rng by generated text of the given shape.
func replaceBy(parent ast.Expr, rng ast.Range, shape ast.Expr, text string) []fix.Edit {
	if shape != nil && needsParens(parent, shape) {
		text = "(" + text + ")"
	}
	return []fix.Edit{fix.ReplaceRange(rng, text)}
}

// replaceByText replaces the node at rng by atomic text such as a literal.
func replaceByText(rng ast.Range, text string) []fix.Edit {
	return []fix.Edit{fix.ReplaceRange(rng, text)}
}

// removeFunctionFromCall drops the called function and keeps the first
// argument applied to the remaining ones: `f a b` becomes `a b`.
func removeFunctionFromCall(c CheckInfo) []fix.Edit {
	first := c.FirstArg()
	if len(c.Args) == 1 {
		// `f a`, `f <| a` and `a |> f` all become `a`.
		return keepOnly(c.Parent, c.ParentRange, first)
	}
	// The first argument of a prefix application is always atomic, so
	// `f a b`, `f a <| b` and `b |> f a` lose the function name only.
	return []fix.Edit{fix.RemoveRange(ast.Range{Start: c.FnRange.Start, End: first.Range().Start})}
}

// replaceFunctionAndFirstArg replaces `f a` of a call by text, keeping the
// remaining arguments in place: `f a b` becomes `text b`.
func replaceFunctionAndFirstArg(c CheckInfo, text string) []fix.Edit {
	return []fix.Edit{fix.ReplaceRange(ast.Range{Start: c.FnRange.Start, End: c.FirstArg().Range().End}, text)}
}

// parenthesize wraps text of expression e when e is not atomic.
func parenthesize(e ast.Expr, text string) string {
	if ast.IsAtomic(e) {
		return text
	}
	return "(" + text + ")"
}

// listText renders a list literal in the formatter's style.
func listText(elements []string) string {
	if len(elements) == 0 {
		return "[]"
	}
	return "[ " + strings.Join(elements, ", ") + " ]"
}

// quoteString renders s as a single-quoted string literal.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				b.WriteString(`\u{` + strings.ToUpper(strconv.FormatInt(int64(r), 16)) + `}`)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
