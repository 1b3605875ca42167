package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/simplint/internal/ast"
	"github.com/gnolang/simplint/internal/lookup"
	"github.com/gnolang/simplint/internal/parser"
)

// pair parses `[ a, b ]` inside a declaration binding f, x and y.
func pair(t *testing.T, a, b string) (*lookup.Table, ast.Expr, ast.Expr) {
	t.Helper()

	src := "module A exposing (..)\n\nimport Maybe as M\n\n\nsubject f x y =\n    [ " + a + ", " + b + " ]\n"
	mod, err := parser.ParseModule([]byte(src))
	require.NoError(t, err)
	body := mod.Declarations[0].(*ast.FunctionDecl).Body
	list, ok := body.(*ast.ListExpr)
	require.True(t, ok)
	require.Len(t, list.Elements, 2)
	return lookup.Build(mod), list.Elements[0], list.Elements[1]
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want Result
	}{
		{"x", "x", ConfirmedEquality},
		{"x", "y", Unconfirmed},
		{"(x)", "((x))", ConfirmedEquality},
		{"1", "0x01", ConfirmedEquality},
		{"1", "2", ConfirmedInequality},
		{"1", "1.0", Unconfirmed},
		{"1.5", "1.5", ConfirmedEquality},
		{"0.0", "-0.0", ConfirmedEquality},
		{"-0.0", "-(0.0)", ConfirmedEquality},
		{`"a"`, `"a"`, ConfirmedEquality},
		{`"a"`, `"b"`, ConfirmedInequality},
		{"'a'", "'b'", ConfirmedInequality},
		{"True", "False", ConfirmedInequality},
		{"True", "Basics.True", ConfirmedEquality},
		{"unknown", "unknown", Unconfirmed},
		{"List.map f x", "x |> List.map f", ConfirmedEquality},
		{"List.map f <| x", "List.map f x", ConfirmedEquality},
		{"List.map f x", "List.filter f x", Unconfirmed},
		{"x + 1", "x + 1", ConfirmedEquality},
		{"x + 1", "1 + x", Unconfirmed},
		{"(+) x 1", "x + 1", ConfirmedEquality},
		{"{ a = 1, b = 2 }", "{ b = 2, a = 1 }", ConfirmedEquality},
		{"{ a = x }.a", "x", ConfirmedEquality},
		{"{ x | a = 1 }", "{ x | a = 1 }", ConfirmedEquality},
		{"1 :: [ 2 ]", "[ 1, 2 ]", ConfirmedEquality},
		{"x :: y", "x :: y", ConfirmedEquality},
		{"-1", "-(1)", ConfirmedEquality},
		{"-x", "negate x", ConfirmedEquality},
		{`\a -> a`, `\a -> a`, ConfirmedEquality},
		{`\a -> a`, `\b -> b`, Unconfirmed},
		{`\(Just a) -> a`, `\(M.Just a) -> a`, ConfirmedEquality},
		{`\(Foo a) -> a`, `\(Foo a) -> a`, Unconfirmed},
		{"if True then x else y", "x", ConfirmedEquality},
		{"if y then x else x", "if y then x else x", ConfirmedEquality},
		{"Just x", "M.Just x", ConfirmedEquality},
		{"( x, y )", "( x, y )", ConfirmedEquality},
		{"( x, y )", "( y, x )", Unconfirmed},
		{"let z = x in z", "let z = x in z", ConfirmedEquality},
		{".name", ".name", ConfirmedEquality},
		{"x.name", "x.name", ConfirmedEquality},
		{"()", "()", ConfirmedEquality},
		{"f (g x)", "f <| g <| x", ConfirmedEquality},
		{"f x", "g x", Unconfirmed},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			t.Parallel()
			l, a, b := pair(t, tt.a, tt.b)
			assert.Equal(t, tt.want, Compare(l, a, b))
			assert.Equal(t, tt.want, Compare(l, b, a))
			assert.Equal(t, tt.want == ConfirmedEquality, AreEquivalent(l, a, b))
		})
	}
}

func TestNormalizeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		want string
	}{
		{"x |> f 1", "(f 1 x)"},
		{"0xFF", "255"},
		{"List.map identity", "(List.map Basics.identity)"},
		{"x == 1", "(Basics.(==) x 1)"},
		{"{ b = 1, a = 2 }", "{a = 2, b = 1}"},
		{"x :: []", "[x]"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()
			l, a, _ := pair(t, tt.expr, "x")
			assert.Equal(t, tt.want, NewNormalizer(l).Normalize(a).String())
		})
	}
}

func TestResultString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ConfirmedEquality", ConfirmedEquality.String())
	assert.Equal(t, "ConfirmedInequality", ConfirmedInequality.String())
	assert.Equal(t, "Unconfirmed", Unconfirmed.String())
	assert.Equal(t, "?", Result(0).String())
}
