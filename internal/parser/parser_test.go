package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/simplint/internal/ast"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		kinds []Kind
	}{
		{"qualified value", "List.map", []Kind{LowerName, EOF}},
		{"qualified constructor", "Maybe.Just", []Kind{UpperName, EOF}},
		{"record access", "model.count", []Kind{LowerName, DotField, EOF}},
		{"accessor function", "List.map .name", []Kind{LowerName, DotField, EOF}},
		{"negation", "f -1", []Kind{LowerName, Negate, Integer, EOF}},
		{"subtraction", "a - 1", []Kind{LowerName, Operator, Integer, EOF}},
		{"tight subtraction", "a-1", []Kind{LowerName, Operator, Integer, EOF}},
		{"line comment", "a -- comment\nb", []Kind{LowerName, LowerName, EOF}},
		{"nested block comment", "a {- x {- y -} z -} b", []Kind{LowerName, LowerName, EOF}},
		{"literals", `1 0xFF 1.5 "s" 'c'`, []Kind{Integer, Hex, Float, String, Char, EOF}},
		{"keywords", "if a then b else c", []Kind{Keyword, LowerName, Keyword, LowerName, Keyword, LowerName, EOF}},
		{"special operators", "= -> | : ..", []Kind{Equals, Arrow, Pipe, Colon, DotDot, EOF}},
		{"wildcard", "\\_ -> x", []Kind{Backslash, Underscore, Arrow, LowerName, EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			toks, err := Tokenize([]byte(tt.src))
			require.NoError(t, err)
			kinds := make([]Kind, 0, len(toks))
			for _, tok := range toks {
				kinds = append(kinds, tok.Kind)
			}
			assert.Equal(t, tt.kinds, kinds)
		})
	}
}

func TestTokenizeValues(t *testing.T) {
	t.Parallel()

	toks, err := Tokenize([]byte(`List.Extra.find 0x1F "a\tb\u{1F600}" '\n' """multi
line""" 2e3`))
	require.NoError(t, err)
	require.Len(t, toks, 7)

	assert.Equal(t, ast.ModuleName{"List", "Extra"}, toks[0].Module)
	assert.Equal(t, "find", toks[0].Text)
	assert.Equal(t, int64(31), toks[1].Int)
	assert.Equal(t, "a\tb\U0001F600", toks[2].Str)
	assert.Equal(t, '\n', toks[3].Rune)
	assert.True(t, toks[4].TripleQuoted)
	assert.Equal(t, "multi\nline", toks[4].Str)
	assert.Equal(t, 2000.0, toks[5].Float)
}

func TestTokenPositions(t *testing.T) {
	t.Parallel()

	toks, err := Tokenize([]byte("a\n  bb"))
	require.NoError(t, err)
	assert.Equal(t, ast.Range{Start: ast.Position{Row: 1, Column: 1}, End: ast.Position{Row: 1, Column: 2}}, toks[0].Rng)
	assert.Equal(t, ast.Range{Start: ast.Position{Row: 2, Column: 3}, End: ast.Position{Row: 2, Column: 5}}, toks[1].Rng)
}

func TestScanComments(t *testing.T) {
	t.Parallel()

	comments := ScanComments([]byte("-- head\nf = 1 -- tail\r\n{- a {- b -} -}\ng = \"-- not a comment\"\n"))
	require.Len(t, comments, 3)

	assert.Equal(t, "-- head", comments[0].Text)
	assert.Equal(t, ast.Position{Row: 1, Column: 1}, comments[0].Rng.Start)
	assert.False(t, comments[0].IsBlock())

	assert.Equal(t, "-- tail", comments[1].Text)
	assert.Equal(t, ast.Position{Row: 2, Column: 7}, comments[1].Rng.Start)

	assert.Equal(t, "{- a {- b -} -}", comments[2].Text)
	assert.Equal(t, 3, comments[2].Rng.Start.Row)
	assert.True(t, comments[2].IsBlock())
}

func TestTokenizeErrors(t *testing.T) {
	t.Parallel()

	for _, src := range []string{`"unterminated`, "{- open", "'ab'", "a ` b"} {
		_, err := Tokenize([]byte(src))
		assert.Error(t, err, src)
	}
}

func TestParseExprPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want string
	}{
		{"a || b && c", "(a || (b && c))"},
		{"a && b || c", "((a && b) || c)"},
		{"a - b - c", "((a - b) - c)"},
		{"a :: b :: c", "(a :: (b :: c))"},
		{"a ++ b ++ c", "(a ++ (b ++ c))"},
		{"x |> f |> g", "((x |> f) |> g)"},
		{"f <| g <| x", "(f <| (g <| x))"},
		{"f >> g >> h", "(f >> (g >> h))"},
		{"f << g << h", "((f << g) << h)"},
		{"a + b * c == d", "((a + (b * c)) == d)"},
		{"f a b + g c", "((f a b) + (g c))"},
		{"xs |> List.map f", "(xs |> (List.map f))"},
		{"f -1", "(f -1)"},
		{"a.b.c", "a.b.c"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()
			expr, err := ParseExpr([]byte(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.want, render(expr))
		})
	}
}

func TestParseExprForms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want string
	}{
		{"()", "()"},
		{"(+)", "(+)"},
		{"(-)", "(-)"},
		{"( a, b )", "(a, b)"},
		{"[ 1, 2, 3 ]", "[1, 2, 3]"},
		{"[]", "[]"},
		{"{ a = 1, b = x }", "{a = 1, b = x}"},
		{"{ model | a = 1 }", "{model | a = 1}"},
		{"\\x -> x", "\\x -> x"},
		{"\\( a, _ ) -> a", "\\(a, _) -> a"},
		{"if c then a else b", "if c then a else b"},
		{"let x = 1 in x", "let x = 1 in x"},
		{"x |> \\y -> y", "(x |> \\y -> y)"},
		{"-(f x)", "-<(f x)>"},
		{"(f x)", "<(f x)>"},
		{".name", ".name"},
		{"Just <| f x", "(Just <| (f x))"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()
			expr, err := ParseExpr([]byte(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.want, render(expr))
		})
	}
}

func TestParseCaseLayout(t *testing.T) {
	t.Parallel()

	src := `case x of
    Just y ->
        f y
            z

    Nothing ->
        0`
	expr, err := ParseExpr([]byte(src))
	require.NoError(t, err)

	c, ok := expr.(*ast.CaseExpr)
	require.True(t, ok)
	require.Len(t, c.Branches, 2)
	assert.Equal(t, "(f y z)", render(c.Branches[0].Body))
	assert.Equal(t, "0", render(c.Branches[1].Body))

	named, ok := c.Branches[0].Pattern.(*ast.NamedPattern)
	require.True(t, ok)
	assert.Equal(t, "Just", named.Name)
	require.Len(t, named.Args, 1)
}

func TestParseNestedCase(t *testing.T) {
	t.Parallel()

	src := `case a of
    A ->
        case b of
            B ->
                1

            _ ->
                2

    _ ->
        3`
	expr, err := ParseExpr([]byte(src))
	require.NoError(t, err)

	outer := expr.(*ast.CaseExpr)
	require.Len(t, outer.Branches, 2)
	inner, ok := outer.Branches[0].Body.(*ast.CaseExpr)
	require.True(t, ok)
	assert.Len(t, inner.Branches, 2)
}

func TestParseLetLayout(t *testing.T) {
	t.Parallel()

	src := `let
    a : Int
    a =
        1

    ( b, c ) =
        pair

    f x =
        x
in
f a`
	expr, err := ParseExpr([]byte(src))
	require.NoError(t, err)

	let, ok := expr.(*ast.LetExpr)
	require.True(t, ok)
	require.Len(t, let.Declarations, 3)
	_, isDestructuring := let.Declarations[1].(*ast.LetDestructuring)
	assert.True(t, isDestructuring)
	fn := let.Declarations[2].(*ast.LetFunction)
	assert.Equal(t, "f", fn.Name)
	assert.Len(t, fn.Args, 1)
	assert.Equal(t, "(f a)", render(let.Body))
}

func TestParseModule(t *testing.T) {
	t.Parallel()

	src := `module Main exposing (main, Msg(..))

{-| Docs -}

import Html exposing (Html, text)
import List.Extra as LE
import Dict exposing (..)


type Msg
    = Increment
    | Set (Maybe Int)
    | Reset { value : Int }


type alias Model =
    { count : Int }


main : Html msg
main =
    text "hello"


update msg model =
    case msg of
        Increment ->
            model + 1

        _ ->
            model
`
	mod, err := ParseModule([]byte(src))
	require.NoError(t, err)

	assert.Equal(t, ast.ModuleName{"Main"}, mod.Name)
	require.NotNil(t, mod.Exposing)
	assert.True(t, mod.Exposing.Exposes("Msg"))

	require.Len(t, mod.Imports, 3)
	assert.Equal(t, ast.ModuleName{"List", "Extra"}, mod.Imports[1].Name)
	assert.Equal(t, ast.ModuleName{"LE"}, mod.Imports[1].Alias)
	assert.True(t, mod.Imports[2].Exposing.All)
	assert.True(t, mod.Imports[0].Exposing.Exposes("text"))

	require.Len(t, mod.Declarations, 4)
	typ := mod.Declarations[0].(*ast.TypeDecl)
	assert.Equal(t, []string{"Increment", "Set", "Reset"}, typ.Constructors)
	alias := mod.Declarations[1].(*ast.TypeAliasDecl)
	assert.True(t, alias.IsRecord)
	mainDecl := mod.Declarations[2].(*ast.FunctionDecl)
	assert.Equal(t, "main", mainDecl.Name)
	update := mod.Declarations[3].(*ast.FunctionDecl)
	assert.Len(t, update.Args, 2)
}

func TestParseModuleRecoversPerDeclaration(t *testing.T) {
	t.Parallel()

	src := `module A exposing (..)

broken = (

fine = 1
`
	mod, err := ParseModule([]byte(src))
	require.Error(t, err)
	require.NotNil(t, mod)
	require.Len(t, mod.Declarations, 1)
	assert.Equal(t, "fine", mod.Declarations[0].(*ast.FunctionDecl).Name)

	var list ErrorList
	require.ErrorAs(t, err, &list)
	assert.Equal(t, 3, list[0].Pos.Row)
}

func TestParseRanges(t *testing.T) {
	t.Parallel()

	expr, err := ParseExpr([]byte("List.map f (x)"))
	require.NoError(t, err)

	app := expr.(*ast.Application)
	assert.Equal(t, ast.Range{Start: ast.Position{Row: 1, Column: 1}, End: ast.Position{Row: 1, Column: 15}}, app.Range())
	assert.Equal(t, ast.Range{Start: ast.Position{Row: 1, Column: 1}, End: ast.Position{Row: 1, Column: 9}}, app.Fn.Range())
	assert.Equal(t, ast.Range{Start: ast.Position{Row: 1, Column: 12}, End: ast.Position{Row: 1, Column: 15}}, app.Args[1].Range())
}

func TestParsePatterns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want []string
	}{
		{"\\( a, _ ) -> a", []string{"a"}},
		{"\\{ x, y } -> x", []string{"x", "y"}},
		{"\\(Just v) -> v", []string{"v"}},
		{"\\[ a, b ] -> a", []string{"a", "b"}},
		{"\\(h :: t) -> h", []string{"h", "t"}},
		{"\\(( a, b ) as p) -> p", []string{"a", "b", "p"}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()
			expr, err := ParseExpr([]byte(tt.src))
			require.NoError(t, err)
			lambda := expr.(*ast.LambdaExpr)
			var names []string
			for _, arg := range lambda.Args {
				names = append(names, ast.BoundNames(arg)...)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}
