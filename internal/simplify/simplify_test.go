package simplify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/simplint/internal/ast"
	"github.com/gnolang/simplint/internal/fix"
	"github.com/gnolang/simplint/internal/lookup"
	"github.com/gnolang/simplint/internal/parser"
)

const (
	header    = "module A exposing (..)\n\nimport List.Extra as LE\n\n\n"
	signature = "subject a b c x y list fn s m n f g =\n    "
)

func analyzeSource(t *testing.T, src string) []Diagnostic {
	t.Helper()

	mod, err := parser.ParseModule([]byte(src))
	require.NoError(t, err, src)
	diags := Analyze(mod, lookup.Build(mod), fix.NewSource([]byte(src)))
	for _, d := range diags {
		require.NoError(t, fix.CheckDisjoint(d.Fixes), d.Message)
	}
	return diags
}

func analyzeBody(t *testing.T, body string) (string, []Diagnostic) {
	t.Helper()

	src := header + signature + body + "\n"
	return src, analyzeSource(t, src)
}

// withMessage returns the only diagnostic carrying message.
func withMessage(t *testing.T, diags []Diagnostic, message string) Diagnostic {
	t.Helper()

	var found []Diagnostic
	for _, d := range diags {
		if d.Message == message {
			found = append(found, d)
		}
	}
	require.Len(t, found, 1, "diagnostics: %v", messages(diags))
	return found[0]
}

func messages(diags []Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Message)
	}
	return out
}

func applyFix(t *testing.T, src string, d Diagnostic) string {
	t.Helper()

	out, err := fix.Apply([]byte(src), d.Fixes)
	require.NoError(t, err)
	return string(out)
}

func bodyOf(src string) string {
	return strings.TrimSuffix(strings.TrimPrefix(src, header+signature), "\n")
}

func TestSimplifications(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		rule    string
		message string
		want    string
	}{
		// || and &&
		{"or with True on the right", "x || True", RuleBoolean, "Comparison is always True", "True"},
		{"or with True on the left", "True || x", RuleBoolean, "Comparison is always True", "True"},
		{"or with False on the right", "x || False", RuleBoolean, "Part of the expression is unnecessary", "x"},
		{"or with False on the left", "False || x", RuleBoolean, "Part of the expression is unnecessary", "x"},
		{"and with False", "x && False", RuleBoolean, "Comparison is always False", "False"},
		{"and with True", "True && x", RuleBoolean, "Part of the expression is unnecessary", "x"},
		{"or with itself", "x || x", RuleBoolean, "Condition is redundant", "x"},

		// == and /=
		{"equal to True", "x == True", RuleEquality, "Unnecessary comparison with boolean", "x"},
		{"not equal to True", "x /= True", RuleEquality, "Unnecessary comparison with boolean", "not x"},
		{"False equal to call", "False == f x", RuleEquality, "Unnecessary comparison with boolean", "not (f x)"},
		{"equal to itself", "x == x", RuleEquality, "Comparison is always True", "True"},
		{"not equal to itself", "a + 1 /= a + 1", RuleEquality, "Comparison is always False", "False"},
		{"signed float zeros", "0.0 == -0.0", RuleEquality, "Comparison is always True", "True"},
		{"distinct literals", "1 == 2", RuleEquality, "Comparison is always False", "False"},
		{"hex and decimal", "0x10 == 16", RuleEquality, "Comparison is always True", "True"},

		// if
		{"if True", "if True then x else y", RuleIf, "The condition will always evaluate to True", "x"},
		{"if False", "if False then x else y", RuleIf, "The condition will always evaluate to False", "y"},
		{"if returning the condition", "if c then True else False", RuleIf, "The if expression's value is the same as the condition", "c"},
		{"if returning the inverse", "if a == b then False else True", RuleIf, "The if expression's value is the inverse of the condition", "not (a == b)"},
		{"if with equal branches", "if c then f x else f (x)", RuleIf, "The values in both branches is the same.", "f x"},
		{"if as last pipe operand", "fn <| if True then g x else y", RuleIf, "The condition will always evaluate to True", "fn <| g x"},

		// ++
		{"append empty string", `"" ++ s`, RuleList, "Unnecessary concatenation with an empty string", "s"},
		{"append to empty list", "list ++ []", RuleList, "Unnecessary concatenation with an empty list", "list"},
		{"append list literals", "[ a, b ] ++ [ c ]", RuleList, "Expression could be simplified to be a single List", "[ a, b, c ]"},
		{"append singleton", "[ a ] ++ list", RuleList, "Should use (::) instead of (++)", "a :: list"},
		{"append unspaced singleton", "[a] ++ list", RuleList, "Should use (::) instead of (++)", "a :: list"},
		{"append singleton operation", "[ a ++ b ] ++ list", RuleList, "Should use (::) instead of (++)", "(a ++ b) :: list"},

		// ::
		{"cons onto literal", "a :: [ b, c ]", RuleList, "Element added to the beginning of the list could be included in the list", "[ a, b, c ]"},
		{"cons chain", "a :: b :: [ c ]", RuleList, "Element added to the beginning of the list could be included in the list", "[ a, b, c ]"},
		{"cons onto empty list", "a :: []", RuleList, "Element added to the beginning of the list could be included in the list", "[ a ]"},

		// >> and <<
		{"compose with identity", "f >> identity", RuleComposition, "`identity` should be removed", "f"},
		{"identity composed", "identity << f", RuleComposition, "`identity` should be removed", "f"},
		{"identity inside chain", "f >> identity >> g", RuleComposition, "`identity` should be removed", "f >> g"},
		{"compose into always", "f >> always x", RuleComposition, "Function composed with always will be ignored", "always x"},

		// Basics
		{"identity call", "identity x", RuleBasics, "`identity` should be removed", "x"},
		{"identity piped", "x |> identity", RuleBasics, "`identity` should be removed", "x"},
		{"identity left pipe", "identity <| f x", RuleBasics, "`identity` should be removed", "f x"},
		{"identity with extra argument", "identity f x", RuleBasics, "`identity` should be removed", "f x"},
		{"identity piped with argument", "x |> identity f", RuleBasics, "`identity` should be removed", "x |> f"},
		{"parenthesized identity with argument", "(identity) f x", RuleBasics, "`identity` should be removed", "f x"},
		{"parenthesized identity piped with argument", "x |> (identity) f", RuleBasics, "`identity` should be removed", "x |> f"},
		{"always call", "always x y", RuleBasics, "Expression can be replaced by the first argument given to `always`", "x"},
		{"always piped", "y |> always x", RuleBasics, "Expression can be replaced by the first argument given to `always`", "x"},
		{"not True", "not True", RuleBasics, "Expression is equal to False", "False"},
		{"double negation", "not (not x)", RuleBasics, "Unnecessary double negation", "x"},
		{"double negation piped", "x |> not |> not", RuleBasics, "Unnecessary double negation", "x"},

		// List
		{"map identity", "List.map identity list", RuleList, "Using List.map with an identity function is the same as not using List.map", "list"},
		{"map identity piped", "list |> List.map identity", RuleList, "Using List.map with an identity function is the same as not using List.map", "list"},
		{"map identity partial", "List.map identity", RuleList, "Using List.map with an identity function is the same as not using List.map", "identity"},
		{"map identity lambda", `List.map (\v -> v) list`, RuleList, "Using List.map with an identity function is the same as not using List.map", "list"},
		{"map on empty list", "List.map fn []", RuleList, "Using List.map on an empty list will result in an empty list", "[]"},
		{"filter always True", "List.filter (always True) list", RuleList, "Using List.filter with a function that will always return True is the same as not using List.filter", "list"},
		{"filter always False", `List.filter (\_ -> False) list`, RuleList, "Using List.filter with a function that will always return False will result in an empty list", "[]"},
		{"filter always False partial", "List.filter (always False)", RuleList, "Using List.filter with a function that will always return False will result in an empty list", "always []"},
		{"filterMap Just", "List.filterMap Just list", RuleList, "Using List.filterMap with a function that will always return Just is the same as not using List.filterMap", "list"},
		{"filterMap always Nothing", "List.filterMap (always Nothing) list", RuleList, "Using List.filterMap with a function that will always return Nothing will result in an empty list", "[]"},
		{"concat single element", "List.concat [ list ]", RuleList, "Unnecessary use of List.concat on a list with 1 element", "list"},
		{"concat literals", "List.concat [ [ a, b ], [ c ] ]", RuleList, "Expression could be simplified to be a single List", "[ a, b, c ]"},
		{"concat unspaced literals", "List.concat [[a,b],[c]]", RuleList, "Expression could be simplified to be a single List", "[ a, b, c ]"},
		{"concat empty list", "List.concat []", RuleList, "Using List.concat on an empty list will result in an empty list", "[]"},
		{"concat literal run", "List.concat [ list, [ a ], [ b ] ]", RuleList, "Consecutive literal lists should be merged", "List.concat [ list, [ a, b ] ]"},
		{"concatMap identity", "List.concatMap identity list", RuleList, "Using List.concatMap with an identity function is the same as using List.concat", "List.concat list"},
		{"concatMap identity piped", "list |> List.concatMap identity", RuleList, "Using List.concatMap with an identity function is the same as using List.concat", "list |> List.concat"},
		{"parenthesized concatMap identity", "(List.concatMap) identity list", RuleList, "Using List.concatMap with an identity function is the same as using List.concat", "List.concat list"},
		{"concatMap always empty", "List.concatMap (always []) list", RuleList, "Using List.concatMap with a function that will always return an empty list will result in an empty list", "[]"},
		{"length of literal", "List.length [ a, b, c ]", RuleList, "The length of the list is 3", "3"},
		{"length of cons chain", "List.length (a :: [ b ])", RuleList, "The length of the list is 2", "2"},
		{"isEmpty of empty list", "List.isEmpty []", RuleList, "The call to List.isEmpty will result in True", "True"},
		{"isEmpty of cons", "List.isEmpty (a :: list)", RuleList, "The call to List.isEmpty will result in False", "False"},
		{"head of empty list", "List.head []", RuleList, "Using List.head on an empty list will result in Nothing", "Nothing"},
		{"head of literal", "List.head [ a, b ]", RuleList, "Using List.head on a list with a first element will result in Just the first element", "Just a"},
		{"head of cons", "List.head (f x :: list)", RuleList, "Using List.head on a list with a first element will result in Just the first element", "Just (f x)"},
		{"repeat zero", "List.repeat 0 x", RuleList, "List.repeat will result in an empty list", "[]"},
		{"repeat negative", "List.repeat -1 x", RuleList, "List.repeat will result in an empty list", "[]"},
		// A singleton literal rather than x, so the result stays a list. See the List.repeat entry in DESIGN.md.
		{"repeat once", "List.repeat 1 x", RuleList, "List.repeat will result in a list with one element", "[ x ]"},
		{"range reversed", "List.range 6 3", RuleList, "The call to List.range will result in []", "[]"},
		{"range single", "List.range 2 2", RuleList, "The call to List.range will result in [ 2 ]", "[ 2 ]"},
		{"double reverse", "List.reverse (List.reverse list)", RuleList, "Unnecessary double reversal", "list"},
		{"reverse empty list", "List.reverse []", RuleList, "Using List.reverse on an empty list will result in an empty list", "[]"},
		{"all on empty list", "List.all fn []", RuleList, "The call to List.all will result in True", "True"},
		{"any always False", "List.any (always False) list", RuleList, "The call to List.any will result in False", "False"},
		{"member of empty list", "List.member x []", RuleList, "Using List.member on an empty list will result in False", "False"},
		{"indexedMap on empty list", "List.indexedMap fn []", RuleList, "Using List.indexedMap on an empty list will result in an empty list", "[]"},

		// String
		{"isEmpty of empty string", `String.isEmpty ""`, RuleString, "The call to String.isEmpty will result in True", "True"},
		{"length of literal", `String.length "abc"`, RuleString, "The length of the string is 3", "3"},
		{"repeat zero times", "String.repeat 0 s", RuleString, "String.repeat will result in an empty string", `""`},
		{"repeat once", "String.repeat 1 s", RuleString, "String.repeat 1 won't do anything", "s"},
		{"repeat empty string", `String.repeat n ""`, RuleString, "Using String.repeat on an empty string will result in an empty string", `""`},
		{"repeat literal", `String.repeat 3 "ab"`, RuleString, `The call to String.repeat will result in "ababab"`, `"ababab"`},
		{"words of literal", `String.words "a  b"`, RuleString, `The call to String.words will result in [ "a", "b" ]`, `[ "a", "b" ]`},
		{"lines of literal", `String.lines "a\nb"`, RuleString, `The call to String.lines will result in [ "a", "b" ]`, `[ "a", "b" ]`},
		{"concat empty list", "String.concat []", RuleString, "Using String.concat on an empty list will result in an empty string", `""`},
		{"join empty list", `String.join ", " []`, RuleString, "Using String.join on an empty list will result in an empty string", `""`},
		{"fromList empty list", "String.fromList []", RuleString, "Using String.fromList on an empty list will result in an empty string", `""`},
		{"reverse empty string", `String.reverse ""`, RuleString, "Using String.reverse on an empty string will result in an empty string", `""`},
		{"double reverse", "String.reverse (String.reverse s)", RuleString, "Unnecessary double reversal", "s"},

		// Maybe
		{"map identity", "Maybe.map identity m", RuleMaybe, "Using Maybe.map with an identity function is the same as not using Maybe.map", "m"},
		{"map on Nothing", "Maybe.map fn Nothing", RuleMaybe, "Using Maybe.map on Nothing will result in Nothing", "Nothing"},
		{"withDefault on Nothing", "Maybe.withDefault x Nothing", RuleMaybe, "Using Maybe.withDefault on Nothing will result in the default value", "x"},
		{"withDefault on Just", "Maybe.withDefault x (Just y)", RuleMaybe, "Using Maybe.withDefault on a value that is Just will result in that value", "y"},
		{"withDefault on piped Just", "Just (f y) |> Maybe.withDefault x", RuleMaybe, "Using Maybe.withDefault on a value that is Just will result in that value", "(f y)"},
		{"andThen Just", "Maybe.andThen Just m", RuleMaybe, "Using Maybe.andThen with a function that will always return Just is the same as not using Maybe.andThen", "m"},
		{"andThen on Nothing", "Maybe.andThen fn Nothing", RuleMaybe, "Using Maybe.andThen on Nothing will result in Nothing", "Nothing"},
		{"andThen always Nothing", "Maybe.andThen (always Nothing) m", RuleMaybe, "Using Maybe.andThen with a function that will always return Nothing will result in Nothing", "Nothing"},

		// Tuple
		{"first of pair", "Tuple.first ( a, b )", RuleTuple, "Using Tuple.first on a known tuple will result in the first part", "a"},
		{"second of pair", "Tuple.second ( a, b )", RuleTuple, "Using Tuple.second on a known tuple will result in the second part", "b"},
		{"projection lambda", `(\( v, _ ) -> v) ( a, b )`, RuleTuple, "Using Tuple.first on a known tuple will result in the first part", "a"},
		{"first as operand", "1 + Tuple.first ( a + 1, b )", RuleTuple, "Using Tuple.first on a known tuple will result in the first part", "1 + (a + 1)"},
	}

	for _, tt := range tests {
		t.Run(tt.rule+"/"+tt.name, func(t *testing.T) {
			t.Parallel()

			src, diags := analyzeBody(t, tt.input)
			d := withMessage(t, diags, tt.message)
			assert.Equal(t, tt.rule, d.Rule)
			assert.NotEmpty(t, d.Details)

			fixed := applyFix(t, src, d)
			assert.Equal(t, tt.want, bodyOf(fixed))

			// The fixed source parses and the same simplification is gone.
			again := analyzeSource(t, fixed)
			for _, other := range again {
				assert.NotEqual(t, tt.message, other.Message, "after fix: %s", bodyOf(fixed))
			}
		})
	}
}

func TestNothingToSimplify(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"x || y",
		"x == y",
		"List.map fn list",
		"List.filter fn list",
		"List.repeat n x",
		"List.range 1 10",
		"LE.find fn list",
		"if c then x else y",
		"a :: list",
		"list ++ [ a ]",
		"f >> g",
		"always x",
		"Tuple.first x",
		"String.repeat 100 \"abc\"",
		"String.repeat 4611686018427387904 \"ab\"",
		"Maybe.withDefault x m",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			_, diags := analyzeBody(t, input)
			assert.Empty(t, diags, messages(diags))
		})
	}
}

func TestShadowedCoreNamesAreIgnored(t *testing.T) {
	t.Parallel()

	src := header + "subject identity x =\n    identity x\n\n\nother =\n    let\n        not v =\n            v\n    in\n    not True\n"
	assert.Empty(t, analyzeSource(t, src))
}

func TestPipedCallIsReportedOnce(t *testing.T) {
	t.Parallel()

	tests := []string{
		"list |> List.map identity",
		"List.map identity <| list",
		"a :: b :: c :: []",
		"f >> identity >> g >> h",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			_, diags := analyzeBody(t, input)
			assert.Len(t, diags, 1, messages(diags))
		})
	}
}

func TestNestedSimplificationsAreAllReported(t *testing.T) {
	t.Parallel()

	_, diags := analyzeBody(t, "List.map identity (List.filter (always True) list)")
	assert.ElementsMatch(t, []string{
		"Using List.map with an identity function is the same as not using List.map",
		"Using List.filter with a function that will always return True is the same as not using List.filter",
	}, messages(diags))
}

func TestGeneratedNamesAreQualified(t *testing.T) {
	t.Parallel()

	src := header + "type Local\n    = Just\n\n\nsubject a b =\n    List.head [ a, b ]\n"
	diags := analyzeSource(t, src)
	require.Len(t, diags, 1)
	fixed := applyFix(t, src, diags[0])
	assert.Contains(t, fixed, "    Maybe.Just a\n")
}

func TestRangeSet(t *testing.T) {
	t.Parallel()

	r1 := ast.Range{Start: ast.Position{Row: 1, Column: 1}, End: ast.Position{Row: 1, Column: 5}}
	r2 := ast.Range{Start: ast.Position{Row: 2, Column: 1}, End: ast.Position{Row: 2, Column: 5}}

	var empty RangeSet
	one := empty.With(r1)
	two := one.With(r2)

	assert.False(t, empty.Contains(r1))
	assert.True(t, one.Contains(r1))
	assert.False(t, one.Contains(r2))
	assert.True(t, two.Contains(r1))
	assert.True(t, two.Contains(r2))
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 2, two.Len())
}

func TestQuoteString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"a\"b\\c\nd"`, quoteString("a\"b\\c\nd"))
	assert.Equal(t, `"\u{1}"`, quoteString("\x01"))
	assert.Equal(t, `"é"`, quoteString("é"))
}

func TestUTF16Length(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, utf16Length("abc"))
	assert.Equal(t, 2, utf16Length("😀"))
	assert.Equal(t, 1, utf16Length("é"))
}
