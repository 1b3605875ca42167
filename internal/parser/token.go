package parser

import "github.com/gnolang/simplint/internal/ast"

// Kind identifies the lexical class of a token.
type Kind int

const (
	EOF Kind = iota
	LowerName
	UpperName
	Integer
	Hex
	Float
	String
	Char
	Operator
	Negate
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace
	Comma
	Backslash
	Arrow
	Equals
	Pipe
	Colon
	DotDot
	DotField
	Underscore
	Keyword
)

var kindNames = map[Kind]string{
	EOF:        "end of file",
	LowerName:  "name",
	UpperName:  "upper-case name",
	Integer:    "integer",
	Hex:        "hex literal",
	Float:      "float",
	String:     "string",
	Char:       "char",
	Operator:   "operator",
	Negate:     "-",
	LParen:     "(",
	RParen:     ")",
	LBracket:   "[",
	RBracket:   "]",
	LBrace:     "{",
	RBrace:     "}",
	Comma:      ",",
	Backslash:  "\\",
	Arrow:      "->",
	Equals:     "=",
	Pipe:       "|",
	Colon:      ":",
	DotDot:     "..",
	DotField:   "field accessor",
	Underscore: "_",
	Keyword:    "keyword",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "token"
}

var keywords = map[string]bool{
	"module":   true,
	"import":   true,
	"as":       true,
	"exposing": true,
	"if":       true,
	"then":     true,
	"else":     true,
	"let":      true,
	"in":       true,
	"case":     true,
	"of":       true,
	"type":     true,
	"alias":    true,
	"port":     true,
	"infix":    true,
	"where":    true,
	"effect":   true,
}

// Token is a scanned token.
type Token struct {
	Kind Kind
	Rng  ast.Range
	// Text is the raw source of the token; for names it is the local name.
	Text string
	// Module holds the qualifier of a qualified name.
	Module ast.ModuleName
	// Attached is set for DotField tokens written directly after an expression.
	Attached bool

	Int   int64
	Float float64
	Str   string
	Rune  rune

	TripleQuoted bool
}

func (t Token) is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}

// Comment is a line (`--`) or block (`{- -}`) comment.
type Comment struct {
	Rng  ast.Range
	Text string
}

// IsBlock reports whether c is a block comment.
func (c Comment) IsBlock() bool {
	return len(c.Text) >= 2 && c.Text[:2] == "{-"
}
