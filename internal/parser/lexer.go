package parser

import (
	"strconv"
	"strings"

	"github.com/gnolang/simplint/internal/ast"
)

const operatorChars = "+-*/<>=|&:^.!?%$#@~"

// Lexer tokenizes source code.
type Lexer struct {
	src    []byte
	offset int
	row    int
	col    int
	errs   ErrorList

	// Comments collects every comment skipped so far.
	Comments []Comment
}

// NewLexer creates a Lexer positioned at the start of src.
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, row: 1, col: 1}
}

// Tokenize scans the whole source and returns every token followed by EOF.
func Tokenize(src []byte) ([]Token, error) {
	l := NewLexer(src)
	var toks []Token
	for {
		tok := l.Scan()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			break
		}
	}
	return toks, l.errs.Err()
}

func (l *Lexer) pos() ast.Position {
	return ast.Position{Row: l.row, Column: l.col}
}

func (l *Lexer) peek(n int) byte {
	if l.offset+n >= len(l.src) || l.offset+n < 0 {
		return 0
	}
	return l.src[l.offset+n]
}

func (l *Lexer) advance() {
	if l.offset >= len(l.src) {
		return
	}
	if l.src[l.offset] == '\n' {
		l.row++
		l.col = 1
	} else {
		l.col++
	}
	l.offset++
}

func (l *Lexer) atEOF() bool {
	return l.offset >= len(l.src)
}

// Scan returns the next token.
func (l *Lexer) Scan() Token {
	l.skipTrivia()
	start := l.pos()
	if l.atEOF() {
		return Token{Kind: EOF, Rng: ast.Range{Start: start, End: start}}
	}

	c := l.peek(0)
	var tok Token
	switch {
	case c == '_' && !isIdentChar(l.peek(1)):
		l.advance()
		tok = Token{Kind: Underscore, Text: "_"}
	case isLower(c) || c == '_':
		tok = l.scanLowerName()
	case isUpper(c):
		tok = l.scanUpperName()
	case isDigit(c):
		tok = l.scanNumber(start)
	case c == '"':
		tok = l.scanString(start)
	case c == '\'':
		tok = l.scanChar(start)
	case c == '.' && isLower(l.peek(1)):
		attached := l.offset > 0 && isAttachable(l.src[l.offset-1])
		l.advance()
		name := l.readWhile(isIdentChar)
		tok = Token{Kind: DotField, Text: name, Attached: attached}
	case strings.IndexByte(operatorChars, c) >= 0:
		tok = l.scanOperator()
	default:
		l.advance()
		switch c {
		case '(':
			tok = Token{Kind: LParen, Text: "("}
		case ')':
			tok = Token{Kind: RParen, Text: ")"}
		case '[':
			tok = Token{Kind: LBracket, Text: "["}
		case ']':
			tok = Token{Kind: RBracket, Text: "]"}
		case '{':
			tok = Token{Kind: LBrace, Text: "{"}
		case '}':
			tok = Token{Kind: RBrace, Text: "}"}
		case ',':
			tok = Token{Kind: Comma, Text: ","}
		case '\\':
			tok = Token{Kind: Backslash, Text: "\\"}
		default:
			l.errs.Add(start, "unexpected character "+strconv.QuoteRune(rune(c)))
			return l.Scan()
		}
	}
	tok.Rng = ast.Range{Start: start, End: l.pos()}
	return tok
}

func (l *Lexer) skipTrivia() {
	for !l.atEOF() {
		c := l.peek(0)
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			l.advance()
		case c == '-' && l.peek(1) == '-':
			start, begin := l.pos(), l.offset
			for !l.atEOF() && l.peek(0) != '\n' {
				l.advance()
			}
			l.addComment(start, begin)
		case c == '{' && l.peek(1) == '-':
			start, begin := l.pos(), l.offset
			l.skipBlockComment()
			l.addComment(start, begin)
		default:
			return
		}
	}
}

func (l *Lexer) addComment(start ast.Position, begin int) {
	text := strings.TrimRight(string(l.src[begin:l.offset]), "\r")
	l.Comments = append(l.Comments, Comment{
		Rng:  ast.Range{Start: start, End: l.pos()},
		Text: text,
	})
}

// ScanComments returns the comments of src in source order.
func ScanComments(src []byte) []Comment {
	l := NewLexer(src)
	for l.Scan().Kind != EOF {
	}
	return l.Comments
}

func (l *Lexer) skipBlockComment() {
	start := l.pos()
	depth := 0
	for !l.atEOF() {
		switch {
		case l.peek(0) == '{' && l.peek(1) == '-':
			depth++
			l.advance()
			l.advance()
		case l.peek(0) == '-' && l.peek(1) == '}':
			depth--
			l.advance()
			l.advance()
			if depth == 0 {
				return
			}
		default:
			l.advance()
		}
	}
	l.errs.Add(start, "unterminated block comment")
}

func (l *Lexer) readWhile(pred func(byte) bool) string {
	begin := l.offset
	for !l.atEOF() && pred(l.peek(0)) {
		l.advance()
	}
	return string(l.src[begin:l.offset])
}

func (l *Lexer) scanLowerName() Token {
	name := l.readWhile(isIdentChar)
	if keywords[name] {
		return Token{Kind: Keyword, Text: name}
	}
	return Token{Kind: LowerName, Text: name}
}

// scanUpperName reads `A.B.c` or `A.B.C`. Leading upper-case segments form
// the qualifier; a lower-case segment ends the name.
func (l *Lexer) scanUpperName() Token {
	var segments []string
	segments = append(segments, l.readWhile(isIdentChar))
	for l.peek(0) == '.' {
		next := l.peek(1)
		if isUpper(next) {
			l.advance()
			segments = append(segments, l.readWhile(isIdentChar))
			continue
		}
		if isLower(next) {
			l.advance()
			name := l.readWhile(isIdentChar)
			return Token{Kind: LowerName, Text: name, Module: ast.ModuleName(segments)}
		}
		break
	}
	last := len(segments) - 1
	tok := Token{Kind: UpperName, Text: segments[last]}
	if last > 0 {
		tok.Module = ast.ModuleName(segments[:last])
	}
	return tok
}

func (l *Lexer) scanNumber(start ast.Position) Token {
	if l.peek(0) == '0' && (l.peek(1) == 'x' || l.peek(1) == 'X') {
		l.advance()
		l.advance()
		digits := l.readWhile(isHexDigit)
		v, err := strconv.ParseInt(digits, 16, 64)
		if err != nil {
			l.errs.Add(start, "invalid hex literal")
		}
		return Token{Kind: Hex, Text: "0x" + digits, Int: v}
	}

	begin := l.offset
	l.readWhile(isDigit)
	isFloat := false
	if l.peek(0) == '.' && isDigit(l.peek(1)) {
		isFloat = true
		l.advance()
		l.readWhile(isDigit)
	}
	if c := l.peek(0); c == 'e' || c == 'E' {
		next := l.peek(1)
		if isDigit(next) || ((next == '-' || next == '+') && isDigit(l.peek(2))) {
			isFloat = true
			l.advance()
			if next == '-' || next == '+' {
				l.advance()
			}
			l.readWhile(isDigit)
		}
	}
	text := string(l.src[begin:l.offset])
	if isFloat {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			l.errs.Add(start, "invalid float literal")
		}
		return Token{Kind: Float, Text: text, Float: v}
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		l.errs.Add(start, "invalid integer literal")
	}
	return Token{Kind: Integer, Text: text, Int: v}
}

func (l *Lexer) scanString(start ast.Position) Token {
	begin := l.offset
	triple := l.peek(1) == '"' && l.peek(2) == '"'
	if triple {
		l.advance()
		l.advance()
		l.advance()
	} else {
		l.advance()
	}

	var sb strings.Builder
	for {
		if l.atEOF() {
			l.errs.Add(start, "unterminated string literal")
			break
		}
		c := l.peek(0)
		if triple && c == '"' && l.peek(1) == '"' && l.peek(2) == '"' {
			l.advance()
			l.advance()
			l.advance()
			break
		}
		if !triple && c == '"' {
			l.advance()
			break
		}
		if !triple && c == '\n' {
			l.errs.Add(start, "newline in string literal")
			break
		}
		if c == '\\' {
			r, ok := l.scanEscape()
			if !ok {
				l.errs.Add(l.pos(), "invalid escape sequence")
			}
			sb.WriteRune(r)
			continue
		}
		sb.WriteByte(c)
		l.advance()
	}
	return Token{Kind: String, Text: string(l.src[begin:l.offset]), Str: sb.String(), TripleQuoted: triple}
}

func (l *Lexer) scanChar(start ast.Position) Token {
	begin := l.offset
	l.advance()
	var r rune
	if l.peek(0) == '\\' {
		var ok bool
		r, ok = l.scanEscape()
		if !ok {
			l.errs.Add(start, "invalid escape sequence")
		}
	} else {
		rest := string(l.src[l.offset:])
		for _, ch := range rest {
			r = ch
			break
		}
		for i := 0; i < len(string(r)); i++ {
			l.advance()
		}
	}
	if l.peek(0) != '\'' {
		l.errs.Add(start, "unterminated char literal")
	} else {
		l.advance()
	}
	return Token{Kind: Char, Text: string(l.src[begin:l.offset]), Rune: r}
}

// scanEscape reads an escape sequence starting at a backslash.
func (l *Lexer) scanEscape() (rune, bool) {
	l.advance()
	c := l.peek(0)
	l.advance()
	switch c {
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case '"':
		return '"', true
	case '\'':
		return '\'', true
	case '\\':
		return '\\', true
	case 'u':
		if l.peek(0) != '{' {
			return 0, false
		}
		l.advance()
		digits := l.readWhile(isHexDigit)
		if l.peek(0) != '}' {
			return 0, false
		}
		l.advance()
		v, err := strconv.ParseInt(digits, 16, 32)
		if err != nil {
			return 0, false
		}
		return rune(v), true
	default:
		return rune(c), false
	}
}

func (l *Lexer) scanOperator() Token {
	if l.peek(0) == '-' && l.isNegation() {
		l.advance()
		return Token{Kind: Negate, Text: "-"}
	}
	op := l.readWhile(func(c byte) bool { return strings.IndexByte(operatorChars, c) >= 0 })
	switch op {
	case "=":
		return Token{Kind: Equals, Text: op}
	case "->":
		return Token{Kind: Arrow, Text: op}
	case "|":
		return Token{Kind: Pipe, Text: op}
	case ":":
		return Token{Kind: Colon, Text: op}
	case "..":
		return Token{Kind: DotDot, Text: op}
	}
	return Token{Kind: Operator, Text: op}
}

// isNegation reports whether the '-' at the current offset is a unary
// minus: directly followed by an operand and not directly preceded by one.
func (l *Lexer) isNegation() bool {
	next := l.peek(1)
	if next == 0 || next == ' ' || next == '\n' || next == '\r' || next == '\t' {
		return false
	}
	if strings.IndexByte(operatorChars, next) >= 0 {
		return false
	}
	if l.offset == 0 {
		return true
	}
	prev := l.src[l.offset-1]
	switch prev {
	case ' ', '\n', '\r', '\t', '(', '[', '{', ',':
		return true
	}
	return false
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentChar(c byte) bool {
	return isLower(c) || isUpper(c) || isDigit(c) || c == '_'
}

func isAttachable(c byte) bool {
	return isIdentChar(c) || c == ')' || c == '}' || c == ']'
}
