// Package parser turns source text into an ast.Module.
//
// Top-level declarations start in the first column. Inside a declaration the
// parser follows the offside rule for `let` and `case`: the first binding or
// branch fixes a column, and any token at or left of that column closes the
// current binding or branch.
package parser

import (
	"github.com/gnolang/simplint/internal/ast"
)

// bailout is raised to abandon the current top-level declaration.
type bailout struct{}

type parser struct {
	toks   []Token
	pos    int
	layout []int
	exempt int
	errs   ErrorList
}

// ParseModule parses a complete source file. Declarations that fail to parse
// are dropped and reported in the returned ErrorList; the module is still
// returned with every declaration that parsed.
func ParseModule(src []byte) (*ast.Module, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}

	mod := &ast.Module{}
	var errs ErrorList
	for _, chunk := range splitTopLevel(toks) {
		p := &parser{toks: chunk, layout: []int{0}, exempt: -1}
		p.parseTopLevel(mod)
		errs = append(errs, p.errs...)
	}
	return mod, errs.Err()
}

// ParseExpr parses a single expression. It is mainly used by tests.
func ParseExpr(src []byte) (ast.Expr, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, layout: []int{0}, exempt: -1}
	var expr ast.Expr
	p.guard(func() {
		expr = p.parseExpr()
		if t := p.cur(); t.Kind != EOF {
			p.fail(expectedError(t, "end of input"))
		}
	})
	if err := p.errs.Err(); err != nil {
		return nil, err
	}
	return expr, nil
}

// splitTopLevel cuts the token stream before every token in column 1.
func splitTopLevel(toks []Token) [][]Token {
	var chunks [][]Token
	start := 0
	for i, t := range toks {
		if t.Kind == EOF {
			break
		}
		if t.Rng.Start.Column == 1 && i > start {
			chunks = append(chunks, withEOF(toks[start:i]))
			start = i
		}
	}
	last := len(toks) - 1
	if last > start {
		chunks = append(chunks, withEOF(toks[start:last]))
	}
	return chunks
}

func withEOF(toks []Token) []Token {
	out := make([]Token, len(toks), len(toks)+1)
	copy(out, toks)
	end := toks[len(toks)-1].Rng.End
	return append(out, Token{Kind: EOF, Rng: ast.Range{Start: end, End: end}})
}

// -----------------------------------------------------------------------------
// Token access
// -----------------------------------------------------------------------------

// cur returns the current token, or EOF when the token is offside.
func (p *parser) cur() Token {
	t := p.toks[p.pos]
	if t.Kind != EOF && p.pos != p.exempt && t.Rng.Start.Column <= p.layout[len(p.layout)-1] {
		return Token{Kind: EOF, Rng: ast.Range{Start: t.Rng.Start, End: t.Rng.Start}}
	}
	return t
}

// raw returns the token at offset n from the current one, ignoring layout.
func (p *parser) raw(n int) Token {
	i := p.pos + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

func (p *parser) advance() Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind Kind) Token {
	t := p.cur()
	if t.Kind != kind {
		p.fail(expectedError(t, kind.String()))
	}
	return p.advance()
}

func (p *parser) expectKeyword(word string) Token {
	t := p.cur()
	if !t.is(Keyword, word) {
		p.fail(expectedError(t, "`"+word+"`"))
	}
	return p.advance()
}

// prevEnd is the end of the last consumed token.
func (p *parser) prevEnd() ast.Position {
	if p.pos == 0 {
		return p.toks[0].Rng.Start
	}
	return p.toks[p.pos-1].Rng.End
}

func (p *parser) pushLayout(col int) {
	p.layout = append(p.layout, col)
}

func (p *parser) popLayout() {
	p.layout = p.layout[:len(p.layout)-1]
}

func (p *parser) fail(err *ParseError) {
	p.errs = append(p.errs, err)
	panic(bailout{})
}

func (p *parser) guard(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
		}
	}()
	fn()
}

// -----------------------------------------------------------------------------
// Top level
// -----------------------------------------------------------------------------

func (p *parser) parseTopLevel(mod *ast.Module) {
	p.guard(func() {
		t := p.cur()
		switch {
		case t.is(Keyword, "module"):
			p.parseModuleHeader(mod)
		case (t.is(Keyword, "port") || t.is(Keyword, "effect")) && p.raw(1).is(Keyword, "module"):
			p.advance()
			p.parseModuleHeader(mod)
		case t.is(Keyword, "import"):
			mod.Imports = append(mod.Imports, p.parseImport())
		case t.is(Keyword, "type"):
			mod.Declarations = append(mod.Declarations, p.parseTypeDecl())
		case t.is(Keyword, "port"):
			mod.Declarations = append(mod.Declarations, p.parsePortDecl())
		case t.is(Keyword, "infix"):
			// operator fixity declarations carry no expressions
		case t.Kind == LowerName && p.raw(1).Kind == Colon:
			// type annotation
		case t.Kind == LowerName:
			mod.Declarations = append(mod.Declarations, p.parseFunctionDecl())
		default:
			p.fail(expectedError(t, "declaration"))
		}
	})
}

func (p *parser) parseModuleHeader(mod *ast.Module) {
	start := p.expectKeyword("module").Rng.Start
	mod.Name = p.parseModuleName()
	if p.cur().is(Keyword, "where") {
		// effect module settings
		p.advance()
		p.skipBalanced(LBrace, RBrace)
	}
	if p.cur().is(Keyword, "exposing") {
		p.advance()
		mod.Exposing = p.parseExposing()
	}
	mod.HeaderRange = ast.Range{Start: start, End: p.prevEnd()}
}

func (p *parser) parseModuleName() ast.ModuleName {
	t := p.expect(UpperName)
	name := make(ast.ModuleName, 0, len(t.Module)+1)
	name = append(name, t.Module...)
	return append(name, t.Text)
}

func (p *parser) parseImport() *ast.Import {
	start := p.expectKeyword("import").Rng.Start
	imp := &ast.Import{Name: p.parseModuleName()}
	if p.cur().is(Keyword, "as") {
		p.advance()
		imp.Alias = p.parseModuleName()
	}
	if p.cur().is(Keyword, "exposing") {
		p.advance()
		imp.Exposing = p.parseExposing()
	}
	imp.Rng = ast.Range{Start: start, End: p.prevEnd()}
	return imp
}

func (p *parser) parseExposing() *ast.Exposing {
	p.expect(LParen)
	exp := &ast.Exposing{}
	if p.cur().Kind == DotDot {
		p.advance()
		p.expect(RParen)
		exp.All = true
		return exp
	}
	for {
		t := p.cur()
		switch t.Kind {
		case LowerName:
			p.advance()
			exp.Items = append(exp.Items, ast.ExposedItem{Name: t.Text, Kind: ast.ExposedValue})
		case UpperName:
			p.advance()
			item := ast.ExposedItem{Name: t.Text, Kind: ast.ExposedType}
			if p.cur().Kind == LParen && p.raw(1).Kind == DotDot {
				p.advance()
				p.advance()
				p.expect(RParen)
				item.Kind = ast.ExposedTypeWithConstructors
			}
			exp.Items = append(exp.Items, item)
		case LParen:
			p.advance()
			op := p.cur()
			if op.Kind != Operator && op.Kind != Negate {
				p.fail(expectedError(op, "operator"))
			}
			p.advance()
			p.expect(RParen)
			exp.Items = append(exp.Items, ast.ExposedItem{Name: op.Text, Kind: ast.ExposedInfix})
		default:
			p.fail(expectedError(t, "exposed name"))
		}
		if p.cur().Kind != Comma {
			break
		}
		p.advance()
	}
	p.expect(RParen)
	return exp
}

// skipBalanced consumes an open token and everything up to its matching close.
func (p *parser) skipBalanced(open, close Kind) {
	p.expect(open)
	depth := 1
	for depth > 0 {
		t := p.cur()
		switch t.Kind {
		case EOF:
			p.fail(expectedError(t, close.String()))
		case open:
			depth++
		case close:
			depth--
		}
		p.advance()
	}
}

func (p *parser) parseTypeDecl() ast.Declaration {
	start := p.expectKeyword("type").Rng.Start
	if p.cur().is(Keyword, "alias") {
		p.advance()
		name := p.expect(UpperName).Text
		for p.cur().Kind != Equals && p.cur().Kind != EOF {
			p.advance()
		}
		p.expect(Equals)
		isRecord := p.cur().Kind == LBrace
		p.skipRest()
		return &ast.TypeAliasDecl{
			BaseDecl: ast.BaseDecl{Rng: ast.Range{Start: start, End: p.prevEnd()}},
			Name:     name,
			IsRecord: isRecord,
		}
	}

	decl := &ast.TypeDecl{Name: p.expect(UpperName).Text}
	for p.cur().Kind != Equals && p.cur().Kind != EOF {
		p.advance()
	}
	p.expect(Equals)
	decl.Constructors = append(decl.Constructors, p.expect(UpperName).Text)
	depth := 0
	for p.cur().Kind != EOF {
		t := p.advance()
		switch t.Kind {
		case LParen, LBrace, LBracket:
			depth++
		case RParen, RBrace, RBracket:
			depth--
		case Pipe:
			if depth == 0 {
				decl.Constructors = append(decl.Constructors, p.expect(UpperName).Text)
			}
		}
	}
	decl.Rng = ast.Range{Start: start, End: p.prevEnd()}
	return decl
}

func (p *parser) parsePortDecl() ast.Declaration {
	start := p.expectKeyword("port").Rng.Start
	name := p.expect(LowerName).Text
	p.skipRest()
	return &ast.PortDecl{
		BaseDecl: ast.BaseDecl{Rng: ast.Range{Start: start, End: p.prevEnd()}},
		Name:     name,
	}
}

func (p *parser) skipRest() {
	for p.cur().Kind != EOF {
		p.advance()
	}
}

func (p *parser) parseFunctionDecl() ast.Declaration {
	nameTok := p.expect(LowerName)
	var args []ast.Pattern
	for p.cur().Kind != Equals {
		args = append(args, p.parsePatternAtom())
	}
	p.expect(Equals)
	body := p.parseExpr()
	if t := p.cur(); t.Kind != EOF {
		p.fail(expectedError(t, "end of declaration"))
	}
	return &ast.FunctionDecl{
		BaseDecl:  ast.BaseDecl{Rng: ast.Range{Start: nameTok.Rng.Start, End: body.Range().End}},
		Name:      nameTok.Text,
		NameRange: nameTok.Rng,
		Args:      args,
		Body:      body,
	}
}

// -----------------------------------------------------------------------------
// Expressions
// -----------------------------------------------------------------------------

func (p *parser) parseExpr() ast.Expr {
	return p.parseBinary(0)
}

// parseBinary implements precedence climbing over infix operators.
func (p *parser) parseBinary(minPrec int) ast.Expr {
	left := p.parseApplication()
	for {
		t := p.cur()
		if t.Kind != Operator {
			return left
		}
		info := ast.Operator(t.Text)
		if info.Precedence < minPrec {
			return left
		}
		p.advance()
		next := info.Precedence + 1
		if info.Associativity == ast.AssocRight {
			next = info.Precedence
		}
		right := p.parseBinary(next)
		left = &ast.OperatorApplication{
			BaseExpr:      ast.BaseExpr{Rng: ast.Cover(left.Range(), right.Range())},
			Operator:      t.Text,
			OperatorRange: t.Rng,
			Left:          left,
			Right:         right,
		}
	}
}

func (p *parser) parseApplication() ast.Expr {
	t := p.cur()
	switch {
	case t.Kind == Backslash:
		return p.parseLambda()
	case t.is(Keyword, "if"):
		return p.parseIf()
	case t.is(Keyword, "let"):
		return p.parseLet()
	case t.is(Keyword, "case"):
		return p.parseCase()
	}

	head := p.parseAtom()
	var args []ast.Expr
	for startsAtom(p.cur()) {
		args = append(args, p.parseAtom())
	}
	if len(args) == 0 {
		return head
	}
	return &ast.Application{
		BaseExpr: ast.BaseExpr{Rng: ast.Cover(head.Range(), args[len(args)-1].Range())},
		Fn:       head,
		Args:     args,
	}
}

func startsAtom(t Token) bool {
	switch t.Kind {
	case LowerName, UpperName, Integer, Hex, Float, String, Char,
		LParen, LBracket, LBrace, Negate:
		return true
	case DotField:
		return !t.Attached
	}
	return false
}

func (p *parser) parseAtom() ast.Expr {
	expr := p.parseSimpleAtom()
	for {
		t := p.cur()
		if t.Kind != DotField || !t.Attached {
			return expr
		}
		p.advance()
		expr = &ast.RecordAccess{
			BaseExpr:   ast.BaseExpr{Rng: ast.Cover(expr.Range(), t.Rng)},
			Record:     expr,
			Field:      t.Text,
			FieldRange: ast.Range{Start: ast.Position{Row: t.Rng.Start.Row, Column: t.Rng.Start.Column + 1}, End: t.Rng.End},
		}
	}
}

func (p *parser) parseSimpleAtom() ast.Expr {
	t := p.cur()
	base := ast.BaseExpr{Rng: t.Rng}
	switch t.Kind {
	case LowerName, UpperName:
		p.advance()
		return &ast.FunctionOrValue{BaseExpr: base, ModuleName: t.Module, Name: t.Text}
	case Integer:
		p.advance()
		return &ast.IntegerExpr{BaseExpr: base, Value: t.Int}
	case Hex:
		p.advance()
		return &ast.HexExpr{BaseExpr: base, Value: t.Int}
	case Float:
		p.advance()
		return &ast.FloatExpr{BaseExpr: base, Value: t.Float}
	case String:
		p.advance()
		return &ast.StringExpr{BaseExpr: base, Value: t.Str, TripleQuoted: t.TripleQuoted}
	case Char:
		p.advance()
		return &ast.CharExpr{BaseExpr: base, Value: t.Rune}
	case DotField:
		p.advance()
		return &ast.RecordAccessFunction{BaseExpr: base, Field: t.Text}
	case Negate:
		p.advance()
		operand := p.parseAtom()
		return &ast.NegationExpr{
			BaseExpr: ast.BaseExpr{Rng: ast.Cover(t.Rng, operand.Range())},
			Expr:     operand,
		}
	case LParen:
		return p.parseParenthesized()
	case LBracket:
		return p.parseList()
	case LBrace:
		return p.parseRecord()
	}
	p.fail(expectedError(t, "expression"))
	return nil
}

func (p *parser) parseParenthesized() ast.Expr {
	open := p.advance()
	next := p.cur()
	if next.Kind == RParen {
		p.advance()
		return &ast.UnitExpr{BaseExpr: ast.BaseExpr{Rng: ast.Cover(open.Rng, next.Rng)}}
	}
	if (next.Kind == Operator || next.Kind == Negate) && p.raw(1).Kind == RParen {
		p.advance()
		closing := p.advance()
		return &ast.PrefixOperator{
			BaseExpr: ast.BaseExpr{Rng: ast.Cover(open.Rng, closing.Rng)},
			Operator: next.Text,
		}
	}

	first := p.parseExpr()
	if p.cur().Kind == Comma {
		elements := []ast.Expr{first}
		for p.cur().Kind == Comma {
			p.advance()
			elements = append(elements, p.parseExpr())
		}
		closing := p.expect(RParen)
		return &ast.TupleExpr{
			BaseExpr: ast.BaseExpr{Rng: ast.Cover(open.Rng, closing.Rng)},
			Elements: elements,
		}
	}
	closing := p.expect(RParen)
	return &ast.ParenthesizedExpr{
		BaseExpr: ast.BaseExpr{Rng: ast.Cover(open.Rng, closing.Rng)},
		Expr:     first,
	}
}

func (p *parser) parseList() ast.Expr {
	open := p.advance()
	var elements []ast.Expr
	if p.cur().Kind != RBracket {
		elements = append(elements, p.parseExpr())
		for p.cur().Kind == Comma {
			p.advance()
			elements = append(elements, p.parseExpr())
		}
	}
	closing := p.expect(RBracket)
	return &ast.ListExpr{
		BaseExpr: ast.BaseExpr{Rng: ast.Cover(open.Rng, closing.Rng)},
		Elements: elements,
	}
}

func (p *parser) parseRecord() ast.Expr {
	open := p.advance()
	if p.cur().Kind == RBrace {
		closing := p.advance()
		return &ast.RecordExpr{BaseExpr: ast.BaseExpr{Rng: ast.Cover(open.Rng, closing.Rng)}}
	}

	if p.cur().Kind == LowerName && p.raw(1).Kind == Pipe {
		record := p.advance()
		p.advance()
		fields := p.parseRecordFields()
		closing := p.expect(RBrace)
		return &ast.RecordUpdateExpr{
			BaseExpr:    ast.BaseExpr{Rng: ast.Cover(open.Rng, closing.Rng)},
			Record:      record.Text,
			RecordRange: record.Rng,
			Fields:      fields,
		}
	}

	fields := p.parseRecordFields()
	closing := p.expect(RBrace)
	return &ast.RecordExpr{
		BaseExpr: ast.BaseExpr{Rng: ast.Cover(open.Rng, closing.Rng)},
		Fields:   fields,
	}
}

func (p *parser) parseRecordFields() []ast.RecordField {
	var fields []ast.RecordField
	for {
		name := p.expect(LowerName)
		p.expect(Equals)
		fields = append(fields, ast.RecordField{Name: name.Text, NameRange: name.Rng, Value: p.parseExpr()})
		if p.cur().Kind != Comma {
			return fields
		}
		p.advance()
	}
}

func (p *parser) parseLambda() ast.Expr {
	start := p.advance().Rng.Start
	var args []ast.Pattern
	for p.cur().Kind != Arrow {
		args = append(args, p.parsePatternAtom())
	}
	p.expect(Arrow)
	body := p.parseExpr()
	return &ast.LambdaExpr{
		BaseExpr: ast.BaseExpr{Rng: ast.Range{Start: start, End: body.Range().End}},
		Args:     args,
		Body:     body,
	}
}

func (p *parser) parseIf() ast.Expr {
	start := p.advance().Rng.Start
	cond := p.parseExpr()
	p.expectKeyword("then")
	then := p.parseExpr()
	p.expectKeyword("else")
	els := p.parseExpr()
	return &ast.IfExpr{
		BaseExpr: ast.BaseExpr{Rng: ast.Range{Start: start, End: els.Range().End}},
		Cond:     cond,
		Then:     then,
		Else:     els,
	}
}

func (p *parser) parseLet() ast.Expr {
	start := p.advance().Rng.Start
	col := p.cur().Rng.Start.Column
	if p.cur().Kind == EOF {
		p.fail(expectedError(p.cur(), "let binding"))
	}

	var decls []ast.LetDeclaration
	for {
		first := p.raw(0)
		if first.Kind == EOF || first.is(Keyword, "in") || first.Rng.Start.Column != col {
			break
		}
		if col <= p.layout[len(p.layout)-1] {
			break
		}
		p.pushLayout(col)
		p.exempt = p.pos
		if decl := p.parseLetDeclaration(); decl != nil {
			decls = append(decls, decl)
		}
		p.popLayout()
	}

	p.expectKeyword("in")
	body := p.parseExpr()
	return &ast.LetExpr{
		BaseExpr:     ast.BaseExpr{Rng: ast.Range{Start: start, End: body.Range().End}},
		Declarations: decls,
		Body:         body,
	}
}

func (p *parser) parseLetDeclaration() ast.LetDeclaration {
	t := p.cur()
	if t.Kind == LowerName && len(t.Module) == 0 && p.raw(1).Kind == Colon {
		p.skipRest()
		return nil
	}

	if t.Kind == LowerName && len(t.Module) == 0 {
		p.advance()
		var args []ast.Pattern
		for p.cur().Kind != Equals {
			args = append(args, p.parsePatternAtom())
		}
		p.expect(Equals)
		body := p.parseExpr()
		p.expectLayoutEnd()
		return &ast.LetFunction{
			BaseDecl:  ast.BaseDecl{Rng: ast.Range{Start: t.Rng.Start, End: body.Range().End}},
			Name:      t.Text,
			NameRange: t.Rng,
			Args:      args,
			Body:      body,
		}
	}

	pattern := p.parsePattern()
	p.expect(Equals)
	body := p.parseExpr()
	p.expectLayoutEnd()
	return &ast.LetDestructuring{
		BaseDecl: ast.BaseDecl{Rng: ast.Range{Start: t.Rng.Start, End: body.Range().End}},
		Pattern:  pattern,
		Body:     body,
	}
}

// expectLayoutEnd checks that a let binding is followed by the next binding
// or by `in`.
func (p *parser) expectLayoutEnd() {
	t := p.cur()
	if t.Kind == EOF || t.is(Keyword, "in") {
		return
	}
	p.fail(expectedError(t, "end of let binding"))
}

func (p *parser) parseCase() ast.Expr {
	start := p.advance().Rng.Start
	subject := p.parseExpr()
	p.expectKeyword("of")
	col := p.cur().Rng.Start.Column
	if p.cur().Kind == EOF {
		p.fail(expectedError(p.cur(), "case branch"))
	}

	var branches []ast.CaseBranch
	for {
		first := p.raw(0)
		if first.Kind == EOF || first.Rng.Start.Column != col || col <= p.layout[len(p.layout)-1] {
			break
		}
		p.pushLayout(col)
		p.exempt = p.pos
		pattern := p.parsePattern()
		p.expect(Arrow)
		body := p.parseExpr()
		p.popLayout()
		branches = append(branches, ast.CaseBranch{Pattern: pattern, Body: body})
	}

	if len(branches) == 0 {
		p.fail(expectedError(p.cur(), "case branch"))
	}
	end := branches[len(branches)-1].Body.Range().End
	return &ast.CaseExpr{
		BaseExpr: ast.BaseExpr{Rng: ast.Range{Start: start, End: end}},
		Subject:  subject,
		Branches: branches,
	}
}

// -----------------------------------------------------------------------------
// Patterns
// -----------------------------------------------------------------------------

func (p *parser) parsePattern() ast.Pattern {
	pattern := p.parseConsPattern()
	for p.cur().is(Keyword, "as") {
		p.advance()
		name := p.expect(LowerName)
		pattern = &ast.AsPattern{
			BasePattern: ast.BasePattern{Rng: ast.Cover(pattern.Range(), name.Rng)},
			Pattern:     pattern,
			Name:        name.Text,
			NameRange:   name.Rng,
		}
	}
	return pattern
}

func (p *parser) parseConsPattern() ast.Pattern {
	head := p.parsePatternApp()
	if t := p.cur(); t.is(Operator, "::") {
		p.advance()
		tail := p.parseConsPattern()
		return &ast.ConsPattern{
			BasePattern: ast.BasePattern{Rng: ast.Cover(head.Range(), tail.Range())},
			Head:        head,
			Tail:        tail,
		}
	}
	return head
}

func (p *parser) parsePatternApp() ast.Pattern {
	t := p.cur()
	if t.Kind != UpperName {
		return p.parsePatternAtom()
	}
	p.advance()
	named := &ast.NamedPattern{ModuleName: t.Module, Name: t.Text}
	rng := t.Rng
	for startsPatternAtom(p.cur()) {
		arg := p.parsePatternAtom()
		named.Args = append(named.Args, arg)
		rng = ast.Cover(rng, arg.Range())
	}
	named.Rng = rng
	return named
}

func startsPatternAtom(t Token) bool {
	switch t.Kind {
	case Underscore, LowerName, UpperName, Integer, Hex, String, Char,
		LParen, LBracket, LBrace, Negate:
		return true
	}
	return false
}

func (p *parser) parsePatternAtom() ast.Pattern {
	t := p.cur()
	base := ast.BasePattern{Rng: t.Rng}
	switch t.Kind {
	case Underscore:
		p.advance()
		return &ast.AllPattern{BasePattern: base}
	case LowerName:
		if len(t.Module) > 0 {
			break
		}
		p.advance()
		return &ast.VarPattern{BasePattern: base, Name: t.Text}
	case UpperName:
		p.advance()
		return &ast.NamedPattern{BasePattern: base, ModuleName: t.Module, Name: t.Text}
	case Integer, Hex:
		p.advance()
		return &ast.IntPattern{BasePattern: base, Value: t.Int}
	case Negate:
		p.advance()
		num := p.cur()
		if num.Kind != Integer && num.Kind != Hex {
			p.fail(expectedError(num, "number"))
		}
		p.advance()
		return &ast.IntPattern{BasePattern: ast.BasePattern{Rng: ast.Cover(t.Rng, num.Rng)}, Value: -num.Int}
	case String:
		p.advance()
		return &ast.StringPattern{BasePattern: base, Value: t.Str}
	case Char:
		p.advance()
		return &ast.CharPattern{BasePattern: base, Value: t.Rune}
	case LParen:
		return p.parseParenPattern()
	case LBracket:
		p.advance()
		var elements []ast.Pattern
		if p.cur().Kind != RBracket {
			elements = append(elements, p.parsePattern())
			for p.cur().Kind == Comma {
				p.advance()
				elements = append(elements, p.parsePattern())
			}
		}
		closing := p.expect(RBracket)
		return &ast.ListPattern{BasePattern: ast.BasePattern{Rng: ast.Cover(t.Rng, closing.Rng)}, Elements: elements}
	case LBrace:
		p.advance()
		var fields []string
		if p.cur().Kind != RBrace {
			fields = append(fields, p.expect(LowerName).Text)
			for p.cur().Kind == Comma {
				p.advance()
				fields = append(fields, p.expect(LowerName).Text)
			}
		}
		closing := p.expect(RBrace)
		return &ast.RecordPattern{BasePattern: ast.BasePattern{Rng: ast.Cover(t.Rng, closing.Rng)}, Fields: fields}
	}
	p.fail(expectedError(t, "pattern"))
	return nil
}

func (p *parser) parseParenPattern() ast.Pattern {
	open := p.advance()
	if p.cur().Kind == RParen {
		closing := p.advance()
		return &ast.UnitPattern{BasePattern: ast.BasePattern{Rng: ast.Cover(open.Rng, closing.Rng)}}
	}
	first := p.parsePattern()
	if p.cur().Kind == Comma {
		elements := []ast.Pattern{first}
		for p.cur().Kind == Comma {
			p.advance()
			elements = append(elements, p.parsePattern())
		}
		closing := p.expect(RParen)
		return &ast.TuplePattern{BasePattern: ast.BasePattern{Rng: ast.Cover(open.Rng, closing.Rng)}, Elements: elements}
	}
	closing := p.expect(RParen)
	return &ast.ParenthesizedPattern{BasePattern: ast.BasePattern{Rng: ast.Cover(open.Rng, closing.Rng)}, Pattern: first}
}
