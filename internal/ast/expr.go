package ast

// -----------------------------------------------------------------------------
// Literals
// -----------------------------------------------------------------------------

// UnitExpr is `()`.
type UnitExpr struct {
	BaseExpr
}

// IntegerExpr is a decimal integer literal.
type IntegerExpr struct {
	BaseExpr
	Value int64
}

// HexExpr is a hexadecimal integer literal, e.g. 0xFF.
type HexExpr struct {
	BaseExpr
	Value int64
}

// FloatExpr is a floating point literal.
type FloatExpr struct {
	BaseExpr
	Value float64
}

// StringExpr is a string literal. Value holds the unescaped text.
type StringExpr struct {
	BaseExpr
	Value        string
	TripleQuoted bool
}

// CharExpr is a character literal.
type CharExpr struct {
	BaseExpr
	Value rune
}

// -----------------------------------------------------------------------------
// References
// -----------------------------------------------------------------------------

// FunctionOrValue is a reference as written in the source, e.g. `map`,
// `List.map` or `Just`. ModuleName is the qualifier as written (an alias
// or a module path), not the resolved defining module.
type FunctionOrValue struct {
	BaseExpr
	ModuleName ModuleName
	Name       string
}

// PrefixOperator is an operator used as a function, e.g. `(+)`.
type PrefixOperator struct {
	BaseExpr
	Operator string
}

// RecordAccessFunction is a field accessor function, e.g. `.name`.
type RecordAccessFunction struct {
	BaseExpr
	Field string
}

// -----------------------------------------------------------------------------
// Operations
// -----------------------------------------------------------------------------

// Application is a prefix function call `f a b`.
type Application struct {
	BaseExpr
	Fn   Expr
	Args []Expr
}

// OperatorApplication is a binary operator use `a op b`.
type OperatorApplication struct {
	BaseExpr
	Operator      string
	OperatorRange Range
	Left          Expr
	Right         Expr
}

// NegationExpr is a unary minus applied without space, e.g. `-x`.
type NegationExpr struct {
	BaseExpr
	Expr Expr
}

// -----------------------------------------------------------------------------
// Structures
// -----------------------------------------------------------------------------

// ParenthesizedExpr is `( e )`.
type ParenthesizedExpr struct {
	BaseExpr
	Expr Expr
}

// TupleExpr is `( a, b )` or `( a, b, c )`.
type TupleExpr struct {
	BaseExpr
	Elements []Expr
}

// ListExpr is `[ a, b ]`.
type ListExpr struct {
	BaseExpr
	Elements []Expr
}

// RecordField is one `name = value` entry of a record literal or update.
type RecordField struct {
	Name      string
	NameRange Range
	Value     Expr
}

// RecordExpr is `{ a = 1, b = 2 }`.
type RecordExpr struct {
	BaseExpr
	Fields []RecordField
}

// RecordUpdateExpr is `{ r | a = 1 }`.
type RecordUpdateExpr struct {
	BaseExpr
	Record      string
	RecordRange Range
	Fields      []RecordField
}

// RecordAccess is `e.field`.
type RecordAccess struct {
	BaseExpr
	Record     Expr
	Field      string
	FieldRange Range
}

// -----------------------------------------------------------------------------
// Binding and control forms
// -----------------------------------------------------------------------------

// LambdaExpr is `\a b -> body`.
type LambdaExpr struct {
	BaseExpr
	Args []Pattern
	Body Expr
}

// IfExpr is `if c then a else b`.
type IfExpr struct {
	BaseExpr
	Cond Expr
	Then Expr
	Else Expr
}

// LetDeclaration is a binding inside a let block.
type LetDeclaration interface {
	Node
	letDeclNode()
}

// LetFunction is `name args = body` inside a let block.
type LetFunction struct {
	BaseDecl
	Name      string
	NameRange Range
	Args      []Pattern
	Body      Expr
}

func (*LetFunction) letDeclNode() {}

// LetDestructuring is `pattern = body` inside a let block.
type LetDestructuring struct {
	BaseDecl
	Pattern Pattern
	Body    Expr
}

func (*LetDestructuring) letDeclNode() {}

// LetExpr is `let decls in body`.
type LetExpr struct {
	BaseExpr
	Declarations []LetDeclaration
	Body         Expr
}

// CaseBranch is one `pattern -> body` arm.
type CaseBranch struct {
	Pattern Pattern
	Body    Expr
}

// CaseExpr is `case subject of branches`.
type CaseExpr struct {
	BaseExpr
	Subject  Expr
	Branches []CaseBranch
}
