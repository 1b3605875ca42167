// Package ast defines the syntax tree of the analysed functional language.
//
// The tree is a closed set of node kinds. Every kind embeds a base struct
// holding its source Range and implements a marker method, so code outside
// this package can switch over the kinds but cannot add new ones.
//
// Node hierarchy:
//
//	Node (interface)
//	├── Expr (interface)
//	│   ├── UnitExpr, IntegerExpr, HexExpr, FloatExpr, StringExpr, CharExpr - literals
//	│   ├── FunctionOrValue, PrefixOperator, RecordAccessFunction - references
//	│   ├── Application, OperatorApplication, NegationExpr - operations
//	│   ├── ParenthesizedExpr, TupleExpr, ListExpr, RecordExpr, RecordUpdateExpr, RecordAccess
//	│   └── LambdaExpr, IfExpr, LetExpr, CaseExpr - binding and control forms
//	├── Pattern (interface)
//	└── Declaration (interface) - FunctionDecl, TypeDecl, TypeAliasDecl, PortDecl
package ast

import (
	"fmt"
	"strings"
)

// Position is a 1-indexed (row, column) location in the source.
// Columns count bytes from the start of the line.
type Position struct {
	Row    int
	Column int
}

// Compare orders positions lexicographically.
func (p Position) Compare(o Position) int {
	switch {
	case p.Row < o.Row:
		return -1
	case p.Row > o.Row:
		return 1
	case p.Column < o.Column:
		return -1
	case p.Column > o.Column:
		return 1
	default:
		return 0
	}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Column)
}

// IsValid reports whether the position points into a source file.
func (p Position) IsValid() bool {
	return p.Row > 0 && p.Column > 0
}

// Range is a half-open source span [Start, End).
type Range struct {
	Start Position
	End   Position
}

// EmptyRange is the zero range, used by synthetic nodes.
var EmptyRange = Range{}

func (r Range) String() string {
	return r.Start.String() + "-" + r.End.String()
}

// IsEmpty reports whether the range covers no characters.
func (r Range) IsEmpty() bool {
	return r.Start.Compare(r.End) == 0
}

// Contains reports whether o lies entirely within r.
func (r Range) Contains(o Range) bool {
	return r.Start.Compare(o.Start) <= 0 && o.End.Compare(r.End) <= 0
}

// Overlaps reports whether r and o share at least one character.
func (r Range) Overlaps(o Range) bool {
	return r.Start.Compare(o.End) < 0 && o.Start.Compare(r.End) < 0
}

// Cover returns the smallest range containing both r and o.
func Cover(r, o Range) Range {
	out := r
	if o.Start.Compare(out.Start) < 0 {
		out.Start = o.Start
	}
	if o.End.Compare(out.End) > 0 {
		out.End = o.End
	}
	return out
}

// ModuleName is the dotted path of a module, e.g. ["List", "Extra"].
type ModuleName []string

func (m ModuleName) String() string {
	return strings.Join(m, ".")
}

// Equal reports whether both paths have identical segments.
func (m ModuleName) Equal(o ModuleName) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if m[i] != o[i] {
			return false
		}
	}
	return true
}

// QualifiedName identifies a value by its defining module and local name.
type QualifiedName struct {
	Module ModuleName
	Name   string
}

func (q QualifiedName) String() string {
	if len(q.Module) == 0 {
		return q.Name
	}
	return q.Module.String() + "." + q.Name
}

// Key returns a comparable form usable as a map key.
func (q QualifiedName) Key() string {
	return q.String()
}

// Node is implemented by every tree node.
type Node interface {
	// Range returns the source span covered by the node.
	Range() Range
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Pattern is the interface for all pattern nodes.
type Pattern interface {
	Node
	patternNode()
}

// Declaration is the interface for top-level declarations.
type Declaration interface {
	Node
	declNode()
}

// BaseExpr provides the range of an expression node.
type BaseExpr struct {
	Rng Range
}

func (b *BaseExpr) Range() Range { return b.Rng }
func (b *BaseExpr) exprNode()    {}

// BasePattern provides the range of a pattern node.
type BasePattern struct {
	Rng Range
}

func (b *BasePattern) Range() Range { return b.Rng }
func (b *BasePattern) patternNode() {}

// BaseDecl provides the range of a declaration node.
type BaseDecl struct {
	Rng Range
}

func (b *BaseDecl) Range() Range { return b.Rng }
func (b *BaseDecl) declNode()    {}
