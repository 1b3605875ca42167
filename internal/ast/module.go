package ast

// ExposedKind classifies an entry of an exposing list.
type ExposedKind int

const (
	ExposedValue ExposedKind = iota
	ExposedType
	ExposedTypeWithConstructors
	ExposedInfix
)

// ExposedItem is one entry of an exposing list.
type ExposedItem struct {
	Name string
	Kind ExposedKind
}

// Exposing is an exposing list. All is set for `exposing (..)`.
type Exposing struct {
	All   bool
	Items []ExposedItem
}

// Exposes reports whether a value, operator or type named name is listed.
func (e *Exposing) Exposes(name string) bool {
	if e == nil {
		return false
	}
	for _, item := range e.Items {
		if item.Name == name {
			return true
		}
	}
	return false
}

// Import is `import A.B as C exposing (..)`.
type Import struct {
	Rng      Range
	Name     ModuleName
	Alias    ModuleName
	Exposing *Exposing
}

// Module is a parsed source file.
type Module struct {
	Name         ModuleName
	HeaderRange  Range
	Exposing     *Exposing
	Imports      []*Import
	Declarations []Declaration
}

// FunctionDecl is a top-level `name args = body`.
type FunctionDecl struct {
	BaseDecl
	Name      string
	NameRange Range
	Args      []Pattern
	Body      Expr
}

// TypeDecl is a custom type; only the constructor names are kept.
type TypeDecl struct {
	BaseDecl
	Name         string
	Constructors []string
}

// TypeAliasDecl is a type alias. Record aliases also define a constructor
// function with the alias name.
type TypeAliasDecl struct {
	BaseDecl
	Name     string
	IsRecord bool
}

// PortDecl is a port declaration.
type PortDecl struct {
	BaseDecl
	Name string
}
