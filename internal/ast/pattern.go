package ast

// AllPattern is the wildcard `_`.
type AllPattern struct {
	BasePattern
}

// VarPattern binds a name.
type VarPattern struct {
	BasePattern
	Name string
}

// UnitPattern is `()`.
type UnitPattern struct {
	BasePattern
}

// IntPattern matches an integer literal.
type IntPattern struct {
	BasePattern
	Value int64
}

// StringPattern matches a string literal.
type StringPattern struct {
	BasePattern
	Value string
}

// CharPattern matches a character literal.
type CharPattern struct {
	BasePattern
	Value rune
}

// TuplePattern is `( a, b )`.
type TuplePattern struct {
	BasePattern
	Elements []Pattern
}

// ListPattern is `[ a, b ]`.
type ListPattern struct {
	BasePattern
	Elements []Pattern
}

// ConsPattern is `head :: tail`.
type ConsPattern struct {
	BasePattern
	Head Pattern
	Tail Pattern
}

// NamedPattern is a constructor pattern, e.g. `Just x` or `Maybe.Nothing`.
type NamedPattern struct {
	BasePattern
	ModuleName ModuleName
	Name       string
	Args       []Pattern
}

// AsPattern is `pattern as name`.
type AsPattern struct {
	BasePattern
	Pattern   Pattern
	Name      string
	NameRange Range
}

// RecordPattern is `{ a, b }`.
type RecordPattern struct {
	BasePattern
	Fields []string
}

// ParenthesizedPattern is `( p )`.
type ParenthesizedPattern struct {
	BasePattern
	Pattern Pattern
}

// RemoveParensPattern strips any number of enclosing parentheses.
func RemoveParensPattern(p Pattern) Pattern {
	for {
		paren, ok := p.(*ParenthesizedPattern)
		if !ok {
			return p
		}
		p = paren.Pattern
	}
}

// BoundNames returns every variable introduced by the pattern, in source order.
func BoundNames(p Pattern) []string {
	var names []string
	var walk func(Pattern)
	walk = func(p Pattern) {
		switch p := p.(type) {
		case *VarPattern:
			names = append(names, p.Name)
		case *TuplePattern:
			for _, el := range p.Elements {
				walk(el)
			}
		case *ListPattern:
			for _, el := range p.Elements {
				walk(el)
			}
		case *ConsPattern:
			walk(p.Head)
			walk(p.Tail)
		case *NamedPattern:
			for _, arg := range p.Args {
				walk(arg)
			}
		case *AsPattern:
			walk(p.Pattern)
			names = append(names, p.Name)
		case *RecordPattern:
			names = append(names, p.Fields...)
		case *ParenthesizedPattern:
			walk(p.Pattern)
		case *AllPattern, *UnitPattern, *IntPattern, *StringPattern, *CharPattern:
		}
	}
	walk(p)
	return names
}
