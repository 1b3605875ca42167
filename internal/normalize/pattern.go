package normalize

import (
	"strconv"
	"strings"

	"github.com/gnolang/simplint/internal/ast"
)

func (n *Normalizer) patterns(ps []ast.Pattern) []*Node {
	out := make([]*Node, 0, len(ps))
	for _, p := range ps {
		out = append(out, n.pattern(p))
	}
	return out
}

// pattern renders p with resolved constructor names. A pattern mentioning a
// constructor that cannot be resolved is unknown.
func (n *Normalizer) pattern(p ast.Pattern) *Node {
	s, ok := n.patternString(p)
	if !ok {
		return unknown()
	}
	return leaf(KindPattern, s)
}

func (n *Normalizer) patternString(p ast.Pattern) (string, bool) {
	switch p := p.(type) {
	case *ast.AllPattern:
		return "_", true
	case *ast.VarPattern:
		return p.Name, true
	case *ast.UnitPattern:
		return "()", true
	case *ast.IntPattern:
		return strconv.FormatInt(p.Value, 10), true
	case *ast.StringPattern:
		return strconv.Quote(p.Value), true
	case *ast.CharPattern:
		return strconv.QuoteRune(p.Value), true
	case *ast.TuplePattern:
		inner, ok := n.patternList(p.Elements)
		return "(" + inner + ")", ok
	case *ast.ListPattern:
		inner, ok := n.patternList(p.Elements)
		return "[" + inner + "]", ok
	case *ast.ConsPattern:
		head, ok1 := n.patternString(p.Head)
		tail, ok2 := n.patternString(p.Tail)
		return "(" + head + " :: " + tail + ")", ok1 && ok2
	case *ast.NamedPattern:
		m, ok := n.lookup.ModuleNameFor(p.Range())
		if !ok {
			return "", false
		}
		parts := []string{m.String() + "." + p.Name}
		for _, arg := range p.Args {
			s, ok := n.patternString(arg)
			if !ok {
				return "", false
			}
			parts = append(parts, "("+s+")")
		}
		return strings.Join(parts, " "), true
	case *ast.AsPattern:
		inner, ok := n.patternString(p.Pattern)
		return "(" + inner + " as " + p.Name + ")", ok
	case *ast.RecordPattern:
		return "{" + strings.Join(p.Fields, ", ") + "}", true
	case *ast.ParenthesizedPattern:
		return n.patternString(p.Pattern)
	}
	return "", false
}

func (n *Normalizer) patternList(ps []ast.Pattern) (string, bool) {
	parts := make([]string, 0, len(ps))
	for _, p := range ps {
		s, ok := n.patternString(p)
		if !ok {
			return "", false
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", "), true
}
