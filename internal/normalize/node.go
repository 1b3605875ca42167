package normalize

import "strings"

// Kind is the kind of a canonical node.
type Kind int

const (
	// KindUnknown stands for anything the normalizer cannot pin down, such as
	// an unresolved reference. Unknown nodes are never equal to anything.
	KindUnknown Kind = iota
	KindInt
	KindFloat
	KindString
	KindChar
	KindUnit
	KindRef
	KindLocal
	KindCall
	KindTuple
	KindList
	KindRecord
	KindField
	KindUpdate
	KindAccess
	KindAccessor
	KindLambda
	KindIf
	KindLet
	KindLetFunction
	KindLetDestructuring
	KindCase
	KindBranch
	KindPattern
)

// Node is an expression in canonical form: no parentheses, no ranges,
// references replaced by what they resolve to and pipes turned into calls.
type Node struct {
	Kind     Kind
	Value    string
	Children []*Node
}

func leaf(kind Kind, value string) *Node {
	return &Node{Kind: kind, Value: value}
}

func unknown() *Node {
	return &Node{Kind: KindUnknown}
}

// IsLiteral reports whether the node is a number, string or char literal.
func (n *Node) IsLiteral() bool {
	switch n.Kind {
	case KindInt, KindFloat, KindString, KindChar:
		return true
	}
	return false
}

// Equal reports whether two canonical nodes are structurally identical.
// A tree containing an unknown node is not equal to any tree.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return false
	}
	if n.Kind == KindUnknown || o.Kind == KindUnknown {
		return false
	}
	if n.Kind != o.Kind || n.Value != o.Value || len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

func (n *Node) String() string {
	switch n.Kind {
	case KindUnknown:
		return "?"
	case KindInt, KindFloat, KindRef, KindLocal, KindPattern:
		return n.Value
	case KindString:
		return `"` + n.Value + `"`
	case KindChar:
		return "'" + n.Value + "'"
	case KindUnit:
		return "()"
	case KindCall:
		return "(" + n.join(" ") + ")"
	case KindTuple:
		return "(" + n.join(", ") + ")"
	case KindList:
		return "[" + n.join(", ") + "]"
	case KindRecord:
		return "{" + n.join(", ") + "}"
	case KindField:
		return n.Value + " = " + n.Children[0].String()
	case KindUpdate:
		return "{" + n.Children[0].String() + " | " + joinNodes(n.Children[1:], ", ") + "}"
	case KindAccess:
		return n.Children[0].String() + "." + n.Value
	case KindAccessor:
		return "." + n.Value
	case KindLambda:
		last := len(n.Children) - 1
		return `\` + joinNodes(n.Children[:last], " ") + " -> " + n.Children[last].String()
	case KindIf:
		return "if " + n.Children[0].String() + " then " + n.Children[1].String() + " else " + n.Children[2].String()
	case KindLet:
		last := len(n.Children) - 1
		return "let " + joinNodes(n.Children[:last], "; ") + " in " + n.Children[last].String()
	case KindLetFunction:
		last := len(n.Children) - 1
		head := n.Value
		if last > 0 {
			head += " " + joinNodes(n.Children[:last], " ")
		}
		return head + " = " + n.Children[last].String()
	case KindLetDestructuring:
		return n.Children[0].String() + " = " + n.Children[1].String()
	case KindCase:
		return "case " + n.Children[0].String() + " of " + joinNodes(n.Children[1:], "; ")
	case KindBranch:
		return n.Children[0].String() + " -> " + n.Children[1].String()
	}
	return "?"
}

func (n *Node) join(sep string) string {
	return joinNodes(n.Children, sep)
}

func joinNodes(nodes []*Node, sep string) string {
	parts := make([]string, 0, len(nodes))
	for _, c := range nodes {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, sep)
}
