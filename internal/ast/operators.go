package ast

// Associativity of a binary operator.
type Associativity int

const (
	AssocLeft Associativity = iota
	AssocRight
	AssocNone
)

// OperatorInfo describes how an infix operator binds.
type OperatorInfo struct {
	Precedence    int
	Associativity Associativity
}

var operatorTable = map[string]OperatorInfo{
	"<|":  {0, AssocRight},
	"|>":  {0, AssocLeft},
	"||":  {2, AssocRight},
	"&&":  {3, AssocRight},
	"==":  {4, AssocNone},
	"/=":  {4, AssocNone},
	"<":   {4, AssocNone},
	">":   {4, AssocNone},
	"<=":  {4, AssocNone},
	">=":  {4, AssocNone},
	"++":  {5, AssocRight},
	"::":  {5, AssocRight},
	"|=":  {5, AssocLeft},
	"|.":  {6, AssocLeft},
	"+":   {6, AssocLeft},
	"-":   {6, AssocLeft},
	"*":   {7, AssocLeft},
	"/":   {7, AssocLeft},
	"//":  {7, AssocLeft},
	"</>": {7, AssocRight},
	"<?>": {8, AssocLeft},
	"^":   {8, AssocRight},
	"<<":  {9, AssocLeft},
	">>":  {9, AssocRight},
}

// Operator returns the binding information of op. Unknown operators bind
// like function composition.
func Operator(op string) OperatorInfo {
	if info, ok := operatorTable[op]; ok {
		return info
	}
	return OperatorInfo{Precedence: 9, Associativity: AssocLeft}
}
