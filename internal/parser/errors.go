package parser

import (
	"fmt"

	"github.com/gnolang/simplint/internal/ast"
)

// ParseError describes a syntax error at a source position.
type ParseError struct {
	Pos     ast.Position
	Message string
	Got     string
	Want    string
}

func (e *ParseError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

// ErrorList is a list of parse errors.
type ErrorList []*ParseError

func (el ErrorList) Error() string {
	switch len(el) {
	case 0:
		return "no errors"
	case 1:
		return el[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", el[0].Error(), len(el)-1)
	}
}

// Add appends an error to the list.
func (el *ErrorList) Add(pos ast.Position, msg string) {
	*el = append(*el, &ParseError{Pos: pos, Message: msg})
}

// Err returns the list as an error, or nil when it is empty.
func (el ErrorList) Err() error {
	if len(el) == 0 {
		return nil
	}
	return el
}

func expectedError(tok Token, want string) *ParseError {
	got := tok.Kind.String()
	if tok.Text != "" {
		got = fmt.Sprintf("%q", tok.Text)
	}
	return &ParseError{
		Pos:     tok.Rng.Start,
		Message: fmt.Sprintf("expected %s, got %s", want, got),
		Want:    want,
		Got:     got,
	}
}
