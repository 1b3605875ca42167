package fixer

import (
	"fmt"
	"strings"

	"github.com/gnolang/simplint/internal/ast"
	"github.com/gnolang/simplint/internal/parser"
)

// StructureChecker verifies that a fixed source still declares what the
// original declared. Simplifications only rewrite expressions, so any
// change to the module header, the imports or the top-level names means a
// fix went wrong.
type StructureChecker struct {
	DetailedReport bool
	reportBuffer   strings.Builder
}

func NewStructureChecker(detailed bool) *StructureChecker {
	return &StructureChecker{DetailedReport: detailed}
}

// CheckEquivalence parses both sources and compares their declarations.
// The returned report explains the differences found.
func (c *StructureChecker) CheckEquivalence(original, modified []byte) (bool, string, error) {
	c.reportBuffer.Reset()

	orig, err := parser.ParseModule(original)
	if err != nil {
		return false, "", fmt.Errorf("failed to parse original file: %w", err)
	}
	fixed, err := parser.ParseModule(modified)
	if err != nil {
		return false, "", fmt.Errorf("failed to parse modified file: %w", err)
	}

	equivalent := true
	if !orig.Name.Equal(fixed.Name) {
		c.logf("Module name mismatch: original=%s, modified=%s", orig.Name, fixed.Name)
		equivalent = false
	}
	if len(orig.Imports) != len(fixed.Imports) {
		c.logf("Import count mismatch: original=%d, modified=%d", len(orig.Imports), len(fixed.Imports))
		equivalent = false
	}

	origDecls := extractDecls(orig)
	fixedDecls := extractDecls(fixed)
	if len(origDecls) != len(fixedDecls) {
		c.logf("Declaration count mismatch: original=%d, modified=%d", len(origDecls), len(fixedDecls))
		return false, c.reportBuffer.String(), nil
	}
	for name, origDecl := range origDecls {
		fixedDecl, exists := fixedDecls[name]
		switch {
		case !exists:
			c.logf("Declaration '%s' exists in original but not in modified", name)
			equivalent = false
		case len(origDecl.Args) != len(fixedDecl.Args):
			c.logf("Declaration '%s' argument count changed: original=%d, modified=%d", name, len(origDecl.Args), len(fixedDecl.Args))
			equivalent = false
		case c.DetailedReport:
			c.logf("Declaration '%s' is unchanged", name)
		}
	}

	return equivalent, c.reportBuffer.String(), nil
}

func (c *StructureChecker) logf(format string, args ...any) {
	fmt.Fprintf(&c.reportBuffer, format, args...)
	c.reportBuffer.WriteByte('\n')
}

func extractDecls(mod *ast.Module) map[string]*ast.FunctionDecl {
	decls := make(map[string]*ast.FunctionDecl)
	for _, d := range mod.Declarations {
		if fn, ok := d.(*ast.FunctionDecl); ok {
			decls[fn.Name] = fn
		}
	}
	return decls
}
