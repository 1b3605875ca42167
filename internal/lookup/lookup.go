// Package lookup resolves references of a module to the module that
// defines them.
//
// Resolution happens once per module in Build. The resulting Table answers
// queries by the source range of the reference, so callers never need to
// track scopes themselves.
package lookup

import (
	"github.com/gnolang/simplint/internal/ast"
)

// Resolver maps a reference occurrence to the module defining it.
type Resolver interface {
	// ModuleNameFor returns the defining module of the reference at r. It
	// reports false for locally bound names and names that cannot be
	// resolved.
	ModuleNameFor(r ast.Range) (ast.ModuleName, bool)
}

// Lookup is the name resolution service used by the analysis.
type Lookup interface {
	Resolver
	IsLocal(r ast.Range) bool
	Qualify(name ast.QualifiedName) string
}

// Table is the resolution result of a single module.
type Table struct {
	module ast.ModuleName
	refs   map[ast.Range]ast.ModuleName
	locals map[ast.Range]struct{}

	topLevel    map[string]struct{}
	qualifiers  map[string]ast.ModuleName
	unqualified map[string]ast.ModuleName
	spellings   map[string]string
}

var _ Lookup = (*Table)(nil)

// Build resolves every reference in mod.
func Build(mod *ast.Module) *Table {
	t := &Table{
		module:      mod.Name,
		refs:        make(map[ast.Range]ast.ModuleName),
		locals:      make(map[ast.Range]struct{}),
		topLevel:    make(map[string]struct{}),
		qualifiers:  make(map[string]ast.ModuleName),
		unqualified: make(map[string]ast.ModuleName),
		spellings:   make(map[string]string),
	}

	for _, imp := range defaultImports {
		t.addDefaultImport(imp)
	}
	for _, imp := range mod.Imports {
		t.addImport(imp.Name, imp.Alias, imp.Exposing)
	}
	t.collectTopLevel(mod)

	for _, decl := range mod.Declarations {
		fn, ok := decl.(*ast.FunctionDecl)
		if !ok {
			continue
		}
		sc := newScope(nil)
		for _, arg := range fn.Args {
			t.bindPattern(arg, sc)
		}
		t.resolveExpr(fn.Body, sc)
	}
	return t
}

// Module returns the name of the analysed module.
func (t *Table) Module() ast.ModuleName {
	return t.module
}

// ModuleNameFor implements Resolver.
func (t *Table) ModuleNameFor(r ast.Range) (ast.ModuleName, bool) {
	m, ok := t.refs[r]
	return m, ok
}

// IsLocal reports whether the reference at r names a parameter or a
// let/case/lambda binding.
func (t *Table) IsLocal(r ast.Range) bool {
	_, ok := t.locals[r]
	return ok
}

// Qualify returns the shortest spelling of name that is valid in the module:
// the bare name when it is exposed unqualified, otherwise the import alias or
// the full module path as a qualifier.
func (t *Table) Qualify(name ast.QualifiedName) string {
	if name.Module.Equal(t.module) {
		return name.Name
	}
	if _, shadowed := t.topLevel[name.Name]; !shadowed {
		if m, ok := t.unqualified[name.Name]; ok && m.Equal(name.Module) {
			return name.Name
		}
	}
	if qualifier, ok := t.spellings[name.Module.String()]; ok {
		return qualifier + "." + name.Name
	}
	return name.String()
}

// ResolveRef returns the qualified name a reference resolves to.
func ResolveRef(r Resolver, ref *ast.FunctionOrValue) (ast.QualifiedName, bool) {
	m, ok := r.ModuleNameFor(ref.Range())
	if !ok {
		return ast.QualifiedName{}, false
	}
	return ast.QualifiedName{Module: m, Name: ref.Name}, true
}

func (t *Table) addDefaultImport(imp defaultImport) {
	name := parseModuleName(imp.module)
	var alias ast.ModuleName
	if imp.alias != "" {
		alias = parseModuleName(imp.alias)
	}
	exposing := &ast.Exposing{All: imp.exposeAll}
	for _, v := range imp.values {
		exposing.Items = append(exposing.Items, ast.ExposedItem{Name: v, Kind: ast.ExposedValue})
	}
	for _, typ := range imp.types {
		exposing.Items = append(exposing.Items, ast.ExposedItem{Name: typ, Kind: ast.ExposedType})
	}
	for _, typ := range imp.typesWithConstructors {
		exposing.Items = append(exposing.Items, ast.ExposedItem{Name: typ, Kind: ast.ExposedTypeWithConstructors})
	}
	t.addImport(name, alias, exposing)
}

func (t *Table) addImport(name, alias ast.ModuleName, exposing *ast.Exposing) {
	key := name.String()
	if len(alias) > 0 {
		t.qualifiers[alias.String()] = name
		t.spellings[key] = alias.String()
	} else {
		t.qualifiers[key] = name
		if _, ok := t.spellings[key]; !ok {
			t.spellings[key] = key
		}
	}
	if exposing == nil {
		return
	}

	core, known := catalogue[key]
	if exposing.All {
		if !known {
			return
		}
		for _, v := range core.values {
			t.unqualified[v] = name
		}
		for _, op := range core.operators {
			t.unqualified[op] = name
		}
		for _, ctors := range core.types {
			for _, c := range ctors {
				t.unqualified[c] = name
			}
		}
		return
	}

	for _, item := range exposing.Items {
		switch item.Kind {
		case ast.ExposedValue, ast.ExposedInfix:
			t.unqualified[item.Name] = name
		case ast.ExposedTypeWithConstructors:
			for _, c := range core.types[item.Name] {
				t.unqualified[c] = name
			}
		case ast.ExposedType:
		}
	}
}

func (t *Table) collectTopLevel(mod *ast.Module) {
	for _, decl := range mod.Declarations {
		switch d := decl.(type) {
		case *ast.FunctionDecl:
			t.topLevel[d.Name] = struct{}{}
		case *ast.PortDecl:
			t.topLevel[d.Name] = struct{}{}
		case *ast.TypeDecl:
			for _, c := range d.Constructors {
				t.topLevel[c] = struct{}{}
			}
		case *ast.TypeAliasDecl:
			if d.IsRecord {
				t.topLevel[d.Name] = struct{}{}
			}
		}
	}
}

func parseModuleName(s string) ast.ModuleName {
	var out ast.ModuleName
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}
