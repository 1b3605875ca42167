// Package nolint finds `simplint:ignore` directives in source comments.
//
// A directive written on its own line applies to that line and the next
// one, or to the whole declaration that starts on the next line. A
// directive written after code applies to its own line. A directive placed
// before the module header applies to the whole file. The directive may
// list rule groups, separated by commas or spaces; without a list it
// applies to every rule.
package nolint

import (
	"strings"

	"github.com/coregx/coregex"

	"github.com/gnolang/simplint/internal/ast"
	"github.com/gnolang/simplint/internal/parser"
)

var (
	directivePattern = mustCompile(`^\s*simplint:ignore`)
	ruleSeparator    = mustCompile(`[\s,]+`)
)

func mustCompile(pattern string) *coregex.Regexp {
	re, err := coregex.Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Manager manages ignore scopes and checks if a position is ignored.
type Manager struct {
	scopes []scope
}

// scope is a range of rows where a directive applies.
type scope struct {
	rules    map[string]struct{}
	startRow int
	endRow   int
}

// Parse scans the comments of src and builds the ignore scopes. mod is the
// parsed module of src; it may be nil when only line scopes are needed.
func Parse(src []byte, mod *ast.Module) *Manager {
	m := &Manager{}
	lines := strings.Split(string(src), "\n")
	declStarts := indexDeclarationsByRow(mod)

	for _, c := range parser.ScanComments(src) {
		rules, ok := parseDirective(c)
		if !ok {
			continue
		}
		m.scopes = append(m.scopes, scopeOf(c, rules, lines, mod, declStarts))
	}
	return m
}

func scopeOf(c parser.Comment, rules map[string]struct{}, lines []string, mod *ast.Module, declStarts map[int]ast.Declaration) scope {
	row := c.Rng.Start.Row
	s := scope{rules: rules, startRow: row, endRow: row}

	if mod != nil && mod.HeaderRange.Start.IsValid() && row < mod.HeaderRange.Start.Row {
		s.startRow, s.endRow = 1, len(lines)
		return s
	}
	if isInline(c, lines) {
		return s
	}
	next := c.Rng.End.Row + 1
	if next <= len(lines) && isAnnotation(lines[next-1]) {
		next++
	}
	if decl, ok := declStarts[next]; ok {
		s.endRow = decl.Range().End.Row
		return s
	}
	s.endRow = c.Rng.End.Row + 1
	return s
}

// isAnnotation reports whether line starts a type annotation such as
// `name : Int -> Int`.
func isAnnotation(line string) bool {
	name, rest, ok := strings.Cut(line, ":")
	if !ok || strings.HasPrefix(rest, ":") || name == "" || name[0] < 'a' || name[0] > 'z' {
		return false
	}
	return strings.Count(strings.TrimSpace(name), " ") == 0
}

// parseDirective extracts the rule list of a directive comment.
func parseDirective(c parser.Comment) (map[string]struct{}, bool) {
	body := c.Text
	if c.IsBlock() {
		body = strings.TrimSuffix(strings.TrimPrefix(body, "{-"), "-}")
	} else {
		body = strings.TrimPrefix(body, "--")
	}

	loc := directivePattern.FindStringIndex(body)
	if loc == nil {
		return nil, false
	}
	rest := body[loc[1]:]
	switch {
	case rest == "":
	case rest[0] == ':':
		rest = rest[1:]
		if strings.TrimSpace(rest) == "" {
			// `simplint:ignore:` without rules
			return nil, false
		}
	case rest[0] == ' ' || rest[0] == '\t':
	default:
		return nil, false
	}
	return parseIgnoreRuleNames(rest), true
}

// parseIgnoreRuleNames parses the rule list of a directive.
func parseIgnoreRuleNames(text string) map[string]struct{} {
	rules := make(map[string]struct{})
	for _, rule := range ruleSeparator.Split(text, -1) {
		if rule != "" {
			rules[rule] = struct{}{}
		}
	}
	return rules
}

// isInline reports whether code precedes the comment on its line.
func isInline(c parser.Comment, lines []string) bool {
	row := c.Rng.Start.Row
	if row > len(lines) {
		return false
	}
	line := lines[row-1]
	col := min(c.Rng.Start.Column-1, len(line))
	return strings.TrimSpace(line[:col]) != ""
}

func indexDeclarationsByRow(mod *ast.Module) map[int]ast.Declaration {
	decls := make(map[int]ast.Declaration)
	if mod == nil {
		return decls
	}
	for _, d := range mod.Declarations {
		row := d.Range().Start.Row
		if _, exists := decls[row]; !exists {
			decls[row] = d
		}
	}
	return decls
}

// IsNolint checks if the rule is ignored at the given position.
func (m *Manager) IsNolint(pos ast.Position, rule string) bool {
	for _, s := range m.scopes {
		if pos.Row < s.startRow || pos.Row > s.endRow {
			continue
		}
		if len(s.rules) == 0 {
			return true
		}
		if _, exists := s.rules[rule]; exists {
			return true
		}
	}
	return false
}

// Len returns the number of directives found.
func (m *Manager) Len() int {
	return len(m.scopes)
}
