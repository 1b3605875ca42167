package types

import (
	"fmt"
	"strings"

	"github.com/gnolang/simplint/internal/ast"
	"github.com/gnolang/simplint/internal/fix"
)

// Issue represents a simplification found in a source file.
type Issue struct {
	Rule     string
	Filename string
	Message  string
	Details  []string
	Severity Severity
	Start    ast.Position
	End      ast.Position
	// Fixes are the edits that perform the simplification. They address the
	// file content the issue was reported on and are applied together.
	Fixes []fix.Edit
}

// Fixable reports whether the issue carries edits.
func (i Issue) Fixable() bool {
	return len(i.Fixes) > 0
}

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityOff
)

var severityNames = map[Severity]string{
	SeverityError:   "error",
	SeverityWarning: "warning",
	SeverityInfo:    "info",
	SeverityOff:     "off",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return strings.ToUpper(name)
	}
	return "UNKNOWN"
}

// ParseSeverity parses a configuration severity name, case-insensitively.
func ParseSeverity(name string) (Severity, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range severityNames {
		if n == name {
			return s, nil
		}
	}
	return SeverityOff, fmt.Errorf("unknown severity %q", name)
}

func (s Severity) MarshalText() ([]byte, error) {
	name, ok := severityNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown severity %d", int(s))
	}
	return []byte(name), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ConfigRule is the configuration of a single rule group.
type ConfigRule struct {
	Severity Severity `yaml:"severity" toml:"severity" json:"severity"`
}
