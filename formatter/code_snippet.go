package formatter

import (
	"strings"

	"github.com/gnolang/simplint/internal"
	"github.com/gnolang/simplint/internal/fix"
	tt "github.com/gnolang/simplint/internal/types"
)

// fixedSnippet returns the first row and the lines touched by the fixes of
// issue, as they read once the fixes are applied. It returns no lines when
// the issue has no fix or the fix does not apply to snippet.
func fixedSnippet(issue tt.Issue, snippet *internal.SourceCode) (int, []string) {
	if !issue.Fixable() {
		return 0, nil
	}
	first, last := issue.Fixes[0].Range.Start.Row, issue.Fixes[0].Range.End.Row
	for _, e := range issue.Fixes[1:] {
		first = min(first, e.Range.Start.Row)
		last = max(last, e.Range.End.Row)
	}

	fixed, err := fix.Apply([]byte(strings.Join(snippet.Lines, "\n")), issue.Fixes)
	if err != nil {
		return 0, nil
	}
	after := strings.Split(string(fixed), "\n")

	// rows after the last edited one are unchanged
	end := len(after) - (len(snippet.Lines) - last)
	if end < first {
		return first, []string{""}
	}
	return first, after[first-1 : end]
}
