package simplify

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"fortio.org/safecast"

	"github.com/gnolang/simplint/internal/match"
)

// maxEvaluatedRepeat bounds the length of an evaluated String.repeat call.
const maxEvaluatedRepeat = 40

func stringIsEmptyCheck(c CheckInfo) []Diagnostic {
	if len(c.Args) != 1 {
		return nil
	}
	s, ok := match.GetStringLiteral(c.FirstArg())
	if !ok {
		return nil
	}
	return []Diagnostic{boolResult(c, s == "")}
}

func stringLengthCheck(c CheckInfo) []Diagnostic {
	if len(c.Args) != 1 {
		return nil
	}
	s, ok := match.GetStringLiteral(c.FirstArg())
	if !ok {
		return nil
	}
	n := utf16Length(s)
	return []Diagnostic{{
		Message: fmt.Sprintf("The length of the string is %d", n),
		Details: []string{"The length of the string can be determined by looking at the code."},
		Range:   c.FnRange,
		Fixes:   replaceByText(c.ParentRange, strconv.Itoa(n)),
	}}
}

// utf16Length counts UTF-16 code units, the unit String.length uses.
func utf16Length(s string) int {
	n := 0
	for _, r := range s {
		n += max(utf16.RuneLen(r), 1)
	}
	return n
}

func stringRepeatCheck(c CheckInfo) []Diagnostic {
	n, ok := match.GetIntValue(c.FirstArg())
	switch {
	case !ok:
		return nil
	case n < 1:
		return constantResult(c, "String.repeat will result in an empty string", `""`)
	case n == 1:
		return unchangedCollection(c, "String.repeat 1 won't do anything", "string")
	}

	if len(c.Args) != 2 {
		return nil
	}
	s, ok := match.GetStringLiteral(c.Args[1])
	if !ok {
		return nil
	}
	count, err := safecast.Conv[int](n)
	if err != nil || (len(s) > 0 && count > maxEvaluatedRepeat/len(s)) {
		return nil
	}
	result := quoteString(strings.Repeat(s, count))
	return []Diagnostic{{
		Message: "The call to String.repeat will result in " + result,
		Details: []string{"Both arguments are known, so you can replace this call by the resulting string."},
		Range:   c.FnRange,
		Fixes:   replaceByText(c.ParentRange, result),
	}}
}

func stringWordsCheck(c CheckInfo) []Diagnostic {
	return stringSplitCheck(c, words)
}

func stringLinesCheck(c CheckInfo) []Diagnostic {
	return stringSplitCheck(c, lines)
}

// stringSplitCheck evaluates String.words and String.lines on literals.
func stringSplitCheck(c CheckInfo, split func(string) []string) []Diagnostic {
	if len(c.Args) != 1 {
		return nil
	}
	s, ok := match.GetStringLiteral(c.FirstArg())
	if !ok {
		return nil
	}
	parts := split(s)
	quoted := make([]string, 0, len(parts))
	for _, p := range parts {
		quoted = append(quoted, quoteString(p))
	}
	result := listText(quoted)
	return []Diagnostic{{
		Message: fmt.Sprintf("The call to %s will result in %s", c.Fn, result),
		Details: []string{"The argument is a known string, so you can replace this call by the resulting list."},
		Range:   c.FnRange,
		Fixes:   replaceByText(c.ParentRange, result),
	}}
}

// words splits on runs of whitespace after trimming. A blank string gives
// a single empty word.
func words(s string) []string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return []string{""}
	}
	return fields
}

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// lines splits on "\r\n", "\r" and "\n".
func lines(s string) []string {
	return strings.Split(newlines.Replace(s), "\n")
}
