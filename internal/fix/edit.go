// Package fix provides source edits and the logic that applies them.
//
// Every edit of a fix addresses a range of the original, unmodified source.
// The edits of one fix must not overlap, so they can be applied together as
// one atomic patch.
package fix

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gnolang/simplint/internal/ast"
)

var (
	// ErrOverlappingEdits is returned when two edits of one fix overlap.
	ErrOverlappingEdits = errors.New("overlapping edits")
	// ErrInvalidRange is returned when an edit points outside the source.
	ErrInvalidRange = errors.New("edit range outside of source")
)

// Kind is the kind of an edit.
type Kind int

const (
	Insert Kind = iota
	Remove
	Replace
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Remove:
		return "remove"
	case Replace:
		return "replace"
	default:
		return "?"
	}
}

// Edit is a single change to the source text.
type Edit struct {
	Kind  Kind
	Range ast.Range
	Text  string
}

// InsertAt inserts text before pos.
func InsertAt(pos ast.Position, text string) Edit {
	return Edit{Kind: Insert, Range: ast.Range{Start: pos, End: pos}, Text: text}
}

// RemoveRange deletes the text covered by r.
func RemoveRange(r ast.Range) Edit {
	return Edit{Kind: Remove, Range: r}
}

// ReplaceRange replaces the text covered by r.
func ReplaceRange(r ast.Range, text string) Edit {
	return Edit{Kind: Replace, Range: r, Text: text}
}

func (e Edit) String() string {
	if e.Kind == Remove {
		return fmt.Sprintf("%s %s", e.Kind, e.Range)
	}
	return fmt.Sprintf("%s %s %q", e.Kind, e.Range, e.Text)
}

// KeepOnlyRange removes everything of parent except keep.
func KeepOnlyRange(parent, keep ast.Range) []Edit {
	var edits []Edit
	if before := (ast.Range{Start: parent.Start, End: keep.Start}); !before.IsEmpty() {
		edits = append(edits, RemoveRange(before))
	}
	if after := (ast.Range{Start: keep.End, End: parent.End}); !after.IsEmpty() {
		edits = append(edits, RemoveRange(after))
	}
	return edits
}

// KeepOnlyRangeInParens is KeepOnlyRange with the kept text wrapped in
// parentheses.
func KeepOnlyRangeInParens(parent, keep ast.Range) []Edit {
	return []Edit{
		ReplaceRange(ast.Range{Start: parent.Start, End: keep.Start}, "("),
		ReplaceRange(ast.Range{Start: keep.End, End: parent.End}, ")"),
	}
}

// CheckDisjoint verifies that no two edits touch the same text. Two
// insertions at the same position also conflict because their order would
// be ambiguous.
func CheckDisjoint(edits []Edit) error {
	for i := range edits {
		for j := i + 1; j < len(edits); j++ {
			if conflict(edits[i].Range, edits[j].Range) {
				return fmt.Errorf("%w: %s and %s", ErrOverlappingEdits, edits[i], edits[j])
			}
		}
	}
	return nil
}

func conflict(a, b ast.Range) bool {
	if a.Overlaps(b) {
		return true
	}
	switch {
	case a.IsEmpty() && b.IsEmpty():
		return a.Start == b.Start
	case a.IsEmpty():
		return strictlyInside(a.Start, b)
	case b.IsEmpty():
		return strictlyInside(b.Start, a)
	}
	return false
}

func strictlyInside(p ast.Position, r ast.Range) bool {
	return r.Start.Compare(p) < 0 && p.Compare(r.End) < 0
}

// Apply applies the edits of one fix to src and returns the new text.
func Apply(src []byte, edits []Edit) ([]byte, error) {
	if err := CheckDisjoint(edits); err != nil {
		return nil, err
	}

	type span struct {
		start, end int
		text       string
	}
	source := NewSource(src)
	spans := make([]span, 0, len(edits))
	for _, e := range edits {
		start, ok1 := source.Offset(e.Range.Start)
		end, ok2 := source.Offset(e.Range.End)
		if !ok1 || !ok2 || start > end {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRange, e)
		}
		spans = append(spans, span{start: start, end: end, text: e.Text})
	}

	// Apply back to front so earlier offsets stay valid.
	slices.SortFunc(spans, func(a, b span) int {
		if a.start != b.start {
			return b.start - a.start
		}
		return b.end - a.end
	})
	out := slices.Clone(src)
	for _, s := range spans {
		out = slices.Concat(out[:s.start], []byte(s.text), out[s.end:])
	}
	return out, nil
}
