package fix

import "github.com/gnolang/simplint/internal/ast"

// Source maps row/column positions of a text to byte offsets.
type Source struct {
	text       []byte
	lineStarts []int
}

// NewSource indexes the line starts of text.
func NewSource(text []byte) *Source {
	starts := []int{0}
	for i, c := range text {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Source{text: text, lineStarts: starts}
}

// Text returns the indexed text.
func (s *Source) Text() []byte {
	return s.text
}

// Offset converts p to a byte offset. Positions may point one past the
// last character of a line.
func (s *Source) Offset(p ast.Position) (int, bool) {
	if p.Row < 1 || p.Row > len(s.lineStarts) || p.Column < 1 {
		return 0, false
	}
	start := s.lineStarts[p.Row-1]
	end := len(s.text)
	if p.Row < len(s.lineStarts) {
		end = s.lineStarts[p.Row] - 1
	}
	off := start + p.Column - 1
	if off > end {
		return 0, false
	}
	return off, true
}

// Extract returns the text covered by r, or "" when r is outside the text.
func (s *Source) Extract(r ast.Range) string {
	start, ok1 := s.Offset(r.Start)
	end, ok2 := s.Offset(r.End)
	if !ok1 || !ok2 || start > end {
		return ""
	}
	return string(s.text[start:end])
}
