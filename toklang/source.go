package toklang

import "strings"

// Source is the input text of one scan. Content is immutable for the
// lifetime of any Cursor or Scanner reading it.
type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

func (s *Source) Line(n int) (string, bool) {
	idx := n - 1
	if idx < 0 || idx >= len(s.Lines) {
		return "", false
	}
	return s.Lines[idx], true
}
